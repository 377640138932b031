package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yigit/salesweb/internal/app/models"
	"github.com/yigit/salesweb/internal/app/repositories"
	"github.com/yigit/salesweb/internal/pkg/apperrors"
	"github.com/yigit/salesweb/internal/pkg/validation"
)

// SellerService defines the interface for seller-related operations
type SellerService interface {
	FindAll(ctx context.Context) ([]*models.Seller, error)
	FindByID(ctx context.Context, id int64) (*models.Seller, error)
	Insert(ctx context.Context, seller *models.Seller) error
	Update(ctx context.Context, seller *models.Seller) error
	Delete(ctx context.Context, id int64) error
}

// sellerServiceImpl implements the SellerService interface
type sellerServiceImpl struct {
	sellerRepo     *repositories.SellerRepository
	departmentRepo *repositories.DepartmentRepository
	now            func() time.Time
}

// NewSellerService creates a new seller service instance
func NewSellerService(sellerRepo *repositories.SellerRepository, departmentRepo *repositories.DepartmentRepository) SellerService {
	return &sellerServiceImpl{
		sellerRepo:     sellerRepo,
		departmentRepo: departmentRepo,
		now:            time.Now,
	}
}

// FindAll retrieves all sellers with their departments attached
func (s *sellerServiceImpl) FindAll(ctx context.Context) ([]*models.Seller, error) {
	sellers, err := s.sellerRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	departments, err := s.departmentRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*models.Department, len(departments))
	for _, department := range departments {
		byID[department.ID] = department
	}
	for _, seller := range sellers {
		seller.Department = byID[seller.DepartmentID]
	}

	return sellers, nil
}

// FindByID retrieves a seller by ID with its department attached
func (s *sellerServiceImpl) FindByID(ctx context.Context, id int64) (*models.Seller, error) {
	seller, err := s.sellerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.attachDepartment(ctx, seller); err != nil {
		return nil, err
	}
	return seller, nil
}

// attachDepartment looks up the seller's department
func (s *sellerServiceImpl) attachDepartment(ctx context.Context, seller *models.Seller) error {
	department, err := s.departmentRepo.GetByID(ctx, seller.DepartmentID)
	if err != nil {
		// The foreign key guarantees the row; a miss here is a concurrent delete
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil
		}
		return err
	}

	seller.Department = department
	return nil
}

// Insert validates and creates a seller
func (s *sellerServiceImpl) Insert(ctx context.Context, seller *models.Seller) error {
	if err := validation.ValidateSeller(seller, s.now()); err != nil {
		return err
	}

	return s.sellerRepo.Create(ctx, seller)
}

// Update validates and updates an existing seller
func (s *sellerServiceImpl) Update(ctx context.Context, seller *models.Seller) error {
	if err := validation.ValidateSeller(seller, s.now()); err != nil {
		return err
	}

	if err := s.sellerRepo.Update(ctx, seller); err != nil {
		return fmt.Errorf("update seller %d: %w", seller.ID, err)
	}
	return nil
}

// Delete removes a seller
func (s *sellerServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.sellerRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete seller %d: %w", id, err)
	}
	return nil
}
