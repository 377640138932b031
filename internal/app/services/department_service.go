package services

import (
	"context"
	"fmt"

	"github.com/yigit/salesweb/internal/app/models"
	"github.com/yigit/salesweb/internal/app/repositories"
	"github.com/yigit/salesweb/internal/pkg/apperrors"
	"github.com/yigit/salesweb/internal/pkg/validation"
)

// DepartmentService defines the interface for department-related operations
type DepartmentService interface {
	FindAll(ctx context.Context) ([]*models.Department, error)
	FindByID(ctx context.Context, id int64) (*models.Department, error)
	FindSellers(ctx context.Context, department *models.Department) ([]*models.Seller, error)
	Insert(ctx context.Context, department *models.Department) error
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id int64) error
}

// departmentServiceImpl implements the DepartmentService interface
type departmentServiceImpl struct {
	departmentRepo *repositories.DepartmentRepository
	sellerRepo     *repositories.SellerRepository
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentRepo *repositories.DepartmentRepository, sellerRepo *repositories.SellerRepository) DepartmentService {
	return &departmentServiceImpl{
		departmentRepo: departmentRepo,
		sellerRepo:     sellerRepo,
	}
}

// FindAll retrieves all departments
func (s *departmentServiceImpl) FindAll(ctx context.Context) ([]*models.Department, error) {
	return s.departmentRepo.GetAll(ctx)
}

// FindByID retrieves a department by ID
func (s *departmentServiceImpl) FindByID(ctx context.Context, id int64) (*models.Department, error) {
	return s.departmentRepo.GetByID(ctx, id)
}

// FindSellers retrieves the sellers of a department already loaded by FindByID
func (s *departmentServiceImpl) FindSellers(ctx context.Context, department *models.Department) ([]*models.Seller, error) {
	if department == nil {
		return nil, apperrors.NotFound("department", 0)
	}

	sellers, err := s.sellerRepo.GetByDepartmentID(ctx, department.ID)
	if err != nil {
		return nil, err
	}

	for _, seller := range sellers {
		seller.Department = department
	}
	return sellers, nil
}

// Insert validates and creates a department
func (s *departmentServiceImpl) Insert(ctx context.Context, department *models.Department) error {
	if err := validation.ValidateDepartment(department); err != nil {
		return err
	}

	return s.departmentRepo.Create(ctx, department)
}

// Update validates and updates an existing department
func (s *departmentServiceImpl) Update(ctx context.Context, department *models.Department) error {
	if err := validation.ValidateDepartment(department); err != nil {
		return err
	}

	if err := s.departmentRepo.Update(ctx, department); err != nil {
		return fmt.Errorf("update department %d: %w", department.ID, err)
	}
	return nil
}

// Delete removes a department. A department that still has sellers is
// refused by the store with a foreign key violation.
func (s *departmentServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.departmentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete department %d: %w", id, err)
	}
	return nil
}
