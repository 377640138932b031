package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/yigit/salesweb/internal/app/models"
	"github.com/yigit/salesweb/internal/db"
	"github.com/yigit/salesweb/internal/pkg/apperrors"
)

const sellerKind = "seller"

const sellerColumns = `id, name, email, birth_date, base_salary, department_id`

// SellerRepository handles database operations for sellers
type SellerRepository struct {
	db sqlx.ExtContext
}

// NewSellerRepository creates a new seller repository
func NewSellerRepository(db sqlx.ExtContext) *SellerRepository {
	return &SellerRepository{
		db: db,
	}
}

// Create inserts a seller and sets its generated ID. A department_id with no
// matching department is rejected by the store's foreign key.
func (r *SellerRepository) Create(ctx context.Context, seller *models.Seller) error {
	id, err := db.InsertReturningID(ctx, r.db, `
		INSERT INTO sellers (name, email, birth_date, base_salary, department_id)
		VALUES (?, ?, ?, ?, ?)`,
		seller.Name, seller.Email, seller.BirthDate, seller.BaseSalary, seller.DepartmentID)
	if err != nil {
		return fmt.Errorf("error creating seller: %w", err)
	}

	seller.ID = id
	return nil
}

// GetByID retrieves a seller by ID
func (r *SellerRepository) GetByID(ctx context.Context, id int64) (*models.Seller, error) {
	query := r.db.Rebind(`SELECT ` + sellerColumns + ` FROM sellers WHERE id = ?`)

	var seller models.Seller
	if err := sqlx.GetContext(ctx, r.db, &seller, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound(sellerKind, id)
		}
		return nil, fmt.Errorf("error retrieving seller: %w", err)
	}

	return &seller, nil
}

// GetAll retrieves all sellers ordered by name
func (r *SellerRepository) GetAll(ctx context.Context) ([]*models.Seller, error) {
	sellers := []*models.Seller{}
	if err := sqlx.SelectContext(ctx, r.db, &sellers,
		`SELECT `+sellerColumns+` FROM sellers ORDER BY name, id`); err != nil {
		return nil, fmt.Errorf("error retrieving sellers: %w", err)
	}

	return sellers, nil
}

// GetByDepartmentID retrieves the sellers of one department
func (r *SellerRepository) GetByDepartmentID(ctx context.Context, departmentID int64) ([]*models.Seller, error) {
	query := r.db.Rebind(`SELECT ` + sellerColumns + ` FROM sellers WHERE department_id = ? ORDER BY name, id`)

	sellers := []*models.Seller{}
	if err := sqlx.SelectContext(ctx, r.db, &sellers, query, departmentID); err != nil {
		return nil, fmt.Errorf("error retrieving sellers by department: %w", err)
	}

	return sellers, nil
}

// Update updates an existing seller
func (r *SellerRepository) Update(ctx context.Context, seller *models.Seller) error {
	query := r.db.Rebind(`
		UPDATE sellers
		SET name = ?, email = ?, birth_date = ?, base_salary = ?, department_id = ?
		WHERE id = ?
	`)

	res, err := r.db.ExecContext(ctx, query,
		seller.Name, seller.Email, seller.BirthDate, seller.BaseSalary, seller.DepartmentID, seller.ID)
	if err != nil {
		return fmt.Errorf("error updating seller: %w", err)
	}

	return checkAffected(res, sellerKind, seller.ID)
}

// Delete deletes a seller by ID
func (r *SellerRepository) Delete(ctx context.Context, id int64) error {
	query := r.db.Rebind(`DELETE FROM sellers WHERE id = ?`)

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting seller: %w", err)
	}

	return checkAffected(res, sellerKind, id)
}

// Count returns the number of sellers
func (r *SellerRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := sqlx.GetContext(ctx, r.db, &n, `SELECT COUNT(*) FROM sellers`); err != nil {
		return 0, fmt.Errorf("error counting sellers: %w", err)
	}
	return n, nil
}
