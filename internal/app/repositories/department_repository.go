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

const departmentKind = "department"

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db sqlx.ExtContext
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db sqlx.ExtContext) *DepartmentRepository {
	return &DepartmentRepository{
		db: db,
	}
}

// Create inserts a department and sets its generated ID
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	id, err := db.InsertReturningID(ctx, r.db,
		`INSERT INTO departments (name) VALUES (?)`, department.Name)
	if err != nil {
		return fmt.Errorf("error creating department: %w", err)
	}

	department.ID = id
	return nil
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	query := r.db.Rebind(`
		SELECT id, name
		FROM departments
		WHERE id = ?
	`)

	var department models.Department
	if err := sqlx.GetContext(ctx, r.db, &department, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound(departmentKind, id)
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}

	return &department, nil
}

// GetByName retrieves the first department with the given name
func (r *DepartmentRepository) GetByName(ctx context.Context, name string) (*models.Department, error) {
	query := r.db.Rebind(`
		SELECT id, name
		FROM departments
		WHERE name = ?
		ORDER BY id
		LIMIT 1
	`)

	var department models.Department
	if err := sqlx.GetContext(ctx, r.db, &department, query, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s %q: %w", departmentKind, name, apperrors.ErrResourceNotFound)
		}
		return nil, fmt.Errorf("error retrieving department by name: %w", err)
	}

	return &department, nil
}

// GetAll retrieves all departments ordered by name
func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*models.Department, error) {
	departments := []*models.Department{}
	if err := sqlx.SelectContext(ctx, r.db, &departments, `
		SELECT id, name
		FROM departments
		ORDER BY name, id
	`); err != nil {
		return nil, fmt.Errorf("error retrieving departments: %w", err)
	}

	return departments, nil
}

// Update updates an existing department
func (r *DepartmentRepository) Update(ctx context.Context, department *models.Department) error {
	query := r.db.Rebind(`UPDATE departments SET name = ? WHERE id = ?`)

	res, err := r.db.ExecContext(ctx, query, department.Name, department.ID)
	if err != nil {
		return fmt.Errorf("error updating department: %w", err)
	}

	return checkAffected(res, departmentKind, department.ID)
}

// Delete deletes a department by ID. The store refuses to delete a
// department that still has sellers.
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	query := r.db.Rebind(`DELETE FROM departments WHERE id = ?`)

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting department: %w", err)
	}

	return checkAffected(res, departmentKind, id)
}

// Count returns the number of departments
func (r *DepartmentRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := sqlx.GetContext(ctx, r.db, &n, `SELECT COUNT(*) FROM departments`); err != nil {
		return 0, fmt.Errorf("error counting departments: %w", err)
	}
	return n, nil
}

// checkAffected maps an update or delete that touched no row to not found
func checkAffected(res sql.Result, kind string, id int64) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.NotFound(kind, id)
	}
	return nil
}
