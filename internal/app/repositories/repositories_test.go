package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/salesweb/internal/app/models"
	"github.com/yigit/salesweb/internal/db/dbtest"
	"github.com/yigit/salesweb/internal/pkg/apperrors"
	"github.com/yigit/salesweb/internal/pkg/dberrors"
)

func newSeller(name string, departmentID int64) *models.Seller {
	return &models.Seller{
		Name:         name,
		Email:        "seller@example.com",
		BirthDate:    models.NewDate(1990, time.May, 17),
		BaseSalary:   2500,
		DepartmentID: departmentID,
	}
}

func setup(t *testing.T) (*Repositories, context.Context) {
	t.Helper()
	return NewRepositories(dbtest.New(t)), context.Background()
}

func TestDepartmentRepository_CRUD(t *testing.T) {
	repos, ctx := setup(t)
	repo := repos.DepartmentRepository

	department := &models.Department{Name: "Computers"}
	require.NoError(t, repo.Create(ctx, department))
	assert.NotZero(t, department.ID)

	got, err := repo.GetByID(ctx, department.ID)
	require.NoError(t, err)
	assert.Equal(t, "Computers", got.Name)

	department.Name = "Hardware"
	require.NoError(t, repo.Update(ctx, department))

	got, err = repo.GetByName(ctx, "Hardware")
	require.NoError(t, err)
	assert.Equal(t, department.ID, got.ID)

	require.NoError(t, repo.Create(ctx, &models.Department{Name: "Books"}))
	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Books", all[0].Name)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	require.NoError(t, repo.Delete(ctx, department.ID))
	_, err = repo.GetByID(ctx, department.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestDepartmentRepository_UpdateUnchangedRow(t *testing.T) {
	repos, ctx := setup(t)
	repo := repos.DepartmentRepository

	department := &models.Department{Name: "Fashion"}
	require.NoError(t, repo.Create(ctx, department))
	assert.NoError(t, repo.Update(ctx, department))
}

func TestDepartmentRepository_MissingRows(t *testing.T) {
	repos, ctx := setup(t)
	repo := repos.DepartmentRepository

	_, err := repo.GetByID(ctx, 42)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	_, err = repo.GetByName(ctx, "Nothing")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	err = repo.Update(ctx, &models.Department{ID: 42, Name: "Ghost"})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	err = repo.Delete(ctx, 42)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestDepartmentRepository_DeleteWithSellersFails(t *testing.T) {
	repos, ctx := setup(t)

	department := &models.Department{Name: "Electronics"}
	require.NoError(t, repos.DepartmentRepository.Create(ctx, department))
	require.NoError(t, repos.SellerRepository.Create(ctx, newSeller("Maria Green", department.ID)))

	err := repos.DepartmentRepository.Delete(ctx, department.ID)
	require.Error(t, err)
	assert.True(t, dberrors.IsForeignKeyViolation(err), "got %v", err)

	n, err := repos.DepartmentRepository.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestSellerRepository_CRUD(t *testing.T) {
	repos, ctx := setup(t)
	repo := repos.SellerRepository

	computers := &models.Department{Name: "Computers"}
	books := &models.Department{Name: "Books"}
	require.NoError(t, repos.DepartmentRepository.Create(ctx, computers))
	require.NoError(t, repos.DepartmentRepository.Create(ctx, books))

	seller := newSeller("Bob Brown", computers.ID)
	require.NoError(t, repo.Create(ctx, seller))
	assert.NotZero(t, seller.ID)

	got, err := repo.GetByID(ctx, seller.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bob Brown", got.Name)
	assert.Equal(t, "1990-05-17", got.BirthDate.String())
	assert.InDelta(t, 2500.0, got.BaseSalary, 0.001)
	assert.Equal(t, computers.ID, got.DepartmentID)
	assert.Nil(t, got.Department)

	seller.DepartmentID = books.ID
	seller.BaseSalary = 3100.5
	require.NoError(t, repo.Update(ctx, seller))

	inBooks, err := repo.GetByDepartmentID(ctx, books.ID)
	require.NoError(t, err)
	require.Len(t, inBooks, 1)
	assert.InDelta(t, 3100.5, inBooks[0].BaseSalary, 0.001)

	inComputers, err := repo.GetByDepartmentID(ctx, computers.ID)
	require.NoError(t, err)
	assert.Empty(t, inComputers)

	require.NoError(t, repo.Create(ctx, newSeller("Alex Grey", computers.ID)))
	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Alex Grey", all[0].Name)

	require.NoError(t, repo.Delete(ctx, seller.ID))
	_, err = repo.GetByID(ctx, seller.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestSellerRepository_UnknownDepartmentFails(t *testing.T) {
	repos, ctx := setup(t)

	err := repos.SellerRepository.Create(ctx, newSeller("Donald Blue", 999))
	require.Error(t, err)
	assert.True(t, dberrors.IsForeignKeyViolation(err), "got %v", err)

	department := &models.Department{Name: "Fashion"}
	require.NoError(t, repos.DepartmentRepository.Create(ctx, department))
	seller := newSeller("Donald Blue", department.ID)
	require.NoError(t, repos.SellerRepository.Create(ctx, seller))

	seller.DepartmentID = 999
	err = repos.SellerRepository.Update(ctx, seller)
	require.Error(t, err)
	assert.True(t, dberrors.IsForeignKeyViolation(err), "got %v", err)
}

func TestSellerRepository_MissingRows(t *testing.T) {
	repos, ctx := setup(t)
	repo := repos.SellerRepository

	_, err := repo.GetByID(ctx, 7)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	err = repo.Update(ctx, &models.Seller{ID: 7, Name: "Ghost", BirthDate: models.NewDate(1990, 1, 1)})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	err = repo.Delete(ctx, 7)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
