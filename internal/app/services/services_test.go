package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/salesweb/internal/app/models"
	"github.com/yigit/salesweb/internal/app/repositories"
	"github.com/yigit/salesweb/internal/db/dbtest"
	"github.com/yigit/salesweb/internal/pkg/apperrors"
	"github.com/yigit/salesweb/internal/pkg/dberrors"
	"github.com/yigit/salesweb/internal/pkg/validation"
)

var fixedNow = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*Services, context.Context) {
	t.Helper()

	svc := NewServices(repositories.NewRepositories(dbtest.New(t)))
	svc.SellerService.(*sellerServiceImpl).now = func() time.Time { return fixedNow }
	return svc, context.Background()
}

func validSeller(departmentID int64) *models.Seller {
	return &models.Seller{
		Name:         "Martha Red",
		Email:        "martha@gmail.com",
		BirthDate:    models.NewDate(1993, time.November, 30),
		BaseSalary:   3000,
		DepartmentID: departmentID,
	}
}

func insertDepartment(t *testing.T, svc *Services, name string) *models.Department {
	t.Helper()
	department := &models.Department{Name: name}
	require.NoError(t, svc.DepartmentService.Insert(context.Background(), department))
	return department
}

func TestSellerService_InsertAndFind(t *testing.T) {
	svc, ctx := setup(t)
	books := insertDepartment(t, svc, "Books")

	seller := validSeller(books.ID)
	require.NoError(t, svc.SellerService.Insert(ctx, seller))

	got, err := svc.SellerService.FindByID(ctx, seller.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Department)
	assert.Equal(t, "Books", got.Department.Name)

	all, err := svc.SellerService.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.NotNil(t, all[0].Department)
	assert.Equal(t, books.ID, all[0].Department.ID)
}

func TestSellerService_ValidationRunsBeforePersistence(t *testing.T) {
	svc, ctx := setup(t)
	books := insertDepartment(t, svc, "Books")

	seller := validSeller(books.ID)
	seller.Name = "Al"
	seller.Email = "not-an-email"
	seller.BirthDate = models.NewDate(2030, time.January, 1)
	seller.BaseSalary = 10

	err := svc.SellerService.Insert(ctx, seller)
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	var fields validation.Errors
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "birthDate")
	assert.Contains(t, fields, "baseSalary")

	all, err := svc.SellerService.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSellerService_UnknownDepartment(t *testing.T) {
	svc, ctx := setup(t)

	err := svc.SellerService.Insert(ctx, validSeller(404))
	require.Error(t, err)
	assert.True(t, dberrors.IsForeignKeyViolation(err), "got %v", err)
}

func TestSellerService_UpdateAndDelete(t *testing.T) {
	svc, ctx := setup(t)
	books := insertDepartment(t, svc, "Books")
	fashion := insertDepartment(t, svc, "Fashion")

	seller := validSeller(books.ID)
	require.NoError(t, svc.SellerService.Insert(ctx, seller))

	seller.DepartmentID = fashion.ID
	require.NoError(t, svc.SellerService.Update(ctx, seller))

	got, err := svc.SellerService.FindByID(ctx, seller.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fashion", got.Department.Name)

	require.NoError(t, svc.SellerService.Delete(ctx, seller.ID))
	_, err = svc.SellerService.FindByID(ctx, seller.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	assert.ErrorIs(t, svc.SellerService.Delete(ctx, seller.ID), apperrors.ErrResourceNotFound)

	seller.ID = 999
	assert.ErrorIs(t, svc.SellerService.Update(ctx, seller), apperrors.ErrResourceNotFound)
}

func TestDepartmentService_DeleteWithAndWithoutSellers(t *testing.T) {
	svc, ctx := setup(t)
	empty := insertDepartment(t, svc, "Fashion")
	staffed := insertDepartment(t, svc, "Electronics")
	require.NoError(t, svc.SellerService.Insert(ctx, validSeller(staffed.ID)))

	require.NoError(t, svc.DepartmentService.Delete(ctx, empty.ID))

	err := svc.DepartmentService.Delete(ctx, staffed.ID)
	require.Error(t, err)
	assert.True(t, dberrors.IsForeignKeyViolation(err), "got %v", err)

	assert.ErrorIs(t, svc.DepartmentService.Delete(ctx, empty.ID), apperrors.ErrResourceNotFound)
}

func TestDepartmentService_FindSellers(t *testing.T) {
	svc, ctx := setup(t)
	computers := insertDepartment(t, svc, "Computers")
	books := insertDepartment(t, svc, "Books")

	require.NoError(t, svc.SellerService.Insert(ctx, validSeller(computers.ID)))

	department, err := svc.DepartmentService.FindByID(ctx, computers.ID)
	require.NoError(t, err)
	sellers, err := svc.DepartmentService.FindSellers(ctx, department)
	require.NoError(t, err)
	require.Len(t, sellers, 1)
	assert.Same(t, department, sellers[0].Department)

	sellers, err = svc.DepartmentService.FindSellers(ctx, books)
	require.NoError(t, err)
	assert.Empty(t, sellers)

	_, err = svc.DepartmentService.FindSellers(ctx, nil)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestDepartmentService_Validation(t *testing.T) {
	svc, ctx := setup(t)

	err := svc.DepartmentService.Insert(ctx, &models.Department{Name: ""})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	department := insertDepartment(t, svc, "Books")
	department.Name = "Used Books"
	require.NoError(t, svc.DepartmentService.Update(ctx, department))

	got, err := svc.DepartmentService.FindByID(ctx, department.ID)
	require.NoError(t, err)
	assert.Equal(t, "Used Books", got.Name)

	_, err = svc.DepartmentService.FindByID(ctx, 404)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
