package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/salesweb/internal/app/models"
	"github.com/yigit/salesweb/internal/app/repositories"
	"github.com/yigit/salesweb/internal/db/dbtest"
	"github.com/yigit/salesweb/internal/pkg/apperrors"
	"github.com/yigit/salesweb/internal/pkg/logger"
)

func counts(t *testing.T, repos *repositories.Repositories) (int64, int64) {
	t.Helper()
	ctx := context.Background()

	departments, err := repos.DepartmentRepository.Count(ctx)
	require.NoError(t, err)
	sellers, err := repos.SellerRepository.Count(ctx)
	require.NoError(t, err)
	return departments, sellers
}

func TestSeed_EmptyStore(t *testing.T) {
	database := dbtest.New(t)
	repos := repositories.NewRepositories(database)

	result, err := NewSeeder(database, logger.Nop()).Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &Result{Departments: 4, Sellers: 6}, result)

	departments, sellers := counts(t, repos)
	assert.Equal(t, int64(4), departments)
	assert.Equal(t, int64(6), sellers)

	computers, err := repos.DepartmentRepository.GetByName(context.Background(), "Computers")
	require.NoError(t, err)
	inComputers, err := repos.SellerRepository.GetByDepartmentID(context.Background(), computers.ID)
	require.NoError(t, err)
	require.Len(t, inComputers, 2)
	assert.Equal(t, "Alex Grey", inComputers[0].Name)
	assert.Equal(t, "1988-01-15", inComputers[0].BirthDate.String())
}

func TestSeed_IsNoOpWhenSeeded(t *testing.T) {
	database := dbtest.New(t)
	repos := repositories.NewRepositories(database)
	seeder := NewSeeder(database, logger.Nop())

	_, err := seeder.Seed(context.Background())
	require.NoError(t, err)

	result, err := seeder.Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &Result{}, result)

	departments, sellers := counts(t, repos)
	assert.Equal(t, int64(4), departments)
	assert.Equal(t, int64(6), sellers)
}

func TestSeed_SellersOnlyAgainstExistingDepartments(t *testing.T) {
	database := dbtest.New(t)
	repos := repositories.NewRepositories(database)
	ctx := context.Background()

	// Departments survived an earlier run that never reached the sellers
	for _, name := range []string{"Books", "Fashion", "Electronics", "Computers"} {
		require.NoError(t, repos.DepartmentRepository.Create(ctx, &models.Department{Name: name}))
	}

	result, err := NewSeeder(database, logger.Nop()).Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, &Result{Departments: 0, Sellers: 6}, result)

	books, err := repos.DepartmentRepository.GetByName(ctx, "Books")
	require.NoError(t, err)
	inBooks, err := repos.SellerRepository.GetByDepartmentID(ctx, books.ID)
	require.NoError(t, err)
	require.Len(t, inBooks, 1)
	assert.Equal(t, "Martha Red", inBooks[0].Name)
}

func TestSeed_MissingDepartmentRollsBackSellers(t *testing.T) {
	database := dbtest.New(t)
	repos := repositories.NewRepositories(database)
	ctx := context.Background()

	require.NoError(t, repos.DepartmentRepository.Create(ctx, &models.Department{Name: "Computers"}))

	_, err := NewSeeder(database, logger.Nop()).Seed(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	departments, sellers := counts(t, repos)
	assert.Equal(t, int64(1), departments)
	assert.Equal(t, int64(0), sellers)
}
