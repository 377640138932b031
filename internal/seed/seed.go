package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"github.com/yigit/salesweb/internal/app/models"
	"github.com/yigit/salesweb/internal/app/repositories"
	"github.com/yigit/salesweb/internal/db"
	"github.com/yigit/salesweb/internal/pkg/metrics"
)

// DefaultDepartments are inserted when the departments table is empty
var DefaultDepartments = []string{"Computers", "Electronics", "Fashion", "Books"}

// DefaultSeller describes a seeded seller; Department is matched by name
type DefaultSeller struct {
	Name       string
	Email      string
	BirthDate  models.Date
	BaseSalary float64
	Department string
}

// DefaultSellers are inserted when the sellers table is empty
var DefaultSellers = []DefaultSeller{
	{"Bob Brown", "bob@gmail.com", models.NewDate(1998, time.April, 21), 1000.0, "Computers"},
	{"Maria Green", "maria@gmail.com", models.NewDate(1979, time.December, 31), 3500.0, "Electronics"},
	{"Alex Grey", "alex@gmail.com", models.NewDate(1988, time.January, 15), 2200.0, "Computers"},
	{"Martha Red", "martha@gmail.com", models.NewDate(1993, time.November, 30), 3000.0, "Books"},
	{"Donald Blue", "donald@gmail.com", models.NewDate(2000, time.January, 9), 4000.0, "Fashion"},
	{"Alex Pink", "bob@gmail.com", models.NewDate(1997, time.March, 4), 3000.0, "Electronics"},
}

// Result reports how many rows each phase inserted
type Result struct {
	Departments int
	Sellers     int
}

// Seeder populates an empty store with demo data
type Seeder struct {
	db  *db.DB
	lgr zerolog.Logger
}

// NewSeeder creates a seeder for database
func NewSeeder(database *db.DB, lgr zerolog.Logger) *Seeder {
	return &Seeder{db: database, lgr: lgr}
}

// Seed inserts the default departments and sellers. Each table is only
// seeded while empty and each table's rows go in one transaction, so a
// store that already has data is left untouched. Sellers resolve their
// department by name against whatever departments are present.
func (s *Seeder) Seed(ctx context.Context) (*Result, error) {
	s.lgr.Info().Msg("Checking/Creating default data (Departments/Sellers)...")
	result := &Result{}

	err := s.db.WithTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		n, err := seedDepartments(ctx, repositories.NewDepartmentRepository(tx))
		result.Departments = n
		return err
	})
	if err != nil {
		return &Result{}, fmt.Errorf("seeding departments: %w", err)
	}
	metrics.RecordSeedRows("departments", result.Departments)

	// A failure past this point leaves departments without sellers; the
	// next run fills in the sellers only.
	err = s.db.WithTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		repos := repositories.NewRepositories(tx)
		n, err := seedSellers(ctx, repos.SellerRepository, repos.DepartmentRepository)
		result.Sellers = n
		return err
	})
	if err != nil {
		return &Result{Departments: result.Departments}, fmt.Errorf("seeding sellers: %w", err)
	}
	metrics.RecordSeedRows("sellers", result.Sellers)

	s.lgr.Info().
		Int("departments", result.Departments).
		Int("sellers", result.Sellers).
		Msg("Default data check completed")

	return result, nil
}

func seedDepartments(ctx context.Context, repo *repositories.DepartmentRepository) (int, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	for _, name := range DefaultDepartments {
		if err := repo.Create(ctx, &models.Department{Name: name}); err != nil {
			return 0, err
		}
	}
	return len(DefaultDepartments), nil
}

func seedSellers(ctx context.Context, sellerRepo *repositories.SellerRepository, departmentRepo *repositories.DepartmentRepository) (int, error) {
	count, err := sellerRepo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	departmentIDs := make(map[string]int64)
	for _, def := range DefaultSellers {
		id, ok := departmentIDs[def.Department]
		if !ok {
			department, err := departmentRepo.GetByName(ctx, def.Department)
			if err != nil {
				return 0, err
			}
			id = department.ID
			departmentIDs[def.Department] = id
		}

		seller := &models.Seller{
			Name:         def.Name,
			Email:        def.Email,
			BirthDate:    def.BirthDate,
			BaseSalary:   def.BaseSalary,
			DepartmentID: id,
		}
		if err := sellerRepo.Create(ctx, seller); err != nil {
			return 0, err
		}
	}
	return len(DefaultSellers), nil
}
