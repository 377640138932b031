package repositories

import (
	"github.com/jmoiron/sqlx"
)

// Repositories holds all the repository instances
type Repositories struct {
	SellerRepository     *SellerRepository
	DepartmentRepository *DepartmentRepository
}

// NewRepositories initializes all repositories on top of a connection pool
// or a transaction
func NewRepositories(db sqlx.ExtContext) *Repositories {
	return &Repositories{
		SellerRepository:     NewSellerRepository(db),
		DepartmentRepository: NewDepartmentRepository(db),
	}
}
