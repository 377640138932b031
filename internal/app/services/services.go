package services

import "github.com/yigit/salesweb/internal/app/repositories"

// Services holds the domain services used by the controllers
type Services struct {
	SellerService     SellerService
	DepartmentService DepartmentService
}

// NewServices wires the services to their repositories
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		SellerService:     NewSellerService(repos.SellerRepository, repos.DepartmentRepository),
		DepartmentService: NewDepartmentService(repos.DepartmentRepository, repos.SellerRepository),
	}
}
