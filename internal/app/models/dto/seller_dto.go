package dto

import (
	"strings"

	"github.com/yigit/salesweb/internal/app/models"
)

// SellerForm is the create/edit payload, bound from a form post or JSON.
// BirthDate is kept as text so that a malformed date becomes a field
// error instead of a binding failure.
type SellerForm struct {
	ID           int64   `form:"id" json:"id"`
	Name         string  `form:"name" json:"name"`
	Email        string  `form:"email" json:"email"`
	BirthDate    string  `form:"birthDate" json:"birthDate"`
	BaseSalary   float64 `form:"baseSalary" json:"baseSalary"`
	DepartmentID int64   `form:"departmentId" json:"departmentId"`
}

// ToModel converts the form into a Seller. An unparsable birth date is
// left as the zero time for validation to report.
func (f SellerForm) ToModel() *models.Seller {
	seller := &models.Seller{
		ID:           f.ID,
		Name:         strings.TrimSpace(f.Name),
		Email:        strings.TrimSpace(f.Email),
		BaseSalary:   f.BaseSalary,
		DepartmentID: f.DepartmentID,
	}
	if d, err := models.ParseDate(f.BirthDate); err == nil {
		seller.BirthDate = d
	}
	return seller
}

// NewSellerForm fills a form from an existing seller, used by the edit view
func NewSellerForm(s *models.Seller) SellerForm {
	form := SellerForm{
		ID:           s.ID,
		Name:         s.Name,
		Email:        s.Email,
		BaseSalary:   s.BaseSalary,
		DepartmentID: s.DepartmentID,
	}
	form.BirthDate = s.BirthDate.String()
	return form
}
