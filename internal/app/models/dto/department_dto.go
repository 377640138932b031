package dto

import (
	"strings"

	"github.com/yigit/salesweb/internal/app/models"
)

// DepartmentForm is the create/edit payload for a department
type DepartmentForm struct {
	ID   int64  `form:"id" json:"id"`
	Name string `form:"name" json:"name"`
}

// ToModel converts the form into a Department
func (f DepartmentForm) ToModel() *models.Department {
	return &models.Department{
		ID:   f.ID,
		Name: strings.TrimSpace(f.Name),
	}
}
