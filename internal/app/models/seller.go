package models

// Seller represents a seller working for exactly one department.
// DepartmentID is the foreign key; Department is only populated by
// services that explicitly attach it.
type Seller struct {
	ID           int64       `json:"id" db:"id"`
	Name         string      `json:"name" db:"name"`
	Email        string      `json:"email" db:"email"`
	BirthDate    Date        `json:"birthDate" db:"birth_date"`
	BaseSalary   float64     `json:"baseSalary" db:"base_salary"`
	DepartmentID int64       `json:"departmentId" db:"department_id"`
	Department   *Department `json:"department,omitempty" db:"-"`
}
