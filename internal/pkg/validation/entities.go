package validation

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/yigit/salesweb/internal/app/models"
	"github.com/yigit/salesweb/internal/pkg/apperrors"
)

var validate = validator.New()

// Errors maps a form field name to its message. It unwraps to
// apperrors.ErrValidationFailed.
type Errors map[string]string

// Error implements the error interface with a stable field order
func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}
	return fmt.Sprintf("%s: %s", apperrors.ErrValidationFailed, strings.Join(parts, "; "))
}

// Unwrap lets errors.Is match apperrors.ErrValidationFailed
func (e Errors) Unwrap() error {
	return apperrors.ErrValidationFailed
}

// orNil returns nil for an empty set so callers can return it directly
func (e Errors) orNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// IsEmail reports whether value is a syntactically valid email address
func IsEmail(value string) bool {
	return validate.Var(value, "required,email") == nil
}

// ValidateSeller checks a seller before it is persisted. now is the
// reference for rejecting birth dates in the future.
func ValidateSeller(seller *models.Seller, now time.Time) error {
	if seller == nil {
		return Errors{"seller": "seller is required"}
	}

	errs := Errors{}

	if seller.Name == "" {
		errs["name"] = "Name is required"
	} else if !NewStringValidation(seller.Name).
		WithMinLength(SellerNameMinLength).
		WithMaxLength(SellerNameMaxLength).
		Validate() {
		errs["name"] = fmt.Sprintf("Name size should be between %d and %d", SellerNameMinLength, SellerNameMaxLength)
	}

	switch {
	case seller.Email == "":
		errs["email"] = "Email is required"
	case !NewStringValidation(seller.Email).WithMaxLength(EmailMaxLength).Validate(), !IsEmail(seller.Email):
		errs["email"] = "Enter a valid email"
	}

	switch {
	case seller.BirthDate.IsZero():
		errs["birthDate"] = "Birth date is required (YYYY-MM-DD)"
	case seller.BirthDate.After(now):
		errs["birthDate"] = "Birth date cannot be in the future"
	}

	if !NewRangeValidation(seller.BaseSalary, BaseSalaryMin, BaseSalaryMax).Validate() {
		errs["baseSalary"] = fmt.Sprintf("Base salary must be from %.2f to %.2f", BaseSalaryMin, BaseSalaryMax)
	}

	if seller.DepartmentID <= 0 {
		errs["departmentId"] = "Department is required"
	}

	return errs.orNil()
}

// ValidateDepartment checks a department before it is persisted
func ValidateDepartment(department *models.Department) error {
	if department == nil {
		return Errors{"department": "department is required"}
	}

	errs := Errors{}
	if department.Name == "" {
		errs["name"] = "Name is required"
	} else if !NewStringValidation(department.Name).
		WithMinLength(DepartmentNameMinLength).
		WithMaxLength(DepartmentNameMaxLength).
		Validate() {
		errs["name"] = fmt.Sprintf("Name size should be between %d and %d", DepartmentNameMinLength, DepartmentNameMaxLength)
	}

	return errs.orNil()
}
