package validation

import "unicode/utf8"

// Validation rule limits, matching the column sizes
var (
	SellerNameMinLength = 3
	SellerNameMaxLength = 60

	DepartmentNameMinLength = 1
	DepartmentNameMaxLength = 60

	EmailMaxLength = 120

	BaseSalaryMin = 100.0
	BaseSalaryMax = 50000.0
)

// StringValidation checks the length of a required string value
type StringValidation struct {
	Value  string
	MinLen int
	MaxLen int
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{Value: value}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// Validate reports whether the value is present and within bounds.
// Lengths are counted in runes.
func (v *StringValidation) Validate() bool {
	if v.Value == "" {
		return false
	}

	length := utf8.RuneCountInString(v.Value)
	if v.MinLen > 0 && length < v.MinLen {
		return false
	}
	return v.MaxLen <= 0 || length <= v.MaxLen
}

// RangeValidation checks that a number lies within [Min, Max]
type RangeValidation struct {
	Value    float64
	Min, Max float64
}

// NewRangeValidation creates a new range validation
func NewRangeValidation(value, min, max float64) *RangeValidation {
	return &RangeValidation{Value: value, Min: min, Max: max}
}

// Validate performs validation
func (v *RangeValidation) Validate() bool {
	return v.Value >= v.Min && v.Value <= v.Max
}
