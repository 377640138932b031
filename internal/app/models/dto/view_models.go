package dto

import "github.com/yigit/salesweb/internal/app/models"

// HomeViewModel is rendered by the home pages
type HomeViewModel struct {
	Title   string `json:"title"`
	Message string `json:"message,omitempty"`
}

// ErrorViewModel is rendered by the error page
type ErrorViewModel struct {
	Title      string `json:"title"`
	RequestID  string `json:"requestId"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Detail     string `json:"detail,omitempty"`
}

// ShowRequestID reports whether the page has a correlation id to display
func (m ErrorViewModel) ShowRequestID() bool {
	return m.RequestID != ""
}

// SellerListViewModel is rendered by the seller index
type SellerListViewModel struct {
	Title   string           `json:"title"`
	Sellers []*models.Seller `json:"sellers"`
}

// SellerViewModel is rendered by seller details and the delete confirmation
type SellerViewModel struct {
	Title  string         `json:"title"`
	Seller *models.Seller `json:"seller"`
}

// SellerFormViewModel carries the seller being edited and the departments
// offered by the selector
type SellerFormViewModel struct {
	Title       string               `json:"title"`
	Action      string               `json:"action"`
	Seller      SellerForm           `json:"seller"`
	Departments []*models.Department `json:"departments"`
	Errors      map[string]string    `json:"errors,omitempty"`
}

// DepartmentListViewModel is rendered by the department index
type DepartmentListViewModel struct {
	Title       string               `json:"title"`
	Departments []*models.Department `json:"departments"`
}

// DepartmentViewModel is rendered by department details and the delete
// confirmation. Sellers is only filled on the details page.
type DepartmentViewModel struct {
	Title      string             `json:"title"`
	Department *models.Department `json:"department"`
	Sellers    []*models.Seller   `json:"sellers,omitempty"`
}

// DepartmentFormViewModel is rendered by the department create/edit forms
type DepartmentFormViewModel struct {
	Title      string            `json:"title"`
	Action     string            `json:"action"`
	Department DepartmentForm    `json:"department"`
	Errors     map[string]string `json:"errors,omitempty"`
}
