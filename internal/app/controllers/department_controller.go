package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/salesweb/internal/app/models/dto"
	"github.com/yigit/salesweb/internal/app/services"
	"github.com/yigit/salesweb/internal/middleware"
	"github.com/yigit/salesweb/internal/pkg/apperrors"
	"github.com/yigit/salesweb/internal/pkg/validation"
)

const departmentIndexPath = "/Department"

// DepartmentController handles the department pages
type DepartmentController struct {
	departmentService services.DepartmentService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService services.DepartmentService) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
	}
}

// Index lists all departments
func (c *DepartmentController) Index(ctx *gin.Context) {
	departments, err := c.departmentService.FindAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleError(ctx, err)
		return
	}

	middleware.Render(ctx, http.StatusOK, "department/index", dto.DepartmentListViewModel{
		Title:       "Departments",
		Departments: departments,
	})
}

// Details shows a department and its sellers
func (c *DepartmentController) Details(ctx *gin.Context) {
	id, err := parseID(ctx, "department")
	if err != nil {
		middleware.HandleError(ctx, err)
		return
	}

	department, err := c.departmentService.FindByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleError(ctx, err)
		return
	}

	sellers, err := c.departmentService.FindSellers(ctx.Request.Context(), department)
	if err != nil {
		middleware.HandleError(ctx, err)
		return
	}

	middleware.Render(ctx, http.StatusOK, "department/details", dto.DepartmentViewModel{
		Title:      "Department Details",
		Department: department,
		Sellers:    sellers,
	})
}

// Create renders an empty department form
func (c *DepartmentController) Create(ctx *gin.Context) {
	middleware.Render(ctx, http.StatusOK, "department/form", dto.DepartmentFormViewModel{
		Title:  "Create Department",
		Action: "/Department/Create",
	})
}

// CreatePost validates and inserts a department, then redirects to the list
func (c *DepartmentController) CreatePost(ctx *gin.Context) {
	var form dto.DepartmentForm
	if err := ctx.ShouldBind(&form); err != nil {
		middleware.HandleError(ctx, bindError(err))
		return
	}

	if err := c.departmentService.Insert(ctx.Request.Context(), form.ToModel()); err != nil {
		handleDepartmentFormError(ctx, err, dto.DepartmentFormViewModel{
			Title:      "Create Department",
			Action:     "/Department/Create",
			Department: form,
		})
		return
	}

	ctx.Redirect(http.StatusFound, departmentIndexPath)
}

// Edit renders the form for an existing department
func (c *DepartmentController) Edit(ctx *gin.Context) {
	id, err := parseID(ctx, "department")
	if err != nil {
		middleware.HandleError(ctx, err)
		return
	}

	department, err := c.departmentService.FindByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleError(ctx, err)
		return
	}

	middleware.Render(ctx, http.StatusOK, "department/form", dto.DepartmentFormViewModel{
		Title:      "Edit Department",
		Action:     ctx.Request.URL.Path,
		Department: dto.DepartmentForm{ID: department.ID, Name: department.Name},
	})
}

// EditPost validates and updates a department. The posted id must match the path.
func (c *DepartmentController) EditPost(ctx *gin.Context) {
	id, err := parseID(ctx, "department")
	if err != nil {
		middleware.HandleError(ctx, err)
		return
	}

	var form dto.DepartmentForm
	if err := ctx.ShouldBind(&form); err != nil {
		middleware.HandleError(ctx, bindError(err))
		return
	}
	if form.ID != id {
		middleware.HandleError(ctx, apperrors.ErrIDMismatch)
		return
	}

	if err := c.departmentService.Update(ctx.Request.Context(), form.ToModel()); err != nil {
		handleDepartmentFormError(ctx, err, dto.DepartmentFormViewModel{
			Title:      "Edit Department",
			Action:     ctx.Request.URL.Path,
			Department: form,
		})
		return
	}

	ctx.Redirect(http.StatusFound, departmentIndexPath)
}

// Delete renders the delete confirmation
func (c *DepartmentController) Delete(ctx *gin.Context) {
	id, err := parseID(ctx, "department")
	if err != nil {
		middleware.HandleError(ctx, err)
		return
	}

	department, err := c.departmentService.FindByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleError(ctx, err)
		return
	}

	middleware.Render(ctx, http.StatusOK, "department/delete", dto.DepartmentViewModel{
		Title:      "Delete Department",
		Department: department,
	})
}

// DeletePost removes a department and redirects to the list. A department
// that still has sellers is refused by the store and ends on the error page.
func (c *DepartmentController) DeletePost(ctx *gin.Context) {
	id, err := parseID(ctx, "department")
	if err != nil {
		middleware.HandleError(ctx, err)
		return
	}

	if err := c.departmentService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleError(ctx, err)
		return
	}

	ctx.Redirect(http.StatusFound, departmentIndexPath)
}

func handleDepartmentFormError(ctx *gin.Context, err error, view dto.DepartmentFormViewModel) {
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		view.Errors = fieldErrs
		middleware.Render(ctx, http.StatusBadRequest, "department/form", view)
		return
	}
	middleware.HandleError(ctx, err)
}
