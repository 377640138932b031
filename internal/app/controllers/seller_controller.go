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

const sellerIndexPath = "/Seller"

// SellerController handles the seller pages
type SellerController struct {
	sellerService     services.SellerService
	departmentService services.DepartmentService
}

// NewSellerController creates a new SellerController
func NewSellerController(sellerService services.SellerService, departmentService services.DepartmentService) *SellerController {
	return &SellerController{
		sellerService:     sellerService,
		departmentService: departmentService,
	}
}

// Index lists all sellers
func (c *SellerController) Index(ctx *gin.Context) {
	sellers, err := c.sellerService.FindAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleError(ctx, err)
		return
	}

	middleware.Render(ctx, http.StatusOK, "seller/index", dto.SellerListViewModel{
		Title:   "Sellers",
		Sellers: sellers,
	})
}

// Details shows one seller
func (c *SellerController) Details(ctx *gin.Context) {
	c.renderSeller(ctx, "seller/details", "Seller Details")
}

// Create renders an empty seller form
func (c *SellerController) Create(ctx *gin.Context) {
	c.renderForm(ctx, http.StatusOK, dto.SellerFormViewModel{
		Title:  "Create Seller",
		Action: "/Seller/Create",
	})
}

// CreatePost validates and inserts a seller, then redirects to the list
func (c *SellerController) CreatePost(ctx *gin.Context) {
	var form dto.SellerForm
	if err := ctx.ShouldBind(&form); err != nil {
		middleware.HandleError(ctx, bindError(err))
		return
	}

	if err := c.sellerService.Insert(ctx.Request.Context(), form.ToModel()); err != nil {
		c.handleFormError(ctx, err, dto.SellerFormViewModel{
			Title:  "Create Seller",
			Action: "/Seller/Create",
			Seller: form,
		})
		return
	}

	ctx.Redirect(http.StatusFound, sellerIndexPath)
}

// Edit renders the form for an existing seller
func (c *SellerController) Edit(ctx *gin.Context) {
	id, err := parseID(ctx, "seller")
	if err != nil {
		middleware.HandleError(ctx, err)
		return
	}

	seller, err := c.sellerService.FindByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleError(ctx, err)
		return
	}

	c.renderForm(ctx, http.StatusOK, dto.SellerFormViewModel{
		Title:  "Edit Seller",
		Action: ctx.Request.URL.Path,
		Seller: dto.NewSellerForm(seller),
	})
}

// EditPost validates and updates a seller. The posted id must match the path.
func (c *SellerController) EditPost(ctx *gin.Context) {
	id, err := parseID(ctx, "seller")
	if err != nil {
		middleware.HandleError(ctx, err)
		return
	}

	var form dto.SellerForm
	if err := ctx.ShouldBind(&form); err != nil {
		middleware.HandleError(ctx, bindError(err))
		return
	}
	if form.ID != id {
		middleware.HandleError(ctx, apperrors.ErrIDMismatch)
		return
	}

	if err := c.sellerService.Update(ctx.Request.Context(), form.ToModel()); err != nil {
		c.handleFormError(ctx, err, dto.SellerFormViewModel{
			Title:  "Edit Seller",
			Action: ctx.Request.URL.Path,
			Seller: form,
		})
		return
	}

	ctx.Redirect(http.StatusFound, sellerIndexPath)
}

// Delete renders the delete confirmation
func (c *SellerController) Delete(ctx *gin.Context) {
	c.renderSeller(ctx, "seller/delete", "Delete Seller")
}

// DeletePost removes a seller and redirects to the list
func (c *SellerController) DeletePost(ctx *gin.Context) {
	id, err := parseID(ctx, "seller")
	if err != nil {
		middleware.HandleError(ctx, err)
		return
	}

	if err := c.sellerService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleError(ctx, err)
		return
	}

	ctx.Redirect(http.StatusFound, sellerIndexPath)
}

func (c *SellerController) renderSeller(ctx *gin.Context, view, title string) {
	id, err := parseID(ctx, "seller")
	if err != nil {
		middleware.HandleError(ctx, err)
		return
	}

	seller, err := c.sellerService.FindByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleError(ctx, err)
		return
	}

	middleware.Render(ctx, http.StatusOK, view, dto.SellerViewModel{
		Title:  title,
		Seller: seller,
	})
}

// renderForm fills in the department selector and renders the seller form
func (c *SellerController) renderForm(ctx *gin.Context, status int, view dto.SellerFormViewModel) {
	departments, err := c.departmentService.FindAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleError(ctx, err)
		return
	}

	view.Departments = departments
	middleware.Render(ctx, status, "seller/form", view)
}

// handleFormError re-renders the form with field messages on validation
// failure and hands anything else to the central error handler
func (c *SellerController) handleFormError(ctx *gin.Context, err error, view dto.SellerFormViewModel) {
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		view.Errors = fieldErrs
		c.renderForm(ctx, http.StatusBadRequest, view)
		return
	}
	middleware.HandleError(ctx, err)
}
