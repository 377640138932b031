package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/salesweb/internal/app/models/dto"
	"github.com/yigit/salesweb/internal/middleware"
)

// HomeController serves the landing, privacy and error pages
type HomeController struct{}

// NewHomeController creates a new HomeController
func NewHomeController() *HomeController {
	return &HomeController{}
}

// Index renders the welcome page
func (c *HomeController) Index(ctx *gin.Context) {
	middleware.Render(ctx, http.StatusOK, "home/index", dto.HomeViewModel{
		Title:   "Home Page",
		Message: "Welcome to the Sales Web MVC App, manage your sellers and departments.",
	})
}

// Privacy renders the privacy page
func (c *HomeController) Privacy(ctx *gin.Context) {
	middleware.Render(ctx, http.StatusOK, "home/privacy", dto.HomeViewModel{
		Title:   "Privacy Policy",
		Message: "Use this page to detail your site's privacy policy.",
	})
}

// Error renders the generic error page with the request correlation id
func (c *HomeController) Error(ctx *gin.Context) {
	middleware.RenderError(ctx, http.StatusOK,
		dto.NewErrorDetail(dto.ErrorCodeInternalServer, "An error occurred while processing your request."))
}
