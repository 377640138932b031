package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/salesweb/internal/app/controllers"
	"github.com/yigit/salesweb/internal/middleware"
)

// crudController is the action set shared by the seller and department pages
type crudController interface {
	Index(ctx *gin.Context)
	Details(ctx *gin.Context)
	Create(ctx *gin.Context)
	CreatePost(ctx *gin.Context)
	Edit(ctx *gin.Context)
	EditPost(ctx *gin.Context)
	Delete(ctx *gin.Context)
	DeletePost(ctx *gin.Context)
}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	homeController *controllers.HomeController,
	sellerController *controllers.SellerController,
	departmentController *controllers.DepartmentController,
) {
	router.GET("/", homeController.Index)

	home := router.Group("/Home")
	{
		home.GET("", homeController.Index)
		home.GET("/Index", homeController.Index)
		home.GET("/Privacy", homeController.Privacy)
		home.GET("/Error", homeController.Error)
		home.POST("/Error", homeController.Error)
	}

	registerCRUD(router.Group("/Seller"), sellerController)
	registerCRUD(router.Group("/Department"), departmentController)

	router.NoRoute(middleware.NotFound)
}

// registerCRUD maps the conventional Index/Details/Create/Edit/Delete
// actions. The id is optional in the URL; without it the page is not found.
func registerCRUD(group *gin.RouterGroup, c crudController) {
	group.GET("", c.Index)
	group.GET("/Index", c.Index)

	group.GET("/Details/:id", c.Details)
	group.GET("/Details", middleware.NotFound)

	group.GET("/Create", c.Create)
	group.POST("/Create", c.CreatePost)

	group.GET("/Edit/:id", c.Edit)
	group.POST("/Edit/:id", c.EditPost)
	group.GET("/Edit", middleware.NotFound)

	group.GET("/Delete/:id", c.Delete)
	group.POST("/Delete/:id", c.DeletePost)
	group.GET("/Delete", middleware.NotFound)
}
