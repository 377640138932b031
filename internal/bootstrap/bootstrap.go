package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/salesweb/internal/app/controllers"
	appRepos "github.com/yigit/salesweb/internal/app/repositories"
	appRoutes "github.com/yigit/salesweb/internal/app/routes"
	appServices "github.com/yigit/salesweb/internal/app/services"
	"github.com/yigit/salesweb/internal/config"
	"github.com/yigit/salesweb/internal/db"
	appMiddleware "github.com/yigit/salesweb/internal/middleware"
	"github.com/yigit/salesweb/internal/pkg/helpers"
	"github.com/yigit/salesweb/internal/pkg/logger"
	"github.com/yigit/salesweb/internal/pkg/metrics"
	"github.com/yigit/salesweb/internal/seed"
	"github.com/yigit/salesweb/web"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	SellerService        appServices.SellerService
	DepartmentService    appServices.DepartmentService
	HomeController       *appControllers.HomeController
	SellerController     *appControllers.SellerController
	DepartmentController *appControllers.DepartmentController
	Repos                *appRepos.Repositories
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := SetupLogger(cfg)
	return cfg, lgr, nil
}

// SetupLogger configures the global logger from cfg
func SetupLogger(cfg *config.Config) zerolog.Logger {
	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return lgr
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds demo data. A seeding failure is logged and startup continues.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.DB, error) {
	lgr.Info().Str("driver", cfg.Database.Driver).Msg("Establishing database connection...")
	database, err := db.Open(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	lgr.Info().Msg("Running database migrations...")
	if err := database.Migrate(ctx, lgr); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Seed.Enabled {
		if _, err := seed.NewSeeder(database, lgr).Seed(ctx); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	} else {
		lgr.Info().Msg("Seeding disabled")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(database *db.DB, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	svc := appServices.NewServices(deps.Repos)
	deps.SellerService = svc.SellerService
	deps.DepartmentService = svc.DepartmentService

	deps.HomeController = appControllers.NewHomeController()
	deps.SellerController = appControllers.NewSellerController(deps.SellerService, deps.DepartmentService)
	deps.DepartmentController = appControllers.NewDepartmentController(deps.DepartmentService)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	} else {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	}

	router := gin.New()
	router.RedirectFixedPath = true
	router.SetHTMLTemplate(web.MustTemplates())

	router.Use(
		appMiddleware.RequestID(lgr),
		appMiddleware.RequestLogger(),
		metrics.Middleware(),
		appMiddleware.Recovery(),
	)

	if cfg.Server.HTTPSPort != "" {
		router.Use(appMiddleware.HTTPSRedirect(cfg.Server.HTTPSPort))
	} else {
		lgr.Warn().Msg("Failed to determine the https port for redirect, serving plain HTTP only")
	}

	if !cfg.IsDevelopment() {
		maxAge := helpers.ParseDuration(cfg.Server.HSTSMaxAge, 30*24*time.Hour)
		router.Use(appMiddleware.HSTS(maxAge))
	}

	if cfg.Server.StaticEnabled {
		router.StaticFS("/static", web.Static())
	}

	appRoutes.SetupRouter(router,
		deps.HomeController,
		deps.SellerController,
		deps.DepartmentController,
	)

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Liveness endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
