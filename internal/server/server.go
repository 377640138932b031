package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/salesweb/internal/bootstrap"
	"github.com/yigit/salesweb/internal/config"
	"github.com/yigit/salesweb/internal/db"
)

// Server holds the state for the HTTP server.
type Server struct {
	config *config.Config
	router *gin.Engine
	db     *db.DB
	logger zerolog.Logger
	http   *http.Server
	https  *http.Server
}

// NewServer creates and initializes a new server instance by calling bootstrap functions.
func NewServer() (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	database, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	deps := bootstrap.BuildDependencies(database, lgr)
	router := bootstrap.SetupRouter(cfg, deps, lgr)

	return New(cfg, router, database, lgr), nil
}

// New assembles a server from already built parts
func New(cfg *config.Config, router *gin.Engine, database *db.DB, lgr zerolog.Logger) *Server {
	s := &Server{
		config: cfg,
		router: router,
		db:     database,
		logger: lgr,
	}

	s.http = newHTTPServer(":"+cfg.Server.Port, router)
	if cfg.TLSEnabled() {
		s.https = newHTTPServer(":"+cfg.Server.HTTPSPort, router)
	}
	return s
}

func newHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}

// Run starts the HTTP (and HTTPS) listeners and handles graceful shutdown.
func (s *Server) Run() error {
	s.logger.Info().Str("port", s.config.Server.Port).Msg("Starting server...")

	// Channel to listen for errors starting the listeners
	serverErrors := make(chan error, 2)

	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	if s.https != nil {
		go func() {
			s.logger.Info().Str("addr", s.https.Addr).Msg("HTTPS server listening")
			serverErrors <- s.https.ListenAndServeTLS(s.config.Server.TLSCertFile, s.config.Server.TLSKeyFile)
		}()
	}

	// Channel to listen for OS signals
	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(osSignals)

	// Block until we receive either a server error or an OS signal
	var runErr error
	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			runErr = fmt.Errorf("error starting server: %w", err)
		}
	case sig := <-osSignals:
		s.logger.Info().Str("signal", sig.String()).Msg("Received OS signal, initiating shutdown...")
	}

	if err := s.Shutdown(context.Background()); err != nil {
		return errors.Join(runErr, err)
	}
	return runErr
}

// Shutdown gracefully stops the listeners and closes the connection pool.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var shutdownErr error

	for _, srv := range []*http.Server{s.http, s.https} {
		if srv == nil {
			continue
		}
		s.logger.Info().Str("addr", srv.Addr).Msg("Shutting down server...")
		if err := srv.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Str("addr", srv.Addr).Msg("Server shutdown error")
			shutdownErr = errors.Join(shutdownErr, err)
		}
	}

	if s.db != nil {
		s.logger.Info().Msg("Closing database connection pool...")
		if err := s.db.Close(); err != nil {
			s.logger.Error().Err(err).Msg("Database close error")
			shutdownErr = errors.Join(shutdownErr, err)
		} else {
			s.logger.Info().Msg("Database connection pool closed.")
		}
	}

	s.logger.Info().Msg("Server shutdown process complete.")
	if shutdownErr != nil {
		return fmt.Errorf("server shutdown completed with errors: %w", shutdownErr)
	}
	return nil
}

// Handler exposes the router, used by tests
func (s *Server) Handler() http.Handler {
	return s.router
}
