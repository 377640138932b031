package main

import (
	"os"

	"github.com/yigit/salesweb/internal/pkg/logger" // Still needed for initial error logging
	"github.com/yigit/salesweb/internal/server"
)

func main() {
	// NewServer loads config, sets up logging, opens and seeds the database and builds the router
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal or a listener failure
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
