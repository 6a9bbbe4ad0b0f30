package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/nfrund/resumio/internal/config"
	"github.com/nfrund/resumio/internal/logging"
	"github.com/nfrund/resumio/internal/server"
)

// APIBaseURL can be set at build time to point the site at a fixed backend.
// Example: go build -ldflags "-X 'main.APIBaseURL=https://api.resumio.app'"
var APIBaseURL string

func main() {
	if APIBaseURL != "" {
		os.Setenv("API_BASE_URL", APIBaseURL)
	}

	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.New(cfg.GetLogFormat(), cfg.GetLogLevel())

	// Create a new server instance.
	s, err := server.New(cfg)
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	// Register all application routes.
	if err := s.RegisterRoutes(); err != nil {
		slog.Error("Failed to register routes", "error", err)
		os.Exit(1)
	}

	// Start the server.
	if err := s.Start(context.Background()); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
