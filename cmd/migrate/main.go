// Migration tool: creates or updates the database schema without starting
// the API server.
package main

import (
	"log"

	"github.com/pantrychef/backend/config"
	"github.com/pantrychef/backend/internal/logging"
	"github.com/pantrychef/backend/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// store.Open runs migrations as part of connecting.
	if _, err := store.Open(cfg, logger); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	logger.Info("migrations applied")
}
