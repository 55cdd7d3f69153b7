// Standalone seeding tool: fetches a batch of recipes from the upstream
// provider and persists the new ones, mirroring what the API does on demand.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/pantrychef/backend/config"
	"github.com/pantrychef/backend/internal/ingest"
	"github.com/pantrychef/backend/internal/logging"
	"github.com/pantrychef/backend/internal/provider"
	"github.com/pantrychef/backend/internal/store"
)

func main() {
	count := flag.Int("n", 0, "number of recipes to seed (default: configured seed count)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *count < 1 {
		*count = cfg.Catalog.DefaultSeedCount
	}

	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := store.Open(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	recipes := store.NewRecipeStore(db)
	spoonacular := provider.NewSpoonacularClient(cfg, logger)
	pipeline := ingest.New(spoonacular, recipes, logger)

	added, err := pipeline.Ingest(context.Background(), *count)
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	fmt.Printf("%d new recipes added to the database.\n", added)
}
