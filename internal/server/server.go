package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pantrychef/backend/config"
	"github.com/pantrychef/backend/internal/api"
	"github.com/pantrychef/backend/internal/cache"
	"github.com/pantrychef/backend/internal/catalog"
	"github.com/pantrychef/backend/internal/ingest"
	"github.com/pantrychef/backend/internal/middleware"
	"github.com/pantrychef/backend/internal/provider"
	"github.com/pantrychef/backend/internal/router"
	"github.com/pantrychef/backend/internal/store"
)

// Server represents the HTTP server
type Server struct {
	http   *http.Server
	logger *zap.Logger
}

// New wires the full application: store, provider, ingestion pipeline,
// catalog service, cache, and HTTP handlers.
func New(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := store.Open(cfg, logger)
	if err != nil {
		return nil, err
	}

	redisClient, err := store.NewRedisClient(cfg, logger)
	if err != nil {
		// Redis is an optimization; run without it rather than refuse to start.
		logger.Warn("continuing without redis", zap.Error(err))
		redisClient = nil
	}

	recipes := store.NewRecipeStore(db)
	favorites := store.NewFavoritesStore(db)
	history := store.NewHistoryStore(db)

	spoonacular := provider.NewSpoonacularClient(cfg, logger)
	pipeline := ingest.New(spoonacular, recipes, logger)

	pages := cache.NewPageCache(redisClient, cfg.Catalog.PageCacheTTL, logger)
	ingester := &cache.InvalidatingIngester{Ingester: pipeline, Pages: pages}
	catalogService := catalog.NewService(recipes, ingester, logger)

	handlers := router.Handlers{
		Recipes:   api.NewRecipeHandler(catalogService, recipes, pages, cfg.Catalog.DefaultPageLimit, logger),
		Seed:      api.NewSeedHandler(catalogService, cfg.Catalog.DefaultSeedCount, logger),
		Filter:    api.NewFilterHandler(catalogService, logger),
		Favorites: api.NewFavoritesHandler(favorites, recipes, logger),
		History:   api.NewHistoryHandler(history, recipes, logger),
	}
	if cfg.RateLimit.Enabled && redisClient != nil {
		limiter := middleware.NewSeedRateLimiter(redisClient, cfg.RateLimit.Requests, cfg.RateLimit.Window)
		handlers.SeedLimiter = limiter.Middleware()
	}

	engine := router.SetupRouter(handlers, logger)

	return &Server{
		http: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
			Handler:      engine,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
		logger: logger,
	}, nil
}

// Start runs the server until it is shut down.
func (s *Server) Start() error {
	s.logger.Info("server listening", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
