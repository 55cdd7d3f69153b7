package router

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pantrychef/backend/internal/api"
	"github.com/pantrychef/backend/internal/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Recipes   *api.RecipeHandler
	Seed      *api.SeedHandler
	Filter    *api.FilterHandler
	Favorites *api.FavoritesHandler
	History   *api.HistoryHandler
	// SeedLimiter guards the seeding endpoint; pass a pass-through handler
	// when rate limiting is disabled.
	SeedLimiter gin.HandlerFunc
}

// SetupRouter configures the application routes
func SetupRouter(h Handlers, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(requestid.New())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		h.Recipes.RegisterRoutes(v1)
		h.Filter.RegisterRoutes(v1)
		h.Favorites.RegisterRoutes(v1)
		h.History.RegisterRoutes(v1)

		limiter := h.SeedLimiter
		if limiter == nil {
			limiter = func(c *gin.Context) { c.Next() }
		}
		h.Seed.RegisterRoutes(v1, limiter)
	}

	return router
}
