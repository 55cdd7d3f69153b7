package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pantrychef/backend/internal/catalog"
	"github.com/pantrychef/backend/internal/provider"
)

// SeedHandler triggers explicit catalog seeding.
type SeedHandler struct {
	catalog      *catalog.Service
	defaultCount int
	logger       *zap.Logger
}

// NewSeedHandler creates a new SeedHandler.
func NewSeedHandler(svc *catalog.Service, defaultCount int, logger *zap.Logger) *SeedHandler {
	return &SeedHandler{
		catalog:      svc,
		defaultCount: defaultCount,
		logger:       logger,
	}
}

// RegisterRoutes mounts the seeding route on the given group. The rate limit
// middleware is passed in so the router stays the single wiring point.
func (h *SeedHandler) RegisterRoutes(router *gin.RouterGroup, limiter gin.HandlerFunc) {
	router.POST("/seed-recipes", limiter, h.SeedRecipes)
}

type seedRequest struct {
	Number int `json:"number"`
}

// SeedRecipes serves POST /seed-recipes {number}, defaulting to the
// configured count when the body is empty or the number non-positive.
func (h *SeedHandler) SeedRecipes(c *gin.Context) {
	var req seedRequest
	// An empty or malformed body falls back to the default batch size.
	_ = c.ShouldBindJSON(&req)
	if req.Number < 1 {
		req.Number = h.defaultCount
	}

	added, err := h.catalog.Seed(c.Request.Context(), req.Number)
	if errors.Is(err, provider.ErrUpstreamUnavailable) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Recipe provider is unavailable"})
		return
	}
	if err != nil {
		h.logger.Error("seeding failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error seeding recipes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("%d new recipes added to the database.", added),
		"added":   added,
	})
}
