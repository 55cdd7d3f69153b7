package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pantrychef/backend/internal/catalog"
	"github.com/pantrychef/backend/internal/filter"
)

// FilterHandler exposes the pure filter engine over HTTP, applied to the
// catalog slice the client has loaded so far.
type FilterHandler struct {
	catalog *catalog.Service
	logger  *zap.Logger
}

// NewFilterHandler creates a new FilterHandler.
func NewFilterHandler(svc *catalog.Service, logger *zap.Logger) *FilterHandler {
	return &FilterHandler{catalog: svc, logger: logger}
}

// RegisterRoutes mounts the filter routes on the given group.
func (h *FilterHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/recipes/filter", h.FilterRecipes)
	router.GET("/filters", h.FilterOptions)
}

type filterRequest struct {
	filter.Criteria
	// Loaded is how many catalog records the client has paged through; the
	// filter runs over that prefix. Zero means the whole stored catalog.
	Loaded int `json:"loaded"`
}

// FilterRecipes serves POST /recipes/filter.
func (h *FilterHandler) FilterRecipes(c *gin.Context) {
	var req filterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter request"})
		return
	}

	n := req.Loaded
	if n < 1 {
		total, err := h.catalog.GetTotal(c.Request.Context())
		if err != nil {
			h.logger.Error("failed to count recipes", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error filtering recipes"})
			return
		}
		n = int(total)
	}

	loaded, err := h.catalog.Loaded(c.Request.Context(), n)
	if err != nil {
		h.logger.Error("failed to load catalog slice", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error filtering recipes"})
		return
	}

	c.JSON(http.StatusOK, filter.Apply(loaded, req.Criteria))
}

// FilterOptions serves GET /filters: the pantry and restriction vocabularies
// the selection UI is built from.
func (h *FilterHandler) FilterOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"pantryCategories": filter.PantryCategories,
		"pantryItems":      filter.PantryItems,
		"restrictions":     filter.RestrictionOptions,
	})
}
