package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pantrychef/backend/internal/store"
)

// HistoryHandler manages per-client cooking history.
type HistoryHandler struct {
	history store.HistoryStore
	recipes store.RecipeStore
	logger  *zap.Logger
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(history store.HistoryStore, recipes store.RecipeStore, logger *zap.Logger) *HistoryHandler {
	return &HistoryHandler{
		history: history,
		recipes: recipes,
		logger:  logger,
	}
}

// RegisterRoutes mounts the history routes on the given group.
func (h *HistoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	history := router.Group("/history")
	{
		history.GET("", h.ListHistory)
		history.POST("/:id", h.AddToHistory)
		history.DELETE("/:id", h.RemoveFromHistory)
	}
}

// ListHistory serves GET /history for the requesting client.
func (h *HistoryHandler) ListHistory(c *gin.Context) {
	client, ok := clientID(c)
	if !ok {
		return
	}

	recipes, err := h.history.List(c.Request.Context(), client)
	if err != nil {
		h.logger.Error("failed to list history", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// AddToHistory serves POST /history/:id.
func (h *HistoryHandler) AddToHistory(c *gin.Context) {
	client, ok := clientID(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if _, err := h.recipes.FindByID(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	if err := h.history.Add(c.Request.Context(), client, id); err != nil {
		h.logger.Error("failed to add history entry", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving history entry"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"recipe_id": id})
}

// RemoveFromHistory serves DELETE /history/:id.
func (h *HistoryHandler) RemoveFromHistory(c *gin.Context) {
	client, ok := clientID(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.history.Remove(c.Request.Context(), client, id); err != nil {
		h.logger.Error("failed to remove history entry", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error removing history entry"})
		return
	}
	c.Status(http.StatusNoContent)
}
