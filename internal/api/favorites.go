package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pantrychef/backend/internal/store"
)

// FavoritesHandler manages per-client saved recipes.
type FavoritesHandler struct {
	favorites store.FavoritesStore
	recipes   store.RecipeStore
	logger    *zap.Logger
}

// NewFavoritesHandler creates a new FavoritesHandler.
func NewFavoritesHandler(favorites store.FavoritesStore, recipes store.RecipeStore, logger *zap.Logger) *FavoritesHandler {
	return &FavoritesHandler{
		favorites: favorites,
		recipes:   recipes,
		logger:    logger,
	}
}

// RegisterRoutes mounts the favorites routes on the given group.
func (h *FavoritesHandler) RegisterRoutes(router *gin.RouterGroup) {
	favorites := router.Group("/favorites")
	{
		favorites.GET("", h.ListFavorites)
		favorites.POST("/:id", h.AddFavorite)
		favorites.DELETE("/:id", h.RemoveFavorite)
	}
}

// ListFavorites serves GET /favorites for the requesting client.
func (h *FavoritesHandler) ListFavorites(c *gin.Context) {
	client, ok := clientID(c)
	if !ok {
		return
	}

	recipes, err := h.favorites.List(c.Request.Context(), client)
	if err != nil {
		h.logger.Error("failed to list favorites", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching favorites"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// AddFavorite serves POST /favorites/:id.
func (h *FavoritesHandler) AddFavorite(c *gin.Context) {
	client, ok := clientID(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	// The id must reference a stored recipe.
	if _, err := h.recipes.FindByID(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	if err := h.favorites.Add(c.Request.Context(), client, id); err != nil {
		h.logger.Error("failed to add favorite", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving favorite"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"recipe_id": id})
}

// RemoveFavorite serves DELETE /favorites/:id.
func (h *FavoritesHandler) RemoveFavorite(c *gin.Context) {
	client, ok := clientID(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.favorites.Remove(c.Request.Context(), client, id); err != nil {
		h.logger.Error("failed to remove favorite", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error removing favorite"})
		return
	}
	c.Status(http.StatusNoContent)
}
