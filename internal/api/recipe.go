package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pantrychef/backend/internal/catalog"
	"github.com/pantrychef/backend/internal/store"
)

// pageCache is the slice of the cache layer the handler needs.
type pageCache interface {
	Get(ctx context.Context, page, limit int) (*catalog.PageResult, bool)
	Set(ctx context.Context, result *catalog.PageResult)
}

// RecipeHandler serves paged catalog reads and single-recipe lookups.
type RecipeHandler struct {
	catalog      *catalog.Service
	recipes      store.RecipeStore
	pages        pageCache
	defaultLimit int
	logger       *zap.Logger
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(
	svc *catalog.Service,
	recipes store.RecipeStore,
	pages pageCache,
	defaultLimit int,
	logger *zap.Logger,
) *RecipeHandler {
	return &RecipeHandler{
		catalog:      svc,
		recipes:      recipes,
		pages:        pages,
		defaultLimit: defaultLimit,
		logger:       logger,
	}
}

// RegisterRoutes mounts the recipe routes on the given group.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
	}
}

// ListRecipes serves GET /recipes?page=&limit=. A page the store cannot yet
// fill triggers an on-demand ingestion for exactly the shortfall; an upstream
// outage degrades to serving whatever exists.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	page := positiveIntQuery(c, "page", 1)
	limit := positiveIntQuery(c, "limit", h.defaultLimit)
	ctx := c.Request.Context()

	if result, ok := h.pages.Get(ctx, page, limit); ok {
		c.JSON(http.StatusOK, result)
		return
	}

	result, err := h.catalog.GetPage(ctx, page, limit)
	if err != nil {
		h.logger.Error("failed to fetch recipes", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching recipes"})
		return
	}

	// A short page means ingestion was degraded or rejected candidates; caching
	// it would keep serving the degraded response until the TTL expires, even
	// after the upstream recovers.
	if len(result.Recipes) == limit {
		h.pages.Set(ctx, result)
	}
	c.JSON(http.StatusOK, result)
}

// GetRecipe serves GET /recipes/:id.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	recipe, err := h.recipes.FindByID(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}
	if err != nil {
		h.logger.Error("failed to fetch recipe", zap.Uint("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching recipe"})
		return
	}

	c.JSON(http.StatusOK, recipe)
}
