package provider

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/pantrychef/backend/config"
)

// SpoonacularClient fetches random recipes from the Spoonacular API.
type SpoonacularClient struct {
	client *resty.Client
	apiKey string
	logger *zap.Logger
}

type randomRecipesResponse struct {
	Recipes []CandidateRecipe `json:"recipes"`
}

// NewSpoonacularClient creates a client for the configured Spoonacular
// endpoint. The request timeout comes from config; the reference behavior had
// none, which left page requests hanging on a slow upstream.
func NewSpoonacularClient(cfg *config.Config, logger *zap.Logger) *SpoonacularClient {
	client := resty.New().
		SetBaseURL(cfg.Spoonacular.BaseURL).
		SetTimeout(cfg.Spoonacular.Timeout).
		SetHeader("Accept", "application/json")

	logger.Info("spoonacular client configured",
		zap.String("base_url", cfg.Spoonacular.BaseURL),
		zap.String("api_key", config.MaskKey(cfg.Spoonacular.APIKey)),
		zap.Duration("timeout", cfg.Spoonacular.Timeout),
	)

	return &SpoonacularClient{
		client: client,
		apiKey: cfg.Spoonacular.APIKey,
		logger: logger,
	}
}

// Random fetches count randomized candidate recipes. Any transport failure,
// non-2xx status, or unparseable body is reported as ErrUpstreamUnavailable.
func (c *SpoonacularClient) Random(ctx context.Context, count int) ([]CandidateRecipe, error) {
	var payload randomRecipesResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("number", fmt.Sprintf("%d", count)).
		SetQueryParam("apiKey", c.apiKey).
		SetResult(&payload).
		Get("/recipes/random")
	if err != nil {
		c.logger.Warn("spoonacular request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if resp.IsError() {
		c.logger.Warn("spoonacular returned error status",
			zap.Int("status", resp.StatusCode()),
		)
		return nil, fmt.Errorf("%w: status %d", ErrUpstreamUnavailable, resp.StatusCode())
	}

	c.logger.Debug("fetched candidate recipes",
		zap.Int("requested", count),
		zap.Int("received", len(payload.Recipes)),
	)
	return payload.Recipes, nil
}
