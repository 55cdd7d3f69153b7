// Package ingest normalizes upstream recipe payloads into stored records.
package ingest

import (
	"context"
	"errors"
	"html"
	"math"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/pantrychef/backend/internal/model"
	"github.com/pantrychef/backend/internal/provider"
	"github.com/pantrychef/backend/internal/store"
)

// DescriptionPlaceholder is stored when the provider sends no summary.
const DescriptionPlaceholder = "No description available"

// Pipeline fetches candidate recipes from the provider, validates and
// normalizes them, and persists the ones not already in the store.
type Pipeline struct {
	provider provider.Provider
	recipes  store.RecipeStore
	policy   *bluemonday.Policy
	logger   *zap.Logger
}

// New creates a new ingestion pipeline.
func New(p provider.Provider, recipes store.RecipeStore, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		provider: p,
		recipes:  recipes,
		// Strict policy removes every tag and attribute, leaving text only.
		policy: bluemonday.StrictPolicy(),
		logger: logger,
	}
}

// Ingest requests count candidates from the provider and persists the valid,
// previously unseen ones. It returns the number of newly added records.
// Provider failures surface as provider.ErrUpstreamUnavailable; invalid
// candidates and duplicate titles are skipped, never errors.
func (p *Pipeline) Ingest(ctx context.Context, count int) (int, error) {
	p.logger.Info("fetching recipes from upstream provider", zap.Int("requested", count))

	candidates, err := p.provider.Random(ctx, count)
	if err != nil {
		return 0, err
	}
	if len(candidates) == 0 {
		p.logger.Info("no recipes found in the provider response")
		return 0, nil
	}

	added := 0
	for _, candidate := range candidates {
		ingredients := candidate.IngredientLines()
		if candidate.Title == "" || len(ingredients) == 0 {
			p.logger.Debug("skipping candidate with missing required fields",
				zap.String("title", candidate.Title),
			)
			continue
		}

		// De-duplication is by exact, case-sensitive title.
		_, err := p.recipes.FindByTitle(ctx, candidate.Title)
		if err == nil {
			continue
		}
		if !errors.Is(err, store.ErrNotFound) {
			return added, err
		}

		recipe := p.buildRecipe(candidate, ingredients)
		if err := p.recipes.Create(ctx, recipe); err != nil {
			return added, err
		}
		added++
	}

	p.logger.Info("ingestion complete",
		zap.Int("candidates", len(candidates)),
		zap.Int("added", added),
	)
	return added, nil
}

func (p *Pipeline) buildRecipe(c provider.CandidateRecipe, ingredients []string) *model.Recipe {
	return &model.Recipe{
		Title:               c.Title,
		Description:         p.stripMarkup(c.Summary),
		Image:               c.Image,
		Time:                c.ReadyInMinutes,
		Ingredients:         model.JSONStringArray(ingredients),
		Instructions:        model.JSONStringArray(c.Instructions()),
		DietaryRestrictions: model.JSONStringArray(c.Diets),
		Rating:              scoreToRating(c.SpoonacularScore),
	}
}

// stripMarkup removes all tags and attributes from the provider's rich-text
// summary, leaving plain text.
func (p *Pipeline) stripMarkup(summary string) string {
	if strings.TrimSpace(summary) == "" {
		return DescriptionPlaceholder
	}
	// bluemonday escapes entities in the remaining text; unescape so the
	// stored description reads as the author wrote it.
	return html.UnescapeString(p.policy.Sanitize(summary))
}

// scoreToRating converts the provider's 0-100 score to a 0-5 display rating,
// rounded to one decimal. The rating is never used for filtering.
func scoreToRating(score float64) float64 {
	if score <= 0 {
		return 0
	}
	return math.Round(score/20*10) / 10
}
