// Package catalog serves pages of the recipe catalog, seeding it on demand
// from the upstream provider when a requested page would come up short.
package catalog

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/pantrychef/backend/internal/model"
	"github.com/pantrychef/backend/internal/provider"
	"github.com/pantrychef/backend/internal/store"
)

// Ingester is the slice of the ingestion pipeline the service needs.
type Ingester interface {
	Ingest(ctx context.Context, count int) (int, error)
}

// PageResult is one page of the catalog plus the current total.
type PageResult struct {
	Recipes []model.Recipe `json:"recipes"`
	Total   int64          `json:"total"`
	Page    int            `json:"page"`
	Limit   int            `json:"limit"`
}

// Service orchestrates paged reads over the recipe store.
type Service struct {
	recipes  store.RecipeStore
	ingester Ingester
	logger   *zap.Logger
}

// NewService creates a new catalog service.
func NewService(recipes store.RecipeStore, ingester Ingester, logger *zap.Logger) *Service {
	return &Service{
		recipes:  recipes,
		ingester: ingester,
		logger:   logger,
	}
}

// GetPage returns the requested page in insertion order. When the store holds
// fewer records than the page needs, it ingests exactly the shortfall first;
// one attempt only, so the returned page may still be short if the provider
// sent rejects or duplicates. An upstream failure degrades to serving
// whatever currently exists; a store failure is a hard error.
//
// There is no mutual exclusion across requests: two concurrent short-page
// reads may both trigger ingestion. The title unique index keeps the catalog
// consistent; the redundant upstream call is tolerated.
func (s *Service) GetPage(ctx context.Context, page, limit int) (*PageResult, error) {
	offset := (page - 1) * limit

	total, err := s.recipes.Count(ctx)
	if err != nil {
		return nil, err
	}

	if needed := int64(offset + limit); total < needed {
		shortfall := int(needed - total)
		s.logger.Info("seeding additional recipes",
			zap.Int("page", page),
			zap.Int("limit", limit),
			zap.Int64("total", total),
			zap.Int("shortfall", shortfall),
		)

		if _, err := s.ingester.Ingest(ctx, shortfall); err != nil {
			if !errors.Is(err, provider.ErrUpstreamUnavailable) {
				return nil, err
			}
			// Upstream is down; serve what we have.
			s.logger.Warn("upstream unavailable, serving existing records", zap.Error(err))
		}

		total, err = s.recipes.Count(ctx)
		if err != nil {
			return nil, err
		}
	}

	recipes, err := s.recipes.Page(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	return &PageResult{
		Recipes: recipes,
		Total:   total,
		Page:    page,
		Limit:   limit,
	}, nil
}

// Seed ingests count additional recipes, independent of any page request.
func (s *Service) Seed(ctx context.Context, count int) (int, error) {
	return s.ingester.Ingest(ctx, count)
}

// GetTotal returns the current number of stored records.
func (s *Service) GetTotal(ctx context.Context) (int64, error) {
	return s.recipes.Count(ctx)
}

// Loaded returns the first n catalog records in insertion order. The filter
// endpoint uses it to evaluate criteria over the slice of the catalog the
// client has paged through so far.
func (s *Service) Loaded(ctx context.Context, n int) ([]model.Recipe, error) {
	return s.recipes.Page(ctx, 0, n)
}
