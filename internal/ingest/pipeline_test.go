package ingest_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pantrychef/backend/internal/ingest"
	"github.com/pantrychef/backend/internal/provider"
	"github.com/pantrychef/backend/internal/store"
	"github.com/pantrychef/backend/internal/testdb"
)

// fakeProvider returns a canned batch, recording each requested count.
type fakeProvider struct {
	batches   [][]provider.CandidateRecipe
	err       error
	requested []int
}

func (f *fakeProvider) Random(_ context.Context, count int) ([]provider.CandidateRecipe, error) {
	f.requested = append(f.requested, count)
	if f.err != nil {
		return nil, f.err
	}
	if len(f.batches) == 0 {
		return nil, nil
	}
	batch := f.batches[0]
	if len(f.batches) > 1 {
		f.batches = f.batches[1:]
	}
	return batch, nil
}

func candidate(title string, ingredients ...string) provider.CandidateRecipe {
	c := provider.CandidateRecipe{
		Title:          title,
		Summary:        "A tasty dish",
		Image:          "https://img.example.com/" + title + ".jpg",
		ReadyInMinutes: 25,
		Diets:          []string{"vegetarian"},
		AnalyzedInstructions: []provider.AnalyzedInstruction{
			{Steps: []provider.InstructionStep{{Step: "Cook it."}}},
		},
	}
	for _, ing := range ingredients {
		c.ExtendedIngredients = append(c.ExtendedIngredients, provider.ExtendedIngredient{Original: ing})
	}
	return c
}

func newPipeline(t *testing.T, p provider.Provider) (*ingest.Pipeline, store.RecipeStore) {
	db := testdb.Open(t)
	recipes := store.NewRecipeStore(db)
	return ingest.New(p, recipes, zap.NewNop()), recipes
}

func TestIngestAddsNewRecipes(t *testing.T) {
	fake := &fakeProvider{batches: [][]provider.CandidateRecipe{{
		candidate("Pancakes", "1 cup flour", "2 eggs"),
		candidate("Waffles", "1 cup flour", "1 egg"),
	}}}
	pipeline, recipes := newPipeline(t, fake)

	added, err := pipeline.Ingest(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	stored, err := recipes.FindByTitle(context.Background(), "Pancakes")
	require.NoError(t, err)
	assert.Equal(t, []string{"1 cup flour", "2 eggs"}, []string(stored.Ingredients))
	assert.Equal(t, []string{"Cook it."}, []string(stored.Instructions))
	assert.Equal(t, []string{"vegetarian"}, []string(stored.DietaryRestrictions))
	assert.Equal(t, 25, stored.Time)
}

func TestIngestIsIdempotentAcrossBatches(t *testing.T) {
	batch := []provider.CandidateRecipe{
		candidate("Pancakes", "1 cup flour"),
		candidate("Waffles", "1 cup flour"),
	}
	fake := &fakeProvider{batches: [][]provider.CandidateRecipe{batch, batch}}
	pipeline, recipes := newPipeline(t, fake)

	added, err := pipeline.Ingest(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	// Same batch again: every title already present, nothing added.
	added, err = pipeline.Ingest(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 0, added)

	count, err := recipes.Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestIngestSkipsMalformedCandidates(t *testing.T) {
	noIngredients := candidate("Mystery Dish")
	noTitle := candidate("", "1 cup flour")
	fake := &fakeProvider{batches: [][]provider.CandidateRecipe{{
		noIngredients,
		noTitle,
		candidate("Pancakes", "1 cup flour"),
	}}}
	pipeline, recipes := newPipeline(t, fake)

	added, err := pipeline.Ingest(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	_, err = recipes.FindByTitle(context.Background(), "Mystery Dish")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestIngestStripsDescriptionMarkup(t *testing.T) {
	c := candidate("Pancakes", "1 cup flour")
	c.Summary = "<b>Tasty</b> & <i>great</i>"
	fake := &fakeProvider{batches: [][]provider.CandidateRecipe{{c}}}
	pipeline, recipes := newPipeline(t, fake)

	_, err := pipeline.Ingest(context.Background(), 1)
	require.NoError(t, err)

	stored, err := recipes.FindByTitle(context.Background(), "Pancakes")
	require.NoError(t, err)
	assert.Equal(t, "Tasty & great", stored.Description)
}

func TestIngestDefaultsMissingDescription(t *testing.T) {
	c := candidate("Pancakes", "1 cup flour")
	c.Summary = ""
	fake := &fakeProvider{batches: [][]provider.CandidateRecipe{{c}}}
	pipeline, recipes := newPipeline(t, fake)

	_, err := pipeline.Ingest(context.Background(), 1)
	require.NoError(t, err)

	stored, err := recipes.FindByTitle(context.Background(), "Pancakes")
	require.NoError(t, err)
	assert.Equal(t, ingest.DescriptionPlaceholder, stored.Description)
}

func TestIngestEmptyProviderResponse(t *testing.T) {
	fake := &fakeProvider{}
	pipeline, _ := newPipeline(t, fake)

	added, err := pipeline.Ingest(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 0, added)
}

func TestIngestSurfacesUpstreamFailure(t *testing.T) {
	fake := &fakeProvider{err: provider.ErrUpstreamUnavailable}
	pipeline, _ := newPipeline(t, fake)

	_, err := pipeline.Ingest(context.Background(), 10)
	assert.ErrorIs(t, err, provider.ErrUpstreamUnavailable)
}

func TestIngestMissingInstructionsStoredEmpty(t *testing.T) {
	c := candidate("Pancakes", "1 cup flour")
	c.AnalyzedInstructions = nil
	fake := &fakeProvider{batches: [][]provider.CandidateRecipe{{c}}}
	pipeline, recipes := newPipeline(t, fake)

	_, err := pipeline.Ingest(context.Background(), 1)
	require.NoError(t, err)

	stored, err := recipes.FindByTitle(context.Background(), "Pancakes")
	require.NoError(t, err)
	assert.Empty(t, stored.Instructions)
}
