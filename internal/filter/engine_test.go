package filter

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrychef/backend/internal/model"
)

func recipe(title string, restrictions []string, ingredients ...string) model.Recipe {
	return model.Recipe{
		Title:               title,
		Description:         "About " + title,
		Ingredients:         model.JSONStringArray(ingredients),
		DietaryRestrictions: model.JSONStringArray(restrictions),
	}
}

func TestEmptyCriteriaGuard(t *testing.T) {
	catalog := []model.Recipe{recipe("Pancakes", nil, "flour")}

	result := Apply(catalog, Criteria{})
	assert.Empty(t, result.Matches)
	assert.Equal(t, MsgNoCriteria, result.Message)

	// Whitespace-only term still counts as empty.
	result = Apply(catalog, Criteria{Term: "   "})
	assert.Equal(t, MsgNoCriteria, result.Message)
}

func TestTermMatchesTitleDescriptionAndIngredients(t *testing.T) {
	catalog := []model.Recipe{
		recipe("Shrimp Curry", nil, "shrimp", "curry paste"),
		recipe("Pancakes", nil, "flour", "eggs"),
		{Title: "Toast", Description: "Best with shrimp butter", Ingredients: model.JSONStringArray{"bread"}},
	}

	result := Apply(catalog, Criteria{Term: "SHRIMP"})
	require.Len(t, result.Matches, 2)
	assert.Equal(t, "Shrimp Curry", result.Matches[0].Recipe.Title)
	assert.Equal(t, "Toast", result.Matches[1].Recipe.Title)
	assert.Empty(t, result.Message)

	// Ingredient-only hit.
	result = Apply(catalog, Criteria{Term: "curry paste"})
	require.Len(t, result.Matches, 1)
}

func TestRestrictionsRequireAll(t *testing.T) {
	catalog := []model.Recipe{
		recipe("A", []string{"No nuts"}, "x"),
		recipe("B", []string{"No nuts", "No gluten"}, "x"),
		recipe("C", []string{"No gluten"}, "x"),
		recipe("D", nil, "x"),
	}

	result := Apply(catalog, Criteria{Restrictions: []string{"No nuts"}})
	require.Len(t, result.Matches, 2)
	assert.Equal(t, "A", result.Matches[0].Recipe.Title)
	assert.Equal(t, "B", result.Matches[1].Recipe.Title)

	result = Apply(catalog, Criteria{Restrictions: []string{"No nuts", "No gluten"}})
	require.Len(t, result.Matches, 1)
	assert.Equal(t, "B", result.Matches[0].Recipe.Title)
}

func TestPantryToleranceBoundary(t *testing.T) {
	ingredients := func(n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = fmt.Sprintf("item %d", i)
		}
		return out
	}

	pantry := map[string][]string{"Essentials": {"covered"}}

	// Missing exactly 4 of 5: included.
	fourMissing := recipe("Four", nil, append(ingredients(4), "covered")...)
	// Missing 5 of 6: excluded.
	fiveMissing := recipe("Five", nil, append(ingredients(5), "covered")...)

	result := Apply([]model.Recipe{fourMissing, fiveMissing}, Criteria{Pantry: pantry})
	require.Len(t, result.Matches, 1)
	assert.Equal(t, "Four", result.Matches[0].Recipe.Title)
	assert.Equal(t, 4, result.Matches[0].MissingCount)
}

func TestPantryMatchingIsCaseInsensitiveAcrossCategories(t *testing.T) {
	catalog := []model.Recipe{recipe("Stir Fry", nil, "Chicken", "Rice", "Soy Sauce")}
	pantry := map[string][]string{
		"Meats":         {"chicken"},
		"Carbohydrates": {"RICE"},
	}

	result := Apply(catalog, Criteria{Pantry: pantry})
	require.Len(t, result.Matches, 1)
	assert.Equal(t, []string{"Soy Sauce"}, result.Matches[0].MissingIngredients)
	assert.Equal(t, 1, result.Matches[0].MissingCount)
}

func TestMissingComputedWithoutPantrySelection(t *testing.T) {
	catalog := []model.Recipe{recipe("Pancakes", nil, "flour", "eggs")}

	result := Apply(catalog, Criteria{Term: "pancakes"})
	require.Len(t, result.Matches, 1)
	// No pantry selected: every ingredient is missing relative to the empty set.
	assert.Equal(t, []string{"flour", "eggs"}, result.Matches[0].MissingIngredients)
	assert.Equal(t, 2, result.Matches[0].MissingCount)
}

func TestCriteriaAreANDed(t *testing.T) {
	catalog := []model.Recipe{
		recipe("Veggie Pasta", []string{"No meat"}, "pasta", "tomato"),
		recipe("Meat Pasta", nil, "pasta", "beef"),
	}

	result := Apply(catalog, Criteria{
		Term:         "pasta",
		Restrictions: []string{"No meat"},
		Pantry:       map[string][]string{"Carbohydrates": {"pasta"}},
	})
	require.Len(t, result.Matches, 1)
	assert.Equal(t, "Veggie Pasta", result.Matches[0].Recipe.Title)
	assert.Equal(t, []string{"tomato"}, result.Matches[0].MissingIngredients)
}

func TestNoMatchesMessage(t *testing.T) {
	catalog := []model.Recipe{recipe("Pancakes", nil, "flour")}

	result := Apply(catalog, Criteria{Term: "sushi"})
	assert.Empty(t, result.Matches)
	assert.Equal(t, MsgNoMatches, result.Message)
}

func TestEmptyCatalog(t *testing.T) {
	result := Apply(nil, Criteria{Term: "anything"})
	assert.Empty(t, result.Matches)
	assert.Equal(t, MsgNoMatches, result.Message)
}

func TestVocabularyCoversAllCategories(t *testing.T) {
	for _, category := range PantryCategories {
		items, ok := PantryItems[category]
		assert.True(t, ok, "category %q has no items", category)
		assert.NotEmpty(t, items)
	}
	assert.Len(t, RestrictionOptions, 6)
}
