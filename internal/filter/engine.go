// Package filter implements the multi-criteria recipe filter: free-text
// search, pantry-based ingredient matching with a fuzziness threshold, and
// dietary-restriction matching. It is a pure computation over whatever
// catalog slice is in hand; it never touches the store or the network.
package filter

import (
	"strings"

	"github.com/pantrychef/backend/internal/model"
)

// MissingIngredientTolerance is the maximum number of pantry-missing
// ingredients a recipe may have and still match. Recipes missing more are
// excluded even when some ingredients are covered.
const MissingIngredientTolerance = 4

// Messages returned alongside results. The empty-criteria guard is a UX
// decision, not an error.
const (
	MsgNoCriteria = "Please enter a search term or select at least one filter."
	MsgNoMatches  = "No recipes found matching your search criteria."
)

// Criteria is one filter request.
type Criteria struct {
	// Term is matched case-insensitively as a substring of the title,
	// description, or any ingredient line.
	Term string `json:"term"`
	// Pantry maps category names to the items selected in each. Categories
	// only group the selection; matching flattens them into one set.
	Pantry map[string][]string `json:"pantry"`
	// Restrictions must ALL be present on a recipe for it to match.
	Restrictions []string `json:"restrictions"`
}

// Match is one matching recipe with its computed pantry gap.
type Match struct {
	Recipe             model.Recipe `json:"recipe"`
	MissingIngredients []string     `json:"missingIngredients"`
	MissingCount       int          `json:"missingCount"`
}

// Result holds the matches and an optional user-facing message.
type Result struct {
	Matches []Match `json:"results"`
	Message string  `json:"message,omitempty"`
}

// Apply evaluates criteria over the given catalog slice.
func Apply(catalog []model.Recipe, criteria Criteria) Result {
	term := strings.ToLower(strings.TrimSpace(criteria.Term))
	selected := flattenPantry(criteria.Pantry)
	noTerm := term == ""
	noPantry := len(selected) == 0
	noRestrictions := len(criteria.Restrictions) == 0

	if noTerm && noPantry && noRestrictions {
		return Result{Matches: []Match{}, Message: MsgNoCriteria}
	}

	matches := make([]Match, 0, len(catalog))
	for _, recipe := range catalog {
		if !noTerm && !termMatches(recipe, term) {
			continue
		}
		if !noRestrictions && !restrictionsMatch(recipe, criteria.Restrictions) {
			continue
		}

		// The pantry gap is computed for every match, even when no pantry
		// items are selected, so the client can always display it.
		missing := missingIngredients(recipe, selected)
		if !noPantry && len(missing) > MissingIngredientTolerance {
			continue
		}

		matches = append(matches, Match{
			Recipe:             recipe,
			MissingIngredients: missing,
			MissingCount:       len(missing),
		})
	}

	if len(matches) == 0 {
		return Result{Matches: matches, Message: MsgNoMatches}
	}
	return Result{Matches: matches}
}

func termMatches(recipe model.Recipe, term string) bool {
	if strings.Contains(strings.ToLower(recipe.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(recipe.Description), term) {
		return true
	}
	for _, ingredient := range recipe.Ingredients {
		if strings.Contains(strings.ToLower(ingredient), term) {
			return true
		}
	}
	return false
}

func restrictionsMatch(recipe model.Recipe, restrictions []string) bool {
	for _, restriction := range restrictions {
		found := false
		for _, tag := range recipe.DietaryRestrictions {
			if tag == restriction {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// missingIngredients returns the recipe ingredients whose case-insensitive
// form is not in the selected pantry set, preserving recipe order.
func missingIngredients(recipe model.Recipe, selected map[string]bool) []string {
	missing := make([]string, 0, len(recipe.Ingredients))
	for _, ingredient := range recipe.Ingredients {
		if !selected[strings.ToLower(strings.TrimSpace(ingredient))] {
			missing = append(missing, ingredient)
		}
	}
	return missing
}

func flattenPantry(pantry map[string][]string) map[string]bool {
	selected := make(map[string]bool)
	for _, items := range pantry {
		for _, item := range items {
			if trimmed := strings.ToLower(strings.TrimSpace(item)); trimmed != "" {
				selected[trimmed] = true
			}
		}
	}
	return selected
}
