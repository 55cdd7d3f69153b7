// Package provider talks to the third-party recipe data source.
package provider

import (
	"context"
	"errors"
)

// ErrUpstreamUnavailable indicates the provider call failed: network error,
// non-success status, or a malformed top-level response. Callers decide
// whether to surface it or degrade to serving what they already have.
var ErrUpstreamUnavailable = errors.New("upstream recipe provider unavailable")

// Provider returns randomized candidate recipes from the upstream source.
type Provider interface {
	Random(ctx context.Context, count int) ([]CandidateRecipe, error)
}

// CandidateRecipe mirrors one entry of the provider payload. Entries may be
// partial; validation happens during ingestion, not here.
type CandidateRecipe struct {
	Title                string                `json:"title"`
	Summary              string                `json:"summary"`
	Image                string                `json:"image"`
	ExtendedIngredients  []ExtendedIngredient  `json:"extendedIngredients"`
	AnalyzedInstructions []AnalyzedInstruction `json:"analyzedInstructions"`
	Diets                []string              `json:"diets"`
	ReadyInMinutes       int                   `json:"readyInMinutes"`
	SpoonacularScore     float64               `json:"spoonacularScore"`
}

// ExtendedIngredient holds the free-text ingredient line as authored.
type ExtendedIngredient struct {
	Original string `json:"original"`
}

// AnalyzedInstruction groups ordered preparation steps.
type AnalyzedInstruction struct {
	Steps []InstructionStep `json:"steps"`
}

// InstructionStep is a single preparation step.
type InstructionStep struct {
	Step string `json:"step"`
}

// Instructions flattens the first analyzed instruction set into ordered step
// strings, or nil when the provider sent none.
func (c CandidateRecipe) Instructions() []string {
	if len(c.AnalyzedInstructions) == 0 {
		return nil
	}
	steps := make([]string, 0, len(c.AnalyzedInstructions[0].Steps))
	for _, s := range c.AnalyzedInstructions[0].Steps {
		steps = append(steps, s.Step)
	}
	return steps
}

// IngredientLines returns the original ingredient strings in order.
func (c CandidateRecipe) IngredientLines() []string {
	if len(c.ExtendedIngredients) == 0 {
		return nil
	}
	lines := make([]string, 0, len(c.ExtendedIngredients))
	for _, ing := range c.ExtendedIngredients {
		lines = append(lines, ing.Original)
	}
	return lines
}
