// Ahara - Multi-System Dietary Recommendation Service
// Copyright 2026 Ahara Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahara-health/ahara

package recommend

import (
	"github.com/ahara-health/ahara/internal/engine"
)

// Default and per-meal minimum-score thresholds. Meal presets are
// options overrides, not separate logic.
const (
	DefaultMinScore   = 40.0
	BreakfastMinScore = 50.0
	LunchMinScore     = 45.0
	DinnerMinScore    = 45.0
	SnackMinScore     = 35.0

	// DefaultLimit caps a recommendation list when the caller does not
	// set one.
	DefaultLimit = 10
)

// MealSlots are the recognized meal identifiers, in daily order.
var MealSlots = []string{"breakfast", "lunch", "dinner", "snack"}

// Options tunes one recommendation call.
type Options struct {
	// Limit caps the returned list. Zero or negative means
	// DefaultLimit.
	Limit int `json:"limit"`

	// MinScore filters out items scoring below it. Nil means the
	// default threshold; an explicit 0 admits every unblocked item.
	MinScore *float64 `json:"min_score,omitempty"`

	// Category restricts candidates to one category when non-empty.
	Category string `json:"category,omitempty"`

	// Meal applies the per-meal threshold preset and, for recipes,
	// filters on declared meal slots.
	Meal string `json:"meal,omitempty"`
}

// minScore resolves the effective threshold: explicit value first,
// then the meal preset, then the global default.
func (o Options) minScore() float64 {
	if o.MinScore != nil {
		return *o.MinScore
	}
	switch o.Meal {
	case "breakfast":
		return BreakfastMinScore
	case "lunch":
		return LunchMinScore
	case "dinner":
		return DinnerMinScore
	case "snack":
		return SnackMinScore
	}
	return DefaultMinScore
}

// limit resolves the effective list cap.
func (o Options) limit() int {
	if o.Limit <= 0 {
		return DefaultLimit
	}
	return o.Limit
}

// Recommendation is one ranked item with its full score breakdown.
type Recommendation struct {
	// ID is the recommended item's catalog identifier.
	ID string `json:"id"`

	// Name is the item's display name.
	Name string `json:"name"`

	// Category is the item's category.
	Category string `json:"category"`

	// Score is the final aggregated score.
	Score float64 `json:"score"`

	// Framework names the traditional system that scored the item.
	Framework string `json:"framework"`

	// Reasons explain why the item scored well.
	Reasons []string `json:"reasons,omitempty"`

	// Warnings carry cautionary findings that did not block.
	Warnings []string `json:"warnings,omitempty"`

	// SystemScores are the raw per-system deltas.
	SystemScores map[string]float64 `json:"system_scores"`

	// WeightedScores are the per-system deltas after weighting.
	WeightedScores map[string]float64 `json:"weighted_scores"`

	// PrepMinutes is the preparation time, recipes only.
	PrepMinutes int `json:"prep_minutes,omitempty"`
}

// Summary describes a recommendation list as a whole.
type Summary struct {
	// Count is the number of returned recommendations.
	Count int `json:"count"`

	// MeanScore is the average final score across returned items.
	MeanScore float64 `json:"mean_score"`

	// DominantConstitution labels the profile's strongest
	// constitution attribute under its active framework.
	DominantConstitution string `json:"dominant_constitution,omitempty"`

	// MeanPrepMinutes is the average preparation time, recipes only.
	MeanPrepMinutes float64 `json:"mean_prep_minutes,omitempty"`
}

// Result pairs the ranked list with its summary.
type Result struct {
	Recommendations []Recommendation `json:"recommendations"`
	Summary         Summary          `json:"summary"`
}

// DailyPlan buckets recipe recommendations per meal slot.
type DailyPlan struct {
	Breakfast []Recommendation `json:"breakfast"`
	Lunch     []Recommendation `json:"lunch"`
	Dinner    []Recommendation `json:"dinner"`
	Snacks    []Recommendation `json:"snacks"`
}

// fromScore builds a Recommendation from a scoring result.
func fromScore(id, name, category string, prepMinutes int, score engine.ScoreResult) Recommendation {
	return Recommendation{
		ID:             id,
		Name:           name,
		Category:       category,
		Score:          score.FinalScore,
		Framework:      score.Framework.String(),
		Reasons:        score.Reasons,
		Warnings:       score.Warnings,
		SystemScores:   score.SystemScores,
		WeightedScores: score.WeightedScores,
		PrepMinutes:    prepMinutes,
	}
}
