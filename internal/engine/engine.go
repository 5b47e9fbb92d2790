// Ahara - Multi-System Dietary Recommendation Service
// Copyright 2026 Ahara Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahara-health/ahara

package engine

import (
	"github.com/rs/zerolog"

	"github.com/ahara-health/ahara/internal/models"
)

// ScoreResult is the outcome of one scoring pass over one item.
type ScoreResult struct {
	// FinalScore is the clamped, weighted score. Always 0 when Blocked.
	FinalScore float64 `json:"final_score"`

	// Blocked is true when any safety sub-check vetoed the item.
	Blocked bool `json:"blocked"`

	// Framework names the single non-safety system that was evaluated.
	Framework Framework `json:"framework"`

	// Reasons are the merged positive findings across systems.
	Reasons []string `json:"reasons,omitempty"`

	// Warnings are the merged cautionary findings across systems.
	Warnings []string `json:"warnings,omitempty"`

	// SystemScores are the raw, unweighted per-system deltas.
	SystemScores map[string]float64 `json:"system_scores"`

	// WeightedScores are the per-system deltas after weighting.
	WeightedScores map[string]float64 `json:"weighted_scores"`
}

// Engine runs the per-system evaluators and aggregates their results
// into a final score. It holds no mutable state: Score is a pure
// function of (profile, item, config) and is safe to call from any
// number of goroutines.
type Engine struct {
	evaluators map[Framework]Evaluator
	safety     Evaluator
	logger     zerolog.Logger
}

// New constructs an engine with the standard evaluator set, each
// wrapped so an internal panic degrades to a neutral result.
func New(logger zerolog.Logger) *Engine {
	return NewWithSafety(logger, NewSafetyEvaluator(nil))
}

// NewWithSafety constructs an engine with a caller-supplied safety
// evaluator, for deployments that tune the allergen keyword table.
func NewWithSafety(logger zerolog.Logger, safety Evaluator) *Engine {
	logger = logger.With().Str("component", "engine").Logger()
	wrap := func(e Evaluator) Evaluator { return newSafeEvaluator(e, logger) }
	return &Engine{
		evaluators: map[Framework]Evaluator{
			FrameworkAyurveda: wrap(NewAyurvedaEvaluator()),
			FrameworkUnani:    wrap(NewUnaniEvaluator()),
			FrameworkTCM:      wrap(NewTCMEvaluator()),
			FrameworkSiddha:   wrap(NewSiddhaEvaluator()),
			FrameworkModern:   wrap(NewModernEvaluator()),
		},
		safety: wrap(safety),
		logger: logger,
	}
}

// Score evaluates one food against one profile under the given
// configuration. Exactly one non-safety framework runs, selected by
// ResolveFramework; safety always runs.
func (e *Engine) Score(profile *models.Profile, item *models.Food, cfg Config) ScoreResult {
	framework := ResolveFramework(profile, cfg.FrameworkPriority, cfg.DefaultFramework)

	active := e.evaluators[framework]
	if active == nil {
		// Unknown framework in config; fall back rather than skip
		// the traditional pass entirely.
		framework = FrameworkAyurveda
		active = e.evaluators[framework]
	}

	systemResult := active.Evaluate(profile, item)
	safetyResult := e.safety.Evaluate(profile, item)

	systemWeight := cfg.Weights.For(framework)
	safetyWeight := cfg.Weights.Safety

	weighted := cfg.Bounds.Base +
		systemResult.ScoreDelta*systemWeight +
		safetyResult.ScoreDelta*safetyWeight

	merged := Merge(systemResult, safetyResult)
	final := cfg.Bounds.Clamp(weighted)
	if merged.Block {
		final = 0
	}

	return ScoreResult{
		FinalScore: final,
		Blocked:    merged.Block,
		Framework:  framework,
		Reasons:    merged.Reasons,
		Warnings:   merged.Warnings,
		SystemScores: map[string]float64{
			framework.String(): systemResult.ScoreDelta,
			"safety":           safetyResult.ScoreDelta,
		},
		WeightedScores: map[string]float64{
			framework.String(): systemResult.ScoreDelta * systemWeight,
			"safety":           safetyResult.ScoreDelta * safetyWeight,
		},
	}
}

// ScoreRecipe scores a recipe by flattening it into a food-shaped view
// first. There is no separate recipe scoring path.
func (e *Engine) ScoreRecipe(profile *models.Profile, recipe *models.Recipe, cfg Config) ScoreResult {
	return e.Score(profile, FlattenRecipe(recipe), cfg)
}

// FlattenRecipe projects a recipe into the food shape the evaluators
// consume: name, category, tags, the per-system blocks, and its
// nutrition snapshot standing in for the per-100g block.
func FlattenRecipe(recipe *models.Recipe) *models.Food {
	if recipe == nil {
		return nil
	}
	food := &models.Food{
		ID:       recipe.ID,
		Name:     recipe.Name,
		Category: recipe.Category,
		Tags:     recipe.Tags,
		Ayurveda: recipe.Ayurveda,
		Unani:    recipe.Unani,
		TCM:      recipe.TCM,
		Siddha:   recipe.Siddha,
	}
	if recipe.Nutrition != nil {
		food.Nutrition = recipe.Nutrition.ToNutrition()
	}
	return food
}
