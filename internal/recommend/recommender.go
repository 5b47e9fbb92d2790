// Ahara - Multi-System Dietary Recommendation Service
// Copyright 2026 Ahara Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahara-health/ahara

package recommend

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ahara-health/ahara/internal/engine"
	"github.com/ahara-health/ahara/internal/models"
)

// Recommender ranks candidate foods and recipes for a profile. It is
// stateless beyond its engine reference and safe for concurrent use.
type Recommender struct {
	engine *engine.Engine
	logger zerolog.Logger
}

// New constructs a recommender over the given scoring engine.
func New(eng *engine.Engine, logger zerolog.Logger) *Recommender {
	return &Recommender{
		engine: eng,
		logger: logger.With().Str("component", "recommend").Logger(),
	}
}

// RecommendFoods scores, filters, and ranks candidate foods.
func (r *Recommender) RecommendFoods(profile *models.Profile, candidates []*models.Food, opts Options, cfg engine.Config) Result {
	threshold := opts.minScore()
	recs := make([]Recommendation, 0, len(candidates))

	for _, food := range candidates {
		if food == nil {
			continue
		}
		if opts.Category != "" && !strings.EqualFold(food.Category, opts.Category) {
			continue
		}
		score := r.engine.Score(profile, food, cfg)
		if score.Blocked {
			continue
		}
		if score.FinalScore < threshold {
			continue
		}
		recs = append(recs, fromScore(food.ID, food.Name, food.Category, 0, score))
	}

	recs = rank(recs, opts.limit())
	return Result{
		Recommendations: recs,
		Summary:         summarize(profile, recs, cfg, false),
	}
}

// RecommendRecipes scores, filters, and ranks candidate recipes. When
// opts.Meal is set, recipes not declaring that slot are excluded before
// scoring.
func (r *Recommender) RecommendRecipes(profile *models.Profile, candidates []*models.Recipe, opts Options, cfg engine.Config) Result {
	threshold := opts.minScore()
	recs := make([]Recommendation, 0, len(candidates))

	for _, recipe := range candidates {
		if recipe == nil {
			continue
		}
		if opts.Category != "" && !strings.EqualFold(recipe.Category, opts.Category) {
			continue
		}
		if opts.Meal != "" && !recipe.SuitsMeal(opts.Meal) {
			continue
		}
		score := r.engine.ScoreRecipe(profile, recipe, cfg)
		if score.Blocked {
			continue
		}
		if score.FinalScore < threshold {
			continue
		}
		recs = append(recs, fromScore(recipe.ID, recipe.Name, recipe.Category, recipe.PrepMinutes, score))
	}

	recs = rank(recs, opts.limit())
	return Result{
		Recommendations: recs,
		Summary:         summarize(profile, recs, cfg, true),
	}
}

// RecommendMeal is the meal-slot variant: the same recipe primitive
// with the per-meal threshold preset applied.
func (r *Recommender) RecommendMeal(profile *models.Profile, candidates []*models.Recipe, meal string, opts Options, cfg engine.Config) Result {
	opts.Meal = meal
	return r.RecommendRecipes(profile, candidates, opts, cfg)
}

// RecommendDailyPlan composes one RecommendMeal call per slot into a
// day's plan.
func (r *Recommender) RecommendDailyPlan(profile *models.Profile, candidates []*models.Recipe, opts Options, cfg engine.Config) DailyPlan {
	byMeal := func(meal string) []Recommendation {
		return r.RecommendMeal(profile, candidates, meal, opts, cfg).Recommendations
	}
	return DailyPlan{
		Breakfast: byMeal("breakfast"),
		Lunch:     byMeal("lunch"),
		Dinner:    byMeal("dinner"),
		Snacks:    byMeal("snack"),
	}
}

// rank sorts descending by score (stable, input order breaks ties) and
// truncates to limit.
func rank(recs []Recommendation, limit int) []Recommendation {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
	if len(recs) > limit {
		recs = recs[:limit]
	}
	return recs
}

// summarize derives the list-level summary.
func summarize(profile *models.Profile, recs []Recommendation, cfg engine.Config, recipes bool) Summary {
	s := Summary{
		Count:                len(recs),
		DominantConstitution: dominantConstitution(profile, cfg),
	}
	if len(recs) == 0 {
		return s
	}

	var scoreSum, prepSum float64
	for _, rec := range recs {
		scoreSum += rec.Score
		prepSum += float64(rec.PrepMinutes)
	}
	s.MeanScore = scoreSum / float64(len(recs))
	if recipes {
		s.MeanPrepMinutes = prepSum / float64(len(recs))
	}
	return s
}

// dominantConstitution labels the profile's strongest baseline
// attribute under its active framework, e.g. "pitta" or "phlegm".
func dominantConstitution(profile *models.Profile, cfg engine.Config) string {
	if profile == nil {
		return ""
	}
	var values map[string]float64
	switch engine.ResolveFramework(profile, cfg.FrameworkPriority, cfg.DefaultFramework) {
	case engine.FrameworkAyurveda:
		values = profile.Doshas
		if len(values) == 0 {
			values = profile.DoshaImbalance
		}
	case engine.FrameworkUnani:
		values = profile.Humors
		if len(values) == 0 {
			values = profile.HumorImbalance
		}
	case engine.FrameworkTCM:
		values = profile.Patterns
		if len(values) == 0 {
			values = profile.PatternImbalance
		}
	case engine.FrameworkSiddha:
		values = profile.States
		if len(values) == 0 {
			values = profile.StateImbalance
		}
	default:
		return ""
	}

	// Deterministic across map iteration order: highest value wins,
	// lexicographically smallest name on ties.
	var best string
	var bestValue float64
	for name, v := range values {
		if v > bestValue || (v == bestValue && best != "" && name < best) {
			best = name
			bestValue = v
		}
	}
	return best
}
