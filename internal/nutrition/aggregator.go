// Ahara - Multi-System Dietary Recommendation Service
// Copyright 2026 Ahara Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahara-health/ahara

package nutrition

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ahara-health/ahara/internal/models"
)

// Resolver looks up a food record by its catalog identifier. The
// storage layer implements it; tests substitute an in-memory map.
type Resolver interface {
	// ResolveFood returns the food with the given ID, or an error when
	// no such food exists.
	ResolveFood(ctx context.Context, id string) (*models.Food, error)
}

// unitGrams normalizes a declared unit to grams. Milliliters are
// treated as grams, which is exact for water and close enough for the
// aqueous ingredients recipes actually use.
var unitGrams = map[string]float64{
	"g":     1,
	"gram":  1,
	"grams": 1,
	"kg":    1000,
	"ml":    1,
	"l":     1000,
	"piece": 100,
	"cup":   240,
	"tbsp":  15,
	"tsp":   5,
}

// Aggregator converts ingredient lists into nutrient snapshots.
type Aggregator struct {
	resolver Resolver
	logger   zerolog.Logger
}

// NewAggregator constructs an aggregator backed by the given resolver.
func NewAggregator(resolver Resolver, logger zerolog.Logger) *Aggregator {
	return &Aggregator{
		resolver: resolver,
		logger:   logger.With().Str("component", "nutrition").Logger(),
	}
}

// Aggregate sums nutrient contributions across all resolvable
// ingredients and returns the per-serving snapshot plus any warnings
// accumulated along the way. It never fails outright: ingredients that
// cannot be resolved or lack nutrition data are skipped with a warning,
// and an empty list yields the all-zero identity snapshot.
func (a *Aggregator) Aggregate(ctx context.Context, ingredients []models.Ingredient) (*models.NutritionSnapshot, []string, error) {
	var (
		servingSize float64
		calories    float64
		protein     float64
		carbs       float64
		fat         float64
		fiber       float64
		warnings    []string
	)

	for _, ing := range ingredients {
		if err := ctx.Err(); err != nil {
			return nil, nil, fmt.Errorf("aggregation cancelled: %w", err)
		}

		grams, known := normalizeQuantity(ing.Quantity, ing.Unit)
		if !known {
			a.logger.Warn().
				Str("food_id", ing.FoodID).
				Str("unit", ing.Unit).
				Msg("Unknown ingredient unit, treating quantity as grams")
			warnings = append(warnings, fmt.Sprintf("Unknown unit %q for ingredient %s, treated as grams", ing.Unit, ing.FoodID))
		}
		servingSize += grams

		food, err := a.resolver.ResolveFood(ctx, ing.FoodID)
		if err != nil {
			a.logger.Warn().
				Err(err).
				Str("food_id", ing.FoodID).
				Msg("Ingredient food not found, skipping")
			warnings = append(warnings, fmt.Sprintf("Ingredient %s could not be resolved, skipped", ing.FoodID))
			continue
		}
		if food.Nutrition == nil {
			warnings = append(warnings, fmt.Sprintf("Ingredient %s has no nutrition data, skipped", food.Name))
			continue
		}

		// Nutrition is stored per 100 g/ml.
		portion := grams / 100
		calories += food.Nutrition.Calories * portion
		protein += food.Nutrition.Protein * portion
		carbs += food.Nutrition.Carbs * portion
		fat += food.Nutrition.Fat * portion
		fiber += food.Nutrition.Fiber * portion
	}

	// Rounding happens once here, after summation.
	return &models.NutritionSnapshot{
		ServingSize: roundTenth(servingSize),
		ServingUnit: "g",
		Calories:    math.Round(calories),
		Protein:     roundTenth(protein),
		Carbs:       roundTenth(carbs),
		Fat:         roundTenth(fat),
		Fiber:       roundTenth(fiber),
	}, warnings, nil
}

// normalizeQuantity converts a quantity in the declared unit to grams.
// known is false when the unit is not in the conversion table, in which
// case the quantity passes through unconverted.
func normalizeQuantity(quantity float64, unit string) (grams float64, known bool) {
	factor, ok := unitGrams[strings.ToLower(strings.TrimSpace(unit))]
	if !ok {
		return quantity, false
	}
	return quantity * factor, true
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
