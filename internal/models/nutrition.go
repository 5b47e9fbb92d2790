// Ahara - Multi-System Dietary Recommendation Service
// Copyright 2026 Ahara Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahara-health/ahara

package models

// Nutrition holds nutrient facts per 100 g (or 100 ml for liquids).
type Nutrition struct {
	// Calories is the energy content in kcal per 100 g.
	Calories float64 `json:"calories"`

	// Protein is grams of protein per 100 g.
	Protein float64 `json:"protein"`

	// Carbs is grams of total carbohydrate per 100 g.
	Carbs float64 `json:"carbs"`

	// Fat is grams of total fat per 100 g.
	Fat float64 `json:"fat"`

	// Fiber is grams of dietary fiber per 100 g.
	Fiber float64 `json:"fiber"`

	// Micros maps micronutrient names to percent of reference daily
	// intake per 100 g (e.g., "iron": 12.5).
	Micros map[string]float64 `json:"micros,omitempty"`
}

// NetCarbs returns carbohydrate grams minus fiber grams, floored at zero.
// This is the diabetes-relevant carbohydrate load.
func (n Nutrition) NetCarbs() float64 {
	nc := n.Carbs - n.Fiber
	if nc < 0 {
		return 0
	}
	return nc
}

// NutritionSnapshot is the derived per-serving nutrient summary cached on a
// recipe. It is always re-derivable from the recipe's ingredient list; the
// stored value is a cache, never a source of truth.
type NutritionSnapshot struct {
	// ServingSize is the total normalized mass of all ingredients.
	ServingSize float64 `json:"serving_size"`

	// ServingUnit is the mass unit of ServingSize. Always "g".
	ServingUnit string `json:"serving_unit"`

	// Calories is total energy in kcal, rounded to a whole number.
	Calories float64 `json:"calories"`

	// Protein is total protein grams, rounded to one decimal.
	Protein float64 `json:"protein"`

	// Carbs is total carbohydrate grams, rounded to one decimal.
	Carbs float64 `json:"carbs"`

	// Fat is total fat grams, rounded to one decimal.
	Fat float64 `json:"fat"`

	// Fiber is total fiber grams, rounded to one decimal.
	Fiber float64 `json:"fiber"`
}

// ToNutrition converts a snapshot into a Nutrition block so recipe scoring
// can reuse the food scoring path unchanged. Snapshot totals stand in for
// the per-100g figures of a single serving.
func (s NutritionSnapshot) ToNutrition() *Nutrition {
	return &Nutrition{
		Calories: s.Calories,
		Protein:  s.Protein,
		Carbs:    s.Carbs,
		Fat:      s.Fat,
		Fiber:    s.Fiber,
	}
}
