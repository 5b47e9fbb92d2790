// Ahara - Multi-System Dietary Recommendation Service
// Copyright 2026 Ahara Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahara-health/ahara

package engine

import (
	"fmt"

	"github.com/ahara-health/ahara/internal/models"
)

// Modern-nutrition thresholds.
const (
	// Net carbs above this warn for diabetic profiles. The hard block
	// at 40 belongs to the safety evaluator; this evaluator only warns
	// as the load approaches it.
	diabetesCarbWarning = 30.0

	// Fat grams above this warn for acid reflux.
	refluxFatThreshold = 20.0

	// Micros at or above this percent of reference intake count
	// toward micronutrient density.
	microRichPercent = 10.0

	// This many qualifying micros make an item "micronutrient rich".
	microRichCount = 3
)

// ModernEvaluator scores items on clinical nutrition: calorie fit to
// BMI band, carbohydrate load for diabetes, fat and spice for reflux,
// protein adequacy for age and activity, and micronutrient density.
type ModernEvaluator struct{}

// NewModernEvaluator returns the clinical-nutrition evaluator.
func NewModernEvaluator() *ModernEvaluator {
	return &ModernEvaluator{}
}

// System implements Evaluator.
func (e *ModernEvaluator) System() string {
	return FrameworkModern.String()
}

// Evaluate implements Evaluator.
func (e *ModernEvaluator) Evaluate(profile *models.Profile, item *models.Food) Result {
	if profile == nil || item == nil || item.Nutrition == nil {
		return Neutral()
	}

	var res Result
	n := item.Nutrition

	e.scoreCalories(profile, n, &res)
	e.scoreConditions(profile, item, &res)
	e.scoreProtein(profile, n, &res)
	e.scoreMicros(n, &res)

	return res
}

// scoreCalories scores energy density against the profile's BMI band.
func (e *ModernEvaluator) scoreCalories(profile *models.Profile, n *models.Nutrition, res *Result) {
	if profile.BMI <= 0 {
		return
	}
	switch {
	case profile.BMI >= 30:
		if n.Calories > 300 {
			res.addWarning(-5, fmt.Sprintf("High calorie density (%.0f kcal) with BMI %.1f", n.Calories, profile.BMI))
		} else if n.Calories <= 150 {
			res.addReason(5, "Low calorie density supports weight management")
		}
	case profile.BMI >= 25:
		if n.Calories > 400 {
			res.addWarning(-3, fmt.Sprintf("High calorie density (%.0f kcal) with BMI %.1f", n.Calories, profile.BMI))
		} else if n.Calories <= 200 {
			res.addReason(3, "Moderate calorie density fits weight goals")
		}
	case profile.BMI < 18.5:
		if n.Calories >= 250 {
			res.addReason(4, "Calorie-dense, supports healthy weight gain")
		} else if n.Calories < 100 {
			res.addWarning(-2, "Low calorie density with underweight BMI")
		}
	}
}

// scoreConditions applies condition-specific nutrient rules. These are
// advisory only; hard contraindications belong to the safety evaluator.
func (e *ModernEvaluator) scoreConditions(profile *models.Profile, item *models.Food, res *Result) {
	n := item.Nutrition
	if profile.HasCondition("Diabetes") {
		nc := n.NetCarbs()
		if nc > diabetesCarbWarning {
			res.addWarning(-5, fmt.Sprintf("High net carbohydrate load (%.1fg) for diabetes", nc))
		} else if nc <= 15 && n.Fiber >= 3 {
			res.addReason(4, "Low net carbs and good fiber suit diabetes")
		}
	}
	if profile.HasCondition("Acid Reflux") {
		if n.Fat > refluxFatThreshold {
			res.addWarning(-4, fmt.Sprintf("High fat content (%.1fg) may trigger reflux", n.Fat))
		}
		if hasTag(item.Tags, "spicy") {
			res.addWarning(-3, "Spicy preparation may trigger reflux")
		}
	}
}

// scoreProtein checks protein adequacy against age and activity level.
func (e *ModernEvaluator) scoreProtein(profile *models.Profile, n *models.Nutrition, res *Result) {
	needsProtein := profile.Age >= 60 || profile.ActivityLevel == "active"
	switch {
	case needsProtein && n.Protein >= 10:
		res.addReason(4, fmt.Sprintf("Good protein content (%.1fg) for elevated protein needs", n.Protein))
	case needsProtein && n.Protein < 3:
		res.addWarning(-2, "Low protein for elevated protein needs")
	case n.Protein >= 15:
		res.addReason(2, fmt.Sprintf("Protein rich (%.1fg)", n.Protein))
	}
}

// scoreMicros rewards micronutrient density.
func (e *ModernEvaluator) scoreMicros(n *models.Nutrition, res *Result) {
	rich := 0
	for _, pct := range n.Micros {
		if pct >= microRichPercent {
			rich++
		}
	}
	if rich >= microRichCount {
		res.addReason(3, fmt.Sprintf("Micronutrient rich (%d nutrients above %.0f%% of reference intake)", rich, microRichPercent))
	}
}
