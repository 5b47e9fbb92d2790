// Ahara - Multi-System Dietary Recommendation Service
// Copyright 2026 Ahara Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahara-health/ahara

package models

// Food is a catalog item that can be scored against any of the belief
// systems. Every property block is optional; a nil block means the system
// has no opinion on this item and must yield a neutral result.
type Food struct {
	// ID is the unique catalog identifier.
	ID string `json:"id"`

	// Name is the display name (e.g., "Basmati Rice").
	Name string `json:"name"`

	// Category is a coarse classification (e.g., "grain", "dairy",
	// "meat", "dessert").
	Category string `json:"category"`

	// Tags are free-form classification labels ("spicy", "fried",
	// "sweet", "fermented", ...).
	Tags []string `json:"tags,omitempty"`

	// Nutrition is the per-100g nutrient block, if known.
	Nutrition *Nutrition `json:"nutrition,omitempty"`

	// Ayurveda is the dosha-system property block, if assessed.
	Ayurveda *AyurvedaProperties `json:"ayurveda,omitempty"`

	// Unani is the humor-system property block, if assessed.
	Unani *UnaniProperties `json:"unani,omitempty"`

	// TCM is the pattern-system property block, if assessed.
	TCM *TCMProperties `json:"tcm,omitempty"`

	// Siddha is the thermal/pattern-state property block, if assessed.
	Siddha *SiddhaProperties `json:"siddha,omitempty"`
}

// AyurvedaProperties describes a food's effects in the dosha framework.
type AyurvedaProperties struct {
	// Tastes lists the rasas present: sweet, sour, salty, pungent,
	// bitter, astringent.
	Tastes []string `json:"tastes,omitempty"`

	// Potency is the virya: "heating" or "cooling".
	Potency string `json:"potency,omitempty"`

	// Digestibility is "light" or "heavy" (laghu/guru guna).
	Digestibility string `json:"digestibility,omitempty"`

	// DoshaEffects maps dosha name (vata, pitta, kapha) to effect:
	// positive values aggravate the dosha, negative values pacify it.
	DoshaEffects map[string]float64 `json:"dosha_effects,omitempty"`
}

// UnaniProperties describes a food's temperament in the humor framework.
type UnaniProperties struct {
	// Heat is the thermal temperament: "hot" or "cold".
	Heat string `json:"heat,omitempty"`

	// Moisture is the moisture temperament: "moist" or "dry".
	Moisture string `json:"moisture,omitempty"`

	// Digestibility is "light" or "heavy".
	Digestibility string `json:"digestibility,omitempty"`

	// HumorEffects maps humor name (blood, phlegm, yellow_bile,
	// black_bile) to effect: positive aggravates, negative pacifies.
	HumorEffects map[string]float64 `json:"humor_effects,omitempty"`
}

// TCMProperties describes a food's nature in the pattern framework.
type TCMProperties struct {
	// ThermalNature is one of: hot, warm, neutral, cool, cold.
	ThermalNature string `json:"thermal_nature,omitempty"`

	// Flavors lists the five-flavor tags: sweet, sour, bitter,
	// pungent, salty.
	Flavors []string `json:"flavors,omitempty"`

	// PatternEffects maps pattern name (qi_deficiency, yang_deficiency,
	// yin_deficiency, damp_heat, blood_stasis) to effect: positive
	// aggravates, negative resolves.
	PatternEffects map[string]float64 `json:"pattern_effects,omitempty"`
}

// SiddhaProperties describes a food in the thermal/pattern-state framework.
type SiddhaProperties struct {
	// ThermalState is the suvai-derived potency: "heating", "cooling"
	// or "neutral".
	ThermalState string `json:"thermal_state,omitempty"`

	// Digestibility is "light" or "heavy".
	Digestibility string `json:"digestibility,omitempty"`

	// StateEffects maps the three states (vali, azhal, aiyam) to
	// effect: positive aggravates, negative pacifies.
	StateEffects map[string]float64 `json:"state_effects,omitempty"`
}

// Ingredient references a food with a quantity in a declared unit.
type Ingredient struct {
	// FoodID references the catalog food this ingredient resolves to.
	FoodID string `json:"food_id"`

	// Quantity is the amount in Unit.
	Quantity float64 `json:"quantity"`

	// Unit is the declared measurement unit (g, ml, piece, cup,
	// tbsp, tsp). Unrecognized units pass through unconverted.
	Unit string `json:"unit"`
}

// Recipe owns an ordered ingredient list and a derived nutrition snapshot.
type Recipe struct {
	// ID is the unique catalog identifier.
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Category is a coarse classification (e.g., "curry", "salad").
	Category string `json:"category"`

	// Tags are free-form classification labels.
	Tags []string `json:"tags,omitempty"`

	// MealSlots lists which meals the recipe suits (breakfast, lunch,
	// dinner, snack). Empty means any.
	MealSlots []string `json:"meal_slots,omitempty"`

	// PrepMinutes is the preparation time in minutes.
	PrepMinutes int `json:"prep_minutes,omitempty"`

	// Ingredients is the ordered (food, quantity, unit) list.
	Ingredients []Ingredient `json:"ingredients"`

	// Nutrition is the derived per-serving snapshot. It must be
	// recomputed through the nutrition aggregator whenever
	// Ingredients changes; it is never hand-edited.
	Nutrition *NutritionSnapshot `json:"nutrition,omitempty"`

	// Ayurveda, Unani, TCM and Siddha are optional per-system blocks,
	// same semantics as on Food.
	Ayurveda *AyurvedaProperties `json:"ayurveda,omitempty"`
	Unani    *UnaniProperties    `json:"unani,omitempty"`
	TCM      *TCMProperties      `json:"tcm,omitempty"`
	Siddha   *SiddhaProperties   `json:"siddha,omitempty"`
}

// SuitsMeal reports whether the recipe is suitable for the given meal slot.
// Recipes with no declared slots suit every meal.
func (r *Recipe) SuitsMeal(slot string) bool {
	if len(r.MealSlots) == 0 {
		return true
	}
	for _, s := range r.MealSlots {
		if s == slot {
			return true
		}
	}
	return false
}
