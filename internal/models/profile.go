// Ahara - Multi-System Dietary Recommendation Service
// Copyright 2026 Ahara Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahara-health/ahara

package models

import "strings"

// Profile is a user's health assessment as consumed by the scoring engine.
// It is built once per request from stored assessment data and treated as
// immutable for the duration of a scoring pass.
type Profile struct {
	// ID is the unique profile identifier.
	ID string `json:"id"`

	// Doshas is the baseline dosha constitution distribution
	// (vata, pitta, kapha), typically summing to ~100.
	Doshas map[string]float64 `json:"doshas,omitempty"`

	// DoshaImbalance is the current imbalance overlay, distinct from
	// the baseline constitution. The dominant state is the dosha with
	// the highest imbalance value.
	DoshaImbalance map[string]float64 `json:"dosha_imbalance,omitempty"`

	// Humors is the baseline humor distribution (blood, phlegm,
	// yellow_bile, black_bile).
	Humors map[string]float64 `json:"humors,omitempty"`

	// HumorImbalance is the current humor imbalance overlay.
	HumorImbalance map[string]float64 `json:"humor_imbalance,omitempty"`

	// Patterns is the baseline pattern assessment (qi_deficiency,
	// yang_deficiency, yin_deficiency, damp_heat, blood_stasis).
	Patterns map[string]float64 `json:"patterns,omitempty"`

	// PatternImbalance is the current pattern imbalance overlay.
	PatternImbalance map[string]float64 `json:"pattern_imbalance,omitempty"`

	// States is the baseline thermal/pattern-state distribution
	// (vali, azhal, aiyam).
	States map[string]float64 `json:"states,omitempty"`

	// StateImbalance is the current state imbalance overlay.
	StateImbalance map[string]float64 `json:"state_imbalance,omitempty"`

	// Digestion is the digestive-strength indicator: "weak",
	// "moderate" or "strong".
	Digestion string `json:"digestion,omitempty"`

	// Conditions is the set of declared medical conditions
	// ("Diabetes", "Acid Reflux", "Hypertension", "Kidney Disease").
	Conditions []string `json:"conditions,omitempty"`

	// Allergies is the set of declared allergies ("Nuts", "Dairy",
	// "Gluten", "Shellfish", "Eggs", "Soy", "Fish").
	Allergies []string `json:"allergies,omitempty"`

	// DietaryPreferences is the set of dietary-preference tags
	// ("vegetarian", "vegan", "halal").
	DietaryPreferences []string `json:"dietary_preferences,omitempty"`

	// BMI is the body mass index.
	BMI float64 `json:"bmi,omitempty"`

	// Age is the age in years.
	Age int `json:"age,omitempty"`

	// ActivityLevel is "sedentary", "moderate" or "active".
	ActivityLevel string `json:"activity_level,omitempty"`
}

// HasCondition reports whether the profile declares the named condition.
// Matching is case-insensitive on the whole string.
func (p *Profile) HasCondition(name string) bool {
	for _, c := range p.Conditions {
		if strings.EqualFold(c, name) {
			return true
		}
	}
	return false
}

// HasPreference reports whether the profile declares the named
// dietary-preference tag. Matching is case-insensitive.
func (p *Profile) HasPreference(name string) bool {
	for _, pref := range p.DietaryPreferences {
		if strings.EqualFold(pref, name) {
			return true
		}
	}
	return false
}
