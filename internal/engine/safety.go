// Ahara - Multi-System Dietary Recommendation Service
// Copyright 2026 Ahara Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahara-health/ahara

package engine

import (
	"fmt"
	"strings"

	"github.com/ahara-health/ahara/internal/models"
)

// Net carbs above this block for diabetic profiles.
const diabetesCarbBlock = 40.0

// Sodium percent-of-reference at or above this warns for hypertension.
const hypertensionSodiumPercent = 30.0

// Protein grams above this warn for kidney disease.
const kidneyProteinThreshold = 25.0

// AllergenKeywords maps a declared allergy to the keywords that trigger
// it. Matching is case-insensitive substring containment over an item's
// name, category and tags. Known limitation: substring matching can
// false-positive on unrelated words that embed a keyword.
type AllergenKeywords map[string][]string

// DefaultAllergenKeywords returns the built-in allergy keyword table.
func DefaultAllergenKeywords() AllergenKeywords {
	return AllergenKeywords{
		"nuts":      {"nut", "almond", "cashew", "walnut", "peanut", "pistachio", "pecan", "hazelnut"},
		"dairy":     {"milk", "cheese", "butter", "ghee", "cream", "yogurt", "curd", "paneer"},
		"gluten":    {"wheat", "barley", "rye", "bread", "pasta", "roti", "chapati"},
		"shellfish": {"shrimp", "prawn", "crab", "lobster", "oyster", "clam", "mussel"},
		"eggs":      {"egg", "omelette", "mayonnaise"},
		"soy":       {"soy", "tofu", "edamame", "tempeh"},
		"fish":      {"fish", "salmon", "tuna", "sardine", "mackerel", "anchovy", "cod"},
	}
}

// dietExclusions maps a dietary-preference tag to category/tag keywords
// it forbids.
var dietExclusions = map[string][]string{
	"vegetarian": {"meat", "chicken", "beef", "pork", "mutton", "lamb", "fish", "seafood", "shellfish", "egg"},
	"vegan":      {"meat", "chicken", "beef", "pork", "mutton", "lamb", "fish", "seafood", "shellfish", "egg", "dairy", "milk", "cheese", "butter", "ghee", "yogurt", "honey", "paneer", "curd"},
	"halal":      {"pork", "bacon", "ham", "lard", "alcohol", "wine", "beer"},
}

// SafetyEvaluator is the only evaluator allowed to block. It runs
// unconditionally for every item, regardless of the active framework.
// Its three sub-checks (allergies, condition contraindications,
// dietary-preference conformance) run independently; a single item may
// accumulate several block reasons.
type SafetyEvaluator struct {
	allergens AllergenKeywords
}

// NewSafetyEvaluator returns a safety evaluator with the given allergen
// table, or the built-in defaults when nil.
func NewSafetyEvaluator(allergens AllergenKeywords) *SafetyEvaluator {
	if allergens == nil {
		allergens = DefaultAllergenKeywords()
	}
	return &SafetyEvaluator{allergens: allergens}
}

// System implements Evaluator.
func (e *SafetyEvaluator) System() string {
	return "safety"
}

// Evaluate implements Evaluator.
func (e *SafetyEvaluator) Evaluate(profile *models.Profile, item *models.Food) Result {
	if profile == nil || item == nil {
		return Neutral()
	}

	var res Result
	e.checkAllergies(profile, item, &res)
	e.checkConditions(profile, item, &res)
	e.checkPreferences(profile, item, &res)
	return res
}

// checkAllergies blocks on any allergen keyword appearing in the item's
// name, category or tags.
func (e *SafetyEvaluator) checkAllergies(profile *models.Profile, item *models.Food, res *Result) {
	for _, allergy := range profile.Allergies {
		keywords, found := e.allergens[strings.ToLower(allergy)]
		if !found {
			// Unmapped allergies fall back to matching the
			// declared name itself.
			keywords = []string{allergy}
		}
		for _, kw := range keywords {
			if itemMatches(item, kw) {
				res.Block = true
				res.addWarning(-20, fmt.Sprintf("Contains %q, conflicts with declared %s allergy", kw, allergy))
				break
			}
		}
	}
}

// checkConditions applies per-condition contraindication thresholds
// over the item's nutrition block and tags.
func (e *SafetyEvaluator) checkConditions(profile *models.Profile, item *models.Food, res *Result) {
	n := item.Nutrition

	if profile.HasCondition("Diabetes") {
		if n != nil && n.NetCarbs() > diabetesCarbBlock {
			res.Block = true
			res.addWarning(-20, fmt.Sprintf("Net carbohydrate load %.1fg exceeds diabetic limit of %.0fg", n.NetCarbs(), diabetesCarbBlock))
		}
		if itemMatches(item, "sugar") || itemMatches(item, "sweet") || item.Category == "dessert" {
			res.Block = true
			res.addWarning(-20, "Sugary classification is contraindicated for diabetes")
		}
	}

	if profile.HasCondition("Acid Reflux") {
		if hasTag(item.Tags, "spicy") || hasTag(item.Tags, "fried") {
			res.Block = true
			res.addWarning(-20, "Spicy or fried preparation is contraindicated for acid reflux")
		}
	}

	if profile.HasCondition("Hypertension") {
		if n != nil && n.Micros["sodium"] >= hypertensionSodiumPercent {
			res.Block = true
			res.addWarning(-20, fmt.Sprintf("Sodium at %.0f%% of reference intake is contraindicated for hypertension", n.Micros["sodium"]))
		}
		if hasTag(item.Tags, "salty") || itemMatches(item, "pickle") {
			res.addWarning(-8, "High-salt classification with hypertension")
		}
	}

	if profile.HasCondition("Kidney Disease") && n != nil && n.Protein > kidneyProteinThreshold {
		res.Block = true
		res.addWarning(-20, fmt.Sprintf("Protein load %.1fg exceeds kidney-disease limit of %.0fg", n.Protein, kidneyProteinThreshold))
	}
}

// checkPreferences blocks on dietary-law violations.
func (e *SafetyEvaluator) checkPreferences(profile *models.Profile, item *models.Food, res *Result) {
	for _, pref := range profile.DietaryPreferences {
		pref = strings.ToLower(pref)
		// Vegan exclusions subsume vegetarian; skip the narrower check
		// so one item does not report the same violation twice.
		if pref == "vegetarian" && profile.HasPreference("vegan") {
			continue
		}
		excluded, found := dietExclusions[pref]
		if !found {
			continue
		}
		for _, kw := range excluded {
			if itemMatches(item, kw) {
				res.Block = true
				res.addWarning(-20, fmt.Sprintf("Contains %q, violates %s preference", kw, pref))
				break
			}
		}
	}
}

// itemMatches reports whether keyword appears, case-insensitively, in
// the item's name, category or any tag.
func itemMatches(item *models.Food, keyword string) bool {
	kw := strings.ToLower(keyword)
	if strings.Contains(strings.ToLower(item.Name), kw) {
		return true
	}
	if strings.Contains(strings.ToLower(item.Category), kw) {
		return true
	}
	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), kw) {
			return true
		}
	}
	return false
}
