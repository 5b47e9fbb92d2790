// Ahara - Multi-System Dietary Recommendation Service
// Copyright 2026 Ahara Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahara-health/ahara

package engine

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/ahara-health/ahara/internal/models"
)

func TestEvaluatorsNeutralOnMissingData(t *testing.T) {
	t.Parallel()

	// An item with no property blocks and a profile with no assessment
	// fields must be neutral for every system, never an error.
	evaluators := []Evaluator{
		NewAyurvedaEvaluator(),
		NewUnaniEvaluator(),
		NewTCMEvaluator(),
		NewSiddhaEvaluator(),
		NewModernEvaluator(),
	}

	bareItem := &models.Food{Name: "Mystery Dish"}
	bareProfile := &models.Profile{}

	for _, eval := range evaluators {
		t.Run(eval.System(), func(t *testing.T) {
			t.Parallel()
			if res := eval.Evaluate(bareProfile, bareItem); res.ScoreDelta != 0 || res.Block {
				t.Errorf("bare inputs: got %+v, want neutral", res)
			}
			if res := eval.Evaluate(nil, bareItem); res.ScoreDelta != 0 || res.Block {
				t.Errorf("nil profile: got %+v, want neutral", res)
			}
			if res := eval.Evaluate(bareProfile, nil); res.ScoreDelta != 0 || res.Block {
				t.Errorf("nil item: got %+v, want neutral", res)
			}
		})
	}
}

func TestAyurvedaDominantDoshaScoring(t *testing.T) {
	t.Parallel()

	eval := NewAyurvedaEvaluator()

	pacifying := &models.Food{
		Name: "Ghee Rice",
		Ayurveda: &models.AyurvedaProperties{
			DoshaEffects: map[string]float64{"vata": -1},
		},
	}
	aggravating := &models.Food{
		Name: "Dry Crackers",
		Ayurveda: &models.AyurvedaProperties{
			DoshaEffects: map[string]float64{"vata": 1},
		},
	}

	profile := &models.Profile{
		DoshaImbalance: map[string]float64{"vata": 70, "pitta": 20, "kapha": 10},
	}

	if res := eval.Evaluate(profile, pacifying); res.ScoreDelta <= 0 {
		t.Errorf("pacifying food delta = %v, want positive", res.ScoreDelta)
	}
	res := eval.Evaluate(profile, aggravating)
	if res.ScoreDelta >= 0 {
		t.Errorf("aggravating food delta = %v, want negative", res.ScoreDelta)
	}
	if len(res.Warnings) == 0 {
		t.Error("aggravating food must carry a warning")
	}
}

func TestAyurvedaSeverityScaling(t *testing.T) {
	t.Parallel()

	eval := NewAyurvedaEvaluator()
	aggravating := &models.Food{
		Name: "Chili Pickle",
		Ayurveda: &models.AyurvedaProperties{
			DoshaEffects: map[string]float64{"pitta": 1},
		},
	}

	mild := &models.Profile{DoshaImbalance: map[string]float64{"pitta": 45}}
	severe := &models.Profile{DoshaImbalance: map[string]float64{"pitta": 75}}

	mildDelta := eval.Evaluate(mild, aggravating).ScoreDelta
	severeDelta := eval.Evaluate(severe, aggravating).ScoreDelta

	if severeDelta >= mildDelta {
		t.Errorf("severe imbalance delta %v must be strictly below mild delta %v", severeDelta, mildDelta)
	}
}

func TestAyurvedaTieBreakFirstCheckedWins(t *testing.T) {
	t.Parallel()

	eval := NewAyurvedaEvaluator()
	// Vata and pitta tie; vata is checked first, so the vata effect
	// drives the score.
	profile := &models.Profile{
		DoshaImbalance: map[string]float64{"vata": 60, "pitta": 60},
	}
	item := &models.Food{
		Name: "Warm Soup",
		Ayurveda: &models.AyurvedaProperties{
			DoshaEffects: map[string]float64{"vata": -1, "pitta": 1},
		},
	}

	res := eval.Evaluate(profile, item)
	if res.ScoreDelta <= 0 {
		t.Errorf("tie must resolve to vata (pacified): delta = %v", res.ScoreDelta)
	}
}

func TestAyurvedaTasteBalance(t *testing.T) {
	t.Parallel()

	eval := NewAyurvedaEvaluator()
	profile := &models.Profile{DoshaImbalance: map[string]float64{"pitta": 70}}

	pacifying := &models.Food{
		Name:     "Rice Pudding",
		Ayurveda: &models.AyurvedaProperties{Tastes: []string{"sweet", "bitter"}},
	}
	if res := eval.Evaluate(profile, pacifying); res.ScoreDelta <= 0 {
		t.Errorf("pitta-pacifying tastes delta = %v, want positive", res.ScoreDelta)
	}

	aggravating := &models.Food{
		Name:     "Chili Pickle",
		Ayurveda: &models.AyurvedaProperties{Tastes: []string{"pungent", "sour", "salty"}},
	}
	res := eval.Evaluate(profile, aggravating)
	if res.ScoreDelta >= 0 {
		t.Errorf("pitta-aggravating tastes delta = %v, want negative", res.ScoreDelta)
	}
	if len(res.Warnings) == 0 {
		t.Error("aggravating tastes must carry a warning")
	}

	// Sweet pacifies pitta, sour aggravates it: the net cancels.
	mixed := &models.Food{
		Name:     "Sweet and Sour Sauce",
		Ayurveda: &models.AyurvedaProperties{Tastes: []string{"sweet", "sour"}},
	}
	if res := eval.Evaluate(profile, mixed); res.ScoreDelta != 0 {
		t.Errorf("balanced tastes delta = %v, want 0", res.ScoreDelta)
	}
}

func TestAyurvedaDigestibility(t *testing.T) {
	t.Parallel()

	eval := NewAyurvedaEvaluator()
	heavy := &models.Food{
		Name:     "Fried Paratha",
		Ayurveda: &models.AyurvedaProperties{Digestibility: "heavy"},
	}
	light := &models.Food{
		Name:     "Moong Soup",
		Ayurveda: &models.AyurvedaProperties{Digestibility: "light"},
	}
	weak := &models.Profile{
		Doshas:    map[string]float64{"vata": 40},
		Digestion: "weak",
	}

	if res := eval.Evaluate(weak, heavy); res.ScoreDelta >= 0 {
		t.Errorf("heavy food with weak digestion delta = %v, want negative", res.ScoreDelta)
	}
	if res := eval.Evaluate(weak, light); res.ScoreDelta <= 0 {
		t.Errorf("light food with weak digestion delta = %v, want positive", res.ScoreDelta)
	}
}

func TestUnaniTemperamentOpposition(t *testing.T) {
	t.Parallel()

	eval := NewUnaniEvaluator()
	// Phlegm is cold and moist; a hot, dry food opposes it on both axes.
	profile := &models.Profile{
		HumorImbalance: map[string]float64{"phlegm": 65},
	}
	corrective := &models.Food{
		Name: "Ginger Tea",
		Unani: &models.UnaniProperties{
			Heat:        "hot",
			Moisture:    "dry",
			HumorEffects: map[string]float64{"phlegm": -1},
		},
	}
	reinforcing := &models.Food{
		Name: "Cold Custard",
		Unani: &models.UnaniProperties{
			Heat:        "cold",
			Moisture:    "moist",
			HumorEffects: map[string]float64{"phlegm": 1},
		},
	}

	correctiveDelta := eval.Evaluate(profile, corrective).ScoreDelta
	reinforcingDelta := eval.Evaluate(profile, reinforcing).ScoreDelta

	if correctiveDelta <= 0 {
		t.Errorf("corrective delta = %v, want positive", correctiveDelta)
	}
	if reinforcingDelta >= 0 {
		t.Errorf("reinforcing delta = %v, want negative", reinforcingDelta)
	}
}

func TestTCMPatternScoring(t *testing.T) {
	t.Parallel()

	eval := NewTCMEvaluator()
	profile := &models.Profile{
		PatternImbalance: map[string]float64{"yang_deficiency": 70},
	}

	warming := &models.Food{
		Name: "Lamb Stew",
		TCM: &models.TCMProperties{
			ThermalNature:  "warm",
			PatternEffects: map[string]float64{"yang_deficiency": -1},
		},
	}
	cooling := &models.Food{
		Name: "Watermelon",
		TCM: &models.TCMProperties{
			ThermalNature:  "cold",
			PatternEffects: map[string]float64{"yang_deficiency": 1},
		},
	}

	if res := eval.Evaluate(profile, warming); res.ScoreDelta <= 0 {
		t.Errorf("warming food for yang deficiency delta = %v, want positive", res.ScoreDelta)
	}
	res := eval.Evaluate(profile, cooling)
	if res.ScoreDelta >= 0 {
		t.Errorf("cold food for yang deficiency delta = %v, want negative", res.ScoreDelta)
	}
	if len(res.Warnings) == 0 {
		t.Error("aggravating food must carry a warning")
	}
}

func TestTCMFlavorFit(t *testing.T) {
	t.Parallel()

	eval := NewTCMEvaluator()
	profile := &models.Profile{PatternImbalance: map[string]float64{"damp_heat": 66}}

	draining := &models.Food{
		Name: "Bitter Gourd",
		TCM:  &models.TCMProperties{Flavors: []string{"bitter"}},
	}
	if res := eval.Evaluate(profile, draining); res.ScoreDelta <= 0 {
		t.Errorf("bitter flavor for damp heat delta = %v, want positive", res.ScoreDelta)
	}

	cloying := &models.Food{
		Name: "Condensed Milk",
		TCM:  &models.TCMProperties{Flavors: []string{"sweet"}},
	}
	res := eval.Evaluate(profile, cloying)
	if res.ScoreDelta >= 0 {
		t.Errorf("sweet flavor for damp heat delta = %v, want negative", res.ScoreDelta)
	}
	if len(res.Warnings) == 0 {
		t.Error("unsuitable flavor must carry a warning")
	}
}

func TestTCMWeakDigestionThermalNature(t *testing.T) {
	t.Parallel()

	eval := NewTCMEvaluator()
	profile := &models.Profile{
		Patterns:  map[string]float64{"qi_deficiency": 40},
		Digestion: "weak",
	}

	cold := &models.Food{
		Name: "Iced Salad",
		TCM:  &models.TCMProperties{ThermalNature: "cold"},
	}
	res := eval.Evaluate(profile, cold)
	if res.ScoreDelta >= 0 {
		t.Errorf("cold food with weak digestion delta = %v, want negative", res.ScoreDelta)
	}
}

func TestSiddhaStateScoring(t *testing.T) {
	t.Parallel()

	eval := NewSiddhaEvaluator()
	profile := &models.Profile{
		StateImbalance: map[string]float64{"azhal": 68},
	}

	cooling := &models.Food{
		Name: "Tender Coconut",
		Siddha: &models.SiddhaProperties{
			ThermalState: "cooling",
			StateEffects: map[string]float64{"azhal": -1},
		},
	}
	heating := &models.Food{
		Name: "Pepper Rasam",
		Siddha: &models.SiddhaProperties{
			ThermalState: "heating",
			StateEffects: map[string]float64{"azhal": 1},
		},
	}

	if res := eval.Evaluate(profile, cooling); res.ScoreDelta <= 0 {
		t.Errorf("cooling food for azhal delta = %v, want positive", res.ScoreDelta)
	}
	if res := eval.Evaluate(profile, heating); res.ScoreDelta >= 0 {
		t.Errorf("heating food for azhal delta = %v, want negative", res.ScoreDelta)
	}
}

func TestModernCalorieFit(t *testing.T) {
	t.Parallel()

	eval := NewModernEvaluator()

	tests := []struct {
		name     string
		profile  *models.Profile
		calories float64
		wantSign int
	}{
		{"obese with dense food", &models.Profile{BMI: 32}, 450, -1},
		{"obese with light food", &models.Profile{BMI: 32}, 120, 1},
		{"overweight with dense food", &models.Profile{BMI: 27}, 450, -1},
		{"underweight with dense food", &models.Profile{BMI: 17}, 300, 1},
		{"underweight with sparse food", &models.Profile{BMI: 17}, 50, -1},
		{"normal BMI no calorie opinion", &models.Profile{BMI: 22}, 450, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			item := &models.Food{
				Name:      "Test Dish",
				Nutrition: &models.Nutrition{Calories: tt.calories},
			}
			res := eval.Evaluate(tt.profile, item)
			switch {
			case tt.wantSign > 0 && res.ScoreDelta <= 0:
				t.Errorf("delta = %v, want positive", res.ScoreDelta)
			case tt.wantSign < 0 && res.ScoreDelta >= 0:
				t.Errorf("delta = %v, want negative", res.ScoreDelta)
			case tt.wantSign == 0 && res.ScoreDelta != 0:
				t.Errorf("delta = %v, want 0", res.ScoreDelta)
			}
		})
	}
}

func TestModernDiabetesWarning(t *testing.T) {
	t.Parallel()

	eval := NewModernEvaluator()
	profile := &models.Profile{Conditions: []string{"Diabetes"}}

	highCarb := &models.Food{
		Name:      "White Bread",
		Nutrition: &models.Nutrition{Carbs: 38, Fiber: 2},
	}
	res := eval.Evaluate(profile, highCarb)
	if res.ScoreDelta >= 0 {
		t.Errorf("net carbs 36 with diabetes delta = %v, want negative", res.ScoreDelta)
	}
	if res.Block {
		t.Error("modern evaluator must never block")
	}

	lowCarb := &models.Food{
		Name:      "Spinach Dal",
		Nutrition: &models.Nutrition{Carbs: 14, Fiber: 5},
	}
	if res := eval.Evaluate(profile, lowCarb); res.ScoreDelta <= 0 {
		t.Errorf("low net carbs with fiber delta = %v, want positive", res.ScoreDelta)
	}
}

func TestModernRefluxFatAndSpice(t *testing.T) {
	t.Parallel()

	eval := NewModernEvaluator()
	profile := &models.Profile{Conditions: []string{"Acid Reflux"}}

	fatty := &models.Food{
		Name:      "Butter Naan",
		Nutrition: &models.Nutrition{Fat: 25},
	}
	if res := eval.Evaluate(profile, fatty); res.ScoreDelta >= 0 {
		t.Errorf("high-fat food with reflux delta = %v, want negative", res.ScoreDelta)
	}

	spicy := &models.Food{
		Name:      "Pepper Fry",
		Tags:      []string{"spicy"},
		Nutrition: &models.Nutrition{Fat: 5},
	}
	res := eval.Evaluate(profile, spicy)
	if res.ScoreDelta >= 0 {
		t.Errorf("spicy food with reflux delta = %v, want negative", res.ScoreDelta)
	}
	if len(res.Warnings) == 0 {
		t.Error("spicy food with reflux must carry a warning")
	}
	if res.Block {
		t.Error("modern evaluator must never block")
	}

	mild := &models.Food{
		Name:      "Steamed Idli",
		Tags:      []string{"bland"},
		Nutrition: &models.Nutrition{Fat: 2},
	}
	if res := eval.Evaluate(profile, mild); res.ScoreDelta != 0 {
		t.Errorf("bland low-fat food with reflux delta = %v, want 0", res.ScoreDelta)
	}
}

func TestModernProteinAdequacy(t *testing.T) {
	t.Parallel()

	eval := NewModernEvaluator()

	elderly := &models.Profile{Age: 68}
	proteinRich := &models.Food{
		Name:      "Dal Fry",
		Nutrition: &models.Nutrition{Protein: 12},
	}
	if res := eval.Evaluate(elderly, proteinRich); res.ScoreDelta <= 0 {
		t.Errorf("protein-rich food for elderly delta = %v, want positive", res.ScoreDelta)
	}

	active := &models.Profile{Age: 30, ActivityLevel: "active"}
	proteinPoor := &models.Food{
		Name:      "Plain Rice",
		Nutrition: &models.Nutrition{Protein: 2},
	}
	if res := eval.Evaluate(active, proteinPoor); res.ScoreDelta >= 0 {
		t.Errorf("low-protein food for active profile delta = %v, want negative", res.ScoreDelta)
	}
}

func TestModernMicronutrientDensity(t *testing.T) {
	t.Parallel()

	eval := NewModernEvaluator()
	profile := &models.Profile{Age: 30}

	rich := &models.Food{
		Name: "Spinach",
		Nutrition: &models.Nutrition{
			Micros: map[string]float64{"iron": 15, "vitamin_a": 40, "folate": 25, "sodium": 2},
		},
	}
	res := eval.Evaluate(profile, rich)
	if res.ScoreDelta <= 0 {
		t.Errorf("micronutrient-rich food delta = %v, want positive", res.ScoreDelta)
	}

	sparse := &models.Food{
		Name: "White Sugar",
		Nutrition: &models.Nutrition{
			Micros: map[string]float64{"iron": 1},
		},
	}
	if res := eval.Evaluate(profile, sparse); res.ScoreDelta != 0 {
		t.Errorf("micronutrient-sparse food delta = %v, want 0", res.ScoreDelta)
	}
}

type panickingEvaluator struct{}

func (panickingEvaluator) System() string { return "panicking" }

func (panickingEvaluator) Evaluate(*models.Profile, *models.Food) Result {
	panic("boom")
}

func TestSafeEvaluatorRecoversPanic(t *testing.T) {
	t.Parallel()

	wrapped := newSafeEvaluator(panickingEvaluator{}, zerolog.Nop())
	res := wrapped.Evaluate(&models.Profile{}, &models.Food{Name: "Anything"})
	if res.ScoreDelta != 0 || res.Block || len(res.Reasons) != 0 || len(res.Warnings) != 0 {
		t.Errorf("panicking evaluator must yield neutral, got %+v", res)
	}
}
