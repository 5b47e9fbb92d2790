// Ahara - Multi-System Dietary Recommendation Service
// Copyright 2026 Ahara Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahara-health/ahara

package engine

import (
	"fmt"

	"github.com/ahara-health/ahara/internal/models"
)

// doshaOrder fixes tie-breaking: first-checked wins.
var doshaOrder = []string{"vata", "pitta", "kapha"}

// tasteDoshaEffects maps each rasa to its classical action per dosha:
// negative pacifies, positive aggravates.
var tasteDoshaEffects = map[string]map[string]float64{
	"sweet":      {"vata": -1, "pitta": -1, "kapha": 1},
	"sour":       {"vata": -1, "pitta": 1, "kapha": 1},
	"salty":      {"vata": -1, "pitta": 1, "kapha": 1},
	"pungent":    {"vata": 1, "pitta": 1, "kapha": -1},
	"bitter":     {"vata": 1, "pitta": -1, "kapha": -1},
	"astringent": {"vata": 1, "pitta": -1, "kapha": -1},
}

// tasteBalance sums the effect of each listed taste on the given dosha.
// Unknown tastes contribute nothing.
func tasteBalance(tastes []string, dosha string) float64 {
	var net float64
	for _, taste := range tastes {
		if effects, found := tasteDoshaEffects[taste]; found {
			net += effects[dosha]
		}
	}
	return net
}

// AyurvedaEvaluator scores items in the dosha framework: dominant-dosha
// correction, taste balance, potency fit, and digestibility against
// digestive strength.
type AyurvedaEvaluator struct{}

// NewAyurvedaEvaluator returns the dosha-system evaluator.
func NewAyurvedaEvaluator() *AyurvedaEvaluator {
	return &AyurvedaEvaluator{}
}

// System implements Evaluator.
func (e *AyurvedaEvaluator) System() string {
	return FrameworkAyurveda.String()
}

// Evaluate implements Evaluator.
func (e *AyurvedaEvaluator) Evaluate(profile *models.Profile, item *models.Food) Result {
	if profile == nil || item == nil || item.Ayurveda == nil {
		return Neutral()
	}
	if len(profile.Doshas) == 0 && len(profile.DoshaImbalance) == 0 {
		return Neutral()
	}

	var res Result
	props := item.Ayurveda

	imbalance := profile.DoshaImbalance
	if len(imbalance) == 0 {
		imbalance = profile.Doshas
	}
	dosha, magnitude, ok := dominantState(imbalance, doshaOrder)
	if ok {
		severity := classifySeverity(magnitude)
		factor := severity.factor()
		if effect, found := props.DoshaEffects[dosha]; found && effect != 0 {
			if effect < 0 {
				res.addReason(5*factor, fmt.Sprintf("Pacifies %s %s imbalance", severity, dosha))
			} else {
				res.addWarning(-5*factor, fmt.Sprintf("May aggravate %s %s imbalance", severity, dosha))
			}
		}

		// Pitta runs hot, vata and kapha run cold; potency works
		// against or with the dominant dosha accordingly.
		switch props.Potency {
		case "heating":
			if dosha == "pitta" {
				res.addWarning(-3, "Heating potency is unsuitable for elevated pitta")
			} else {
				res.addReason(3, fmt.Sprintf("Heating potency supports %s balance", dosha))
			}
		case "cooling":
			if dosha == "pitta" {
				res.addReason(3, "Cooling potency calms elevated pitta")
			} else if dosha == "kapha" {
				res.addWarning(-3, "Cooling potency is unsuitable for elevated kapha")
			}
		}

		// Taste is a secondary signal next to the assessed dosha
		// effects; only the net direction is scored.
		if net := tasteBalance(props.Tastes, dosha); net < 0 {
			res.addReason(2, fmt.Sprintf("Taste profile pacifies %s", dosha))
		} else if net > 0 {
			res.addWarning(-2, fmt.Sprintf("Taste profile aggravates %s", dosha))
		}
	}

	switch {
	case props.Digestibility == "heavy" && profile.Digestion == "weak":
		res.addWarning(-4, "Heavy to digest, unsuitable for weak digestion")
	case props.Digestibility == "light" && profile.Digestion == "weak":
		res.addReason(4, "Light to digest, suits weak digestion")
	case props.Digestibility == "heavy" && profile.Digestion == "strong":
		res.addReason(2, "Heavy food is manageable with strong digestion")
	}

	return res
}
