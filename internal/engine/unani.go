// Ahara - Multi-System Dietary Recommendation Service
// Copyright 2026 Ahara Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahara-health/ahara

package engine

import (
	"fmt"

	"github.com/ahara-health/ahara/internal/models"
)

// humorOrder fixes tie-breaking: first-checked wins.
var humorOrder = []string{"blood", "phlegm", "yellow_bile", "black_bile"}

// humorTemperament maps each humor to its classical hot/cold and
// moist/dry qualities; corrective foods carry the opposite qualities.
var humorTemperament = map[string]struct{ heat, moisture string }{
	"blood":       {"hot", "moist"},
	"phlegm":      {"cold", "moist"},
	"yellow_bile": {"hot", "dry"},
	"black_bile":  {"cold", "dry"},
}

// UnaniEvaluator scores items in the humor framework: dominant-humor
// correction, temperament opposition, and digestibility.
type UnaniEvaluator struct{}

// NewUnaniEvaluator returns the humor-system evaluator.
func NewUnaniEvaluator() *UnaniEvaluator {
	return &UnaniEvaluator{}
}

// System implements Evaluator.
func (e *UnaniEvaluator) System() string {
	return FrameworkUnani.String()
}

// Evaluate implements Evaluator.
func (e *UnaniEvaluator) Evaluate(profile *models.Profile, item *models.Food) Result {
	if profile == nil || item == nil || item.Unani == nil {
		return Neutral()
	}
	if len(profile.Humors) == 0 && len(profile.HumorImbalance) == 0 {
		return Neutral()
	}

	var res Result
	props := item.Unani

	imbalance := profile.HumorImbalance
	if len(imbalance) == 0 {
		imbalance = profile.Humors
	}
	humor, magnitude, ok := dominantState(imbalance, humorOrder)
	if ok {
		severity := classifySeverity(magnitude)
		factor := severity.factor()
		if effect, found := props.HumorEffects[humor]; found && effect != 0 {
			if effect < 0 {
				res.addReason(5*factor, fmt.Sprintf("Pacifies %s %s excess", severity, humor))
			} else {
				res.addWarning(-5*factor, fmt.Sprintf("May aggravate %s %s excess", severity, humor))
			}
		}

		// A food whose temperament opposes the excess humor's
		// qualities is corrective; one that matches reinforces it.
		if t, found := humorTemperament[humor]; found {
			if props.Heat != "" {
				if props.Heat == t.heat {
					res.addWarning(-2, fmt.Sprintf("%s temperament reinforces %s", props.Heat, humor))
				} else {
					res.addReason(2, fmt.Sprintf("%s temperament counters %s", props.Heat, humor))
				}
			}
			if props.Moisture != "" {
				if props.Moisture == t.moisture {
					res.addWarning(-2, fmt.Sprintf("%s temperament reinforces %s", props.Moisture, humor))
				} else {
					res.addReason(2, fmt.Sprintf("%s temperament counters %s", props.Moisture, humor))
				}
			}
		}
	}

	switch {
	case props.Digestibility == "heavy" && profile.Digestion == "weak":
		res.addWarning(-4, "Heavy to digest, unsuitable for weak digestion")
	case props.Digestibility == "light" && profile.Digestion == "weak":
		res.addReason(4, "Light to digest, suits weak digestion")
	}

	return res
}
