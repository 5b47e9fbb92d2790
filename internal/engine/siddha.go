// Ahara - Multi-System Dietary Recommendation Service
// Copyright 2026 Ahara Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahara-health/ahara

package engine

import (
	"fmt"

	"github.com/ahara-health/ahara/internal/models"
)

// stateOrder fixes tie-breaking: first-checked wins.
var stateOrder = []string{"vali", "azhal", "aiyam"}

// SiddhaEvaluator scores items in the thermal/pattern-state framework:
// dominant-state correction, thermal-state fit, and digestibility.
type SiddhaEvaluator struct{}

// NewSiddhaEvaluator returns the thermal-state-system evaluator.
func NewSiddhaEvaluator() *SiddhaEvaluator {
	return &SiddhaEvaluator{}
}

// System implements Evaluator.
func (e *SiddhaEvaluator) System() string {
	return FrameworkSiddha.String()
}

// Evaluate implements Evaluator.
func (e *SiddhaEvaluator) Evaluate(profile *models.Profile, item *models.Food) Result {
	if profile == nil || item == nil || item.Siddha == nil {
		return Neutral()
	}
	if len(profile.States) == 0 && len(profile.StateImbalance) == 0 {
		return Neutral()
	}

	var res Result
	props := item.Siddha

	imbalance := profile.StateImbalance
	if len(imbalance) == 0 {
		imbalance = profile.States
	}
	state, magnitude, ok := dominantState(imbalance, stateOrder)
	if ok {
		severity := classifySeverity(magnitude)
		factor := severity.factor()
		if effect, found := props.StateEffects[state]; found && effect != 0 {
			if effect < 0 {
				res.addReason(5*factor, fmt.Sprintf("Pacifies %s %s derangement", severity, state))
			} else {
				res.addWarning(-5*factor, fmt.Sprintf("May aggravate %s %s derangement", severity, state))
			}
		}

		// Azhal is the heat principle; heating foods feed it and
		// cooling foods settle it. Vali and aiyam run cold.
		switch props.ThermalState {
		case "heating":
			if state == "azhal" {
				res.addWarning(-3, "Heating food is unsuitable for elevated azhal")
			} else {
				res.addReason(3, fmt.Sprintf("Heating food counters elevated %s", state))
			}
		case "cooling":
			if state == "azhal" {
				res.addReason(3, "Cooling food settles elevated azhal")
			} else {
				res.addWarning(-3, fmt.Sprintf("Cooling food reinforces elevated %s", state))
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
