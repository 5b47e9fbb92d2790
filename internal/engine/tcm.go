// Ahara - Multi-System Dietary Recommendation Service
// Copyright 2026 Ahara Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahara-health/ahara

package engine

import (
	"fmt"

	"github.com/ahara-health/ahara/internal/models"
)

// patternOrder fixes tie-breaking: first-checked wins.
var patternOrder = []string{
	"qi_deficiency",
	"yang_deficiency",
	"yin_deficiency",
	"damp_heat",
	"blood_stasis",
}

// patternNature maps each pattern to the thermal natures that help
// resolve it and those that worsen it.
var patternNature = map[string]struct{ helpful, harmful []string }{
	"qi_deficiency":   {helpful: []string{"warm", "neutral"}, harmful: []string{"cold"}},
	"yang_deficiency": {helpful: []string{"hot", "warm"}, harmful: []string{"cold", "cool"}},
	"yin_deficiency":  {helpful: []string{"cool", "neutral"}, harmful: []string{"hot"}},
	"damp_heat":       {helpful: []string{"cool", "cold"}, harmful: []string{"hot", "warm"}},
	"blood_stasis":    {helpful: []string{"warm"}, harmful: []string{"cold"}},
}

// patternFlavor maps each pattern to the five-flavor actions that help
// resolve it and those that worsen it: sweet tonifies qi and yin but
// generates damp, bitter drains damp but also qi and yang, pungent
// moves yang and blood but disperses yin, sour astringes.
var patternFlavor = map[string]struct{ helpful, harmful []string }{
	"qi_deficiency":   {helpful: []string{"sweet"}, harmful: []string{"bitter"}},
	"yang_deficiency": {helpful: []string{"pungent"}, harmful: []string{"bitter", "salty"}},
	"yin_deficiency":  {helpful: []string{"sweet", "sour"}, harmful: []string{"pungent"}},
	"damp_heat":       {helpful: []string{"bitter"}, harmful: []string{"sweet"}},
	"blood_stasis":    {helpful: []string{"pungent"}, harmful: []string{"sour"}},
}

// TCMEvaluator scores items in the pattern framework: dominant-pattern
// correction, thermal-nature fit, and flavor fit.
type TCMEvaluator struct{}

// NewTCMEvaluator returns the pattern-system evaluator.
func NewTCMEvaluator() *TCMEvaluator {
	return &TCMEvaluator{}
}

// System implements Evaluator.
func (e *TCMEvaluator) System() string {
	return FrameworkTCM.String()
}

// Evaluate implements Evaluator.
func (e *TCMEvaluator) Evaluate(profile *models.Profile, item *models.Food) Result {
	if profile == nil || item == nil || item.TCM == nil {
		return Neutral()
	}
	if len(profile.Patterns) == 0 && len(profile.PatternImbalance) == 0 {
		return Neutral()
	}

	var res Result
	props := item.TCM

	imbalance := profile.PatternImbalance
	if len(imbalance) == 0 {
		imbalance = profile.Patterns
	}
	pattern, magnitude, ok := dominantState(imbalance, patternOrder)
	if ok {
		severity := classifySeverity(magnitude)
		factor := severity.factor()
		if effect, found := props.PatternEffects[pattern]; found && effect != 0 {
			if effect < 0 {
				res.addReason(5*factor, fmt.Sprintf("Helps resolve %s %s", severity, pattern))
			} else {
				res.addWarning(-5*factor, fmt.Sprintf("May worsen %s %s", severity, pattern))
			}
		}

		if n, found := patternNature[pattern]; found && props.ThermalNature != "" {
			if containsString(n.helpful, props.ThermalNature) {
				res.addReason(3, fmt.Sprintf("%s nature supports %s recovery", props.ThermalNature, pattern))
			} else if containsString(n.harmful, props.ThermalNature) {
				res.addWarning(-3, fmt.Sprintf("%s nature is unsuitable for %s", props.ThermalNature, pattern))
			}
		}

		if fl, found := patternFlavor[pattern]; found {
			var net int
			for _, flavor := range props.Flavors {
				switch {
				case containsString(fl.helpful, flavor):
					net++
				case containsString(fl.harmful, flavor):
					net--
				}
			}
			if net > 0 {
				res.addReason(2, fmt.Sprintf("Flavor profile supports %s recovery", pattern))
			} else if net < 0 {
				res.addWarning(-2, fmt.Sprintf("Flavor profile is unsuitable for %s", pattern))
			}
		}
	}

	// Weak digestion corresponds to spleen qi weakness; raw/cold foods
	// burden it and warm flavors support it.
	if profile.Digestion == "weak" {
		switch props.ThermalNature {
		case "cold":
			res.addWarning(-3, "Cold-natured food burdens weak digestion")
		case "warm":
			res.addReason(3, "Warm-natured food supports weak digestion")
		}
	}

	return res
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
