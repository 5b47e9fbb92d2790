// Ahara - Multi-System Dietary Recommendation Service
// Copyright 2026 Ahara Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahara-health/ahara

package engine

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/ahara-health/ahara/internal/models"
)

// Evaluator is the contract every scoring system implements. Evaluate
// must be pure and must never panic on missing data; an item the system
// has no opinion on yields a neutral Result.
type Evaluator interface {
	// System names the evaluator for logging and score breakdowns.
	System() string

	// Evaluate scores one item against one profile.
	Evaluate(profile *models.Profile, item *models.Food) Result
}

// Severity classifies imbalance magnitude into three tiers that scale
// how strongly corrective or aggravating effects are weighted.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// severityFactor is the delta multiplier per tier.
func (s Severity) factor() float64 {
	switch s {
	case SeveritySevere:
		return 2.0
	case SeverityModerate:
		return 1.5
	default:
		return 1.0
	}
}

// classifySeverity maps an imbalance magnitude to its tier.
func classifySeverity(magnitude float64) Severity {
	switch {
	case magnitude > 60:
		return SeveritySevere
	case magnitude > 50:
		return SeverityModerate
	default:
		return SeverityMild
	}
}

// dominantState returns the key with the highest value from the
// imbalance overlay, checking candidates in the given order so ties
// resolve first-checked-wins. ok is false when no candidate has a
// positive value.
func dominantState(values map[string]float64, order []string) (state string, magnitude float64, ok bool) {
	for _, candidate := range order {
		v := values[candidate]
		if v > magnitude {
			state = candidate
			magnitude = v
			ok = true
		}
	}
	return state, magnitude, ok
}

// safeEvaluator wraps an Evaluator so a panic inside one system is
// downgraded to a neutral Result with a logged diagnostic. One
// framework's failure must never abort scoring for the other systems
// or for Safety.
type safeEvaluator struct {
	inner  Evaluator
	logger zerolog.Logger
}

// newSafeEvaluator wraps inner with panic recovery.
func newSafeEvaluator(inner Evaluator, logger zerolog.Logger) *safeEvaluator {
	return &safeEvaluator{
		inner:  inner,
		logger: logger.With().Str("system", inner.System()).Logger(),
	}
}

// System returns the wrapped evaluator's name.
func (s *safeEvaluator) System() string {
	return s.inner.System()
}

// Evaluate delegates to the wrapped evaluator, converting any panic
// into a neutral result.
func (s *safeEvaluator) Evaluate(profile *models.Profile, item *models.Food) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().
				Interface("panic", r).
				Str("item", itemName(item)).
				Msg("Evaluator panicked, downgrading to neutral result")
			result = Neutral()
		}
	}()
	return s.inner.Evaluate(profile, item)
}

func itemName(item *models.Food) string {
	if item == nil {
		return ""
	}
	return item.Name
}

// hasTag reports whether tags contains tag, case-insensitively.
func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
