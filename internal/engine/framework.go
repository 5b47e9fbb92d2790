// Ahara - Multi-System Dietary Recommendation Service
// Copyright 2026 Ahara Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahara-health/ahara

package engine

import (
	"fmt"

	"github.com/ahara-health/ahara/internal/models"
)

// Framework identifies the single active non-safety evaluation system for
// a scoring pass. It is resolved once per pass, never re-derived inside
// the aggregation loop.
type Framework string

// Supported frameworks, in resolution priority order.
const (
	FrameworkAyurveda Framework = "ayurveda"
	FrameworkUnani    Framework = "unani"
	FrameworkTCM      Framework = "tcm"
	FrameworkSiddha   Framework = "siddha"
	FrameworkModern   Framework = "modern"
)

// Valid reports whether f names a known framework.
func (f Framework) Valid() bool {
	switch f {
	case FrameworkAyurveda, FrameworkUnani, FrameworkTCM, FrameworkSiddha, FrameworkModern:
		return true
	}
	return false
}

// String returns the framework's wire name.
func (f Framework) String() string {
	return string(f)
}

// ParseFramework converts a wire name into a Framework.
func ParseFramework(s string) (Framework, error) {
	f := Framework(s)
	if !f.Valid() {
		return "", fmt.Errorf("unknown framework %q", s)
	}
	return f, nil
}

// DefaultFrameworkPriority returns the built-in resolution order:
// dosha fields first, then humors, patterns, thermal states, and
// modern anthropometrics last.
func DefaultFrameworkPriority() []Framework {
	return []Framework{
		FrameworkAyurveda,
		FrameworkUnani,
		FrameworkTCM,
		FrameworkSiddha,
		FrameworkModern,
	}
}

// assessed reports whether the profile populates the assessment fields
// belonging to framework f.
func assessed(p *models.Profile, f Framework) bool {
	switch f {
	case FrameworkAyurveda:
		return len(p.Doshas) > 0 || len(p.DoshaImbalance) > 0
	case FrameworkUnani:
		return len(p.Humors) > 0 || len(p.HumorImbalance) > 0
	case FrameworkTCM:
		return len(p.Patterns) > 0 || len(p.PatternImbalance) > 0
	case FrameworkSiddha:
		return len(p.States) > 0 || len(p.StateImbalance) > 0
	case FrameworkModern:
		return p.BMI > 0 || p.Age > 0
	}
	return false
}

// ResolveFramework picks the active framework for a profile by walking
// the configured priority order and returning the first framework whose
// assessment fields are populated. An empty priority list means the
// built-in order. A profile populating none of the listed frameworks'
// fields falls back to the configured default.
func ResolveFramework(p *models.Profile, priority []Framework, fallback Framework) Framework {
	if p == nil {
		return fallback
	}
	if len(priority) == 0 {
		priority = DefaultFrameworkPriority()
	}
	for _, f := range priority {
		if assessed(p, f) {
			return f
		}
	}
	return fallback
}
