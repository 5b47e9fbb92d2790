// Ahara - Multi-System Dietary Recommendation Service
// Copyright 2026 Ahara Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahara-health/ahara

package engine

import (
	"fmt"
	"time"
)

// Weights holds the per-system score multipliers. The recommended range
// is 0-2; a weight of exactly 0 removes that system's contribution.
type Weights struct {
	// Ayurveda is the dosha-system multiplier.
	Ayurveda float64 `json:"ayurveda" koanf:"ayurveda"`

	// Unani is the humor-system multiplier.
	Unani float64 `json:"unani" koanf:"unani"`

	// TCM is the pattern-system multiplier.
	TCM float64 `json:"tcm" koanf:"tcm"`

	// Siddha is the thermal-state-system multiplier.
	Siddha float64 `json:"siddha" koanf:"siddha"`

	// Modern is the clinical-nutrition multiplier.
	Modern float64 `json:"modern" koanf:"modern"`

	// Safety is the safety-evaluator multiplier. Skewed above 1 by
	// default so safety warnings outweigh traditional-system bonuses.
	Safety float64 `json:"safety" koanf:"safety"`
}

// For returns the weight configured for the given framework.
func (w Weights) For(f Framework) float64 {
	switch f {
	case FrameworkAyurveda:
		return w.Ayurveda
	case FrameworkUnani:
		return w.Unani
	case FrameworkTCM:
		return w.TCM
	case FrameworkSiddha:
		return w.Siddha
	case FrameworkModern:
		return w.Modern
	}
	return 0
}

// Bounds constrains the final score range and sets the starting value.
type Bounds struct {
	// Min is the score floor after weighting.
	Min float64 `json:"min" koanf:"min"`

	// Max is the score ceiling after weighting.
	Max float64 `json:"max" koanf:"max"`

	// Base is the starting score before any deltas apply.
	Base float64 `json:"base" koanf:"base"`
}

// Clamp constrains v to [Min, Max].
func (b Bounds) Clamp(v float64) float64 {
	if v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}

// Config is the full scoring configuration read on every pass. The
// engine treats it as an immutable value; hot reload is implemented by
// atomically swapping the whole struct, never by mutating fields in
// place.
type Config struct {
	// Weights are the per-system multipliers.
	Weights Weights `json:"weights" koanf:"weights"`

	// Bounds are the score bounds and base.
	Bounds Bounds `json:"bounds" koanf:"bounds"`

	// DefaultFramework is used when a profile populates no assessment
	// fields at all.
	DefaultFramework Framework `json:"default_framework" koanf:"default_framework"`

	// FrameworkPriority is the conflict-resolution order consulted when
	// a profile populates assessment fields for more than one system:
	// the first listed framework with populated fields wins. An empty
	// list means the built-in order (ayurveda, unani, tcm, siddha,
	// modern).
	FrameworkPriority []Framework `json:"framework_priority" koanf:"framework_priority"`

	// CacheTTL bounds how long a cached configuration may be served
	// before a refresh from the store.
	CacheTTL time.Duration `json:"cache_ttl" koanf:"cache_ttl"`
}

// DefaultConfig returns the hard-coded defaults used when no stored
// configuration exists or a configuration read fails.
func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			Ayurveda: 1.0,
			Unani:    1.0,
			TCM:      1.0,
			Siddha:   1.0,
			Modern:   1.0,
			Safety:   1.5,
		},
		Bounds: Bounds{
			Min:  0,
			Max:  100,
			Base: 50,
		},
		DefaultFramework:  FrameworkAyurveda,
		FrameworkPriority: DefaultFrameworkPriority(),
		CacheTTL:          5 * time.Minute,
	}
}

// Validate checks the configuration for internal consistency.
func (c Config) Validate() error {
	for _, w := range []struct {
		name  string
		value float64
	}{
		{"ayurveda", c.Weights.Ayurveda},
		{"unani", c.Weights.Unani},
		{"tcm", c.Weights.TCM},
		{"siddha", c.Weights.Siddha},
		{"modern", c.Weights.Modern},
		{"safety", c.Weights.Safety},
	} {
		if w.value < 0 || w.value > 2 {
			return fmt.Errorf("weight %s out of range [0,2]: %v", w.name, w.value)
		}
	}
	if c.Bounds.Min >= c.Bounds.Max {
		return fmt.Errorf("bounds min %v must be below max %v", c.Bounds.Min, c.Bounds.Max)
	}
	if c.Bounds.Base < c.Bounds.Min || c.Bounds.Base > c.Bounds.Max {
		return fmt.Errorf("base score %v outside bounds [%v,%v]", c.Bounds.Base, c.Bounds.Min, c.Bounds.Max)
	}
	if !c.DefaultFramework.Valid() {
		return fmt.Errorf("unknown default framework %q", c.DefaultFramework)
	}
	seen := make(map[Framework]bool, len(c.FrameworkPriority))
	for _, f := range c.FrameworkPriority {
		if !f.Valid() {
			return fmt.Errorf("unknown framework %q in priority order", f)
		}
		if seen[f] {
			return fmt.Errorf("framework %q repeated in priority order", f)
		}
		seen[f] = true
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache TTL must not be negative: %v", c.CacheTTL)
	}
	return nil
}
