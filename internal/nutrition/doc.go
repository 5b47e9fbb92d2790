// Ahara - Multi-System Dietary Recommendation Service
// Copyright 2026 Ahara Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahara-health/ahara

// Package nutrition derives a recipe's per-serving nutrient snapshot
// from its ingredient list.
//
// The aggregator is the single source of truth for recipe nutrition:
// snapshots stored on recipes are caches that must be recomputed here
// whenever ingredients change, never hand-edited. Aggregation tolerates
// partial data end to end: unresolvable food references and missing
// nutrition blocks skip with a warning, unknown units pass through
// unconverted with a caveat, and rounding happens once after summation
// so per-ingredient rounding error cannot compound.
package nutrition
