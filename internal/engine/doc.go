// Ahara - Multi-System Dietary Recommendation Service
// Copyright 2026 Ahara Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahara-health/ahara

// Package engine implements the multi-system rule evaluation and
// score-aggregation core.
//
// Five evaluators share one contract: given a Profile and a Food they
// return a Result carrying a score delta, human-readable reasons and
// warnings, and a block flag. Four traditional frameworks (Ayurveda,
// Unani, TCM, Siddha) plus modern clinical nutrition score items; a
// privileged Safety evaluator — the only one allowed to block — runs
// unconditionally for every item.
//
// Exactly one non-safety framework is evaluated per scoring pass,
// selected by ResolveFramework from which assessment fields the profile
// populates. Evaluating all four traditional systems on the same item
// would double-count incompatible belief systems, so the active
// framework is an explicit tagged value rather than an ad hoc check
// inside the aggregation loop.
//
// Scoring is pure: Score is a function of (profile, item, config) and
// mutates no shared state, so any number of passes may run concurrently.
// Evaluator panics are caught at the per-system boundary and downgraded
// to a neutral Result; no internal anomaly propagates to the caller.
package engine
