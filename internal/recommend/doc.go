// Ahara - Multi-System Dietary Recommendation Service
// Copyright 2026 Ahara Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahara-health/ahara

// Package recommend turns per-item scores into ranked recommendation
// lists.
//
// The recommender runs the scoring engine over a candidate set, drops
// blocked items unconditionally, filters the rest against a minimum
// score, sorts descending by final score (stable, so input order breaks
// ties), and attaches the per-system breakdown and reasons to each
// surviving item. Meal-slot and daily-plan variants are thin
// compositions over the same primitive with per-meal threshold presets;
// no separate scoring logic exists.
package recommend
