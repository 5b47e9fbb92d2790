// Ahara - Multi-System Dietary Recommendation Service
// Copyright 2026 Ahara Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahara-health/ahara

// Package models defines the value objects shared across the scoring engine,
// nutrition aggregator, ranking layer, and storage:
//
//   - Profile: a user's health assessment (constitutions, imbalances,
//     conditions, allergies, preferences, anthropometrics)
//   - Food: a catalog item with an optional nutrition block and optional
//     per-system traditional property blocks
//   - Recipe: an ordered ingredient list plus a derived nutrition snapshot
//   - Nutrition / NutritionSnapshot: per-100g facts and per-serving totals
//
// All types are plain data. Absence of a property block means "this system
// has no opinion on this item" and is never an error; evaluators must treat
// nil blocks as neutral.
package models
