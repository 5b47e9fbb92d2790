// Ahara - Multi-System Dietary Recommendation Service
// Copyright 2026 Ahara Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahara-health/ahara

// Package storage persists profiles, the food and recipe catalogs, and
// the scoring configuration singleton in BadgerDB.
//
// Values are JSON-encoded under typed key prefixes. The store satisfies
// nutrition.Resolver for ingredient lookup and configstore.Store for
// the configuration lifecycle, keeping all persistence behind one type.
package storage
