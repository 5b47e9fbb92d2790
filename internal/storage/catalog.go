// Ahara - Multi-System Dietary Recommendation Service
// Copyright 2026 Ahara Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahara-health/ahara

package storage

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ahara-health/ahara/internal/models"
	"github.com/ahara-health/ahara/internal/nutrition"
)

// Catalog wraps the store with the invariant that a recipe's nutrition
// snapshot is always recomputed through the aggregator when the recipe
// is written. Snapshots are never accepted from callers.
type Catalog struct {
	*Store
	aggregator *nutrition.Aggregator
	logger     zerolog.Logger
}

// NewCatalog constructs a catalog over the given store.
func NewCatalog(store *Store, logger zerolog.Logger) *Catalog {
	logger = logger.With().Str("component", "catalog").Logger()
	return &Catalog{
		Store:      store,
		aggregator: nutrition.NewAggregator(store, logger),
		logger:     logger,
	}
}

// Aggregator exposes the shared nutrition aggregator for standalone
// aggregation calls.
func (c *Catalog) Aggregator() *nutrition.Aggregator {
	return c.aggregator
}

// SaveRecipe recomputes the recipe's nutrition snapshot from its
// current ingredient list and stores it. The returned warnings carry
// any skipped-ingredient or unknown-unit caveats from aggregation.
func (c *Catalog) SaveRecipe(ctx context.Context, recipe *models.Recipe) ([]string, error) {
	snapshot, warnings, err := c.aggregator.Aggregate(ctx, recipe.Ingredients)
	if err != nil {
		return nil, fmt.Errorf("aggregating recipe nutrition: %w", err)
	}
	recipe.Nutrition = snapshot

	if err := c.PutRecipe(ctx, recipe); err != nil {
		return nil, fmt.Errorf("storing recipe: %w", err)
	}
	c.logger.Debug().
		Str("recipe_id", recipe.ID).
		Int("ingredients", len(recipe.Ingredients)).
		Int("warnings", len(warnings)).
		Msg("Recipe stored with refreshed nutrition snapshot")
	return warnings, nil
}
