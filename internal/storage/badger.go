// Ahara - Multi-System Dietary Recommendation Service
// Copyright 2026 Ahara Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahara-health/ahara

package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ahara-health/ahara/internal/configstore"
	"github.com/ahara-health/ahara/internal/engine"
	"github.com/ahara-health/ahara/internal/metrics"
	"github.com/ahara-health/ahara/internal/models"
)

// Key prefixes for BadgerDB storage.
const (
	profileKeyPrefix = "profile:"
	foodKeyPrefix    = "food:"
	recipeKeyPrefix  = "recipe:"
	scoringConfigKey = "scoringcfg:active"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Store is the BadgerDB-backed persistence layer.
type Store struct {
	db     *badger.DB
	logger zerolog.Logger
}

// Open opens (or creates) a BadgerDB store at path. An empty path opens
// an in-memory store, used by tests and ephemeral deployments.
func Open(path string, logger zerolog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	if path == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %q: %w", path, err)
	}
	return &Store{
		db:     db,
		logger: logger.With().Str("component", "storage").Logger(),
	}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// RunGC triggers one value-log garbage collection cycle. Returns
// badger.ErrNoRewrite when there was nothing to reclaim.
func (s *Store) RunGC(discardRatio float64) error {
	return s.db.RunValueLogGC(discardRatio)
}

// outcomeLabel maps an operation error to its metric outcome label.
func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}

// put JSON-encodes value under key.
func (s *Store) put(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		metrics.StoreOperations.WithLabelValues("put", "error").Inc()
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	metrics.StoreOperations.WithLabelValues("put", outcomeLabel(err)).Inc()
	return err
}

// get decodes the value under key into out.
func (s *Store) get(key string, out any) error {
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get %s: %w", key, err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, out)
		})
	})
	metrics.StoreOperations.WithLabelValues("get", outcomeLabel(err)).Inc()
	return err
}

// delete removes key; deleting a missing key is not an error.
func (s *Store) delete(key string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		return err
	})
	metrics.StoreOperations.WithLabelValues("delete", outcomeLabel(err)).Inc()
	return err
}

// listPrefix decodes every value under prefix via decode, which
// receives each raw value in key order.
func (s *Store) listPrefix(prefix string, decode func(val []byte) error) error {
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := it.Item().Value(decode); err != nil {
				return err
			}
		}
		return nil
	})
	metrics.StoreOperations.WithLabelValues("list", outcomeLabel(err)).Inc()
	return err
}

// PutProfile stores a profile, assigning an ID when absent.
func (s *Store) PutProfile(_ context.Context, profile *models.Profile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	return s.put(profileKeyPrefix+profile.ID, profile)
}

// GetProfile returns the profile with the given ID.
func (s *Store) GetProfile(_ context.Context, id string) (*models.Profile, error) {
	var profile models.Profile
	if err := s.get(profileKeyPrefix+id, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// DeleteProfile removes the profile with the given ID.
func (s *Store) DeleteProfile(_ context.Context, id string) error {
	return s.delete(profileKeyPrefix + id)
}

// PutFood stores a food, assigning an ID when absent.
func (s *Store) PutFood(_ context.Context, food *models.Food) error {
	if food.ID == "" {
		food.ID = uuid.NewString()
	}
	return s.put(foodKeyPrefix+food.ID, food)
}

// GetFood returns the food with the given ID.
func (s *Store) GetFood(_ context.Context, id string) (*models.Food, error) {
	var food models.Food
	if err := s.get(foodKeyPrefix+id, &food); err != nil {
		return nil, err
	}
	return &food, nil
}

// ListFoods returns the full food catalog in key order.
func (s *Store) ListFoods(_ context.Context) ([]*models.Food, error) {
	var foods []*models.Food
	err := s.listPrefix(foodKeyPrefix, func(val []byte) error {
		var food models.Food
		if err := json.Unmarshal(val, &food); err != nil {
			return err
		}
		foods = append(foods, &food)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	return foods, nil
}

// DeleteFood removes the food with the given ID.
func (s *Store) DeleteFood(_ context.Context, id string) error {
	return s.delete(foodKeyPrefix + id)
}

// ResolveFood implements nutrition.Resolver.
func (s *Store) ResolveFood(ctx context.Context, id string) (*models.Food, error) {
	return s.GetFood(ctx, id)
}

// PutRecipe stores a recipe, assigning an ID when absent. Callers are
// responsible for refreshing the nutrition snapshot through the
// aggregator before storing; the catalog service enforces this.
func (s *Store) PutRecipe(_ context.Context, recipe *models.Recipe) error {
	if recipe.ID == "" {
		recipe.ID = uuid.NewString()
	}
	return s.put(recipeKeyPrefix+recipe.ID, recipe)
}

// GetRecipe returns the recipe with the given ID.
func (s *Store) GetRecipe(_ context.Context, id string) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.get(recipeKeyPrefix+id, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// ListRecipes returns the full recipe catalog in key order.
func (s *Store) ListRecipes(_ context.Context) ([]*models.Recipe, error) {
	var recipes []*models.Recipe
	err := s.listPrefix(recipeKeyPrefix, func(val []byte) error {
		var recipe models.Recipe
		if err := json.Unmarshal(val, &recipe); err != nil {
			return err
		}
		recipes = append(recipes, &recipe)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return recipes, nil
}

// DeleteRecipe removes the recipe with the given ID.
func (s *Store) DeleteRecipe(_ context.Context, id string) error {
	return s.delete(recipeKeyPrefix + id)
}

// LoadScoringConfig implements configstore.Store.
func (s *Store) LoadScoringConfig(_ context.Context) (engine.Config, error) {
	var cfg engine.Config
	err := s.get(scoringConfigKey, &cfg)
	if errors.Is(err, ErrNotFound) {
		return engine.Config{}, configstore.ErrNotFound
	}
	if err != nil {
		return engine.Config{}, err
	}
	return cfg, nil
}

// SaveScoringConfig implements configstore.Store.
func (s *Store) SaveScoringConfig(_ context.Context, cfg engine.Config) error {
	return s.put(scoringConfigKey, cfg)
}
