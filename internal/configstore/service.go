// Ahara - Multi-System Dietary Recommendation Service
// Copyright 2026 Ahara Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahara-health/ahara

// Package configstore owns the read-through-defaults lifecycle of the
// scoring configuration. The scoring engine itself is a pure function
// of (profile, item, config); this package is the one narrowly-scoped
// component holding the shared cached value, replaced atomically on
// update so concurrent readers never observe a partial write.
package configstore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/ahara-health/ahara/internal/engine"
	"github.com/ahara-health/ahara/internal/metrics"
)

// ErrNotFound is returned by a Store when no configuration row exists.
var ErrNotFound = errors.New("scoring configuration not found")

// Store is the persistence contract for the configuration singleton.
type Store interface {
	// LoadScoringConfig returns the stored configuration, or
	// ErrNotFound when none has been written yet.
	LoadScoringConfig(ctx context.Context) (engine.Config, error)

	// SaveScoringConfig persists the configuration.
	SaveScoringConfig(ctx context.Context, cfg engine.Config) error
}

// cached pairs a configuration with its load time for TTL checks.
type cached struct {
	cfg      engine.Config
	loadedAt time.Time
}

// Service caches the scoring configuration in front of a Store.
//
// Reads serve the cached value until its TTL lapses, then refresh from
// the store; a store read failure falls back to the last cached value,
// or the hard defaults, and never blocks scoring. The first read with
// no stored row lazily persists the defaults.
type Service struct {
	store  Store
	logger zerolog.Logger
	clock  func() time.Time

	current atomic.Pointer[cached]

	// refreshMu serializes store refreshes so a cache miss under load
	// does not stampede the store.
	refreshMu sync.Mutex
}

// New constructs a configuration service over the given store.
func New(store Store, logger zerolog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger.With().Str("component", "configstore").Logger(),
		clock:  time.Now,
	}
}

// Get returns the active scoring configuration. It never fails: any
// store anomaly degrades to the cached value or the hard defaults.
func (s *Service) Get(ctx context.Context) engine.Config {
	if c := s.current.Load(); c != nil {
		ttl := c.cfg.CacheTTL
		if ttl <= 0 || s.clock().Sub(c.loadedAt) < ttl {
			return c.cfg
		}
	}
	return s.refresh(ctx)
}

// refresh reloads from the store, writing defaults on first use.
func (s *Service) refresh(ctx context.Context) engine.Config {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	// Another caller may have refreshed while we waited on the lock.
	if c := s.current.Load(); c != nil {
		ttl := c.cfg.CacheTTL
		if ttl <= 0 || s.clock().Sub(c.loadedAt) < ttl {
			return c.cfg
		}
	}

	outcome := "loaded"
	cfg, err := s.store.LoadScoringConfig(ctx)
	switch {
	case errors.Is(err, ErrNotFound):
		outcome = "defaulted"
		cfg = engine.DefaultConfig()
		if saveErr := s.store.SaveScoringConfig(ctx, cfg); saveErr != nil {
			s.logger.Warn().Err(saveErr).Msg("Failed to persist default scoring configuration")
		} else {
			s.logger.Info().Msg("Persisted default scoring configuration on first read")
		}
	case err != nil:
		metrics.ConfigReloads.WithLabelValues("failed").Inc()
		s.logger.Error().Err(err).Msg("Scoring configuration read failed, falling back")
		if c := s.current.Load(); c != nil {
			return c.cfg
		}
		return engine.DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		outcome = "defaulted"
		s.logger.Error().Err(err).Msg("Stored scoring configuration invalid, using defaults")
		cfg = engine.DefaultConfig()
	}

	metrics.ConfigReloads.WithLabelValues(outcome).Inc()
	s.current.Store(&cached{cfg: cfg, loadedAt: s.clock()})
	return cfg
}

// Update validates, persists, and atomically publishes a new
// configuration. Concurrent readers see either the old or the new
// value, never a mix.
func (s *Service) Update(ctx context.Context, cfg engine.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid scoring configuration: %w", err)
	}
	if err := s.store.SaveScoringConfig(ctx, cfg); err != nil {
		return fmt.Errorf("persisting scoring configuration: %w", err)
	}
	s.current.Store(&cached{cfg: cfg, loadedAt: s.clock()})
	s.logger.Info().Msg("Scoring configuration updated")
	return nil
}

// Invalidate drops the cached value so the next read hits the store.
func (s *Service) Invalidate() {
	s.current.Store(nil)
}
