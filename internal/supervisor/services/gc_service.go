// Ahara - Multi-System Dietary Recommendation Service
// Copyright 2026 Ahara Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahara-health/ahara

package services

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
)

// GCStore is the slice of the storage layer the collector needs.
type GCStore interface {
	RunGC(discardRatio float64) error
}

// StoreGCService periodically runs BadgerDB value-log garbage
// collection. Badger does not reclaim value-log space on its own; a
// supervised ticker loop keeps the on-disk footprint bounded.
type StoreGCService struct {
	store        GCStore
	interval     time.Duration
	discardRatio float64
	logger       zerolog.Logger
	name         string
}

// NewStoreGCService creates a garbage collection service. A
// non-positive interval defaults to 10 minutes; a non-positive discard
// ratio defaults to 0.5.
func NewStoreGCService(store GCStore, interval time.Duration, logger zerolog.Logger) *StoreGCService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &StoreGCService{
		store:        store,
		interval:     interval,
		discardRatio: 0.5,
		logger:       logger.With().Str("component", "store-gc").Logger(),
		name:         "store-gc",
	}
}

// Serve implements suture.Service. It loops until the context is
// canceled, running one GC cycle per tick. Repeated cycles run while
// rewrites keep succeeding, since each call reclaims at most one file.
func (g *StoreGCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			g.collect()
		}
	}
}

func (g *StoreGCService) collect() {
	for {
		err := g.store.RunGC(g.discardRatio)
		if err == nil {
			continue
		}
		if !errors.Is(err, badger.ErrNoRewrite) {
			g.logger.Warn().Err(err).Msg("Value log GC failed")
		}
		return
	}
}

// String implements fmt.Stringer for suture logging.
func (g *StoreGCService) String() string {
	return g.name
}
