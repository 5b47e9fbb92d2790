// Ahara - Multi-System Dietary Recommendation Service
// Copyright 2026 Ahara Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahara-health/ahara

package configstore

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/ahara-health/ahara/internal/engine"
	"github.com/ahara-health/ahara/internal/metrics"
)

type fakeStore struct {
	mu      sync.Mutex
	cfg     *engine.Config
	loads   int
	saves   int
	loadErr error
	saveErr error
}

func (f *fakeStore) LoadScoringConfig(context.Context) (engine.Config, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads++
	if f.loadErr != nil {
		return engine.Config{}, f.loadErr
	}
	if f.cfg == nil {
		return engine.Config{}, ErrNotFound
	}
	return *f.cfg, nil
}

func (f *fakeStore) SaveScoringConfig(_ context.Context, cfg engine.Config) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.cfg = &cfg
	return nil
}

func TestGetCreatesDefaultsOnFirstRead(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	svc := New(store, zerolog.Nop())

	cfg := svc.Get(context.Background())
	if cfg.Weights.Safety != 1.5 {
		t.Errorf("Safety weight = %v, want default 1.5", cfg.Weights.Safety)
	}
	if store.saves != 1 {
		t.Errorf("saves = %d, want defaults lazily persisted once", store.saves)
	}
	if store.cfg == nil || store.cfg.Bounds.Base != 50 {
		t.Error("defaults were not written to the store")
	}
}

func TestGetServesCacheWithinTTL(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	svc := New(store, zerolog.Nop())

	svc.Get(context.Background())
	loadsAfterFirst := store.loads
	svc.Get(context.Background())
	svc.Get(context.Background())

	if store.loads != loadsAfterFirst {
		t.Errorf("loads = %d, want cache hit without store reads", store.loads)
	}
}

func TestGetRefreshesAfterTTL(t *testing.T) {
	t.Parallel()

	cfg := engine.DefaultConfig()
	cfg.CacheTTL = time.Minute
	store := &fakeStore{cfg: &cfg}
	svc := New(store, zerolog.Nop())

	now := time.Unix(1700000000, 0)
	svc.clock = func() time.Time { return now }

	svc.Get(context.Background())
	loadsAfterFirst := store.loads

	// Within TTL: cached.
	now = now.Add(30 * time.Second)
	svc.Get(context.Background())
	if store.loads != loadsAfterFirst {
		t.Fatalf("loads = %d, want no refresh within TTL", store.loads)
	}

	// Past TTL: refresh.
	now = now.Add(2 * time.Minute)
	svc.Get(context.Background())
	if store.loads != loadsAfterFirst+1 {
		t.Errorf("loads = %d, want one refresh past TTL", store.loads)
	}
}

func TestGetFallsBackOnReadFailure(t *testing.T) {
	t.Parallel()

	store := &fakeStore{loadErr: errors.New("store down")}
	svc := New(store, zerolog.Nop())

	cfg := svc.Get(context.Background())
	if err := cfg.Validate(); err != nil {
		t.Errorf("fallback config invalid: %v", err)
	}
	if cfg.Bounds.Base != 50 {
		t.Errorf("fallback base = %v, want hard default 50", cfg.Bounds.Base)
	}
}

func TestGetRejectsInvalidStoredConfig(t *testing.T) {
	t.Parallel()

	bad := engine.DefaultConfig()
	bad.Weights.Safety = 99
	store := &fakeStore{cfg: &bad}
	svc := New(store, zerolog.Nop())

	cfg := svc.Get(context.Background())
	if cfg.Weights.Safety != 1.5 {
		t.Errorf("Safety weight = %v, want defaults in place of invalid stored config", cfg.Weights.Safety)
	}
}

func TestUpdateValidatesAndPublishes(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	svc := New(store, zerolog.Nop())

	updated := engine.DefaultConfig()
	updated.Weights.Modern = 1.8
	if err := svc.Update(context.Background(), updated); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got := svc.Get(context.Background())
	if got.Weights.Modern != 1.8 {
		t.Errorf("Modern weight after update = %v, want 1.8", got.Weights.Modern)
	}

	invalid := engine.DefaultConfig()
	invalid.Weights.TCM = -1
	if err := svc.Update(context.Background(), invalid); err == nil {
		t.Error("Update() accepted an invalid configuration")
	}
}

func TestUpdatePersistFailure(t *testing.T) {
	t.Parallel()

	store := &fakeStore{saveErr: errors.New("disk full")}
	svc := New(store, zerolog.Nop())

	err := svc.Update(context.Background(), engine.DefaultConfig())
	if err == nil {
		t.Fatal("Update() must surface persistence failures")
	}
}

func TestRefreshCountsReloadOutcomes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	// The counters are process-global, so other tests may bump them
	// concurrently; assert minimum growth rather than exact values.
	defaulted := testutil.ToFloat64(metrics.ConfigReloads.WithLabelValues("defaulted"))
	New(&fakeStore{}, zerolog.Nop()).Get(ctx)
	if got := testutil.ToFloat64(metrics.ConfigReloads.WithLabelValues("defaulted")); got < defaulted+1 {
		t.Errorf("defaulted reloads = %v, want at least %v", got, defaulted+1)
	}

	failed := testutil.ToFloat64(metrics.ConfigReloads.WithLabelValues("failed"))
	New(&fakeStore{loadErr: errors.New("store down")}, zerolog.Nop()).Get(ctx)
	if got := testutil.ToFloat64(metrics.ConfigReloads.WithLabelValues("failed")); got < failed+1 {
		t.Errorf("failed reloads = %v, want at least %v", got, failed+1)
	}

	cfg := engine.DefaultConfig()
	loaded := testutil.ToFloat64(metrics.ConfigReloads.WithLabelValues("loaded"))
	New(&fakeStore{cfg: &cfg}, zerolog.Nop()).Get(ctx)
	if got := testutil.ToFloat64(metrics.ConfigReloads.WithLabelValues("loaded")); got < loaded+1 {
		t.Errorf("loaded reloads = %v, want at least %v", got, loaded+1)
	}
}

func TestConcurrentReaders(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	svc := New(store, zerolog.Nop())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cfg := svc.Get(context.Background())
			if err := cfg.Validate(); err != nil {
				t.Errorf("concurrent read returned invalid config: %v", err)
			}
		}()
	}
	wg.Wait()
}
