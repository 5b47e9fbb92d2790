// Ahara - Multi-System Dietary Recommendation Service
// Copyright 2026 Ahara Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahara-health/ahara

package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/ahara-health/ahara/internal/configstore"
	"github.com/ahara-health/ahara/internal/engine"
	"github.com/ahara-health/ahara/internal/recommend"
	"github.com/ahara-health/ahara/internal/storage"
)

// Handler owns the HTTP handlers and their dependencies.
type Handler struct {
	store       *storage.Store
	catalog     *storage.Catalog
	engine      *engine.Engine
	recommender *recommend.Recommender
	configs     *configstore.Service
	logger      zerolog.Logger
	startedAt   time.Time

	defaultLimit int
	maxLimit     int
}

// NewHandler creates the handler set.
func NewHandler(
	store *storage.Store,
	catalog *storage.Catalog,
	eng *engine.Engine,
	recommender *recommend.Recommender,
	configs *configstore.Service,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		store:        store,
		catalog:      catalog,
		engine:       eng,
		recommender:  recommender,
		configs:      configs,
		logger:       logger.With().Str("component", "api").Logger(),
		startedAt:    time.Now(),
		defaultLimit: recommend.DefaultLimit,
		maxLimit:     100,
	}
}

// SetListLimits overrides the default and maximum recommendation list
// sizes. Non-positive values keep the current setting.
func (h *Handler) SetListLimits(defaultLimit, maxLimit int) {
	if defaultLimit > 0 {
		h.defaultLimit = defaultLimit
	}
	if maxLimit > 0 {
		h.maxLimit = maxLimit
	}
}

// Health reports liveness plus basic process information.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"status":         "ok",
		"uptime_seconds": int64(time.Since(h.startedAt).Seconds()),
	})
}

// HealthLive is a minimal liveness probe.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]string{"status": "live"})
}

// HealthReady reports readiness: the store must answer a read.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if _, err := h.store.ListFoods(r.Context()); err != nil {
		rw.Error(http.StatusServiceUnavailable, ErrCodeStoreError, "store not ready")
		return
	}
	rw.Success(map[string]string{"status": "ready"})
}
