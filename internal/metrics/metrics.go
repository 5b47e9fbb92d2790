// Ahara - Multi-System Dietary Recommendation Service
// Copyright 2026 Ahara Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahara-health/ahara

// Package metrics provides Prometheus instrumentation for the scoring
// engine, nutrition aggregation, and the API surface.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Scoring metrics
	ScoringPasses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scoring_passes_total",
			Help: "Total number of item scoring passes",
		},
		[]string{"framework", "item_type"},
	)

	ScoringBlocked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scoring_blocked_total",
			Help: "Total number of items vetoed by safety checks",
		},
		[]string{"item_type"},
	)

	ScoringDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "scoring_duration_seconds",
			Help:    "Duration of full recommendation passes in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"operation"},
	)

	// Nutrition aggregation metrics
	AggregationRuns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nutrition_aggregation_runs_total",
			Help: "Total number of nutrition aggregation runs",
		},
	)

	AggregationWarnings = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nutrition_aggregation_warnings_total",
			Help: "Total skipped-ingredient and unknown-unit caveats",
		},
	)

	// Configuration metrics
	ConfigReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scoring_config_reloads_total",
			Help: "Total scoring configuration loads from the store",
		},
		[]string{"outcome"}, // "loaded", "defaulted", "failed"
	)

	ConfigUpdates = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "scoring_config_updates_total",
			Help: "Total scoring configuration updates",
		},
	)

	// API metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint"},
	)

	// Store metrics
	StoreOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_operations_total",
			Help: "Total BadgerDB operations",
		},
		[]string{"operation", "outcome"},
	)
)

// RecordScoringPass counts one scoring pass and its block outcome.
func RecordScoringPass(framework, itemType string, blocked bool) {
	ScoringPasses.WithLabelValues(framework, itemType).Inc()
	if blocked {
		ScoringBlocked.WithLabelValues(itemType).Inc()
	}
}

// RecordAPIRequest records a completed API request.
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TimeOperation returns a function that records the elapsed time for
// the named scoring operation when called.
//
//	defer metrics.TimeOperation("recommend_foods")()
func TimeOperation(operation string) func() {
	start := time.Now()
	return func() {
		ScoringDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}
