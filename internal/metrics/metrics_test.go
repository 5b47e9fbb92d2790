// Ahara - Multi-System Dietary Recommendation Service
// Copyright 2026 Ahara Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahara-health/ahara

package metrics

import (
	"testing"
	"time"
)

// The collectors are package-level promauto registrations; these tests
// exercise the helpers to catch label-cardinality mistakes at test time
// (prometheus panics on mismatched label counts).

func TestRecordScoringPass(t *testing.T) {
	RecordScoringPass("ayurveda", "food", false)
	RecordScoringPass("modern", "recipe", true)
}

func TestRecordAPIRequest(t *testing.T) {
	RecordAPIRequest("GET", "/api/v1/foods", 200, 12*time.Millisecond)
	RecordAPIRequest("POST", "/api/v1/score", 400, 3*time.Millisecond)
}

func TestTimeOperation(t *testing.T) {
	done := TimeOperation("recommend_foods")
	done()
}

func TestConfigCounters(t *testing.T) {
	ConfigReloads.WithLabelValues("loaded").Inc()
	ConfigReloads.WithLabelValues("defaulted").Inc()
	ConfigReloads.WithLabelValues("failed").Inc()
	ConfigUpdates.Inc()
	AggregationRuns.Inc()
	AggregationWarnings.Add(2)
	StoreOperations.WithLabelValues("put", "ok").Inc()
}
