// Ahara - Multi-System Dietary Recommendation Service
// Copyright 2026 Ahara Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahara-health/ahara

package engine

// Result is the uniform value every evaluator returns.
//
// Merging results is commutative and associative on ScoreDelta (sum) and
// Block (logical OR). Reasons and Warnings concatenate in invocation
// order; the order is stable but carries no meaning beyond display
// grouping.
type Result struct {
	// ScoreDelta is the signed score contribution of the evaluator.
	ScoreDelta float64 `json:"score_delta"`

	// Reasons are human-readable explanations for positive or neutral
	// findings. They are part of the contract, not cosmetic text: the
	// ranking layer re-exposes them to callers.
	Reasons []string `json:"reasons,omitempty"`

	// Warnings are cautionary findings (aggravations, contraindications).
	Warnings []string `json:"warnings,omitempty"`

	// Block is an absolute veto. Only the Safety evaluator sets it.
	Block bool `json:"block"`
}

// Neutral returns a zero-delta, non-blocking result. It is the required
// response whenever an item lacks a system's properties or the profile
// lacks a system's assessment fields.
func Neutral() Result {
	return Result{}
}

// Merge combines any number of results: deltas sum, blocks OR, and
// reasons/warnings concatenate in argument order.
func Merge(results ...Result) Result {
	var merged Result
	for _, r := range results {
		merged.ScoreDelta += r.ScoreDelta
		merged.Block = merged.Block || r.Block
		merged.Reasons = append(merged.Reasons, r.Reasons...)
		merged.Warnings = append(merged.Warnings, r.Warnings...)
	}
	return merged
}

// addReason appends a reason and adjusts the delta in one step.
func (r *Result) addReason(delta float64, reason string) {
	r.ScoreDelta += delta
	r.Reasons = append(r.Reasons, reason)
}

// addWarning appends a warning and adjusts the delta in one step.
func (r *Result) addWarning(delta float64, warning string) {
	r.ScoreDelta += delta
	r.Warnings = append(r.Warnings, warning)
}
