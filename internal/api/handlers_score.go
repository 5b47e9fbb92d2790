// Ahara - Multi-System Dietary Recommendation Service
// Copyright 2026 Ahara Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahara-health/ahara

package api

import (
	"errors"
	"net/http"

	"github.com/ahara-health/ahara/internal/engine"
	"github.com/ahara-health/ahara/internal/metrics"
	"github.com/ahara-health/ahara/internal/storage"
	"github.com/ahara-health/ahara/internal/validation"
)

// writeValidationError translates a struct validation failure into the
// response envelope.
func writeValidationError(rw *ResponseWriter, verr *validation.RequestValidationError) {
	apiErr := verr.ToAPIError()
	rw.ValidationError(apiErr.Message, apiErr.Details)
}

// Score handles POST /api/v1/score: scores one food or recipe against
// one profile under the active scoring configuration.
func (h *Handler) Score(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req ScoreRequest
	if err := decodeJSON(w, r, &req); err != nil {
		rw.BadRequest("invalid JSON body: " + err.Error())
		return
	}

	ctx := r.Context()

	profile := req.Profile
	if profile == nil {
		if req.ProfileID == "" {
			rw.BadRequest("profile_id or an inline profile is required")
			return
		}
		stored, err := h.store.GetProfile(ctx, req.ProfileID)
		if errors.Is(err, storage.ErrNotFound) {
			rw.NotFound("profile not found")
			return
		}
		if err != nil {
			rw.StoreError(err)
			return
		}
		profile = stored
	}

	itemRefs := 0
	for _, set := range []bool{req.FoodID != "", req.RecipeID != "", req.Food != nil, req.Recipe != nil} {
		if set {
			itemRefs++
		}
	}
	if itemRefs != 1 {
		rw.BadRequest("exactly one of food_id, recipe_id, food or recipe is required")
		return
	}

	cfg := h.configs.Get(ctx)

	var (
		result   engine.ScoreResult
		itemType string
		itemID   string
		itemName string
	)
	switch {
	case req.Food != nil:
		result = h.engine.Score(profile, req.Food, cfg)
		itemType, itemID, itemName = "food", req.Food.ID, req.Food.Name

	case req.Recipe != nil:
		result = h.engine.ScoreRecipe(profile, req.Recipe, cfg)
		itemType, itemID, itemName = "recipe", req.Recipe.ID, req.Recipe.Name

	case req.FoodID != "":
		food, err := h.store.GetFood(ctx, req.FoodID)
		if errors.Is(err, storage.ErrNotFound) {
			rw.NotFound("food not found")
			return
		}
		if err != nil {
			rw.StoreError(err)
			return
		}
		result = h.engine.Score(profile, food, cfg)
		itemType, itemID, itemName = "food", food.ID, food.Name

	default:
		recipe, err := h.store.GetRecipe(ctx, req.RecipeID)
		if errors.Is(err, storage.ErrNotFound) {
			rw.NotFound("recipe not found")
			return
		}
		if err != nil {
			rw.StoreError(err)
			return
		}
		result = h.engine.ScoreRecipe(profile, recipe, cfg)
		itemType, itemID, itemName = "recipe", recipe.ID, recipe.Name
	}

	metrics.RecordScoringPass(result.Framework.String(), itemType, result.Blocked)

	rw.Success(map[string]interface{}{
		"item_id":   itemID,
		"item_name": itemName,
		"item_type": itemType,
		"result":    result,
	})
}

// AggregateNutrition handles POST /api/v1/nutrition/aggregate:
// computes a nutrition snapshot over an ad-hoc ingredient list.
func (h *Handler) AggregateNutrition(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req AggregateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		rw.BadRequest("invalid JSON body: " + err.Error())
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		writeValidationError(rw, verr)
		return
	}

	snapshot, warnings, err := h.catalog.Aggregator().Aggregate(r.Context(), req.Ingredients)
	if err != nil {
		rw.InternalError("aggregation failed: " + err.Error())
		return
	}

	metrics.AggregationRuns.Inc()
	metrics.AggregationWarnings.Add(float64(len(warnings)))

	rw.Success(map[string]interface{}{
		"nutrition": snapshot,
		"warnings":  warnings,
	})
}

// GetScoringConfig handles GET /api/v1/scoring/config.
func (h *Handler) GetScoringConfig(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(h.configs.Get(r.Context()))
}

// UpdateScoringConfig handles PUT /api/v1/scoring/config: validates,
// persists and atomically publishes a new scoring configuration.
func (h *Handler) UpdateScoringConfig(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var cfg engine.Config
	if err := decodeJSON(w, r, &cfg); err != nil {
		rw.BadRequest("invalid JSON body: " + err.Error())
		return
	}

	if err := cfg.Validate(); err != nil {
		rw.BadRequest("invalid scoring configuration: " + err.Error())
		return
	}
	if err := h.configs.Update(r.Context(), cfg); err != nil {
		rw.StoreError(err)
		return
	}

	metrics.ConfigUpdates.Inc()
	rw.Success(cfg)
}
