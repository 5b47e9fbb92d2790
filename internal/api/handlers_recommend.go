// Ahara - Multi-System Dietary Recommendation Service
// Copyright 2026 Ahara Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahara-health/ahara

package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ahara-health/ahara/internal/metrics"
	"github.com/ahara-health/ahara/internal/models"
	"github.com/ahara-health/ahara/internal/recommend"
	"github.com/ahara-health/ahara/internal/storage"
	"github.com/ahara-health/ahara/internal/validation"
)

// loadRecommendRequest decodes, validates and resolves the common parts
// of a recommendation request. Returns nil when a response was already
// written.
func (h *Handler) loadRecommendRequest(w http.ResponseWriter, r *http.Request, rw *ResponseWriter) (*models.Profile, *RecommendRequest) {
	var req RecommendRequest
	if err := decodeJSON(w, r, &req); err != nil {
		rw.BadRequest("invalid JSON body: " + err.Error())
		return nil, nil
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		writeValidationError(rw, verr)
		return nil, nil
	}

	profile, err := h.store.GetProfile(r.Context(), req.ProfileID)
	if errors.Is(err, storage.ErrNotFound) {
		rw.NotFound("profile not found")
		return nil, nil
	}
	if err != nil {
		rw.StoreError(err)
		return nil, nil
	}
	return profile, &req
}

// RecommendFoods handles POST /api/v1/recommend/foods.
func (h *Handler) RecommendFoods(w http.ResponseWriter, r *http.Request) {
	defer metrics.TimeOperation("recommend_foods")()
	rw := NewResponseWriter(w, r)

	profile, req := h.loadRecommendRequest(w, r, rw)
	if profile == nil {
		return
	}

	foods, err := h.store.ListFoods(r.Context())
	if err != nil {
		rw.StoreError(err)
		return
	}

	cfg := h.configs.Get(r.Context())
	result := h.recommender.RecommendFoods(profile, foods, req.options(h.defaultLimit, h.maxLimit), cfg)
	rw.Success(result)
}

// RecommendRecipes handles POST /api/v1/recommend/recipes.
func (h *Handler) RecommendRecipes(w http.ResponseWriter, r *http.Request) {
	defer metrics.TimeOperation("recommend_recipes")()
	rw := NewResponseWriter(w, r)

	profile, req := h.loadRecommendRequest(w, r, rw)
	if profile == nil {
		return
	}

	recipes, err := h.store.ListRecipes(r.Context())
	if err != nil {
		rw.StoreError(err)
		return
	}

	cfg := h.configs.Get(r.Context())
	result := h.recommender.RecommendRecipes(profile, recipes, req.options(h.defaultLimit, h.maxLimit), cfg)
	rw.Success(result)
}

// RecommendMeal handles POST /api/v1/recommend/meal/{slot}: recipe
// recommendations under the slot's threshold preset.
func (h *Handler) RecommendMeal(w http.ResponseWriter, r *http.Request) {
	defer metrics.TimeOperation("recommend_meal")()
	rw := NewResponseWriter(w, r)

	slot := chi.URLParam(r, "slot")
	if !validMealSlot(slot) {
		rw.BadRequest("meal slot must be one of: breakfast, lunch, dinner, snack")
		return
	}

	profile, req := h.loadRecommendRequest(w, r, rw)
	if profile == nil {
		return
	}

	recipes, err := h.store.ListRecipes(r.Context())
	if err != nil {
		rw.StoreError(err)
		return
	}

	cfg := h.configs.Get(r.Context())
	result := h.recommender.RecommendMeal(profile, recipes, slot, req.options(h.defaultLimit, h.maxLimit), cfg)
	rw.Success(result)
}

// RecommendDailyPlan handles POST /api/v1/recommend/daily-plan: one
// recommendation list per meal slot.
func (h *Handler) RecommendDailyPlan(w http.ResponseWriter, r *http.Request) {
	defer metrics.TimeOperation("recommend_daily_plan")()
	rw := NewResponseWriter(w, r)

	profile, req := h.loadRecommendRequest(w, r, rw)
	if profile == nil {
		return
	}

	recipes, err := h.store.ListRecipes(r.Context())
	if err != nil {
		rw.StoreError(err)
		return
	}

	cfg := h.configs.Get(r.Context())
	plan := h.recommender.RecommendDailyPlan(profile, recipes, req.options(h.defaultLimit, h.maxLimit), cfg)
	rw.Success(plan)
}

func validMealSlot(slot string) bool {
	for _, s := range recommend.MealSlots {
		if s == slot {
			return true
		}
	}
	return false
}
