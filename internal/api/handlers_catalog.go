// Ahara - Multi-System Dietary Recommendation Service
// Copyright 2026 Ahara Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahara-health/ahara

package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ahara-health/ahara/internal/models"
	"github.com/ahara-health/ahara/internal/storage"
)

// Catalog and profile CRUD. Writes go through the store, which assigns
// IDs; recipe writes go through the catalog so the nutrition snapshot
// is always recomputed from the ingredient list.

// CreateFood handles POST /api/v1/foods.
func (h *Handler) CreateFood(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var food models.Food
	if err := decodeJSON(w, r, &food); err != nil {
		rw.BadRequest("invalid JSON body: " + err.Error())
		return
	}
	if food.Name == "" {
		rw.BadRequest("name is required")
		return
	}

	if err := h.store.PutFood(r.Context(), &food); err != nil {
		rw.StoreError(err)
		return
	}
	rw.Created(food)
}

// GetFood handles GET /api/v1/foods/{id}.
func (h *Handler) GetFood(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	food, err := h.store.GetFood(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, storage.ErrNotFound) {
		rw.NotFound("food not found")
		return
	}
	if err != nil {
		rw.StoreError(err)
		return
	}
	rw.Success(food)
}

// ListFoods handles GET /api/v1/foods.
func (h *Handler) ListFoods(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	foods, err := h.store.ListFoods(r.Context())
	if err != nil {
		rw.StoreError(err)
		return
	}
	rw.Success(foods)
}

// UpdateFood handles PUT /api/v1/foods/{id}.
func (h *Handler) UpdateFood(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	id := chi.URLParam(r, "id")

	if _, err := h.store.GetFood(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			rw.NotFound("food not found")
			return
		}
		rw.StoreError(err)
		return
	}

	var food models.Food
	if err := decodeJSON(w, r, &food); err != nil {
		rw.BadRequest("invalid JSON body: " + err.Error())
		return
	}
	food.ID = id
	if food.Name == "" {
		rw.BadRequest("name is required")
		return
	}

	if err := h.store.PutFood(r.Context(), &food); err != nil {
		rw.StoreError(err)
		return
	}
	rw.Success(food)
}

// DeleteFood handles DELETE /api/v1/foods/{id}.
func (h *Handler) DeleteFood(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	if err := h.store.DeleteFood(r.Context(), chi.URLParam(r, "id")); err != nil {
		rw.StoreError(err)
		return
	}
	rw.NoContent()
}

// CreateRecipe handles POST /api/v1/recipes. The response carries any
// aggregation warnings alongside the stored recipe.
func (h *Handler) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var recipe models.Recipe
	if err := decodeJSON(w, r, &recipe); err != nil {
		rw.BadRequest("invalid JSON body: " + err.Error())
		return
	}
	if recipe.Name == "" {
		rw.BadRequest("name is required")
		return
	}
	if len(recipe.Ingredients) == 0 {
		rw.BadRequest("at least one ingredient is required")
		return
	}

	warnings, err := h.catalog.SaveRecipe(r.Context(), &recipe)
	if err != nil {
		rw.StoreError(err)
		return
	}
	rw.Created(map[string]interface{}{
		"recipe":   recipe,
		"warnings": warnings,
	})
}

// GetRecipe handles GET /api/v1/recipes/{id}.
func (h *Handler) GetRecipe(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	recipe, err := h.store.GetRecipe(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, storage.ErrNotFound) {
		rw.NotFound("recipe not found")
		return
	}
	if err != nil {
		rw.StoreError(err)
		return
	}
	rw.Success(recipe)
}

// ListRecipes handles GET /api/v1/recipes.
func (h *Handler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	recipes, err := h.store.ListRecipes(r.Context())
	if err != nil {
		rw.StoreError(err)
		return
	}
	rw.Success(recipes)
}

// UpdateRecipe handles PUT /api/v1/recipes/{id}. The nutrition
// snapshot is recomputed; a caller-supplied snapshot is discarded.
func (h *Handler) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	id := chi.URLParam(r, "id")

	if _, err := h.store.GetRecipe(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			rw.NotFound("recipe not found")
			return
		}
		rw.StoreError(err)
		return
	}

	var recipe models.Recipe
	if err := decodeJSON(w, r, &recipe); err != nil {
		rw.BadRequest("invalid JSON body: " + err.Error())
		return
	}
	recipe.ID = id
	if recipe.Name == "" {
		rw.BadRequest("name is required")
		return
	}
	if len(recipe.Ingredients) == 0 {
		rw.BadRequest("at least one ingredient is required")
		return
	}

	warnings, err := h.catalog.SaveRecipe(r.Context(), &recipe)
	if err != nil {
		rw.StoreError(err)
		return
	}
	rw.Success(map[string]interface{}{
		"recipe":   recipe,
		"warnings": warnings,
	})
}

// DeleteRecipe handles DELETE /api/v1/recipes/{id}.
func (h *Handler) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	if err := h.store.DeleteRecipe(r.Context(), chi.URLParam(r, "id")); err != nil {
		rw.StoreError(err)
		return
	}
	rw.NoContent()
}

// CreateProfile handles POST /api/v1/profiles.
func (h *Handler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var profile models.Profile
	if err := decodeJSON(w, r, &profile); err != nil {
		rw.BadRequest("invalid JSON body: " + err.Error())
		return
	}

	if err := h.store.PutProfile(r.Context(), &profile); err != nil {
		rw.StoreError(err)
		return
	}
	rw.Created(profile)
}

// GetProfile handles GET /api/v1/profiles/{id}.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	profile, err := h.store.GetProfile(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, storage.ErrNotFound) {
		rw.NotFound("profile not found")
		return
	}
	if err != nil {
		rw.StoreError(err)
		return
	}
	rw.Success(profile)
}

// UpdateProfile handles PUT /api/v1/profiles/{id}.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	id := chi.URLParam(r, "id")

	if _, err := h.store.GetProfile(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			rw.NotFound("profile not found")
			return
		}
		rw.StoreError(err)
		return
	}

	var profile models.Profile
	if err := decodeJSON(w, r, &profile); err != nil {
		rw.BadRequest("invalid JSON body: " + err.Error())
		return
	}
	profile.ID = id

	if err := h.store.PutProfile(r.Context(), &profile); err != nil {
		rw.StoreError(err)
		return
	}
	rw.Success(profile)
}

// DeleteProfile handles DELETE /api/v1/profiles/{id}.
func (h *Handler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	if err := h.store.DeleteProfile(r.Context(), chi.URLParam(r, "id")); err != nil {
		rw.StoreError(err)
		return
	}
	rw.NoContent()
}
