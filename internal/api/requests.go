// Ahara - Multi-System Dietary Recommendation Service
// Copyright 2026 Ahara Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahara-health/ahara

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/ahara-health/ahara/internal/models"
	"github.com/ahara-health/ahara/internal/recommend"
)

// maxBodyBytes caps request bodies; catalog payloads are small.
const maxBodyBytes = 1 << 20

// ScoreRequest asks for one item to be scored against one profile.
// The profile comes by reference or inline; the item is exactly one of
// food_id, recipe_id, food or recipe. Cross-field exclusivity is
// checked in the handler, not by tag.
type ScoreRequest struct {
	ProfileID string          `json:"profile_id"`
	Profile   *models.Profile `json:"profile"`

	FoodID   string         `json:"food_id"`
	Food     *models.Food   `json:"food"`
	RecipeID string         `json:"recipe_id"`
	Recipe   *models.Recipe `json:"recipe"`
}

// RecommendRequest asks for a ranked list for one profile.
type RecommendRequest struct {
	ProfileID string   `json:"profile_id" validate:"required"`
	Limit     int      `json:"limit"      validate:"omitempty,min=1"`
	MinScore  *float64 `json:"min_score"  validate:"omitempty,gte=0,lte=100"`
	Category  string   `json:"category"`
	Meal      string   `json:"meal"       validate:"omitempty,mealslot"`
}

// options converts the request into recommender options, clamping the
// limit to maxLimit.
func (r *RecommendRequest) options(defaultLimit, maxLimit int) recommend.Options {
	limit := r.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return recommend.Options{
		Limit:    limit,
		MinScore: r.MinScore,
		Category: r.Category,
		Meal:     r.Meal,
	}
}

// AggregateRequest asks for a nutrition snapshot over an ingredient list.
type AggregateRequest struct {
	Ingredients []models.Ingredient `json:"ingredients" validate:"required,min=1,dive"`
}

// decodeJSON decodes the request body into dst with a body size cap and
// strict field checking.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
