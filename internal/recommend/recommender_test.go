// Ahara - Multi-System Dietary Recommendation Service
// Copyright 2026 Ahara Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahara-health/ahara

package recommend

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/ahara-health/ahara/internal/engine"
	"github.com/ahara-health/ahara/internal/models"
)

func newTestRecommender() *Recommender {
	return New(engine.New(zerolog.Nop()), zerolog.Nop())
}

func pittaProfile() *models.Profile {
	return &models.Profile{
		ID:             "p1",
		Doshas:         map[string]float64{"vata": 30, "pitta": 45, "kapha": 25},
		DoshaImbalance: map[string]float64{"pitta": 65},
	}
}

func testFoods() []*models.Food {
	return []*models.Food{
		{
			ID: "coconut", Name: "Tender Coconut", Category: "fruit",
			Ayurveda: &models.AyurvedaProperties{
				Potency:      "cooling",
				DoshaEffects: map[string]float64{"pitta": -1},
			},
		},
		{
			ID: "chili", Name: "Chili Pickle", Category: "condiment",
			Ayurveda: &models.AyurvedaProperties{
				Potency:      "heating",
				DoshaEffects: map[string]float64{"pitta": 1},
			},
		},
		{
			ID: "rice", Name: "Plain Rice", Category: "grain",
			Ayurveda: &models.AyurvedaProperties{
				DoshaEffects: map[string]float64{},
			},
		},
	}
}

func TestRecommendFoodsRanksDescending(t *testing.T) {
	t.Parallel()

	r := newTestRecommender()
	zero := 0.0
	res := r.RecommendFoods(pittaProfile(), testFoods(), Options{MinScore: &zero}, engine.DefaultConfig())

	if len(res.Recommendations) == 0 {
		t.Fatal("expected recommendations")
	}
	for i := 1; i < len(res.Recommendations); i++ {
		if res.Recommendations[i].Score > res.Recommendations[i-1].Score {
			t.Errorf("not sorted descending at %d: %v then %v",
				i, res.Recommendations[i-1].Score, res.Recommendations[i].Score)
		}
	}
	if res.Recommendations[0].ID != "coconut" {
		t.Errorf("top item = %s, want coconut (pitta pacifying)", res.Recommendations[0].ID)
	}
	if res.Summary.Count != len(res.Recommendations) {
		t.Errorf("Summary.Count = %d, want %d", res.Summary.Count, len(res.Recommendations))
	}
	if res.Summary.DominantConstitution != "pitta" {
		t.Errorf("DominantConstitution = %q, want pitta", res.Summary.DominantConstitution)
	}
}

func TestRecommendFoodsNeverReturnsBlocked(t *testing.T) {
	t.Parallel()

	r := newTestRecommender()
	profile := pittaProfile()
	profile.Allergies = []string{"Nuts"}

	foods := append(testFoods(), &models.Food{
		ID: "almond", Name: "Almond Halwa", Category: "dessert",
		Ayurveda: &models.AyurvedaProperties{
			DoshaEffects: map[string]float64{"pitta": -1},
		},
	})

	// Even an explicit minimum of 0 must not admit blocked items.
	zero := 0.0
	res := r.RecommendFoods(profile, foods, Options{MinScore: &zero}, engine.DefaultConfig())
	for _, rec := range res.Recommendations {
		if rec.ID == "almond" {
			t.Fatal("blocked item surfaced in recommendations")
		}
	}
}

func TestRecommendFoodsMinScoreFilter(t *testing.T) {
	t.Parallel()

	r := newTestRecommender()
	high := 99.0
	res := r.RecommendFoods(pittaProfile(), testFoods(), Options{MinScore: &high}, engine.DefaultConfig())
	if len(res.Recommendations) != 0 {
		t.Errorf("min score 99 should filter everything, got %d items", len(res.Recommendations))
	}
}

func TestRecommendFoodsCategoryFilter(t *testing.T) {
	t.Parallel()

	r := newTestRecommender()
	zero := 0.0
	res := r.RecommendFoods(pittaProfile(), testFoods(), Options{MinScore: &zero, Category: "grain"}, engine.DefaultConfig())
	for _, rec := range res.Recommendations {
		if rec.Category != "grain" {
			t.Errorf("category filter leaked %s (%s)", rec.ID, rec.Category)
		}
	}
}

func TestRecommendFoodsLimit(t *testing.T) {
	t.Parallel()

	r := newTestRecommender()
	zero := 0.0
	res := r.RecommendFoods(pittaProfile(), testFoods(), Options{MinScore: &zero, Limit: 1}, engine.DefaultConfig())
	if len(res.Recommendations) != 1 {
		t.Errorf("limit 1 returned %d items", len(res.Recommendations))
	}
}

func testRecipes() []*models.Recipe {
	return []*models.Recipe{
		{
			ID: "khichdi", Name: "Moong Khichdi", Category: "one-pot",
			MealSlots: []string{"lunch", "dinner"}, PrepMinutes: 30,
			Ayurveda: &models.AyurvedaProperties{
				Digestibility: "light",
				DoshaEffects:  map[string]float64{"pitta": -1},
			},
			Nutrition: &models.NutritionSnapshot{Calories: 320, Protein: 12, Carbs: 52, Fat: 6, Fiber: 8},
		},
		{
			ID: "poha", Name: "Vegetable Poha", Category: "breakfast",
			MealSlots: []string{"breakfast"}, PrepMinutes: 15,
			Ayurveda: &models.AyurvedaProperties{
				DoshaEffects: map[string]float64{"pitta": -0.5},
			},
			Nutrition: &models.NutritionSnapshot{Calories: 250, Protein: 6, Carbs: 40, Fat: 7, Fiber: 3},
		},
		{
			ID: "vindaloo", Name: "Chicken Vindaloo", Category: "curry",
			MealSlots: []string{"lunch", "dinner"}, PrepMinutes: 60,
			Tags: []string{"spicy"},
			Ayurveda: &models.AyurvedaProperties{
				Potency:      "heating",
				DoshaEffects: map[string]float64{"pitta": 1},
			},
			Nutrition: &models.NutritionSnapshot{Calories: 450, Protein: 30, Carbs: 15, Fat: 28, Fiber: 2},
		},
	}
}

func TestRecommendRecipesMealFilter(t *testing.T) {
	t.Parallel()

	r := newTestRecommender()
	zero := 0.0
	res := r.RecommendMeal(pittaProfile(), testRecipes(), "breakfast", Options{MinScore: &zero}, engine.DefaultConfig())

	if len(res.Recommendations) != 1 || res.Recommendations[0].ID != "poha" {
		t.Errorf("breakfast recommendations = %+v, want only poha", res.Recommendations)
	}
	if res.Summary.MeanPrepMinutes != 15 {
		t.Errorf("MeanPrepMinutes = %v, want 15", res.Summary.MeanPrepMinutes)
	}
}

func TestRecommendRecipesVegetarianVeto(t *testing.T) {
	t.Parallel()

	r := newTestRecommender()
	profile := pittaProfile()
	profile.DietaryPreferences = []string{"vegetarian"}

	zero := 0.0
	res := r.RecommendRecipes(profile, testRecipes(), Options{MinScore: &zero}, engine.DefaultConfig())
	for _, rec := range res.Recommendations {
		if rec.ID == "vindaloo" {
			t.Fatal("vegetarian profile must never see a chicken recipe")
		}
	}
}

func TestRecommendDailyPlan(t *testing.T) {
	t.Parallel()

	r := newTestRecommender()
	zero := 0.0
	plan := r.RecommendDailyPlan(pittaProfile(), testRecipes(), Options{MinScore: &zero}, engine.DefaultConfig())

	if len(plan.Breakfast) != 1 || plan.Breakfast[0].ID != "poha" {
		t.Errorf("Breakfast = %+v, want poha", plan.Breakfast)
	}
	for _, rec := range plan.Lunch {
		if rec.ID == "poha" {
			t.Error("poha declares breakfast only, must not appear at lunch")
		}
	}
	if len(plan.Lunch) == 0 || len(plan.Dinner) == 0 {
		t.Error("expected lunch and dinner recommendations")
	}
}

func TestOptionsMinScorePresets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts Options
		want float64
	}{
		{"default", Options{}, DefaultMinScore},
		{"breakfast preset", Options{Meal: "breakfast"}, BreakfastMinScore},
		{"lunch preset", Options{Meal: "lunch"}, LunchMinScore},
		{"dinner preset", Options{Meal: "dinner"}, DinnerMinScore},
		{"snack preset", Options{Meal: "snack"}, SnackMinScore},
		{"explicit zero beats preset", Options{Meal: "breakfast", MinScore: func() *float64 { z := 0.0; return &z }()}, 0},
		{"explicit value beats default", Options{MinScore: func() *float64 { v := 72.5; return &v }()}, 72.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.opts.minScore(); got != tt.want {
				t.Errorf("minScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRankStableTies(t *testing.T) {
	t.Parallel()

	recs := []Recommendation{
		{ID: "a", Score: 60},
		{ID: "b", Score: 60},
		{ID: "c", Score: 70},
	}
	ranked := rank(recs, 10)
	if ranked[0].ID != "c" || ranked[1].ID != "a" || ranked[2].ID != "b" {
		t.Errorf("rank order = %v, want c a b (stable ties)", []string{ranked[0].ID, ranked[1].ID, ranked[2].ID})
	}
}
