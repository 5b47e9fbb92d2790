// Ahara - Multi-System Dietary Recommendation Service
// Copyright 2026 Ahara Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahara-health/ahara

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterConfig carries the API-surface settings the router needs.
type RouterConfig struct {
	CORSOrigins       []string
	RateLimitRequests int
	RateLimitWindow   time.Duration
	RateLimitDisabled bool
	DefaultLimit      int
	MaxLimit          int
}

// Router wires handlers and middleware into the Chi route tree.
type Router struct {
	handler    *Handler
	middleware *Middleware
}

// NewRouter creates a router around the handler set.
func NewRouter(handler *Handler, cfg RouterConfig) *Router {
	handler.SetListLimits(cfg.DefaultLimit, cfg.MaxLimit)

	mwConfig := DefaultMiddlewareConfig()
	mwConfig.CORSAllowedOrigins = cfg.CORSOrigins
	if cfg.RateLimitRequests > 0 {
		mwConfig.RateLimitRequests = cfg.RateLimitRequests
	}
	if cfg.RateLimitWindow > 0 {
		mwConfig.RateLimitWindow = cfg.RateLimitWindow
	}
	mwConfig.RateLimitDisabled = cfg.RateLimitDisabled

	return &Router{
		handler:    handler,
		middleware: NewMiddleware(mwConfig),
	}
}

// Setup builds the full route tree.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied in order.
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.middleware.CORS()) // global so OPTIONS preflight works

	// Health endpoints: permissive rate limit for monitoring probes.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.middleware.RateLimitHealth())
		r.Use(SecurityHeaders())
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// Scoring and recommendation endpoints.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.middleware.RateLimit())
		r.Use(SecurityHeaders())
		r.Use(PrometheusMetrics())

		r.Post("/score", router.handler.Score)
		r.Post("/nutrition/aggregate", router.handler.AggregateNutrition)

		r.Route("/recommend", func(r chi.Router) {
			r.Post("/foods", router.handler.RecommendFoods)
			r.Post("/recipes", router.handler.RecommendRecipes)
			r.Post("/meal/{slot}", router.handler.RecommendMeal)
			r.Post("/daily-plan", router.handler.RecommendDailyPlan)
		})

		r.Route("/scoring/config", func(r chi.Router) {
			r.Get("/", router.handler.GetScoringConfig)
			r.With(router.middleware.RateLimitWrite()).Put("/", router.handler.UpdateScoringConfig)
		})

		// Catalog reads share the default limit; writes get a tighter one.
		r.Route("/foods", func(r chi.Router) {
			r.Get("/", router.handler.ListFoods)
			r.Get("/{id}", router.handler.GetFood)
			r.Group(func(r chi.Router) {
				r.Use(router.middleware.RateLimitWrite())
				r.Post("/", router.handler.CreateFood)
				r.Put("/{id}", router.handler.UpdateFood)
				r.Delete("/{id}", router.handler.DeleteFood)
			})
		})

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", router.handler.ListRecipes)
			r.Get("/{id}", router.handler.GetRecipe)
			r.Group(func(r chi.Router) {
				r.Use(router.middleware.RateLimitWrite())
				r.Post("/", router.handler.CreateRecipe)
				r.Put("/{id}", router.handler.UpdateRecipe)
				r.Delete("/{id}", router.handler.DeleteRecipe)
			})
		})

		r.Route("/profiles", func(r chi.Router) {
			r.Get("/{id}", router.handler.GetProfile)
			r.Group(func(r chi.Router) {
				r.Use(router.middleware.RateLimitWrite())
				r.Post("/", router.handler.CreateProfile)
				r.Put("/{id}", router.handler.UpdateProfile)
				r.Delete("/{id}", router.handler.DeleteProfile)
			})
		})
	})

	// Bare health alias for load balancers and container probes.
	r.With(router.middleware.RateLimitHealth()).Get("/health", router.handler.Health)

	// Prometheus scrape endpoint, outside the envelope and rate limits.
	r.Handle("/metrics", promhttp.Handler())

	return r
}
