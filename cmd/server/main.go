// Ahara - Multi-System Dietary Recommendation Service
// Copyright 2026 Ahara Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahara-health/ahara

// Package main is the entry point for the Ahara server.
//
// Ahara scores foods and recipes against personal health profiles under
// five frameworks (Ayurveda, Unani, TCM, Siddha, modern nutrition) plus
// a safety layer that can veto items outright, and serves ranked
// recommendations over a REST API.
//
// Startup order:
//
//  1. Configuration: Koanf v2 layering of defaults, config file, and
//     environment variables
//  2. Logging: zerolog, global level and format from configuration
//  3. Storage: BadgerDB catalog, profile and config persistence
//  4. Scoring: evaluator engine, recommender, scoring config service
//  5. HTTP: Chi router under a suture supervision tree
//
// Shutdown on SIGINT/SIGTERM is graceful: the supervisor cancels its
// services, the HTTP server drains in-flight requests within the
// configured timeout, then the store closes.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/ahara-health/ahara/internal/api"
	"github.com/ahara-health/ahara/internal/config"
	"github.com/ahara-health/ahara/internal/configstore"
	"github.com/ahara-health/ahara/internal/engine"
	"github.com/ahara-health/ahara/internal/logging"
	"github.com/ahara-health/ahara/internal/recommend"
	"github.com/ahara-health/ahara/internal/storage"
	"github.com/ahara-health/ahara/internal/supervisor"
	"github.com/ahara-health/ahara/internal/supervisor/services"
)

func main() {
	if err := run(); err != nil {
		logging.Error().Err(err).Msg("Server exited with error")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})
	logger := logging.Logger()

	logger.Info().
		Str("addr", net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))).
		Str("store", cfg.Store.Path).
		Msg("Starting ahara server")

	// Log level and format follow config file edits without a restart.
	if path := config.FindConfigFile(); path != "" {
		err := config.WatchConfigFile(path, func() {
			reloaded, rerr := config.Load()
			if rerr != nil {
				logging.Warn().Err(rerr).Msg("Config reload failed, keeping current settings")
				return
			}
			logging.Init(logging.Config{
				Level:     reloaded.Logging.Level,
				Format:    reloaded.Logging.Format,
				Caller:    reloaded.Logging.Caller,
				Timestamp: true,
			})
			logging.Info().Str("path", path).Msg("Logging settings reloaded")
		})
		if err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("Config file watch unavailable")
		}
	}

	store, err := storage.Open(cfg.Store.Path, logger)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logger.Error().Err(cerr).Msg("Closing store")
		}
	}()

	catalog := storage.NewCatalog(store, logger)

	configs := configstore.New(store, logger)
	eng := engine.New(logger)
	recommender := recommend.New(eng, logger)

	handler := api.NewHandler(store, catalog, eng, recommender, configs, logger)
	router := api.NewRouter(handler, api.RouterConfig{
		CORSOrigins:       cfg.API.CORSOrigins,
		RateLimitRequests: cfg.API.RateLimitRequests,
		RateLimitWindow:   cfg.API.RateLimitWindow,
		DefaultLimit:      cfg.API.DefaultLimit,
		MaxLimit:          cfg.API.MaxLimit,
	})

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	treeConfig := supervisor.DefaultTreeConfig()
	treeConfig.ShutdownTimeout = cfg.Server.ShutdownTimeout

	tree, err := supervisor.NewTree(logging.NewSlogLogger(), treeConfig)
	if err != nil {
		return fmt.Errorf("building supervisor tree: %w", err)
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	if cfg.Store.Path != "" {
		// Value-log GC is a no-op for in-memory stores.
		tree.AddStoreService(services.NewStoreGCService(store, 0, logger))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = tree.Serve(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor: %w", err)
	}

	logger.Info().Msg("Server stopped")
	return nil
}
