// Ahara - Multi-System Dietary Recommendation Service
// Copyright 2026 Ahara Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahara-health/ahara

// Package config loads and validates the application configuration
// with layered sources: built-in defaults, an optional YAML file, and
// environment variables, in ascending precedence.
package config

import (
	"fmt"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Store   StoreConfig   `koanf:"store"`
	Scoring ScoringConfig `koanf:"scoring"`
	API     APIConfig     `koanf:"api"`
	Logging LoggingConfig `koanf:"logging"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	// Host is the listen address.
	Host string `koanf:"host"`

	// Port is the listen port.
	Port int `koanf:"port"`

	// Timeout bounds request read/write durations.
	Timeout time.Duration `koanf:"timeout"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// StoreConfig holds the persistence settings.
type StoreConfig struct {
	// Path is the BadgerDB directory. Empty selects an in-memory
	// store, which loses data on restart.
	Path string `koanf:"path"`
}

// ScoringConfig holds the scoring-engine bootstrap settings. The full
// weight configuration lives in the store and is tuned at runtime;
// these fields only seed behavior before the first stored row exists.
type ScoringConfig struct {
	// DefaultFramework applies when a profile populates no assessment
	// fields.
	DefaultFramework string `koanf:"default_framework"`

	// CacheTTL bounds how long the scoring configuration is cached
	// between store reads.
	CacheTTL time.Duration `koanf:"cache_ttl"`
}

// APIConfig holds API surface settings.
type APIConfig struct {
	// DefaultLimit is the recommendation list size when the caller
	// sets none.
	DefaultLimit int `koanf:"default_limit"`

	// MaxLimit caps caller-requested list sizes.
	MaxLimit int `koanf:"max_limit"`

	// RateLimitRequests is the allowed requests per window per client.
	RateLimitRequests int `koanf:"rate_limit_requests"`

	// RateLimitWindow is the rate limiting window.
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`

	// CORSOrigins lists allowed CORS origins.
	CORSOrigins []string `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level.
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`

	// Caller includes caller information in log lines.
	Caller bool `koanf:"caller"`
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port out of range: %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server timeout must be positive: %v", c.Server.Timeout)
	}
	if c.API.DefaultLimit < 1 {
		return fmt.Errorf("api default limit must be positive: %d", c.API.DefaultLimit)
	}
	if c.API.MaxLimit < c.API.DefaultLimit {
		return fmt.Errorf("api max limit %d below default limit %d", c.API.MaxLimit, c.API.DefaultLimit)
	}
	if c.Scoring.CacheTTL < 0 {
		return fmt.Errorf("scoring cache TTL must not be negative: %v", c.Scoring.CacheTTL)
	}
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("unknown logging format %q", c.Logging.Format)
	}
	return nil
}
