// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

package config

import (
	"testing"
	"time"
)

func TestValidateRateLimits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"max requests", func(c *Config) { c.Security.RateLimitRequests = 100000 }, false},
		{"too many requests", func(c *Config) { c.Security.RateLimitRequests = 100001 }, true},
		{"write limit zero", func(c *Config) { c.Security.RateLimitWriteRequests = 0 }, true},
		{"window too short", func(c *Config) { c.Security.RateLimitWindow = 500 * time.Millisecond }, true},
		{"window too long", func(c *Config) { c.Security.RateLimitWindow = 2 * time.Hour }, true},
		{"disabled skips checks", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitWindow = 0
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateStore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"memory needs nothing", func(c *Config) {
			c.Store.Backend = StoreBackendMemory
			c.Store.Mongo.URI = ""
		}, false},
		{"mongo srv uri", func(c *Config) { c.Store.Mongo.URI = "mongodb+srv://cluster.example" }, false},
		{"mongo missing database", func(c *Config) { c.Store.Mongo.Database = "" }, true},
		{"mongo missing collection", func(c *Config) { c.Store.Mongo.Collection = "" }, true},
		{"duckdb negative threads", func(c *Config) {
			c.Store.Backend = StoreBackendDuckDB
			c.Store.DuckDB.Threads = -1
		}, true},
		{"zero op timeout", func(c *Config) { c.Store.OpTimeout = 0 }, true},
		{"zero breaker threshold", func(c *Config) { c.Store.Breaker.FailureThreshold = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_AllLogLevels(t *testing.T) {
	t.Parallel()

	for _, level := range []string{"trace", "debug", "info", "warn", "error", "DEBUG"} {
		cfg := defaultConfig()
		cfg.Logging.Level = level
		if err := cfg.Validate(); err != nil {
			t.Errorf("level %q should be valid: %v", level, err)
		}
	}
}

func TestNATSClientURL(t *testing.T) {
	t.Parallel()

	n := NATSConfig{URL: "nats://broker:4222", Host: "127.0.0.1", Port: 4333}
	if got := n.ClientURL(); got != "nats://broker:4222" {
		t.Errorf("ClientURL() = %q", got)
	}

	n.Embedded = true
	if got := n.ClientURL(); got != "nats://127.0.0.1:4333" {
		t.Errorf("embedded ClientURL() = %q", got)
	}
}

func TestShouldWarnAboutCORS(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	if cfg.ShouldWarnAboutCORS() {
		t.Error("no origins should not warn")
	}

	cfg.Security.CORSOrigins = []string{"*"}
	if !cfg.ShouldWarnAboutCORS() {
		t.Error("wildcard in production should warn")
	}

	cfg.Server.Environment = "development"
	if cfg.ShouldWarnAboutCORS() {
		t.Error("wildcard in development should not warn")
	}
}
