// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateStore(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	if err := c.validateEvents(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("SERVER_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

var validStoreBackends = map[string]bool{
	StoreBackendMongo:  true,
	StoreBackendDuckDB: true,
	StoreBackendMemory: true,
}

// validateStore validates the record store configuration for the selected backend
func (c *Config) validateStore() error {
	if !validStoreBackends[c.Store.Backend] {
		return fmt.Errorf("STORE_BACKEND must be one of: mongo, duckdb, memory (got %q)", c.Store.Backend)
	}
	if c.Store.OpTimeout <= 0 {
		return fmt.Errorf("STORE_OP_TIMEOUT must be positive")
	}
	if c.Store.Breaker.FailureThreshold == 0 {
		return fmt.Errorf("STORE_BREAKER_FAILURES must be at least 1")
	}
	if c.Store.Breaker.Timeout <= 0 {
		return fmt.Errorf("STORE_BREAKER_TIMEOUT must be positive")
	}

	switch c.Store.Backend {
	case StoreBackendMongo:
		return c.validateMongo()
	case StoreBackendDuckDB:
		return c.validateDuckDB()
	}
	return nil
}

func (c *Config) validateMongo() error {
	m := c.Store.Mongo
	if !strings.HasPrefix(m.URI, "mongodb://") && !strings.HasPrefix(m.URI, "mongodb+srv://") {
		return fmt.Errorf("MONGO_URI must start with mongodb:// or mongodb+srv://")
	}
	if m.Database == "" {
		return fmt.Errorf("MONGO_DATABASE is required")
	}
	if m.Collection == "" {
		return fmt.Errorf("MONGO_COLLECTION is required")
	}
	if m.ConnectTimeout <= 0 {
		return fmt.Errorf("MONGO_CONNECT_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateDuckDB() error {
	if c.Store.DuckDB.Path == "" {
		return fmt.Errorf("DUCKDB_PATH is required when STORE_BACKEND=duckdb")
	}
	if c.Store.DuckDB.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must not be negative")
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// validateSecurity validates rate limits and CORS origins
func (c *Config) validateSecurity() error {
	for _, origin := range c.Security.CORSOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("CORS_ORIGINS entry %q must be * or start with http:// or https://", origin)
		}
	}

	if c.Security.RateLimitDisabled {
		return nil
	}
	if err := validateRateLimitRequests("RATE_LIMIT_REQUESTS", c.Security.RateLimitRequests); err != nil {
		return err
	}
	if err := validateRateLimitRequests("RATE_LIMIT_WRITE_REQUESTS", c.Security.RateLimitWriteRequests); err != nil {
		return err
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

func validateRateLimitRequests(name string, n int) error {
	if n < minRateLimitRequests || n > maxRateLimitRequests {
		return fmt.Errorf("%s must be between %d and %d", name, minRateLimitRequests, maxRateLimitRequests)
	}
	return nil
}

// hasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// ShouldWarnAboutCORS returns true if wildcard CORS is configured in production
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.hasWildcardCORS() && c.IsProduction()
}

var validEventBackends = map[string]bool{
	EventsBackendNone:   true,
	EventsBackendMemory: true,
	EventsBackendNATS:   true,
}

// validateEvents validates the change event transport configuration
func (c *Config) validateEvents() error {
	e := c.Events
	if !validEventBackends[e.Backend] {
		return fmt.Errorf("EVENTS_BACKEND must be one of: none, memory, nats (got %q)", e.Backend)
	}
	if e.Backend == EventsBackendNone {
		return nil
	}
	if e.TopicPrefix == "" {
		return fmt.Errorf("EVENTS_TOPIC_PREFIX is required when events are enabled")
	}
	if e.Backend != EventsBackendNATS {
		return nil
	}

	if e.NATS.Embedded {
		if e.NATS.Port < -1 || e.NATS.Port > 65535 {
			return fmt.Errorf("NATS_PORT must be between 1 and 65535 (or -1 for random)")
		}
	} else if !strings.HasPrefix(e.NATS.URL, "nats://") && !strings.HasPrefix(e.NATS.URL, "tls://") {
		return fmt.Errorf("NATS_URL must start with nats:// or tls://")
	}
	if e.NATS.MaxReconnects < -1 {
		return fmt.Errorf("NATS_MAX_RECONNECTS must be -1 (unlimited) or greater")
	}
	if e.NATS.ReconnectWait <= 0 {
		return fmt.Errorf("NATS_RECONNECT_WAIT must be positive")
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates the logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
