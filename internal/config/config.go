// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Store backends
const (
	StoreBackendMongo  = "mongo"
	StoreBackendDuckDB = "duckdb"
	StoreBackendMemory = "memory"
)

// Event backends
const (
	EventsBackendNone   = "none"
	EventsBackendMemory = "memory"
	EventsBackendNATS   = "nats"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Store    StoreConfig    `koanf:"store"`
	Logging  LoggingConfig  `koanf:"logging"`
	Security SecurityConfig `koanf:"security"`
	Events   EventsConfig   `koanf:"events"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // "development", "staging", "production"
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// StoreConfig selects and configures the record store.
type StoreConfig struct {
	Backend   string        `koanf:"backend"`
	OpTimeout time.Duration `koanf:"op_timeout"`
	Mongo     MongoConfig   `koanf:"mongo"`
	DuckDB    DuckDBConfig  `koanf:"duckdb"`
	Breaker   BreakerConfig `koanf:"breaker"`
}

// MongoConfig holds MongoDB connection settings
type MongoConfig struct {
	URI            string        `koanf:"uri"`
	Database       string        `koanf:"database"`
	Collection     string        `koanf:"collection"`
	ConnectTimeout time.Duration `koanf:"connect_timeout"`
}

// DuckDBConfig holds embedded DuckDB settings
type DuckDBConfig struct {
	Path    string `koanf:"path"`
	Threads int    `koanf:"threads"` // 0 = runtime.NumCPU()
}

// BreakerConfig controls the circuit breaker in front of the store.
type BreakerConfig struct {
	FailureThreshold uint32        `koanf:"failure_threshold"` // consecutive failures before opening
	Timeout          time.Duration `koanf:"timeout"`           // open state duration before half-open
}

// LoggingConfig holds zerolog settings
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// SecurityConfig holds CORS and rate limit settings
type SecurityConfig struct {
	CORSOrigins            []string      `koanf:"cors_origins"`
	RateLimitRequests      int           `koanf:"rate_limit_requests"`
	RateLimitWriteRequests int           `koanf:"rate_limit_write_requests"`
	RateLimitWindow        time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled      bool          `koanf:"rate_limit_disabled"`
}

// EventsConfig holds change event settings
type EventsConfig struct {
	Backend     string     `koanf:"backend"`
	TopicPrefix string     `koanf:"topic_prefix"`
	NATS        NATSConfig `koanf:"nats"`
}

// NATSConfig holds NATS transport settings. When Embedded is true an
// in-process nats-server listens on Host:Port and URL is ignored.
type NATSConfig struct {
	URL           string        `koanf:"url"`
	Embedded      bool          `koanf:"embedded"`
	Host          string        `koanf:"host"`
	Port          int           `koanf:"port"`
	MaxReconnects int           `koanf:"max_reconnects"`
	ReconnectWait time.Duration `koanf:"reconnect_wait"`
}

// ClientURL returns the URL publishers and subscribers connect to.
func (n NATSConfig) ClientURL() string {
	if n.Embedded {
		return fmt.Sprintf("nats://%s", net.JoinHostPort(n.Host, strconv.Itoa(n.Port)))
	}
	return n.URL
}

// IsProduction returns true if the application is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production" || c.Server.Environment == "prod"
}

// Load reads configuration from all sources in order of precedence:
//  1. Built-in defaults
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH env var)
//  3. Environment variables
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
