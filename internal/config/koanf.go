// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/balades/config.yaml",
	"/etc/balades/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "",
			Port:            1235,
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "production",
		},
		Store: StoreConfig{
			Backend:   StoreBackendMongo,
			OpTimeout: 10 * time.Second,
			Mongo: MongoConfig{
				URI:            "mongodb://localhost:27017",
				Database:       "Paris",
				Collection:     "Balades",
				ConnectTimeout: 10 * time.Second,
			},
			DuckDB: DuckDBConfig{
				Path:    "/data/balades.duckdb",
				Threads: 0,
			},
			Breaker: BreakerConfig{
				FailureThreshold: 5,
				Timeout:          30 * time.Second,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Security: SecurityConfig{
			CORSOrigins:            []string{},
			RateLimitRequests:      100,
			RateLimitWriteRequests: 30,
			RateLimitWindow:        time.Minute,
			RateLimitDisabled:      false,
		},
		Events: EventsConfig{
			Backend:     EventsBackendMemory,
			TopicPrefix: "balades",
			NATS: NATSConfig{
				URL:           "nats://127.0.0.1:4222",
				Embedded:      false,
				Host:          "127.0.0.1",
				Port:          4222,
				MaxReconnects: 10,
				ReconnectWait: 2 * time.Second,
			},
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// MONGO_URI -> store.mongo.uri, HTTP_PORT -> server.port
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "" if none exists.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars arrive as strings while YAML lists arrive as slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to koanf paths.
// Unmapped variables are ignored.
var envMappings = map[string]string{
	// Server
	"http_host":        "server.host",
	"http_port":        "server.port",
	"server_timeout":   "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"environment":      "server.environment",

	// Store
	"store_backend":          "store.backend",
	"store_op_timeout":       "store.op_timeout",
	"mongo_uri":              "store.mongo.uri",
	"mongo_database":         "store.mongo.database",
	"mongo_collection":       "store.mongo.collection",
	"mongo_connect_timeout":  "store.mongo.connect_timeout",
	"duckdb_path":            "store.duckdb.path",
	"duckdb_threads":         "store.duckdb.threads",
	"store_breaker_failures": "store.breaker.failure_threshold",
	"store_breaker_timeout":  "store.breaker.timeout",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Security
	"cors_origins":              "security.cors_origins",
	"rate_limit_requests":       "security.rate_limit_requests",
	"rate_limit_write_requests": "security.rate_limit_write_requests",
	"rate_limit_window":         "security.rate_limit_window",
	"disable_rate_limit":        "security.rate_limit_disabled",

	// Events
	"events_backend":      "events.backend",
	"events_topic_prefix": "events.topic_prefix",
	"nats_url":            "events.nats.url",
	"nats_embedded":       "events.nats.embedded",
	"nats_host":           "events.nats.host",
	"nats_port":           "events.nats.port",
	"nats_max_reconnects": "events.nats.max_reconnects",
	"nats_reconnect_wait": "events.nats.reconnect_wait",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - MONGO_URI -> store.mongo.uri
//   - NATS_EMBEDDED -> events.nats.embedded
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}
