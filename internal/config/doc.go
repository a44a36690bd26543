// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

/*
Package config provides centralized configuration management for Balades.

Configuration is layered with Koanf v2, each layer overriding the previous one:
  - Built-in defaults (defaultConfig)
  - Optional YAML file (CONFIG_PATH, or config.yaml / /etc/balades/config.yaml)
  - Environment variables

# Configuration Structure

  - ServerConfig: HTTP listener and shutdown settings
  - StoreConfig: record store backend (mongo, duckdb, memory) and circuit breaker
  - LoggingConfig: zerolog level, format and caller reporting
  - SecurityConfig: CORS origins and rate limits
  - EventsConfig: change event transport (none, memory, nats) and embedded NATS

# Environment Variables

Server:
  - HTTP_HOST: Bind address (default: all interfaces)
  - HTTP_PORT: Listen port (default: 1235)
  - SERVER_TIMEOUT: Read/write timeout (default: 30s)
  - SHUTDOWN_TIMEOUT: Graceful shutdown timeout (default: 10s)
  - ENVIRONMENT: development, staging or production (default: production)

Store:
  - STORE_BACKEND: mongo, duckdb or memory (default: mongo)
  - STORE_OP_TIMEOUT: Per-operation timeout (default: 10s)
  - MONGO_URI, MONGO_DATABASE, MONGO_COLLECTION, MONGO_CONNECT_TIMEOUT
  - DUCKDB_PATH, DUCKDB_THREADS
  - STORE_BREAKER_FAILURES, STORE_BREAKER_TIMEOUT

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include caller file:line (default: false)

Security:
  - CORS_ORIGINS: Comma-separated list of allowed origins
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WRITE_REQUESTS, RATE_LIMIT_WINDOW
  - DISABLE_RATE_LIMIT

Events:
  - EVENTS_BACKEND: none, memory or nats (default: memory)
  - EVENTS_TOPIC_PREFIX (default: balades)
  - NATS_URL, NATS_EMBEDDED, NATS_HOST, NATS_PORT
  - NATS_MAX_RECONNECTS, NATS_RECONNECT_WAIT

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Println(cfg.Server.Port)

# Thread Safety

Config is immutable after Load() returns and is safe for concurrent reads.
*/
package config
