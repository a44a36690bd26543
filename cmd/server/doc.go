// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

/*
Package main is the entry point for the balades server.

Balades serves walking tour points of interest stored in a document
database over a small REST API.

# Application Architecture

	RootSupervisor ("balades")
	├── DataSupervisor ("data-layer")
	│   └── store monitor (periodic ping, store_up gauge)
	├── MessagingSupervisor ("messaging-layer")
	│   ├── embedded NATS server (events.nats.embedded)
	│   └── audit consumer (events.backend memory or nats)
	└── APISupervisor ("api-layer")
	    └── HTTP server

Startup order:

 1. Configuration: koanf v2, defaults < config.yaml < environment
 2. Logging: zerolog with the configured level and format
 3. Record store: mongo, duckdb or memory, behind a circuit breaker
 4. Event bus: none, memory (Watermill gochannel) or nats
 5. HTTP router: chi with CORS, rate limiting, metrics and swagger
 6. Supervisor tree

# Configuration

Common environment variables:

	HTTP_PORT=1235
	STORE_BACKEND=mongo
	MONGO_URI=mongodb://localhost:27017
	MONGO_DATABASE=Paris
	MONGO_COLLECTION=Balades
	EVENTS_BACKEND=nats
	NATS_EMBEDDED=true
	LOG_LEVEL=info

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains
in-flight requests within SHUTDOWN_TIMEOUT, then the event bus and the
record store are closed.

# Example Usage

Development with an in-memory store and in-process events:

	STORE_BACKEND=memory EVENTS_BACKEND=memory LOG_FORMAT=console ./balades

Against MongoDB:

	docker run -d -p 27017:27017 mongo:7
	STORE_BACKEND=mongo MONGO_URI=mongodb://localhost:27017 ./balades
*/
package main
