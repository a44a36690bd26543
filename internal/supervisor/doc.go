// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

/*
Package supervisor runs the long-lived parts of the balades server under a
suture v4 supervisor tree.

# Overview

Services are grouped into three layers, each with its own supervisor:

	RootSupervisor ("balades")
	├── DataSupervisor ("data-layer")
	│   └── StoreMonitorService
	├── MessagingSupervisor ("messaging-layer")
	│   ├── NATSServerService (if events.nats.embedded)
	│   └── events.AuditConsumer (if events.backend is memory or nats)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A crashing service is restarted with backoff by its layer supervisor.
Failures are counted per layer, so a consumer that keeps failing never
restarts the HTTP server.

Supervisor events (start, stop, failure, backoff) are logged through
sutureslog onto the zerolog-backed slog logger from the logging package.

# Usage

	logger := logging.NewComponentSlogLogger("supervisor")
	tree, err := supervisor.NewSupervisorTree(logger, supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}

	tree.AddDataService(services.NewStoreMonitorService(st, 15*time.Second))
	tree.AddMessagingService(events.NewAuditConsumer(bus.Subscriber, prefix, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

# Shutdown

Cancelling the context passed to Serve stops every layer. Each service gets
TreeConfig.ShutdownTimeout to return, after which UnstoppedServiceReport
lists the stragglers.
*/
package supervisor
