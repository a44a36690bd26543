// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/balades/docs" // registers the OpenAPI docs
	"github.com/tomtom215/balades/internal/api"
	"github.com/tomtom215/balades/internal/config"
	"github.com/tomtom215/balades/internal/events"
	"github.com/tomtom215/balades/internal/logging"
	"github.com/tomtom215/balades/internal/service"
	"github.com/tomtom215/balades/internal/store"
	"github.com/tomtom215/balades/internal/supervisor"
	"github.com/tomtom215/balades/internal/supervisor/services"
)

// storeCheckInterval is how often the store monitor pings the backend.
const storeCheckInterval = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// config not loaded yet, default logger
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Server stopped with error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

func run(cfg *config.Config) error {
	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("store", cfg.Store.Backend).
		Str("events", cfg.Events.Backend).
		Str("environment", cfg.Server.Environment).
		Msg("Starting balades")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// === RECORD STORE ===
	openCtx, cancelOpen := context.WithTimeout(ctx, cfg.Store.Mongo.ConnectTimeout+5*time.Second)
	st, err := store.New(openCtx, &cfg.Store)
	cancelOpen()
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := st.Close(closeCtx); err != nil {
			logging.Error().Err(err).Msg("Error closing record store")
		}
	}()

	// === CHANGE EVENTS ===
	bus, err := events.Open(&cfg.Events)
	if err != nil {
		return err
	}
	defer func() {
		if err := bus.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing event bus")
		}
	}()

	// === HTTP ===
	svc := service.New(st, bus.Publisher)
	mw := api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security))
	router := api.NewRouter(api.NewHandler(svc), mw)

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	for _, origin := range cfg.Security.CORSOrigins {
		if origin == "*" && cfg.IsProduction() {
			logging.Warn().Msg("CORS allows any origin in production")
		}
	}

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	// === SUPERVISOR TREE ===
	tree, err := supervisor.NewSupervisorTree(logging.NewComponentSlogLogger("supervisor"), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return err
	}

	tree.AddDataService(services.NewStoreMonitorService(st, storeCheckInterval))

	if bus.Server != nil {
		tree.AddMessagingService(services.NewNATSServerService(bus.Server))
	}
	if bus.Subscriber != nil {
		tree.AddMessagingService(events.NewAuditConsumer(bus.Subscriber, bus.TopicPrefix, logging.WithComponent("audit")))
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Received shutdown signal, waiting for services to stop")
		serveErr = <-errCh
	case serveErr = <-errCh:
	}
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		return serveErr
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, s := range unstopped {
		logging.Warn().Str("service", s.Name).Msg("Service failed to stop within timeout")
	}
	return nil
}
