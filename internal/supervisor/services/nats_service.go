// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/balades/internal/logging"
)

// ErrNATSServerStopped is returned by NATSServerService.Serve when the
// embedded server stops on its own.
var ErrNATSServerStopped = errors.New("embedded NATS server stopped unexpectedly")

// NATSServer is satisfied by *events.EmbeddedServer.
type NATSServer interface {
	IsRunning() bool
	Shutdown(ctx context.Context) error
}

// NATSServerService owns the lifetime of an embedded NATS server that was
// started when the event bus was opened.
//
// Serve watches the server every checkInterval and fails when it has
// stopped, so the supervisor logs and backs off. On cancellation it shuts
// the server down within shutdownTimeout. A stopped server cannot be
// restarted in place, so after a failure Serve keeps returning
// ErrNATSServerStopped.
type NATSServerService struct {
	server          NATSServer
	checkInterval   time.Duration
	shutdownTimeout time.Duration
}

// NewNATSServerService wraps server with a 1s health check and a 10s
// shutdown timeout.
func NewNATSServerService(server NATSServer) *NATSServerService {
	return NewNATSServerServiceWithTimeouts(server, time.Second, 10*time.Second)
}

// NewNATSServerServiceWithTimeouts wraps server with explicit timings.
// Non-positive values fall back to the defaults.
func NewNATSServerServiceWithTimeouts(server NATSServer, checkInterval, shutdownTimeout time.Duration) *NATSServerService {
	if checkInterval <= 0 {
		checkInterval = time.Second
	}
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	return &NATSServerService{
		server:          server,
		checkInterval:   checkInterval,
		shutdownTimeout: shutdownTimeout,
	}
}

// Serve implements suture.Service.
func (s *NATSServerService) Serve(ctx context.Context) error {
	if !s.server.IsRunning() {
		return ErrNATSServerStopped
	}

	ticker := time.NewTicker(s.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
			defer cancel()

			if err := s.server.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("embedded NATS server shutdown: %w", err)
			}
			logging.Info().Msg("Embedded NATS server stopped")
			return ctx.Err()

		case <-ticker.C:
			if !s.server.IsRunning() {
				return ErrNATSServerStopped
			}
		}
	}
}

// String implements fmt.Stringer for suture's logs.
func (s *NATSServerService) String() string {
	return "nats-server"
}
