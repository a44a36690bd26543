// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

// Package logging provides centralized zerolog-based structured logging for Balades.
//
// A single global zerolog logger is configured once from main and used by
// every package through package-level helpers:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Str("backend", "mongo").Msg("Record store connected")
//	logging.Error().Err(err).Msg("Failed to publish event")
//
// # Request context
//
// The HTTP layer stores a request ID and a short correlation ID in the request
// context. Ctx(ctx) returns a logger carrying both:
//
//	logging.Ctx(r.Context()).Warn().Str("id", id).Msg("Balade not found")
//
// # Bridges
//
// NewSlogLogger exposes the same logger as a *slog.Logger. The supervisor tree
// hands it to sutureslog and the event transport hands it to Watermill's slog
// adapter, so every library logs through zerolog.
//
// # Configuration
//
//	LOG_LEVEL   trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  json, console (default: json)
//	LOG_CALLER  include caller file:line (default: false)
//
// Always terminate event chains with Msg or Send, otherwise nothing is written.
package logging
