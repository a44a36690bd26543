// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/balades/internal/logging"
)

// HealthLive handles liveness probe requests. It never touches the store.
//
// @Summary Liveness probe
// @Description Returns 200 while the process is able to serve HTTP.
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &HealthResponse{
		Status: "alive",
		Uptime: time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests.
// Returns 200 only if the record store answers a ping.
//
// @Summary Readiness probe
// @Description Pings the record store. Returns 503 when it is unreachable or the circuit breaker is open.
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse "Service is ready"
// @Failure 503 {object} HealthResponse "Service is not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.readyTimeout)
	defer cancel()

	resp := &HealthResponse{Status: "ready"}
	status := http.StatusOK

	if err := h.svc.Ping(ctx); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Readiness check failed")
		resp.Status = "not_ready"
		resp.Error = "store unavailable"
		status = http.StatusServiceUnavailable
	}

	resp.Uptime = time.Since(h.startTime).Seconds()
	respondJSON(w, status, resp)
}
