// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

package api

import (
	"context"
	"time"

	"github.com/tomtom215/balades/internal/models"
)

// BaladeService is the subset of service.Service the handlers call.
type BaladeService interface {
	Ping(ctx context.Context) error

	ListAll(ctx context.Context) ([]models.Balade, error)
	GetByID(ctx context.Context, id string) (*models.Balade, error)
	Search(ctx context.Context, term string) ([]models.Balade, error)
	WithWebsite(ctx context.Context) ([]models.Balade, error)
	WithFiveKeywords(ctx context.Context) ([]models.Balade, error)
	PublishedIn(ctx context.Context, year string) ([]models.Balade, error)
	CountByPostalCode(ctx context.Context, code string) (int64, error)
	Synthesis(ctx context.Context) ([]models.PostalCodeCount, error)
	Categories(ctx context.Context) ([]string, error)

	Create(ctx context.Context, in *models.BaladeInput) (*models.Balade, error)
	AddKeyword(ctx context.Context, id string, req *models.KeywordRequest) error
	Update(ctx context.Context, id string, patch *models.BaladePatch) (*models.Balade, error)
	RenameMatching(ctx context.Context, pattern string, req *models.RenameRequest) error
	Delete(ctx context.Context, id string) error
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_health.go: liveness and readiness probes
//   - handlers_balades.go: query and mutation endpoints
type Handler struct {
	svc          BaladeService
	startTime    time.Time
	readyTimeout time.Duration
}

// NewHandler creates a new API handler backed by svc.
//
// Example:
//
//	handler := api.NewHandler(service.New(st, bus.Publisher))
//	router := api.NewRouter(handler, api.NewChiMiddleware(nil))
//	http.ListenAndServe(":1235", router.SetupChi())
func NewHandler(svc BaladeService) *Handler {
	return &Handler{
		svc:          svc,
		startTime:    time.Now(),
		readyTimeout: 2 * time.Second,
	}
}

// BaladeResponse wraps a single record returned by GET /id/{id}.
type BaladeResponse struct {
	Reponse *models.Balade `json:"reponse"`
}

// CountResponse is the body of GET /arrondissement/{num}.
type CountResponse struct {
	Count int64 `json:"count"`
}

// HealthResponse is the body of the health probes.
type HealthResponse struct {
	Status string  `json:"status"`
	Uptime float64 `json:"uptime_seconds"`
	Error  string  `json:"error,omitempty"`
}
