// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/balades/internal/models"
	"github.com/tomtom215/balades/internal/service"
	"github.com/tomtom215/balades/internal/store"
)

// newTestServer returns a router over an in-memory store with rate limiting
// disabled.
func newTestServer(t *testing.T) (http.Handler, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	return newServerFor(service.New(st, nil)), st
}

func newServerFor(svc BaladeService) http.Handler {
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	return NewRouter(NewHandler(svc), NewChiMiddleware(cfg)).SetupChi()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func seedBalade(t *testing.T, st *store.MemoryStore, b models.Balade) *models.Balade {
	t.Helper()
	if b.Adresse == "" {
		b.Adresse = "Paris"
	}
	if b.Categorie == "" {
		b.Categorie = "Monument"
	}
	created, err := st.Insert(context.Background(), b)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	return created
}

// brokenService fails every call it overrides with err.
type brokenService struct {
	BaladeService
	err error
}

func (s *brokenService) Ping(context.Context) error { return s.err }

func (s *brokenService) ListAll(context.Context) ([]models.Balade, error) { return nil, s.err }

func (s *brokenService) Delete(context.Context, string) error { return s.err }

// panickingService panics on ListAll.
type panickingService struct {
	BaladeService
}

func (panickingService) ListAll(context.Context) ([]models.Balade, error) { panic("boom") }
