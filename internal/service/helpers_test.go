// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/tomtom215/balades/internal/events"
	"github.com/tomtom215/balades/internal/models"
	"github.com/tomtom215/balades/internal/store"
)

var errDiskFull = errors.New("disk full")

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e *events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []events.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.Type, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

func (p *recordingPublisher) last() *events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.events) == 0 {
		return nil
	}
	return p.events[len(p.events)-1]
}

// spyStore counts calls and can fail Update after a number of successes
// or fail every call with failAll.
type spyStore struct {
	*store.MemoryStore
	calls        atomic.Int64
	updateBudget int64
	failAll      error
}

func newSpyStore() *spyStore {
	return &spyStore{MemoryStore: store.NewMemoryStore(), updateBudget: -1}
}

func (s *spyStore) touch() error {
	s.calls.Add(1)
	return s.failAll
}

func (s *spyStore) FindAll(ctx context.Context) ([]models.Balade, error) {
	if err := s.touch(); err != nil {
		return nil, err
	}
	return s.MemoryStore.FindAll(ctx)
}

func (s *spyStore) FindByID(ctx context.Context, id string) (*models.Balade, error) {
	if err := s.touch(); err != nil {
		return nil, err
	}
	return s.MemoryStore.FindByID(ctx, id)
}

func (s *spyStore) Update(ctx context.Context, id string, p *models.BaladePatch) (*models.Balade, error) {
	if err := s.touch(); err != nil {
		return nil, err
	}
	if s.updateBudget == 0 {
		return nil, errDiskFull
	}
	if s.updateBudget > 0 {
		s.updateBudget--
	}
	return s.MemoryStore.Update(ctx, id, p)
}

func (s *spyStore) AddKeyword(ctx context.Context, id, kw string) error {
	if err := s.touch(); err != nil {
		return err
	}
	return s.MemoryStore.AddKeyword(ctx, id, kw)
}

func (s *spyStore) Delete(ctx context.Context, id string) error {
	if err := s.touch(); err != nil {
		return err
	}
	return s.MemoryStore.Delete(ctx, id)
}

func newTestService(t *testing.T) (*Service, *spyStore, *recordingPublisher) {
	t.Helper()
	st := newSpyStore()
	pub := &recordingPublisher{}
	return New(st, pub), st, pub
}

func mustCreate(t *testing.T, svc *Service, in models.BaladeInput) *models.Balade {
	t.Helper()
	b, err := svc.Create(context.Background(), &in)
	if err != nil {
		t.Fatalf("Create(%q) error = %v", in.NomPoi, err)
	}
	return b
}

func input(nom string) models.BaladeInput {
	return models.BaladeInput{NomPoi: nom, Adresse: "1 rue de Rivoli", Categorie: "Monument"}
}
