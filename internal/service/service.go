// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomtom215/balades/internal/events"
	"github.com/tomtom215/balades/internal/logging"
	"github.com/tomtom215/balades/internal/models"
	"github.com/tomtom215/balades/internal/store"
	"github.com/tomtom215/balades/internal/validation"
)

// KeywordCount is the number of keywords WithFiveKeywords filters on.
const KeywordCount = 5

// Service exposes the balade operations.
type Service struct {
	store     store.Store
	publisher events.Publisher
}

// New creates a Service. A nil publisher disables events.
func New(st store.Store, publisher events.Publisher) *Service {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &Service{store: st, publisher: publisher}
}

// Ping reports whether the store is reachable.
func (s *Service) Ping(ctx context.Context) error {
	if err := s.store.Ping(ctx); err != nil {
		return storeErr("ping", err)
	}
	return nil
}

// storeErr passes domain outcomes through and wraps everything else in
// models.ErrStore.
func storeErr(op string, err error) error {
	switch {
	case errors.Is(err, models.ErrNotFound),
		errors.Is(err, models.ErrDuplicateKeyword),
		errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrInvalidID):
		return err
	default:
		return fmt.Errorf("%w: %s: %w", models.ErrStore, op, err)
	}
}

func validateID(id string) error {
	if verr := validation.ValidateVar("id", id, "objectid"); verr != nil {
		return fmt.Errorf("%w: %q: %w", models.ErrInvalidID, id, verr)
	}
	return nil
}

func validateBody(v interface{}) error {
	if verr := validation.ValidateStruct(v); verr != nil {
		return fmt.Errorf("%w: %w", models.ErrValidation, verr)
	}
	return nil
}

// validatePattern rejects patterns the backend's regex dialect cannot
// compile. Backends without a PatternValidator judge the pattern themselves
// when the query runs.
func (s *Service) validatePattern(pattern string) error {
	pv, ok := s.store.(store.PatternValidator)
	if !ok {
		return nil
	}
	return pv.ValidatePattern(pattern)
}

// publish sends e and only logs failures.
func (s *Service) publish(ctx context.Context, e *events.Event) {
	if err := s.publisher.Publish(ctx, e); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("event_type", string(e.Type)).Msg("Failed to publish change event")
	}
}
