// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/balades/internal/config"
	"github.com/tomtom215/balades/internal/logging"
	"github.com/tomtom215/balades/internal/metrics"
	"github.com/tomtom215/balades/internal/models"
)

// ErrUnavailable is returned while the circuit breaker rejects calls.
var ErrUnavailable = errors.New("store unavailable")

// Resilient decorates a Store with a per-call timeout, a circuit breaker and
// Prometheus metrics.
//
// The breaker uses real time (via sony/gobreaker) for its open-state timeout.
// Tests that need to observe recovery should configure a short timeout.
type Resilient struct {
	inner     Store
	backend   string
	opTimeout time.Duration
	cb        *gobreaker.CircuitBreaker[any]
}

// NewResilient wraps inner. The breaker opens after cfg.Breaker.FailureThreshold
// consecutive failures and probes again after cfg.Breaker.Timeout.
func NewResilient(inner Store, cfg *config.StoreConfig) *Resilient {
	backend := Backend(inner)
	name := "store-" + backend

	metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(gobreaker.StateClosed))

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     cfg.Breaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			trip := counts.ConsecutiveFailures >= cfg.Breaker.FailureThreshold
			if trip {
				logging.Warn().Uint32("consecutive_failures", counts.ConsecutiveFailures).Msg("[CIRCUIT BREAKER] Opening store circuit")
			}
			return trip
		},
		IsSuccessful: isBreakerSuccess,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("[CIRCUIT BREAKER] State transition")
			metrics.RecordCircuitBreakerState(name, from.String(), to.String(), int(to))
		},
	})

	return &Resilient{
		inner:     inner,
		backend:   backend,
		opTimeout: cfg.OpTimeout,
		cb:        cb,
	}
}

// isBreakerSuccess treats domain outcomes and caller cancellation as
// successes: only backend failures count toward opening the circuit.
func isBreakerSuccess(err error) bool {
	return err == nil ||
		errors.Is(err, models.ErrNotFound) ||
		errors.Is(err, models.ErrDuplicateKeyword) ||
		errors.Is(err, models.ErrValidation) ||
		errors.Is(err, context.Canceled)
}

// State returns the breaker state.
func (r *Resilient) State() gobreaker.State {
	return r.cb.State()
}

// Inner returns the wrapped backend.
func (r *Resilient) Inner() Store {
	return r.inner
}

// call runs fn with the operation timeout inside the breaker.
func call[T any](ctx context.Context, r *Resilient, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	start := time.Now()

	res, err := r.cb.Execute(func() (any, error) {
		opCtx, cancel := context.WithTimeout(ctx, r.opTimeout)
		defer cancel()
		return fn(opCtx)
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		err = fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	metrics.RecordStoreOperation(op, r.backend, time.Since(start), err)

	if err != nil {
		var zero T
		return zero, err
	}
	typed, ok := res.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", res)
	}
	return typed, nil
}

// FindAll implements Store.
func (r *Resilient) FindAll(ctx context.Context) ([]models.Balade, error) {
	return call(ctx, r, "find_all", r.inner.FindAll)
}

// FindByID implements Store.
func (r *Resilient) FindByID(ctx context.Context, id string) (*models.Balade, error) {
	return call(ctx, r, "find_by_id", func(ctx context.Context) (*models.Balade, error) {
		return r.inner.FindByID(ctx, id)
	})
}

// Match implements Store.
func (r *Resilient) Match(ctx context.Context, pattern string, fields ...models.Field) ([]models.Balade, error) {
	return call(ctx, r, "match", func(ctx context.Context) ([]models.Balade, error) {
		return r.inner.Match(ctx, pattern, fields...)
	})
}

// ValidatePattern delegates to the wrapped store when it implements
// PatternValidator and accepts every pattern otherwise.
func (r *Resilient) ValidatePattern(pattern string) error {
	if pv, ok := r.inner.(PatternValidator); ok {
		return pv.ValidatePattern(pattern)
	}
	return nil
}

// FindWithWebsite implements Store.
func (r *Resilient) FindWithWebsite(ctx context.Context) ([]models.Balade, error) {
	return call(ctx, r, "find_with_website", r.inner.FindWithWebsite)
}

// FindByKeywordCount implements Store.
func (r *Resilient) FindByKeywordCount(ctx context.Context, n int) ([]models.Balade, error) {
	return call(ctx, r, "find_by_keyword_count", func(ctx context.Context) ([]models.Balade, error) {
		return r.inner.FindByKeywordCount(ctx, n)
	})
}

// FindByDatePrefix implements Store.
func (r *Resilient) FindByDatePrefix(ctx context.Context, prefix string) ([]models.Balade, error) {
	return call(ctx, r, "find_by_date_prefix", func(ctx context.Context) ([]models.Balade, error) {
		return r.inner.FindByDatePrefix(ctx, prefix)
	})
}

// CountByPostalCode implements Store.
func (r *Resilient) CountByPostalCode(ctx context.Context, code string) (int64, error) {
	return call(ctx, r, "count_by_postal_code", func(ctx context.Context) (int64, error) {
		return r.inner.CountByPostalCode(ctx, code)
	})
}

// CountGroupedByPostalCode implements Store.
func (r *Resilient) CountGroupedByPostalCode(ctx context.Context) ([]models.PostalCodeCount, error) {
	return call(ctx, r, "count_grouped_by_postal_code", r.inner.CountGroupedByPostalCode)
}

// DistinctCategories implements Store.
func (r *Resilient) DistinctCategories(ctx context.Context) ([]string, error) {
	return call(ctx, r, "distinct_categories", r.inner.DistinctCategories)
}

// Insert implements Store.
func (r *Resilient) Insert(ctx context.Context, b models.Balade) (*models.Balade, error) {
	return call(ctx, r, "insert", func(ctx context.Context) (*models.Balade, error) {
		return r.inner.Insert(ctx, b)
	})
}

// Update implements Store.
func (r *Resilient) Update(ctx context.Context, id string, patch *models.BaladePatch) (*models.Balade, error) {
	return call(ctx, r, "update", func(ctx context.Context) (*models.Balade, error) {
		return r.inner.Update(ctx, id, patch)
	})
}

// AddKeyword implements Store.
func (r *Resilient) AddKeyword(ctx context.Context, id, kw string) error {
	_, err := call(ctx, r, "add_keyword", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, r.inner.AddKeyword(ctx, id, kw)
	})
	return err
}

// Delete implements Store.
func (r *Resilient) Delete(ctx context.Context, id string) error {
	_, err := call(ctx, r, "delete", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, r.inner.Delete(ctx, id)
	})
	return err
}

// Ping bypasses the breaker so readiness reflects the backend itself.
func (r *Resilient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()
	return r.inner.Ping(ctx)
}

// Close closes the wrapped backend.
func (r *Resilient) Close(ctx context.Context) error {
	return r.inner.Close(ctx)
}
