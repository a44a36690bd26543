// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

package events

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/balades/internal/logging"
	"github.com/tomtom215/balades/internal/metrics"
)

// Metadata keys set on every published message.
const (
	MetadataCorrelationID = "correlation_id"
	MetadataRequestID     = "request_id"
	MetadataEventType     = "event_type"
)

// ErrPublisherClosed is returned by Publish after Close.
var ErrPublisherClosed = errors.New("publisher is closed")

// Publisher sends change events somewhere.
type Publisher interface {
	Publish(ctx context.Context, e *Event) error
	Close() error
}

// NoopPublisher discards every event.
type NoopPublisher struct{}

// Publish implements Publisher.
func (NoopPublisher) Publish(context.Context, *Event) error { return nil }

// Close implements Publisher.
func (NoopPublisher) Close() error { return nil }

// BreakerSettings configures the publish circuit breaker.
type BreakerSettings struct {
	FailureThreshold uint32
	Timeout          time.Duration
}

// DefaultBreakerSettings opens after 5 consecutive failures and probes
// again after 30 seconds.
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{FailureThreshold: 5, Timeout: 30 * time.Second}
}

// WatermillPublisher adapts a Watermill message.Publisher to Publisher.
type WatermillPublisher struct {
	publisher message.Publisher
	prefix    string
	cb        *gobreaker.CircuitBreaker[any]

	mu     sync.RWMutex
	closed bool
}

// NewWatermillPublisher wraps pub. Topics are built from prefix.
func NewWatermillPublisher(pub message.Publisher, prefix string, settings BreakerSettings) *WatermillPublisher {
	name := "events-publisher"
	metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(gobreaker.StateClosed))

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= settings.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("[CIRCUIT BREAKER] State transition")
			metrics.RecordCircuitBreakerState(name, from.String(), to.String(), int(to))
		},
	})

	return &WatermillPublisher{
		publisher: pub,
		prefix:    prefix,
		cb:        cb,
	}
}

// Publish encodes e and sends it to its topic. Correlation and request ids
// from ctx travel as message metadata.
func (p *WatermillPublisher) Publish(ctx context.Context, e *Event) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}

	data, err := Marshal(e)
	if err != nil {
		return err
	}

	msg := message.NewMessage(e.ID, data)
	msg.Metadata.Set(MetadataEventType, string(e.Type))
	if id := logging.CorrelationIDFromContext(ctx); id != "" {
		msg.Metadata.Set(MetadataCorrelationID, id)
	}
	if id := logging.RequestIDFromContext(ctx); id != "" {
		msg.Metadata.Set(MetadataRequestID, id)
	}

	topic := Topic(p.prefix, e.Type)
	_, err = p.cb.Execute(func() (any, error) {
		return nil, p.publisher.Publish(topic, msg)
	})
	metrics.RecordEventPublished(topic, err)
	if err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

// State returns the publish breaker state.
func (p *WatermillPublisher) State() gobreaker.State {
	return p.cb.State()
}

// Close closes the underlying Watermill publisher once.
func (p *WatermillPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	return p.publisher.Close()
}
