// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

package events

import (
	"context"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"

	"github.com/tomtom215/balades/internal/metrics"
)

// AuditConsumer logs every change event it receives.
type AuditConsumer struct {
	subscriber message.Subscriber
	topics     []string
	logger     zerolog.Logger
}

// NewAuditConsumer subscribes to every event topic under prefix.
func NewAuditConsumer(sub message.Subscriber, prefix string, logger zerolog.Logger) *AuditConsumer {
	return &AuditConsumer{
		subscriber: sub,
		topics:     Topics(prefix),
		logger:     logger,
	}
}

// Serve implements suture.Service. It returns when ctx ends or a topic
// subscription fails.
func (c *AuditConsumer) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	for _, topic := range c.topics {
		msgs, err := c.subscriber.Subscribe(ctx, topic)
		if err != nil {
			cancel()
			wg.Wait()
			return fmt.Errorf("subscribe %s: %w", topic, err)
		}

		wg.Add(1)
		go func(topic string, msgs <-chan *message.Message) {
			defer wg.Done()
			c.consume(ctx, topic, msgs)
		}(topic, msgs)
	}

	c.logger.Info().Strs("topics", c.topics).Msg("Audit consumer subscribed")
	wg.Wait()
	return ctx.Err()
}

func (c *AuditConsumer) consume(ctx context.Context, topic string, msgs <-chan *message.Message) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			c.handle(topic, msg)
		}
	}
}

// handle acks every message, including malformed ones, so a bad payload is
// never redelivered forever.
func (c *AuditConsumer) handle(topic string, msg *message.Message) {
	defer msg.Ack()

	e, err := Unmarshal(msg.Payload)
	if err != nil {
		c.logger.Warn().Err(err).Str("topic", topic).Str("message_uuid", msg.UUID).Msg("Dropping malformed event")
		return
	}

	metrics.RecordEventConsumed(topic)

	ev := c.logger.Info().
		Str("topic", topic).
		Str("event_id", e.ID).
		Str("event_type", string(e.Type)).
		Time("occurred_at", e.OccurredAt)
	if e.BaladeID != "" {
		ev = ev.Str("balade_id", e.BaladeID)
	}
	if e.Keyword != "" {
		ev = ev.Str("keyword", e.Keyword)
	}
	if e.Pattern != "" {
		ev = ev.Str("pattern", e.Pattern).Int("count", e.Count)
	}
	if id := msg.Metadata.Get(MetadataRequestID); id != "" {
		ev = ev.Str("request_id", id)
	}
	if id := msg.Metadata.Get(MetadataCorrelationID); id != "" {
		ev = ev.Str("correlation_id", id)
	}
	ev.Msg("Balade changed")
}

// String implements fmt.Stringer for suture logs.
func (c *AuditConsumer) String() string {
	return "event-audit-consumer"
}
