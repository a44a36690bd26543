// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	wmNats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	natsgo "github.com/nats-io/nats.go"

	"github.com/tomtom215/balades/internal/config"
	"github.com/tomtom215/balades/internal/logging"
)

// NewGoChannel creates the in-process transport. The same value serves as
// publisher and subscriber.
func NewGoChannel(logger watermill.LoggerAdapter) *gochannel.GoChannel {
	return gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: 256,
	}, logger)
}

func natsOptions(cfg *config.NATSConfig, logger watermill.LoggerAdapter, role string) []natsgo.Option {
	return []natsgo.Option{
		natsgo.Name("balades-" + role),
		natsgo.RetryOnFailedConnect(true),
		natsgo.MaxReconnects(cfg.MaxReconnects),
		natsgo.ReconnectWait(cfg.ReconnectWait),
		natsgo.DisconnectErrHandler(func(_ *natsgo.Conn, err error) {
			if err != nil {
				logger.Error("NATS disconnected", err, watermill.LogFields{"role": role})
			}
		}),
		natsgo.ReconnectHandler(func(nc *natsgo.Conn) {
			logger.Info("NATS reconnected", watermill.LogFields{
				"role": role,
				"url":  nc.ConnectedUrl(),
			})
		}),
	}
}

// NewNATSPublisher connects a Watermill publisher to url using core NATS
// subjects.
func NewNATSPublisher(url string, cfg *config.NATSConfig, logger watermill.LoggerAdapter) (message.Publisher, error) {
	pub, err := wmNats.NewPublisher(wmNats.PublisherConfig{
		URL:         url,
		NatsOptions: natsOptions(cfg, logger, "publisher"),
		Marshaler:   &wmNats.NATSMarshaler{},
		JetStream:   wmNats.JetStreamConfig{Disabled: true},
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create NATS publisher: %w", err)
	}
	return pub, nil
}

// NewNATSSubscriber connects a Watermill subscriber to url using core NATS
// subjects.
func NewNATSSubscriber(url string, cfg *config.NATSConfig, logger watermill.LoggerAdapter) (message.Subscriber, error) {
	sub, err := wmNats.NewSubscriber(wmNats.SubscriberConfig{
		URL:              url,
		SubscribersCount: 1,
		AckWaitTimeout:   30 * time.Second,
		CloseTimeout:     10 * time.Second,
		NatsOptions:      natsOptions(cfg, logger, "subscriber"),
		Unmarshaler:      &wmNats.NATSMarshaler{},
		JetStream:        wmNats.JetStreamConfig{Disabled: true},
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create NATS subscriber: %w", err)
	}
	return sub, nil
}

// Bus groups the publisher, the subscriber and the optional embedded server
// selected by configuration.
type Bus struct {
	Publisher   Publisher
	Subscriber  message.Subscriber
	Server      *EmbeddedServer
	Backend     string
	TopicPrefix string
}

// Open builds the transport named by cfg.Backend. For the none backend the
// subscriber is nil.
func Open(cfg *config.EventsConfig) (*Bus, error) {
	logger := watermill.NewSlogLogger(logging.NewComponentSlogLogger("events"))
	bus := &Bus{Backend: cfg.Backend, TopicPrefix: cfg.TopicPrefix}

	switch cfg.Backend {
	case config.EventsBackendNone:
		bus.Publisher = NoopPublisher{}

	case config.EventsBackendMemory:
		gc := NewGoChannel(logger)
		bus.Publisher = NewWatermillPublisher(gc, cfg.TopicPrefix, DefaultBreakerSettings())
		bus.Subscriber = gc

	case config.EventsBackendNATS:
		url := cfg.NATS.URL
		if cfg.NATS.Embedded {
			srv, err := NewEmbeddedServer(&cfg.NATS)
			if err != nil {
				return nil, err
			}
			bus.Server = srv
			url = srv.ClientURL()
			logging.Info().Str("url", url).Msg("Embedded NATS server started")
		}

		pub, err := NewNATSPublisher(url, &cfg.NATS, logger)
		if err != nil {
			bus.shutdownServer()
			return nil, err
		}
		sub, err := NewNATSSubscriber(url, &cfg.NATS, logger)
		if err != nil {
			_ = pub.Close()
			bus.shutdownServer()
			return nil, err
		}
		bus.Publisher = NewWatermillPublisher(pub, cfg.TopicPrefix, DefaultBreakerSettings())
		bus.Subscriber = sub

	default:
		return nil, fmt.Errorf("unknown events backend %q", cfg.Backend)
	}

	logging.Info().Str("backend", cfg.Backend).Str("topic_prefix", cfg.TopicPrefix).Msg("Event bus opened")
	return bus, nil
}

func (b *Bus) shutdownServer() {
	if b.Server == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = b.Server.Shutdown(ctx)
}

// Close closes the publisher and the subscriber. The embedded server is
// left to its supervisor service.
func (b *Bus) Close() error {
	var errs []error
	if b.Publisher != nil {
		if err := b.Publisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close publisher: %w", err))
		}
	}
	if b.Subscriber != nil {
		if err := b.Subscriber.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close subscriber: %w", err))
		}
	}
	return errors.Join(errs...)
}
