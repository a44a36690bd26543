// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

/*
Package events publishes change notifications for balade records and
consumes them for auditing.

Every successful mutation produces one Event on a topic named
"<prefix>.<type>", for example "balades.created". Three transports are
available, selected by events.backend:

  - none: NoopPublisher, nothing leaves the process
  - memory: a Watermill gochannel shared by publisher and subscriber
  - nats: watermill-nats over core NATS subjects, optionally against an
    in-process nats-server (EmbeddedServer)

Publishing goes through a gobreaker circuit breaker so a broken broker
cannot slow down request handling. Callers treat publish errors as
non-fatal and only log them.

The AuditConsumer subscribes to every topic and writes one structured log
line per event. It implements suture.Service and runs in the messaging
layer of the supervisor tree.
*/
package events
