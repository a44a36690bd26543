// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

package events

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Type identifies the mutation an Event describes.
type Type string

const (
	TypeCreated      Type = "created"
	TypeUpdated      Type = "updated"
	TypeDeleted      Type = "deleted"
	TypeKeywordAdded Type = "keyword_added"
	TypeRenamed      Type = "renamed"
)

// AllTypes lists every event type in a stable order.
var AllTypes = []Type{TypeCreated, TypeUpdated, TypeDeleted, TypeKeywordAdded, TypeRenamed}

// Valid reports whether t is a known event type.
func (t Type) Valid() bool {
	for _, known := range AllTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Event is the payload published after a mutation.
type Event struct {
	ID         string    `json:"id"`
	Type       Type      `json:"type"`
	BaladeID   string    `json:"balade_id,omitempty"`
	Keyword    string    `json:"keyword,omitempty"`
	Pattern    string    `json:"pattern,omitempty"`
	Count      int       `json:"count,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewEvent creates an event of type t with a fresh id and timestamp.
func NewEvent(t Type) *Event {
	return &Event{
		ID:         uuid.NewString(),
		Type:       t,
		OccurredAt: time.Now().UTC(),
	}
}

// Validate checks the fields every event must carry.
func (e *Event) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("event id is required")
	}
	if !e.Type.Valid() {
		return fmt.Errorf("unknown event type %q", e.Type)
	}
	if e.OccurredAt.IsZero() {
		return fmt.Errorf("event timestamp is required")
	}
	return nil
}

// Topic returns the topic (NATS subject) for events of type t.
func Topic(prefix string, t Type) string {
	return prefix + "." + string(t)
}

// Topics returns the topic of every event type under prefix.
func Topics(prefix string) []string {
	out := make([]string, len(AllTypes))
	for i, t := range AllTypes {
		out[i] = Topic(prefix, t)
	}
	return out
}

// Marshal validates and encodes an event.
func Marshal(e *Event) ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("validate event: %w", err)
	}
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	return data, nil
}

// Unmarshal decodes and validates an event.
func Unmarshal(data []byte) (*Event, error) {
	var e Event
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("unmarshal event: %w", err)
	}
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("validate event: %w", err)
	}
	return &e, nil
}
