// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

package events

import (
	"strings"
	"testing"
	"time"
)

func TestTopic(t *testing.T) {
	t.Parallel()

	if got := Topic("balades", TypeKeywordAdded); got != "balades.keyword_added" {
		t.Errorf("Topic() = %q", got)
	}

	topics := Topics("paris")
	if len(topics) != len(AllTypes) {
		t.Fatalf("Topics() returned %d topics, want %d", len(topics), len(AllTypes))
	}
	for _, topic := range topics {
		if !strings.HasPrefix(topic, "paris.") {
			t.Errorf("topic %q lacks prefix", topic)
		}
	}
}

func TestNewEvent(t *testing.T) {
	t.Parallel()

	before := time.Now().UTC()
	e := NewEvent(TypeCreated)
	if e.ID == "" {
		t.Error("ID is empty")
	}
	if e.Type != TypeCreated {
		t.Errorf("Type = %q", e.Type)
	}
	if e.OccurredAt.Before(before.Add(-time.Second)) {
		t.Errorf("OccurredAt = %v, too old", e.OccurredAt)
	}
	if err := e.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestEvent_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Event)
	}{
		{"missing id", func(e *Event) { e.ID = "" }},
		{"unknown type", func(e *Event) { e.Type = "archived" }},
		{"zero time", func(e *Event) { e.OccurredAt = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := NewEvent(TypeDeleted)
			tt.mutate(e)
			if err := e.Validate(); err == nil {
				t.Error("Validate() accepted an invalid event")
			}
			if _, err := Marshal(e); err == nil {
				t.Error("Marshal() accepted an invalid event")
			}
		})
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	t.Parallel()

	e := NewEvent(TypeRenamed)
	e.Pattern = "jardin"
	e.Count = 3

	data, err := Marshal(e)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), `"type":"renamed"`) {
		t.Errorf("payload = %s", data)
	}
	if strings.Contains(string(data), "balade_id") {
		t.Errorf("empty balade_id should be omitted: %s", data)
	}

	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got.ID != e.ID || got.Pattern != "jardin" || got.Count != 3 {
		t.Errorf("Unmarshal() = %+v", got)
	}

	if _, err := Unmarshal([]byte(`{"id":"x","type":"nope","occurred_at":"2024-01-01T00:00:00Z"}`)); err == nil {
		t.Error("Unmarshal() accepted an unknown type")
	}
	if _, err := Unmarshal([]byte("not json")); err == nil {
		t.Error("Unmarshal() accepted garbage")
	}
}
