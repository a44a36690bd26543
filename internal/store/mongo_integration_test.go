// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

//go:build integration

package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/tomtom215/balades/internal/config"
	"github.com/tomtom215/balades/internal/models"
	"github.com/tomtom215/balades/internal/testinfra"
)

func TestMongoStore_Integration(t *testing.T) {
	testinfra.SkipIfNoDocker(t)

	ctx := context.Background()
	container, err := testinfra.NewMongoContainer(ctx)
	if err != nil {
		t.Fatalf("NewMongoContainer() error = %v", err)
	}
	defer testinfra.CleanupContainer(t, ctx, container)

	n := 0
	runStoreSuite(t, func(t *testing.T) Store {
		n++
		st, err := NewMongoStore(ctx, &config.MongoConfig{
			URI:            container.URI,
			Database:       "balades_test",
			Collection:     fmt.Sprintf("suite_%d", n),
			ConnectTimeout: 10 * time.Second,
		})
		if err != nil {
			t.Fatalf("NewMongoStore() error = %v", err)
		}
		t.Cleanup(func() { _ = st.Close(context.Background()) })
		return st
	})

	t.Run("pcre patterns", func(t *testing.T) {
		st, err := NewMongoStore(ctx, &config.MongoConfig{
			URI:            container.URI,
			Database:       "balades_test",
			Collection:     "pcre",
			ConnectTimeout: 10 * time.Second,
		})
		if err != nil {
			t.Fatalf("NewMongoStore() error = %v", err)
		}
		defer func() { _ = st.Close(context.Background()) }()

		mustInsert(t, st, poi("Tour Montparnasse"))
		mustInsert(t, st, poi("Arc de Triomphe"))

		got, err := st.Match(ctx, "^(?=tour)", models.FieldNomPoi)
		if err != nil {
			t.Fatalf("Match(lookahead) error = %v", err)
		}
		if !equalStrings(names(got), []string{"Tour Montparnasse"}) {
			t.Errorf("Match(lookahead) = %v", names(got))
		}

		if _, err := st.Match(ctx, "(unclosed", models.FieldNomPoi); !errors.Is(err, models.ErrValidation) {
			t.Errorf("Match(invalid) error = %v, want ErrValidation", err)
		}
	})
}
