// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

// Package testinfra provides test infrastructure for integration testing with containers.
//
// This package uses testcontainers-go to manage Docker containers for integration tests.
// Every file is behind the integration build tag:
//
//	go test -tags integration ./...
//
// # MongoDB Container
//
// MongoContainer runs a disposable MongoDB instance for the store backend:
//
//	func TestMongoStore(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    ctx := context.Background()
//	    mongo, err := testinfra.NewMongoContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer testinfra.CleanupContainer(t, ctx, mongo)
//
//	    st, err := store.NewMongoStore(ctx, &config.MongoConfig{URI: mongo.URI, ...})
//	}
//
// # CI Considerations
//
// These tests require Docker and network access. Tests are skipped gracefully
// if Docker is unavailable. The first run downloads the image.
package testinfra
