// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

/*
Package store provides the record store that holds Balade records.

Three backends implement the Store interface:

  - MongoStore: MongoDB via mongo-driver v2, the production document store
  - DuckDBStore: embedded DuckDB file for single-node deployments
  - MemoryStore: in-process map, used by tests and local development

Every backend pushes pattern matching down to its own engine: MongoDB $regex
with the "i" option, DuckDB regexp_matches with the 'i' flag. MemoryStore
compiles the pattern with regexp and is not meant for production data sets.

# Error Contract

Backends return models.ErrNotFound when a well-formed id matches nothing and
models.ErrDuplicateKeyword when AddKeyword finds the keyword already present.
Any other failure is returned wrapped with the driver error; the service
layer turns it into models.ErrStore.

# Resilience

New wraps the selected backend in a Resilient decorator that bounds every call
with the configured operation timeout, runs it through a gobreaker circuit
breaker and records Prometheus metrics. Domain outcomes (not found, duplicate
keyword) do not count as breaker failures.

# Usage

	st, err := store.New(ctx, &cfg.Store)
	if err != nil {
	    return err
	}
	defer st.Close(ctx)

	all, err := st.FindAll(ctx)
*/
package store
