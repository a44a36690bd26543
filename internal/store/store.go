// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

package store

import (
	"context"
	"fmt"
	"regexp"

	"github.com/tomtom215/balades/internal/config"
	"github.com/tomtom215/balades/internal/logging"
	"github.com/tomtom215/balades/internal/models"
)

// Store is the record store contract shared by every backend.
//
// Identifiers passed in are expected to be well-formed; the service validates
// them before calling the store. Every read returns records in insertion order
// unless stated otherwise, with MotCle normalized to a non-nil slice.
type Store interface {
	// FindAll returns every record.
	FindAll(ctx context.Context) ([]models.Balade, error)

	// FindByID returns the record with the given id or models.ErrNotFound.
	FindByID(ctx context.Context, id string) (*models.Balade, error)

	// Match returns records where any of fields matches pattern, a regular
	// expression evaluated case-insensitively by the backend.
	Match(ctx context.Context, pattern string, fields ...models.Field) ([]models.Balade, error)

	// FindWithWebsite returns records whose url_site is present.
	FindWithWebsite(ctx context.Context) ([]models.Balade, error)

	// FindByKeywordCount returns records with exactly n keywords.
	FindByKeywordCount(ctx context.Context, n int) ([]models.Balade, error)

	// FindByDatePrefix returns records whose date_saisie starts with prefix,
	// sorted ascending by date_saisie.
	FindByDatePrefix(ctx context.Context, prefix string) ([]models.Balade, error)

	// CountByPostalCode counts records with code_postal equal to code.
	CountByPostalCode(ctx context.Context, code string) (int64, error)

	// CountGroupedByPostalCode counts records per code_postal, ascending by
	// code with the missing-code group first.
	CountGroupedByPostalCode(ctx context.Context) ([]models.PostalCodeCount, error)

	// DistinctCategories returns the distinct categorie values, ascending.
	DistinctCategories(ctx context.Context) ([]string, error)

	// Insert persists b under a new identifier and returns the stored record.
	Insert(ctx context.Context, b models.Balade) (*models.Balade, error)

	// Update applies patch to the record and returns it after the update,
	// or models.ErrNotFound.
	Update(ctx context.Context, id string, patch *models.BaladePatch) (*models.Balade, error)

	// AddKeyword appends kw to mot_cle. It returns models.ErrNotFound or
	// models.ErrDuplicateKeyword without modifying anything. The check and
	// the append are atomic with respect to other AddKeyword calls.
	AddKeyword(ctx context.Context, id, kw string) error

	// Delete removes the record or returns models.ErrNotFound.
	Delete(ctx context.Context, id string) error

	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases the backend's resources.
	Close(ctx context.Context) error
}

// PatternValidator is implemented by backends that evaluate Match patterns
// with Go's RE2 syntax, so a bad pattern can be rejected before the query
// runs. MongoDB uses PCRE and reports invalid patterns itself.
type PatternValidator interface {
	ValidatePattern(pattern string) error
}

// compileRE2 reports pattern errors as models.ErrValidation.
func compileRE2(pattern string) error {
	if _, err := regexp.Compile(pattern); err != nil {
		return fmt.Errorf("%w: invalid pattern %q: %w", models.ErrValidation, pattern, err)
	}
	return nil
}

// Backend returns the name metrics and logs use for st.
func Backend(st Store) string {
	switch s := st.(type) {
	case *MongoStore:
		return config.StoreBackendMongo
	case *DuckDBStore:
		return config.StoreBackendDuckDB
	case *MemoryStore:
		return config.StoreBackendMemory
	case *Resilient:
		return s.backend
	default:
		return "unknown"
	}
}

// New opens the backend selected by cfg.Backend and wraps it in a Resilient
// decorator.
func New(ctx context.Context, cfg *config.StoreConfig) (*Resilient, error) {
	var (
		inner Store
		err   error
	)

	switch cfg.Backend {
	case config.StoreBackendMongo:
		inner, err = NewMongoStore(ctx, &cfg.Mongo)
	case config.StoreBackendDuckDB:
		inner, err = NewDuckDBStore(ctx, &cfg.DuckDB)
	case config.StoreBackendMemory:
		inner = NewMemoryStore()
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Backend, err)
	}

	logging.Info().Str("backend", cfg.Backend).Msg("Record store opened")
	return NewResilient(inner, cfg), nil
}

// closeQuietly closes a resource and explicitly ignores any error.
// Use this for cleanup in error paths where Close() errors are not actionable.
func closeQuietly(closer interface{ Close() error }) {
	if closer != nil {
		_ = closer.Close()
	}
}

// ensureKeywords returns a non-nil copy of kws.
func ensureKeywords(kws []string) []string {
	out := make([]string, len(kws))
	copy(out, kws)
	return out
}

// notFound wraps models.ErrNotFound with the id that was looked up.
func notFound(id string) error {
	return fmt.Errorf("%w: %s", models.ErrNotFound, id)
}
