// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

package store

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/tomtom215/balades/internal/models"
)

// MemoryStore keeps records in process memory. Records are copied on the way
// in and on the way out, so callers never share slices with the store.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*models.Balade
	order   []string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]*models.Balade)}
}

// collect returns copies of every record accepted by keep, in insertion order.
func (m *MemoryStore) collect(keep func(*models.Balade) bool) []models.Balade {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Balade, 0, len(m.order))
	for _, id := range m.order {
		b := m.records[id]
		if keep(b) {
			c := b.Clone()
			c.Normalize()
			out = append(out, c)
		}
	}
	return out
}

// FindAll returns every record.
func (m *MemoryStore) FindAll(_ context.Context) ([]models.Balade, error) {
	return m.collect(func(*models.Balade) bool { return true }), nil
}

// FindByID returns one record.
func (m *MemoryStore) FindByID(_ context.Context, id string) (*models.Balade, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b, ok := m.records[id]
	if !ok {
		return nil, notFound(id)
	}
	c := b.Clone()
	c.Normalize()
	return &c, nil
}

// Match evaluates pattern with Go's regexp package. Absent optional fields
// never match.
func (m *MemoryStore) Match(_ context.Context, pattern string, fields ...models.Field) ([]models.Balade, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid pattern: %w", models.ErrValidation, err)
	}
	return m.collect(func(b *models.Balade) bool {
		for _, f := range fields {
			if v := b.FieldValue(f); v != "" && re.MatchString(v) {
				return true
			}
		}
		return false
	}), nil
}

// ValidatePattern implements PatternValidator.
func (m *MemoryStore) ValidatePattern(pattern string) error {
	return compileRE2(pattern)
}

// FindWithWebsite returns records with a url_site.
func (m *MemoryStore) FindWithWebsite(_ context.Context) ([]models.Balade, error) {
	return m.collect(func(b *models.Balade) bool { return b.URLSite != "" }), nil
}

// FindByKeywordCount returns records with exactly n keywords.
func (m *MemoryStore) FindByKeywordCount(_ context.Context, n int) ([]models.Balade, error) {
	return m.collect(func(b *models.Balade) bool { return len(b.MotCle) == n }), nil
}

// FindByDatePrefix returns records dated with prefix, oldest first.
func (m *MemoryStore) FindByDatePrefix(_ context.Context, prefix string) ([]models.Balade, error) {
	out := m.collect(func(b *models.Balade) bool { return strings.HasPrefix(b.DateSaisie, prefix) })
	sort.SliceStable(out, func(i, j int) bool { return out[i].DateSaisie < out[j].DateSaisie })
	return out, nil
}

// CountByPostalCode counts records in one postal code.
func (m *MemoryStore) CountByPostalCode(_ context.Context, code string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var n int64
	for _, b := range m.records {
		if b.CodePostal == code {
			n++
		}
	}
	return n, nil
}

// CountGroupedByPostalCode counts records per postal code.
func (m *MemoryStore) CountGroupedByPostalCode(_ context.Context) ([]models.PostalCodeCount, error) {
	m.mu.RLock()
	counts := make(map[string]int64)
	for _, b := range m.records {
		counts[b.CodePostal]++
	}
	m.mu.RUnlock()

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]models.PostalCodeCount, 0, len(keys))
	for _, k := range keys {
		group := models.PostalCodeCount{Count: counts[k]}
		if k != "" {
			code := k
			group.ID = &code
		}
		out = append(out, group)
	}
	return out, nil
}

// DistinctCategories returns the sorted set of categories.
func (m *MemoryStore) DistinctCategories(_ context.Context) ([]string, error) {
	m.mu.RLock()
	seen := make(map[string]struct{})
	for _, b := range m.records {
		seen[b.Categorie] = struct{}{}
	}
	m.mu.RUnlock()

	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	slices.Sort(out)
	return out, nil
}

// Insert stores a copy of b under a fresh id.
func (m *MemoryStore) Insert(_ context.Context, b models.Balade) (*models.Balade, error) {
	rec := b.Clone()
	rec.ID = models.NewID()
	rec.Normalize()

	m.mu.Lock()
	m.records[rec.ID] = &rec
	m.order = append(m.order, rec.ID)
	m.mu.Unlock()

	out := rec.Clone()
	return &out, nil
}

// Update applies patch under the write lock.
func (m *MemoryStore) Update(_ context.Context, id string, patch *models.BaladePatch) (*models.Balade, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.records[id]
	if !ok {
		return nil, notFound(id)
	}
	patch.Apply(b)
	b.Normalize()

	out := b.Clone()
	return &out, nil
}

// AddKeyword appends kw unless it is already present.
func (m *MemoryStore) AddKeyword(_ context.Context, id, kw string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.records[id]
	if !ok {
		return notFound(id)
	}
	if b.HasKeyword(kw) {
		return fmt.Errorf("%w: %q", models.ErrDuplicateKeyword, kw)
	}
	b.MotCle = append(b.MotCle, kw)
	return nil
}

// Delete removes one record.
func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		return notFound(id)
	}
	delete(m.records, id)
	m.order = slices.DeleteFunc(m.order, func(v string) bool { return v == id })
	return nil
}

// Ping always succeeds.
func (m *MemoryStore) Ping(_ context.Context) error { return nil }

// Close is a no-op.
func (m *MemoryStore) Close(_ context.Context) error { return nil }
