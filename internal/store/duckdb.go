// Balades - Walking tour points-of-interest API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/balades

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/goccy/go-json"

	"github.com/tomtom215/balades/internal/config"
	"github.com/tomtom215/balades/internal/logging"
	"github.com/tomtom215/balades/internal/models"
)

// schemaQueries create the balades table and its insertion-order sequence.
var schemaQueries = []string{
	`CREATE SEQUENCE IF NOT EXISTS balades_seq START 1`,
	`CREATE TABLE IF NOT EXISTS balades (
		id                VARCHAR PRIMARY KEY,
		seq               BIGINT NOT NULL DEFAULT nextval('balades_seq'),
		nom_poi           VARCHAR NOT NULL,
		adresse           VARCHAR NOT NULL,
		categorie         VARCHAR NOT NULL,
		type              VARCHAR,
		texte_intro       VARCHAR,
		texte_description VARCHAR,
		mot_cle           VARCHAR NOT NULL DEFAULT '[]',
		mot_cle_count     INTEGER NOT NULL DEFAULT 0,
		date_saisie       VARCHAR,
		code_postal       VARCHAR,
		url_site          VARCHAR
	)`,
}

const baladeColumns = `id, nom_poi, adresse, categorie, type, texte_intro, texte_description, mot_cle, date_saisie, code_postal, url_site`

// matchColumns whitelists the columns Match may build SQL for.
var matchColumns = map[models.Field]string{
	models.FieldNomPoi:           "nom_poi",
	models.FieldTexteIntro:       "texte_intro",
	models.FieldTexteDescription: "texte_description",
}

// DuckDBStore keeps records in an embedded DuckDB database. Keywords live in
// a JSON text column next to a count column used by FindByKeywordCount.
//
// DuckDB aborts the later of two transactions that write the same row.
// writeMu serializes row rewrites so a racing AddKeyword sees the winner's
// keyword and reports a duplicate instead of a conflict.
type DuckDBStore struct {
	conn    *sql.DB
	path    string
	writeMu sync.Mutex
}

// NewDuckDBStore opens (or creates) the database file and applies the schema.
// Path ":memory:" opens a private in-memory database.
func NewDuckDBStore(ctx context.Context, cfg *config.DuckDBConfig) (*DuckDBStore, error) {
	numThreads := cfg.Threads
	if numThreads <= 0 {
		numThreads = runtime.NumCPU()
	}

	connStr := fmt.Sprintf("%s?threads=%d", cfg.Path, numThreads)
	if cfg.Path != ":memory:" {
		dbDir := filepath.Dir(cfg.Path)
		if dbDir != "" && dbDir != "." {
			if err := os.MkdirAll(dbDir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dbDir, err)
			}
		}
		connStr = fmt.Sprintf("%s?access_mode=read_write&threads=%d", cfg.Path, numThreads)
	}

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	for _, query := range schemaQueries {
		if _, err := conn.ExecContext(ctx, query); err != nil {
			closeQuietly(conn)
			return nil, fmt.Errorf("failed to create schema: %w", err)
		}
	}

	logging.Info().Str("path", cfg.Path).Int("threads", numThreads).Msg("DuckDB store ready")
	return &DuckDBStore{conn: conn, path: cfg.Path}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBalade(row rowScanner) (models.Balade, error) {
	var (
		b                                   models.Balade
		kind, intro, desc, date, code, site sql.NullString
		keywords                            string
	)
	if err := row.Scan(&b.ID, &b.NomPoi, &b.Adresse, &b.Categorie, &kind, &intro, &desc,
		&keywords, &date, &code, &site); err != nil {
		return b, err
	}
	b.Type = kind.String
	b.TexteIntro = intro.String
	b.TexteDescription = desc.String
	b.DateSaisie = date.String
	b.CodePostal = code.String
	b.URLSite = site.String
	if err := json.Unmarshal([]byte(keywords), &b.MotCle); err != nil {
		return b, fmt.Errorf("decode mot_cle for %s: %w", b.ID, err)
	}
	b.Normalize()
	return b, nil
}

// nullable maps the empty string to SQL NULL.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func encodeKeywords(kws []string) (string, error) {
	data, err := json.Marshal(ensureKeywords(kws))
	if err != nil {
		return "", fmt.Errorf("encode mot_cle: %w", err)
	}
	return string(data), nil
}

func (s *DuckDBStore) query(ctx context.Context, where, orderBy string, args ...any) ([]models.Balade, error) {
	q := "SELECT " + baladeColumns + " FROM balades"
	if where != "" {
		q += " WHERE " + where
	}
	q += " ORDER BY " + orderBy

	rows, err := s.conn.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("duckdb query: %w", err)
	}
	defer closeQuietly(rows)

	out := []models.Balade{}
	for rows.Next() {
		b, err := scanBalade(rows)
		if err != nil {
			return nil, fmt.Errorf("duckdb scan: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("duckdb rows: %w", err)
	}
	return out, nil
}

// FindAll returns every row in insertion order.
func (s *DuckDBStore) FindAll(ctx context.Context) ([]models.Balade, error) {
	return s.query(ctx, "", "seq")
}

func (s *DuckDBStore) findByID(ctx context.Context, q interface {
	QueryRowContext(context.Context, string, ...any) *sql.Row
}, id string) (*models.Balade, error) {
	row := q.QueryRowContext(ctx, "SELECT "+baladeColumns+" FROM balades WHERE id = ?", id)
	b, err := scanBalade(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound(id)
		}
		return nil, fmt.Errorf("duckdb find by id: %w", err)
	}
	return &b, nil
}

// FindByID returns one row.
func (s *DuckDBStore) FindByID(ctx context.Context, id string) (*models.Balade, error) {
	return s.findByID(ctx, s.conn, id)
}

// Match uses regexp_matches with the case-insensitive flag. NULL columns never match.
func (s *DuckDBStore) Match(ctx context.Context, pattern string, fields ...models.Field) ([]models.Balade, error) {
	conds := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields))
	for _, f := range fields {
		col, ok := matchColumns[f]
		if !ok {
			return nil, fmt.Errorf("%w: field %q is not searchable", models.ErrValidation, f)
		}
		conds = append(conds, fmt.Sprintf("regexp_matches(%s, ?, 'i')", col))
		args = append(args, pattern)
	}
	if len(conds) == 0 {
		return []models.Balade{}, nil
	}
	return s.query(ctx, strings.Join(conds, " OR "), "seq", args...)
}

// ValidatePattern implements PatternValidator. DuckDB evaluates
// regexp_matches with RE2.
func (s *DuckDBStore) ValidatePattern(pattern string) error {
	return compileRE2(pattern)
}

// FindWithWebsite returns rows with a url_site.
func (s *DuckDBStore) FindWithWebsite(ctx context.Context) ([]models.Balade, error) {
	return s.query(ctx, "url_site IS NOT NULL AND url_site <> ''", "seq")
}

// FindByKeywordCount filters on the keyword count column.
func (s *DuckDBStore) FindByKeywordCount(ctx context.Context, n int) ([]models.Balade, error) {
	return s.query(ctx, "mot_cle_count = ?", "seq", n)
}

// FindByDatePrefix uses starts_with so the prefix is never read as a pattern.
func (s *DuckDBStore) FindByDatePrefix(ctx context.Context, prefix string) ([]models.Balade, error) {
	return s.query(ctx, "starts_with(date_saisie, ?)", "date_saisie, seq", prefix)
}

// CountByPostalCode counts rows in one postal code.
func (s *DuckDBStore) CountByPostalCode(ctx context.Context, code string) (int64, error) {
	var n int64
	err := s.conn.QueryRowContext(ctx, "SELECT count(*) FROM balades WHERE code_postal = ?", code).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("duckdb count: %w", err)
	}
	return n, nil
}

// CountGroupedByPostalCode groups rows by postal code, NULL first.
func (s *DuckDBStore) CountGroupedByPostalCode(ctx context.Context) ([]models.PostalCodeCount, error) {
	rows, err := s.conn.QueryContext(ctx,
		"SELECT code_postal, count(*) FROM balades GROUP BY code_postal ORDER BY code_postal ASC NULLS FIRST")
	if err != nil {
		return nil, fmt.Errorf("duckdb group: %w", err)
	}
	defer closeQuietly(rows)

	out := []models.PostalCodeCount{}
	for rows.Next() {
		var (
			code  sql.NullString
			count int64
		)
		if err := rows.Scan(&code, &count); err != nil {
			return nil, fmt.Errorf("duckdb scan: %w", err)
		}
		group := models.PostalCodeCount{Count: count}
		if code.Valid {
			v := code.String
			group.ID = &v
		}
		out = append(out, group)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("duckdb rows: %w", err)
	}
	return out, nil
}

// DistinctCategories returns the sorted set of categories.
func (s *DuckDBStore) DistinctCategories(ctx context.Context) ([]string, error) {
	rows, err := s.conn.QueryContext(ctx, "SELECT DISTINCT categorie FROM balades ORDER BY categorie")
	if err != nil {
		return nil, fmt.Errorf("duckdb distinct: %w", err)
	}
	defer closeQuietly(rows)

	out := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("duckdb scan: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("duckdb rows: %w", err)
	}
	return out, nil
}

// Insert writes one row under a fresh ObjectID-formatted id.
func (s *DuckDBStore) Insert(ctx context.Context, b models.Balade) (*models.Balade, error) {
	rec := b.Clone()
	rec.ID = models.NewID()
	rec.Normalize()

	keywords, err := encodeKeywords(rec.MotCle)
	if err != nil {
		return nil, err
	}

	_, err = s.conn.ExecContext(ctx, `
		INSERT INTO balades (id, nom_poi, adresse, categorie, type, texte_intro, texte_description,
			mot_cle, mot_cle_count, date_saisie, code_postal, url_site)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.NomPoi, rec.Adresse, rec.Categorie,
		nullable(rec.Type), nullable(rec.TexteIntro), nullable(rec.TexteDescription),
		keywords, len(rec.MotCle),
		nullable(rec.DateSaisie), nullable(rec.CodePostal), nullable(rec.URLSite))
	if err != nil {
		return nil, fmt.Errorf("duckdb insert: %w", err)
	}
	return &rec, nil
}

// withTx runs fn in a transaction, committing when it returns nil.
func (s *DuckDBStore) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("duckdb begin: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("duckdb commit: %w", err)
	}
	return nil
}

func (s *DuckDBStore) writeRow(ctx context.Context, tx *sql.Tx, b *models.Balade) error {
	keywords, err := encodeKeywords(b.MotCle)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `
		UPDATE balades SET nom_poi = ?, adresse = ?, categorie = ?, type = ?, texte_intro = ?,
			texte_description = ?, mot_cle = ?, mot_cle_count = ?, date_saisie = ?, code_postal = ?, url_site = ?
		WHERE id = ?`,
		b.NomPoi, b.Adresse, b.Categorie,
		nullable(b.Type), nullable(b.TexteIntro), nullable(b.TexteDescription),
		keywords, len(b.MotCle),
		nullable(b.DateSaisie), nullable(b.CodePostal), nullable(b.URLSite),
		b.ID)
	if err != nil {
		return fmt.Errorf("duckdb update: %w", err)
	}
	return nil
}

// Update reads, patches and rewrites the row in one transaction.
func (s *DuckDBStore) Update(ctx context.Context, id string, patch *models.BaladePatch) (*models.Balade, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	var updated *models.Balade
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		b, err := s.findByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if patch.IsEmpty() {
			updated = b
			return nil
		}
		patch.Apply(b)
		b.Normalize()
		if err := s.writeRow(ctx, tx, b); err != nil {
			return err
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// AddKeyword checks and appends inside one transaction.
func (s *DuckDBStore) AddKeyword(ctx context.Context, id, kw string) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		b, err := s.findByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if b.HasKeyword(kw) {
			return fmt.Errorf("%w: %q", models.ErrDuplicateKeyword, kw)
		}
		b.MotCle = append(b.MotCle, kw)
		return s.writeRow(ctx, tx, b)
	})
}

// Delete removes one row.
func (s *DuckDBStore) Delete(ctx context.Context, id string) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	res, err := s.conn.ExecContext(ctx, "DELETE FROM balades WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("duckdb delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("duckdb rows affected: %w", err)
	}
	if n == 0 {
		return notFound(id)
	}
	return nil
}

// Ping checks the connection.
func (s *DuckDBStore) Ping(ctx context.Context) error {
	return s.conn.PingContext(ctx)
}

// Close closes the database.
func (s *DuckDBStore) Close(_ context.Context) error {
	return s.conn.Close()
}
