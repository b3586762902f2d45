// Package sqlite implements the run-history store on SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/contentops/taxo/pkg/taxo/store"
)

type sqliteStore struct {
	db *sql.DB
}

// Open opens (creating if needed) a run-history database with WAL mode
// enabled.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	total_docs INTEGER NOT NULL,
	distinct_cats INTEGER NOT NULL,
	distinct_tags INTEGER NOT NULL,
	recommendations INTEGER NOT NULL,
	duplicates INTEGER NOT NULL,
	skipped INTEGER NOT NULL,
	report_path TEXT
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveRun inserts or replaces a run record, keyed by its ULID.
func (s *sqliteStore) SaveRun(ctx context.Context, r store.Run) error {
	if r.ID == "" {
		return fmt.Errorf("save run: empty id")
	}
	_, err := s.db.ExecContext(ctx, `
INSERT OR REPLACE INTO runs
	(id, created_at, total_docs, distinct_cats, distinct_tags, recommendations, duplicates, skipped, report_path)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.CreatedAt.UTC().Format(time.RFC3339Nano),
		r.TotalDocs, r.DistinctCats, r.DistinctTags,
		r.Recommendations, r.Duplicates, r.Skipped, r.ReportPath)
	return err
}

// GetRun fetches one run by ID.
func (s *sqliteStore) GetRun(ctx context.Context, id string) (store.Run, bool, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, created_at, total_docs, distinct_cats, distinct_tags, recommendations, duplicates, skipped, report_path
FROM runs WHERE id = ?`, id)

	r, err := scanRun(row)
	if err == sql.ErrNoRows {
		return store.Run{}, false, nil
	}
	if err != nil {
		return store.Run{}, false, err
	}
	return r, true, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *sqliteStore) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT id, created_at, total_docs, distinct_cats, distinct_tags, recommendations, duplicates, skipped, report_path
FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []store.Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (store.Run, error) {
	var r store.Run
	var createdAt string
	if err := row.Scan(&r.ID, &createdAt, &r.TotalDocs, &r.DistinctCats,
		&r.DistinctTags, &r.Recommendations, &r.Duplicates, &r.Skipped,
		&r.ReportPath); err != nil {
		return store.Run{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return store.Run{}, fmt.Errorf("parse created_at: %w", err)
	}
	r.CreatedAt = t
	return r, nil
}
