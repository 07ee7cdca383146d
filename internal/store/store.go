// Package store handles SQLite persistence for the generation-run ledger.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/freqgen/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for run history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY,
			ran_at TEXT NOT NULL,
			lang TEXT NOT NULL,
			granularity TEXT NOT NULL,
			count INTEGER NOT NULL,
			syntax TEXT NOT NULL,
			valid INTEGER NOT NULL,
			warnings INTEGER NOT NULL,
			missing INTEGER NOT NULL,
			output_bytes INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ran_at ON runs(ran_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertRun stores one per-language generation run.
func (s *Store) InsertRun(ctx context.Context, run model.RunRecord) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (ran_at, lang, granularity, count, syntax, valid, warnings, missing, output_bytes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RanAt.Format(time.RFC3339Nano),
		run.Lang,
		run.Granularity,
		run.Count,
		run.Syntax,
		boolToInt(run.Valid),
		run.Warnings,
		run.Missing,
		run.OutputBytes,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]model.RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, ran_at, lang, granularity, count, syntax, valid, warnings, missing, output_bytes
		 FROM runs
		 ORDER BY ran_at DESC, id DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var runs []model.RunRecord
	for rows.Next() {
		var run model.RunRecord
		var ranAt string
		var valid int
		if err := rows.Scan(&run.ID, &ranAt, &run.Lang, &run.Granularity, &run.Count, &run.Syntax, &valid, &run.Warnings, &run.Missing, &run.OutputBytes); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, ranAt)
		if err != nil {
			return nil, err
		}
		run.RanAt = parsed
		run.Valid = valid != 0
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return runs, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
