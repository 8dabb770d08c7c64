// Package sqlite archives comparison runs in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/seqlcs/internal/domain"
	"github.com/bnema/seqlcs/internal/ports"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Schema versions:
// 1 - runs and entries tables
// 2 - index on runs.started_at
const currentSchemaVersion = 2

type Archive struct {
	db *sql.DB
}

var _ ports.RunArchive = (*Archive)(nil)

// Open creates or opens the archive at path and brings its schema up to date.
func Open(path string) (*Archive, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create archive directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect archive: %w", err)
	}

	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Archive{db: db}, nil
}

func (a *Archive) Close() error {
	if a.db == nil {
		return nil
	}

	return a.db.Close()
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %q: %w", pragma, err)
		}
	}

	return nil
}

func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}

	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("get user_version: %w", err)
	}

	if version < 2 {
		if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at)`); err != nil {
			return fmt.Errorf("migrate to v2: %w", err)
		}
	}

	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}

	return nil
}

// Save stores the run and all of its entries in one transaction.
func (a *Archive) Save(ctx context.Context, run domain.Run) (err error) {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, tx.Rollback())
		}
	}()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, input_path, output_path, format, started_at, pairs) VALUES (?, ?, ?, ?, ?, ?)`,
		string(run.ID), run.InputPath, run.OutputPath, run.Format, run.StartedAt.UnixNano(), len(run.Entries),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO entries (
			run_id, idx, first_name, first_symbols, second_name, second_symbols,
			subsequence, operations, elapsed_ns
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare entry insert: %w", err)
	}
	defer stmt.Close()

	for _, entry := range run.Entries {
		_, err = stmt.ExecContext(ctx,
			string(run.ID), entry.Index,
			entry.First.Name, entry.First.Symbols,
			entry.Second.Name, entry.Second.Symbols,
			entry.LCS, entry.Metrics.Operations, entry.Metrics.Elapsed.Nanoseconds(),
		)
		if err != nil {
			return fmt.Errorf("insert entry %d: %w", entry.Index, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit run: %w", err)
	}

	return nil
}

// ListRuns returns every run, oldest first, with entries loaded.
func (a *Archive) ListRuns(ctx context.Context) ([]domain.Run, error) {
	rows, err := a.db.QueryContext(ctx,
		`SELECT id, input_path, output_path, format, started_at FROM runs ORDER BY started_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}

	var runs []domain.Run
	for rows.Next() {
		var (
			run       domain.Run
			id        string
			startedAt int64
		)
		if err := rows.Scan(&id, &run.InputPath, &run.OutputPath, &run.Format, &startedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.ID = domain.RunID(id)
		run.StartedAt = time.Unix(0, startedAt).UTC()
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	rows.Close()

	for i := range runs {
		entries, err := a.entries(ctx, runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Entries = entries
	}

	return runs, nil
}

// Entries returns the entries of one run ordered by index. Unknown ids
// return domain.ErrRunNotFound.
func (a *Archive) Entries(ctx context.Context, id domain.RunID) ([]domain.ReportEntry, error) {
	var exists int
	err := a.db.QueryRowContext(ctx, `SELECT 1 FROM runs WHERE id = ?`, string(id)).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %s: %w", id, domain.ErrRunNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query run %s: %w", id, err)
	}

	return a.entries(ctx, id)
}

func (a *Archive) entries(ctx context.Context, id domain.RunID) ([]domain.ReportEntry, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT idx, first_name, first_symbols, second_name, second_symbols,
		       subsequence, operations, elapsed_ns
		FROM entries WHERE run_id = ? ORDER BY idx`, string(id))
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.ReportEntry{}
	for rows.Next() {
		var (
			entry     domain.ReportEntry
			elapsedNS int64
		)
		if err := rows.Scan(
			&entry.Index,
			&entry.First.Name, &entry.First.Symbols,
			&entry.Second.Name, &entry.Second.Symbols,
			&entry.LCS, &entry.Metrics.Operations, &elapsedNS,
		); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entry.Metrics.Elapsed = time.Duration(elapsedNS)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}

	return entries, nil
}
