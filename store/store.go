// SPDX-License-Identifier: MIT

// Package store keeps run history and named distance matrices in a SQLite
// database (pure-Go driver, no cgo).
//
// Tables:
//
//	schema_version  single row, current schema revision
//	matrices        one row per named matrix (order)
//	matrix_cells    one row per cell, keyed by (matrix, i, j)
//	runs            one row per run: parameters, best tour and totals
//	iterations      one row per iteration record, keyed by (run, iteration)
//
// Pheromone fields are never stored.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

const (
	// DefaultFileName is the database file used when no path is configured.
	DefaultFileName = "antcolony.db"
	schemaVersion   = 1
)

var (
	// ErrRunNotFound is returned by GetRun for an unknown id.
	ErrRunNotFound = errors.New("store: run not found")

	// ErrMatrixNotFound is returned by LoadMatrix for an unknown name.
	ErrMatrixNotFound = errors.New("store: matrix not found")
)

// Store is a SQLite-backed run and matrix store. Safe for concurrent use.
type Store struct {
	db     *sql.DB
	dbPath string
	mu     sync.RWMutex
	now    func() time.Time
}

// Open opens (creating if needed) the database at dbPath and applies the schema.
func Open(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("store: create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}
	// One connection keeps PRAGMAs and transactions on the same handle.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("store: set pragma %s: %w", pragma, err)
		}
	}

	s := &Store{db: db, dbPath: dbPath, now: time.Now}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: initialize schema: %w", err)
	}

	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.dbPath }

func (s *Store) initSchema() error {
	var version int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		// Fresh database.
		return s.createSchema()
	}
	if version > schemaVersion {
		return fmt.Errorf("database schema %d is newer than supported %d", version, schemaVersion)
	}

	return nil
}

func (s *Store) createSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY
	);
	INSERT INTO schema_version (version) VALUES (1);

	CREATE TABLE IF NOT EXISTS matrices (
		name       TEXT PRIMARY KEY,
		n          INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS matrix_cells (
		matrix TEXT    NOT NULL REFERENCES matrices(name) ON DELETE CASCADE,
		i      INTEGER NOT NULL,
		j      INTEGER NOT NULL,
		v      REAL    NOT NULL,
		PRIMARY KEY (matrix, i, j)
	);

	CREATE TABLE IF NOT EXISTS runs (
		id             TEXT PRIMARY KEY,
		created_at     TEXT    NOT NULL,
		matrix         TEXT    NOT NULL DEFAULT '',
		cities         INTEGER NOT NULL,
		ants           INTEGER NOT NULL,
		iterations     INTEGER NOT NULL,
		alpha          REAL    NOT NULL,
		beta           REAL    NOT NULL,
		rho            REAL    NOT NULL,
		tau0           REAL    NOT NULL,
		seed           INTEGER NOT NULL,
		workers        INTEGER NOT NULL,
		best_length    REAL    NOT NULL,
		best_tour      TEXT    NOT NULL,
		best_iteration INTEGER NOT NULL,
		degenerate     INTEGER NOT NULL,
		elapsed_ms     INTEGER NOT NULL,
		completed      INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS iterations (
		run_id         TEXT    NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		iteration      INTEGER NOT NULL,
		best_length    REAL    NOT NULL,
		iteration_best REAL    NOT NULL,
		mean           REAL    NOT NULL,
		std_dev        REAL    NOT NULL,
		worst          REAL    NOT NULL,
		degenerate     INTEGER NOT NULL,
		improved       INTEGER NOT NULL,
		PRIMARY KEY (run_id, iteration)
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
	`
	_, err := s.db.Exec(schema)

	return err
}

// Close checkpoints the WAL and closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	_, _ = s.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)")

	return s.db.Close()
}

// HealthCheck verifies the database connection.
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// withTx runs fn inside a transaction, rolling back on error.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	if err = fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("store: commit: %w", err)
	}

	return nil
}
