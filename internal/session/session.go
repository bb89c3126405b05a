// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session keeps an optional SQLite ledger of quickview runs. Only
// run bookkeeping is recorded (when, which command, headline counts); the
// research data itself is never persisted.
package session

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Run is one recorded invocation.
type Run struct {
	StartedAt      time.Time
	Command        string
	PapersAnalyzed int
	TotalCitations int
	Scenarios      int
}

// Store manages the run-history SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the ledger database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating ledger directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating ledger schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	const stmt = `CREATE TABLE IF NOT EXISTS runs (
		rowid INTEGER PRIMARY KEY AUTOINCREMENT,
		started_at TEXT NOT NULL,
		command TEXT NOT NULL,
		papers_analyzed INTEGER NOT NULL DEFAULT 0,
		total_citations INTEGER NOT NULL DEFAULT 0,
		scenarios INTEGER NOT NULL DEFAULT 0
	)`
	if _, err := s.db.Exec(stmt); err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record appends one run to the ledger.
func (s *Store) Record(ctx context.Context, run Run) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (started_at, command, papers_analyzed, total_citations, scenarios)
		 VALUES (?, ?, ?, ?, ?)`,
		run.StartedAt.UTC().Format(time.RFC3339), run.Command,
		run.PapersAnalyzed, run.TotalCitations, run.Scenarios)
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	return nil
}

// Recent returns up to n runs, newest first.
func (s *Store) Recent(ctx context.Context, n int) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT started_at, command, papers_analyzed, total_citations, scenarios
		 FROM runs ORDER BY rowid DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var started string
		if err := rows.Scan(&started, &r.Command, &r.PapersAnalyzed, &r.TotalCitations, &r.Scenarios); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		t, err := time.Parse(time.RFC3339, started)
		if err != nil {
			return nil, fmt.Errorf("parsing run timestamp: %w", err)
		}
		r.StartedAt = t
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
