// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store archives completed search runs in a local SQLite
// database so past results stay queryable after the report files are
// gone.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jessecu2024/search-paper/pkg/types"
)

// Store manages the run archive database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the archive at cfg.DatabasePath, creating the
// schema when missing.
func Open(cfg types.StoreConfig) (*Store, error) {
	if cfg.DatabasePath == "" {
		return nil, fmt.Errorf("store: database path not set")
	}
	if dir := filepath.Dir(cfg.DatabasePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.DatabasePath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at TEXT NOT NULL,
			venues TEXT NOT NULL,
			years TEXT NOT NULL,
			keywords TEXT NOT NULL,
			total_found INTEGER NOT NULL,
			duplicates_removed INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS papers (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL REFERENCES runs(id),
			title TEXT NOT NULL,
			authors TEXT,
			abstract TEXT,
			venue TEXT NOT NULL,
			year TEXT NOT NULL,
			url TEXT,
			source TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_run_id ON papers(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_venue ON papers(venue)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// RunRecord is one completed search run to archive.
type RunRecord struct {
	StartedAt   time.Time
	Venues      []string
	Years       []string
	Keywords    []string
	DupsRemoved int
	Papers      []types.PaperRecord
}

// SaveRun archives a run and its papers in one transaction, returning the
// new run ID.
func (s *Store) SaveRun(ctx context.Context, run RunRecord) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (started_at, venues, years, keywords, total_found, duplicates_removed)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.StartedAt.UTC().Format(time.RFC3339),
		strings.Join(run.Venues, ","),
		strings.Join(run.Years, ","),
		strings.Join(run.Keywords, ","),
		len(run.Papers), run.DupsRemoved,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO papers (run_id, title, authors, abstract, venue, year, url, source)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range run.Papers {
		authorsJSON, _ := json.Marshal(p.Authors)
		if _, err := stmt.ExecContext(ctx,
			runID, p.Title, string(authorsJSON), p.Abstract,
			p.Venue, p.Year, p.URL, p.Source,
		); err != nil {
			return 0, fmt.Errorf("inserting paper %q: %w", p.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// RunSummary is one archived run as listed by ListRuns.
type RunSummary struct {
	ID          int64
	StartedAt   time.Time
	Venues      []string
	Years       []string
	Keywords    []string
	TotalFound  int
	DupsRemoved int
}

// ListRuns returns archived runs, newest first. A non-empty venue keeps
// only runs that produced at least one paper from that venue, compared
// case-insensitively; limit <= 0 means no limit.
func (s *Store) ListRuns(ctx context.Context, venue string, limit int) ([]RunSummary, error) {
	query := `SELECT id, started_at, venues, years, keywords, total_found, duplicates_removed
	          FROM runs`
	var args []any
	if venue != "" {
		query += ` WHERE EXISTS (SELECT 1 FROM papers WHERE papers.run_id = runs.id AND papers.venue = ? COLLATE NOCASE)`
		args = append(args, strings.TrimSpace(venue))
	}
	query += ` ORDER BY id DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var r RunSummary
		var startedAt, venues, years, keywords string
		if err := rows.Scan(&r.ID, &startedAt, &venues, &years, &keywords, &r.TotalFound, &r.DupsRemoved); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
		r.Venues = splitList(venues)
		r.Years = splitList(years)
		r.Keywords = splitList(keywords)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// RunPapers returns the archived papers of one run in insertion order.
func (s *Store) RunPapers(ctx context.Context, runID int64) ([]types.PaperRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT title, authors, abstract, venue, year, url, source
		 FROM papers WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying run %d: %w", runID, err)
	}
	defer rows.Close()

	var papers []types.PaperRecord
	for rows.Next() {
		var p types.PaperRecord
		var authorsJSON string
		if err := rows.Scan(&p.Title, &authorsJSON, &p.Abstract, &p.Venue, &p.Year, &p.URL, &p.Source); err != nil {
			return nil, fmt.Errorf("scanning paper: %w", err)
		}
		if authorsJSON != "" {
			json.Unmarshal([]byte(authorsJSON), &p.Authors)
		}
		papers = append(papers, p)
	}
	return papers, rows.Err()
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
