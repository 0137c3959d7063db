// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists completed searches and their paper records in a
// local SQLite database. The pipeline itself stays stateless; recording
// happens after a search returns.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-scout/pkg/types"
)

const dbFile = "scout.db"

// Store manages the search-history SQLite database.
type Store struct {
	db         *sql.DB
	maxEntries int
}

// Entry is one recorded search.
type Entry struct {
	ID          int64     `json:"id" yaml:"id"`
	Query       string    `json:"query" yaml:"query"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
	ResultCount int       `json:"result_count" yaml:"result_count"`
}

// NewStore opens or creates the history database at stateDir/scout.db and
// creates the schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.StateDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating state directory: %w", err)
	}

	dbPath := filepath.Join(cfg.StateDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxEntries := cfg.MaxEntries
	if maxEntries <= 0 {
		maxEntries = 20
	}

	s := &Store{db: db, maxEntries: maxEntries}
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
		`CREATE TABLE IF NOT EXISTS searches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			query TEXT NOT NULL,
			created_at TEXT NOT NULL,
			result_count INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS papers (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			search_id INTEGER NOT NULL REFERENCES searches(id) ON DELETE CASCADE,
			id TEXT NOT NULL,
			title TEXT NOT NULL,
			authors TEXT NOT NULL,
			year INTEGER,
			abstract TEXT,
			citation_count INTEGER,
			tldr TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_search_id ON papers(search_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores one completed search and its records, returning the new
// search ID. The whole insert is transactional.
func (s *Store) Record(ctx context.Context, query string, records []types.PaperRecord) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO searches (query, created_at, result_count) VALUES (?, ?, ?)`,
		query, time.Now().UTC().Format(time.RFC3339), len(records))
	if err != nil {
		return 0, fmt.Errorf("inserting search: %w", err)
	}

	searchID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading search ID: %w", err)
	}

	for _, r := range records {
		authors, err := json.Marshal(r.Authors)
		if err != nil {
			return 0, fmt.Errorf("marshaling authors: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO papers (search_id, id, title, authors, year, abstract, citation_count, tldr)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			searchID, r.ID, r.Title, string(authors), r.Year, r.Abstract, r.CitationCount, r.TLDR)
		if err != nil {
			return 0, fmt.Errorf("inserting paper %s: %w", r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing: %w", err)
	}
	return searchID, nil
}

// List returns the most recent searches, newest first. A non-positive limit
// uses the store default.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = s.maxEntries
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, query, created_at, result_count FROM searches
		 ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying searches: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt string
		if err := rows.Scan(&e.ID, &e.Query, &createdAt, &e.ResultCount); err != nil {
			return nil, fmt.Errorf("scanning search row: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339, createdAt); parseErr == nil {
			e.CreatedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Papers returns the records stored for one search, in insertion order.
func (s *Store) Papers(ctx context.Context, searchID int64) ([]types.PaperRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, authors, year, abstract, citation_count, tldr
		 FROM papers WHERE search_id = ? ORDER BY rowid`, searchID)
	if err != nil {
		return nil, fmt.Errorf("querying papers: %w", err)
	}
	defer rows.Close()

	var records []types.PaperRecord
	for rows.Next() {
		var r types.PaperRecord
		var authors string
		if err := rows.Scan(&r.ID, &r.Title, &authors, &r.Year, &r.Abstract, &r.CitationCount, &r.TLDR); err != nil {
			return nil, fmt.Errorf("scanning paper row: %w", err)
		}
		if err := json.Unmarshal([]byte(authors), &r.Authors); err != nil {
			return nil, fmt.Errorf("parsing authors for %s: %w", r.ID, err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// exportEntry pairs a search with its records for export.
type exportEntry struct {
	Entry  `yaml:",inline"`
	Papers []types.PaperRecord `json:"papers" yaml:"papers"`
}

// ExportYAML writes the full history, newest first, as YAML to w.
func (s *Store) ExportYAML(ctx context.Context, w io.Writer) error {
	entries, err := s.List(ctx, 1<<30)
	if err != nil {
		return err
	}

	export := make([]exportEntry, 0, len(entries))
	for _, e := range entries {
		papers, err := s.Papers(ctx, e.ID)
		if err != nil {
			return err
		}
		export = append(export, exportEntry{Entry: e, Papers: papers})
	}

	data, err := yaml.Marshal(export)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}
