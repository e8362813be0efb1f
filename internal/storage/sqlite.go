// Package storage implements the SQLite record store for papers, projects,
// and links.
package storage

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection.
type DB struct {
	db *sql.DB
}

// OpenDB opens or creates a SQLite database at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't support concurrent writes; a single connection also
	// serializes discovery batches against other writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the database schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS projects (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			bib_path TEXT,
			created_at TEXT
		);

		CREATE TABLE IF NOT EXISTS papers (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			paper_id TEXT,
			project_id TEXT,
			title TEXT NOT NULL,
			abstract TEXT,
			keywords TEXT,
			tags TEXT,
			authors TEXT,
			year INTEGER,
			venue TEXT,
			doi TEXT UNIQUE,
			url TEXT,
			relevance TEXT,
			summary TEXT,
			notes TEXT,
			bibtex TEXT,
			file_path TEXT,
			is_duplicated INTEGER NOT NULL DEFAULT 0,
			duplicate_reason TEXT,
			is_excluded INTEGER NOT NULL DEFAULT 0,
			excluded_reason TEXT,
			added_at TEXT,
			FOREIGN KEY(project_id) REFERENCES projects(id) ON DELETE SET NULL
		);

		CREATE TABLE IF NOT EXISTS links (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source_id INTEGER NOT NULL,
			target_id INTEGER NOT NULL,
			type TEXT NOT NULL,
			note TEXT,
			created_at TEXT,
			FOREIGN KEY(source_id) REFERENCES papers(id) ON DELETE CASCADE,
			FOREIGN KEY(target_id) REFERENCES papers(id) ON DELETE CASCADE,
			UNIQUE(source_id, target_id, type)
		);

		CREATE INDEX IF NOT EXISTS idx_papers_title ON papers(title);
		CREATE INDEX IF NOT EXISTS idx_papers_project_id ON papers(project_id) WHERE project_id IS NOT NULL;
		CREATE UNIQUE INDEX IF NOT EXISTS idx_papers_paper_id ON papers(paper_id) WHERE paper_id IS NOT NULL;
		CREATE INDEX IF NOT EXISTS idx_links_source ON links(source_id);
		CREATE INDEX IF NOT EXISTS idx_links_target ON links(target_id);
	`
	_, err := db.Exec(schema)
	return err
}

// nullableString converts a string to sql.NullString, treating empty as NULL.
func nullableString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// nullableInt converts an int to sql.NullInt64, treating zero as NULL.
func nullableInt(n int) sql.NullInt64 {
	if n == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(n), Valid: true}
}
