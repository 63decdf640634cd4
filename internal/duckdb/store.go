// Package duckdb persists registered reads and their allele observations in a
// DuckDB database, so a loaded read set can be inspected or handed between
// tools without re-scanning alignments.
package duckdb

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb"
)

// Store manages a DuckDB connection holding reads and their observations.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates a DuckDB database at the given path.
// Use an empty string for an in-memory database.
func Open(path string) (*Store, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for direct access.
func (s *Store) DB() *sql.DB {
	return s.db
}

// ensureSchema creates tables if they don't exist.
func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS reads (
		id BIGINT,
		name VARCHAR,
		mapq INTEGER
	)`)
	if err != nil {
		return fmt.Errorf("create reads table: %w", err)
	}

	_, err = s.db.Exec(`CREATE TABLE IF NOT EXISTS read_variants (
		read_id BIGINT,
		position BIGINT,
		base VARCHAR,
		allele INTEGER,
		quality INTEGER
	)`)
	if err != nil {
		return fmt.Errorf("create read_variants table: %w", err)
	}

	return nil
}

// Clear removes all stored reads and observations.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM read_variants"); err != nil {
		return err
	}
	_, err := s.db.Exec("DELETE FROM reads")
	return err
}
