package data

import (
	"database/sql"
	"fmt"

	_ "github.com/marcboeker/go-duckdb/v2"
)

// InitDuckDB opens a DuckDB database; an empty path keeps it in memory.
func InitDuckDB(path string) (*sql.DB, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}

	return db, err
}

// NewDuckDBStore returns a seeded store backed by an in-memory DuckDB database.
func NewDuckDBStore() (*SQLStore, error) {
	db, err := InitDuckDB("")
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}

	s, err := newSQLStore(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}
