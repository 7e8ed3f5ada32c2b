package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DB is a handle on the campwatch run database.
type DB struct {
	conn *sql.DB
}

// Open opens the run database at path, creating the file, its parent
// directory, and the schema as needed.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL so readers of stored runs do not block a track in progress.
	return setup(conn, "PRAGMA journal_mode=WAL", "PRAGMA foreign_keys=ON")
}

// OpenInMemory opens a throwaway in-memory database for tests. Every sqlite
// connection gets an in-memory database of its own, so the pool is pinned
// to a single connection to keep the schema visible across queries.
func OpenInMemory() (*DB, error) {
	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	conn.SetMaxOpenConns(1)
	return setup(conn, "PRAGMA foreign_keys=ON")
}

// setup applies connection pragmas and brings the schema up to date,
// closing the connection on any failure.
func setup(conn *sql.DB, pragmas ...string) (*DB, error) {
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("applying %s: %w", pragma, err)
		}
	}
	db := &DB{conn: conn}
	if err := db.Migrate(); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}
