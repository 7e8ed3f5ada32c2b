package store

import (
	"database/sql"
	"fmt"
)

// migrations holds the forward migration for each schema version, indexed
// by version-1. Each migration stamps its own version inside its
// transaction, so a half-applied migration leaves the version untouched.
var migrations = []func(*DB) error{
	(*DB).migrateV1,
}

// Migrate brings the database schema up to date, applying any migrations
// newer than the stored schema version. Safe to call repeatedly.
func (db *DB) Migrate() error {
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	for v := db.schemaVersion(); v < len(migrations); v++ {
		if err := migrations[v](db); err != nil {
			return fmt.Errorf("migration v%d: %w", v+1, err)
		}
	}
	return nil
}

// schemaVersion reads the stored schema version; a fresh database is 0.
func (db *DB) schemaVersion() int {
	var v int
	if err := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&v); err != nil {
		return 0
	}
	return v
}

// setSchemaVersion replaces the stored schema version inside tx.
func setSchemaVersion(tx *sql.Tx, version int) error {
	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	_, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", version)
	return err
}

// migrateV1 creates the run-history tables: one row per recorded run, one
// per section with its finding counts, and one per stored error or warning
// line.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at  TEXT NOT NULL,
			start_date  TEXT,
			end_date    TEXT,
			divisions   TEXT,
			errors      INTEGER NOT NULL,
			warnings    INTEGER NOT NULL,
			infos       INTEGER NOT NULL,
			score       INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS run_sections (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id   INTEGER NOT NULL REFERENCES runs(id),
			section  TEXT NOT NULL,
			errors   INTEGER NOT NULL,
			warnings INTEGER NOT NULL,
			infos    INTEGER NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS run_issues (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id   INTEGER NOT NULL REFERENCES runs(id),
			section  TEXT NOT NULL,
			severity TEXT NOT NULL,
			message  TEXT NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_run_sections_run ON run_sections(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_run_issues_run ON run_issues(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_run_issues_severity ON run_issues(severity)`,
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("executing %.40q: %w", stmt, err)
		}
	}

	if err := setSchemaVersion(tx, 1); err != nil {
		return err
	}
	return tx.Commit()
}
