package store

import (
	"database/sql"
	"time"
)

// CreateRun inserts a validation run together with its per-section counts
// and issue lines in a single transaction, and returns the new run ID.
// The created_at timestamp is assigned here.
func (db *DB) CreateRun(run *Run, sections []SectionCount, issues []Issue) (int64, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO runs
		(created_at, start_date, end_date, divisions, errors, warnings, infos, score, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), run.StartDate, run.EndDate, run.Divisions,
		run.Errors, run.Warnings, run.Infos, run.Score, run.DurationMs,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, sc := range sections {
		if _, err := tx.Exec(
			"INSERT INTO run_sections (run_id, section, errors, warnings, infos) VALUES (?, ?, ?, ?, ?)",
			id, sc.Section, sc.Errors, sc.Warnings, sc.Infos,
		); err != nil {
			return 0, err
		}
	}
	for _, is := range issues {
		if _, err := tx.Exec(
			"INSERT INTO run_issues (run_id, section, severity, message) VALUES (?, ?, ?, ?)",
			id, is.Section, is.Severity, is.Message,
		); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// GetRunN returns the Nth most recent run (0 = latest, 1 = previous, ...).
// It returns nil when fewer than n+1 runs exist.
func (db *DB) GetRunN(n int) (*Run, error) {
	row := db.conn.QueryRow(
		`SELECT id, created_at, start_date, end_date, divisions,
		 errors, warnings, infos, score, duration_ms
		 FROM runs ORDER BY id DESC LIMIT 1 OFFSET ?`,
		n,
	)
	return scanRun(row)
}

// GetRecentRuns returns up to limit runs, newest first.
func (db *DB) GetRecentRuns(limit int) ([]Run, error) {
	rows, err := db.conn.Query(
		`SELECT id, created_at, start_date, end_date, divisions,
		 errors, warnings, infos, score, duration_ms
		 FROM runs ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt string
		var start, end, divisions sql.NullString
		if err := rows.Scan(
			&r.ID, &createdAt, &start, &end, &divisions,
			&r.Errors, &r.Warnings, &r.Infos, &r.Score, &r.DurationMs,
		); err != nil {
			return nil, err
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		r.StartDate = start.String
		r.EndDate = end.String
		r.Divisions = divisions.String
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// SectionCounts returns the per-analyzer counts recorded for a run,
// ordered by section name.
func (db *DB) SectionCounts(runID int64) ([]SectionCount, error) {
	rows, err := db.conn.Query(
		"SELECT run_id, section, errors, warnings, infos FROM run_sections WHERE run_id = ? ORDER BY section",
		runID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var counts []SectionCount
	for rows.Next() {
		var sc SectionCount
		if err := rows.Scan(&sc.RunID, &sc.Section, &sc.Errors, &sc.Warnings, &sc.Infos); err != nil {
			return nil, err
		}
		counts = append(counts, sc)
	}
	return counts, rows.Err()
}

// IssuesForRun returns the stored finding lines for a run in insertion order.
func (db *DB) IssuesForRun(runID int64) ([]Issue, error) {
	rows, err := db.conn.Query(
		"SELECT run_id, section, severity, message FROM run_issues WHERE run_id = ? ORDER BY id",
		runID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var issues []Issue
	for rows.Next() {
		var is Issue
		if err := rows.Scan(&is.RunID, &is.Section, &is.Severity, &is.Message); err != nil {
			return nil, err
		}
		issues = append(issues, is)
	}
	return issues, rows.Err()
}

func scanRun(row *sql.Row) (*Run, error) {
	var r Run
	var createdAt string
	var start, end, divisions sql.NullString
	err := row.Scan(
		&r.ID, &createdAt, &start, &end, &divisions,
		&r.Errors, &r.Warnings, &r.Infos, &r.Score, &r.DurationMs,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	r.StartDate = start.String
	r.EndDate = end.String
	r.Divisions = divisions.String
	return &r, nil
}
