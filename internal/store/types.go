// Package store persists campwatch validation runs to a local SQLite database.
package store

import "time"

// Run is one persisted validation run.
type Run struct {
	ID         int64     `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	StartDate  string    `json:"start_date,omitempty"`
	EndDate    string    `json:"end_date,omitempty"`
	Divisions  string    `json:"divisions,omitempty"`
	Errors     int       `json:"errors"`
	Warnings   int       `json:"warnings"`
	Infos      int       `json:"infos"`
	Score      int       `json:"score"`
	DurationMs int64     `json:"duration_ms"`
}

// SectionCount holds the finding counts one analyzer produced in a run.
type SectionCount struct {
	RunID    int64  `json:"run_id"`
	Section  string `json:"section"`
	Errors   int    `json:"errors"`
	Warnings int    `json:"warnings"`
	Infos    int    `json:"infos"`
}

// Issue is one stored finding line. Severity is "error" or "warning";
// info lines are not persisted.
type Issue struct {
	RunID    int64  `json:"run_id"`
	Section  string `json:"section"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}
