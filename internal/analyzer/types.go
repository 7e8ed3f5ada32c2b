// Package analyzer implements the schedule diagnostic checks and the report
// pipeline that aggregates them.
package analyzer

import "time"

// Section names, the stable keys of Report.Sections.
const (
	SectionDistribution  = "activity_distribution"
	SectionCapacity      = "capacity"
	SectionCrossDivision = "cross_division"
	SectionWeather       = "weather"
	SectionRotation      = "rotation"
	SectionLeague        = "league_fairness"
	SectionHistory       = "history"
	SectionStreaks       = "streaks"
	SectionCoverage      = "coverage"
	SectionTimeWindows   = "time_windows"
	SectionTimeSlots     = "time_slots"
)

// SectionOrder is the fixed execution and rendering order of the sections.
var SectionOrder = []string{
	SectionDistribution,
	SectionCapacity,
	SectionCrossDivision,
	SectionWeather,
	SectionRotation,
	SectionLeague,
	SectionHistory,
	SectionStreaks,
	SectionCoverage,
	SectionTimeWindows,
	SectionTimeSlots,
}

// SectionTitles maps section keys to human-readable headings.
var SectionTitles = map[string]string{
	SectionDistribution:  "Activity Distribution",
	SectionCapacity:      "Capacity Compliance",
	SectionCrossDivision: "Cross-Division Conflicts",
	SectionWeather:       "Indoor/Outdoor & Rainy Days",
	SectionRotation:      "Rotation Scoring Audit",
	SectionLeague:        "League Fairness",
	SectionHistory:       "Historical Count Reconciliation",
	SectionStreaks:       "Activity Streaks",
	SectionCoverage:      "Activity Coverage",
	SectionTimeWindows:   "Field Time Windows",
	SectionTimeSlots:     "Division Time Slots",
}

// Result is the uniform output of one diagnostic section.
type Result struct {
	// Errors are rule violations: capacity exceeded, cross-division
	// conflicts, weather violations, unavailable-window usage, and
	// structural problems in time-slot definitions.
	Errors []string `json:"errors"`

	// Warnings are fairness and quality concerns that merit review but do
	// not break the schedule.
	Warnings []string `json:"warnings"`

	// Info are always-on summaries and low-severity notes.
	Info []string `json:"info"`

	// Data carries the section's raw intermediate data so tooling and
	// tests can inspect it without re-deriving.
	Data any `json:"data,omitempty"`
}

// Summary totals the findings across all sections of a report.
type Summary struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Info     int `json:"info"`
}

// Report is the aggregated output of one pipeline run.
type Report struct {
	Summary     Summary           `json:"summary"`
	Sections    map[string]Result `json:"sections"`
	GeneratedAt time.Time         `json:"generatedAt"`

	// Error is set when a section failed mid-run. Sections completed
	// before the failure are still present.
	Error string `json:"error,omitempty"`
}
