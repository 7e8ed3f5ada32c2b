// Package camp provides types and parsers for a camp scheduler's exported data files.
package camp

// Day represents one daily schedule snapshot from <data-dir>/days/<date>.json.
type Day struct {
	// Date is the ISO calendar date (YYYY-MM-DD) this snapshot covers.
	Date string `json:"date"`

	// Rainy marks the date as a rainy day for weather eligibility checks.
	Rainy bool `json:"isRainyDay"`

	// Assignments maps a bunk identifier to its ordered slot records for
	// the date. The slice index is the time-slot index within the bunk's
	// division schedule.
	Assignments map[string][]SlotRecord `json:"scheduleAssignments"`

	// Leagues maps a division name to league slots keyed by slot index.
	Leagues map[string]map[int]LeagueSlot `json:"leagueAssignments"`

	// UnifiedTimes are date-level time-slot definitions applying to every
	// division, when present.
	UnifiedTimes []TimeSlot `json:"unifiedTimes,omitempty"`

	// DivisionTimes are per-division time-slot definitions for this date,
	// overriding both UnifiedTimes and the division defaults.
	DivisionTimes map[string][]TimeSlot `json:"divisionTimes,omitempty"`
}

// SlotRecord is a single bunk's assignment for one time slot.
type SlotRecord struct {
	// Activity is the field or activity name as entered by the scheduler.
	Activity string `json:"activity"`

	// Continuation marks this slot as extending the previous slot's
	// activity; it never starts a new logical occurrence.
	Continuation bool `json:"continuation"`

	// IsTransition marks a transition period (lineup, changeover).
	IsTransition bool `json:"isTransition"`

	// IsLeague marks a slot occupied by a league game rather than a
	// regular activity.
	IsLeague bool `json:"isLeague"`

	// StartMin and EndMin, when set, override the time window implied by
	// the slot index. Minutes since midnight.
	StartMin *int `json:"startMin,omitempty"`
	EndMin   *int `json:"endMin,omitempty"`
}

// LeagueSlot holds the league games scheduled for one division slot.
type LeagueSlot struct {
	LeagueName string    `json:"leagueName"`
	Matchups   []Matchup `json:"matchups"`
}

// Matchup is a scheduled pairing of two teams at a field.
type Matchup struct {
	TeamA string `json:"teamA"`
	TeamB string `json:"teamB"`
	Field string `json:"field"`
}

// TimeSlot is one indexed time interval in a division's day. StartMin and
// EndMin are minutes since midnight; a nil bound marks the definition as
// malformed (reported by the structural check, skipped elsewhere).
type TimeSlot struct {
	StartMin *int   `json:"startMin"`
	EndMin   *int   `json:"endMin"`
	Label    string `json:"label,omitempty"`
}

// Division is a named collection of bunks sharing a daily slot structure.
type Division struct {
	// Name is the division identifier, e.g. "Juniors".
	Name string `json:"name"`

	// Bunks lists the division's bunk identifiers in schedule order.
	Bunks []string `json:"bunks"`

	// Times are the division's default time-slot definitions, used for any
	// date that carries no per-date override.
	Times []TimeSlot `json:"times"`
}

// Sharing rule types for ActivityProperties.SharableWith.
const (
	SharingNone   = "none"
	SharingCustom = "custom"
	SharingAll    = "all"
)

// SharingRule describes how many bunks may use a field concurrently.
type SharingRule struct {
	// Type is one of "none", "custom", or "all".
	Type string `json:"type"`

	// Capacity is the concurrent-bunk limit for "custom" rules.
	Capacity int `json:"capacity,omitempty"`
}

// Time rule types for ActivityProperties.TimeRules.
const (
	RuleAvailable   = "Available"
	RuleUnavailable = "Unavailable"
)

// TimeRule restricts when a field may be used. Bounds are minutes since
// midnight; a rule missing either bound is skipped.
type TimeRule struct {
	Type     string `json:"type"`
	StartMin *int   `json:"startMin"`
	EndMin   *int   `json:"endMin"`
}

// ActivityProperties is the configuration for one field or activity,
// keyed in activities.json by normalized name.
type ActivityProperties struct {
	// SharableWith controls concurrent capacity. Nil falls back to the
	// legacy Sharable flag, then to exclusive use.
	SharableWith *SharingRule `json:"sharableWith,omitempty"`

	// Sharable is the legacy boolean rule: true means two bunks may share.
	Sharable *bool `json:"sharable,omitempty"`

	// Indoor marks the field as indoor. Unconfigured fields are outdoor.
	Indoor bool `json:"isIndoor"`

	// RainyDayAvailable marks an outdoor field as still usable in rain
	// (covered courts, pavilions).
	RainyDayAvailable bool `json:"rainyDayAvailable"`

	// RainyDayOnly marks an activity reserved for rainy-day programming.
	RainyDayOnly bool `json:"rainyDayOnly"`

	// TimeRules restrict when the field may be used.
	TimeRules []TimeRule `json:"timeRules,omitempty"`
}

// HistoryCounts is the externally maintained running total of occurrences,
// bunk → activity → count. It is a cache and may drift from ground truth.
type HistoryCounts map[string]map[string]int

// Bundle is one immutable snapshot of everything the scheduler exported:
// daily schedules, the division table, activity configuration, and the
// historical counts cache. Analyzers treat it as read-only.
type Bundle struct {
	// Days holds the loaded daily snapshots sorted by date.
	Days []Day

	// Divisions is the division table in configured order.
	Divisions []Division

	// Activities maps normalized activity/field name to its properties.
	Activities map[string]ActivityProperties

	// History is the externally maintained occurrence cache.
	History HistoryCounts

	// SkippedDays lists day filenames that failed to load (bad name or
	// unparseable JSON). Surfaced by doctor; harmless otherwise.
	SkippedDays []string
}
