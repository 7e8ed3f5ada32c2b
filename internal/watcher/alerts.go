package watcher

import (
	"fmt"
	"sort"
	"time"

	"github.com/yisrose35/daily-camp-schedular-sub003/internal/analyzer"
)

// scoreDropThreshold is how many quality-score points may disappear between
// checks before the drop itself is worth an alert.
const scoreDropThreshold = 5

// Compare detects notable changes between two validation passes and returns
// alerts: new violations are critical, new warnings and score drops are
// warnings, resolved violations are info.
func Compare(prev, curr *WatchState) []Alert {
	var alerts []Alert

	alerts = append(alerts, compareCritical(prev, curr)...)
	alerts = append(alerts, compareWarning(prev, curr)...)
	alerts = append(alerts, compareInfo(prev, curr)...)

	return alerts
}

// compareCritical flags new rule violations, attributed to the sections
// whose error counts grew when per-section numbers are available.
func compareCritical(prev, curr *WatchState) []Alert {
	var alerts []Alert
	now := time.Now()

	for _, change := range grownSections(prev, curr, func(s analyzer.Summary) int { return s.Errors }) {
		alerts = append(alerts, Alert{
			Level:   "critical",
			Title:   fmt.Sprintf("New violations: %s", sectionTitle(change.name)),
			Message: fmt.Sprintf("Errors went from %d to %d", change.prev, change.curr),
			Time:    now,
		})
	}

	// Totals can grow without a section attribution when a pass failed
	// mid-run and left no section counts behind.
	if len(alerts) == 0 && curr.Errors > prev.Errors {
		alerts = append(alerts, Alert{
			Level:   "critical",
			Title:   "New schedule violations",
			Message: fmt.Sprintf("Errors went from %d to %d", prev.Errors, curr.Errors),
			Time:    now,
		})
	}

	return alerts
}

// compareWarning flags new fairness and quality findings plus drops in the
// overall quality score.
func compareWarning(prev, curr *WatchState) []Alert {
	var alerts []Alert
	now := time.Now()

	for _, change := range grownSections(prev, curr, func(s analyzer.Summary) int { return s.Warnings }) {
		alerts = append(alerts, Alert{
			Level:   "warning",
			Title:   fmt.Sprintf("New warnings: %s", sectionTitle(change.name)),
			Message: fmt.Sprintf("Warnings went from %d to %d", change.prev, change.curr),
			Time:    now,
		})
	}

	if len(alerts) == 0 && curr.Warnings > prev.Warnings {
		alerts = append(alerts, Alert{
			Level:   "warning",
			Title:   "New schedule warnings",
			Message: fmt.Sprintf("Warnings went from %d to %d", prev.Warnings, curr.Warnings),
			Time:    now,
		})
	}

	if prev.Score-curr.Score >= scoreDropThreshold {
		alerts = append(alerts, Alert{
			Level:   "warning",
			Title:   "Quality score dropped",
			Message: fmt.Sprintf("Score went from %d to %d", prev.Score, curr.Score),
			Time:    now,
		})
	}

	return alerts
}

// compareInfo flags improvements: resolved violations and, once the schedule
// is violation-free, cleared warnings.
func compareInfo(prev, curr *WatchState) []Alert {
	var alerts []Alert
	now := time.Now()

	if curr.Errors < prev.Errors {
		alerts = append(alerts, Alert{
			Level:   "info",
			Title:   "Violations resolved",
			Message: fmt.Sprintf("Errors went from %d to %d", prev.Errors, curr.Errors),
			Time:    now,
		})
	}

	if curr.Errors == 0 && curr.Warnings < prev.Warnings {
		alerts = append(alerts, Alert{
			Level:   "info",
			Title:   "Warnings cleared",
			Message: fmt.Sprintf("Warnings went from %d to %d", prev.Warnings, curr.Warnings),
			Time:    now,
		})
	}

	return alerts
}

// sectionChange records one section whose issue count moved between passes.
type sectionChange struct {
	name string
	prev int
	curr int
}

// grownSections returns the sections whose extracted count increased between
// the two states, sorted by name so alert order is stable.
func grownSections(prev, curr *WatchState, count func(analyzer.Summary) int) []sectionChange {
	var changes []sectionChange
	for name, summary := range curr.sections {
		before := count(prev.sections[name])
		after := count(summary)
		if after > before {
			changes = append(changes, sectionChange{name: name, prev: before, curr: after})
		}
	}
	sort.Slice(changes, func(i, j int) bool { return changes[i].name < changes[j].name })
	return changes
}

// sectionTitle resolves a section key to its report heading, falling back to
// the key itself for unknown sections.
func sectionTitle(name string) string {
	if title, ok := analyzer.SectionTitles[name]; ok {
		return title
	}
	return name
}
