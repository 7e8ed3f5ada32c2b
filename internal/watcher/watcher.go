// Package watcher provides background monitoring of a schedule export,
// re-validating at an interval and emitting alerts when findings change.
package watcher

import (
	"context"
	"fmt"
	"time"

	"github.com/yisrose35/daily-camp-schedular-sub003/internal/analyzer"
)

// WatchState captures the findings of one validation pass.
type WatchState struct {
	Timestamp time.Time
	Errors    int
	Warnings  int
	Score     int

	// Per-section counts, for pinpointing which check moved.
	sections map[string]analyzer.Summary
}

// Alert is a notable change detected between validation passes. Level is
// one of "info", "warning", or "critical".
type Alert struct {
	Level   string
	Title   string
	Message string
	Time    time.Time
}

// RunFunc produces a fresh validation report. The watcher calls it once per
// cycle; it should reload the schedule data every time.
type RunFunc func() (*analyzer.Report, error)

// Watcher re-validates schedules at a regular interval and emits alerts when
// findings appear, grow, or resolve.
type Watcher struct {
	run      RunFunc
	interval time.Duration
	alertFn  func(Alert)

	previous      *WatchState
	lastAlertKeys map[string]bool // alerts emitted last cycle, for dedup
}

// New creates a Watcher that re-validates with run at the given interval.
func New(run RunFunc, interval time.Duration, alertFn func(Alert)) *Watcher {
	return &Watcher{
		run:           run,
		interval:      interval,
		alertFn:       alertFn,
		lastAlertKeys: make(map[string]bool),
	}
}

// Run starts the watch loop. It takes an initial snapshot, then checks at
// every interval. Blocks until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	initial, err := w.Snapshot()
	if err != nil {
		return fmt.Errorf("initial validation: %w", err)
	}
	w.previous = initial

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.emit(w.Check())
		}
	}
}

// emit hands each alert to the callback, when one is set.
func (w *Watcher) emit(alerts []Alert) {
	if w.alertFn == nil {
		return
	}
	for _, a := range alerts {
		w.alertFn(a)
	}
}

// Check performs a single check cycle: runs a fresh validation, compares
// against the previous state, updates the previous state, and returns any
// alerts. Identical alerts are suppressed until the underlying counts change.
func (w *Watcher) Check() []Alert {
	var raw []Alert

	curr, err := w.Snapshot()
	if err != nil {
		raw = []Alert{{
			Level:   "warning",
			Title:   "Validation failed",
			Message: fmt.Sprintf("Could not validate schedules: %v", err),
			Time:    time.Now(),
		}}
	} else {
		if w.previous != nil {
			raw = Compare(w.previous, curr)
		}
		w.previous = curr
	}

	return w.dedup(raw)
}

// dedup drops alerts repeated verbatim from the previous cycle, so a
// standing condition alerts once rather than every interval.
func (w *Watcher) dedup(raw []Alert) []Alert {
	seen := make(map[string]bool, len(raw))
	var fresh []Alert
	for _, a := range raw {
		key := a.Level + ":" + a.Title + ":" + a.Message
		seen[key] = true
		if !w.lastAlertKeys[key] {
			fresh = append(fresh, a)
		}
	}
	w.lastAlertKeys = seen
	return fresh
}

// Snapshot runs a validation pass and condenses the report into a WatchState.
func (w *Watcher) Snapshot() (*WatchState, error) {
	rep, err := w.run()
	if err != nil {
		return nil, err
	}
	return stateFromReport(rep), nil
}

func stateFromReport(rep *analyzer.Report) *WatchState {
	state := &WatchState{
		Timestamp: time.Now(),
		Errors:    rep.Summary.Errors,
		Warnings:  rep.Summary.Warnings,
		Score:     analyzer.QualityScore(rep),
		sections:  make(map[string]analyzer.Summary, len(rep.Sections)),
	}
	for name, sec := range rep.Sections {
		state.sections[name] = analyzer.Summary{
			Errors:   len(sec.Errors),
			Warnings: len(sec.Warnings),
			Info:     len(sec.Info),
		}
	}
	return state
}
