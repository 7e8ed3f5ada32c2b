package watcher

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/yisrose35/daily-camp-schedular-sub003/internal/analyzer"
)

// reportWith builds a report with the given counts in a single section.
func reportWith(section string, errs, warns int) *analyzer.Report {
	var res analyzer.Result
	for i := 0; i < errs; i++ {
		res.Errors = append(res.Errors, fmt.Sprintf("violation %d", i+1))
	}
	for i := 0; i < warns; i++ {
		res.Warnings = append(res.Warnings, fmt.Sprintf("concern %d", i+1))
	}
	return &analyzer.Report{
		Summary:     analyzer.Summary{Errors: errs, Warnings: warns},
		Sections:    map[string]analyzer.Result{section: res},
		GeneratedAt: time.Now(),
	}
}

func TestSnapshot_CondensesReport(t *testing.T) {
	run := func() (*analyzer.Report, error) {
		return reportWith(analyzer.SectionCapacity, 2, 1), nil
	}
	w := New(run, time.Minute, nil)

	state, err := w.Snapshot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Errors != 2 || state.Warnings != 1 {
		t.Errorf("expected 2 errors / 1 warning, got %d / %d", state.Errors, state.Warnings)
	}
	// 100 - 2*8 - 1*2.
	if state.Score != 82 {
		t.Errorf("expected score 82, got %d", state.Score)
	}
	sec := state.sections[analyzer.SectionCapacity]
	if sec.Errors != 2 || sec.Warnings != 1 {
		t.Errorf("section counts not carried over: %+v", sec)
	}
}

func TestSnapshot_RunError(t *testing.T) {
	run := func() (*analyzer.Report, error) {
		return nil, errors.New("data dir unreadable")
	}
	w := New(run, time.Minute, nil)

	if _, err := w.Snapshot(); err == nil {
		t.Fatal("expected error from failing run func")
	}
}

func TestCheck_FirstCallEstablishesBaseline(t *testing.T) {
	run := func() (*analyzer.Report, error) {
		return reportWith(analyzer.SectionCapacity, 1, 0), nil
	}
	w := New(run, time.Minute, nil)

	alerts := w.Check()
	if len(alerts) != 0 {
		t.Errorf("first check should only establish a baseline, got %+v", alerts)
	}
	if w.previous == nil {
		t.Fatal("baseline state not recorded")
	}
	if w.previous.Errors != 1 {
		t.Errorf("baseline errors = %d, want 1", w.previous.Errors)
	}
}

func TestCheck_AlertsOnNewErrors(t *testing.T) {
	rep := reportWith(analyzer.SectionCapacity, 0, 0)
	run := func() (*analyzer.Report, error) { return rep, nil }
	w := New(run, time.Minute, nil)

	w.Check() // baseline: clean schedule

	rep = reportWith(analyzer.SectionCapacity, 2, 0)
	alerts := w.Check()
	if len(alerts) == 0 {
		t.Fatal("expected alerts when errors appear")
	}
	if alerts[0].Level != "critical" {
		t.Errorf("expected critical alert, got %q", alerts[0].Level)
	}
}

func TestCheck_ResolvedErrorsEmitInfo(t *testing.T) {
	rep := reportWith(analyzer.SectionWeather, 2, 0)
	run := func() (*analyzer.Report, error) { return rep, nil }
	w := New(run, time.Minute, nil)

	w.Check() // baseline with violations

	rep = reportWith(analyzer.SectionWeather, 0, 0)
	alerts := w.Check()
	if len(alerts) != 1 || alerts[0].Level != "info" {
		t.Fatalf("expected a single info alert, got %+v", alerts)
	}
}

func TestCheck_DeduplicatesRepeatedAlerts(t *testing.T) {
	fail := true
	run := func() (*analyzer.Report, error) {
		if fail {
			return nil, errors.New("days dir missing")
		}
		return reportWith(analyzer.SectionCapacity, 0, 0), nil
	}
	w := New(run, time.Minute, nil)

	first := w.Check()
	if len(first) != 1 || first[0].Title != "Validation failed" {
		t.Fatalf("expected validation-failed alert, got %+v", first)
	}

	// The same failure on the next cycle is suppressed.
	second := w.Check()
	if len(second) != 0 {
		t.Errorf("repeated alert should be deduplicated, got %+v", second)
	}

	// A clean cycle clears the suppression, so a relapse alerts again.
	fail = false
	w.Check()
	fail = true
	relapse := w.Check()
	if len(relapse) != 1 {
		t.Errorf("expected the failure to alert again after recovery, got %+v", relapse)
	}
}

func TestRun_InitialSnapshotError(t *testing.T) {
	run := func() (*analyzer.Report, error) {
		return nil, errors.New("bad export")
	}
	w := New(run, time.Minute, nil)

	err := w.Run(context.Background())
	if err == nil {
		t.Fatal("expected error when the initial validation fails")
	}
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	run := func() (*analyzer.Report, error) {
		return reportWith(analyzer.SectionCapacity, 0, 0), nil
	}
	w := New(run, 10*time.Millisecond, func(Alert) {})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancellation")
	}
}

func TestRun_EmitsAlertsThroughCallback(t *testing.T) {
	var mu sync.Mutex
	rep := reportWith(analyzer.SectionCapacity, 0, 0)
	run := func() (*analyzer.Report, error) {
		mu.Lock()
		defer mu.Unlock()
		return rep, nil
	}

	received := make(chan Alert, 16)
	w := New(run, 10*time.Millisecond, func(a Alert) { received <- a })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Let the baseline settle, then introduce a violation.
	time.Sleep(25 * time.Millisecond)
	mu.Lock()
	rep = reportWith(analyzer.SectionCapacity, 1, 0)
	mu.Unlock()

	select {
	case a := <-received:
		if a.Level != "critical" {
			t.Errorf("expected critical alert, got %q", a.Level)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no alert received after report degraded")
	}

	cancel()
	<-done
}
