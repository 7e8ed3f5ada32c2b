package app

import (
	"strings"
	"testing"

	"github.com/yisrose35/daily-camp-schedular-sub003/internal/analyzer"
	"github.com/yisrose35/daily-camp-schedular-sub003/internal/camp"
	"github.com/yisrose35/daily-camp-schedular-sub003/internal/config"
	"github.com/yisrose35/daily-camp-schedular-sub003/internal/output"
)

func TestSubcommandsRegistered(t *testing.T) {
	want := []string{"validate", "days", "track", "watch", "suggest", "doctor", "version"}

	registered := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}

	for _, name := range want {
		if !registered[name] {
			t.Errorf("command %q not registered on root", name)
		}
	}
}

func TestApplyOutputConfig(t *testing.T) {
	defer func() {
		flagJSON = false
		flagNoColor = false
	}()

	cfg := &config.Config{Output: config.Output{Color: false, JSON: true}}
	applyOutputConfig(cfg)

	if !output.IsNoColor() {
		t.Error("output.color: false should disable color")
	}
	if !flagJSON {
		t.Error("output.json: true should enable JSON output")
	}
}

func TestResolveScorer(t *testing.T) {
	history := camp.HistoryCounts{"Bunk A": {"archery": 3}}

	tests := []struct {
		name    string
		scorer  string
		wantNil bool
		wantErr bool
	}{
		{name: "empty disables", scorer: "", wantNil: true},
		{name: "none disables", scorer: "none", wantNil: true},
		{name: "frequency enables", scorer: "frequency", wantNil: false},
		{name: "unknown errors", scorer: "zigzag", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := resolveScorer(tt.scorer, history)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), "zigzag") {
					t.Errorf("error should name the bad scorer, got %q", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantNil && fn != nil {
				t.Error("expected nil scorer")
			}
			if !tt.wantNil && fn == nil {
				t.Error("expected non-nil scorer")
			}
		})
	}
}

func TestResolveScorer_FrequencyUsesHistory(t *testing.T) {
	history := camp.HistoryCounts{"Bunk A": {"archery": 3}}
	fn, err := resolveScorer("frequency", history)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := fn("Bunk A", "archery", "Juniors", []string{"archery"}); got != 3 {
		t.Errorf("score = %v, want 3", got)
	}
}

func TestValidationVerdict(t *testing.T) {
	tests := []struct {
		name    string
		summary analyzer.Summary
		runErr  string
		strict  bool
		wantErr string
	}{
		{name: "clean passes", summary: analyzer.Summary{}},
		{name: "warnings pass by default", summary: analyzer.Summary{Warnings: 3}},
		{name: "errors fail", summary: analyzer.Summary{Errors: 2}, wantErr: "2 violation(s)"},
		{name: "strict fails on warnings", summary: analyzer.Summary{Warnings: 3}, strict: true, wantErr: "3 warning(s)"},
		{name: "strict clean passes", strict: true},
		{name: "aborted run fails", runErr: "capacity: boom", wantErr: "validation incomplete"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := &analyzer.Report{Summary: tt.summary, Error: tt.runErr}
			err := validationVerdict(rep, tt.strict)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}
