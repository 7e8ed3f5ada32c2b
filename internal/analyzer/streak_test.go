package analyzer

import (
	"testing"

	"github.com/yisrose35/daily-camp-schedular-sub003/internal/camp"
)

func streakDays(bunk, activity string, dates ...string) []camp.Day {
	days := make([]camp.Day, 0, len(dates))
	for _, d := range dates {
		days = append(days, camp.Day{
			Date: d,
			Assignments: map[string][]camp.SlotRecord{
				bunk: {{Activity: activity}},
			},
		})
	}
	return days
}

func TestAnalyzeStreaks_ConsecutiveDatesWarn(t *testing.T) {
	b := &camp.Bundle{Days: streakDays("J1", "Swim", "2024-07-01", "2024-07-02", "2024-07-03")}
	res := AnalyzeStreaks(b, 2)

	if len(res.Warnings) != 1 {
		t.Fatalf("warnings = %v, want 1", res.Warnings)
	}
	want := `bunk J1 did "swim" 3 days in a row (2024-07-01 through 2024-07-03)`
	if res.Warnings[0] != want {
		t.Errorf("warning = %q\nwant     %q", res.Warnings[0], want)
	}

	entries := res.Data.([]StreakEntry)
	if len(entries) != 1 {
		t.Fatalf("entries = %+v, want 1", entries)
	}
	e := entries[0]
	if e.Length != 3 || e.Start != "2024-07-01" || e.End != "2024-07-03" {
		t.Errorf("entry = %+v", e)
	}
}

func TestAnalyzeStreaks_GapBreaksRun(t *testing.T) {
	b := &camp.Bundle{Days: streakDays("J1", "Swim",
		"2024-07-01", "2024-07-02", "2024-07-04", "2024-07-05")}
	if res := AnalyzeStreaks(b, 2); len(res.Warnings) != 0 {
		t.Errorf("warnings = %v, want none: the gap resets the run", res.Warnings)
	}
}

func TestAnalyzeStreaks_RepeatsWithinOneDayCountOnce(t *testing.T) {
	days := streakDays("J1", "Swim", "2024-07-02", "2024-07-03")
	days = append(days, camp.Day{
		Date: "2024-07-01",
		Assignments: map[string][]camp.SlotRecord{
			"J1": {{Activity: "Swim"}, {Activity: "Swim"}},
		},
	})
	b := &camp.Bundle{Days: days}

	res := AnalyzeStreaks(b, 2)
	if len(res.Warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", res.Warnings)
	}
	entries := res.Data.([]StreakEntry)
	if entries[0].Length != 3 {
		t.Errorf("length = %d, want 3 (dates, not slots)", entries[0].Length)
	}
}

func TestAnalyzeStreaks_AtLimitIsSilent(t *testing.T) {
	b := &camp.Bundle{Days: streakDays("J1", "Swim", "2024-07-01", "2024-07-02")}
	if res := AnalyzeStreaks(b, 2); len(res.Warnings) != 0 {
		t.Errorf("warnings = %v, want none at the limit", res.Warnings)
	}
}

func TestLongestRun(t *testing.T) {
	cases := []struct {
		name      string
		dates     []string
		wantLen   int
		wantStart string
		wantEnd   string
	}{
		{"empty", nil, 0, "", ""},
		{"single", []string{"2024-07-01"}, 1, "2024-07-01", "2024-07-01"},
		{"later run wins", []string{"2024-07-01", "2024-07-03", "2024-07-04"}, 2, "2024-07-03", "2024-07-04"},
		{"month boundary", []string{"2024-07-30", "2024-07-31", "2024-08-01"}, 3, "2024-07-30", "2024-08-01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			length, start, end := longestRun(tc.dates)
			if length != tc.wantLen || start != tc.wantStart || end != tc.wantEnd {
				t.Errorf("longestRun = %d (%s..%s), want %d (%s..%s)",
					length, start, end, tc.wantLen, tc.wantStart, tc.wantEnd)
			}
		})
	}
}
