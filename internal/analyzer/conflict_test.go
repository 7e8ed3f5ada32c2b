package analyzer

import (
	"strings"
	"testing"

	"github.com/yisrose35/daily-camp-schedular-sub003/internal/camp"
)

func conflictBundle() *camp.Bundle {
	times := []camp.TimeSlot{{StartMin: intp(540), EndMin: intp(600)}}
	return &camp.Bundle{
		Days: []camp.Day{{
			Date: "2024-07-01",
			Assignments: map[string][]camp.SlotRecord{
				"J1": {{Activity: "Field A"}},
				"S1": {{Activity: "Field A"}},
				"J2": {{Activity: "Gym"}},
				"S2": {{Activity: "Gym"}},
			},
		}},
		Divisions: []camp.Division{
			{Name: "Juniors", Bunks: []string{"J1", "J2"}, Times: times},
			{Name: "Seniors", Bunks: []string{"S1", "S2"}, Times: times},
		},
		Activities: map[string]camp.ActivityProperties{
			// Plenty of numeric capacity: the division split alone must trip it.
			"field a": {SharableWith: &camp.SharingRule{Type: camp.SharingCustom, Capacity: 4}},
			"gym":     {SharableWith: &camp.SharingRule{Type: camp.SharingAll}},
		},
	}
}

func TestAnalyzeCrossDivision_FlagsSharedField(t *testing.T) {
	res := AnalyzeCrossDivision(conflictBundle())
	if len(res.Errors) != 1 {
		t.Fatalf("errors = %v, want 1", res.Errors)
	}
	want := "field a on 2024-07-01 at 9:00 AM-10:00 AM is used by multiple divisions (Juniors, Seniors): J1 (Juniors), S1 (Seniors)"
	if res.Errors[0] != want {
		t.Errorf("error = %q\nwant    %q", res.Errors[0], want)
	}

	violations := res.Data.([]ConflictViolation)
	if len(violations) != 1 || len(violations[0].Divisions) != 2 {
		t.Errorf("violations = %+v", violations)
	}
}

func TestAnalyzeCrossDivision_SharedWithAllExempt(t *testing.T) {
	res := AnalyzeCrossDivision(conflictBundle())
	for _, e := range res.Errors {
		if strings.Contains(e, "gym") {
			t.Errorf("gym is shared with all and must not conflict: %s", e)
		}
	}
}

func TestAnalyzeCrossDivision_SameDivisionIsNotAConflict(t *testing.T) {
	b := &camp.Bundle{
		Days: []camp.Day{{
			Date: "2024-07-01",
			Assignments: map[string][]camp.SlotRecord{
				"J1": {{Activity: "Field A"}},
				"J2": {{Activity: "Field A"}},
			},
		}},
		Divisions: []camp.Division{
			{Name: "Juniors", Bunks: []string{"J1", "J2"}, Times: []camp.TimeSlot{{StartMin: intp(540), EndMin: intp(600)}}},
		},
	}
	if res := AnalyzeCrossDivision(b); len(res.Errors) != 0 {
		t.Errorf("errors = %v, want none within one division", res.Errors)
	}
}

func TestDistinctDivisions_SkipsUnknown(t *testing.T) {
	got := distinctDivisions([]Usage{
		{Bunk: "S1", Division: "Seniors"},
		{Bunk: "X1"},
		{Bunk: "J1", Division: "Juniors"},
	})
	if len(got) != 2 || got[0] != "Juniors" || got[1] != "Seniors" {
		t.Errorf("distinctDivisions = %v, want [Juniors Seniors]", got)
	}
}
