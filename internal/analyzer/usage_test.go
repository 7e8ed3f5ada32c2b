package analyzer

import (
	"reflect"
	"testing"

	"github.com/yisrose35/daily-camp-schedular-sub003/internal/camp"
)

func TestFieldUsages_WindowResolution(t *testing.T) {
	b := &camp.Bundle{
		Divisions: []camp.Division{
			{Name: "Juniors", Bunks: []string{"J1", "J2"}, Times: []camp.TimeSlot{
				{StartMin: intp(540), EndMin: intp(600)},
				{StartMin: intp(600), EndMin: intp(660)},
			}},
		},
	}
	day := camp.Day{
		Date: "2024-07-01",
		Assignments: map[string][]camp.SlotRecord{
			"J1": {
				{Activity: "Soccer"},
				{Activity: "Soccer", Continuation: true},
			},
			"J2": {
				{Activity: "swim", StartMin: intp(555), EndMin: intp(585)},
				{Activity: "Free"},
			},
		},
	}

	byField := fieldUsages(b, day)

	soccer := byField["soccer"]
	if len(soccer) != 1 {
		t.Fatalf("soccer usages = %d, want 1 (continuation skipped)", len(soccer))
	}
	if soccer[0].StartMin != 540 || soccer[0].EndMin != 600 {
		t.Errorf("soccer window = %d-%d, want 540-600 from the slot index", soccer[0].StartMin, soccer[0].EndMin)
	}
	if soccer[0].Division != "Juniors" || soccer[0].Date != "2024-07-01" {
		t.Errorf("usage annotation = %+v", soccer[0])
	}

	swim := byField["swim"]
	if len(swim) != 1 || swim[0].StartMin != 555 || swim[0].EndMin != 585 {
		t.Fatalf("swim usages = %+v, want the explicit 555-585 window", swim)
	}

	if _, ok := byField["free"]; ok {
		t.Error("non-activity labels must not produce usages")
	}
}

func TestFieldUsages_SkipsLeagueTransitionAndUnresolvable(t *testing.T) {
	b := &camp.Bundle{
		Divisions: []camp.Division{
			{Name: "Juniors", Bunks: []string{"J1"}, Times: []camp.TimeSlot{
				{StartMin: intp(540), EndMin: intp(600)},
				{StartMin: intp(600), EndMin: intp(660)},
				{StartMin: intp(660), EndMin: intp(720)},
				{StartMin: nil, EndMin: intp(780)},
			}},
		},
	}
	day := camp.Day{
		Date: "2024-07-01",
		Assignments: map[string][]camp.SlotRecord{
			"J1": {
				{Activity: "Basketball", IsLeague: true},
				{Activity: "Changeover", IsTransition: true},
				{Activity: "Tennis"},
				{Activity: "Archery"}, // slot definition is missing a bound
			},
		},
	}

	byField := fieldUsages(b, day)
	if got := sortedKeys(byField); !reflect.DeepEqual(got, []string{"tennis"}) {
		t.Fatalf("fields = %v, want only tennis", got)
	}
	if len(byField["tennis"]) != 1 || byField["tennis"][0].StartMin != 660 {
		t.Errorf("tennis usages = %+v", byField["tennis"])
	}
}

func TestOrderedDayBunks(t *testing.T) {
	b := &camp.Bundle{
		Divisions: []camp.Division{
			{Name: "Juniors", Bunks: []string{"J1", "J2"}},
			{Name: "Seniors", Bunks: []string{"S1"}},
		},
	}
	day := camp.Day{
		Assignments: map[string][]camp.SlotRecord{
			"S1": {}, "J2": {}, "Z9": {}, "A0": {},
		},
	}
	got := orderedDayBunks(b, day)
	want := []string{"J2", "S1", "A0", "Z9"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("orderedDayBunks = %v, want %v", got, want)
	}
}

func TestOccurrenceCounts_LogicalOccurrences(t *testing.T) {
	days := []camp.Day{
		{
			Date: "2024-07-01",
			Assignments: map[string][]camp.SlotRecord{
				"J1": {
					{Activity: "Swim"},
					{Activity: "Swim", Continuation: true},
					{Activity: "swim"},
					{Activity: "Lunch"},
					{Activity: "Lineup", IsTransition: true},
				},
			},
		},
		{
			Date: "2024-07-02",
			Assignments: map[string][]camp.SlotRecord{
				"J1": {{Activity: "  SWIM "}},
			},
		},
	}

	counts := occurrenceCounts(days)
	if got := counts["J1"]["swim"]; got != 3 {
		t.Errorf("swim count = %d, want 3 (continuation extends, restart counts)", got)
	}
	if _, ok := counts["J1"]["lunch"]; ok {
		t.Error("lunch is a non-activity label and must not be counted")
	}
}

func TestOccurrenceDates_DistinctSorted(t *testing.T) {
	days := []camp.Day{
		{Date: "2024-07-02", Assignments: map[string][]camp.SlotRecord{"J1": {{Activity: "Swim"}, {Activity: "Swim"}}}},
		{Date: "2024-07-01", Assignments: map[string][]camp.SlotRecord{"J1": {{Activity: "Swim"}}}},
	}
	dates := occurrenceDates(days)
	want := []string{"2024-07-01", "2024-07-02"}
	if !reflect.DeepEqual(dates["J1"]["swim"], want) {
		t.Errorf("dates = %v, want %v", dates["J1"]["swim"], want)
	}
}

func TestJoinBunks(t *testing.T) {
	got := joinBunks([]Usage{
		{Bunk: "J1", Division: "Juniors"},
		{Bunk: "X1"},
	})
	if got != "J1 (Juniors), X1" {
		t.Errorf("joinBunks = %q", got)
	}
}
