package camp

import (
	"reflect"
	"testing"
)

func intp(v int) *int { return &v }

// testBundle builds a two-division bundle used by the filter/lookup tests.
func testBundle() *Bundle {
	return &Bundle{
		Days: []Day{
			{
				Date: "2024-07-01",
				Assignments: map[string][]SlotRecord{
					"J1": {{Activity: "Swim"}, {Activity: "Free"}},
					"S1": {{Activity: "Basketball"}},
				},
				Leagues: map[string]map[int]LeagueSlot{
					"Seniors": {0: {LeagueName: "Hoops"}},
				},
			},
			{
				Date: "2024-07-03",
				Assignments: map[string][]SlotRecord{
					"J1": {{Activity: "Archery"}},
				},
				DivisionTimes: map[string][]TimeSlot{
					"Juniors": {{StartMin: intp(600), EndMin: intp(660)}},
				},
			},
			{
				Date: "2024-07-05",
				Assignments: map[string][]SlotRecord{
					"S1": {{Activity: "Swim"}},
				},
			},
		},
		Divisions: []Division{
			{Name: "Juniors", Bunks: []string{"J1", "J2"}, Times: []TimeSlot{{StartMin: intp(540), EndMin: intp(600)}}},
			{Name: "Seniors", Bunks: []string{"S1"}, Times: []TimeSlot{{StartMin: intp(540), EndMin: intp(600)}}},
		},
		Activities: map[string]ActivityProperties{
			"swim":       {},
			"basketball": {},
		},
		History: HistoryCounts{
			"J1": {"swim": 1},
			"S1": {"basketball": 2},
		},
	}
}

func TestDivisionOf(t *testing.T) {
	b := testBundle()
	if div := b.DivisionOf("J2"); div == nil || div.Name != "Juniors" {
		t.Errorf("DivisionOf(J2) = %v, want Juniors", div)
	}
	if div := b.DivisionOf("S1"); div == nil || div.Name != "Seniors" {
		t.Errorf("DivisionOf(S1) = %v, want Seniors", div)
	}
	if div := b.DivisionOf("X9"); div != nil {
		t.Errorf("DivisionOf(X9) = %v, want nil", div)
	}
}

func TestActivityFor_NormalizesLookup(t *testing.T) {
	b := testBundle()
	if _, ok := b.ActivityFor("  BASKETBALL "); !ok {
		t.Error("ActivityFor should normalize before lookup")
	}
	if _, ok := b.ActivityFor("kayaking"); ok {
		t.Error("ActivityFor(kayaking) should miss")
	}
}

func TestKnownActivities(t *testing.T) {
	b := testBundle()
	got := b.KnownActivities()
	// Configured: swim, basketball. Seen in assignments: archery (Free is
	// ignored). Sorted union:
	want := []string{"archery", "basketball", "swim"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("KnownActivities = %v, want %v", got, want)
	}
}

func TestTimesFor_ResolutionOrder(t *testing.T) {
	b := testBundle()

	// Day without overrides falls back to division defaults.
	times := b.TimesFor(b.Days[0], "Juniors")
	if len(times) != 1 || *times[0].StartMin != 540 {
		t.Errorf("default times = %+v, want division defaults", times)
	}

	// Per-date division override wins.
	times = b.TimesFor(b.Days[1], "juniors")
	if len(times) != 1 || *times[0].StartMin != 600 {
		t.Errorf("override times = %+v, want per-date override", times)
	}

	// Unified times beat defaults when present.
	day := Day{Date: "2024-07-09", UnifiedTimes: []TimeSlot{{StartMin: intp(480), EndMin: intp(540)}}}
	times = b.TimesFor(day, "Seniors")
	if len(times) != 1 || *times[0].StartMin != 480 {
		t.Errorf("unified times = %+v, want unified override", times)
	}

	if times := b.TimesFor(b.Days[0], "Nonexistent"); times != nil {
		t.Errorf("TimesFor unknown division = %+v, want nil", times)
	}
}

func TestFilter_DateRangeInclusive(t *testing.T) {
	b := testBundle()
	got := b.Filter("2024-07-01", "2024-07-03", nil)
	if len(got.Days) != 2 {
		t.Fatalf("got %d days, want 2", len(got.Days))
	}
	if got.Days[0].Date != "2024-07-01" || got.Days[1].Date != "2024-07-03" {
		t.Errorf("filtered dates = %s, %s", got.Days[0].Date, got.Days[1].Date)
	}

	open := b.Filter("", "2024-07-01", nil)
	if len(open.Days) != 1 {
		t.Errorf("open start: got %d days, want 1", len(open.Days))
	}
}

func TestFilter_DivisionAllowList(t *testing.T) {
	b := testBundle()
	got := b.Filter("", "", []string{"juniors"}) // case-insensitive

	if len(got.Divisions) != 1 || got.Divisions[0].Name != "Juniors" {
		t.Fatalf("divisions = %+v, want only Juniors", got.Divisions)
	}
	for _, day := range got.Days {
		if _, ok := day.Assignments["S1"]; ok {
			t.Errorf("day %s still has Seniors bunk S1", day.Date)
		}
		if _, ok := day.Leagues["Seniors"]; ok {
			t.Errorf("day %s still has Seniors leagues", day.Date)
		}
	}
	if _, ok := got.History["S1"]; ok {
		t.Error("history should drop bunks outside the allow-list")
	}
	if got.History["J1"]["swim"] != 1 {
		t.Error("history should keep allowed bunks")
	}
}

func TestFilter_EmptyKeepsEverything(t *testing.T) {
	b := testBundle()
	got := b.Filter("", "", nil)
	if len(got.Days) != len(b.Days) || len(got.Divisions) != len(b.Divisions) {
		t.Error("empty filter should keep all days and divisions")
	}
}
