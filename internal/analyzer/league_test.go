package analyzer

import (
	"reflect"
	"testing"

	"github.com/yisrose35/daily-camp-schedular-sub003/internal/camp"
)

func leagueDay(date string, slot camp.LeagueSlot) camp.Day {
	return camp.Day{
		Date: date,
		Leagues: map[string]map[int]camp.LeagueSlot{
			"Seniors": {0: slot},
		},
	}
}

func TestAnalyzeLeague_SpreadAndRematches(t *testing.T) {
	var days []camp.Day
	for _, date := range []string{"2024-07-01", "2024-07-02", "2024-07-03", "2024-07-04"} {
		days = append(days, leagueDay(date, camp.LeagueSlot{
			LeagueName: "Hoops",
			Matchups:   []camp.Matchup{{TeamA: "Sharks", TeamB: "Jets", Field: "Court 1"}},
		}))
	}
	days[0].Leagues["Seniors"][1] = camp.LeagueSlot{
		LeagueName: "Hoops",
		Matchups:   []camp.Matchup{{TeamA: "Bears", TeamB: "Cubs", Field: "Court 2"}},
	}

	res := AnalyzeLeague(&camp.Bundle{Days: days}, 2, 2)

	// Sharks and Jets have 4 games, Bears and Cubs 1: spread 3 > 2.
	if len(res.Warnings) != 1 {
		t.Fatalf("warnings = %v, want the spread warning", res.Warnings)
	}
	wantWarn := `league "Hoops": uneven games played (Jets has 4, Bears has 1)`
	if res.Warnings[0] != wantWarn {
		t.Errorf("warning = %q\nwant     %q", res.Warnings[0], wantWarn)
	}

	// The Sharks/Jets pair met 4 times, over the rematch limit of 2.
	if len(res.Info) != 1 {
		t.Fatalf("info = %v, want the rematch note", res.Info)
	}
	wantInfo := `league "Hoops": Jets and Sharks have played each other 4 times`
	if res.Info[0] != wantInfo {
		t.Errorf("info = %q\nwant  %q", res.Info[0], wantInfo)
	}

	stats := res.Data.(LeagueStats)
	standings := stats.Standings["Hoops"]
	wantOrder := []TeamStanding{
		{Team: "Jets", Games: 4},
		{Team: "Sharks", Games: 4},
		{Team: "Bears", Games: 1},
		{Team: "Cubs", Games: 1},
	}
	if !reflect.DeepEqual(standings, wantOrder) {
		t.Errorf("standings = %+v\nwant      %+v", standings, wantOrder)
	}
	if len(stats.Rematches) != 1 || stats.Rematches[0].Count != 4 {
		t.Errorf("rematches = %+v", stats.Rematches)
	}
}

func TestAnalyzeLeague_BalancedLeagueIsSilent(t *testing.T) {
	days := []camp.Day{
		leagueDay("2024-07-01", camp.LeagueSlot{
			LeagueName: "Hoops",
			Matchups: []camp.Matchup{
				{TeamA: "Sharks", TeamB: "Jets"},
				{TeamA: "Bears", TeamB: "Cubs"},
			},
		}),
		leagueDay("2024-07-02", camp.LeagueSlot{
			LeagueName: "Hoops",
			Matchups: []camp.Matchup{
				{TeamA: "Sharks", TeamB: "Bears"},
				{TeamA: "Jets", TeamB: "Cubs"},
			},
		}),
	}
	res := AnalyzeLeague(&camp.Bundle{Days: days}, 2, 2)
	if len(res.Warnings) != 0 || len(res.Info) != 0 {
		t.Errorf("result = %+v, want silence for a balanced league", res)
	}
}

func TestAnalyzeLeague_UnnamedLeagueUsesDivision(t *testing.T) {
	day := leagueDay("2024-07-01", camp.LeagueSlot{
		Matchups: []camp.Matchup{{TeamA: "A", TeamB: "B"}},
	})
	res := AnalyzeLeague(&camp.Bundle{Days: []camp.Day{day}}, 2, 2)
	stats := res.Data.(LeagueStats)
	if _, ok := stats.Standings["Seniors"]; !ok {
		t.Errorf("standings = %v, want the division name as fallback", sortedKeys(stats.Standings))
	}
}

func TestAnalyzeLeague_SkipsIncompleteMatchups(t *testing.T) {
	day := leagueDay("2024-07-01", camp.LeagueSlot{
		LeagueName: "Hoops",
		Matchups:   []camp.Matchup{{TeamA: "Sharks"}},
	})
	res := AnalyzeLeague(&camp.Bundle{Days: []camp.Day{day}}, 2, 2)
	stats := res.Data.(LeagueStats)
	if len(stats.Standings) != 0 {
		t.Errorf("standings = %+v, want none from a one-sided matchup", stats.Standings)
	}
}

func TestPairKey_OrderIndependent(t *testing.T) {
	if pairKey("Jets", "Sharks") != pairKey("Sharks", "Jets") {
		t.Error("pairKey must not depend on argument order")
	}
	a, b := splitPairKey(pairKey("Sharks", "Jets"))
	if a != "Jets" || b != "Sharks" {
		t.Errorf("splitPairKey = %q, %q", a, b)
	}
}
