package analyzer

import (
	"fmt"
	"sort"

	"github.com/yisrose35/daily-camp-schedular-sub003/internal/camp"
)

// TeamStanding summarizes one team's games played in a league.
type TeamStanding struct {
	Team  string `json:"team"`
	Games int    `json:"games"`
}

// Rematch records a pair of teams that met repeatedly.
type Rematch struct {
	League string `json:"league"`
	TeamA  string `json:"team_a"`
	TeamB  string `json:"team_b"`
	Count  int    `json:"count"`
}

// LeagueStats is the league fairness data payload.
type LeagueStats struct {
	// Standings maps league name to teams sorted by games played (desc).
	Standings map[string][]TeamStanding `json:"standings"`

	// Rematches lists pairs that met more often than the rematch limit.
	Rematches []Rematch `json:"rematches,omitempty"`
}

// AnalyzeLeague tallies games played and head-to-head counts from every
// league matchup across all dates. A league whose most- and least-played
// teams differ by more than gameSpread games gets a warning; any pair that
// met more than rematchLimit times gets an info line.
func AnalyzeLeague(b *camp.Bundle, gameSpread, rematchLimit int) Result {
	var res Result

	games := make(map[string]map[string]int)
	pairs := make(map[string]map[string]int)

	for _, day := range b.Days {
		for _, division := range sortedKeys(day.Leagues) {
			slots := day.Leagues[division]
			idxs := make([]int, 0, len(slots))
			for idx := range slots {
				idxs = append(idxs, idx)
			}
			sort.Ints(idxs)

			for _, idx := range idxs {
				slot := slots[idx]
				league := slot.LeagueName
				if league == "" {
					league = division
				}
				for _, m := range slot.Matchups {
					if m.TeamA == "" || m.TeamB == "" {
						continue
					}
					if games[league] == nil {
						games[league] = make(map[string]int)
						pairs[league] = make(map[string]int)
					}
					games[league][m.TeamA]++
					games[league][m.TeamB]++
					pairs[league][pairKey(m.TeamA, m.TeamB)]++
				}
			}
		}
	}

	stats := LeagueStats{Standings: make(map[string][]TeamStanding, len(games))}

	for _, league := range sortedKeys(games) {
		teams := games[league]

		var maxTeam, minTeam string
		maxGames, minGames := -1, -1
		standings := make([]TeamStanding, 0, len(teams))
		for _, team := range sortedKeys(teams) {
			n := teams[team]
			standings = append(standings, TeamStanding{Team: team, Games: n})
			if maxGames < 0 || n > maxGames {
				maxTeam, maxGames = team, n
			}
			if minGames < 0 || n < minGames {
				minTeam, minGames = team, n
			}
		}
		sort.Slice(standings, func(i, j int) bool {
			if standings[i].Games != standings[j].Games {
				return standings[i].Games > standings[j].Games
			}
			return standings[i].Team < standings[j].Team
		})
		stats.Standings[league] = standings

		if maxGames-minGames > gameSpread {
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"league %q: uneven games played (%s has %d, %s has %d)",
				league, maxTeam, maxGames, minTeam, minGames))
		}

		for _, key := range sortedKeys(pairs[league]) {
			count := pairs[league][key]
			if count <= rematchLimit {
				continue
			}
			a, b := splitPairKey(key)
			res.Info = append(res.Info, fmt.Sprintf(
				"league %q: %s and %s have played each other %d times", league, a, b, count))
			stats.Rematches = append(stats.Rematches, Rematch{
				League: league, TeamA: a, TeamB: b, Count: count,
			})
		}
	}

	res.Data = stats
	return res
}

// pairKey builds an order-independent key for a pair of teams.
func pairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "\x00" + b
}

func splitPairKey(key string) (string, string) {
	for i := 0; i < len(key); i++ {
		if key[i] == 0 {
			return key[:i], key[i+1:]
		}
	}
	return key, ""
}
