package analyzer

import (
	"fmt"

	"github.com/yisrose35/daily-camp-schedular-sub003/internal/camp"
)

// HistoryDrift records one stored-vs-calculated count mismatch.
type HistoryDrift struct {
	Bunk       string `json:"bunk"`
	Activity   string `json:"activity"`
	Stored     int    `json:"stored"`
	Calculated int    `json:"calculated"`
}

// AnalyzeHistory reconciles the externally maintained occurrence cache
// against a from-scratch recount of the slot records. Drift larger than
// the tolerance is a warning naming both values; any drift at all yields a
// single info suggesting the cache be rebuilt. The recount skips
// continuation and transition slots and non-activity labels, so a cache
// that tracked those will show drift here.
func AnalyzeHistory(b *camp.Bundle, tolerance int) Result {
	var res Result

	calculated := occurrenceCounts(b.Days)
	stored := normalizeHistory(b.History)

	bunks := make(map[string]bool)
	for bunk := range calculated {
		bunks[bunk] = true
	}
	for bunk := range stored {
		bunks[bunk] = true
	}

	var drifts []HistoryDrift
	for _, bunk := range sortedKeys(bunks) {
		activities := make(map[string]bool)
		for a := range calculated[bunk] {
			activities[a] = true
		}
		for a := range stored[bunk] {
			activities[a] = true
		}

		for _, activity := range sortedKeys(activities) {
			have := stored[bunk][activity]
			want := calculated[bunk][activity]
			if have == want {
				continue
			}
			drifts = append(drifts, HistoryDrift{
				Bunk: bunk, Activity: activity, Stored: have, Calculated: want,
			})

			diff := have - want
			if diff < 0 {
				diff = -diff
			}
			if diff > tolerance {
				res.Warnings = append(res.Warnings, fmt.Sprintf(
					"bunk %s, %q: stored count %d but schedules show %d",
					bunk, activity, have, want))
			}
		}
	}

	if len(drifts) > 0 {
		res.Info = append(res.Info, fmt.Sprintf(
			"history cache drifted on %d bunk/activity pairs; consider rebuilding it", len(drifts)))
	}

	res.Data = drifts
	return res
}

// normalizeHistory re-keys the cache by normalized activity name, summing
// counts that collapse onto the same key and dropping non-activity labels.
func normalizeHistory(h camp.HistoryCounts) map[string]map[string]int {
	out := make(map[string]map[string]int, len(h))
	for bunk, counts := range h {
		for activity, n := range counts {
			if camp.IsIgnored(activity) {
				continue
			}
			if out[bunk] == nil {
				out[bunk] = make(map[string]int)
			}
			out[bunk][camp.NormalizeName(activity)] += n
		}
	}
	return out
}
