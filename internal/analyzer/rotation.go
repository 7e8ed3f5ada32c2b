package analyzer

import (
	"fmt"
	"math"
	"sort"

	"github.com/yisrose35/daily-camp-schedular-sub003/internal/camp"
)

// ScoreFunc ranks how suitable an activity is as a bunk's next pick; lower
// is better. Returning math.Inf(1) marks the activity as currently
// disallowed for that bunk. The scheduler's rotation engine supplies the
// real implementation; campwatch only audits its output.
type ScoreFunc func(bunk, activity, division string, allActivities []string) float64

// topViable is how many best-scoring activities the audit records per bunk.
const topViable = 5

// RotationEntry is one bunk's rotation audit.
type RotationEntry struct {
	Bunk       string   `json:"bunk"`
	Division   string   `json:"division"`
	Top        []string `json:"top"`
	Disallowed []string `json:"disallowed,omitempty"`
}

// AnalyzeRotation audits the external rotation scorer: for every bunk it
// ranks all known activities by score ascending, records the top viable
// options and the disallowed set, and warns when more than disallowedShare
// of all activities are disallowed for a bunk. A nil scorer skips the audit
// with a single warning.
func AnalyzeRotation(b *camp.Bundle, score ScoreFunc, disallowedShare float64) Result {
	var res Result
	if score == nil {
		res.Warnings = append(res.Warnings, "rotation scorer unavailable; scoring audit skipped")
		return res
	}

	all := b.KnownActivities()
	if len(all) == 0 {
		return res
	}

	var entries []RotationEntry
	for _, div := range b.Divisions {
		for _, bunk := range div.Bunks {
			entry := RotationEntry{Bunk: bunk, Division: div.Name}

			type scored struct {
				activity string
				score    float64
			}
			var viable []scored
			for _, activity := range all {
				s := score(bunk, activity, div.Name, all)
				if math.IsInf(s, 1) {
					entry.Disallowed = append(entry.Disallowed, activity)
					continue
				}
				viable = append(viable, scored{activity, s})
			}

			sort.Slice(viable, func(i, j int) bool {
				if viable[i].score != viable[j].score {
					return viable[i].score < viable[j].score
				}
				return viable[i].activity < viable[j].activity
			})
			for i := 0; i < len(viable) && i < topViable; i++ {
				entry.Top = append(entry.Top, viable[i].activity)
			}

			if float64(len(entry.Disallowed))/float64(len(all)) > disallowedShare {
				res.Warnings = append(res.Warnings, fmt.Sprintf(
					"bunk %s has %d of %d activities disallowed by the rotation engine",
					bunk, len(entry.Disallowed), len(all)))
			}
			entries = append(entries, entry)
		}
	}

	res.Data = entries
	return res
}

// NewFrequencyScorer builds a ScoreFunc from the historical counts cache:
// the fewer times a bunk has done an activity, the better (lower) it
// scores as the next pick. Nothing is ever disallowed.
func NewFrequencyScorer(history camp.HistoryCounts) ScoreFunc {
	return func(bunk, activity, division string, all []string) float64 {
		return float64(history[bunk][camp.NormalizeName(activity)])
	}
}
