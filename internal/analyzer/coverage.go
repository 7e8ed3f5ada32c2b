package analyzer

import (
	"fmt"
	"strings"

	"github.com/yisrose35/daily-camp-schedular-sub003/internal/camp"
)

// maxUntriedListed caps how many untried activities a warning names.
const maxUntriedListed = 10

// CoverageEntry is one bunk's activity coverage over the analyzed range.
type CoverageEntry struct {
	Bunk     string  `json:"bunk"`
	Division string  `json:"division"`
	Tried    int     `json:"tried"`
	Known    int     `json:"known"`
	Fraction float64 `json:"fraction"`
}

// AnalyzeCoverage computes, per bunk, the fraction of all known activities
// tried at least once. Bunks below the minimum get a warning naming up to
// ten untried activities.
func AnalyzeCoverage(b *camp.Bundle, minimum float64) Result {
	var res Result

	all := b.KnownActivities()
	if len(all) == 0 {
		return res
	}
	counts := occurrenceCounts(b.Days)

	var entries []CoverageEntry
	for _, div := range b.Divisions {
		for _, bunk := range div.Bunks {
			tried := 0
			var untried []string
			for _, activity := range all {
				if counts[bunk][activity] > 0 {
					tried++
				} else {
					untried = append(untried, activity)
				}
			}

			fraction := float64(tried) / float64(len(all))
			entries = append(entries, CoverageEntry{
				Bunk:     bunk,
				Division: div.Name,
				Tried:    tried,
				Known:    len(all),
				Fraction: fraction,
			})

			if fraction < minimum {
				listed := untried
				if len(listed) > maxUntriedListed {
					listed = listed[:maxUntriedListed]
				}
				res.Warnings = append(res.Warnings, fmt.Sprintf(
					"bunk %s has tried %d of %d activities (%.0f%%); untried: %s",
					bunk, tried, len(all), fraction*100, strings.Join(listed, ", ")))
			}
		}
	}

	res.Data = entries
	return res
}
