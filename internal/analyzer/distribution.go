package analyzer

import (
	"fmt"

	"github.com/yisrose35/daily-camp-schedular-sub003/internal/camp"
)

// AnalyzeDistribution checks how evenly each division spreads activities
// across its bunks. For every activity a division's bunks did, the gap
// between the most- and least-served bunks must stay within the spread
// threshold. One info names the most-scheduled activity overall, and the
// full division → activity → bunk count matrix is attached as data.
func AnalyzeDistribution(b *camp.Bundle, spread int) Result {
	var res Result

	counts := occurrenceCounts(b.Days)

	present := make(map[string]bool)
	for _, day := range b.Days {
		for bunk := range day.Assignments {
			present[bunk] = true
		}
	}

	matrix := make(map[string]map[string]map[string]int)

	for _, div := range b.Divisions {
		var bunks []string
		for _, bunk := range div.Bunks {
			if present[bunk] {
				bunks = append(bunks, bunk)
			}
		}
		if len(bunks) == 0 {
			continue
		}

		activities := make(map[string]bool)
		for _, bunk := range bunks {
			for activity := range counts[bunk] {
				activities[activity] = true
			}
		}
		if len(activities) == 0 {
			continue
		}

		byActivity := make(map[string]map[string]int, len(activities))
		for _, activity := range sortedKeys(activities) {
			row := make(map[string]int, len(bunks))
			most, least := bunks[0], bunks[0]
			for _, bunk := range bunks {
				n := counts[bunk][activity]
				row[bunk] = n
				if n > row[most] {
					most = bunk
				}
				if n < row[least] {
					least = bunk
				}
			}
			byActivity[activity] = row

			if row[most]-row[least] > spread {
				res.Warnings = append(res.Warnings, fmt.Sprintf(
					"%q is unevenly distributed in %s: %s has it %d times while %s has it %d",
					activity, div.Name, most, row[most], least, row[least]))
			}
		}
		matrix[div.Name] = byActivity
	}

	totals := make(map[string]int)
	for _, byActivity := range counts {
		for activity, n := range byActivity {
			totals[activity] += n
		}
	}
	if len(totals) > 0 {
		top := ""
		for _, activity := range sortedKeys(totals) {
			if top == "" || totals[activity] > totals[top] {
				top = activity
			}
		}
		res.Info = append(res.Info, fmt.Sprintf(
			"most scheduled activity: %q (%d occurrences)", top, totals[top]))
	}

	res.Data = matrix
	return res
}
