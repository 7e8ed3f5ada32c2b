package analyzer

import (
	"fmt"
	"time"

	"github.com/yisrose35/daily-camp-schedular-sub003/internal/camp"
)

// StreakEntry records one over-limit run of consecutive days.
type StreakEntry struct {
	Bunk     string `json:"bunk"`
	Activity string `json:"activity"`
	Length   int    `json:"length"`
	Start    string `json:"start"`
	End      string `json:"end"`
}

// AnalyzeStreaks finds activities a bunk repeated on too many consecutive
// calendar dates. Consecutive means adjacent dates on the calendar, not
// adjacent entries: a skipped day breaks the run even when the activity
// resumes afterwards. Runs longer than limit produce a warning with the
// exact date range.
func AnalyzeStreaks(b *camp.Bundle, limit int) Result {
	var res Result
	var entries []StreakEntry

	dates := occurrenceDates(b.Days)
	for _, bunk := range sortedKeys(dates) {
		for _, activity := range sortedKeys(dates[bunk]) {
			length, start, end := longestRun(dates[bunk][activity])
			if length <= limit {
				continue
			}
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"bunk %s did %q %d days in a row (%s through %s)",
				bunk, activity, length, start, end))
			entries = append(entries, StreakEntry{
				Bunk:     bunk,
				Activity: activity,
				Length:   length,
				Start:    start,
				End:      end,
			})
		}
	}

	res.Data = entries
	return res
}

// longestRun returns the longest run of consecutive calendar dates in a
// sorted distinct date list, along with the run's first and last date.
func longestRun(dates []string) (int, string, string) {
	if len(dates) == 0 {
		return 0, "", ""
	}

	best, cur := 1, 1
	bestStart, bestEnd := dates[0], dates[0]
	curStart := dates[0]

	for i := 1; i < len(dates); i++ {
		if nextDay(dates[i-1]) == dates[i] {
			cur++
		} else {
			cur = 1
			curStart = dates[i]
		}
		if cur > best {
			best = cur
			bestStart, bestEnd = curStart, dates[i]
		}
	}
	return best, bestStart, bestEnd
}

// nextDay returns the ISO date one calendar day after d, or "" when d does
// not parse (which then reads as a gap).
func nextDay(d string) string {
	t, err := time.Parse("2006-01-02", d)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, 1).Format("2006-01-02")
}
