package analyzer

import (
	"sort"
	"strings"

	"github.com/yisrose35/daily-camp-schedular-sub003/internal/camp"
)

// orderedDayBunks returns the bunks appearing in a day's assignments in a
// stable order: divisions in configured order with their bunks in schedule
// order, then any bunks belonging to no known division, sorted.
func orderedDayBunks(b *camp.Bundle, day camp.Day) []string {
	var ordered []string
	seen := make(map[string]bool)
	for _, div := range b.Divisions {
		for _, bunk := range div.Bunks {
			if _, ok := day.Assignments[bunk]; ok && !seen[bunk] {
				ordered = append(ordered, bunk)
				seen[bunk] = true
			}
		}
	}

	var orphans []string
	for bunk := range day.Assignments {
		if !seen[bunk] {
			orphans = append(orphans, bunk)
		}
	}
	sort.Strings(orphans)
	return append(ordered, orphans...)
}

// fieldUsages builds one day's per-field usage lists for the grouping
// checks. Continuation, league, and transition slots are excluded, as are
// non-activity labels. Each usage is annotated with the slot's time window:
// an explicit record override wins, otherwise the window comes from the
// division's slot definition at the same index. Slots with no resolvable
// window are skipped, not errored.
func fieldUsages(b *camp.Bundle, day camp.Day) map[string][]Usage {
	byField := make(map[string][]Usage)

	for _, bunk := range orderedDayBunks(b, day) {
		division := ""
		if div := b.DivisionOf(bunk); div != nil {
			division = div.Name
		}
		times := b.TimesFor(day, division)

		for idx, rec := range day.Assignments[bunk] {
			if rec.Continuation || rec.IsLeague || rec.IsTransition || camp.IsIgnored(rec.Activity) {
				continue
			}

			var start, end int
			switch {
			case rec.StartMin != nil && rec.EndMin != nil:
				start, end = *rec.StartMin, *rec.EndMin
			case idx < len(times) && times[idx].StartMin != nil && times[idx].EndMin != nil:
				start, end = *times[idx].StartMin, *times[idx].EndMin
			default:
				continue
			}

			field := camp.NormalizeName(rec.Activity)
			byField[field] = append(byField[field], Usage{
				Bunk:     bunk,
				Division: division,
				Field:    field,
				Date:     day.Date,
				StartMin: start,
				EndMin:   end,
			})
		}
	}
	return byField
}

// occurrenceCounts recomputes ground-truth logical occurrences per bunk and
// activity: continuation and transition slots never start an occurrence,
// and non-activity labels are excluded.
func occurrenceCounts(days []camp.Day) map[string]map[string]int {
	counts := make(map[string]map[string]int)
	for _, day := range days {
		for bunk, records := range day.Assignments {
			for _, rec := range records {
				if rec.Continuation || rec.IsTransition || camp.IsIgnored(rec.Activity) {
					continue
				}
				if counts[bunk] == nil {
					counts[bunk] = make(map[string]int)
				}
				counts[bunk][camp.NormalizeName(rec.Activity)]++
			}
		}
	}
	return counts
}

// occurrenceDates collects, per bunk and activity, the sorted distinct
// dates on which the activity appears at least once.
func occurrenceDates(days []camp.Day) map[string]map[string][]string {
	seen := make(map[string]map[string]map[string]bool)
	for _, day := range days {
		for bunk, records := range day.Assignments {
			for _, rec := range records {
				if rec.Continuation || rec.IsTransition || camp.IsIgnored(rec.Activity) {
					continue
				}
				activity := camp.NormalizeName(rec.Activity)
				if seen[bunk] == nil {
					seen[bunk] = make(map[string]map[string]bool)
				}
				if seen[bunk][activity] == nil {
					seen[bunk][activity] = make(map[string]bool)
				}
				seen[bunk][activity][day.Date] = true
			}
		}
	}

	dates := make(map[string]map[string][]string, len(seen))
	for bunk, activities := range seen {
		dates[bunk] = make(map[string][]string, len(activities))
		for activity, set := range activities {
			list := make([]string, 0, len(set))
			for date := range set {
				list = append(list, date)
			}
			sort.Strings(list)
			dates[bunk][activity] = list
		}
	}
	return dates
}

// sortedKeys returns a map's keys in sorted order for stable iteration.
func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// joinBunks renders a usage group's members as "J1 (Juniors), S1 (Seniors)".
func joinBunks(group []Usage) string {
	parts := make([]string, 0, len(group))
	for _, u := range group {
		if u.Division == "" {
			parts = append(parts, u.Bunk)
			continue
		}
		parts = append(parts, u.Bunk+" ("+u.Division+")")
	}
	return strings.Join(parts, ", ")
}
