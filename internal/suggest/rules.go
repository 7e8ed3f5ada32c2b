package suggest

import (
	"fmt"

	"github.com/yisrose35/daily-camp-schedular-sub003/internal/analyzer"
)

// CapacityHotspots fires when overlapping bunks exceed a field's capacity.
func CapacityHotspots(rep *analyzer.Report) []Suggestion {
	var suggestions []Suggestion

	sec, ok := rep.Sections[analyzer.SectionCapacity]
	if !ok {
		return suggestions
	}
	violations, _ := sec.Data.([]analyzer.CapacityViolation)
	if len(violations) == 0 {
		return suggestions
	}

	perField := make(map[string]int)
	for _, v := range violations {
		perField[v.Field]++
	}
	worst := ""
	for field, n := range perField {
		if worst == "" || n > perField[worst] || (n == perField[worst] && field < worst) {
			worst = field
		}
	}

	suggestions = append(suggestions, Suggestion{
		Category: "capacity",
		Priority: PriorityCritical,
		Title:    "Resolve field capacity hotspots",
		Description: fmt.Sprintf(
			"%d overlapping groups exceed field capacity; %q is the worst offender with %d. "+
				"Raise its sharing capacity if the field genuinely fits more bunks at once, "+
				"otherwise stagger the colliding periods.",
			len(violations), worst, perField[worst],
		),
		ImpactScore: ComputeImpact(len(violations), 1.0, 10.0, 10.0),
	})

	return suggestions
}

// CrossDivisionSharing fires when divisions collide on a field that is not
// marked shared-with-everyone.
func CrossDivisionSharing(rep *analyzer.Report) []Suggestion {
	var suggestions []Suggestion

	sec, ok := rep.Sections[analyzer.SectionCrossDivision]
	if !ok {
		return suggestions
	}
	violations, _ := sec.Data.([]analyzer.ConflictViolation)
	if len(violations) == 0 {
		return suggestions
	}

	fields := make(map[string]bool)
	for _, v := range violations {
		fields[v.Field] = true
	}

	suggestions = append(suggestions, Suggestion{
		Category: "conflicts",
		Priority: PriorityCritical,
		Title:    "Separate division field time",
		Description: fmt.Sprintf(
			"%d slots put more than one division on the same field at the same time "+
				"(%d fields involved). Mark fields that are deliberately shared as "+
				"shared-with-everyone; shift one division's period everywhere else.",
			len(violations), len(fields),
		),
		ImpactScore: ComputeImpact(len(violations), 1.0, 10.0, 10.0),
	})

	return suggestions
}

// RainyDayAlternatives fires when outdoor fields were used on rainy days,
// and separately when no rainy-day backup activities exist at all.
func RainyDayAlternatives(rep *analyzer.Report) []Suggestion {
	var suggestions []Suggestion

	sec, ok := rep.Sections[analyzer.SectionWeather]
	if !ok {
		return suggestions
	}
	stats, _ := sec.Data.(analyzer.WeatherStats)

	if len(sec.Errors) > 0 {
		suggestions = append(suggestions, Suggestion{
			Category: "weather",
			Priority: PriorityHigh,
			Title:    "Add indoor alternatives for rainy days",
			Description: fmt.Sprintf(
				"%d outdoor slots landed on rainy days. Swap them for one of the %d indoor "+
					"fields, or mark the fields rainy-day-available if they actually hold up "+
					"in rain.",
				len(sec.Errors), stats.IndoorFields,
			),
			ImpactScore: ComputeImpact(len(sec.Errors), 1.0, 10.0, 10.0),
		})
	}

	if len(stats.RainyDates) > 0 && stats.RainyOnly == 0 {
		suggestions = append(suggestions, Suggestion{
			Category: "weather",
			Priority: PriorityLow,
			Title:    "Configure rainy-day-only activities",
			Description: fmt.Sprintf(
				"The range includes %d rainy days but no activity is marked rainy-day-only. "+
					"A small pool of indoor backups makes wet-day reshuffles one swap instead "+
					"of a rebuild.",
				len(stats.RainyDates),
			),
			ImpactScore: ComputeImpact(len(stats.RainyDates), 0.5, 15.0, 20.0),
		})
	}

	return suggestions
}

// SlotCountRepairs fires on structural time-slot problems and on bunks
// whose slot counts drift from their division's definitions.
func SlotCountRepairs(rep *analyzer.Report) []Suggestion {
	var suggestions []Suggestion

	sec, ok := rep.Sections[analyzer.SectionTimeSlots]
	if !ok {
		return suggestions
	}

	if len(sec.Errors) > 0 {
		suggestions = append(suggestions, Suggestion{
			Category: "structure",
			Priority: PriorityCritical,
			Title:    "Repair time-slot definitions",
			Description: fmt.Sprintf(
				"%d structural problems in the time-slot definitions (missing bounds or "+
					"divisions with no slots at all). Checks that resolve slot times skip "+
					"these entries, so fix the definitions first and re-validate.",
				len(sec.Errors),
			),
			ImpactScore: ComputeImpact(len(sec.Errors), 1.0, 15.0, 10.0),
		})
	}

	drifts, _ := sec.Data.([]analyzer.SlotCountDrift)
	if len(drifts) > 0 {
		first := drifts[0]
		suggestions = append(suggestions, Suggestion{
			Category: "structure",
			Priority: PriorityHigh,
			Title:    "Reconcile bunk slot counts",
			Description: fmt.Sprintf(
				"%d bunk-days carry a different number of periods than their division "+
					"defines (first: %s on %s has %d, %s defines %d). Regenerate those days "+
					"or update the division's slot definitions.",
				len(drifts), first.Bunk, first.Date, first.Got, first.Division, first.Want,
			),
			ImpactScore: ComputeImpact(len(drifts), 0.9, 5.0, 10.0),
		})
	}

	return suggestions
}

// TimeWindowMoves fires when slots land in blocked field windows or outside
// the allowed ones.
func TimeWindowMoves(rep *analyzer.Report) []Suggestion {
	var suggestions []Suggestion

	sec, ok := rep.Sections[analyzer.SectionTimeWindows]
	if !ok {
		return suggestions
	}
	violations, _ := sec.Data.([]analyzer.WindowViolation)
	if len(violations) == 0 {
		return suggestions
	}

	blocked := 0
	for _, v := range violations {
		if v.Kind == "unavailable" {
			blocked++
		}
	}
	outside := len(violations) - blocked

	priority := PriorityMedium
	if blocked > 0 {
		priority = PriorityHigh
	}

	suggestions = append(suggestions, Suggestion{
		Category: "windows",
		Priority: priority,
		Title:    "Move slots into allowed field windows",
		Description: fmt.Sprintf(
			"%d slots overlap blocked field windows and %d fall outside the allowed ones. "+
				"Shift these periods into each field's open windows, or update the rules if "+
				"the real-world constraint has changed.",
			blocked, outside,
		),
		ImpactScore: ComputeImpact(len(violations), 0.9, 8.0, 10.0),
	})

	return suggestions
}

// RebuildHistoryCache fires when stored occurrence counts disagree with the
// schedules themselves.
func RebuildHistoryCache(rep *analyzer.Report) []Suggestion {
	var suggestions []Suggestion

	sec, ok := rep.Sections[analyzer.SectionHistory]
	if !ok {
		return suggestions
	}
	drifts, _ := sec.Data.([]analyzer.HistoryDrift)
	if len(drifts) == 0 {
		return suggestions
	}

	priority := PriorityLow
	if len(sec.Warnings) > 0 {
		priority = PriorityHigh
	}

	suggestions = append(suggestions, Suggestion{
		Category: "history",
		Priority: priority,
		Title:    "Rebuild the activity history cache",
		Description: fmt.Sprintf(
			"%d stored occurrence counts disagree with the schedules (%d beyond tolerance). "+
				"Rotation fairness decisions read these counts, so regenerate the cache from "+
				"the day files before trusting the next generated schedule.",
			len(drifts), len(sec.Warnings),
		),
		ImpactScore: ComputeImpact(len(drifts), 1.0, 5.0, 10.0),
	})

	return suggestions
}

// LeagueRebalance fires when leagues have uneven games played, and
// separately when the same pairs keep meeting.
func LeagueRebalance(rep *analyzer.Report) []Suggestion {
	var suggestions []Suggestion

	sec, ok := rep.Sections[analyzer.SectionLeague]
	if !ok {
		return suggestions
	}
	stats, _ := sec.Data.(analyzer.LeagueStats)

	if len(sec.Warnings) > 0 {
		suggestions = append(suggestions, Suggestion{
			Category: "league",
			Priority: PriorityHigh,
			Title:    "Rebalance league games played",
			Description: fmt.Sprintf(
				"%d of %d leagues have an uneven games-played spread. Schedule makeup games "+
					"for the trailing teams before adding new matchups, or standings will "+
					"reflect opportunity instead of performance.",
				len(sec.Warnings), len(stats.Standings),
			),
			ImpactScore: ComputeImpact(len(sec.Warnings), 1.0, 10.0, 15.0),
		})
	}

	if len(stats.Rematches) > 0 {
		top := stats.Rematches[0]
		for _, r := range stats.Rematches[1:] {
			if r.Count > top.Count {
				top = r
			}
		}
		suggestions = append(suggestions, Suggestion{
			Category: "league",
			Priority: PriorityMedium,
			Title:    "Vary league pairings",
			Description: fmt.Sprintf(
				"%d team pairs have met more often than the rematch limit; %s and %s have "+
					"already played %d times. Rotate the pairing order so every combination "+
					"gets its turn.",
				len(stats.Rematches), top.TeamA, top.TeamB, top.Count,
			),
			ImpactScore: ComputeImpact(len(stats.Rematches), 0.8, 5.0, 10.0),
		})
	}

	return suggestions
}

// StreakVariety fires when bunks repeat an activity on too many consecutive
// days.
func StreakVariety(rep *analyzer.Report) []Suggestion {
	var suggestions []Suggestion

	sec, ok := rep.Sections[analyzer.SectionStreaks]
	if !ok {
		return suggestions
	}
	entries, _ := sec.Data.([]analyzer.StreakEntry)
	if len(entries) == 0 {
		return suggestions
	}

	longest := entries[0]
	for _, e := range entries[1:] {
		if e.Length > longest.Length {
			longest = e
		}
	}

	suggestions = append(suggestions, Suggestion{
		Category: "variety",
		Priority: PriorityMedium,
		Title:    "Break up repeated activities",
		Description: fmt.Sprintf(
			"%d runs exceed the streak limit; the longest is %s doing %q for %d straight "+
				"days (%s through %s). Spacing repeats out keeps campers from burning out "+
				"on an activity.",
			len(entries), longest.Bunk, longest.Activity, longest.Length,
			longest.Start, longest.End,
		),
		ImpactScore: ComputeImpact(len(entries), 0.8, 3.0, 5.0),
	})

	return suggestions
}

// CoverageExpansion fires when bunks have tried too small a share of the
// known activities.
func CoverageExpansion(rep *analyzer.Report) []Suggestion {
	var suggestions []Suggestion

	sec, ok := rep.Sections[analyzer.SectionCoverage]
	if !ok || len(sec.Warnings) == 0 {
		return suggestions
	}
	entries, _ := sec.Data.([]analyzer.CoverageEntry)

	desc := fmt.Sprintf(
		"%d bunks have tried less than the required share of activities. "+
			"Slot untried activities into their next open periods.",
		len(sec.Warnings),
	)
	if len(entries) > 0 {
		lowest := entries[0]
		for _, e := range entries[1:] {
			if e.Fraction < lowest.Fraction {
				lowest = e
			}
		}
		desc = fmt.Sprintf(
			"%d bunks have tried less than the required share of activities; %s has "+
				"touched just %d of %d. Slot untried activities into their next open "+
				"periods.",
			len(sec.Warnings), lowest.Bunk, lowest.Tried, lowest.Known,
		)
	}

	suggestions = append(suggestions, Suggestion{
		Category:    "coverage",
		Priority:    PriorityMedium,
		Title:       "Widen activity coverage",
		Description: desc,
		ImpactScore: ComputeImpact(len(sec.Warnings), 0.7, 5.0, 10.0),
	})

	return suggestions
}

// DistributionImbalance fires when an activity is spread unevenly across
// the bunks of a division.
func DistributionImbalance(rep *analyzer.Report) []Suggestion {
	var suggestions []Suggestion

	sec, ok := rep.Sections[analyzer.SectionDistribution]
	if !ok || len(sec.Warnings) == 0 {
		return suggestions
	}

	suggestions = append(suggestions, Suggestion{
		Category: "fairness",
		Priority: PriorityLow,
		Title:    "Even out activity distribution",
		Description: fmt.Sprintf(
			"%d activity/division pairs are spread unevenly across bunks. Prefer the "+
				"under-served bunks the next time those activities come up; the imbalance "+
				"compounds over a session.",
			len(sec.Warnings),
		),
		ImpactScore: ComputeImpact(len(sec.Warnings), 0.5, 3.0, 5.0),
	})

	return suggestions
}
