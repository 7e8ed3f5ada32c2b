package camp

import "sort"

// DivisionOf returns the first division whose bunk list contains the given
// bunk, or nil if no division claims it. Division order is the configured
// order, so membership lookups are deterministic even when a bunk appears
// in more than one division (itself a reportable problem).
func (b *Bundle) DivisionOf(bunk string) *Division {
	for i := range b.Divisions {
		for _, id := range b.Divisions[i].Bunks {
			if id == bunk {
				return &b.Divisions[i]
			}
		}
	}
	return nil
}

// ActivityFor looks up activity properties by raw name, normalizing first.
func (b *Bundle) ActivityFor(name string) (ActivityProperties, bool) {
	props, ok := b.Activities[NormalizeName(name)]
	return props, ok
}

// KnownActivities returns the sorted set of real activity names: every
// configured activity plus every non-ignored activity appearing in any
// day's assignments. Names are normalized.
func (b *Bundle) KnownActivities() []string {
	seen := make(map[string]bool)
	for name := range b.Activities {
		seen[name] = true
	}
	for _, day := range b.Days {
		for _, records := range day.Assignments {
			for _, rec := range records {
				if IsIgnored(rec.Activity) {
					continue
				}
				seen[NormalizeName(rec.Activity)] = true
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TimesFor resolves the time-slot definitions in effect for a division on
// a given day: the day's per-division override wins, then the day's
// unified times, then the division's defaults.
func (b *Bundle) TimesFor(day Day, division string) []TimeSlot {
	want := NormalizeName(division)
	for name, times := range day.DivisionTimes {
		if NormalizeName(name) == want && len(times) > 0 {
			return times
		}
	}
	if len(day.UnifiedTimes) > 0 {
		return day.UnifiedTimes
	}
	for i := range b.Divisions {
		if NormalizeName(b.Divisions[i].Name) == want {
			return b.Divisions[i].Times
		}
	}
	return nil
}

// Filter returns a copy of the bundle restricted to an inclusive ISO date
// range and an optional division allow-list. Empty bounds leave that side
// of the range open; an empty allow-list keeps every division. Activity
// configuration is shared, not copied; treat both bundles as read-only.
func (b *Bundle) Filter(start, end string, divisions []string) *Bundle {
	allowed := make(map[string]bool, len(divisions))
	for _, name := range divisions {
		allowed[NormalizeName(name)] = true
	}
	divisionOK := func(name string) bool {
		return len(allowed) == 0 || allowed[NormalizeName(name)]
	}

	out := &Bundle{
		Activities:  b.Activities,
		History:     b.History,
		SkippedDays: b.SkippedDays,
	}

	bunkOK := make(map[string]bool)
	for _, div := range b.Divisions {
		if !divisionOK(div.Name) {
			continue
		}
		out.Divisions = append(out.Divisions, div)
		for _, bunk := range div.Bunks {
			bunkOK[bunk] = true
		}
	}

	if len(allowed) > 0 {
		filtered := make(HistoryCounts, len(bunkOK))
		for bunk, counts := range b.History {
			if bunkOK[bunk] {
				filtered[bunk] = counts
			}
		}
		out.History = filtered
	}

	for _, day := range b.Days {
		if start != "" && day.Date < start {
			continue
		}
		if end != "" && day.Date > end {
			continue
		}
		if len(allowed) == 0 {
			out.Days = append(out.Days, day)
			continue
		}

		kept := Day{
			Date:         day.Date,
			Rainy:        day.Rainy,
			UnifiedTimes: day.UnifiedTimes,
		}
		for bunk, records := range day.Assignments {
			if bunkOK[bunk] {
				if kept.Assignments == nil {
					kept.Assignments = make(map[string][]SlotRecord)
				}
				kept.Assignments[bunk] = records
			}
		}
		for division, slots := range day.Leagues {
			if divisionOK(division) {
				if kept.Leagues == nil {
					kept.Leagues = make(map[string]map[int]LeagueSlot)
				}
				kept.Leagues[division] = slots
			}
		}
		for division, times := range day.DivisionTimes {
			if divisionOK(division) {
				if kept.DivisionTimes == nil {
					kept.DivisionTimes = make(map[string][]TimeSlot)
				}
				kept.DivisionTimes[division] = times
			}
		}
		out.Days = append(out.Days, kept)
	}

	return out
}
