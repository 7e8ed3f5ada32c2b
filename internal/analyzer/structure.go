package analyzer

import (
	"fmt"
	"strings"

	"github.com/yisrose35/daily-camp-schedular-sub003/internal/camp"
)

// SlotCountDrift records one bunk whose slot count deviates from its
// division's time-slot definitions for a date.
type SlotCountDrift struct {
	Date     string `json:"date"`
	Bunk     string `json:"bunk"`
	Division string `json:"division"`
	Got      int    `json:"got"`
	Want     int    `json:"want"`
}

// AnalyzeTimeSlots validates the time-slot structure itself: every
// division must have slot definitions somewhere (defaults or per-date
// overrides), every definition needs both bounds, each bunk must belong
// to exactly one division, and each bunk's slot count should match what
// its division defines for the date. Structural problems are fatal only
// to the item being checked, never to the run.
func AnalyzeTimeSlots(b *camp.Bundle) Result {
	var res Result
	var drifts []SlotCountDrift

	claims := make(map[string][]string)
	for _, div := range b.Divisions {
		for _, bunk := range div.Bunks {
			claims[bunk] = append(claims[bunk], div.Name)
		}
	}
	for _, bunk := range sortedKeys(claims) {
		if len(claims[bunk]) > 1 {
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"bunk %s is listed in %d divisions (%s)",
				bunk, len(claims[bunk]), strings.Join(claims[bunk], ", ")))
		}
	}

	orphans := make(map[string]bool)
	for _, day := range b.Days {
		for bunk := range day.Assignments {
			if len(claims[bunk]) == 0 {
				orphans[bunk] = true
			}
		}
	}
	for _, bunk := range sortedKeys(orphans) {
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"bunk %s appears in schedules but belongs to no division", bunk))
	}

	for _, div := range b.Divisions {
		hasTimes := len(div.Times) > 0
		if !hasTimes {
			for _, day := range b.Days {
				if len(b.TimesFor(day, div.Name)) > 0 {
					hasTimes = true
					break
				}
			}
		}
		if !hasTimes {
			res.Errors = append(res.Errors, fmt.Sprintf(
				"division %s has no time slot definitions", div.Name))
		}

		for _, i := range malformedSlots(div.Times) {
			res.Errors = append(res.Errors, fmt.Sprintf(
				"division %s, default slot %d: missing start or end time", div.Name, i+1))
		}
	}

	for _, day := range b.Days {
		for _, i := range malformedSlots(day.UnifiedTimes) {
			res.Errors = append(res.Errors, fmt.Sprintf(
				"unified times on %s, slot %d: missing start or end time", day.Date, i+1))
		}
		for _, division := range sortedKeys(day.DivisionTimes) {
			for _, i := range malformedSlots(day.DivisionTimes[division]) {
				res.Errors = append(res.Errors, fmt.Sprintf(
					"division %s on %s, slot %d: missing start or end time", division, day.Date, i+1))
			}
		}

		for _, bunk := range orderedDayBunks(b, day) {
			div := b.DivisionOf(bunk)
			if div == nil {
				continue
			}
			want := len(b.TimesFor(day, div.Name))
			if want == 0 {
				continue
			}
			got := len(day.Assignments[bunk])
			if got != want {
				res.Warnings = append(res.Warnings, fmt.Sprintf(
					"bunk %s has %d slots on %s but %s defines %d",
					bunk, got, day.Date, div.Name, want))
				drifts = append(drifts, SlotCountDrift{
					Date:     day.Date,
					Bunk:     bunk,
					Division: div.Name,
					Got:      got,
					Want:     want,
				})
			}
		}
	}

	res.Data = drifts
	return res
}

// malformedSlots returns the indexes of definitions missing either bound.
func malformedSlots(times []camp.TimeSlot) []int {
	var bad []int
	for i, slot := range times {
		if slot.StartMin == nil || slot.EndMin == nil {
			bad = append(bad, i)
		}
	}
	return bad
}
