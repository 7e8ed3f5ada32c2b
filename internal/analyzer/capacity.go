package analyzer

import (
	"fmt"

	"github.com/yisrose35/daily-camp-schedular-sub003/internal/camp"
)

// unlimitedCapacity is the sentinel limit for fields shared with everyone.
const unlimitedCapacity = 1 << 30

// defaultCustomCapacity applies when a "custom" rule omits its capacity.
const defaultCustomCapacity = 2

// resolveCapacity returns the concurrent-bunk limit for a field: "all" is
// unbounded, "custom" uses the configured capacity (default 2), the legacy
// sharable flag means two, and everything else, unconfigured fields
// included, is exclusive.
func resolveCapacity(props camp.ActivityProperties, configured bool) int {
	if !configured {
		return 1
	}
	if props.SharableWith != nil {
		switch props.SharableWith.Type {
		case camp.SharingAll:
			return unlimitedCapacity
		case camp.SharingCustom:
			if props.SharableWith.Capacity > 0 {
				return props.SharableWith.Capacity
			}
			return defaultCustomCapacity
		default:
			// "none" and unrecognized types are exclusive.
			return 1
		}
	}
	if props.Sharable != nil && *props.Sharable {
		return 2
	}
	return 1
}

// sharedWithAll reports whether a field is globally sharable.
func sharedWithAll(props camp.ActivityProperties, configured bool) bool {
	return configured && props.SharableWith != nil && props.SharableWith.Type == camp.SharingAll
}

// CapacityViolation describes one over-capacity overlap group.
type CapacityViolation struct {
	Field    string   `json:"field"`
	Date     string   `json:"date"`
	StartMin int      `json:"start_min"`
	EndMin   int      `json:"end_min"`
	Capacity int      `json:"capacity"`
	Bunks    []string `json:"bunks"`
}

// AnalyzeCapacity checks every field's concurrent use against its sharing
// configuration. Overlapping usages are clustered per field and date; any
// cluster larger than the field's resolved capacity is an error.
func AnalyzeCapacity(b *camp.Bundle) Result {
	var res Result
	var violations []CapacityViolation

	for _, day := range b.Days {
		byField := fieldUsages(b, day)
		for _, field := range sortedKeys(byField) {
			props, ok := b.Activities[field]
			capacity := resolveCapacity(props, ok)

			for _, group := range GroupOverlapping(byField[field]) {
				if len(group) <= capacity {
					continue
				}
				start, end := groupWindow(group)
				bunks := make([]string, 0, len(group))
				for _, u := range group {
					bunks = append(bunks, u.Bunk)
				}

				res.Errors = append(res.Errors, fmt.Sprintf(
					"%s is over capacity on %s at %s: %d bunks (limit %d): %s",
					field, day.Date, camp.FormatRange(start, end), len(group), capacity, joinBunks(group)))
				violations = append(violations, CapacityViolation{
					Field:    field,
					Date:     day.Date,
					StartMin: start,
					EndMin:   end,
					Capacity: capacity,
					Bunks:    bunks,
				})
			}
		}
	}

	res.Data = violations
	return res
}
