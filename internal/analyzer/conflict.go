package analyzer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yisrose35/daily-camp-schedular-sub003/internal/camp"
)

// ConflictViolation describes one field shared across divisions.
type ConflictViolation struct {
	Field     string   `json:"field"`
	Date      string   `json:"date"`
	StartMin  int      `json:"start_min"`
	EndMin    int      `json:"end_min"`
	Divisions []string `json:"divisions"`
	Bunks     []string `json:"bunks"`
}

// AnalyzeCrossDivision flags fields used by more than one division at the
// same time. Unless a field is explicitly shared with everyone (sharing
// type "all"), concurrent use across divisions is never permitted, no
// matter how generous the field's numeric capacity is.
func AnalyzeCrossDivision(b *camp.Bundle) Result {
	var res Result
	var violations []ConflictViolation

	for _, day := range b.Days {
		byField := fieldUsages(b, day)
		for _, field := range sortedKeys(byField) {
			props, ok := b.Activities[field]
			if sharedWithAll(props, ok) {
				continue
			}

			for _, group := range GroupOverlapping(byField[field]) {
				divisions := distinctDivisions(group)
				if len(divisions) <= 1 {
					continue
				}
				start, end := groupWindow(group)
				bunks := make([]string, 0, len(group))
				for _, u := range group {
					bunks = append(bunks, u.Bunk)
				}

				res.Errors = append(res.Errors, fmt.Sprintf(
					"%s on %s at %s is used by multiple divisions (%s): %s",
					field, day.Date, camp.FormatRange(start, end),
					strings.Join(divisions, ", "), joinBunks(group)))
				violations = append(violations, ConflictViolation{
					Field:     field,
					Date:      day.Date,
					StartMin:  start,
					EndMin:    end,
					Divisions: divisions,
					Bunks:     bunks,
				})
			}
		}
	}

	res.Data = violations
	return res
}

// distinctDivisions returns the sorted distinct division names in a group.
// Bunks with no known division are skipped: without a division they cannot
// establish a cross-division conflict (they are reported separately by the
// structural check).
func distinctDivisions(group []Usage) []string {
	seen := make(map[string]bool)
	for _, u := range group {
		if u.Division != "" {
			seen[u.Division] = true
		}
	}
	divisions := make([]string, 0, len(seen))
	for name := range seen {
		divisions = append(divisions, name)
	}
	sort.Strings(divisions)
	return divisions
}
