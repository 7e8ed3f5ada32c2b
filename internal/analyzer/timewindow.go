package analyzer

import (
	"fmt"

	"github.com/yisrose35/daily-camp-schedular-sub003/internal/camp"
)

// WindowViolation records one slot that breaks a field's time rules.
type WindowViolation struct {
	Field    string `json:"field"`
	Date     string `json:"date"`
	Bunk     string `json:"bunk"`
	StartMin int    `json:"start_min"`
	EndMin   int    `json:"end_min"`

	// Kind is "unavailable" for use inside a blocked window and
	// "outside_available" for use not contained in any allowed window.
	Kind string `json:"kind"`
}

// AnalyzeTimeWindows checks configured time rules for every field usage.
// Overlapping an Unavailable window is an error. When a field has any
// Available windows, each usage must fit entirely inside one of them or it
// draws a warning. Rules missing a bound are skipped.
func AnalyzeTimeWindows(b *camp.Bundle) Result {
	var res Result
	var violations []WindowViolation

	for _, day := range b.Days {
		byField := fieldUsages(b, day)
		for _, field := range sortedKeys(byField) {
			props, ok := b.Activities[field]
			if !ok || len(props.TimeRules) == 0 {
				continue
			}
			available, unavailable := splitRules(props.TimeRules)

			for _, u := range byField[field] {
				for _, rule := range unavailable {
					if camp.Overlaps(u.StartMin, u.EndMin, *rule.StartMin, *rule.EndMin) {
						res.Errors = append(res.Errors, fmt.Sprintf(
							"%s on %s: bunk %s at %s overlaps unavailable window %s",
							field, u.Date, u.Bunk,
							camp.FormatRange(u.StartMin, u.EndMin),
							camp.FormatRange(*rule.StartMin, *rule.EndMin)))
						violations = append(violations, WindowViolation{
							Field: field, Date: u.Date, Bunk: u.Bunk,
							StartMin: u.StartMin, EndMin: u.EndMin,
							Kind: "unavailable",
						})
					}
				}

				if len(available) == 0 {
					continue
				}
				contained := false
				for _, rule := range available {
					if camp.Contains(*rule.StartMin, *rule.EndMin, u.StartMin, u.EndMin) {
						contained = true
						break
					}
				}
				if !contained {
					res.Warnings = append(res.Warnings, fmt.Sprintf(
						"%s on %s: bunk %s at %s falls outside the available windows",
						field, u.Date, u.Bunk,
						camp.FormatRange(u.StartMin, u.EndMin)))
					violations = append(violations, WindowViolation{
						Field: field, Date: u.Date, Bunk: u.Bunk,
						StartMin: u.StartMin, EndMin: u.EndMin,
						Kind: "outside_available",
					})
				}
			}
		}
	}

	res.Data = violations
	return res
}

// splitRules separates well-formed time rules by type, dropping rules that
// are missing a bound.
func splitRules(rules []camp.TimeRule) (available, unavailable []camp.TimeRule) {
	for _, rule := range rules {
		if rule.StartMin == nil || rule.EndMin == nil {
			continue
		}
		switch rule.Type {
		case camp.RuleAvailable:
			available = append(available, rule)
		case camp.RuleUnavailable:
			unavailable = append(unavailable, rule)
		}
	}
	return available, unavailable
}
