package camp

import "strings"

// nonActivityLabels are schedule entries that fill a slot without being a
// real activity. They are excluded from occurrence counts, coverage, and
// history reconciliation.
var nonActivityLabels = map[string]bool{
	"free":       true,
	"free play":  true,
	"lunch":      true,
	"snack":      true,
	"dismissal":  true,
	"lineup":     true,
	"rest hour":  true,
	"transition": true,
}

// NormalizeName canonicalizes an activity or field name for comparison:
// trimmed, lowercased, inner whitespace collapsed to single spaces.
// Returns an empty string for blank input.
func NormalizeName(s string) string {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 {
		return ""
	}
	return strings.Join(fields, " ")
}

// IsIgnored reports whether a raw schedule entry should be excluded from
// activity counting: blank entries and the non-activity labels above.
func IsIgnored(name string) bool {
	n := NormalizeName(name)
	return n == "" || nonActivityLabels[n]
}
