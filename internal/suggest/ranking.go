package suggest

import "sort"

// RankSuggestions sorts suggestions by priority (critical first), then
// ImpactScore in descending order, then title for a stable order.
func RankSuggestions(suggestions []Suggestion) []Suggestion {
	sorted := make([]Suggestion, len(suggestions))
	copy(sorted, suggestions)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Priority != sorted[j].Priority {
			return sorted[i].Priority < sorted[j].Priority
		}
		if sorted[i].ImpactScore != sorted[j].ImpactScore {
			return sorted[i].ImpactScore > sorted[j].ImpactScore
		}
		return sorted[i].Title < sorted[j].Title
	})
	return sorted
}

// ComputeImpact scores a suggestion as
// (affected * frequency * minutesSaved) / effort, where affected counts the
// slots or bunks touched, frequency is how often the issue bites (0.0-1.0),
// minutesSaved estimates staff minutes recovered per occurrence, and effort
// estimates the minutes needed to apply the change. Non-positive effort
// scores 0.
func ComputeImpact(affected int, frequency float64, minutesSaved float64, effort float64) float64 {
	if effort <= 0 {
		return 0
	}
	return (float64(affected) * frequency * minutesSaved) / effort
}
