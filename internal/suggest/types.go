// Package suggest turns validation findings into ranked schedule
// recommendations.
package suggest

import "github.com/yisrose35/daily-camp-schedular-sub003/internal/analyzer"

// Priority orders suggestions; lower values surface first.
const (
	PriorityCritical = iota + 1
	PriorityHigh
	PriorityMedium
	PriorityLow
)

// Suggestion is one actionable schedule improvement.
type Suggestion struct {
	Category    string  `json:"category"`
	Priority    int     `json:"priority"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImpactScore float64 `json:"impact_score"`
}

// Rule examines a validation report and produces zero or more suggestions.
// Rules must tolerate missing sections: a section that failed mid-run is
// simply absent from the report.
type Rule func(rep *analyzer.Report) []Suggestion
