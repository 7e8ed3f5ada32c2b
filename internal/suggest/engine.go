package suggest

import "github.com/yisrose35/daily-camp-schedular-sub003/internal/analyzer"

// Engine runs all registered rules against a validation report and collects
// the resulting suggestions.
type Engine struct {
	rules []Rule
}

// NewEngine creates a new suggest engine with all built-in rules registered.
func NewEngine() *Engine {
	return &Engine{
		rules: []Rule{
			CapacityHotspots,
			CrossDivisionSharing,
			RainyDayAlternatives,
			SlotCountRepairs,
			TimeWindowMoves,
			RebuildHistoryCache,
			LeagueRebalance,
			StreakVariety,
			CoverageExpansion,
			DistributionImbalance,
		},
	}
}

// Run executes all registered rules against the given report and returns
// the collected suggestions sorted by priority, then impact score.
func (e *Engine) Run(rep *analyzer.Report) []Suggestion {
	var all []Suggestion
	for _, rule := range e.rules {
		results := rule(rep)
		all = append(all, results...)
	}
	return RankSuggestions(all)
}
