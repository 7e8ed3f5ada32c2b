package analyzer

// Penalty weights for the quality score. Errors bite harder than warnings;
// info lines are free.
const (
	errorPenalty   = 8
	warningPenalty = 2
)

// QualityScore condenses a report into a 0-100 number suitable for trend
// tracking: 100 minus a penalty per error and a smaller one per warning,
// floored at zero.
func QualityScore(r *Report) int {
	score := 100 - errorPenalty*r.Summary.Errors - warningPenalty*r.Summary.Warnings
	if score < 0 {
		return 0
	}
	return score
}
