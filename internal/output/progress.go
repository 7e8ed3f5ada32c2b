package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// scoreStyle maps a quality score to its bar color: green from 70, amber
// from 40, red below.
func scoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 70:
		return StyleSuccess
	case score >= 40:
		return StyleWarning
	default:
		return StyleError
	}
}

// ScoreBar renders a 0-100 schedule quality score as a filled bar with a
// numeric label, e.g. "████████░░ 80/100". A non-positive width falls back
// to 20 columns.
func ScoreBar(score, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := min(max(score*width/100, 0), width)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	label := StyleMuted.Render(fmt.Sprintf("%d/100", score))
	return scoreStyle(score).Render(bar) + " " + label
}

// TrendArrow renders a count delta between two runs: up arrow for growth,
// down arrow for decline, a dash for no change. higherIsBetter selects
// which direction counts as an improvement (score up, finding counts down).
func TrendArrow(delta int, higherIsBetter bool) string {
	if delta == 0 {
		return StyleMuted.Render("─")
	}
	arrow := fmt.Sprintf("▼ %d", delta)
	if delta > 0 {
		arrow = fmt.Sprintf("▲ +%d", delta)
	}
	if (delta > 0) == higherIsBetter {
		return StyleSuccess.Render(arrow)
	}
	return StyleError.Render(arrow)
}

// Section renders a section heading over a horizontal rule, preceded by a
// blank line.
func Section(title string) string {
	rule := strings.Repeat("─", 66)
	return "\n " + StyleHeader.Render(title) + "\n " + StyleMuted.Render(rule)
}
