// Package output provides styled terminal rendering helpers for campwatch.
package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// The campwatch palette. Findings map straight onto it: violations red,
// fairness concerns amber, clean results green.
var (
	ColorPrimary = lipgloss.Color("#4db6ac")
	ColorSuccess = lipgloss.Color("#81c784")
	ColorError   = lipgloss.Color("#e57373")
	ColorWarning = lipgloss.Color("#ffd54f")
	ColorMuted   = lipgloss.Color("#9e9e9e")
)

// Reusable styles. Render helpers take these as they are; SetNoColor swaps
// them for plain equivalents.
var (
	// StyleHeader is used for section headings.
	StyleHeader = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)

	// StyleSuccess is used for clean checks and improving trends.
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)

	// StyleError is used for rule violations.
	StyleError = lipgloss.NewStyle().Foreground(ColorError)

	// StyleWarning is used for fairness and quality concerns.
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)

	// StyleMuted is used for secondary text.
	StyleMuted = lipgloss.NewStyle().Foreground(ColorMuted)

	// StyleBold is used for emphasized text.
	StyleBold = lipgloss.NewStyle().Bold(true)

	// StyleLabel is used for summary labels.
	StyleLabel = lipgloss.NewStyle().Width(24)

	// StyleValue is used for summary values.
	StyleValue = lipgloss.NewStyle().Bold(true).Width(12)
)

// noColor tracks whether color output is disabled.
var noColor bool

// init honors the NO_COLOR convention and disables styling when stdout is
// not a terminal. The --no-color flag handles explicit opt-out.
func init() {
	if os.Getenv("NO_COLOR") != "" {
		SetNoColor(true)
		return
	}
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		SetNoColor(true)
	}
}

// SetNoColor disables color output globally by reassigning the package
// styles to unstyled renderers. Layout-bearing styles keep their widths.
// Passing false only clears the flag; original styles are not restored.
func SetNoColor(disabled bool) {
	noColor = disabled
	if !disabled {
		return
	}
	plain := lipgloss.NewStyle()
	StyleHeader = plain
	StyleSuccess = plain
	StyleError = plain
	StyleWarning = plain
	StyleMuted = plain
	StyleBold = plain
	StyleLabel = plain.Width(24)
	StyleValue = plain.Width(12)
}

// IsNoColor returns whether color output is currently disabled.
func IsNoColor() bool {
	return noColor
}
