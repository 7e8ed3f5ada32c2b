package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders aligned columns with a styled header row. Cells may carry
// ANSI styling; widths are computed from printable characters only.
type Table struct {
	headers []string
	rows    [][]string
	widths  []int
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = visualLen(h)
	}
	return &Table{
		headers: headers,
		widths:  widths,
	}
}

// AddRow appends a row. Missing cells render empty; extra cells are
// dropped. Column widths grow to fit.
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(t.headers))
	for i := range t.headers {
		if i < len(values) {
			row[i] = values[i]
		}
		if w := visualLen(row[i]); w > t.widths[i] {
			t.widths[i] = w
		}
	}
	t.rows = append(t.rows, row)
}

// joinCells pads each cell to its column width, applies render when given,
// and joins the cells with a two-space gutter.
func (t *Table) joinCells(cells []string, render func(string) string) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		padded := pad(cell, t.widths[i])
		if render != nil {
			padded = render(padded)
		}
		parts[i] = padded
	}
	return strings.Join(parts, "  ")
}

// Render returns the formatted table: header row, separator rule, then
// data rows, one line each.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)

	rules := make([]string, len(t.widths))
	for i, w := range t.widths {
		rules[i] = strings.Repeat("─", w)
	}

	var sb strings.Builder
	sb.WriteString(t.joinCells(t.headers, func(s string) string { return headerStyle.Render(s) }))
	sb.WriteString("\n")
	sb.WriteString(t.joinCells(rules, func(s string) string { return StyleMuted.Render(s) }))
	sb.WriteString("\n")
	for _, row := range t.rows {
		sb.WriteString(t.joinCells(row, nil))
		sb.WriteString("\n")
	}
	return sb.String()
}

// String implements fmt.Stringer.
func (t *Table) String() string {
	return t.Render()
}

// Print writes the table to stdout.
func (t *Table) Print() {
	fmt.Print(t.Render())
}

// pad right-pads a string to the given visual width.
func pad(s string, width int) string {
	gap := width - visualLen(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// visualLen returns the number of printable characters in s, skipping ANSI
// escape sequences so styled cells align with plain ones.
func visualLen(s string) int {
	n := 0
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			n++
		}
	}
	return n
}
