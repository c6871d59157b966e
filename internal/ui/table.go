package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders aligned columns without borders. Cell widths are computed
// with lipgloss so styled (ANSI-colored) cells align correctly.
type Table struct {
	headers []string
	rows    [][]string
}

// NewTable creates a table with the given column headers
func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

// AddRow appends a row. Missing cells render empty; extra cells are dropped.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
	}
	t.rows = append(t.rows, row)
}

// Empty reports whether the table has no rows
func (t *Table) Empty() bool {
	return len(t.rows) == 0
}

// String renders the table with two-space gutters and muted headers
func (t *Table) String() string {
	if len(t.headers) == 0 {
		return ""
	}
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	for i, h := range t.headers {
		b.WriteString(Muted.Render(h))
		if i < len(t.headers)-1 {
			b.WriteString(pad(h, widths[i]))
			b.WriteString("  ")
		}
	}
	b.WriteString("\n")
	for _, row := range t.rows {
		for i, cell := range row {
			b.WriteString(cell)
			if i < len(row)-1 {
				b.WriteString(pad(cell, widths[i]))
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// pad returns the spaces needed to bring cell up to width
func pad(cell string, width int) string {
	n := width - lipgloss.Width(cell)
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
