package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Table is a plain aligned text table for non-interactive output.
type Table struct {
	Headers []string
	Rows    [][]string
}

func (t Table) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(t.Headers) == 0 {
		return "No data"
	}
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = ansi.StringWidth(h)
	}
	for _, row := range t.Rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], ansi.StringWidth(row[i]))
		}
	}
	format := func(cells []string) string {
		parts := make([]string, len(widths))
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			parts[i] = padRightANSI(cell, widths[i])
		}
		return ansi.Truncate(strings.TrimRight(strings.Join(parts, "  "), " "), width, "…")
	}
	lines := []string{format(t.Headers)}
	for _, row := range t.Rows {
		if len(lines) >= height {
			break
		}
		lines = append(lines, format(row))
	}
	return strings.Join(lines, "\n")
}
