package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Box frames content in a rounded border with the title set into the top
// edge. Content is clipped to the rows inside the border.
type Box struct {
	Title   string
	Content string
}

func (b Box) Render(width, height int) string {
	if width < 4 || height < 2 {
		return ""
	}
	border := lipgloss.RoundedBorder()
	inner := width - 2
	label := ansi.Truncate(" "+b.Title+" ", inner-1, "")
	top := border.TopLeft + border.Top + label +
		strings.Repeat(border.Top, max(0, inner-1-ansi.StringWidth(label))) + border.TopRight

	rows := height - 2
	body := lipgloss.NewStyle().
		Border(border, false, true, true, true).
		Padding(0, 1).
		Width(inner).
		Height(rows).
		Render(strings.Join(splitToLines(b.Content, rows), "\n"))
	return top + "\n" + body
}
