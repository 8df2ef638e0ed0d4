package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const handleGlyph = "━━━━━"

// BorderForRadius picks the panel border for a corner radius in cells.
// Terminals only have square and rounded corners, so anything from half a
// cell up renders rounded.
func BorderForRadius(r float64) lipgloss.Border {
	if math.Round(r) >= 1 {
		return lipgloss.RoundedBorder()
	}
	return lipgloss.NormalBorder()
}

// DrawerPanel is the drawer's chrome and body, rendered at full container
// height; RenderDrawer clips whatever falls below the container.
type DrawerPanel struct {
	Title      string
	Body       []string
	Radius     float64
	ShowHandle bool
	Accent     lipgloss.Color
}

func (p DrawerPanel) Render(width, height int) string {
	if width < 2 || height < 2 {
		return ""
	}
	innerW := width - 2
	rows := make([]string, 0, height)
	if p.ShowHandle {
		rows = append(rows, lipgloss.PlaceHorizontal(innerW, lipgloss.Center, handleGlyph))
	}
	if p.Title != "" {
		rows = append(rows, lipgloss.NewStyle().Bold(true).Render(p.Title))
	}
	rows = append(rows, p.Body...)
	innerH := height - 2
	if len(rows) > innerH {
		rows = rows[:innerH]
	}
	for i := range rows {
		rows[i] = padRightANSI(rows[i], innerW)
	}
	for len(rows) < innerH {
		rows = append(rows, strings.Repeat(" ", innerW))
	}
	style := lipgloss.NewStyle().Border(BorderForRadius(p.Radius))
	if p.Accent != "" {
		style = style.BorderForeground(p.Accent)
	}
	return style.Render(strings.Join(rows, "\n"))
}

// RenderDrawer lays a full-width panel over base starting at row top.
// A top at or below height leaves base untouched.
func RenderDrawer(base string, panel Widget, width, height, top int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if top >= height || panel == nil {
		return fitCanvas(base, width, height)
	}
	if top < 0 {
		top = 0
	}
	return OverlayAt(base, panel.Render(width, height), 0, top, width, height)
}
