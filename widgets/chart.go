package widgets

import (
	"fmt"
	"strings"
)

type ChartPoint struct {
	Label string
	Value float64
}

// BarChart draws one horizontal bar per point, scaled to the largest value,
// with the count and share printed after each bar.
type BarChart struct {
	Title string
	Data  []ChartPoint
}

func (c BarChart) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := []string{c.Title}
	total, peak := 0.0, 0.0
	labelW := 0
	for _, p := range c.Data {
		total += p.Value
		peak = max(peak, p.Value)
		labelW = max(labelW, len(p.Label))
	}
	if total <= 0 {
		return c.Title + "\n(no releases yet)"
	}
	barSpace := max(1, width-labelW-14)
	for _, p := range c.Data {
		n := int(p.Value / peak * float64(barSpace))
		bar := strings.Repeat("█", n)
		if n == 0 && p.Value > 0 {
			bar = "▏"
		}
		lines = append(lines, fmt.Sprintf("%-*s %s %d (%.0f%%)", labelW, p.Label, bar, int(p.Value), 100*p.Value/total))
		if len(lines) >= height {
			break
		}
	}
	return strings.Join(lines, "\n")
}
