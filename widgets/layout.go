package widgets

import (
	"strings"
)

// Widget renders itself into a width x height cell block.
type Widget interface {
	Render(width, height int) string
}

// VStack splits the height between its widgets by Ratios, equal shares
// when Ratios does not match. Every band is exactly its share tall, so
// callers can overlay the drawer by row number.
type VStack struct {
	Widgets []Widget
	Ratios  []float64
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	heights := shares(height, len(v.Widgets), v.Ratios)
	rows := make([]string, 0, height)
	for i, w := range v.Widgets {
		if heights[i] == 0 {
			continue
		}
		rows = append(rows, fitBlock(w.Render(width, heights[i]), width, heights[i])...)
	}
	return strings.Join(rows, "\n")
}

// HStack places its widgets side by side with Gap blank columns between.
type HStack struct {
	Widgets []Widget
	Ratios  []float64
	Gap     int
}

func (h HStack) Render(width, height int) string {
	if len(h.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	gap := max(0, h.Gap)
	widths := shares(max(0, width-gap*(len(h.Widgets)-1)), len(h.Widgets), h.Ratios)
	cols := make([][]string, len(h.Widgets))
	for i, w := range h.Widgets {
		cols[i] = fitBlock(w.Render(max(1, widths[i]), height), widths[i], height)
	}
	sep := strings.Repeat(" ", gap)
	rows := make([]string, height)
	for r := range rows {
		parts := make([]string, len(cols))
		for i := range cols {
			parts[i] = cols[i][r]
		}
		rows[r] = strings.Join(parts, sep)
	}
	return strings.Join(rows, "\n")
}

// shares divides total cells among n slots by weight, handing leftover
// cells to the slots with the largest remainders. Non-positive weights
// count as 1.
func shares(total, n int, ratios []float64) []int {
	if n <= 0 {
		return nil
	}
	weights := make([]float64, n)
	sum := 0.0
	for i := range weights {
		weights[i] = 1
		if len(ratios) == n && ratios[i] > 0 {
			weights[i] = ratios[i]
		}
		sum += weights[i]
	}
	out := make([]int, n)
	rem := make([]float64, n)
	used := 0
	for i, w := range weights {
		exact := w / sum * float64(total)
		out[i] = int(exact)
		rem[i] = exact - float64(out[i])
		used += out[i]
	}
	for ; used < total; used++ {
		best := 0
		for i := range rem {
			if rem[i] > rem[best] {
				best = i
			}
		}
		out[best]++
		rem[best] = -1
	}
	return out
}

// fitBlock pads or clips s to exactly height rows of width cells.
func fitBlock(s string, width, height int) []string {
	rows := splitToLines(s, height)
	for i := range rows {
		rows[i] = padRightANSI(rows[i], width)
	}
	return rows
}
