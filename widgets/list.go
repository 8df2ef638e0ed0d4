package widgets

import "strings"

// List renders a titled bullet list; Marked items get a leading arrow.
type List struct {
	Title  string
	Items  []string
	Marked int
}

func (l List) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	rows := make([]string, 0, len(l.Items)+1)
	rows = append(rows, l.Title)
	for i, item := range l.Items {
		prefix := "  "
		if i == l.Marked {
			prefix = "▸ "
		}
		rows = append(rows, padRightANSI(prefix+item, width))
	}
	if len(rows) > height {
		rows = rows[:height]
	}
	return strings.Join(rows, "\n")
}
