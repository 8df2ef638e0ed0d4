package widgets

import (
	"github.com/charmbracelet/bubbles/table"
)

// EventRow is one line of the drawer event log.
type EventRow struct {
	Kind     string
	Position string
	Velocity string
	Target   string
	Rest     string
}

// EventsPane shows the most recent drawer events, newest last.
type EventsPane struct {
	title string
	limit int
	rows  []table.Row
	table table.Model
}

func NewEventsPane(title string, limit int) *EventsPane {
	if limit <= 0 {
		limit = 50
	}
	cols := []table.Column{
		{Title: "Event", Width: 20},
		{Title: "Y", Width: 7},
		{Title: "Vel", Width: 7},
		{Title: "Target", Width: 7},
		{Title: "Rest", Width: 9},
	}
	t := table.New(table.WithColumns(cols), table.WithFocused(false), table.WithHeight(6))
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true)
	t.SetStyles(styles)
	return &EventsPane{title: title, limit: limit, table: t}
}

func (p *EventsPane) Push(r EventRow) {
	p.rows = append(p.rows, table.Row{r.Kind, r.Position, r.Velocity, r.Target, r.Rest})
	if len(p.rows) > p.limit {
		p.rows = p.rows[len(p.rows)-p.limit:]
	}
	p.table.SetRows(p.rows)
	p.table.GotoBottom()
}

func (p *EventsPane) Len() int { return len(p.rows) }

func (p *EventsPane) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	innerW := max(12, width-4)
	innerH := max(3, height-2)
	p.table.SetWidth(innerW)
	p.table.SetHeight(innerH)
	return Box{Title: p.title, Content: p.table.View()}.Render(width, height)
}
