package tui

import "github.com/jask/drawerkit/core/drawer"

// surface is the drawer host backed by the terminal. The container is every
// row above the footer; positions are in rows.
type surface struct {
	width    int
	height   int
	y        float64
	radius   float64
	dismiss  bool
	attached bool
}

func (s *surface) ContainerGeometry() (drawer.Geometry, bool) {
	if !s.attached {
		return drawer.Geometry{}, false
	}
	return drawer.Geometry{Width: float64(s.width), Height: float64(s.height)}, true
}

func (s *surface) WritePosition(y float64) { s.y = y }

func (s *surface) WriteCornerRadius(r float64) { s.radius = r }

func (s *surface) RequestDismiss() { s.dismiss = true }

// takeDismiss reports and clears a pending dismissal request.
func (s *surface) takeDismiss() bool {
	d := s.dismiss
	s.dismiss = false
	return d
}

// demoContent is the sample drawer body. Its partial height comes from
// config and is read per query, so a resize keeps it in rows.
type demoContent struct {
	partialHeight float64
}

func (c demoContent) PartialExpandedHeight() float64 { return c.partialHeight }

func (c demoContent) lines(rest drawer.Rest) []string {
	lines := []string{
		"Drag the handle to move the drawer.",
		"Flick up to expand, flick down to hide.",
		"Click above the drawer to dismiss it.",
		"Click the drawer body to expand it fully.",
		"",
		"Resting: " + rest.String(),
	}
	return lines
}
