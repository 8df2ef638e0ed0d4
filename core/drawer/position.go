package drawer

import "math"

// Rest names the three positions a drawer settles at.
type Rest int

const (
	RestHidden Rest = iota
	RestPartial
	RestExpanded
)

func (r Rest) String() string {
	switch r {
	case RestExpanded:
		return "expanded"
	case RestPartial:
		return "partial"
	default:
		return "hidden"
	}
}

// PositionModel derives drawer positions from the container size, the
// configuration, and the content's partially expanded height. It has no
// mutable state; build a fresh one per query.
type PositionModel struct {
	Geometry              Geometry
	Config                Configuration
	PartialExpandedHeight float64
}

func (m PositionModel) ContainerHeight() float64 {
	return math.Max(0, m.Geometry.Height)
}

// PartialY is containerHeight-partialExpandedHeight when partial expansion is
// supported and containerHeight otherwise.
func (m PositionModel) PartialY() float64 {
	h := m.ContainerHeight()
	if !m.Config.SupportsPartialExpansion {
		return h
	}
	return h - m.PartialExpandedHeight
}

// HasPartialRest reports whether the partial line lies strictly inside the
// container. A partial line on or beyond an edge disables the partial rest.
func (m PositionModel) HasPartialRest() bool {
	if !m.Config.SupportsPartialExpansion {
		return false
	}
	p := m.PartialY()
	return p > 0 && p < m.ContainerHeight()
}

// markLine is the line the marks are measured from: the partial rest, or
// the bottom edge when there is no usable partial rest, including a partial
// height that puts the line at or beyond either edge.
func (m PositionModel) markLine() float64 {
	if m.HasPartialRest() {
		return m.PartialY()
	}
	return m.ContainerHeight()
}

func (m PositionModel) UpperMarkY() float64 {
	return m.markLine() - m.Config.UpperMarkGap
}

func (m PositionModel) LowerMarkY() float64 {
	return m.markLine() + m.Config.LowerMarkGap
}

func (m PositionModel) Clamp(y float64) float64 {
	return clamp(y, 0, m.ContainerHeight())
}

// CornerRadiusAt peaks at the partial line and is zero at both edges.
// Without partial expansion it fades linearly from the top edge to the
// bottom, still forced to zero exactly at y=0.
func (m PositionModel) CornerRadiusAt(y float64) float64 {
	h := m.ContainerHeight()
	if h <= 0 || y < 0 || y > h || y == 0 || y == h {
		return 0
	}
	var f float64
	if m.Config.SupportsPartialExpansion {
		p := m.PartialY()
		if p <= 0 || p >= h {
			return 0
		}
		if y < p {
			f = y / p
		} else {
			f = 1 - (y-p)/(h-p)
		}
	} else {
		f = 1 - y/h
	}
	return clamp(f, 0, 1) * m.Config.MaximumCornerRadius
}

func (m PositionModel) RestY(r Rest) float64 {
	switch r {
	case RestExpanded:
		return 0
	case RestPartial:
		if m.HasPartialRest() {
			return m.PartialY()
		}
		return 0
	default:
		return m.ContainerHeight()
	}
}

// RestAt buckets a target produced by the decision functions.
func (m PositionModel) RestAt(y float64) Rest {
	switch {
	case y <= 0:
		return RestExpanded
	case y >= m.ContainerHeight():
		return RestHidden
	default:
		return RestPartial
	}
}
