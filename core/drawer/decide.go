package drawer

import "math"

// EndingPositionFor picks where a released drawer settles. velocityY is in
// container heights per second, positive toward hidden. Comparisons are
// strict; a release exactly on a mark falls through to the next branch.
func (m PositionModel) EndingPositionFor(positionY, velocityY float64) float64 {
	h := m.ContainerHeight()
	threshold := m.Config.FlickSpeedThreshold
	quick := threshold > 0 && math.Abs(velocityY) > threshold
	movingUp := velocityY < 0
	movingDown := velocityY > 0

	switch {
	case quick && movingUp:
		return 0
	case quick && movingDown:
		return h
	case positionY < m.UpperMarkY():
		if !movingDown {
			return 0
		}
		if m.HasPartialRest() && m.Config.DismissesInStages {
			return m.PartialY()
		}
		return h
	case positionY < m.LowerMarkY():
		if movingDown {
			return h
		}
		if m.HasPartialRest() {
			return m.PartialY()
		}
		return 0
	default:
		return h
	}
}

// ClampedTargetFor snaps y to a rest using only the marks.
func (m PositionModel) ClampedTargetFor(y float64) float64 {
	switch {
	case y < m.UpperMarkY():
		return 0
	case y > m.LowerMarkY():
		return m.ContainerHeight()
	case m.HasPartialRest():
		return m.PartialY()
	default:
		return 0
	}
}
