package anim

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/jask/drawerkit/core/drawer"
)

// Ease maps linear progress t in [0, 1] through an easing curve.
func Ease(c drawer.Curve, t float64) float64 {
	t = math.Max(0, math.Min(1, t))
	switch c {
	case drawer.CurveLinear:
		return t
	case drawer.CurveEaseIn:
		return t * t * t
	case drawer.CurveEaseOut:
		return 1 - math.Pow(1-t, 3)
	default:
		if t < 0.5 {
			return 4 * t * t * t
		}
		return 1 - math.Pow(-2*t+2, 3)/2
	}
}

// springProgress drives normalized progress toward 1 with a damped spring,
// one step per frame. It may overshoot 1 before settling.
type springProgress struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

func newSpringProgress(fps int, seconds float64) *springProgress {
	if seconds <= 0 {
		seconds = 0.01
	}
	return &springProgress{spring: harmonica.NewSpring(harmonica.FPS(fps), 8/seconds, 0.6)}
}

func (s *springProgress) step() float64 {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, 1)
	return s.pos
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
