package drawer

import "math"

type fakeHost struct {
	geo       Geometry
	absent    bool
	positions []float64
	radii     []float64
	dismisses int
}

func (h *fakeHost) ContainerGeometry() (Geometry, bool) {
	if h.absent {
		return Geometry{}, false
	}
	return h.geo, true
}
func (h *fakeHost) WritePosition(y float64)     { h.positions = append(h.positions, y) }
func (h *fakeHost) WriteCornerRadius(r float64) { h.radii = append(h.radii, r) }
func (h *fakeHost) RequestDismiss()             { h.dismisses++ }

func (h *fakeHost) lastRadius() float64 {
	if len(h.radii) == 0 {
		return math.NaN()
	}
	return h.radii[len(h.radii)-1]
}

type fakeContent float64

func (c fakeContent) PartialExpandedHeight() float64 { return float64(c) }

type pendingAnimation struct {
	Animation
	done func()
}

// fakeAnimator records animations; tests finish them explicitly.
type fakeAnimator struct {
	pending []pendingAnimation
}

func (a *fakeAnimator) Animate(an Animation, done func()) {
	a.pending = append(a.pending, pendingAnimation{Animation: an, done: done})
}

func (a *fakeAnimator) finishAll() {
	list := a.pending
	a.pending = nil
	for _, p := range list {
		p.Apply(p.To)
		p.done()
	}
}

func (a *fakeAnimator) byProperty(p Property) []pendingAnimation {
	var out []pendingAnimation
	for _, pa := range a.pending {
		if pa.Property == p {
			out = append(out, pa)
		}
	}
	return out
}

func scenarioConfig() Configuration {
	cfg := DefaultConfiguration()
	cfg.UpperMarkGap = 40
	cfg.LowerMarkGap = 40
	cfg.FlickSpeedThreshold = 0.5
	cfg.MaximumCornerRadius = 12
	return cfg
}

func scenarioModel(cfg Configuration) PositionModel {
	return PositionModel{Geometry: Geometry{Width: 400, Height: 800}, Config: cfg, PartialExpandedHeight: 300}
}

func newTestController(cfg Configuration, opts ...Option) (*Controller, *fakeHost, *fakeAnimator) {
	host := &fakeHost{geo: Geometry{Width: 400, Height: 800}}
	anim := &fakeAnimator{}
	c, err := New(cfg, host, fakeContent(300), anim, opts...)
	if err != nil {
		panic(err)
	}
	return c, host, anim
}
