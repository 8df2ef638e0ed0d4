package drawer

import (
	"testing"
	"time"
)

func TestTransitionIsIdempotentAtTarget(t *testing.T) {
	c, host, anim := newTestController(scenarioConfig())
	if c.Transition(800, false) {
		t.Fatal("transition to current position started")
	}
	if len(anim.pending) != 0 || host.dismisses != 0 {
		t.Fatalf("pending = %d dismisses = %d, want none", len(anim.pending), host.dismisses)
	}
}

func TestTransitionAnimatesPositionAndRadiusTogether(t *testing.T) {
	cfg := scenarioConfig()
	c, _, anim := newTestController(cfg)
	if !c.Present() {
		t.Fatal("Present did not start a transition")
	}
	if len(anim.pending) != 2 {
		t.Fatalf("pending = %d, want 2", len(anim.pending))
	}
	pos, radius := anim.pending[0], anim.pending[1]
	if pos.Property != PropertyPosition || pos.From != 800 || pos.To != 500 {
		t.Fatalf("position animation = %+v", pos.Animation)
	}
	if radius.Property != PropertyCornerRadius || radius.To != cfg.MaximumCornerRadius {
		t.Fatalf("radius animation = %+v", radius.Animation)
	}
	if pos.Duration != radius.Duration || pos.Curve != radius.Curve {
		t.Fatal("position and radius animations are out of sync")
	}
	if pos.Duration != 400*time.Millisecond {
		t.Fatalf("duration = %v, want 400ms", pos.Duration)
	}
	anim.finishAll()
	if c.Position() != 500 || c.CornerRadius() != cfg.MaximumCornerRadius {
		t.Fatalf("position = %v radius = %v", c.Position(), c.CornerRadius())
	}
	if c.Rest() != RestPartial || c.Transitioning() {
		t.Fatalf("rest = %s transitioning = %v", c.Rest(), c.Transitioning())
	}
}

func TestTransitionToHiddenRequestsDismissAfterPosition(t *testing.T) {
	c, host, anim := newTestController(scenarioConfig())
	c.Present()
	anim.finishAll()

	c.Dismiss()
	if host.dismisses != 0 {
		t.Fatal("dismiss requested before animation finished")
	}
	pos := anim.byProperty(PropertyPosition)[0]
	pos.done()
	pos.done()
	if host.dismisses != 1 {
		t.Fatalf("dismisses = %d, want exactly 1", host.dismisses)
	}
	if !c.Settled() {
		t.Fatal("controller not settled after hiding")
	}
}

func TestTransitionForcesRadiusToZeroAtEdges(t *testing.T) {
	c, host, anim := newTestController(scenarioConfig())
	c.Present()
	anim.finishAll()

	c.Transition(0, false)
	radius := anim.byProperty(PropertyCornerRadius)[0]
	radius.Apply(0.0001)
	radius.done()
	if got := host.lastRadius(); got != 0 {
		t.Fatalf("radius = %v, want 0", got)
	}
	if host.dismisses != 0 {
		t.Fatal("expanding must not dismiss")
	}
}

func TestTransitionSupersededCompletionIsDropped(t *testing.T) {
	c, host, anim := newTestController(scenarioConfig())
	c.Present()
	anim.finishAll()

	c.Dismiss()
	stale := anim.byProperty(PropertyPosition)[0]
	anim.pending = nil

	c.Transition(0, false)
	stale.Apply(790)
	stale.done()
	if host.dismisses != 0 {
		t.Fatal("superseded dismissal fired")
	}
	if c.Position() != 500 {
		t.Fatalf("stale write moved drawer to %v", c.Position())
	}
	anim.finishAll()
	if c.Position() != 0 {
		t.Fatalf("position = %v, want 0", c.Position())
	}
}

func TestTransitionSkipsRadiusWhenPartialLineAtTop(t *testing.T) {
	host := &fakeHost{geo: Geometry{Height: 800}}
	anim := &fakeAnimator{}
	c, err := New(scenarioConfig(), host, fakeContent(900), anim)
	if err != nil {
		t.Fatal(err)
	}
	c.Present()
	if len(anim.pending) != 1 || anim.pending[0].Property != PropertyPosition {
		t.Fatalf("pending = %+v, want only a position animation", anim.pending)
	}
}

func TestTransitionClampingResolvesTarget(t *testing.T) {
	c, _, anim := newTestController(scenarioConfig())
	c.Transition(470, true)
	pos := anim.byProperty(PropertyPosition)[0]
	if pos.To != 500 {
		t.Fatalf("target = %v, want 500", pos.To)
	}
}

func TestTransitionDurationProportionalToDistance(t *testing.T) {
	cfg := scenarioConfig()
	cfg.DurationIsProportionalToDistanceTraveled = true
	cfg.DurationInSeconds = 0.8
	c, _, anim := newTestController(cfg)
	c.Present()
	if got := anim.pending[0].Duration; got != 300*time.Millisecond {
		t.Fatalf("duration = %v, want 300ms", got)
	}
}
