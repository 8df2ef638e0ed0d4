package drawer

import (
	"math"
	"time"
)

type Property int

const (
	PropertyPosition Property = iota
	PropertyCornerRadius
)

func (p Property) String() string {
	if p == PropertyCornerRadius {
		return "corner_radius"
	}
	return "position"
}

// Animation asks the animation layer to move one property from From to To.
// Apply is called with every intermediate value, on the control thread.
type Animation struct {
	Property Property
	From     float64
	To       float64
	Duration time.Duration
	Curve    Curve
	Apply    func(v float64)
}

// Animator runs animations asynchronously and calls done once the animation
// reaches its target. A new animation on the same property replaces the old
// one in place; the replaced animation's done is never called.
type Animator interface {
	Animate(a Animation, done func())
}

// drawerState is what the coordinator needs from the session that owns the
// drawer's position and corner radius.
type drawerState interface {
	model() PositionModel
	position() float64
	cornerRadius() float64
	setPosition(y float64)
	setCornerRadius(r float64)
	requestDismiss()
	notify(e Event)
}

// TransitionCoordinator drives the position and the corner radius toward a
// terminal target together. Every launch bumps a per-property generation;
// writes and completions from an older generation are dropped.
type TransitionCoordinator struct {
	state     drawerState
	animator  Animator
	config    Configuration
	posGen    uint64
	radiusGen uint64
	inFlight  bool
}

func newTransitionCoordinator(state drawerState, animator Animator, cfg Configuration) *TransitionCoordinator {
	return &TransitionCoordinator{state: state, animator: animator, config: cfg}
}

// InFlight reports whether a position animation is still running.
func (t *TransitionCoordinator) InFlight() bool { return t.inFlight }

// Supersede invalidates any running transition without touching the
// properties. A drag begin calls this before it starts writing.
func (t *TransitionCoordinator) Supersede() {
	t.posGen++
	t.radiusGen++
	t.inFlight = false
}

// Transition resolves the target and launches the animations. It reports
// false when the drawer is already at the resolved target.
func (t *TransitionCoordinator) Transition(to float64, clamping bool) bool {
	m := t.state.model()
	target := to
	if clamping {
		target = m.ClampedTargetFor(to)
	}
	current := t.state.position()
	if target == current {
		return false
	}

	h := m.ContainerHeight()
	duration := t.durationFor(current, target, h)
	atEdge := target == 0 || target == h
	dismisses := target == h

	t.posGen++
	posGen := t.posGen
	t.inFlight = true
	t.state.notify(Event{Kind: EventTransitionStarted, Position: current, Target: target, ContainerHeight: h, Rest: m.RestAt(target)})

	var posDone bool
	t.animator.Animate(Animation{
		Property: PropertyPosition,
		From:     current,
		To:       target,
		Duration: duration,
		Curve:    t.config.TimingCurve,
		Apply: func(v float64) {
			if posGen == t.posGen {
				t.state.setPosition(v)
			}
		},
	}, func() {
		if posDone || posGen != t.posGen {
			return
		}
		posDone = true
		t.inFlight = false
		t.state.setPosition(target)
		t.state.notify(Event{Kind: EventTransitionFinished, Position: target, Target: target, ContainerHeight: h, Rest: m.RestAt(target)})
		if dismisses {
			t.state.notify(Event{Kind: EventDismissRequested, Position: target, Target: target, ContainerHeight: h, Rest: RestHidden})
			t.state.requestDismiss()
		}
	})

	if m.PartialY() <= 0 {
		return true
	}

	t.radiusGen++
	radiusGen := t.radiusGen
	var radiusDone bool
	t.animator.Animate(Animation{
		Property: PropertyCornerRadius,
		From:     t.state.cornerRadius(),
		To:       m.CornerRadiusAt(target),
		Duration: duration,
		Curve:    t.config.TimingCurve,
		Apply: func(v float64) {
			if radiusGen == t.radiusGen {
				t.state.setCornerRadius(v)
			}
		},
	}, func() {
		if radiusDone || radiusGen != t.radiusGen {
			return
		}
		radiusDone = true
		if atEdge {
			t.state.setCornerRadius(0)
		}
	})
	return true
}

func (t *TransitionCoordinator) durationFor(from, to, h float64) time.Duration {
	d := t.config.Duration()
	if !t.config.DurationIsProportionalToDistanceTraveled || h <= 0 {
		return d
	}
	return time.Duration(float64(d) * math.Abs(to-from) / h)
}
