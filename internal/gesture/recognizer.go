package gesture

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/drawerkit/core/drawer"
)

const (
	DefaultDeadZone       = 1
	DefaultVelocityWindow = 120 * time.Millisecond
	DefaultTapInterval    = 400 * time.Millisecond
)

type sample struct {
	y  int
	at time.Time
}

// Recognizer turns terminal mouse events into drawer gesture samples and tap
// runs. A press that starts on the drawer and moves at least the dead zone
// becomes a drag. A press/release pair that never strays that far is a tap;
// anything else is ignored.
type Recognizer struct {
	DeadZone       int
	VelocityWindow time.Duration
	TapInterval    time.Duration

	reg registry

	pressed   bool
	onDrawer  bool
	dragging  bool
	moved     bool
	pressX    int
	pressY    int
	lastY     int
	history   []sample
	tapCount  int
	lastTapAt time.Time
	lastTapX  int
	lastTapY  int
}

func NewRecognizer() *Recognizer {
	return &Recognizer{
		DeadZone:       DefaultDeadZone,
		VelocityWindow: DefaultVelocityWindow,
		TapInterval:    DefaultTapInterval,
	}
}

func (r *Recognizer) SubscribeGestures(fn func(drawer.GestureSample)) drawer.Subscription {
	r.reg.nextID++
	r.reg.drag = append(r.reg.drag, dragHandler{id: r.reg.nextID, fn: fn})
	return handle{id: r.reg.nextID, reg: &r.reg}
}

func (r *Recognizer) SubscribeTaps(count int, fn func(drawer.Point)) drawer.Subscription {
	r.reg.nextID++
	r.reg.tap = append(r.reg.tap, tapHandler{id: r.reg.nextID, count: count, fn: fn})
	return handle{id: r.reg.nextID, reg: &r.reg, tap: true}
}

func (r *Recognizer) Dragging() bool { return r.dragging }

// HandleMouse feeds one mouse event. onDrawer tells whether the event's cell
// is covered by the drawer; only presses look at it.
func (r *Recognizer) HandleMouse(msg tea.MouseMsg, onDrawer bool, now time.Time) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		r.pressed = true
		r.onDrawer = onDrawer
		r.dragging = false
		r.moved = false
		r.pressX, r.pressY, r.lastY = msg.X, msg.Y, msg.Y
		r.history = append(r.history[:0], sample{y: msg.Y, at: now})
	case tea.MouseActionMotion:
		if !r.pressed {
			return
		}
		r.record(msg.Y, now)
		if !r.dragging {
			if !r.beyondDeadZone(msg.Y) {
				return
			}
			r.moved = true
			if !r.onDrawer {
				return
			}
			r.dragging = true
			r.emitDrag(drawer.GestureSample{Phase: drawer.PhaseBegan})
		}
		delta := msg.Y - r.lastY
		r.lastY = msg.Y
		if delta != 0 {
			r.emitDrag(drawer.GestureSample{Phase: drawer.PhaseChanged, TranslationDelta: float64(delta)})
		}
	case tea.MouseActionRelease:
		if !r.pressed {
			return
		}
		r.pressed = false
		if r.dragging {
			r.record(msg.Y, now)
			if delta := msg.Y - r.lastY; delta != 0 {
				r.lastY = msg.Y
				r.emitDrag(drawer.GestureSample{Phase: drawer.PhaseChanged, TranslationDelta: float64(delta)})
			}
			r.dragging = false
			r.emitDrag(drawer.GestureSample{Phase: drawer.PhaseEnded, Velocity: r.velocity(now)})
			return
		}
		if r.moved || r.beyondDeadZone(msg.Y) {
			return
		}
		r.tap(r.pressX, r.pressY, now)
	}
}

func (r *Recognizer) beyondDeadZone(y int) bool {
	return absInt(y-r.pressY) >= max(1, r.DeadZone)
}

// Cancel aborts a drag in progress, e.g. on resize or escape.
func (r *Recognizer) Cancel() {
	wasDragging := r.dragging
	r.pressed = false
	r.dragging = false
	r.moved = false
	r.history = r.history[:0]
	if wasDragging {
		r.emitDrag(drawer.GestureSample{Phase: drawer.PhaseCancelled})
	}
}

func (r *Recognizer) record(y int, now time.Time) {
	r.history = append(r.history, sample{y: y, at: now})
	cutoff := now.Add(-r.VelocityWindow)
	i := 0
	for i < len(r.history)-1 && r.history[i].at.Before(cutoff) {
		i++
	}
	r.history = r.history[i:]
}

// velocity is rows per second over the recent window. A pointer held still
// longer than the window releases with zero velocity.
func (r *Recognizer) velocity(now time.Time) float64 {
	if len(r.history) < 2 {
		return 0
	}
	first, last := r.history[0], r.history[len(r.history)-1]
	if now.Sub(last.at) > r.VelocityWindow {
		return 0
	}
	dt := last.at.Sub(first.at).Seconds()
	if dt <= 0 {
		return 0
	}
	return float64(last.y-first.y) / dt
}

func (r *Recognizer) tap(x, y int, now time.Time) {
	if r.tapCount > 0 && now.Sub(r.lastTapAt) <= r.TapInterval && absInt(x-r.lastTapX) <= 1 && absInt(y-r.lastTapY) <= 1 {
		r.tapCount++
	} else {
		r.tapCount = 1
	}
	r.lastTapAt, r.lastTapX, r.lastTapY = now, x, y
	p := drawer.Point{X: float64(x), Y: float64(y)}
	for _, h := range append([]tapHandler(nil), r.reg.tap...) {
		if h.count == r.tapCount {
			h.fn(p)
		}
	}
}

func (r *Recognizer) emitDrag(s drawer.GestureSample) {
	for _, h := range append([]dragHandler(nil), r.reg.drag...) {
		h.fn(s)
	}
}

func absInt(v int) int {
	return int(math.Abs(float64(v)))
}
