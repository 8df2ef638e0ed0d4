package drawer

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

var (
	ErrMissingHost     = errors.New("drawer host is required")
	ErrMissingAnimator = errors.New("drawer animator is required")
	ErrMissingContent  = errors.New("partial expansion requires content that provides a partial height")
)

// Host is the presentation surface the controller drives.
type Host interface {
	// ContainerGeometry reports false when the container is gone; the
	// controller then behaves as if the size were zero.
	ContainerGeometry() (Geometry, bool)
	WritePosition(y float64)
	WriteCornerRadius(r float64)
	RequestDismiss()
}

// PartialHeightProvider is implemented by content that can rest partially
// expanded.
type PartialHeightProvider interface {
	PartialExpandedHeight() float64
}

type Option func(*Controller)

func WithLogger(log zerolog.Logger) Option {
	return func(c *Controller) { c.log = log }
}

func WithObserver(o Observer) Option {
	return func(c *Controller) { c.observer = o }
}

// Controller owns one presentation session: the drawer's position and
// corner radius, the drag interpreter, the transition coordinator and the
// tap gates. All methods must be called from the host's control thread.
type Controller struct {
	cfg      Configuration
	host     Host
	content  PartialHeightProvider
	log      zerolog.Logger
	observer Observer

	y        float64
	radius   float64
	rest     Rest
	dragging bool

	drag        DragInterpreter
	transitions *TransitionCoordinator
	dismissal   DismissalGate
	expansion   ExpansionGate
	subs        []Subscription
}

func New(cfg Configuration, host Host, content PartialHeightProvider, animator Animator, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new drawer controller: %w", err)
	}
	if host == nil {
		return nil, ErrMissingHost
	}
	if animator == nil {
		return nil, ErrMissingAnimator
	}
	if cfg.SupportsPartialExpansion && content == nil {
		return nil, ErrMissingContent
	}
	c := &Controller{
		cfg:       cfg,
		host:      host,
		content:   content,
		log:       zerolog.Nop(),
		dismissal: NewDismissalGate(cfg),
		expansion: NewExpansionGate(cfg),
		rest:      RestHidden,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.transitions = newTransitionCoordinator(c, animator, cfg)
	c.y = c.model().ContainerHeight()
	return c, nil
}

func (c *Controller) Configuration() Configuration { return c.cfg }

func (c *Controller) Position() float64 { return c.y }

func (c *Controller) CornerRadius() float64 { return c.radius }

// Rest is the rest position of the latest transition target.
func (c *Controller) Rest() Rest { return c.rest }

func (c *Controller) Dragging() bool { return c.dragging }

func (c *Controller) Transitioning() bool { return c.transitions.InFlight() }

// Model returns the position model for the current geometry.
func (c *Controller) Model() PositionModel { return c.model() }

// Settled reports whether the drawer rests fully hidden with nothing in
// flight.
func (c *Controller) Settled() bool {
	return !c.dragging && !c.transitions.InFlight() && c.rest == RestHidden && c.y >= c.model().ContainerHeight()
}

// Attach subscribes to the streams the configuration allows. Disabled
// features install no recognizer at all.
func (c *Controller) Attach(gestures GestureStream, taps TapStream) {
	if c.cfg.IsDrawerDraggable && gestures != nil {
		c.subs = append(c.subs, gestures.SubscribeGestures(c.HandleGesture))
	}
	if taps == nil {
		return
	}
	if c.dismissal.Enabled() {
		c.subs = append(c.subs, taps.SubscribeTaps(c.dismissal.TapCount(), c.HandleOutsideTap))
	}
	if c.expansion.Enabled() {
		c.subs = append(c.subs, taps.SubscribeTaps(c.expansion.TapCount(), c.HandleDrawerTap))
	}
}

// Detach drops every subscription and invalidates any running transition.
func (c *Controller) Detach() {
	for _, s := range c.subs {
		s.Unsubscribe()
	}
	c.subs = nil
	c.transitions.Supersede()
	c.dragging = false
}

func (c *Controller) HandleGesture(s GestureSample) {
	if !c.cfg.IsDrawerDraggable {
		return
	}
	m := c.model()
	r := c.drag.Interpret(s, c.y, m)
	switch r.Action {
	case DragTracking:
		c.transitions.Supersede()
		c.dragging = true
	case DragLive:
		c.setPosition(r.Position)
		c.setCornerRadius(r.CornerRadius)
	case DragRelease:
		c.dragging = false
		c.log.Debug().
			Float64("y", c.y).
			Float64("velocity", r.VelocityY).
			Float64("target", r.Target).
			Msg("drag released")
		c.notify(Event{Kind: EventRelease, Position: c.y, Velocity: r.VelocityY, Target: r.Target, ContainerHeight: m.ContainerHeight(), Rest: m.RestAt(r.Target)})
		c.transition(r.Target, false)
	case DragCancel:
		c.dragging = false
		target := m.ClampedTargetFor(r.Target)
		c.log.Debug().Float64("y", c.y).Float64("last_rest", r.Target).Msg("drag cancelled")
		c.notify(Event{Kind: EventCancel, Position: c.y, Target: target, ContainerHeight: m.ContainerHeight(), Rest: m.RestAt(target)})
		c.transition(r.Target, true)
	}
}

func (c *Controller) HandleOutsideTap(p Point) {
	if !c.dismissal.ShouldDismiss(p.Y, c.y) {
		return
	}
	h := c.model().ContainerHeight()
	c.log.Debug().Float64("tap_y", p.Y).Float64("y", c.y).Msg("outside tap dismiss")
	c.notify(Event{Kind: EventOutsideTap, Position: c.y, Target: h, ContainerHeight: h, Rest: RestHidden})
	c.requestDismiss()
}

func (c *Controller) HandleDrawerTap(p Point) {
	m := c.model()
	if !c.expansion.ShouldExpand(p.Y, c.y, m.ContainerHeight()) {
		return
	}
	c.notify(Event{Kind: EventDrawerTap, Position: c.y, Target: 0, ContainerHeight: m.ContainerHeight(), Rest: RestExpanded})
	c.transition(0, false)
}

// Present moves a hidden drawer to its first rest: partial when available,
// fully expanded otherwise.
func (c *Controller) Present() bool {
	m := c.model()
	target := 0.0
	if m.HasPartialRest() {
		target = m.PartialY()
	}
	return c.transition(target, false)
}

// Dismiss slides the drawer to hidden; the dismissal request fires when the
// slide completes.
func (c *Controller) Dismiss() bool {
	return c.transition(c.model().ContainerHeight(), false)
}

// Transition runs the coordinator directly. Like Present and Dismiss it
// refuses to start while a drag owns the position.
func (c *Controller) Transition(to float64, clamping bool) bool {
	return c.transition(to, clamping)
}

// Relayout re-seats the drawer at its rest for the current geometry
// without animating. It does nothing mid-drag; the host cancels the drag
// instead.
func (c *Controller) Relayout() {
	if c.dragging {
		return
	}
	c.transitions.Supersede()
	m := c.model()
	y := m.RestY(c.rest)
	c.setPosition(y)
	c.setCornerRadius(m.CornerRadiusAt(y))
}

func (c *Controller) transition(to float64, clamping bool) bool {
	if c.dragging {
		c.log.Debug().Float64("to", to).Msg("transition refused mid-drag")
		return false
	}
	m := c.model()
	resolved := to
	if clamping {
		resolved = m.ClampedTargetFor(to)
	}
	c.rest = m.RestAt(resolved)
	started := c.transitions.Transition(to, clamping)
	if started {
		c.log.Debug().Float64("from", c.y).Float64("to", resolved).Str("rest", c.rest.String()).Msg("transition")
	}
	return started
}

func (c *Controller) model() PositionModel {
	var geo Geometry
	if c.host != nil {
		if g, ok := c.host.ContainerGeometry(); ok {
			geo = g
		}
	}
	var partial float64
	if c.content != nil {
		partial = c.content.PartialExpandedHeight()
	}
	return PositionModel{Geometry: geo, Config: c.cfg, PartialExpandedHeight: partial}
}

func (c *Controller) position() float64 { return c.y }

func (c *Controller) cornerRadius() float64 { return c.radius }

func (c *Controller) setPosition(y float64) {
	c.y = c.model().Clamp(y)
	c.host.WritePosition(c.y)
}

func (c *Controller) setCornerRadius(r float64) {
	c.radius = clamp(r, 0, c.cfg.MaximumCornerRadius)
	c.host.WriteCornerRadius(c.radius)
}

func (c *Controller) requestDismiss() {
	c.host.RequestDismiss()
}

func (c *Controller) notify(e Event) {
	if c.observer != nil {
		c.observer.Observe(e)
	}
}
