package drawer

type Phase int

const (
	PhasePossible Phase = iota
	PhaseBegan
	PhaseChanged
	PhaseEnded
	PhaseCancelled
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseBegan:
		return "began"
	case PhaseChanged:
		return "changed"
	case PhaseEnded:
		return "ended"
	case PhaseCancelled:
		return "cancelled"
	case PhaseFailed:
		return "failed"
	default:
		return "possible"
	}
}

// GestureSample is one drag update. TranslationDelta is the vertical
// movement since the previous sample; Velocity is in host units per second.
type GestureSample struct {
	Phase            Phase
	TranslationDelta float64
	Velocity         float64
}

type Subscription interface {
	Unsubscribe()
}

// GestureStream delivers drag samples for one recognizer.
type GestureStream interface {
	SubscribeGestures(fn func(GestureSample)) Subscription
}

// TapStream delivers the location of every completed run of count taps.
type TapStream interface {
	SubscribeTaps(count int, fn func(Point)) Subscription
}

type EventKind string

const (
	EventRelease            EventKind = "release"
	EventCancel             EventKind = "cancel"
	EventTransitionStarted  EventKind = "transition_started"
	EventTransitionFinished EventKind = "transition_finished"
	EventDismissRequested   EventKind = "dismiss_requested"
	EventOutsideTap         EventKind = "outside_tap"
	EventDrawerTap          EventKind = "drawer_tap"
)

// Event is a notable controller decision, reported to an Observer.
type Event struct {
	Kind            EventKind
	Position        float64
	Velocity        float64
	Target          float64
	ContainerHeight float64
	Rest            Rest
}

type Observer interface {
	Observe(Event)
}

type ObserverFunc func(Event)

func (f ObserverFunc) Observe(e Event) { f(e) }
