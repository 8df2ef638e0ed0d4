package repository

import "time"

// Session represents one drawer presentation.
type Session struct {
	ID                  string
	StartedAt           time.Time
	ContainerHeight     float64
	PartialHeight       float64
	SupportsPartial     bool
	DismissesInStages   bool
	FlickSpeedThreshold float64
	TimingCurve         string
}

// Event represents one controller decision inside a session.
type Event struct {
	ID              string
	SessionID       string
	Seq             int
	Kind            string
	Position        float64
	Velocity        float64
	Target          float64
	ContainerHeight float64
	Rest            string
	CreatedAt       time.Time
}

// RestCount is the number of events of a kind that landed on a rest.
type RestCount struct {
	Rest  string
	Count int
}
