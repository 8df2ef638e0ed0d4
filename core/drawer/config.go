package drawer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
)

var ErrInvalidConfiguration = errors.New("invalid drawer configuration")

type Curve string

const (
	CurveLinear    Curve = "linear"
	CurveEaseIn    Curve = "easeIn"
	CurveEaseOut   Curve = "easeOut"
	CurveEaseInOut Curve = "easeInOut"
	CurveSpring    Curve = "spring"
)

var Curves = []Curve{CurveLinear, CurveEaseIn, CurveEaseOut, CurveEaseInOut, CurveSpring}

// ParseCurve resolves a curve name case-insensitively. Unknown names return
// an error naming the closest known curve.
func ParseCurve(name string) (Curve, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return CurveEaseInOut, nil
	}
	for _, c := range Curves {
		if strings.EqualFold(string(c), trimmed) {
			return c, nil
		}
	}
	best := Curves[0]
	bestDist := -1
	for _, c := range Curves {
		d := levenshtein.ComputeDistance(strings.ToLower(trimmed), strings.ToLower(string(c)))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	return "", fmt.Errorf("%w: unknown timing curve %q (did you mean %q?)", ErrInvalidConfiguration, trimmed, best)
}

// Configuration is the immutable option set for one presentation session.
// Lengths are in the host's units (terminal rows for the bundled host);
// FlickSpeedThreshold is in container heights per second.
type Configuration struct {
	SupportsPartialExpansion bool
	// DismissesInStages only matters when SupportsPartialExpansion is set.
	DismissesInStages bool

	UpperMarkGap float64
	LowerMarkGap float64

	// FlickSpeedThreshold of 0 disables flick snapping.
	FlickSpeedThreshold float64
	MaximumCornerRadius float64

	DurationInSeconds                        float64
	DurationIsProportionalToDistanceTraveled bool
	TimingCurve                              Curve

	IsDismissableByOutsideDrawerTaps      bool
	NumberOfTapsForOutsideDrawerDismissal int

	IsFullyPresentableByDrawerTaps        bool
	NumberOfTapsForFullDrawerPresentation int

	IsDrawerDraggable bool
}

func DefaultConfiguration() Configuration {
	return Configuration{
		SupportsPartialExpansion:              true,
		DismissesInStages:                     false,
		UpperMarkGap:                          3,
		LowerMarkGap:                          3,
		FlickSpeedThreshold:                   3,
		MaximumCornerRadius:                   2,
		DurationInSeconds:                     0.4,
		TimingCurve:                           CurveEaseInOut,
		IsDismissableByOutsideDrawerTaps:      true,
		NumberOfTapsForOutsideDrawerDismissal: 1,
		IsFullyPresentableByDrawerTaps:        true,
		NumberOfTapsForFullDrawerPresentation: 1,
		IsDrawerDraggable:                     true,
	}
}

func (c Configuration) Validate() error {
	switch {
	case c.UpperMarkGap < 0:
		return fmt.Errorf("%w: upper mark gap %v is negative", ErrInvalidConfiguration, c.UpperMarkGap)
	case c.LowerMarkGap < 0:
		return fmt.Errorf("%w: lower mark gap %v is negative", ErrInvalidConfiguration, c.LowerMarkGap)
	case c.FlickSpeedThreshold < 0:
		return fmt.Errorf("%w: flick speed threshold %v is negative", ErrInvalidConfiguration, c.FlickSpeedThreshold)
	case c.MaximumCornerRadius < 0:
		return fmt.Errorf("%w: maximum corner radius %v is negative", ErrInvalidConfiguration, c.MaximumCornerRadius)
	case c.DurationInSeconds <= 0:
		return fmt.Errorf("%w: duration %vs must be positive", ErrInvalidConfiguration, c.DurationInSeconds)
	case c.NumberOfTapsForOutsideDrawerDismissal < 0:
		return fmt.Errorf("%w: outside tap count %d is negative", ErrInvalidConfiguration, c.NumberOfTapsForOutsideDrawerDismissal)
	case c.NumberOfTapsForFullDrawerPresentation < 0:
		return fmt.Errorf("%w: drawer tap count %d is negative", ErrInvalidConfiguration, c.NumberOfTapsForFullDrawerPresentation)
	}
	if _, err := ParseCurve(string(c.TimingCurve)); err != nil {
		return err
	}
	return nil
}

func (c Configuration) Duration() time.Duration {
	return time.Duration(c.DurationInSeconds * float64(time.Second))
}
