package service

import (
	"context"
	"fmt"

	"github.com/jask/drawerkit/core/drawer"
	"github.com/jask/drawerkit/internal/database/repository"
)

// RestStats counts release decisions per rest.
type RestStats struct {
	Expanded int
	Partial  int
	Hidden   int
}

func (s RestStats) Total() int { return s.Expanded + s.Partial + s.Hidden }

// ReleaseStats summarises release decisions for one session, or every
// session when sessionID is empty.
func ReleaseStats(ctx context.Context, events *repository.EventRepo, sessionID string) (RestStats, error) {
	counts, err := events.RestCounts(ctx, sessionID, string(drawer.EventRelease))
	if err != nil {
		return RestStats{}, fmt.Errorf("release stats: %w", err)
	}
	var s RestStats
	for _, c := range counts {
		switch c.Rest {
		case drawer.RestExpanded.String():
			s.Expanded += c.Count
		case drawer.RestPartial.String():
			s.Partial += c.Count
		case drawer.RestHidden.String():
			s.Hidden += c.Count
		}
	}
	return s, nil
}
