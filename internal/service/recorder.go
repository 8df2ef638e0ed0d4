package service

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jask/drawerkit/core/drawer"
	"github.com/jask/drawerkit/internal/database"
	"github.com/jask/drawerkit/internal/database/repository"
)

const flushThreshold = 32

// Recorder journals drawer events. Observe only buffers, so it is safe on
// the UI thread; Flush does the writes and may run elsewhere.
type Recorder struct {
	db       *sql.DB
	sessions *repository.SessionRepo
	events   *repository.EventRepo
	log      zerolog.Logger
	now      func() time.Time

	mu        sync.Mutex
	sessionID string
	seq       int
	pending   []repository.Event
}

func NewRecorder(db *sql.DB, log zerolog.Logger) *Recorder {
	return &Recorder{
		db:       db,
		sessions: repository.NewSessionRepo(db),
		events:   repository.NewEventRepo(db),
		log:      log,
		now:      database.Now,
	}
}

// Begin starts a new journal session and makes it current.
func (r *Recorder) Begin(ctx context.Context, cfg drawer.Configuration, containerHeight, partialHeight float64) (string, error) {
	s := repository.Session{
		ID:                  uuid.NewString(),
		StartedAt:           r.now(),
		ContainerHeight:     containerHeight,
		PartialHeight:       partialHeight,
		SupportsPartial:     cfg.SupportsPartialExpansion,
		DismissesInStages:   cfg.DismissesInStages,
		FlickSpeedThreshold: cfg.FlickSpeedThreshold,
		TimingCurve:         string(cfg.TimingCurve),
	}
	if err := r.sessions.Create(ctx, s); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	r.mu.Lock()
	r.sessionID = s.ID
	r.seq = 0
	r.mu.Unlock()
	r.log.Info().Str("session", s.ID).Msg("journal session started")
	return s.ID, nil
}

func (r *Recorder) SessionID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessionID
}

// Pending reports buffered events not yet flushed.
func (r *Recorder) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}

// ShouldFlush is true once enough events are buffered.
func (r *Recorder) ShouldFlush() bool {
	return r.Pending() >= flushThreshold
}

func (r *Recorder) Observe(e drawer.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sessionID == "" {
		return
	}
	r.seq++
	r.pending = append(r.pending, repository.Event{
		ID:              uuid.NewString(),
		SessionID:       r.sessionID,
		Seq:             r.seq,
		Kind:            string(e.Kind),
		Position:        e.Position,
		Velocity:        e.Velocity,
		Target:          e.Target,
		ContainerHeight: e.ContainerHeight,
		Rest:            e.Rest.String(),
		CreatedAt:       r.now(),
	})
}

// Flush writes every buffered event in one transaction. On failure the
// events are put back in front of anything buffered meanwhile.
func (r *Recorder) Flush(ctx context.Context) error {
	r.mu.Lock()
	batch := r.pending
	r.pending = nil
	r.mu.Unlock()
	if len(batch) == 0 {
		return nil
	}
	err := database.WithTx(r.db, func(tx *sql.Tx) error {
		return r.events.InsertBatch(ctx, tx, batch)
	})
	if err != nil {
		r.mu.Lock()
		r.pending = append(batch, r.pending...)
		r.mu.Unlock()
		r.log.Error().Err(err).Int("events", len(batch)).Msg("journal flush failed")
		return fmt.Errorf("flush journal: %w", err)
	}
	r.log.Debug().Int("events", len(batch)).Msg("journal flushed")
	return nil
}
