package repository

import (
	"context"
	"database/sql"
)

// SessionRepo handles drawer sessions.
type SessionRepo struct {
	db *sql.DB
}

func NewSessionRepo(db *sql.DB) *SessionRepo { return &SessionRepo{db: db} }

func (r *SessionRepo) Create(ctx context.Context, s Session) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO sessions(id, started_at, container_height, partial_height, supports_partial, dismisses_in_stages, flick_speed_threshold, timing_curve)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`, s.ID, s.StartedAt, s.ContainerHeight, s.PartialHeight, s.SupportsPartial, s.DismissesInStages, s.FlickSpeedThreshold, s.TimingCurve)
	return err
}

func (r *SessionRepo) ByID(ctx context.Context, id string) (*Session, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, started_at, container_height, partial_height, supports_partial, dismisses_in_stages, flick_speed_threshold, timing_curve
	FROM sessions WHERE id = ?`, id)
	s, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Recent lists the newest sessions first.
func (r *SessionRepo) Recent(ctx context.Context, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, started_at, container_height, partial_height, supports_partial, dismisses_in_stages, flick_speed_threshold, timing_curve
	FROM sessions ORDER BY started_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (Session, error) {
	var s Session
	err := row.Scan(&s.ID, &s.StartedAt, &s.ContainerHeight, &s.PartialHeight, &s.SupportsPartial, &s.DismissesInStages, &s.FlickSpeedThreshold, &s.TimingCurve)
	return s, err
}
