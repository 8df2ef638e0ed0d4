package repository

import (
	"context"
	"database/sql"
)

// EventRepo handles journal events.
type EventRepo struct {
	db *sql.DB
}

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

const insertEvent = `
	INSERT INTO events(id, session_id, seq, kind, position, velocity, target, container_height, rest, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`

func (r *EventRepo) Insert(ctx context.Context, e Event) error {
	_, err := r.db.ExecContext(ctx, insertEvent,
		e.ID, e.SessionID, e.Seq, e.Kind, e.Position, e.Velocity, e.Target, e.ContainerHeight, e.Rest, e.CreatedAt)
	return err
}

// InsertBatch writes events inside tx.
func (r *EventRepo) InsertBatch(ctx context.Context, tx *sql.Tx, events []Event) error {
	stmt, err := tx.PrepareContext(ctx, insertEvent)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, e := range events {
		if _, err := stmt.ExecContext(ctx,
			e.ID, e.SessionID, e.Seq, e.Kind, e.Position, e.Velocity, e.Target, e.ContainerHeight, e.Rest, e.CreatedAt); err != nil {
			return err
		}
	}
	return nil
}

func (r *EventRepo) BySession(ctx context.Context, sessionID string) ([]Event, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, session_id, seq, kind, position, velocity, target, container_height, rest, created_at
	FROM events WHERE session_id = ? ORDER BY seq`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Seq, &e.Kind, &e.Position, &e.Velocity, &e.Target, &e.ContainerHeight, &e.Rest, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// RestCounts groups events of kind by rest. An empty sessionID counts
// across every session.
func (r *EventRepo) RestCounts(ctx context.Context, sessionID, kind string) ([]RestCount, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT rest, COUNT(*) FROM events
	WHERE kind = ? AND (? = '' OR session_id = ?)
	GROUP BY rest ORDER BY rest`, kind, sessionID, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RestCount
	for rows.Next() {
		var c RestCount
		if err := rows.Scan(&c.Rest, &c.Count); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
