// Package repo provides the appointments repository
package repo

import (
	"context"

	"assistant/internal/modkit/repokit"
	perr "assistant/internal/platform/errors"
	"assistant/internal/services/appointments/domain"
)

type (
	sqlite struct{ q repokit.Queryer }
	binder struct{}
)

// NewSQL constructs a repo binder for the sql seam
func NewSQL() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &sqlite{q: q} }

// Storage defines the appointments repository
type Storage interface {
	Insert(ctx context.Context, a domain.Appointment) error
	ListByOwner(ctx context.Context, userID string) ([]domain.Appointment, error)
	UpdateOwned(ctx context.Context, a domain.Appointment) (int64, error)
	DeleteOwned(ctx context.Context, id, userID string) (int64, error)
}

// Insert implements Storage
func (s *sqlite) Insert(ctx context.Context, a domain.Appointment) error {
	_, err := s.q.Exec(ctx,
		`INSERT INTO appointments (id, user_id, date, start_time, end_time, location)
		VALUES (?, ?, ?, ?, ?, ?)`,
		a.ID, a.UserID, a.Date, a.StartTime, a.EndTime, a.Location,
	)
	if err != nil {
		return perr.FromSQLite(err, "appointment insert")
	}
	return nil
}

// ListByOwner implements Storage
func (s *sqlite) ListByOwner(ctx context.Context, userID string) ([]domain.Appointment, error) {
	rows, err := s.q.Query(ctx,
		`SELECT id, user_id, date, start_time, COALESCE(end_time, ''), COALESCE(location, '')
		FROM appointments WHERE user_id = ? ORDER BY date, start_time`,
		userID,
	)
	if err != nil {
		return nil, perr.FromSQLite(err, "appointment list")
	}
	defer rows.Close()

	var out []domain.Appointment
	for rows.Next() {
		var a domain.Appointment
		if err := rows.Scan(&a.ID, &a.UserID, &a.Date, &a.StartTime, &a.EndTime, &a.Location); err != nil {
			return nil, perr.FromSQLite(err, "appointment scan")
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// UpdateOwned updates an appointment only when the owner matches and reports rows touched
func (s *sqlite) UpdateOwned(ctx context.Context, a domain.Appointment) (int64, error) {
	tag, err := s.q.Exec(ctx,
		`UPDATE appointments SET date = ?, start_time = ?, end_time = ?, location = ?
		WHERE id = ? AND user_id = ?`,
		a.Date, a.StartTime, a.EndTime, a.Location, a.ID, a.UserID,
	)
	if err != nil {
		return 0, perr.FromSQLite(err, "appointment update")
	}
	return tag.RowsAffected(), nil
}

// DeleteOwned deletes an appointment only when the owner matches and reports rows touched
func (s *sqlite) DeleteOwned(ctx context.Context, id, userID string) (int64, error) {
	tag, err := s.q.Exec(ctx,
		`DELETE FROM appointments WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	if err != nil {
		return 0, perr.FromSQLite(err, "appointment delete")
	}
	return tag.RowsAffected(), nil
}
