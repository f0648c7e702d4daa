// Package repo provides the assistant history repository
package repo

import (
	"context"
	"time"

	"assistant/internal/modkit/repokit"
	perr "assistant/internal/platform/errors"
	"assistant/internal/services/assistant/domain"
)

type (
	sqlite struct{ q repokit.Queryer }
	binder struct{}
)

// NewSQL constructs a repo binder for the sql seam
func NewSQL() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &sqlite{q: q} }

// Storage defines the assistant repository
type Storage interface {
	Append(ctx context.Context, userID, command, response string, at time.Time) error
	Recent(ctx context.Context, userID string, limit int) ([]domain.HistoryEntry, error)
}

// Append implements Storage
func (s *sqlite) Append(ctx context.Context, userID, command, response string, at time.Time) error {
	_, err := s.q.Exec(ctx,
		`INSERT INTO history (user_id, command, response, timestamp) VALUES (?, ?, ?, ?)`,
		userID, command, response, at.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return perr.FromSQLite(err, "history append")
	}
	return nil
}

// Recent implements Storage
func (s *sqlite) Recent(ctx context.Context, userID string, limit int) ([]domain.HistoryEntry, error) {
	rows, err := s.q.Query(ctx,
		`SELECT id, user_id, command, COALESCE(response, ''), timestamp
		FROM history WHERE user_id = ? ORDER BY id DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, perr.FromSQLite(err, "history recent")
	}
	defer rows.Close()

	var out []domain.HistoryEntry
	for rows.Next() {
		var e domain.HistoryEntry
		var ts string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Command, &e.Response, &ts); err != nil {
			return nil, perr.FromSQLite(err, "history scan")
		}
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			e.Timestamp = t
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
