// Package repo provides the subscribers repository
package repo

import (
	"context"
	"time"

	"assistant/internal/modkit/repokit"
	perr "assistant/internal/platform/errors"
)

type (
	sqlite struct{ q repokit.Queryer }
	binder struct{}
)

// NewSQL constructs a repo binder for the sql seam
func NewSQL() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &sqlite{q: q} }

// Storage defines the subscribers repository
type Storage interface {
	Exists(ctx context.Context, email string) (bool, error)
	Insert(ctx context.Context, email string, at time.Time) error
	ListEmails(ctx context.Context) ([]string, error)
}

// Exists implements Storage
func (s *sqlite) Exists(ctx context.Context, email string) (bool, error) {
	var n int
	err := s.q.QueryRow(ctx, `SELECT COUNT(1) FROM subscribers WHERE email = ?`, email).Scan(&n)
	if err != nil {
		return false, perr.FromSQLite(err, "subscriber exists")
	}
	return n > 0, nil
}

// Insert implements Storage
func (s *sqlite) Insert(ctx context.Context, email string, at time.Time) error {
	_, err := s.q.Exec(ctx,
		`INSERT INTO subscribers (email, subscribed_at) VALUES (?, ?)`,
		email, at.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return perr.FromSQLite(err, "subscriber insert")
	}
	return nil
}

// ListEmails implements Storage
func (s *sqlite) ListEmails(ctx context.Context) ([]string, error) {
	rows, err := s.q.Query(ctx, `SELECT email FROM subscribers ORDER BY id`)
	if err != nil {
		return nil, perr.FromSQLite(err, "subscriber list")
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var e string
		if err := rows.Scan(&e); err != nil {
			return nil, perr.FromSQLite(err, "subscriber scan")
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
