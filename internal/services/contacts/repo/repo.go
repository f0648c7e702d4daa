// Package repo provides the contacts repository
package repo

import (
	"context"

	"assistant/internal/modkit/repokit"
	perr "assistant/internal/platform/errors"
	"assistant/internal/services/contacts/domain"
)

type (
	sqlite struct{ q repokit.Queryer }
	binder struct{}
)

// NewSQL constructs a repo binder for the sql seam
func NewSQL() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &sqlite{q: q} }

// Storage defines the contacts repository
type Storage interface {
	Insert(ctx context.Context, c domain.Contact) error
	ListByOwner(ctx context.Context, userID string) ([]domain.Contact, error)
	ListAll(ctx context.Context) ([]domain.Contact, error)
	UpdateOwned(ctx context.Context, c domain.Contact) (int64, error)
	DeleteOwned(ctx context.Context, id, userID string) (int64, error)
}

// Insert implements Storage
func (s *sqlite) Insert(ctx context.Context, c domain.Contact) error {
	_, err := s.q.Exec(ctx,
		`INSERT INTO contacts (id, user_id, name, address, phone_number, email)
		VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.UserID, c.Name, c.Address, c.PhoneNumber, c.Email,
	)
	if err != nil {
		return perr.FromSQLite(err, "contact insert")
	}
	return nil
}

// ListByOwner implements Storage
func (s *sqlite) ListByOwner(ctx context.Context, userID string) ([]domain.Contact, error) {
	rows, err := s.q.Query(ctx,
		`SELECT id, user_id, name, COALESCE(address, ''), COALESCE(phone_number, ''), COALESCE(email, '')
		FROM contacts WHERE user_id = ? ORDER BY name`,
		userID,
	)
	if err != nil {
		return nil, perr.FromSQLite(err, "contact list")
	}
	return scanContacts(rows)
}

// ListAll implements Storage
func (s *sqlite) ListAll(ctx context.Context) ([]domain.Contact, error) {
	rows, err := s.q.Query(ctx,
		`SELECT id, user_id, name, COALESCE(address, ''), COALESCE(phone_number, ''), COALESCE(email, '')
		FROM contacts ORDER BY name`,
	)
	if err != nil {
		return nil, perr.FromSQLite(err, "contact list")
	}
	return scanContacts(rows)
}

// UpdateOwned updates a contact only when the owner matches and reports rows touched
func (s *sqlite) UpdateOwned(ctx context.Context, c domain.Contact) (int64, error) {
	tag, err := s.q.Exec(ctx,
		`UPDATE contacts SET name = ?, address = ?, phone_number = ?, email = ?
		WHERE id = ? AND user_id = ?`,
		c.Name, c.Address, c.PhoneNumber, c.Email, c.ID, c.UserID,
	)
	if err != nil {
		return 0, perr.FromSQLite(err, "contact update")
	}
	return tag.RowsAffected(), nil
}

// DeleteOwned deletes a contact only when the owner matches and reports rows touched
func (s *sqlite) DeleteOwned(ctx context.Context, id, userID string) (int64, error) {
	tag, err := s.q.Exec(ctx,
		`DELETE FROM contacts WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	if err != nil {
		return 0, perr.FromSQLite(err, "contact delete")
	}
	return tag.RowsAffected(), nil
}

func scanContacts(rows repokit.Rows) ([]domain.Contact, error) {
	defer rows.Close()

	var out []domain.Contact
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Address, &c.PhoneNumber, &c.Email); err != nil {
			return nil, perr.FromSQLite(err, "contact scan")
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
