// Package service implements contacts CRUD with ownership checks
package service

import (
	"context"

	"github.com/google/uuid"

	"assistant/internal/modkit/repokit"
	perr "assistant/internal/platform/errors"
	"assistant/internal/services/contacts/domain"
	"assistant/internal/services/contacts/repo"
)

// AnonymousUser lists every row, it is the logged-out browse identity
const AnonymousUser = "anonymous"

// Service implements domain.CRUDPort
type Service struct {
	db      repokit.TxRunner
	storage repokit.Binder[repo.Storage]
}

// New constructs the contacts service
func New(db repokit.TxRunner, storage repokit.Binder[repo.Storage]) *Service {
	return &Service{db: db, storage: storage}
}

// Create implements domain.CRUDPort
func (s *Service) Create(ctx context.Context, in domain.CreateInput) (domain.Contact, error) {
	c := domain.Contact{
		ID:          uuid.NewString(),
		UserID:      in.UserID,
		Name:        in.Name,
		Address:     in.Address,
		PhoneNumber: in.PhoneNumber,
		Email:       in.Email,
	}
	if err := s.storage.Bind(s.db).Insert(ctx, c); err != nil {
		return domain.Contact{}, err
	}
	return c, nil
}

// List implements domain.CRUDPort
func (s *Service) List(ctx context.Context, userID string) ([]domain.Contact, error) {
	st := s.storage.Bind(s.db)
	if userID == "" || userID == AnonymousUser {
		return st.ListAll(ctx)
	}
	return st.ListByOwner(ctx, userID)
}

// Update implements domain.CRUDPort
func (s *Service) Update(ctx context.Context, id string, in domain.UpdateInput) (domain.Contact, error) {
	c := domain.Contact{
		ID:          id,
		UserID:      in.UserID,
		Name:        in.Name,
		Address:     in.Address,
		PhoneNumber: in.PhoneNumber,
		Email:       in.Email,
	}
	n, err := s.storage.Bind(s.db).UpdateOwned(ctx, c)
	if err != nil {
		return domain.Contact{}, err
	}
	if n == 0 {
		return domain.Contact{}, perr.NotFoundf("Contact not found or you do not have permission to update it.")
	}
	return c, nil
}

// Delete implements domain.CRUDPort
func (s *Service) Delete(ctx context.Context, id, userID string) error {
	n, err := s.storage.Bind(s.db).DeleteOwned(ctx, id, userID)
	if err != nil {
		return err
	}
	if n == 0 {
		return perr.NotFoundf("Contact not found or you do not have permission to delete it.")
	}
	return nil
}
