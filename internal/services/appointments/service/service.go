// Package service implements appointments CRUD with datetime validation
package service

import (
	"context"

	"github.com/google/uuid"

	"assistant/internal/core/when"
	"assistant/internal/modkit/repokit"
	"assistant/internal/platform/clock"
	perr "assistant/internal/platform/errors"
	"assistant/internal/services/appointments/domain"
	"assistant/internal/services/appointments/repo"
)

// Service implements domain.CRUDPort
type Service struct {
	db      repokit.TxRunner
	storage repokit.Binder[repo.Storage]
	clock   clock.Clock
}

// New constructs the appointments service
func New(db repokit.TxRunner, storage repokit.Binder[repo.Storage], clk clock.Clock) *Service {
	if clk == nil {
		clk = clock.System()
	}
	return &Service{db: db, storage: storage, clock: clk}
}

// validate enforces the booking rules before any persistence call:
// well-formed date and times, not in the past, end strictly after start
func (s *Service) validate(date, start, end string) error {
	if !when.IsDate(date) {
		return perr.Validationf("date must be in YYYY-MM-DD format")
	}
	if !when.IsClock(start) {
		return perr.Validationf("startTime must be in 24-hour HH:MM format")
	}
	if end != "" {
		if !when.IsClock(end) {
			return perr.Validationf("endTime must be in 24-hour HH:MM format")
		}
		if end <= start {
			return perr.Validationf("endTime must be after startTime")
		}
	}

	now := s.clock.Now()
	today := now.Format(when.ISODate)
	if date < today {
		return perr.Validationf("cannot book an appointment in the past")
	}
	if date == today && start < now.Format(when.Clock) {
		return perr.Validationf("cannot book an appointment at a time that has already passed")
	}
	return nil
}

// Create implements domain.CRUDPort
func (s *Service) Create(ctx context.Context, in domain.CreateInput) (domain.Appointment, error) {
	if err := s.validate(in.Date, in.StartTime, in.EndTime); err != nil {
		return domain.Appointment{}, err
	}
	a := domain.Appointment{
		ID:        uuid.NewString(),
		UserID:    in.UserID,
		Date:      in.Date,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Location:  in.Location,
	}
	if err := s.storage.Bind(s.db).Insert(ctx, a); err != nil {
		return domain.Appointment{}, err
	}
	return a, nil
}

// List implements domain.CRUDPort
func (s *Service) List(ctx context.Context, userID string) ([]domain.Appointment, error) {
	return s.storage.Bind(s.db).ListByOwner(ctx, userID)
}

// Update implements domain.CRUDPort
func (s *Service) Update(ctx context.Context, id string, in domain.UpdateInput) (domain.Appointment, error) {
	if err := s.validate(in.Date, in.StartTime, in.EndTime); err != nil {
		return domain.Appointment{}, err
	}
	a := domain.Appointment{
		ID:        id,
		UserID:    in.UserID,
		Date:      in.Date,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Location:  in.Location,
	}
	n, err := s.storage.Bind(s.db).UpdateOwned(ctx, a)
	if err != nil {
		return domain.Appointment{}, err
	}
	if n == 0 {
		return domain.Appointment{}, perr.NotFoundf("Appointment not found or you do not have permission to update it.")
	}
	return a, nil
}

// Delete implements domain.CRUDPort
func (s *Service) Delete(ctx context.Context, id, userID string) error {
	n, err := s.storage.Bind(s.db).DeleteOwned(ctx, id, userID)
	if err != nil {
		return err
	}
	if n == 0 {
		return perr.NotFoundf("Appointment not found or you do not have permission to delete it.")
	}
	return nil
}
