package domain

import "context"

// CRUDPort is the appointments persistence surface exposed to other modules.
// The voice dispatcher books through Create
type CRUDPort interface {
	Create(ctx context.Context, in CreateInput) (Appointment, error)
	List(ctx context.Context, userID string) ([]Appointment, error)
	Update(ctx context.Context, id string, in UpdateInput) (Appointment, error)
	Delete(ctx context.Context, id, userID string) error
}
