package domain

import "context"

// CRUDPort is the contacts persistence surface exposed to other modules
type CRUDPort interface {
	Create(ctx context.Context, in CreateInput) (Contact, error)
	List(ctx context.Context, userID string) ([]Contact, error)
	Update(ctx context.Context, id string, in UpdateInput) (Contact, error)
	Delete(ctx context.Context, id, userID string) error
}
