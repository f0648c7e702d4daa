// Package domain defines the types and interfaces for the subscribers service
package domain

import (
	"context"
	"time"
)

// Subscriber is one newsletter recipient
type Subscriber struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribedAt"`
}

// SubscribeInput is the body of a subscribe request
type SubscribeInput struct {
	Email string `json:"email" validate:"required,email"`
}

// SubscribeOutput carries the user-facing confirmation message
type SubscribeOutput struct {
	Message string `json:"message"`
}

// SubscribePort is the subscription surface exposed to the HTTP layer
type SubscribePort interface {
	Subscribe(ctx context.Context, in SubscribeInput) (SubscribeOutput, error)
}
