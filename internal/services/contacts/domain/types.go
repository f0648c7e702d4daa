// Package domain defines the types and interfaces for the contacts service
package domain

// Contact is one address-book record owned by a user
type Contact struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	Address     string `json:"address,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Email       string `json:"email,omitempty"`
}

// CreateInput is the body of a contact creation
type CreateInput struct {
	UserID      string `json:"userId" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email" validate:"omitempty,email"`
}

// UpdateInput is the body of a contact update, identity comes from the path
type UpdateInput struct {
	UserID      string `json:"userId" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email" validate:"omitempty,email"`
}
