// Package domain defines the types and interfaces for the appointments service
package domain

// Appointment is one calendar entry owned by a user
type Appointment struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime,omitempty"`
	Location  string `json:"location,omitempty"`
}

// CreateInput is the body of an appointment creation
type CreateInput struct {
	UserID    string `json:"userId" validate:"required"`
	Date      string `json:"date" validate:"required"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime"`
	Location  string `json:"location"`
}

// UpdateInput is the body of an appointment update, identity comes from the path
type UpdateInput struct {
	UserID    string `json:"userId" validate:"required"`
	Date      string `json:"date" validate:"required"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime"`
	Location  string `json:"location"`
}
