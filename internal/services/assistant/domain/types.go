// Package domain defines the types and interfaces for the assistant service
package domain

import "time"

// QueryInput is the body of an assistant query
type QueryInput struct {
	Prompt string `json:"prompt" validate:"required"`
	UserID string `json:"userId"`
}

// QueryOutput is the assistant's resolved answer
type QueryOutput struct {
	Response string `json:"response"`
}

// HistoryEntry is one dispatched command and its answer
type HistoryEntry struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"userId"`
	Command   string    `json:"command"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// HistoryInput pages a user's command history
type HistoryInput struct {
	UserID string `json:"userId" validate:"required"`
	Limit  int    `json:"limit" validate:"omitempty,min=1,max=200"`
}
