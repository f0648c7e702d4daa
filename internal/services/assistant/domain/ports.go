package domain

import "context"

// QueryPort resolves prompts to spoken answers
type QueryPort interface {
	Query(ctx context.Context, in QueryInput) (QueryOutput, error)
}

// HistoryPort reads back past commands
type HistoryPort interface {
	History(ctx context.Context, in HistoryInput) ([]HistoryEntry, error)
}

// Resolver turns one prompt into an answer string.
// Implemented by the provider fallback chain
type Resolver interface {
	Resolve(ctx context.Context, prompt string) (string, error)
}
