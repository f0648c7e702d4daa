// Package service implements the assistant query orchestration
package service

import (
	"context"

	"assistant/internal/modkit/repokit"
	"assistant/internal/platform/clock"
	"assistant/internal/platform/logger"
	"assistant/internal/services/assistant/domain"
	"assistant/internal/services/assistant/repo"
)

const defaultHistoryLimit = 50

// Service answers queries and records them per user
type Service struct {
	log      *logger.Logger
	db       repokit.TxRunner
	storage  repokit.Binder[repo.Storage]
	resolver domain.Resolver
	clock    clock.Clock
}

// New constructs the assistant service
func New(
	log *logger.Logger,
	db repokit.TxRunner,
	storage repokit.Binder[repo.Storage],
	resolver domain.Resolver,
	clk clock.Clock,
) *Service {
	if clk == nil {
		clk = clock.System()
	}
	return &Service{log: log, db: db, storage: storage, resolver: resolver, clock: clk}
}

// Query implements domain.QueryPort
func (s *Service) Query(ctx context.Context, in domain.QueryInput) (domain.QueryOutput, error) {
	answer, err := s.resolver.Resolve(ctx, in.Prompt)
	if err != nil {
		return domain.QueryOutput{}, err
	}

	// history is best effort, a failed write never loses the answer
	if in.UserID != "" {
		st := s.storage.Bind(s.db)
		if err := st.Append(ctx, in.UserID, in.Prompt, answer, s.clock.Now()); err != nil {
			s.log.Warn().Err(err).Str("user_id", in.UserID).Msg("history append failed")
		}
	}

	return domain.QueryOutput{Response: answer}, nil
}

// History implements domain.HistoryPort
func (s *Service) History(ctx context.Context, in domain.HistoryInput) ([]domain.HistoryEntry, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.storage.Bind(s.db).Recent(ctx, in.UserID, limit)
}
