// Package service implements the email subscription flow
package service

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"assistant/internal/modkit/repokit"
	"assistant/internal/platform/clock"
	"assistant/internal/platform/logger"
	"assistant/internal/services/subscribers/domain"
	"assistant/internal/services/subscribers/repo"
)

// Mailer is the outbound email surface the service needs
type Mailer interface {
	Enabled() bool
	Send(ctx context.Context, to, subject, html string) error
}

// Service implements domain.SubscribePort
type Service struct {
	log     *logger.Logger
	db      repokit.TxRunner
	storage repokit.Binder[repo.Storage]
	mailer  Mailer
	clock   clock.Clock
	cron    *cron.Cron
}

// New constructs the subscribers service
func New(
	log *logger.Logger,
	db repokit.TxRunner,
	storage repokit.Binder[repo.Storage],
	mailer Mailer,
	clk clock.Clock,
) *Service {
	if clk == nil {
		clk = clock.System()
	}
	return &Service{log: log, db: db, storage: storage, mailer: mailer, clock: clk}
}

// Subscribe implements domain.SubscribePort. Resubscribing is idempotent
func (s *Service) Subscribe(ctx context.Context, in domain.SubscribeInput) (domain.SubscribeOutput, error) {
	st := s.storage.Bind(s.db)

	exists, err := st.Exists(ctx, in.Email)
	if err != nil {
		return domain.SubscribeOutput{}, err
	}
	if exists {
		return domain.SubscribeOutput{Message: "You are already subscribed!"}, nil
	}

	if err := st.Insert(ctx, in.Email, s.clock.Now()); err != nil {
		return domain.SubscribeOutput{}, err
	}

	// welcome mail is best effort, the subscription stands either way
	if s.mailer != nil && s.mailer.Enabled() {
		go func(email string) {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			if err := s.mailer.Send(ctx, email, welcomeSubject, welcomeBody); err != nil {
				s.log.Warn().Err(err).Str("email", email).Msg("welcome mail failed")
			}
		}(in.Email)
	}

	return domain.SubscribeOutput{Message: "Subscribed successfully! Check your inbox for a welcome email."}, nil
}

// StartWeeklyDigest arms the recurring follow-up job. Call StopDigest on shutdown
func (s *Service) StartWeeklyDigest(schedule string) error {
	if s.mailer == nil || !s.mailer.Enabled() {
		s.log.Info().Msg("mailer not configured, weekly digest disabled")
		return nil
	}
	if schedule == "" {
		schedule = "@weekly"
	}

	c := cron.New()
	if _, err := c.AddFunc(schedule, s.sendDigest); err != nil {
		return err
	}
	c.Start()
	s.cron = c
	return nil
}

// StopDigest stops the recurring job and waits for a running send to finish
func (s *Service) StopDigest() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	s.cron = nil
}

func (s *Service) sendDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	emails, err := s.storage.Bind(s.db).ListEmails(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("digest list failed")
		return
	}
	for _, email := range emails {
		if err := s.mailer.Send(ctx, email, followUpSubject, followUpBody); err != nil {
			s.log.Warn().Err(err).Str("email", email).Msg("digest mail failed")
		}
	}
	s.log.Info().Int("recipients", len(emails)).Msg("weekly digest sent")
}
