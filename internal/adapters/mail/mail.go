// Package mail sends transactional email over SMTP
package mail

import (
	"context"
	"time"

	gomail "github.com/wneessen/go-mail"

	perr "assistant/internal/platform/errors"
	"assistant/internal/platform/logger"
	"assistant/internal/platform/retry"
)

// Options configures the SMTP sender
type Options struct {
	Host     string
	Port     int
	Username string
	Password string

	// From is the display sender, e.g. "Personal Assistant App Team <app@example.com>"
	From string

	// Retries bounds delivery attempts per message
	Retries int
}

// Sender delivers HTML email with bounded retries
type Sender struct {
	opts Options
	log  *logger.Logger
}

// NewSender builds a Sender, missing credentials leave it disabled
func NewSender(o Options) *Sender {
	if o.Port == 0 {
		o.Port = 587
	}
	if o.Retries <= 0 {
		o.Retries = 5
	}
	return &Sender{opts: o, log: logger.Named("mail")}
}

// Enabled reports whether SMTP credentials are configured
func (s *Sender) Enabled() bool { return s.opts.Host != "" && s.opts.Username != "" }

// From returns the configured sender address
func (s *Sender) From() string { return s.opts.From }

// Send delivers one HTML message, retrying transient failures with
// doubling backoff
func (s *Sender) Send(ctx context.Context, to, subject, html string) error {
	if !s.Enabled() {
		return perr.Unavailablef("mail: smtp not configured")
	}

	msg := gomail.NewMsg()
	if err := msg.From(s.opts.From); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "mail: bad from address")
	}
	if err := msg.To(to); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "mail: bad recipient %q", to)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, html)

	client, err := gomail.NewClient(s.opts.Host,
		gomail.WithPort(s.opts.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.opts.Username),
		gomail.WithPassword(s.opts.Password),
	)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "mail: client init")
	}

	_, err = retry.Do(ctx, func() (struct{}, error) {
		return struct{}{}, client.DialAndSendWithContext(ctx, msg)
	}, retry.Options{
		Retries:   s.opts.Retries,
		BaseDelay: time.Second,
		IsRetryable: func(error) bool {
			// SMTP failures are treated as transient up to the budget
			return true
		},
	})
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "mail: send to %s", to)
	}
	s.log.Info().Str("to", to).Str("subject", subject).Msg("mail sent")
	return nil
}
