package service_test

import (
	"context"
	"testing"
	"time"

	"assistant/internal/modkit/repokit"
	"assistant/internal/platform/clock"
	"assistant/internal/platform/testkit"
	"assistant/internal/services/subscribers/domain"
	"assistant/internal/services/subscribers/repo"
	"assistant/internal/services/subscribers/service"
)

type fakeStorage struct {
	emails map[string]time.Time
}

func (f *fakeStorage) Exists(_ context.Context, email string) (bool, error) {
	_, ok := f.emails[email]
	return ok, nil
}

func (f *fakeStorage) Insert(_ context.Context, email string, at time.Time) error {
	f.emails[email] = at
	return nil
}

func (f *fakeStorage) ListEmails(context.Context) ([]string, error) {
	out := make([]string, 0, len(f.emails))
	for e := range f.emails {
		out = append(out, e)
	}
	return out, nil
}

type fakeBinder struct{ st *fakeStorage }

func (f fakeBinder) Bind(repokit.Queryer) repo.Storage { return f.st }

type fakeMailer struct {
	enabled bool
	sent    chan string
}

func (f *fakeMailer) Enabled() bool { return f.enabled }

func (f *fakeMailer) Send(_ context.Context, to, _, _ string) error {
	f.sent <- to
	return nil
}

var now = time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

func newService(st *fakeStorage, m *fakeMailer) *service.Service {
	return service.New(testkit.NopLogger(), nil, fakeBinder{st: st}, m, clock.Fixed(now))
}

func TestSubscribe_NewAddress(t *testing.T) {
	st := &fakeStorage{emails: map[string]time.Time{}}
	m := &fakeMailer{enabled: true, sent: make(chan string, 1)}
	svc := newService(st, m)

	out, err := svc.Subscribe(context.Background(), domain.SubscribeInput{Email: "ada@example.com"})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if out.Message == "" {
		t.Fatal("expected a confirmation message")
	}
	if at, ok := st.emails["ada@example.com"]; !ok || !at.Equal(now) {
		t.Fatalf("expected the subscription stored at %v, got %v ok=%v", now, at, ok)
	}

	select {
	case to := <-m.sent:
		if to != "ada@example.com" {
			t.Fatalf("welcome mail to wrong address %q", to)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("expected a welcome email")
	}
}

func TestSubscribe_DuplicateIsIdempotent(t *testing.T) {
	st := &fakeStorage{emails: map[string]time.Time{"ada@example.com": now}}
	m := &fakeMailer{enabled: true, sent: make(chan string, 1)}
	svc := newService(st, m)

	out, err := svc.Subscribe(context.Background(), domain.SubscribeInput{Email: "ada@example.com"})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if out.Message != "You are already subscribed!" {
		t.Fatalf("unexpected message %q", out.Message)
	}

	select {
	case to := <-m.sent:
		t.Fatalf("no mail expected for a resubscribe, got one to %q", to)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSubscribe_MailerDisabledStillSubscribes(t *testing.T) {
	st := &fakeStorage{emails: map[string]time.Time{}}
	m := &fakeMailer{enabled: false, sent: make(chan string, 1)}
	svc := newService(st, m)

	if _, err := svc.Subscribe(context.Background(), domain.SubscribeInput{Email: "ben@example.com"}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if _, ok := st.emails["ben@example.com"]; !ok {
		t.Fatal("expected the subscription stored")
	}
}
