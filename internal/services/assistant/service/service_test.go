package service_test

import (
	"context"
	"testing"
	"time"

	"assistant/internal/modkit/repokit"
	"assistant/internal/platform/clock"
	"assistant/internal/platform/testkit"
	"assistant/internal/services/assistant/domain"
	"assistant/internal/services/assistant/repo"
	"assistant/internal/services/assistant/service"
)

type fixedResolver struct{ answer string }

func (f fixedResolver) Resolve(context.Context, string) (string, error) { return f.answer, nil }

type recordEntry struct {
	userID, command, response string
	at                        time.Time
}

type fakeStorage struct {
	appended    []recordEntry
	recentLimit int
	entries     []domain.HistoryEntry
}

func (f *fakeStorage) Append(_ context.Context, userID, command, response string, at time.Time) error {
	f.appended = append(f.appended, recordEntry{userID, command, response, at})
	return nil
}

func (f *fakeStorage) Recent(_ context.Context, _ string, limit int) ([]domain.HistoryEntry, error) {
	f.recentLimit = limit
	return f.entries, nil
}

type fakeBinder struct{ st *fakeStorage }

func (f fakeBinder) Bind(repokit.Queryer) repo.Storage { return f.st }

var now = time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

func newService(st *fakeStorage, answer string) *service.Service {
	return service.New(testkit.NopLogger(), nil, fakeBinder{st: st}, fixedResolver{answer: answer}, clock.Fixed(now))
}

func TestQuery_RecordsHistoryForKnownUser(t *testing.T) {
	st := &fakeStorage{}
	svc := newService(st, "It is 3 PM.")

	out, err := svc.Query(context.Background(), domain.QueryInput{Prompt: "what time is it", UserID: "u1"})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if out.Response != "It is 3 PM." {
		t.Fatalf("unexpected response %q", out.Response)
	}
	if len(st.appended) != 1 {
		t.Fatalf("expected one history row, got %d", len(st.appended))
	}
	got := st.appended[0]
	if got.userID != "u1" || got.command != "what time is it" || got.response != "It is 3 PM." || !got.at.Equal(now) {
		t.Fatalf("unexpected history row %+v", got)
	}
}

func TestQuery_AnonymousSkipsHistory(t *testing.T) {
	st := &fakeStorage{}
	svc := newService(st, "hello")

	if _, err := svc.Query(context.Background(), domain.QueryInput{Prompt: "hi"}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(st.appended) != 0 {
		t.Fatalf("expected no history rows, got %d", len(st.appended))
	}
}

func TestHistory_DefaultsLimit(t *testing.T) {
	st := &fakeStorage{entries: []domain.HistoryEntry{{ID: 1, UserID: "u1", Command: "hi", Response: "hello"}}}
	svc := newService(st, "")

	got, err := svc.History(context.Background(), domain.HistoryInput{UserID: "u1"})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if st.recentLimit != 50 {
		t.Fatalf("expected the default limit of 50, got %d", st.recentLimit)
	}
	if len(got) != 1 || got[0].Command != "hi" {
		t.Fatalf("unexpected entries %+v", got)
	}
}
