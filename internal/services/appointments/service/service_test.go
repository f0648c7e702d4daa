package service_test

import (
	"context"
	"testing"
	"time"

	"assistant/internal/modkit/repokit"
	"assistant/internal/platform/clock"
	perr "assistant/internal/platform/errors"
	"assistant/internal/services/appointments/domain"
	"assistant/internal/services/appointments/repo"
	"assistant/internal/services/appointments/service"
)

// fakeStorage records calls so tests can assert validation short-circuits
type fakeStorage struct {
	inserts int
	updates int
	deletes int
	rows    int64
}

func (f *fakeStorage) Insert(context.Context, domain.Appointment) error {
	f.inserts++
	return nil
}

func (f *fakeStorage) ListByOwner(context.Context, string) ([]domain.Appointment, error) {
	return nil, nil
}

func (f *fakeStorage) UpdateOwned(context.Context, domain.Appointment) (int64, error) {
	f.updates++
	return f.rows, nil
}

func (f *fakeStorage) DeleteOwned(context.Context, string, string) (int64, error) {
	f.deletes++
	return f.rows, nil
}

type fakeBinder struct{ st *fakeStorage }

func (f fakeBinder) Bind(repokit.Queryer) repo.Storage { return f.st }

var testNow = time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

func newService(st *fakeStorage) *service.Service {
	return service.New(nil, fakeBinder{st: st}, clock.Fixed(testNow))
}

func valid() domain.CreateInput {
	return domain.CreateInput{
		UserID:    "u1",
		Date:      "2024-01-11",
		StartTime: "15:00",
		EndTime:   "17:00",
		Location:  "Lekki",
	}
}

func TestCreate_Valid(t *testing.T) {
	st := &fakeStorage{}
	a, err := newService(st).Create(context.Background(), valid())
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if a.ID == "" {
		t.Fatal("expected a generated id")
	}
	if st.inserts != 1 {
		t.Fatalf("expected one insert got %d", st.inserts)
	}
}

func TestCreate_EndBeforeStartRejected(t *testing.T) {
	st := &fakeStorage{}
	in := valid()
	in.EndTime = "14:00"
	_, err := newService(st).Create(context.Background(), in)
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("expected validation code got %v", err)
	}
	if st.inserts != 0 {
		t.Fatal("no persistence call may happen on invalid input")
	}
}

func TestCreate_EndEqualStartRejected(t *testing.T) {
	st := &fakeStorage{}
	in := valid()
	in.EndTime = in.StartTime
	if _, err := newService(st).Create(context.Background(), in); err == nil {
		t.Fatal("expected a validation error")
	}
	if st.inserts != 0 {
		t.Fatal("no persistence call may happen on invalid input")
	}
}

func TestCreate_PastDateRejected(t *testing.T) {
	st := &fakeStorage{}
	in := valid()
	in.Date = "2024-01-09"
	if _, err := newService(st).Create(context.Background(), in); err == nil {
		t.Fatal("expected a validation error")
	}
	if st.inserts != 0 {
		t.Fatal("no persistence call may happen on invalid input")
	}
}

func TestCreate_TodayPastTimeRejected(t *testing.T) {
	st := &fakeStorage{}
	in := valid()
	in.Date = "2024-01-10"
	in.StartTime = "08:00"
	in.EndTime = ""
	if _, err := newService(st).Create(context.Background(), in); err == nil {
		t.Fatal("expected a validation error")
	}
	if st.inserts != 0 {
		t.Fatal("no persistence call may happen on invalid input")
	}
}

func TestCreate_MalformedRejected(t *testing.T) {
	st := &fakeStorage{}
	svc := newService(st)

	in := valid()
	in.Date = "01/11/2024"
	if _, err := svc.Create(context.Background(), in); err == nil {
		t.Fatal("expected a date format error")
	}

	in = valid()
	in.StartTime = "3pm"
	if _, err := svc.Create(context.Background(), in); err == nil {
		t.Fatal("expected a time format error")
	}
	if st.inserts != 0 {
		t.Fatal("no persistence call may happen on invalid input")
	}
}

func TestUpdate_OwnershipMismatch(t *testing.T) {
	st := &fakeStorage{rows: 0}
	in := domain.UpdateInput(valid())
	_, err := newService(st).Update(context.Background(), "appt-1", in)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("expected not-found code got %v", err)
	}
	if perr.WireFrom(err).Message != "Appointment not found or you do not have permission to update it." {
		t.Fatalf("unexpected message %q", perr.WireFrom(err).Message)
	}
}

func TestDelete_OwnershipMismatch(t *testing.T) {
	st := &fakeStorage{rows: 0}
	err := newService(st).Delete(context.Background(), "appt-1", "u2")
	if err == nil {
		t.Fatal("expected an error")
	}
	if perr.WireFrom(err).Message != "Appointment not found or you do not have permission to delete it." {
		t.Fatalf("unexpected message %q", perr.WireFrom(err).Message)
	}
}

func TestDelete_OK(t *testing.T) {
	st := &fakeStorage{rows: 1}
	if err := newService(st).Delete(context.Background(), "appt-1", "u1"); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if st.deletes != 1 {
		t.Fatalf("expected one delete got %d", st.deletes)
	}
}
