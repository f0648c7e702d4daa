package dispatch_test

import (
	"context"
	"testing"
	"time"

	"golang.org/x/text/language"

	"assistant/internal/platform/testkit"
	apptdomain "assistant/internal/services/appointments/domain"
	asstdomain "assistant/internal/services/assistant/domain"
	"assistant/internal/services/voice/dispatch"
	"assistant/internal/services/voice/domain"
)

type fakeQuery struct {
	prompts []string
	answer  string
}

func (f *fakeQuery) Query(_ context.Context, in asstdomain.QueryInput) (asstdomain.QueryOutput, error) {
	f.prompts = append(f.prompts, in.Prompt)
	return asstdomain.QueryOutput{Response: f.answer}, nil
}

type fakeAppointments struct {
	created []apptdomain.CreateInput
	err     error
}

func (f *fakeAppointments) Create(_ context.Context, in apptdomain.CreateInput) (apptdomain.Appointment, error) {
	if f.err != nil {
		return apptdomain.Appointment{}, f.err
	}
	f.created = append(f.created, in)
	return apptdomain.Appointment{
		ID:        "a1",
		UserID:    in.UserID,
		Date:      in.Date,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Location:  in.Location,
	}, nil
}

func (f *fakeAppointments) List(context.Context, string) ([]apptdomain.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointments) Update(context.Context, string, apptdomain.UpdateInput) (apptdomain.Appointment, error) {
	return apptdomain.Appointment{}, nil
}

func (f *fakeAppointments) Delete(context.Context, string, string) error { return nil }

type fakeReminders struct {
	tasks    []string
	triggers []time.Time
	err      error
}

type nopHandle struct{}

func (nopHandle) Stop() bool { return true }

func (f *fakeReminders) Schedule(text string, at time.Time) (domain.Handle, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, text)
	f.triggers = append(f.triggers, at)
	return nopHandle{}, nil
}

var now = time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

func newDispatcher(q *fakeQuery, a *fakeAppointments, r *fakeReminders) *dispatch.Dispatcher {
	return dispatch.New(testkit.NopLogger(), q, a, r, "u1",
		dispatch.WithRand(func(int) int { return 0 }))
}

func TestDispatch_ReminderScenario(t *testing.T) {
	r := &fakeReminders{}
	d := newDispatcher(&fakeQuery{}, &fakeAppointments{}, r)

	res := d.Dispatch(context.Background(), "remind me to call John in 30 minutes", now)
	if res.Say != "Okay, I'll remind you to call John." {
		t.Fatalf("unexpected reply %q", res.Say)
	}
	if len(r.tasks) != 1 || r.tasks[0] != "call John" {
		t.Fatalf("expected call John got %v", r.tasks)
	}
	want := time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)
	if !r.triggers[0].Equal(want) {
		t.Fatalf("expected %v got %v", want, r.triggers[0])
	}
}

func TestDispatch_AppointmentBooksThroughPort(t *testing.T) {
	a := &fakeAppointments{}
	d := newDispatcher(&fakeQuery{}, a, &fakeReminders{})

	res := d.Dispatch(context.Background(), "book an appointment for tomorrow at 3pm to 5pm in lekki", now)
	if len(a.created) != 1 {
		t.Fatalf("expected one booking got %d", len(a.created))
	}
	in := a.created[0]
	if in.UserID != "u1" || in.Date != "2024-01-11" || in.StartTime != "15:00" || in.EndTime != "17:00" {
		t.Fatalf("unexpected booking %+v", in)
	}
	if res.Say != "Appointment booked for 2024-01-11 at 15:00 in lekki." {
		t.Fatalf("unexpected reply %q", res.Say)
	}
}

func TestDispatch_TimeQuery(t *testing.T) {
	d := newDispatcher(&fakeQuery{}, &fakeAppointments{}, &fakeReminders{})

	res := d.Dispatch(context.Background(), "what is the time in japan", now)
	// 09:00 UTC is 18:00 in Tokyo
	if res.Say != "The time in japan is 6:00 PM." {
		t.Fatalf("unexpected reply %q", res.Say)
	}
}

func TestDispatch_SwitchLanguage(t *testing.T) {
	d := newDispatcher(&fakeQuery{}, &fakeAppointments{}, &fakeReminders{})

	res := d.Dispatch(context.Background(), "switch to uk english", now)
	if res.Say != "Switched to UK English." {
		t.Fatalf("unexpected reply %q", res.Say)
	}
	if res.Lang != language.MustParse("en-GB") {
		t.Fatalf("expected en-GB got %v", res.Lang)
	}
}

func TestDispatch_GeneralGoesToQueryPort(t *testing.T) {
	q := &fakeQuery{answer: "because of Rayleigh scattering"}
	d := newDispatcher(q, &fakeAppointments{}, &fakeReminders{})

	res := d.Dispatch(context.Background(), "why is the sky blue", now)
	if res.Say != "because of Rayleigh scattering" {
		t.Fatalf("unexpected reply %q", res.Say)
	}
	if len(q.prompts) != 1 || q.prompts[0] != "why is the sky blue" {
		t.Fatalf("expected the verbatim prompt got %v", q.prompts)
	}
}

func TestDispatch_CannedNeverHitsPorts(t *testing.T) {
	q := &fakeQuery{answer: "x"}
	d := newDispatcher(q, &fakeAppointments{}, &fakeReminders{})

	res := d.Dispatch(context.Background(), "hello there", now)
	if res.Say == "" {
		t.Fatal("expected a canned reply")
	}
	if len(q.prompts) != 0 {
		t.Fatalf("canned replies must not query, got %v", q.prompts)
	}
}
