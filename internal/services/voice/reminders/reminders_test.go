package reminders_test

import (
	"testing"
	"time"

	"assistant/internal/platform/clock"
	"assistant/internal/services/voice/domain"
	"assistant/internal/services/voice/reminders"
)

// fakeTimers arms without real time so tests can fire deterministically
type fakeTimers struct {
	armed []*fakeHandle
}

type fakeHandle struct {
	d       time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (h *fakeHandle) Stop() bool {
	if h.fired || h.stopped {
		return false
	}
	h.stopped = true
	return true
}

func (h *fakeHandle) fire() {
	if h.stopped {
		return
	}
	h.fired = true
	h.fn()
}

func (f *fakeTimers) AfterFunc(d time.Duration, fn func()) domain.Handle {
	h := &fakeHandle{d: d, fn: fn}
	f.armed = append(f.armed, h)
	return h
}

var now = time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

func TestSchedule_PastInstantRejected(t *testing.T) {
	timers := &fakeTimers{}
	s := reminders.New(timers, clock.Fixed(now), func(string) {})

	if _, err := s.Schedule("call John", now.Add(-time.Minute)); err == nil {
		t.Fatal("expected a past-time error")
	}
	if _, err := s.Schedule("call John", now); err == nil {
		t.Fatal("an instant equal to now must be rejected")
	}
	if len(timers.armed) != 0 {
		t.Fatalf("no delayed action may be armed, got %d", len(timers.armed))
	}
	if s.Pending() != 0 {
		t.Fatalf("expected empty pending set got %d", s.Pending())
	}
}

func TestSchedule_ScenarioThirtyMinutes(t *testing.T) {
	timers := &fakeTimers{}
	var spoken []string
	s := reminders.New(timers, clock.Fixed(now), func(text string) { spoken = append(spoken, text) })

	trigger := time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)
	h, err := s.Schedule("call John", trigger)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if h == nil {
		t.Fatal("expected a handle")
	}
	if len(timers.armed) != 1 || timers.armed[0].d != 30*time.Minute {
		t.Fatalf("expected one 30m delay got %+v", timers.armed)
	}
	if s.Pending() != 1 {
		t.Fatalf("expected one pending reminder got %d", s.Pending())
	}

	timers.armed[0].fire()
	if len(spoken) != 1 || spoken[0] != "call John" {
		t.Fatalf("expected the reminder text got %v", spoken)
	}
	if s.Pending() != 0 {
		t.Fatalf("fired reminder must leave the pending set, got %d", s.Pending())
	}
}

func TestCancelAll(t *testing.T) {
	timers := &fakeTimers{}
	var spoken []string
	s := reminders.New(timers, clock.Fixed(now), func(text string) { spoken = append(spoken, text) })

	for i := 0; i < 3; i++ {
		if _, err := s.Schedule("x", now.Add(time.Duration(i+1)*time.Hour)); err != nil {
			t.Fatalf("unexpected error %v", err)
		}
	}
	if s.Pending() != 3 {
		t.Fatalf("expected 3 pending got %d", s.Pending())
	}

	s.CancelAll()
	if s.Pending() != 0 {
		t.Fatalf("expected empty pending set got %d", s.Pending())
	}
	for _, h := range timers.armed {
		h.fire()
	}
	if len(spoken) != 0 {
		t.Fatalf("cancelled reminders must never speak, got %v", spoken)
	}
}
