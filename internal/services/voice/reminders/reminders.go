// Package reminders arms one-shot spoken reminders for a voice session.
// Reminders live only in memory, they vanish with the session
package reminders

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"assistant/internal/platform/clock"
	perr "assistant/internal/platform/errors"
	"assistant/internal/services/voice/domain"
)

// ErrPastTime is spoken when the trigger instant already elapsed
const ErrPastTime = "I can't set reminders for past times."

// Scheduler tracks the pending reminder set for one session
type Scheduler struct {
	mu      sync.Mutex
	timers  domain.Timers
	clock   clock.Clock
	sink    func(text string)
	pending map[string]domain.Handle
}

// New constructs a scheduler whose fired reminders go to sink
func New(timers domain.Timers, clk clock.Clock, sink func(text string)) *Scheduler {
	if timers == nil {
		timers = SystemTimers()
	}
	if clk == nil {
		clk = clock.System()
	}
	return &Scheduler{
		timers:  timers,
		clock:   clk,
		sink:    sink,
		pending: make(map[string]domain.Handle),
	}
}

// Schedule arms a one-shot reminder. Past instants are rejected and
// nothing is armed
func (s *Scheduler) Schedule(text string, at time.Time) (domain.Handle, error) {
	now := s.clock.Now()
	if !at.After(now) {
		return nil, perr.Validationf(ErrPastTime)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	h := s.timers.AfterFunc(at.Sub(now), func() {
		s.mu.Lock()
		delete(s.pending, id)
		s.mu.Unlock()
		s.sink(text)
	})
	s.pending[id] = h
	return h, nil
}

// CancelAll stops every armed reminder and clears the pending set
func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, h := range s.pending {
		h.Stop()
		delete(s.pending, id)
	}
}

// Pending reports the number of armed reminders
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// SystemTimers backs the scheduler with real time.AfterFunc timers
func SystemTimers() domain.Timers { return sysTimers{} }

type sysTimers struct{}

type sysHandle struct{ t *time.Timer }

func (h sysHandle) Stop() bool { return h.t.Stop() }

func (sysTimers) AfterFunc(d time.Duration, fn func()) domain.Handle {
	return sysHandle{t: time.AfterFunc(d, fn)}
}
