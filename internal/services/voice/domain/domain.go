// Package domain defines the capability seams for the voice session.
// Speech capture, speech playback, and delayed actions are injected so
// the session logic stays deterministic under test
package domain

import (
	"context"
	"time"

	"golang.org/x/text/language"
)

// State is the session phase
type State string

// Session states
const (
	StateIdle       State = "idle"
	StateListening  State = "listening"
	StateProcessing State = "processing"
	StateSpeaking   State = "speaking"
)

// InputEvents receives recognition outcomes from a SpeechInput.
// OnNoSpeech is the distinguished quiet-timeout case and must not be
// surfaced as a user-facing failure
type InputEvents interface {
	OnTranscript(text string)
	OnNoSpeech()
	OnInputError(err error)
}

// SpeechInput is the capture engine for one session
type SpeechInput interface {
	Start(lang language.Tag, ev InputEvents) error
	Stop()
}

// SpeechOutput plays a response. Speak must call done exactly once,
// Cancel must silence any in-flight playback immediately
type SpeechOutput interface {
	Speak(text string, lang language.Tag, done func(error))
	Cancel()
}

// Handle controls one armed delayed action
type Handle interface {
	// Stop reports whether the action was cancelled before firing
	Stop() bool
}

// Timers arms delayed actions, time.AfterFunc behind a seam
type Timers interface {
	AfterFunc(d time.Duration, fn func()) Handle
}

// Result is one dispatched turn's outcome
type Result struct {
	// Say is the spoken response, always non-empty
	Say string

	// Lang, when set, switches the session language for later turns
	Lang language.Tag
}

// Dispatcher routes one finalized transcript to an action
type Dispatcher interface {
	Dispatch(ctx context.Context, text string, at time.Time) Result
}

// ReminderPort is the slice of the reminder scheduler the dispatcher needs
type ReminderPort interface {
	Schedule(text string, at time.Time) (Handle, error)
}
