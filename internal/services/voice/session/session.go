// Package session drives the voice conversation state machine:
// Idle, Listening, Processing, Speaking, then back to Listening for
// the next conversational turn
package session

import (
	"context"
	"sync"

	"golang.org/x/text/language"

	"assistant/internal/platform/clock"
	"assistant/internal/platform/logger"
	"assistant/internal/services/voice/domain"
)

// Canceler is the slice of the reminder scheduler teardown needs
type Canceler interface {
	CancelAll()
}

// Options configures a Controller
type Options struct {
	Log        *logger.Logger
	Input      domain.SpeechInput
	Output     domain.SpeechOutput
	Dispatcher domain.Dispatcher
	Reminders  Canceler
	Clock      clock.Clock

	// Lang is the starting speech language, defaults to US English
	Lang language.Tag

	// Status receives passive state announcements, may be nil
	Status func(state domain.State)
}

// Controller owns the microphone and speech resources for one session.
// All callbacks funnel through one mutex, at most one utterance is in
// flight at a time
type Controller struct {
	mu         sync.Mutex
	log        *logger.Logger
	input      domain.SpeechInput
	output     domain.SpeechOutput
	dispatcher domain.Dispatcher
	reminders  Canceler
	clock      clock.Clock
	status     func(domain.State)

	state domain.State
	lang  language.Tag
	done  bool
}

// New constructs an idle controller
func New(o Options) *Controller {
	if o.Clock == nil {
		o.Clock = clock.System()
	}
	if o.Lang == (language.Tag{}) {
		o.Lang = language.AmericanEnglish
	}
	if o.Status == nil {
		o.Status = func(domain.State) {}
	}
	return &Controller{
		log:        o.Log,
		input:      o.Input,
		output:     o.Output,
		dispatcher: o.Dispatcher,
		reminders:  o.Reminders,
		clock:      o.Clock,
		status:     o.Status,
		state:      domain.StateIdle,
		lang:       o.Lang,
	}
}

// State reports the current session phase
func (c *Controller) State() domain.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Lang reports the current speech language
func (c *Controller) Lang() language.Tag {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lang
}

// StartListening opens the capture stream. Any in-flight speech output
// is cancelled first
func (c *Controller) StartListening() error {
	c.mu.Lock()
	if c.done {
		c.mu.Unlock()
		return nil
	}
	if c.state == domain.StateSpeaking {
		c.output.Cancel()
	}
	c.state = domain.StateListening
	lang := c.lang
	c.mu.Unlock()

	c.status(domain.StateListening)
	if err := c.input.Start(lang, c); err != nil {
		c.toIdle()
		return err
	}
	return nil
}

// StopListening releases the capture stream without tearing the session down
func (c *Controller) StopListening() {
	c.input.Stop()
	c.toIdle()
}

// OnTranscript implements domain.InputEvents. A transcript arriving in
// any state but Listening is discarded
func (c *Controller) OnTranscript(text string) {
	c.mu.Lock()
	if c.done || c.state != domain.StateListening {
		c.mu.Unlock()
		return
	}
	c.state = domain.StateProcessing
	c.mu.Unlock()
	c.status(domain.StateProcessing)

	res := c.dispatcher.Dispatch(context.Background(), text, c.clock.Now())

	c.mu.Lock()
	if c.done {
		c.mu.Unlock()
		return
	}
	if res.Lang != (language.Tag{}) {
		c.lang = res.Lang
	}
	c.state = domain.StateSpeaking
	lang := c.lang
	c.mu.Unlock()

	c.status(domain.StateSpeaking)
	c.output.Speak(res.Say, lang, c.spokeDone)
}

// OnNoSpeech implements domain.InputEvents. Quiet turns just re-arm
// the listener, the user never sees an error
func (c *Controller) OnNoSpeech() {
	c.mu.Lock()
	if c.done || c.state != domain.StateListening {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()
	_ = c.StartListening()
}

// OnInputError implements domain.InputEvents
func (c *Controller) OnInputError(err error) {
	if c.log != nil {
		c.log.Warn().Err(err).Msg("recognition error")
	}
	c.toIdle()
}

func (c *Controller) spokeDone(err error) {
	if err != nil && c.log != nil {
		c.log.Warn().Err(err).Msg("speech output error")
	}
	c.mu.Lock()
	if c.done {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()
	// conversational turns continue until the session ends
	if err := c.StartListening(); err != nil && c.log != nil {
		c.log.Warn().Err(err).Msg("re-arm listen failed")
	}
}

func (c *Controller) toIdle() {
	c.mu.Lock()
	c.state = domain.StateIdle
	c.mu.Unlock()
	c.status(domain.StateIdle)
}

// Teardown releases everything the session holds: speech output,
// the capture stream, and every pending reminder. Each release runs
// even if an earlier one panics
func (c *Controller) Teardown() {
	c.mu.Lock()
	if c.done {
		c.mu.Unlock()
		return
	}
	c.done = true
	c.state = domain.StateIdle
	c.mu.Unlock()

	release(func() { c.output.Cancel() })
	release(func() { c.input.Stop() })
	release(func() { c.reminders.CancelAll() })
}

func release(fn func()) {
	defer func() { _ = recover() }()
	fn()
}
