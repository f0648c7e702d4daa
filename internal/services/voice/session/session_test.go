package session_test

import (
	"context"
	"testing"
	"time"

	"golang.org/x/text/language"

	"assistant/internal/platform/clock"
	"assistant/internal/platform/testkit"
	"assistant/internal/services/voice/domain"
	"assistant/internal/services/voice/session"
)

type fakeInput struct {
	starts int
	stops  int
	ev     domain.InputEvents
}

func (f *fakeInput) Start(_ language.Tag, ev domain.InputEvents) error {
	f.starts++
	f.ev = ev
	return nil
}

func (f *fakeInput) Stop() { f.stops++ }

type spokenTurn struct {
	text string
	lang language.Tag
}

type fakeOutput struct {
	spoken  []spokenTurn
	cancels int
	done    func(error)
	auto    bool
}

func (f *fakeOutput) Speak(text string, lang language.Tag, done func(error)) {
	f.spoken = append(f.spoken, spokenTurn{text: text, lang: lang})
	if f.auto {
		done(nil)
		return
	}
	f.done = done
}

func (f *fakeOutput) Cancel() { f.cancels++ }

type fakeDispatcher struct {
	res   domain.Result
	seen  []string
	times []time.Time
}

func (f *fakeDispatcher) Dispatch(_ context.Context, text string, at time.Time) domain.Result {
	f.seen = append(f.seen, text)
	f.times = append(f.times, at)
	return f.res
}

type fakeCanceler struct{ calls int }

func (f *fakeCanceler) CancelAll() { f.calls++ }

var now = time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

func newController(in *fakeInput, out domain.SpeechOutput, d *fakeDispatcher, rem *fakeCanceler) *session.Controller {
	return session.New(session.Options{
		Log:        testkit.NopLogger(),
		Input:      in,
		Output:     out,
		Dispatcher: d,
		Reminders:  rem,
		Clock:      clock.Fixed(now),
	})
}

func TestTurn_ListenProcessSpeakListen(t *testing.T) {
	in := &fakeInput{}
	out := &fakeOutput{}
	d := &fakeDispatcher{res: domain.Result{Say: "hello back"}}
	c := newController(in, out, d, &fakeCanceler{})

	if c.State() != domain.StateIdle {
		t.Fatalf("expected idle got %s", c.State())
	}
	if err := c.StartListening(); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if c.State() != domain.StateListening {
		t.Fatalf("expected listening got %s", c.State())
	}

	in.ev.OnTranscript("hello")
	if len(d.seen) != 1 || d.seen[0] != "hello" {
		t.Fatalf("expected dispatch of hello got %v", d.seen)
	}
	if !d.times[0].Equal(now) {
		t.Fatalf("expected the clock instant got %v", d.times[0])
	}
	if c.State() != domain.StateSpeaking {
		t.Fatalf("expected speaking got %s", c.State())
	}
	if len(out.spoken) != 1 || out.spoken[0].text != "hello back" {
		t.Fatalf("expected hello back got %v", out.spoken)
	}

	// playback finishing re-arms the listener for the next turn
	out.done(nil)
	if c.State() != domain.StateListening {
		t.Fatalf("expected listening got %s", c.State())
	}
	if in.starts != 2 {
		t.Fatalf("expected a re-arm, got %d starts", in.starts)
	}
}

func TestTranscriptIgnoredWhileSpeaking(t *testing.T) {
	in := &fakeInput{}
	out := &fakeOutput{}
	d := &fakeDispatcher{res: domain.Result{Say: "answer"}}
	c := newController(in, out, d, &fakeCanceler{})

	_ = c.StartListening()
	in.ev.OnTranscript("first")
	in.ev.OnTranscript("second")
	if len(d.seen) != 1 {
		t.Fatalf("only one utterance may be in flight, got %v", d.seen)
	}
}

func TestLanguageSwitchSticks(t *testing.T) {
	in := &fakeInput{}
	out := &fakeOutput{auto: true}
	d := &fakeDispatcher{res: domain.Result{Say: "Switched to UK English.", Lang: language.BritishEnglish}}
	c := newController(in, out, d, &fakeCanceler{})

	_ = c.StartListening()
	in.ev.OnTranscript("switch to uk english")
	if out.spoken[0].lang != language.BritishEnglish {
		t.Fatalf("expected en-GB speech got %v", out.spoken[0].lang)
	}
	if c.Lang() != language.BritishEnglish {
		t.Fatalf("expected the session language to stick, got %v", c.Lang())
	}
}

func TestNoSpeechQuietlyRearms(t *testing.T) {
	in := &fakeInput{}
	out := &fakeOutput{}
	c := newController(in, out, &fakeDispatcher{}, &fakeCanceler{})

	_ = c.StartListening()
	in.ev.OnNoSpeech()
	if c.State() != domain.StateListening {
		t.Fatalf("expected listening got %s", c.State())
	}
	if len(out.spoken) != 0 {
		t.Fatalf("no speech must not produce output, got %v", out.spoken)
	}
	if in.starts != 2 {
		t.Fatalf("expected a re-arm got %d starts", in.starts)
	}
}

func TestInputErrorGoesIdle(t *testing.T) {
	in := &fakeInput{}
	c := newController(in, &fakeOutput{}, &fakeDispatcher{}, &fakeCanceler{})

	_ = c.StartListening()
	in.ev.OnInputError(context.DeadlineExceeded)
	if c.State() != domain.StateIdle {
		t.Fatalf("expected idle got %s", c.State())
	}
}

func TestTeardownMidListening(t *testing.T) {
	in := &fakeInput{}
	out := &fakeOutput{}
	d := &fakeDispatcher{res: domain.Result{Say: "late"}}
	rem := &fakeCanceler{}
	c := newController(in, out, d, rem)

	_ = c.StartListening()
	c.Teardown()

	if c.State() != domain.StateIdle {
		t.Fatalf("expected idle got %s", c.State())
	}
	if in.stops == 0 {
		t.Fatal("capture stream must be released")
	}
	if out.cancels == 0 {
		t.Fatal("speech output must be cancelled")
	}
	if rem.calls != 1 {
		t.Fatalf("pending reminders must be cancelled once, got %d", rem.calls)
	}

	// events after teardown are inert
	in.ev.OnTranscript("too late")
	if len(out.spoken) != 0 {
		t.Fatalf("no speech may fire after teardown, got %v", out.spoken)
	}
}

func TestTeardownSurvivesPanickyRelease(t *testing.T) {
	in := &fakeInput{}
	out := &panickyOutput{}
	rem := &fakeCanceler{}
	c := newController(in, out, &fakeDispatcher{}, rem)

	_ = c.StartListening()
	testkit.MustNotPanic(t, c.Teardown)
	if rem.calls != 1 {
		t.Fatal("reminders must be cancelled even when another release panics")
	}
	if in.stops == 0 {
		t.Fatal("input must be stopped even when another release panics")
	}
}

type panickyOutput struct{}

func (panickyOutput) Speak(string, language.Tag, func(error)) {}
func (panickyOutput) Cancel()                                 { panic("synthesis backend gone") }
