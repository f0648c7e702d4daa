// Package dispatch routes classified utterances to their actions
package dispatch

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/text/language"

	"assistant/internal/core/intent"
	"assistant/internal/core/persona"
	perr "assistant/internal/platform/errors"
	"assistant/internal/platform/logger"
	apptdomain "assistant/internal/services/appointments/domain"
	asstdomain "assistant/internal/services/assistant/domain"
	"assistant/internal/services/voice/domain"
)

// Dispatcher implements domain.Dispatcher over the assistant query port,
// the appointments collaborator, and the session reminder scheduler
type Dispatcher struct {
	log       *logger.Logger
	query     asstdomain.QueryPort
	appts     apptdomain.CRUDPort
	reminders domain.ReminderPort
	userID    string
	randFn    func(n int) int
}

// Option tweaks Dispatcher construction
type Option func(*Dispatcher)

// WithRand overrides the greeting picker (tests)
func WithRand(fn func(n int) int) Option {
	return func(d *Dispatcher) { d.randFn = fn }
}

// New constructs a dispatcher for one user's session
func New(
	log *logger.Logger,
	query asstdomain.QueryPort,
	appts apptdomain.CRUDPort,
	rem domain.ReminderPort,
	userID string,
	opts ...Option,
) *Dispatcher {
	d := &Dispatcher{
		log:       log,
		query:     query,
		appts:     appts,
		reminders: rem,
		userID:    userID,
		randFn:    rand.Intn,
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Dispatch implements domain.Dispatcher. Every path resolves to a
// spoken sentence, raw errors never reach the user
func (d *Dispatcher) Dispatch(ctx context.Context, text string, at time.Time) domain.Result {
	m := intent.Classify(intent.NewUtterance(text, at))

	switch m.Intent {
	case intent.Canned:
		return domain.Result{Say: m.Params["response"]}

	case intent.TimeQuery:
		return domain.Result{Say: d.timeIn(m.Params["location"], m.Params["zone"], at)}

	case intent.Identity:
		return domain.Result{Say: persona.Identity}

	case intent.CreatorInfo:
		return domain.Result{Say: persona.CreatorDescription}

	case intent.Capabilities:
		return domain.Result{Say: persona.Capabilities}

	case intent.Greeting:
		return domain.Result{Say: persona.Greetings[d.randFn(len(persona.Greetings))]}

	case intent.SwitchLang:
		return d.switchLang(m.Params["lang"])

	case intent.Appointment:
		return domain.Result{Say: d.bookAppointment(ctx, m)}

	case intent.Reminder:
		return domain.Result{Say: d.setReminder(m)}

	default:
		// weather, directions, and general knowledge all resolve
		// through the backend answer chain
		return domain.Result{Say: d.ask(ctx, text)}
	}
}

func (d *Dispatcher) timeIn(location, zone string, at time.Time) string {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		d.log.Warn().Err(err).Str("zone", zone).Msg("timezone load failed")
		loc = time.UTC
	}
	clock := at.In(loc).Format("3:04 PM")
	if location == "" {
		return fmt.Sprintf("The current time is %s.", clock)
	}
	return fmt.Sprintf("The time in %s is %s.", location, clock)
}

func (d *Dispatcher) switchLang(tag string) domain.Result {
	lang, err := language.Parse(tag)
	if err != nil {
		return domain.Result{Say: "I didn't recognize that language."}
	}
	say := "Switched to UK English."
	if tag == "en-US" {
		say = "Switched to US English."
	}
	return domain.Result{Say: say, Lang: lang}
}

func (d *Dispatcher) bookAppointment(ctx context.Context, m intent.Match) string {
	if m.Err != nil {
		return perr.WireFrom(m.Err).Message
	}

	in := apptdomain.CreateInput{
		UserID:    d.userID,
		Date:      m.Params["date"],
		StartTime: m.Params["start_time"],
		EndTime:   m.Params["end_time"],
		Location:  m.Params["location"],
	}
	a, err := d.appts.Create(ctx, in)
	if err != nil {
		// validation and conflict messages are authoritative, speak them
		return perr.WireFrom(err).Message
	}

	say := fmt.Sprintf("Appointment booked for %s at %s", a.Date, a.StartTime)
	if a.Location != "" && a.Location != intent.UnspecifiedLocation {
		say += " in " + a.Location
	}
	return say + "."
}

func (d *Dispatcher) setReminder(m intent.Match) string {
	task := m.Params["task"]
	if task == "" {
		return "What should I remind you about?"
	}
	trigger, err := time.Parse(time.RFC3339, m.Params["trigger"])
	if err != nil {
		return "I couldn't work out when to remind you. Try 'in 30 minutes' or 'at 5pm'."
	}
	if _, err := d.reminders.Schedule(task, trigger); err != nil {
		return perr.WireFrom(err).Message
	}
	return fmt.Sprintf("Okay, I'll remind you to %s.", task)
}

func (d *Dispatcher) ask(ctx context.Context, prompt string) string {
	out, err := d.query.Query(ctx, asstdomain.QueryInput{Prompt: prompt, UserID: d.userID})
	if err != nil {
		d.log.Warn().Err(err).Msg("assistant query failed")
		return persona.Fallbacks[d.randFn(len(persona.Fallbacks))]
	}
	return out.Response
}
