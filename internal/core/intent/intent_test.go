package intent_test

import (
	"testing"
	"time"

	"assistant/internal/core/intent"
)

var at = time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

func classify(t *testing.T, text string) intent.Match {
	t.Helper()
	return intent.Classify(intent.NewUtterance(text, at))
}

func TestClassify_LowestRuleWins(t *testing.T) {
	// greeting keyword is claimed by the canned table before the
	// reminder rule ever runs
	m := classify(t, "hello, remind me to call John")
	if m.Intent != intent.Canned {
		t.Fatalf("expected canned intent got %s", m.Intent)
	}
	if m.Rank != 1 {
		t.Fatalf("expected rank 1 got %d", m.Rank)
	}
}

func TestClassify_TimeQuery(t *testing.T) {
	m := classify(t, "what is the time in France")
	if m.Intent != intent.TimeQuery {
		t.Fatalf("expected time query got %s", m.Intent)
	}
	if m.Params["location"] != "france" {
		t.Fatalf("expected location france got %q", m.Params["location"])
	}
	if m.Params["zone"] != "Europe/Paris" {
		t.Fatalf("expected Europe/Paris got %q", m.Params["zone"])
	}
}

func TestClassify_TimeQueryDefaultZone(t *testing.T) {
	m := classify(t, "what time is it")
	if m.Intent != intent.TimeQuery {
		t.Fatalf("expected time query got %s", m.Intent)
	}
	if m.Params["zone"] != "Africa/Lagos" {
		t.Fatalf("expected default zone got %q", m.Params["zone"])
	}
}

func TestClassify_SwitchLang(t *testing.T) {
	m := classify(t, "please switch to us english")
	if m.Intent != intent.SwitchLang || m.Params["lang"] != "en-US" {
		t.Fatalf("expected en-US switch got %s %v", m.Intent, m.Params)
	}
	m = classify(t, "switch to uk english now")
	if m.Intent != intent.SwitchLang || m.Params["lang"] != "en-GB" {
		t.Fatalf("expected en-GB switch got %s %v", m.Intent, m.Params)
	}
}

func TestClassify_Appointment(t *testing.T) {
	m := classify(t, "book an appointment for tomorrow at 3pm to 5pm in lekki")
	if m.Intent != intent.Appointment {
		t.Fatalf("expected appointment got %s", m.Intent)
	}
	if m.Err != nil {
		t.Fatalf("unexpected extraction error %v", m.Err)
	}
	if m.Params["date"] != "2024-01-11" {
		t.Fatalf("expected 2024-01-11 got %q", m.Params["date"])
	}
	if m.Params["start_time"] != "15:00" || m.Params["end_time"] != "17:00" {
		t.Fatalf("expected 15:00/17:00 got %q/%q", m.Params["start_time"], m.Params["end_time"])
	}
	if m.Params["location"] != "lekki" {
		t.Fatalf("expected lekki got %q", m.Params["location"])
	}
}

func TestClassify_AppointmentNeedsVerbAndNoun(t *testing.T) {
	m := classify(t, "I have an appointment tomorrow")
	if m.Intent == intent.Appointment {
		t.Fatal("noun without an action verb must not book")
	}
	m = classify(t, "book a table for two")
	if m.Intent == intent.Appointment {
		t.Fatal("verb without appointment/meeting must not book")
	}
}

func TestClassify_AppointmentCountryWins(t *testing.T) {
	// a recognized country beats the shorter preposition capture
	m := classify(t, "schedule a meeting in nigeria tomorrow at 10am")
	if m.Intent != intent.Appointment {
		t.Fatalf("expected appointment got %s", m.Intent)
	}
	if m.Params["location"] != "Nigeria" {
		t.Fatalf("expected Nigeria got %q", m.Params["location"])
	}
}

func TestClassify_AppointmentLocationSentinel(t *testing.T) {
	m := classify(t, "book appointment tomorrow")
	if m.Intent != intent.Appointment {
		t.Fatalf("expected appointment got %s", m.Intent)
	}
	if m.Params["location"] != intent.UnspecifiedLocation {
		t.Fatalf("expected sentinel got %q", m.Params["location"])
	}
}

func TestClassify_Reminder(t *testing.T) {
	m := classify(t, "remind me to call John in 30 minutes")
	if m.Intent != intent.Reminder {
		t.Fatalf("expected reminder got %s", m.Intent)
	}
	if m.Params["task"] != "call John" {
		t.Fatalf("expected call John got %q", m.Params["task"])
	}
	if m.Params["trigger"] != "2024-01-10T09:30:00Z" {
		t.Fatalf("expected 09:30 trigger got %q", m.Params["trigger"])
	}
}

func TestClassify_WeatherWithLocation(t *testing.T) {
	m := classify(t, "what is the weather in abuja today")
	if m.Intent != intent.Weather {
		t.Fatalf("expected weather got %s", m.Intent)
	}
	if m.Params["location"] != "abuja" {
		t.Fatalf("expected abuja got %q", m.Params["location"])
	}
}

func TestClassify_Directions(t *testing.T) {
	m := classify(t, "directions to the national stadium")
	if m.Intent != intent.Directions {
		t.Fatalf("expected directions got %s", m.Intent)
	}
	if m.Params["destination"] != "the national stadium" {
		t.Fatalf("expected destination got %q", m.Params["destination"])
	}
}

func TestClassify_GeneralFallback(t *testing.T) {
	m := classify(t, "Why is the sky blue?")
	if m.Intent != intent.General {
		t.Fatalf("expected general got %s", m.Intent)
	}
	if m.Rank != 9 {
		t.Fatalf("expected rank 9 got %d", m.Rank)
	}
	if m.Params["prompt"] != "Why is the sky blue?" {
		t.Fatalf("expected verbatim prompt got %q", m.Params["prompt"])
	}
}
