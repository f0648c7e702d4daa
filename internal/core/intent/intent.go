// Package intent classifies free-form command text into assistant intents.
// Rules are an ordered list evaluated top to bottom, first match wins
package intent

import (
	"regexp"
	"strings"
	"time"

	"assistant/internal/core/persona"
	"assistant/internal/core/places"
	"assistant/internal/core/when"
)

// Intent tags the classified purpose of an utterance
type Intent string

// Intent values
const (
	Canned       Intent = "canned"
	TimeQuery    Intent = "time_query"
	Identity     Intent = "identity"
	CreatorInfo  Intent = "creator"
	Capabilities Intent = "capabilities"
	Greeting     Intent = "greeting"
	SwitchLang   Intent = "switch_lang"
	Appointment  Intent = "appointment"
	Reminder     Intent = "reminder"
	Weather      Intent = "weather"
	Directions   Intent = "directions"
	General      Intent = "general"
)

// UnspecifiedLocation is the sentinel used when no location could be extracted
const UnspecifiedLocation = "Unspecified Location"

// Match is the classification result: the intent tag, extracted raw
// parameters, and the rank of the rule that fired
type Match struct {
	Intent Intent
	Rank   int
	Params map[string]string

	// Err carries extraction failures (e.g. an impossible explicit date);
	// the intent and rank are still meaningful
	Err error
}

// Utterance is one normalized voice turn
type Utterance struct {
	Raw   string
	Lower string
	At    time.Time
}

// NewUtterance normalizes raw text against the capture instant
func NewUtterance(raw string, at time.Time) Utterance {
	return Utterance{Raw: raw, Lower: strings.ToLower(raw), At: at}
}

// rule pairs a predicate with a parameter extractor
type rule struct {
	rank int
	try  func(u Utterance) *Match
}

var (
	timeInRe     = regexp.MustCompile(`time in (.+)`)
	weatherLocRe = regexp.MustCompile(`\b(?:in|for|at) (.+?)(?: today| tomorrow|$)`)
	directionsRe = regexp.MustCompile(`(?:where is|how far is|how far|directions to)`)
	apptLocRe    = regexp.MustCompile(`\b(?:in|at|for|to)\s+([a-z][a-z ]*)`)
)

var apptVerbs = []string{"set", "add", "book", "schedule", "create"}

// locStopWords cut an appointment location phrase before trailing
// date, time, or range words
var locStopWords = map[string]bool{
	"on": true, "from": true, "to": true, "by": true, "at": true,
	"today": true, "tomorrow": true, "next": true, "am": true, "pm": true,
}

var rules = []rule{
	{1, tryCanned},
	{2, tryTimeQuery},
	{3, tryPersona},
	{4, trySwitchLang},
	{5, tryAppointment},
	{6, tryReminder},
	{7, tryWeather},
	{8, tryDirections},
}

// Classify matches the utterance against the rule list.
// Anything no rule claims falls through to the general-knowledge intent
func Classify(u Utterance) Match {
	for _, r := range rules {
		if m := r.try(u); m != nil {
			m.Rank = r.rank
			return *m
		}
	}
	return Match{Intent: General, Rank: 9, Params: map[string]string{"prompt": u.Raw}}
}

func tryCanned(u Utterance) *Match {
	resp, ok := persona.Lookup(u.Lower)
	if !ok {
		return nil
	}
	return &Match{Intent: Canned, Params: map[string]string{"response": resp}}
}

func tryTimeQuery(u Utterance) *Match {
	if !strings.Contains(u.Lower, "what time is it") && !strings.Contains(u.Lower, "time in") {
		return nil
	}
	location := ""
	if m := timeInRe.FindStringSubmatch(u.Lower); m != nil {
		location = strings.TrimSpace(m[1])
	}
	return &Match{Intent: TimeQuery, Params: map[string]string{
		"location": location,
		"zone":     places.ZoneFor(location),
	}}
}

func tryPersona(u Utterance) *Match {
	switch {
	case containsAny(u.Lower, "who are you", "what is your name", "who is chappie"):
		return &Match{Intent: Identity, Params: map[string]string{}}
	case containsAny(u.Lower, "who created you", "who is your creator", "who is your maker"):
		return &Match{Intent: CreatorInfo, Params: map[string]string{}}
	case containsAny(u.Lower, "what can you do", "your capabilities"):
		return &Match{Intent: Capabilities, Params: map[string]string{}}
	case containsAny(u.Lower, "hello", "hi", "how are you"):
		return &Match{Intent: Greeting, Params: map[string]string{}}
	}
	return nil
}

func trySwitchLang(u Utterance) *Match {
	switch {
	case strings.Contains(u.Lower, "switch to us english"):
		return &Match{Intent: SwitchLang, Params: map[string]string{"lang": "en-US"}}
	case strings.Contains(u.Lower, "switch to uk english"):
		return &Match{Intent: SwitchLang, Params: map[string]string{"lang": "en-GB"}}
	}
	return nil
}

func tryAppointment(u Utterance) *Match {
	if !containsAny(u.Lower, apptVerbs...) {
		return nil
	}
	if !strings.Contains(u.Lower, "appointment") && !strings.Contains(u.Lower, "meeting") {
		return nil
	}

	params := map[string]string{"location": extractApptLocation(u.Lower)}

	date, err := when.ExtractDate(u.Lower, u.At)
	if err != nil {
		return &Match{Intent: Appointment, Params: params, Err: err}
	}
	tr := when.ExtractTimeRange(u.Lower, u.At)

	params["date"] = date
	params["start_time"] = tr.Start
	if tr.End != "" {
		params["end_time"] = tr.End
	}
	return &Match{Intent: Appointment, Params: params}
}

// extractApptLocation captures the word run after a location preposition,
// cut at the first date/time stop word. A recognized country name anywhere
// in the utterance always wins over the phrase match
func extractApptLocation(lower string) string {
	if c, ok := places.FindCountry(lower); ok {
		return c
	}

	// phrases like "for tomorrow" are all stop words, so walk every
	// preposition match and keep the first that leaves a real place
	for _, m := range apptLocRe.FindAllStringSubmatch(lower, -1) {
		var kept []string
		for _, w := range strings.Fields(m[1]) {
			if locStopWords[w] {
				break
			}
			kept = append(kept, w)
		}
		if len(kept) > 0 {
			return strings.Join(kept, " ")
		}
	}
	return UnspecifiedLocation
}

func tryReminder(u Utterance) *Match {
	if !containsAny(u.Lower, "set a reminder to", "add a reminder to", "remind me to") {
		return nil
	}
	task, ok := when.ExtractReminderTask(u.Raw)
	if !ok {
		return &Match{Intent: Reminder, Params: map[string]string{}}
	}
	trigger := when.ExtractReminderTrigger(u.Lower, u.At)
	return &Match{Intent: Reminder, Params: map[string]string{
		"task":    task,
		"trigger": trigger.Format(time.RFC3339),
	}}
}

func tryWeather(u Utterance) *Match {
	if !strings.Contains(u.Lower, "weather") && !strings.Contains(u.Lower, "forecast") {
		return nil
	}
	location := ""
	if m := weatherLocRe.FindStringSubmatch(u.Lower); m != nil {
		location = strings.TrimSpace(m[1])
	}
	return &Match{Intent: Weather, Params: map[string]string{"location": location}}
}

func tryDirections(u Utterance) *Match {
	if !containsAny(u.Lower, "where is", "how far", "directions to") {
		return nil
	}
	dest := strings.TrimSpace(directionsRe.ReplaceAllString(u.Lower, ""))
	return &Match{Intent: Directions, Params: map[string]string{"destination": dest}}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
