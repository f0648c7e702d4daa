// Package persona holds the assistant's fixed identity texts and canned replies
package persona

import (
	"regexp"
	"strings"

	"assistant/internal/core/places"
)

// Name is the assistant's name
const Name = "Chappie"

// Creator is the assistant's author
const Creator = "Stephen Okwu Chidi"

// Capabilities is the spoken capability summary
const Capabilities = "I can help you manage contacts, appointments, reminders, answer questions, " +
	"provide weather forecasts, give directions, tell the current time in any country, and much more!"

// CreatorDescription is the long form creator blurb
const CreatorDescription = "Stephen Okwu Chidi is my brilliant creator - a visionary developer who designed me " +
	"to be your intelligent personal assistant. He's passionate about creating AI that truly helps people."

// Identity is the short self introduction
const Identity = "I am " + Name + ", your personal assistant. It's a pleasure to meet you!"

// GeneralKnowledgeIntro is spoken before deferring to the answer chain
const GeneralKnowledgeIntro = "Accessing my knowledge networks for that information..."

// Greetings are rotated when the user says hello
var Greetings = []string{
	"Hello there! I'm Chappie, your AI personal assistant. How can I help you today?",
	"Hey! Chappie here, ready to assist. What's on your mind?",
	"Greetings! I'm Chappie. How may I be of service?",
	"Good to hear from you! Chappie at your command.",
}

// Fallbacks are the last resort replies when every provider came up empty
var Fallbacks = []string{
	"I'm still learning. Could you rephrase that?",
	"I'm not sure how to respond to that yet.",
	"That's an interesting question. I'll need to learn more about that.",
	"I don't have information on that at the moment.",
}

// locClause matches a "weather in lagos" style trailing location so the
// generic prompts below do not swallow queries that name a real place
var locClause = regexp.MustCompile(`\b(?:in|for|at|to)\s+\S`)

// Entry is a keyword and its canned response
type Entry struct {
	Keyword  string
	Response string

	// Unless suppresses the entry when the pattern also matches,
	// nil means the keyword alone decides
	Unless *regexp.Regexp
}

// Knowledge is the local canned-answer table, checked before any provider.
// Order matters: first keyword contained in the prompt wins
var Knowledge = []Entry{
	{Keyword: "who are you", Response: "I'm Chappie, your AI personal assistant! How can I help you today?"},
	{Keyword: "what can you do", Response: "I can answer questions, provide weather forecasts, give directions, and help with various tasks."},
	{Keyword: "who created you", Response: "I was created by Stephen Okwu Chidi, a brilliant developer passionate about AI."},
	{Keyword: "nigerian states", Response: places.StatesSentence()},
	{Keyword: "states in nigeria", Response: places.StatesSentence()},
	{Keyword: "hello", Response: "Hello! How can I assist you today?"},
	{Keyword: "hey", Response: "Hey there! What can I do for you?"},
	{Keyword: "how are you", Response: "I'm functioning perfectly, thanks for asking! How can I help you?"},
	{Keyword: "weather", Response: "Please specify a location for weather information, e.g. 'weather in Lagos'", Unless: locClause},
	{Keyword: "directions", Response: "Please specify a destination, e.g. 'directions to Abuja'", Unless: locClause},
	{Keyword: "creator", Response: "I was developed by Stephen Okwu Chidi, a talented software engineer."},
	{Keyword: "who made you", Response: "I was created by Stephen Okwu Chidi, who's passionate about building helpful AI systems."},
}

// Lookup returns the first canned response whose keyword the prompt contains
func Lookup(prompt string) (string, bool) {
	lower := strings.ToLower(prompt)
	for _, e := range Knowledge {
		if !strings.Contains(lower, e.Keyword) {
			continue
		}
		if e.Unless != nil && e.Unless.MatchString(lower) {
			continue
		}
		return e.Response, true
	}
	return "", false
}
