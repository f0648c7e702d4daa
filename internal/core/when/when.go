// Package when extracts calendar dates and clock times from free-form
// command text. Pure functions, no I/O; callers pass the reference instant
package when

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	perr "assistant/internal/platform/errors"
)

// ISODate is the wire date layout
const ISODate = "2006-01-02"

// Clock is the wire time layout
const Clock = "15:04"

var (
	dateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockRe = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

	monthNames = []string{
		"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december",
	}

	explicitDateRe = regexp.MustCompile(
		`(?:on|for|at)\s+(` + strings.Join(monthNames, "|") + `)\s+(\d{1,2})(?:(?:st|nd|rd|th),?\s*|\s+)(\d{4})?`)

	timeRe = regexp.MustCompile(`(\d{1,2}(?::\d{2})?\s?(?:a\.?m\.?|p\.?m\.?)?)`)

	reminderTaskRe = regexp.MustCompile(`(?i)(?:remind me to|set a reminder to|add a reminder to) (.+?)(?: at| on| for| in|$)`)
	reminderAtRe   = regexp.MustCompile(`at (\d{1,2}(?::\d{2})?\s?(?:am|pm)?)`)
	reminderInRe   = regexp.MustCompile(`in (\d+)\s*(minute|hour|day|week)s?`)
)

// IsDate reports whether s is a well-formed YYYY-MM-DD date
func IsDate(s string) bool { return dateRe.MatchString(s) }

// IsClock reports whether s is a well-formed 24-hour HH:MM time
func IsClock(s string) bool { return clockRe.MatchString(s) }

// ExtractDate resolves a date phrase in the lower-cased text against now.
// Relative phrases win over explicit dates; with no cue at all it
// defaults to today. An explicit date with an invalid day errors out
func ExtractDate(lower string, now time.Time) (string, error) {
	switch {
	case strings.Contains(lower, "today"):
		return now.Format(ISODate), nil
	case strings.Contains(lower, "day after tomorrow"), strings.Contains(lower, "next tomorrow"):
		return now.AddDate(0, 0, 2).Format(ISODate), nil
	case strings.Contains(lower, "tomorrow"):
		return now.AddDate(0, 0, 1).Format(ISODate), nil
	case strings.Contains(lower, "next week"):
		return now.AddDate(0, 0, 7).Format(ISODate), nil
	case strings.Contains(lower, "next month"):
		return now.AddDate(0, 1, 0).Format(ISODate), nil
	case strings.Contains(lower, "next year"):
		return now.AddDate(1, 0, 0).Format(ISODate), nil
	}

	m := explicitDateRe.FindStringSubmatch(lower)
	if m == nil {
		return now.Format(ISODate), nil
	}

	month := monthIndex(m[1])
	day, _ := strconv.Atoi(m[2])
	year := now.Year()
	if m[3] != "" {
		year, _ = strconv.Atoi(m[3])
	}

	d := time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, now.Location())
	if d.Day() != day || d.Month() != time.Month(month+1) {
		return "", perr.InvalidArgf("no such date: %s %d, %d", m[1], day, year)
	}
	return d.Format(ISODate), nil
}

func monthIndex(name string) int {
	for i, m := range monthNames {
		if m == name {
			return i
		}
	}
	return -1
}

// TimeRange is a start time and an optional end time, both HH:MM
type TimeRange struct {
	Start string
	End   string
}

// ExtractTimeRange scans the lower-cased text for clock phrases.
// Only candidates carrying a colon or an am/pm marker count; bare digit
// runs (dates, quantities) are ignored. With no candidate at all the
// start defaults to now's clock time
func ExtractTimeRange(lower string, now time.Time) TimeRange {
	var times []string
	for _, m := range timeRe.FindAllStringSubmatch(lower, -1) {
		cand := strings.ReplaceAll(strings.TrimSpace(m[1]), ".", "")
		if !strings.Contains(cand, ":") && !strings.Contains(cand, "am") && !strings.Contains(cand, "pm") {
			continue
		}
		times = append(times, cand)
	}

	var tr TimeRange
	if len(times) == 0 {
		tr.Start = now.Format(Clock)
		return tr
	}
	tr.Start = to24Hour(times[0])
	if len(times) > 1 {
		tr.End = to24Hour(times[1])
	}
	return tr
}

// to24Hour converts phrases like "3 pm", "3:30pm", "15:00" to HH:MM
func to24Hour(s string) string {
	isPM := strings.Contains(s, "p")
	isAM := strings.Contains(s, "a")

	s = strings.NewReplacer("am", "", "pm", "").Replace(s)
	s = strings.TrimSpace(s)

	hh, mm := s, "00"
	if i := strings.Index(s, ":"); i >= 0 {
		hh, mm = s[:i], s[i+1:]
	}
	h, _ := strconv.Atoi(strings.TrimSpace(hh))
	if isPM && h < 12 {
		h += 12
	}
	if isAM && h == 12 {
		h = 0
	}
	if len(mm) < 2 {
		mm = "0" + mm
	}
	return pad2(h) + ":" + mm
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// ExtractReminderTask captures the task text of a reminder phrase,
// cut at a trailing at/on/for/in clause. Matching is case-insensitive
// so the task keeps the speaker's original casing
func ExtractReminderTask(text string) (string, bool) {
	m := reminderTaskRe.FindStringSubmatch(text)
	if m == nil || strings.TrimSpace(m[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// ExtractReminderTrigger resolves a reminder trigger instant.
// An explicit "at <time>" clause rolls to the next day when already past,
// a relative "in <n> minutes|hours|days|weeks" clause offsets now,
// and with neither cue the trigger is now itself
func ExtractReminderTrigger(lower string, now time.Time) time.Time {
	if m := reminderAtRe.FindStringSubmatch(lower); m != nil {
		hm := to24Hour(strings.ReplaceAll(m[1], ".", ""))
		h, _ := strconv.Atoi(hm[:2])
		min, _ := strconv.Atoi(hm[3:])
		t := time.Date(now.Year(), now.Month(), now.Day(), h, min, 0, 0, now.Location())
		if t.Before(now) {
			t = t.AddDate(0, 0, 1)
		}
		return t
	}

	if m := reminderInRe.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		switch m[2] {
		case "minute":
			return now.Add(time.Duration(n) * time.Minute)
		case "hour":
			return now.Add(time.Duration(n) * time.Hour)
		case "day":
			return now.AddDate(0, 0, n)
		case "week":
			return now.AddDate(0, 0, n*7)
		}
	}

	return now
}
