package model

import "time"

// DateLayout is the canonical calendar-date format used everywhere a date
// crosses a boundary (storage, sync, config). Check-in logic compares plain
// calendar days in the caller's local time; there is no time-of-day component
// and no timezone conversion.
const DateLayout = "2006-01-02"

// Challenge holds the state of the (at most one) savings challenge.
// The zero value is the inactive state.
type Challenge struct {
	Active       bool
	ChallengeID  string
	Title        string
	DurationDays int

	// StartedOn is the calendar day the challenge began, zero when inactive.
	StartedOn time.Time

	// LastCheckin is the most recent check-in day, zero before the first one.
	LastCheckin time.Time

	StreakDays int
}

// Day truncates t to its calendar day, dropping time-of-day and keeping
// the local date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole calendar days from a to b (negative when b
// precedes a).
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)).Hours() / 24)
}

// ParseDate parses a YYYY-MM-DD string, returning a zero time for empty or
// malformed input.
func ParseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// FormatDate renders a day as YYYY-MM-DD, empty for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
