package util

import "time"

// DateLayout is the calendar date format used on the wire.
const DateLayout = "2006-01-02"

// ParseDate parses a strict YYYY-MM-DD value.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate renders the calendar date of t in its own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// AddDays shifts a calendar date, ignoring DST transitions.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}
