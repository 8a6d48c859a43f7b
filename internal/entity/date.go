package entity

import (
	"fmt"
	"time"
)

// DateLayout is the wire and storage format of a calendar date.
const DateLayout = "2006-01-02"

// ParseDate parses a zero-padded YYYY-MM-DD calendar date.
// The result is midnight UTC of that date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}

	return t, nil
}

// FormatDate formats the calendar date of t, ignoring its time and zone offset.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// MonthWindow returns the first and the last calendar day of the month.
// The last day is day 0 of the next month, so month length and leap years
// come from calendar arithmetic.
func MonthWindow(year int, month time.Month) (first, last time.Time) {
	first = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last = time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)

	return first, last
}
