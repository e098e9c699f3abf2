// Package week provides Monday-start week window math and date formatting.
package week

import (
	"fmt"
	"time"
)

// ISO is the day-granularity date layout used for storage and form fields.
const ISO = "2006-01-02"

// StartOfWeek returns the Monday 00:00:00.000 (local time) of the week
// containing t. Weeks run Monday through Sunday.
func StartOfWeek(t time.Time) time.Time {
	t = t.Local()
	day := (int(t.Weekday()) + 6) % 7 // Mon=0 .. Sun=6
	return time.Date(t.Year(), t.Month(), t.Day()-day, 0, 0, 0, 0, t.Location())
}

// EndOfWeek returns the Sunday 23:59:59.999 (local time) of the week
// containing t.
func EndOfWeek(t time.Time) time.Time {
	s := StartOfWeek(t)
	return time.Date(s.Year(), s.Month(), s.Day()+6, 23, 59, 59, 999_000_000, s.Location())
}

// FormatDate renders a date for display, e.g. "Jan 5, 2024".
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// Today returns the current calendar date at local midnight as YYYY-MM-DD.
func Today() string {
	return time.Now().Local().Format(ISO)
}

// ParseDay parses a YYYY-MM-DD string into local midnight of that day.
func ParseDay(iso string) (time.Time, error) {
	t, err := time.ParseInLocation(ISO, iso, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", iso, err)
	}
	return t, nil
}

// ShiftDays moves an ISO day string by n days. An unparseable input is
// treated as today before shifting, mirroring the store's silent defaulting.
func ShiftDays(iso string, n int) string {
	t, err := ParseDay(iso)
	if err != nil {
		t, _ = ParseDay(Today())
	}
	return t.AddDate(0, 0, n).Format(ISO)
}

// Label renders the Monday–Sunday window containing the given day,
// e.g. "Jan 5, 2024 — Jan 11, 2024".
func Label(iso string) string {
	t, err := ParseDay(iso)
	if err != nil {
		t, _ = ParseDay(Today())
	}
	return FormatDate(StartOfWeek(t)) + " — " + FormatDate(EndOfWeek(t))
}
