// Package dateutil parses the date and clock strings stored on records and
// computes the calendar windows used by the notification digests.
package dateutil

import (
	"fmt"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
	clockSecs   = "15:04:05"
)

// ParseDate parses a YYYY-MM-DD string as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// ParseClock parses HH:MM or HH:MM:SS and returns the offset from midnight.
func ParseClock(s string) (time.Duration, error) {
	for _, layout := range []string{ClockLayout, clockSecs} {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second, nil
		}
	}
	return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
}

// Day truncates t to its calendar day in t's location, expressed as a UTC
// midnight so it compares directly with ParseDate results.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SinceMidnight returns the wall clock offset of t within its own day.
func SinceMidnight(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second
}

// FormatDate renders a day as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// MondayIndex returns 0 for Monday through 6 for Sunday.
func MondayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// Window is an inclusive range of calendar days.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether day falls inside the window, bounds included.
func (w Window) Contains(day time.Time) bool {
	return !day.Before(w.Start) && !day.After(w.End)
}

// Overlaps reports whether [start, end] shares at least one day with w.
func (w Window) Overlaps(start, end time.Time) bool {
	return !start.After(w.End) && !end.Before(w.Start)
}

// Week returns the Monday to Sunday window containing t.
func Week(t time.Time) Window {
	start := Day(t).AddDate(0, 0, -MondayIndex(t))
	return Window{Start: start, End: start.AddDate(0, 0, 6)}
}

// Month returns the first to last day of t's month.
func Month(t time.Time) Window {
	y, m, _ := t.Date()
	start := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	return Window{Start: start, End: start.AddDate(0, 1, -1)}
}
