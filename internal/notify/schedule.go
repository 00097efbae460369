package notify

import (
	"fmt"
	"time"
)

type Frequency int

const (
	Daily Frequency = iota
	Weekly
	Monthly
)

// Schedule fires once per period at Hour:Minute. Weekly schedules fire on
// Weekday and monthly ones on the 1st.
type Schedule struct {
	Every   Frequency
	Weekday time.Weekday
	Hour    int
	Minute  int
}

func DailyAt(hour, minute int) *Schedule {
	return &Schedule{Every: Daily, Hour: hour, Minute: minute}
}

func WeeklyAt(day time.Weekday, hour, minute int) *Schedule {
	return &Schedule{Every: Weekly, Weekday: day, Hour: hour, Minute: minute}
}

func MonthlyAt(hour, minute int) *Schedule {
	return &Schedule{Every: Monthly, Hour: hour, Minute: minute}
}

// Next returns the first fire time strictly after after, in after's location.
func (s Schedule) Next(after time.Time) time.Time {
	y, m, d := after.Date()
	loc := after.Location()
	switch s.Every {
	case Weekly:
		at := time.Date(y, m, d, s.Hour, s.Minute, 0, 0, loc)
		ahead := (int(s.Weekday) - int(at.Weekday()) + 7) % 7
		at = at.AddDate(0, 0, ahead)
		if !at.After(after) {
			at = at.AddDate(0, 0, 7)
		}
		return at
	case Monthly:
		at := time.Date(y, m, 1, s.Hour, s.Minute, 0, 0, loc)
		if !at.After(after) {
			at = time.Date(y, m+1, 1, s.Hour, s.Minute, 0, 0, loc)
		}
		return at
	default:
		at := time.Date(y, m, d, s.Hour, s.Minute, 0, 0, loc)
		if !at.After(after) {
			at = time.Date(y, m, d+1, s.Hour, s.Minute, 0, 0, loc)
		}
		return at
	}
}

func (s Schedule) String() string {
	clock := fmt.Sprintf("%02d:%02d", s.Hour, s.Minute)
	switch s.Every {
	case Weekly:
		return "weekly " + s.Weekday.String()[:3] + " " + clock
	case Monthly:
		return "monthly 1st " + clock
	default:
		return "daily " + clock
	}
}
