package notify

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestScheduleNext(t *testing.T) {
	bangkok := time.FixedZone("ICT", 7*3600)
	after := time.Date(2025, time.March, 12, 10, 0, 0, 0, bangkok) // Wednesday

	cases := []struct {
		name string
		s    *Schedule
		want time.Time
	}{
		{"daily later today", DailyAt(20, 0), time.Date(2025, time.March, 12, 20, 0, 0, 0, bangkok)},
		{"daily tomorrow", DailyAt(7, 0), time.Date(2025, time.March, 13, 7, 0, 0, 0, bangkok)},
		{"daily at the same instant rolls over", DailyAt(10, 0), time.Date(2025, time.March, 13, 10, 0, 0, 0, bangkok)},
		{"weekly friday", WeeklyAt(time.Friday, 17, 0), time.Date(2025, time.March, 14, 17, 0, 0, 0, bangkok)},
		{"weekly monday", WeeklyAt(time.Monday, 10, 0), time.Date(2025, time.March, 17, 10, 0, 0, 0, bangkok)},
		{"weekly today passed", WeeklyAt(time.Wednesday, 9, 0), time.Date(2025, time.March, 19, 9, 0, 0, 0, bangkok)},
		{"monthly", MonthlyAt(9, 0), time.Date(2025, time.April, 1, 9, 0, 0, 0, bangkok)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, tc.want.Equal(tc.s.Next(after)), "got %s", tc.s.Next(after))
		})
	}
}

func TestScheduleNext_MonthlyYearEnd(t *testing.T) {
	after := time.Date(2025, time.December, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC), MonthlyAt(12, 0).Next(after))
}

func TestScheduleString(t *testing.T) {
	assert.Equal(t, "daily 06:00", DailyAt(6, 0).String())
	assert.Equal(t, "weekly Sun 18:00", WeeklyAt(time.Sunday, 18, 0).String())
	assert.Equal(t, "monthly 1st 11:00", MonthlyAt(11, 0).String())
}

func TestSchedulerNext_GroupsTasksDueTogether(t *testing.T) {
	s := NewScheduler(DefaultRegistry().Periodic(), nil, time.UTC, logrus.New())

	// Monday 2025-03-10 07:10: next up is weekly_goal_summary at 07:30.
	at, due := s.next(time.Date(2025, time.March, 10, 7, 10, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, time.March, 10, 7, 30, 0, 0, time.UTC), at)
	if assert.Len(t, due, 1) {
		assert.Equal(t, "weekly_goal_summary", due[0].Name)
	}

	// 2025-03-31 20:00 passes; April 1st 06:00 is the motivational message.
	at, due = s.next(time.Date(2025, time.March, 31, 20, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, time.April, 1, 6, 0, 0, 0, time.UTC), at)
	assert.Equal(t, "motivational_message", due[0].Name)

	// April 1st 08:59: monthly_progress_report and missed_routine_notification share 09:00.
	_, due = s.next(time.Date(2025, time.April, 1, 8, 59, 0, 0, time.UTC))
	names := []string{}
	for _, d := range due {
		names = append(names, d.Name)
	}
	assert.ElementsMatch(t, []string{"missed_routine_notification", "monthly_progress_report"}, names)
}
