package notify

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/sanaresoma/sanaresoma-backend/internal/activity"
	"github.com/sanaresoma/sanaresoma-backend/internal/dateutil"
	"github.com/sanaresoma/sanaresoma-backend/internal/food"
	"github.com/sanaresoma/sanaresoma-backend/internal/goal"
	"github.com/sanaresoma/sanaresoma-backend/internal/meal"
	"github.com/sanaresoma/sanaresoma-backend/internal/user"
)

var motivationalQuotes = []string{
	"Believe in yourself and all that you are. Know that there is something inside you that is greater than any obstacle.",
	"Success is the sum of small efforts, repeated day in and day out.",
	"The difference between a successful person and others is not a lack of strength, but a lack of will.",
	"Your body can stand almost anything. It's your mind that you have to convince.",
}

const leaderboardSize = 10

func periodicTasks() []Task {
	return []Task{
		{Name: "daily_routine_reminder", Schedule: DailyAt(7, 0), compose: dailyRoutineReminder},
		{Name: "missed_routine_notification", Schedule: DailyAt(9, 0), compose: missedRoutineNotification},
		{Name: "daily_meal_plan_reminder", Schedule: DailyAt(8, 0), compose: dailyMealPlanReminder},
		{Name: "motivational_message", Schedule: DailyAt(6, 0), compose: motivationalMessage},
		{Name: "goal_achievement", Schedule: DailyAt(20, 0), compose: goalAchievement},
		{Name: "inactivity_reminder", Schedule: WeeklyAt(time.Monday, 10, 0), compose: inactivityReminder},
		{Name: "weekly_goal_summary", Schedule: WeeklyAt(time.Monday, 7, 30), compose: weeklyGoalSummary},
		{Name: "weekly_nutrition_summary", Schedule: WeeklyAt(time.Sunday, 18, 0), compose: weeklyNutritionSummary},
		{Name: "weekly_professional_goal_summary", Schedule: WeeklyAt(time.Monday, 8, 30), compose: weeklyProfessionalGoalSummary},
		{Name: "client_progress_report", Schedule: WeeklyAt(time.Friday, 17, 0), compose: clientProgressReport},
		{Name: "weekly_activity_leaderboard", Schedule: WeeklyAt(time.Sunday, 19, 0), compose: weeklyActivityLeaderboard},
		{Name: "weekly_meal_plan_suggestions", Schedule: WeeklyAt(time.Monday, 9, 30), compose: weeklyMealPlanSuggestions},
		{Name: "monthly_progress_report", Schedule: MonthlyAt(9, 0), compose: monthlyProgressReport},
		{Name: "monthly_nutrition_insights", Schedule: MonthlyAt(10, 0), compose: monthlyNutritionInsights},
		{Name: "professional_feedback_request", Schedule: MonthlyAt(11, 0), compose: professionalFeedbackRequest},
		{Name: "monthly_client_retention_report", Schedule: MonthlyAt(12, 0), compose: monthlyClientRetentionReport},
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func dayIn(w dateutil.Window, date string) bool {
	d, err := dateutil.ParseDate(date)
	return err == nil && w.Contains(d)
}

func goalOverlaps(w dateutil.Window, g goal.Goal) bool {
	start, err := dateutil.ParseDate(g.StartDate)
	if err != nil {
		return false
	}
	end, err := dateutil.ParseDate(g.EndDate)
	if err != nil {
		return false
	}
	return w.Overlaps(start, end)
}

func activitiesOn(acts []activity.Activity, date string) []activity.Activity {
	var out []activity.Activity
	for _, a := range acts {
		if a.ActivityDate == date {
			out = append(out, a)
		}
	}
	return out
}

func activitiesIn(acts []activity.Activity, w dateutil.Window) []activity.Activity {
	var out []activity.Activity
	for _, a := range acts {
		if dayIn(w, a.ActivityDate) {
			out = append(out, a)
		}
	}
	return out
}

func mealsIn(meals []meal.Meal, w dateutil.Window) []meal.Meal {
	var out []meal.Meal
	for _, m := range meals {
		if dayIn(w, m.MealDate) {
			out = append(out, m)
		}
	}
	return out
}

func totalNutrients(snap *Snapshot, meals []meal.Meal) food.Nutrients {
	var total food.Nutrients
	for _, m := range meals {
		total = total.Add(snap.MealNutrients(m))
	}
	return total.Rounded()
}

func activityLines(acts []activity.Activity) string {
	lines := make([]string, len(acts))
	for i, a := range acts {
		lines[i] = fmt.Sprintf("- %s at %s", a.ActivityType, a.StartTime)
	}
	return strings.Join(lines, "\n")
}

func dailyRoutineReminder(in Input) (Output, error) {
	today := dateutil.FormatDate(dateutil.Day(in.Now))
	var out Output
	for _, u := range in.Snap.Users {
		if u.RoutineID == nil {
			continue
		}
		if _, ok := in.Snap.Routine(*u.RoutineID); !ok {
			continue
		}
		var b strings.Builder
		fmt.Fprintf(&b, "Hi %s,\n\nHere are your activities for today:\n", u.Username)
		if acts := activitiesOn(in.Snap.RoutineActivities(u), today); len(acts) > 0 {
			b.WriteString(activityLines(acts))
			b.WriteString("\n\nStay consistent and achieve your goals!")
		} else {
			b.WriteString("No activities scheduled for today. Enjoy your rest day!")
		}
		out.Messages = append(out.Messages, Message{To: u.Email, Subject: "Today's Routine Reminder", Body: b.String()})
	}
	return out, nil
}

func missedRoutineNotification(in Input) (Output, error) {
	yesterday := dateutil.FormatDate(dateutil.Day(in.Now).AddDate(0, 0, -1))
	clock := dateutil.SinceMidnight(in.Now)
	var out Output
	for _, u := range in.Snap.Users {
		var missed []activity.Activity
		for _, a := range activitiesOn(in.Snap.RoutineActivities(u), yesterday) {
			end, err := dateutil.ParseClock(a.EndTime)
			if err == nil && end < clock {
				missed = append(missed, a)
			}
		}
		if len(missed) == 0 {
			continue
		}
		body := fmt.Sprintf("Hi %s,\n\nYou missed the following activities yesterday:\n%s\n\nDon't worry, you can get back on track today!",
			u.Username, activityLines(missed))
		out.Messages = append(out.Messages, Message{To: u.Email, Subject: "Missed Routine Notification", Body: body})
	}
	return out, nil
}

func dailyMealPlanReminder(in Input) (Output, error) {
	var out Output
	for _, u := range in.Snap.Users {
		if _, ok := in.Snap.Plan(u); !ok {
			continue
		}
		body := fmt.Sprintf("Hi %s,\n\nDon't forget to log your meals for today!\n"+
			"Following your meal plan is key to achieving your nutrition goals.\n\n"+
			"Stay consistent and healthy!", u.Username)
		out.Messages = append(out.Messages, Message{To: u.Email, Subject: "Daily Meal Plan Reminder", Body: body})
	}
	return out, nil
}

func motivationalMessage(in Input) (Output, error) {
	quote := motivationalQuotes[dateutil.MondayIndex(in.Now)%len(motivationalQuotes)]
	var out Output
	for _, u := range in.Snap.Users {
		body := fmt.Sprintf("Hi %s,\n\nHere's a motivational quote for you:\n\n\"%s\"\n\nKeep pushing toward your goals!", u.Username, quote)
		out.Messages = append(out.Messages, Message{To: u.Email, Subject: "Stay Motivated!", Body: body})
	}
	return out, nil
}

// goalAchievement congratulates owners of goals that end today and are met
// by the owner's current weight.
func goalAchievement(in Input) (Output, error) {
	today := dateutil.FormatDate(dateutil.Day(in.Now))
	var out Output
	for _, u := range in.Snap.Users {
		for _, g := range in.Snap.GoalsOf(u.ID) {
			if g.EndDate != today || !goal.Evaluate(g, u.Weight).Achieved {
				continue
			}
			body := fmt.Sprintf("Hi %s,\n\nCongratulations on achieving your goal:\n- %s: %s\n\n"+
				"Your hard work and dedication have paid off. Keep setting new goals and pushing forward!",
				u.Username, g.GoalType, num(g.GoalValue))
			out.Messages = append(out.Messages, Message{To: u.Email, Subject: "Congratulations on Achieving Your Goal!", Body: body})
		}
	}
	return out, nil
}

// inactivityReminder mails users whose latest routine activity is more than a
// week old, or who have none. A future-dated activity counts as recent.
func inactivityReminder(in Input) (Output, error) {
	cutoff := dateutil.Day(in.Now).AddDate(0, 0, -7)
	var out Output
	for _, u := range in.Snap.Users {
		if latest, ok := latestActivity(in.Snap.RoutineActivities(u)); ok && !latest.Before(cutoff) {
			continue
		}
		body := fmt.Sprintf("Hi %s,\n\nWe noticed you haven't logged any activities recently. "+
			"Remember, consistency is key to achieving your goals. Let's get back on track today!", u.Username)
		out.Messages = append(out.Messages, Message{To: u.Email, Subject: "We Miss You!", Body: body})
	}
	return out, nil
}

func latestActivity(acts []activity.Activity) (time.Time, bool) {
	var latest time.Time
	found := false
	for _, a := range acts {
		d, err := dateutil.ParseDate(a.ActivityDate)
		if err != nil {
			continue
		}
		if !found || d.After(latest) {
			latest, found = d, true
		}
	}
	return latest, found
}

func weeklyGoalSummary(in Input) (Output, error) {
	week := dateutil.Week(in.Now)
	var out Output
	for _, u := range in.Snap.Users {
		var b strings.Builder
		for _, g := range in.Snap.GoalsOf(u.ID) {
			if goalOverlaps(week, g) {
				fmt.Fprintf(&b, "- %s: %s (Target: %s)\n", g.GoalType, num(g.GoalValue), num(g.GoalValue))
			}
		}
		if b.Len() == 0 {
			continue
		}
		body := fmt.Sprintf("Hi %s,\n\nHere's your progress for this week:\n%s\nKeep up the great work!", u.Username, b.String())
		out.Messages = append(out.Messages, Message{To: u.Email, Subject: "Your Weekly Goal Progress Summary", Body: body})
	}
	return out, nil
}

func weeklyNutritionSummary(in Input) (Output, error) {
	week := dateutil.Week(in.Now)
	var out Output
	for _, u := range in.Snap.Users {
		meals := mealsIn(in.Snap.PlanMeals(u), week)
		if len(meals) == 0 {
			continue
		}
		t := totalNutrients(in.Snap, meals)
		body := fmt.Sprintf("Hi %s,\n\nHere's your nutrition summary for the week:\n"+
			"- Total Calories: %s\n- Total Protein: %sg\n- Total Carbohydrates: %sg\n- Total Fat: %sg\n\n"+
			"Keep tracking your meals to stay on top of your nutrition goals!",
			u.Username, num(t.Calories), num(t.Protein), num(t.Carbohydrates), num(t.Fat))
		out.Messages = append(out.Messages, Message{To: u.Email, Subject: "Your Weekly Nutrition Summary", Body: body})
	}
	return out, nil
}

func weeklyProfessionalGoalSummary(in Input) (Output, error) {
	week := dateutil.Week(in.Now)
	var out Output
	for _, p := range in.Snap.Professionals {
		var b strings.Builder
		for _, cu := range in.Snap.ClientUsers(p.ID) {
			var lines []string
			for _, g := range in.Snap.GoalsOf(cu.ID) {
				if dayIn(week, g.StartDate) {
					lines = append(lines, fmt.Sprintf("- %s: %s (Start: %s, End: %s)\n", g.GoalType, num(g.GoalValue), g.StartDate, g.EndDate))
				}
			}
			if len(lines) == 0 {
				continue
			}
			fmt.Fprintf(&b, "Client: %s\n%s\n", cu.Username, strings.Join(lines, ""))
		}
		body := fmt.Sprintf("Hi %s,\n\nHere is a summary of the goals you have set for your clients this week:\n\n%s"+
			"Keep supporting your clients to achieve their goals!", p.Username, b.String())
		out.Messages = append(out.Messages, Message{To: p.Email, Subject: "Weekly Summary of Goals Set for Clients", Body: body})
	}
	return out, nil
}

func clientProgressReport(in Input) (Output, error) {
	var out Output
	for _, p := range in.Snap.Professionals {
		clients := in.Snap.ClientUsers(p.ID)
		if len(clients) == 0 {
			continue
		}
		var b strings.Builder
		for _, cu := range clients {
			goals := in.Snap.GoalsOf(cu.ID)
			if len(goals) == 0 {
				fmt.Fprintf(&b, "- %s: no goals set\n", cu.Username)
				continue
			}
			for _, g := range goals {
				fmt.Fprintf(&b, "- %s: %s (Target: %s)\n", cu.Username, g.GoalType, num(g.GoalValue))
			}
		}
		body := fmt.Sprintf("Hi %s,\n\nHere's the progress report for your clients this week:\n%s\n"+
			"Keep supporting your clients to achieve their goals!", p.Username, b.String())
		out.Messages = append(out.Messages, Message{To: p.Email, Subject: "Weekly Client Progress Report", Body: body})
	}
	return out, nil
}

type leaderboardEntry struct {
	user  user.User
	count int
}

func weeklyActivityLeaderboard(in Input) (Output, error) {
	week := dateutil.Week(in.Now)
	board := make([]leaderboardEntry, 0, len(in.Snap.Users))
	for _, u := range in.Snap.Users {
		board = append(board, leaderboardEntry{user: u, count: len(activitiesIn(in.Snap.RoutineActivities(u), week))})
	}
	slices.SortStableFunc(board, func(a, b leaderboardEntry) int {
		if c := cmp.Compare(b.count, a.count); c != 0 {
			return c
		}
		return cmp.Compare(a.user.ID, b.user.ID)
	})
	board = board[:min(len(board), leaderboardSize)]

	var ranks strings.Builder
	for i, e := range board {
		fmt.Fprintf(&ranks, "%d. %s - %d activities\n", i+1, e.user.Username, e.count)
	}

	var out Output
	for _, u := range in.Snap.Users {
		body := fmt.Sprintf("Hi %s,\n\nHere are the top performers for this week:\n\n%s\n"+
			"Keep pushing yourself to climb the leaderboard next week!", u.Username, ranks.String())
		out.Messages = append(out.Messages, Message{To: u.Email, Subject: "Weekly Activity Leaderboard", Body: body})
	}
	return out, nil
}

func weeklyMealPlanSuggestions(in Input) (Output, error) {
	var out Output
	for _, u := range in.Snap.Users {
		if _, ok := in.Snap.Plan(u); !ok {
			continue
		}
		body := fmt.Sprintf("Hi %s,\n\nHere are some meal suggestions for the week based on your nutrition goals:\n"+
			"- Breakfast: Oatmeal with fresh fruits and nuts.\n"+
			"- Lunch: Grilled chicken with quinoa and steamed vegetables.\n"+
			"- Dinner: Baked salmon with sweet potatoes and a side salad.\n"+
			"- Snacks: Greek yogurt, almonds, or a protein bar.\n\n"+
			"Log in to your account to customize your meal plan!", u.Username)
		out.Messages = append(out.Messages, Message{To: u.Email, Subject: "Weekly Meal Plan Suggestions", Body: body})
	}
	return out, nil
}

func monthlyProgressReport(in Input) (Output, error) {
	month := dateutil.Month(in.Now)
	var out Output
	for _, u := range in.Snap.Users {
		var b strings.Builder
		fmt.Fprintf(&b, "Hi %s,\n\nHere's your progress for the month:\n", u.Username)

		var goals []goal.Goal
		for _, g := range in.Snap.GoalsOf(u.ID) {
			if goalOverlaps(month, g) {
				goals = append(goals, g)
			}
		}
		if len(goals) > 0 {
			b.WriteString("\nGoals:\n")
			for _, g := range goals {
				fmt.Fprintf(&b, "- %s: %s (Target: %s)\n", g.GoalType, num(g.GoalValue), num(g.GoalValue))
			}
		}

		if acts := activitiesIn(in.Snap.RoutineActivities(u), month); len(acts) > 0 {
			b.WriteString("\nRoutines Completed:\n")
			for _, a := range acts {
				fmt.Fprintf(&b, "- %s on %s\n", a.ActivityType, a.ActivityDate)
			}
		}

		if meals := mealsIn(in.Snap.PlanMeals(u), month); len(meals) > 0 {
			fmt.Fprintf(&b, "\nTotal Calories Consumed: %s\n", num(totalNutrients(in.Snap, meals).Calories))
		}

		b.WriteString("\nKeep up the great work and stay consistent!")
		out.Messages = append(out.Messages, Message{To: u.Email, Subject: "Your Monthly Progress Report", Body: b.String()})
	}
	return out, nil
}

// monthlyNutritionInsights averages calories over the distinct days that
// have at least one logged meal.
func monthlyNutritionInsights(in Input) (Output, error) {
	month := dateutil.Month(in.Now)
	var out Output
	for _, u := range in.Snap.Users {
		meals := mealsIn(in.Snap.PlanMeals(u), month)
		if len(meals) == 0 {
			continue
		}
		days := make(map[string]bool)
		for _, m := range meals {
			days[m.MealDate] = true
		}
		total := totalNutrients(in.Snap, meals).Calories
		body := fmt.Sprintf("Hi %s,\n\nHere are your nutrition insights for the month:\n"+
			"- Total Calories Consumed: %s\n- Average Daily Calories: %.2f\n\n"+
			"Keep tracking your meals to maintain a balanced diet!",
			u.Username, num(total), total/float64(len(days)))
		out.Messages = append(out.Messages, Message{To: u.Email, Subject: "Monthly Nutrition Insights", Body: body})
	}
	return out, nil
}

func professionalFeedbackRequest(in Input) (Output, error) {
	var out Output
	for _, p := range in.Snap.Professionals {
		for _, cu := range in.Snap.ClientUsers(p.ID) {
			body := fmt.Sprintf("Hi %s,\n\nWe'd love to hear your thoughts about your experience with %s.\n"+
				"Your feedback helps us improve and provide the best support possible.\n\n"+
				"Please log in to your account to leave feedback.", cu.Username, p.Username)
			out.Messages = append(out.Messages, Message{To: cu.Email, Subject: "We Value Your Feedback!", Body: body})
		}
	}
	return out, nil
}

// monthlyClientRetentionReport counts a client as active when their routine
// has an activity dated this month.
func monthlyClientRetentionReport(in Input) (Output, error) {
	month := dateutil.Month(in.Now)
	var out Output
	for _, p := range in.Snap.Professionals {
		clients := in.Snap.ClientUsers(p.ID)
		active := 0
		for _, cu := range clients {
			if len(activitiesIn(in.Snap.RoutineActivities(cu), month)) > 0 {
				active++
			}
		}
		rate := 0.0
		if len(clients) > 0 {
			rate = float64(active) / float64(len(clients)) * 100
		}
		body := fmt.Sprintf("Hi %s,\n\nHere's your client retention report for the month:\n"+
			"- Total Clients: %d\n- Active Clients: %d\n- Retention Rate: %.2f%%\n\n"+
			"Keep engaging with your clients to maintain high retention rates!",
			p.Username, len(clients), active, rate)
		out.Messages = append(out.Messages, Message{To: p.Email, Subject: "Monthly Client Retention Report", Body: body})
	}
	return out, nil
}
