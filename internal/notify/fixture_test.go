package notify

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sanaresoma/sanaresoma-backend/internal/activity"
	"github.com/sanaresoma/sanaresoma-backend/internal/client"
	"github.com/sanaresoma/sanaresoma-backend/internal/food"
	"github.com/sanaresoma/sanaresoma-backend/internal/goal"
	"github.com/sanaresoma/sanaresoma-backend/internal/meal"
	"github.com/sanaresoma/sanaresoma-backend/internal/nutrition"
	"github.com/sanaresoma/sanaresoma-backend/internal/professional"
	"github.com/sanaresoma/sanaresoma-backend/internal/routine"
	"github.com/sanaresoma/sanaresoma-backend/internal/user"
)

// Wednesday; the week runs 2025-03-10 to 2025-03-16.
var fixtureNow = time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

func fixture() *Snapshot {
	snap := &Snapshot{
		Users: []user.User{
			{ID: 1, Username: "alice", Email: "alice@example.com", Weight: 68, RoutineID: intPtr(1), NutritionID: intPtr(1), ProfessionalID: intPtr(1)},
			{ID: 2, Username: "bob", Email: "bob@example.com", Weight: 90, RoutineID: intPtr(2)},
			{ID: 3, Username: "carol", Email: "carol@example.com"},
		},
		Professionals: []professional.Professional{
			{ID: 1, Username: "coach", Email: "coach@example.com"},
			{ID: 2, Username: "idle", Email: "idle@example.com"},
		},
		Goals: []goal.Goal{
			{ID: 1, UserID: 1, ProfessionalID: intPtr(1), GoalType: "weight_loss", GoalValue: 70, StartDate: "2025-03-10", EndDate: "2025-03-12"},
			{ID: 2, UserID: 2, GoalType: "muscle_gain", GoalValue: 95, StartDate: "2025-01-01", EndDate: "2025-02-01"},
			{ID: 3, UserID: 3, GoalType: "steps", GoalValue: 0, StartDate: "2025-04-01", EndDate: "2025-04-30"},
		},
		Activities: []activity.Activity{
			{ID: 1, ActivityType: "Running", ActivityDate: "2025-03-12", StartTime: "07:00", EndTime: "07:30"},
			{ID: 2, ActivityType: "Yoga", ActivityDate: "2025-03-11", StartTime: "08:00", EndTime: "09:00"},
			{ID: 3, ActivityType: "Swim", ActivityDate: "2025-03-11", StartTime: "18:00", EndTime: "19:00"},
			{ID: 4, ActivityType: "Lift", ActivityDate: "2025-02-20", StartTime: "17:00", EndTime: "18:00"},
		},
		Routines: []routine.Routine{
			{ID: 1, Name: "Cardio", ActivityIDs: []int{1, 2, 3}},
			{ID: 2, Name: "Strength", ActivityIDs: []int{4}},
		},
		Foods: []food.Food{
			{ID: 1, FoodName: "Egg", Calories: 78, Protein: 6, Carbohydrates: 1, Fat: 5},
			{ID: 2, FoodName: "Toast", Calories: 80, Protein: 3, Carbohydrates: 14, Fat: 1},
		},
		Meals: []meal.Meal{
			{ID: 1, MealDate: "2025-03-10", MealTime: "08:00", MealType: "breakfast", Foods: []meal.Item{{FoodID: 1, Quantity: 2}, {FoodID: 2, Quantity: 1}}},
			{ID: 2, MealDate: "2025-03-12", MealTime: "12:30", MealType: "lunch", Foods: []meal.Item{{FoodID: 2, Quantity: 2}}},
			{ID: 3, MealDate: "2025-03-01", MealTime: "19:00", MealType: "dinner", Foods: []meal.Item{{FoodID: 1, Quantity: 1}}},
		},
		Nutritions: []nutrition.Nutrition{
			{ID: 1, Name: "Cutting", MealIDs: []int{1, 2, 3}},
		},
		Clients: []client.Client{
			{ID: 1, UserID: 1, ProfessionalID: 1},
			{ID: 2, UserID: 2, ProfessionalID: 1},
		},
	}
	snap.index()
	return snap
}

func fixtureSources() Sources {
	f := fixture()
	return Sources{
		Users:         user.NewInMemoryRepository(f.Users),
		Professionals: professional.NewInMemoryRepository(f.Professionals),
		Goals:         goal.NewInMemoryRepository(f.Goals),
		Activities:    activity.NewInMemoryRepository(f.Activities),
		Routines:      routine.NewInMemoryRepository(f.Routines),
		Foods:         food.NewInMemoryRepository(f.Foods),
		Meals:         meal.NewInMemoryRepository(f.Meals),
		Nutritions:    nutrition.NewInMemoryRepository(f.Nutritions),
		Clients:       client.NewInMemoryRepository(f.Clients),
	}
}

type recordingMailer struct {
	mu   sync.Mutex
	sent []Email
	fail map[string]bool
}

func (m *recordingMailer) Send(_ context.Context, e Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail[e.To] {
		return errors.New("mailbox unavailable")
	}
	m.sent = append(m.sent, e)
	return nil
}

func recipients(msgs []Message) []string {
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = m.To
	}
	return out
}
