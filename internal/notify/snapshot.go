package notify

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

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

// Source is anything that can list every record of one entity.
type Source[T any] interface {
	List(ctx context.Context) ([]T, error)
}

type Sources struct {
	Users         Source[user.User]
	Professionals Source[professional.Professional]
	Goals         Source[goal.Goal]
	Activities    Source[activity.Activity]
	Routines      Source[routine.Routine]
	Foods         Source[food.Food]
	Meals         Source[meal.Meal]
	Nutritions    Source[nutrition.Nutrition]
	Clients       Source[client.Client]
}

// Snapshot is a read-only copy of all records taken at the start of a run.
type Snapshot struct {
	Users         []user.User
	Professionals []professional.Professional
	Goals         []goal.Goal
	Activities    []activity.Activity
	Routines      []routine.Routine
	Foods         []food.Food
	Meals         []meal.Meal
	Nutritions    []nutrition.Nutrition
	Clients       []client.Client

	users         map[int]user.User
	professionals map[int]professional.Professional
	goals         map[int]goal.Goal
	activities    map[int]activity.Activity
	routines      map[int]routine.Routine
	foods         map[int]food.Food
	meals         map[int]meal.Meal
	nutritions    map[int]nutrition.Nutrition
}

func load[T any](ctx context.Context, g *errgroup.Group, name string, src Source[T], dst *[]T) {
	g.Go(func() error {
		items, err := src.List(ctx)
		if err != nil {
			return fmt.Errorf("load %s: %w", name, err)
		}
		*dst = items
		return nil
	})
}

// Load lists every source concurrently.
func (s Sources) Load(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{}
	g, ctx := errgroup.WithContext(ctx)
	load(ctx, g, "users", s.Users, &snap.Users)
	load(ctx, g, "professionals", s.Professionals, &snap.Professionals)
	load(ctx, g, "goals", s.Goals, &snap.Goals)
	load(ctx, g, "activities", s.Activities, &snap.Activities)
	load(ctx, g, "routines", s.Routines, &snap.Routines)
	load(ctx, g, "foods", s.Foods, &snap.Foods)
	load(ctx, g, "meals", s.Meals, &snap.Meals)
	load(ctx, g, "nutritions", s.Nutritions, &snap.Nutritions)
	load(ctx, g, "clients", s.Clients, &snap.Clients)
	if err := g.Wait(); err != nil {
		return nil, err
	}
	snap.index()
	return snap, nil
}

func indexBy[T any](items []T, id func(T) int) map[int]T {
	m := make(map[int]T, len(items))
	for _, it := range items {
		m[id(it)] = it
	}
	return m
}

func (s *Snapshot) index() {
	s.users = indexBy(s.Users, func(u user.User) int { return u.ID })
	s.professionals = indexBy(s.Professionals, func(p professional.Professional) int { return p.ID })
	s.goals = indexBy(s.Goals, func(g goal.Goal) int { return g.ID })
	s.activities = indexBy(s.Activities, func(a activity.Activity) int { return a.ID })
	s.routines = indexBy(s.Routines, func(r routine.Routine) int { return r.ID })
	s.foods = indexBy(s.Foods, func(f food.Food) int { return f.ID })
	s.meals = indexBy(s.Meals, func(m meal.Meal) int { return m.ID })
	s.nutritions = indexBy(s.Nutritions, func(n nutrition.Nutrition) int { return n.ID })
}

func (s *Snapshot) User(id int) (user.User, bool) {
	u, ok := s.users[id]
	return u, ok
}

func (s *Snapshot) Professional(id int) (professional.Professional, bool) {
	p, ok := s.professionals[id]
	return p, ok
}

func (s *Snapshot) Goal(id int) (goal.Goal, bool) {
	g, ok := s.goals[id]
	return g, ok
}

func (s *Snapshot) Routine(id int) (routine.Routine, bool) {
	r, ok := s.routines[id]
	return r, ok
}

// RoutineActivities returns the activities of the user's routine in id
// order. Users without a routine have none.
func (s *Snapshot) RoutineActivities(u user.User) []activity.Activity {
	if u.RoutineID == nil {
		return nil
	}
	rt, ok := s.routines[*u.RoutineID]
	if !ok {
		return nil
	}
	out := make([]activity.Activity, 0, len(rt.ActivityIDs))
	for _, id := range rt.ActivityIDs {
		if a, ok := s.activities[id]; ok {
			out = append(out, a)
		}
	}
	slices.SortFunc(out, func(a, b activity.Activity) int { return a.ID - b.ID })
	return out
}

// Plan returns the user's nutrition plan when it exists.
func (s *Snapshot) Plan(u user.User) (nutrition.Nutrition, bool) {
	if u.NutritionID == nil {
		return nutrition.Nutrition{}, false
	}
	n, ok := s.nutritions[*u.NutritionID]
	return n, ok
}

// PlanMeals returns the meals of the user's nutrition plan in id order.
func (s *Snapshot) PlanMeals(u user.User) []meal.Meal {
	plan, ok := s.Plan(u)
	if !ok {
		return nil
	}
	out := make([]meal.Meal, 0, len(plan.MealIDs))
	for _, id := range plan.MealIDs {
		if m, ok := s.meals[id]; ok {
			out = append(out, m)
		}
	}
	slices.SortFunc(out, func(a, b meal.Meal) int { return a.ID - b.ID })
	return out
}

// MealNutrients sums a meal's foods scaled by quantity.
func (s *Snapshot) MealNutrients(m meal.Meal) food.Nutrients {
	return meal.Sum(m.Foods, s.foods)
}

func (s *Snapshot) GoalsOf(userID int) []goal.Goal {
	var out []goal.Goal
	for _, g := range s.Goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out
}

// ClientUsers returns the users coached by the professional, skipping client
// rows whose user has gone.
func (s *Snapshot) ClientUsers(professionalID int) []user.User {
	var out []user.User
	for _, c := range s.Clients {
		if c.ProfessionalID != professionalID {
			continue
		}
		if u, ok := s.users[c.UserID]; ok {
			out = append(out, u)
		}
	}
	return out
}
