package meal

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/sanaresoma/sanaresoma-backend/internal/dateutil"
	"github.com/sanaresoma/sanaresoma-backend/internal/food"
	"github.com/sanaresoma/sanaresoma-backend/internal/validation"
)

type FoodSource interface {
	GetByID(ctx context.Context, id int) (food.Food, error)
	ListByIDs(ctx context.Context, ids []int) ([]food.Food, error)
}

type Service struct {
	repo  Repository
	foods FoodSource
}

func NewService(repo Repository, foods FoodSource) *Service {
	return &Service{repo: repo, foods: foods}
}

func (s *Service) List(ctx context.Context) ([]Meal, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByIDs(ctx context.Context, ids []int) ([]Meal, error) {
	return s.repo.ListByIDs(ctx, ids)
}

func (s *Service) GetByID(ctx context.Context, id int) (Meal, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, m Meal) (Meal, error) {
	m = withDefaultQuantities(m)
	if err := s.validate(ctx, m); err != nil {
		return Meal{}, err
	}
	return s.repo.Create(ctx, m)
}

func (s *Service) Update(ctx context.Context, id int, m Meal) (Meal, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return Meal{}, err
	}
	m = withDefaultQuantities(m)
	if err := s.validate(ctx, m); err != nil {
		return Meal{}, err
	}
	return s.repo.Update(ctx, id, m)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// Totals sums the meal's nutrients, scaling each food by its quantity.
func (s *Service) Totals(ctx context.Context, id int) (Totals, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Totals{}, err
	}
	ids := make([]int, 0, len(m.Foods))
	for _, it := range m.Foods {
		ids = append(ids, it.FoodID)
	}
	foods, err := s.foods.ListByIDs(ctx, ids)
	if err != nil {
		return Totals{}, err
	}
	byID := make(map[int]food.Food, len(foods))
	for _, f := range foods {
		byID[f.ID] = f
	}
	return Totals{MealID: m.ID, Nutrients: Sum(m.Foods, byID)}, nil
}

func withDefaultQuantities(m Meal) Meal {
	items := make([]Item, len(m.Foods))
	for i, it := range m.Foods {
		if it.Quantity == 0 {
			it.Quantity = 1
		}
		items[i] = it
	}
	m.Foods = items
	return m
}

func (s *Service) validate(ctx context.Context, m Meal) error {
	errs := validation.Errors{}
	if _, err := dateutil.ParseDate(m.MealDate); err != nil {
		errs.Add("mealDate", err.Error())
	}
	if _, err := dateutil.ParseClock(m.MealTime); err != nil {
		errs.Add("mealTime", err.Error())
	}
	if !slices.Contains(AllowedTypes, m.MealType) {
		errs.Add("mealType", "mealType must be one of breakfast, lunch, dinner, snack")
	}

	seen := make(map[int]bool, len(m.Foods))
	for _, it := range m.Foods {
		if it.Quantity < 0 {
			errs.Add("foods", fmt.Sprintf("quantity for food %d must be > 0", it.FoodID))
		}
		if seen[it.FoodID] {
			errs.Add("foods", fmt.Sprintf("food %d listed twice", it.FoodID))
			continue
		}
		seen[it.FoodID] = true
		_, err := s.foods.GetByID(ctx, it.FoodID)
		switch {
		case errors.Is(err, food.ErrNotFound):
			errs.Add("foods", fmt.Sprintf("food %d does not exist", it.FoodID))
		case err != nil:
			return err
		}
	}
	return errs.Err()
}
