package nutrition

import (
	"context"
	"errors"
	"fmt"

	"github.com/sanaresoma/sanaresoma-backend/internal/meal"
	"github.com/sanaresoma/sanaresoma-backend/internal/validation"
)

type MealSource interface {
	GetByID(ctx context.Context, id int) (meal.Meal, error)
	ListByIDs(ctx context.Context, ids []int) ([]meal.Meal, error)
}

type Service struct {
	repo  Repository
	meals MealSource
}

func NewService(repo Repository, meals MealSource) *Service {
	return &Service{repo: repo, meals: meals}
}

func (s *Service) List(ctx context.Context) ([]Nutrition, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int) (Nutrition, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, p Nutrition) (Nutrition, error) {
	if err := s.validate(ctx, p); err != nil {
		return Nutrition{}, err
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) Update(ctx context.Context, id int, p Nutrition) (Nutrition, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return Nutrition{}, err
	}
	if err := s.validate(ctx, p); err != nil {
		return Nutrition{}, err
	}
	return s.repo.Update(ctx, id, p)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Meals(ctx context.Context, id int) ([]meal.Meal, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.meals.ListByIDs(ctx, p.MealIDs)
}

func (s *Service) validate(ctx context.Context, p Nutrition) error {
	errs := validation.Errors{}
	seen := make(map[int]bool, len(p.MealIDs))
	for _, id := range p.MealIDs {
		if seen[id] {
			errs.Add("mealIds", fmt.Sprintf("meal %d listed twice", id))
			continue
		}
		seen[id] = true
		_, err := s.meals.GetByID(ctx, id)
		switch {
		case errors.Is(err, meal.ErrNotFound):
			errs.Add("mealIds", fmt.Sprintf("meal %d does not exist", id))
		case err != nil:
			return err
		}
	}
	return errs.Err()
}
