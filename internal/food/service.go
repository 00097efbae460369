package food

import (
	"context"

	"github.com/sanaresoma/sanaresoma-backend/internal/validation"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Food, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByIDs(ctx context.Context, ids []int) ([]Food, error) {
	return s.repo.ListByIDs(ctx, ids)
}

func (s *Service) GetByID(ctx context.Context, id int) (Food, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, f Food) (Food, error) {
	if err := validate(f); err != nil {
		return Food{}, err
	}
	return s.repo.Create(ctx, f)
}

func (s *Service) Update(ctx context.Context, id int, f Food) (Food, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return Food{}, err
	}
	if err := validate(f); err != nil {
		return Food{}, err
	}
	return s.repo.Update(ctx, id, f)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func validate(f Food) error {
	errs := validation.Errors{}
	if f.FoodName == "" {
		errs.Add("foodName", "foodName is required")
	}
	for field, v := range map[string]float64{
		"servingSize":   f.ServingSize,
		"calories":      f.Calories,
		"protein":       f.Protein,
		"carbohydrates": f.Carbohydrates,
		"fat":           f.Fat,
		"sodium":        f.Sodium,
	} {
		if v < 0 {
			errs.Add(field, field+" must be >= 0")
		}
	}
	return errs.Err()
}
