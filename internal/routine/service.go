package routine

import (
	"context"
	"errors"
	"fmt"

	"github.com/sanaresoma/sanaresoma-backend/internal/activity"
	"github.com/sanaresoma/sanaresoma-backend/internal/validation"
)

type ActivitySource interface {
	GetByID(ctx context.Context, id int) (activity.Activity, error)
	ListByIDs(ctx context.Context, ids []int) ([]activity.Activity, error)
}

type Service struct {
	repo       Repository
	activities ActivitySource
}

func NewService(repo Repository, activities ActivitySource) *Service {
	return &Service{repo: repo, activities: activities}
}

func (s *Service) List(ctx context.Context) ([]Routine, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int) (Routine, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, rt Routine) (Routine, error) {
	if err := s.validate(ctx, rt); err != nil {
		return Routine{}, err
	}
	return s.repo.Create(ctx, rt)
}

func (s *Service) Update(ctx context.Context, id int, rt Routine) (Routine, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return Routine{}, err
	}
	if err := s.validate(ctx, rt); err != nil {
		return Routine{}, err
	}
	return s.repo.Update(ctx, id, rt)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// Activities resolves the routine's activities in id order.
func (s *Service) Activities(ctx context.Context, id int) ([]activity.Activity, error) {
	rt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.activities.ListByIDs(ctx, rt.ActivityIDs)
}

func (s *Service) validate(ctx context.Context, rt Routine) error {
	errs := validation.Errors{}
	if rt.Name == "" {
		errs.Add("name", "name is required")
	}

	seen := make(map[int]bool, len(rt.ActivityIDs))
	for _, id := range rt.ActivityIDs {
		if seen[id] {
			errs.Add("activityIds", fmt.Sprintf("activity %d listed twice", id))
			continue
		}
		seen[id] = true
		_, err := s.activities.GetByID(ctx, id)
		switch {
		case errors.Is(err, activity.ErrNotFound):
			errs.Add("activityIds", fmt.Sprintf("activity %d does not exist", id))
		case err != nil:
			return err
		}
	}
	return errs.Err()
}
