package activity

import (
	"context"

	"github.com/sanaresoma/sanaresoma-backend/internal/dateutil"
	"github.com/sanaresoma/sanaresoma-backend/internal/validation"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Activity, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByIDs(ctx context.Context, ids []int) ([]Activity, error) {
	return s.repo.ListByIDs(ctx, ids)
}

func (s *Service) GetByID(ctx context.Context, id int) (Activity, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, a Activity) (Activity, error) {
	if err := Validate(a); err != nil {
		return Activity{}, err
	}
	return s.repo.Create(ctx, a)
}

func (s *Service) Update(ctx context.Context, id int, a Activity) (Activity, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return Activity{}, err
	}
	if err := Validate(a); err != nil {
		return Activity{}, err
	}
	return s.repo.Update(ctx, id, a)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// Validate checks required fields and that the activity does not end before
// it starts. The ordering error is reported against startTime.
func Validate(a Activity) error {
	errs := validation.Errors{}
	if a.ActivityType == "" {
		errs.Add("activityType", "activityType is required")
	}
	if _, err := dateutil.ParseDate(a.ActivityDate); err != nil {
		errs.Add("activityDate", err.Error())
	}

	start, startErr := dateutil.ParseClock(a.StartTime)
	if startErr != nil {
		errs.Add("startTime", startErr.Error())
	}
	end, endErr := dateutil.ParseClock(a.EndTime)
	if endErr != nil {
		errs.Add("endTime", endErr.Error())
	}
	if startErr == nil && endErr == nil && end < start {
		errs.Add("startTime", "End time must be after start time.")
	}
	return errs.Err()
}
