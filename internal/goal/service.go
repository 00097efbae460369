package goal

import (
	"context"
	"errors"

	"github.com/sanaresoma/sanaresoma-backend/internal/dateutil"
	"github.com/sanaresoma/sanaresoma-backend/internal/professional"
	"github.com/sanaresoma/sanaresoma-backend/internal/user"
	"github.com/sanaresoma/sanaresoma-backend/internal/validation"
)

type UserLookup interface {
	GetByID(ctx context.Context, id int) (user.User, error)
}

type ProfessionalLookup interface {
	GetByID(ctx context.Context, id int) (professional.Professional, error)
}

// Listener is told about every goal after it has been stored.
type Listener interface {
	GoalCreated(ctx context.Context, g Goal, owner user.User)
}

type Service struct {
	repo     Repository
	users    UserLookup
	pros     ProfessionalLookup
	listener Listener
}

func NewService(repo Repository, users UserLookup, pros ProfessionalLookup) *Service {
	return &Service{repo: repo, users: users, pros: pros}
}

// WithListener registers l for goal creation events.
func (s *Service) WithListener(l Listener) *Service {
	s.listener = l
	return s
}

func (s *Service) List(ctx context.Context) ([]Goal, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByUser(ctx context.Context, userID int) ([]Goal, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) GetByID(ctx context.Context, id int) (Goal, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, g Goal) (Goal, error) {
	owner, err := s.validate(ctx, g)
	if err != nil {
		return Goal{}, err
	}
	created, err := s.repo.Create(ctx, g)
	if err != nil {
		return Goal{}, err
	}
	if s.listener != nil {
		s.listener.GoalCreated(ctx, created, owner)
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int, g Goal) (Goal, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return Goal{}, err
	}
	if _, err := s.validate(ctx, g); err != nil {
		return Goal{}, err
	}
	return s.repo.Update(ctx, id, g)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// Achievement evaluates the goal against its owner's current weight.
func (s *Service) Achievement(ctx context.Context, id int) (Achievement, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Achievement{}, err
	}
	owner, err := s.users.GetByID(ctx, g.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Achievement{GoalID: g.ID, Reason: "goal owner no longer exists"}, nil
		}
		return Achievement{}, err
	}
	return Evaluate(g, owner.Weight), nil
}

func (s *Service) validate(ctx context.Context, g Goal) (user.User, error) {
	errs := validation.Errors{}
	var owner user.User

	if g.UserID <= 0 {
		errs.Add("userId", "userId is required")
	} else {
		u, err := s.users.GetByID(ctx, g.UserID)
		switch {
		case errors.Is(err, user.ErrNotFound):
			errs.Add("userId", "user does not exist")
		case err != nil:
			return user.User{}, err
		default:
			owner = u
		}
	}
	if g.ProfessionalID != nil {
		_, err := s.pros.GetByID(ctx, *g.ProfessionalID)
		switch {
		case errors.Is(err, professional.ErrNotFound):
			errs.Add("professionalId", "professional does not exist")
		case err != nil:
			return user.User{}, err
		}
	}
	if g.GoalType == "" {
		errs.Add("goalType", "goalType is required")
	}

	start, startErr := dateutil.ParseDate(g.StartDate)
	if startErr != nil {
		errs.Add("startDate", startErr.Error())
	}
	end, endErr := dateutil.ParseDate(g.EndDate)
	if endErr != nil {
		errs.Add("endDate", endErr.Error())
	}
	if startErr == nil && endErr == nil && end.Before(start) {
		errs.Add("endDate", "endDate must not be before startDate")
	}

	return owner, errs.Err()
}
