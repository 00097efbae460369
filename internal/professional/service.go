package professional

import (
	"context"
	"net/mail"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/sanaresoma/sanaresoma-backend/internal/validation"
)

type Service struct {
	repo Repository
	now  func() time.Time
	cost int
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now, cost: bcrypt.DefaultCost}
}

// WithHashCost sets the bcrypt cost used for new passwords.
func (s *Service) WithHashCost(cost int) *Service {
	s.cost = cost
	return s
}

func (s *Service) List(ctx context.Context) ([]Professional, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int) (Professional, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, p Professional) (Professional, error) {
	if err := validate(p, true); err != nil {
		return Professional{}, err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(p.Password), s.cost)
	if err != nil {
		return Professional{}, err
	}
	p.Password = string(hashed)

	ts := s.now().UTC().Format(time.RFC3339)
	p.CreatedAt, p.UpdatedAt = ts, ts
	return s.repo.Create(ctx, p)
}

func (s *Service) Update(ctx context.Context, id int, p Professional) (Professional, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Professional{}, err
	}
	if err := validate(p, false); err != nil {
		return Professional{}, err
	}

	if p.Password == "" {
		p.Password = current.Password
	} else {
		hashed, err := bcrypt.GenerateFromPassword([]byte(p.Password), s.cost)
		if err != nil {
			return Professional{}, err
		}
		p.Password = string(hashed)
	}
	p.CreatedAt = current.CreatedAt
	p.UpdatedAt = s.now().UTC().Format(time.RFC3339)
	return s.repo.Update(ctx, id, p)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func validate(p Professional, creating bool) error {
	errs := validation.Errors{}
	if p.Username == "" {
		errs.Add("username", "username is required")
	}
	if p.Email == "" {
		errs.Add("email", "email is required")
	} else if _, err := mail.ParseAddress(p.Email); err != nil {
		errs.Add("email", "email is invalid")
	}
	if creating && p.Password == "" {
		errs.Add("password", "password is required")
	}
	if p.RoutineID != nil && *p.RoutineID <= 0 {
		errs.Add("routineId", "routineId must be a positive id")
	}
	if p.NutritionID != nil && *p.NutritionID <= 0 {
		errs.Add("nutritionId", "nutritionId must be a positive id")
	}
	return errs.Err()
}
