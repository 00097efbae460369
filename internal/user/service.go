package user

import (
	"context"
	"errors"
	"net/mail"
	"slices"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/sanaresoma/sanaresoma-backend/internal/dateutil"
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

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int) (User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, u User) (User, error) {
	if err := validate(u, true); err != nil {
		return User{}, err
	}

	hashed, err := s.hashPassword(u.Password)
	if err != nil {
		return User{}, err
	}
	u.Password = hashed

	ts := s.now().UTC().Format(time.RFC3339)
	u.CreatedAt = ts
	u.UpdatedAt = ts
	return s.repo.Create(ctx, u)
}

// Update replaces every field of the stored user. An empty password keeps the
// current hash.
func (s *Service) Update(ctx context.Context, id int, u User) (User, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, err
	}
	if err := validate(u, false); err != nil {
		return User{}, err
	}

	if u.Password == "" {
		u.Password = current.Password
	} else if u.Password, err = s.hashPassword(u.Password); err != nil {
		return User{}, err
	}

	u.CreatedAt = current.CreatedAt
	u.UpdatedAt = s.now().UTC().Format(time.RFC3339)
	return s.repo.Update(ctx, id, u)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// BMI computes the body mass index from the user's stored measurements.
func (s *Service) BMI(ctx context.Context, id int) (BMIReport, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return BMIReport{}, err
	}

	bmi, err := CalculateBMI(u.Height, u.Weight)
	if err != nil {
		if errors.Is(err, ErrMissingMeasurements) || errors.Is(err, ErrImplausible) {
			return BMIReport{}, validation.Errors{"bmi": err.Error()}
		}
		return BMIReport{}, err
	}

	return BMIReport{
		UserID:   u.ID,
		Height:   u.Height,
		Weight:   u.Weight,
		BMI:      bmi,
		Category: BMICategory(bmi),
	}, nil
}

func validate(u User, creating bool) error {
	errs := validation.Errors{}
	if u.Username == "" {
		errs.Add("username", "username is required")
	}
	if u.Email == "" {
		errs.Add("email", "email is required")
	} else if _, err := mail.ParseAddress(u.Email); err != nil {
		errs.Add("email", "email is invalid")
	}
	if creating && u.Password == "" {
		errs.Add("password", "password is required")
	}
	if u.Gender != "" && !slices.Contains(AllowedGenders, u.Gender) {
		errs.Add("gender", "gender must be one of male, female, other")
	}
	if u.Height < 0 {
		errs.Add("height", "height must be >= 0")
	}
	if u.Weight < 0 {
		errs.Add("weight", "weight must be >= 0")
	}
	if u.DateOfBirth != nil {
		if _, err := dateutil.ParseDate(*u.DateOfBirth); err != nil {
			errs.Add("dateOfBirth", err.Error())
		}
	}
	for field, ref := range map[string]*int{
		"goalId":         u.GoalID,
		"routineId":      u.RoutineID,
		"nutritionId":    u.NutritionID,
		"professionalId": u.ProfessionalID,
	} {
		if ref != nil && *ref <= 0 {
			errs.Add(field, field+" must be a positive id")
		}
	}
	return errs.Err()
}

func (s *Service) hashPassword(pw string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(pw), s.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
