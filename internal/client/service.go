package client

import (
	"context"
	"errors"

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

type Service struct {
	repo  Repository
	users UserLookup
	pros  ProfessionalLookup
}

func NewService(repo Repository, users UserLookup, pros ProfessionalLookup) *Service {
	return &Service{repo: repo, users: users, pros: pros}
}

func (s *Service) List(ctx context.Context) ([]Client, error) {
	return s.repo.List(ctx)
}

// ListByProfessional returns professional.ErrNotFound when the professional
// itself is unknown.
func (s *Service) ListByProfessional(ctx context.Context, professionalID int) ([]Client, error) {
	if _, err := s.pros.GetByID(ctx, professionalID); err != nil {
		return nil, err
	}
	return s.repo.ListByProfessional(ctx, professionalID)
}

func (s *Service) GetByID(ctx context.Context, id int) (Client, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, c Client) (Client, error) {
	if err := s.validate(ctx, 0, c); err != nil {
		return Client{}, err
	}
	return s.repo.Create(ctx, c)
}

func (s *Service) Update(ctx context.Context, id int, c Client) (Client, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return Client{}, err
	}
	if err := s.validate(ctx, id, c); err != nil {
		return Client{}, err
	}
	return s.repo.Update(ctx, id, c)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// validate checks c as the record with id self; self is 0 on create.
func (s *Service) validate(ctx context.Context, self int, c Client) error {
	errs := validation.Errors{}
	if c.UserID <= 0 {
		errs.Add("userId", "userId is required")
	} else {
		_, err := s.users.GetByID(ctx, c.UserID)
		switch {
		case errors.Is(err, user.ErrNotFound):
			errs.Add("userId", "user does not exist")
		case err != nil:
			return err
		}
	}
	if c.ProfessionalID <= 0 {
		errs.Add("professionalId", "professionalId is required")
	} else {
		_, err := s.pros.GetByID(ctx, c.ProfessionalID)
		switch {
		case errors.Is(err, professional.ErrNotFound):
			errs.Add("professionalId", "professional does not exist")
		case err != nil:
			return err
		}
	}
	if len(errs) > 0 {
		return errs
	}

	existing, err := s.repo.ListByProfessional(ctx, c.ProfessionalID)
	if err != nil {
		return err
	}
	for _, e := range existing {
		if e.UserID == c.UserID && e.ID != self {
			errs.Add("userId", "user is already a client of this professional")
			break
		}
	}
	return errs.Err()
}
