package observation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/domain/dog"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/apperr"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/principal"
)

type Repository interface {
	Create(ctx context.Context, o *Observation) error
	GetByID(ctx context.Context, id int64) (*Observation, error)
	List(ctx context.Context, dogID *int64) ([]Observation, error)
	Update(ctx context.Context, o *Observation) error
	Delete(ctx context.Context, id int64) (int64, error)
}

type DogReader interface {
	GetByID(ctx context.Context, id int64) (*dog.Dog, error)
}

type Service struct {
	repo Repository
	dogs DogReader
}

func NewService(repo Repository, dogs DogReader) *Service {
	return &Service{repo: repo, dogs: dogs}
}

func (s *Service) Create(ctx context.Context, p principal.Principal, req CreateRequest) (*Observation, error) {
	if _, err := s.dogs.GetByID(ctx, req.DogID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Wrap(ErrUnknownDog, ErrUnknownDog.Message, err)
		}
		return nil, apperr.Unprocessable("failed to load dog", err)
	}

	o := &Observation{
		DogID:       req.DogID,
		AuthorID:    p.UserID,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, apperr.Unprocessable("failed to create observation", err)
	}
	return o, nil
}

// Find lists observations, newest first.
func (s *Service) Find(ctx context.Context, dogID *int64) ([]Observation, error) {
	list, err := s.repo.List(ctx, dogID)
	if err != nil {
		return nil, apperr.BadRequest("failed to list observations", err)
	}
	return list, nil
}

func (s *Service) FindOne(ctx context.Context, id int64) (*Observation, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, apperr.BadRequest("failed to load observation", err)
	}
	return o, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (*Observation, error) {
	o, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Description != nil {
		o.Description = *req.Description
	}
	if err := s.repo.Update(ctx, o); err != nil {
		return nil, apperr.Unprocessable("failed to update observation", err)
	}
	return o, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.FindOne(ctx, id); err != nil {
		return err
	}
	if _, err := s.repo.Delete(ctx, id); err != nil {
		return apperr.BadRequest("failed to delete observation", err)
	}
	return nil
}
