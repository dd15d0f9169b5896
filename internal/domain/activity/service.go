package activity

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/apperr"
)

type Repository interface {
	Create(ctx context.Context, a *Activity) error
	GetByID(ctx context.Context, id int64) (*Activity, error)
	List(ctx context.Context, establishmentID *int64) ([]Activity, error)
	Update(ctx context.Context, a *Activity) error
	Delete(ctx context.Context, id int64) (int64, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*Activity, error) {
	a := &Activity{
		EstablishmentID: req.EstablishmentID,
		Title:           req.Title,
		Description:     req.Description,
		Image:           req.Image,
		Color:           req.Color,
		Duration:        req.Duration,
		Price:           req.Price,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, apperr.Unprocessable("failed to create activity", err)
	}
	return a, nil
}

func (s *Service) Find(ctx context.Context, establishmentID *int64) ([]Activity, error) {
	list, err := s.repo.List(ctx, establishmentID)
	if err != nil {
		return nil, apperr.BadRequest("failed to list activities", err)
	}
	return list, nil
}

func (s *Service) FindOne(ctx context.Context, id int64) (*Activity, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, apperr.BadRequest("failed to load activity", err)
	}
	return a, nil
}

// Update changes the activity only. Sessions keep their stored end date until
// they are themselves updated.
func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (*Activity, error) {
	a, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.EstablishmentID != nil {
		a.EstablishmentID = *req.EstablishmentID
	}
	if req.Title != nil {
		a.Title = *req.Title
	}
	if req.Description != nil {
		a.Description = *req.Description
	}
	if req.Image != nil {
		a.Image = *req.Image
	}
	if req.Color != nil {
		a.Color = *req.Color
	}
	if req.Duration != nil {
		a.Duration = *req.Duration
	}
	if req.Price != nil {
		a.Price = *req.Price
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, apperr.Unprocessable("failed to update activity", err)
	}
	return a, nil
}

// Delete removes the activity; sessions referencing it are left in place.
func (s *Service) Delete(ctx context.Context, id int64) error {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperr.BadRequest("failed to delete activity", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
