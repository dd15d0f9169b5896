package dog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/apperr"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/principal"
)

type Repository interface {
	Create(ctx context.Context, d *Dog) error
	GetByID(ctx context.Context, id int64) (*Dog, error)
	List(ctx context.Context, f Filter) ([]Dog, error)
	Update(ctx context.Context, d *Dog) error
	Delete(ctx context.Context, id int64) (int64, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create registers a dog. Clients always own the dogs they create; employees
// must name the owner.
func (s *Service) Create(ctx context.Context, p principal.Principal, req CreateRequest) (*Dog, error) {
	var ownerID int64
	switch {
	case p.Role == principal.RoleClient:
		ownerID = p.UserID
	case req.OwnerID != nil:
		ownerID = *req.OwnerID
	default:
		return nil, ErrOwnerMissing
	}

	d := &Dog{
		OwnerID:         ownerID,
		EstablishmentID: req.EstablishmentID,
		Name:            req.Name,
		Breed:           req.Breed,
		Gender:          req.Gender,
		Birthday:        req.Birthday,
		Weight:          req.Weight,
		Height:          req.Height,
		ChipID:          req.ChipID,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, apperr.Unprocessable("failed to create dog", err)
	}
	return d, nil
}

// Find lists dogs; clients only ever see their own.
func (s *Service) Find(ctx context.Context, p principal.Principal, f Filter) ([]Dog, error) {
	if p.Role == principal.RoleClient {
		f.OwnerID = &p.UserID
	}
	list, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, apperr.BadRequest("failed to list dogs", err)
	}
	return list, nil
}

func (s *Service) FindOne(ctx context.Context, p principal.Principal, id int64) (*Dog, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, apperr.BadRequest("failed to load dog", err)
	}
	if p.Role == principal.RoleClient && d.OwnerID != p.UserID {
		return nil, ErrNotOwner
	}
	return d, nil
}

func (s *Service) Update(ctx context.Context, p principal.Principal, id int64, req UpdateRequest) (*Dog, error) {
	d, err := s.FindOne(ctx, p, id)
	if err != nil {
		return nil, err
	}

	if req.EstablishmentID != nil {
		d.EstablishmentID = *req.EstablishmentID
	}
	if req.Name != nil {
		d.Name = *req.Name
	}
	if req.Breed != nil {
		d.Breed = *req.Breed
	}
	if req.Gender != nil {
		d.Gender = *req.Gender
	}
	if req.Birthday != nil {
		d.Birthday = req.Birthday
	}
	if req.Weight != nil {
		d.Weight = req.Weight
	}
	if req.Height != nil {
		d.Height = req.Height
	}
	if req.ChipID != nil {
		d.ChipID = *req.ChipID
	}

	if err := s.repo.Update(ctx, d); err != nil {
		return nil, apperr.Unprocessable("failed to update dog", err)
	}
	return d, nil
}

// Delete removes the dog. Its reservations and observations are kept.
func (s *Service) Delete(ctx context.Context, p principal.Principal, id int64) error {
	if _, err := s.FindOne(ctx, p, id); err != nil {
		return err
	}
	if _, err := s.repo.Delete(ctx, id); err != nil {
		return apperr.BadRequest("failed to delete dog", err)
	}
	return nil
}
