package establishment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/domain/user"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/apperr"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/principal"
)

type Repository interface {
	Create(ctx context.Context, e *Establishment) error
	GetByID(ctx context.Context, id int64) (*Establishment, error)
	List(ctx context.Context, ownerID *int64) ([]Establishment, error)
	Update(ctx context.Context, e *Establishment) error
	Delete(ctx context.Context, id int64) (int64, error)
}

// EmployeeDirectory is the slice of the user store the establishment needs.
type EmployeeDirectory interface {
	GetByID(ctx context.Context, id int64) (*user.User, error)
	List(ctx context.Context, f user.Filter) ([]user.User, error)
	AssignEstablishment(ctx context.Context, userID, establishmentID int64) error
}

type Service struct {
	repo      Repository
	employees EmployeeDirectory
}

func NewService(repo Repository, employees EmployeeDirectory) *Service {
	return &Service{repo: repo, employees: employees}
}

func (s *Service) Create(ctx context.Context, p principal.Principal, req CreateRequest) (*Establishment, error) {
	ownerID := p.UserID
	if req.OwnerID != nil && p.Role == principal.RoleAdministrator {
		ownerID = *req.OwnerID
	}

	e := &Establishment{
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, apperr.Unprocessable("failed to create establishment", err)
	}
	return e, nil
}

func (s *Service) Find(ctx context.Context, ownerID *int64) ([]Establishment, error) {
	list, err := s.repo.List(ctx, ownerID)
	if err != nil {
		return nil, apperr.BadRequest("failed to list establishments", err)
	}
	return list, nil
}

func (s *Service) FindOne(ctx context.Context, id int64) (*Establishment, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, apperr.BadRequest("failed to load establishment", err)
	}
	return e, nil
}

// owned loads the establishment and checks a manager is its owner.
func (s *Service) owned(ctx context.Context, p principal.Principal, id int64) (*Establishment, error) {
	e, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Role != principal.RoleAdministrator && e.OwnerID != p.UserID {
		return nil, ErrNotOwner
	}
	return e, nil
}

func (s *Service) Update(ctx context.Context, p principal.Principal, id int64, req UpdateRequest) (*Establishment, error) {
	e, err := s.owned(ctx, p, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.Address != nil {
		e.Address = *req.Address
	}
	if req.Phone != nil {
		e.Phone = *req.Phone
	}
	if req.Email != nil {
		e.Email = *req.Email
	}

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, apperr.Unprocessable("failed to update establishment", err)
	}
	return e, nil
}

func (s *Service) Delete(ctx context.Context, p principal.Principal, id int64) error {
	if _, err := s.owned(ctx, p, id); err != nil {
		return err
	}
	if _, err := s.repo.Delete(ctx, id); err != nil {
		return apperr.BadRequest("failed to delete establishment", err)
	}
	return nil
}

// AddEmployee attaches an existing employee account to the establishment.
func (s *Service) AddEmployee(ctx context.Context, p principal.Principal, id, userID int64) (*user.User, error) {
	if _, err := s.owned(ctx, p, id); err != nil {
		return nil, err
	}

	u, err := s.employees.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownEmployee
		}
		return nil, apperr.BadRequest("failed to load employee", err)
	}
	if !u.IsEmployee() {
		return nil, ErrNotAnEmployee
	}

	if err := s.employees.AssignEstablishment(ctx, userID, id); err != nil {
		return nil, apperr.Unprocessable("failed to assign employee", err)
	}
	u.EstablishmentID = &id
	return u, nil
}

func (s *Service) Employees(ctx context.Context, id int64) ([]user.User, error) {
	if _, err := s.FindOne(ctx, id); err != nil {
		return nil, err
	}

	all, err := s.employees.List(ctx, user.Filter{EstablishmentID: &id})
	if err != nil {
		return nil, apperr.BadRequest("failed to list employees", err)
	}

	out := make([]user.User, 0, len(all))
	for _, u := range all {
		if u.IsEmployee() {
			out = append(out, u)
		}
	}
	return out, nil
}
