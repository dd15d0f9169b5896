package holiday

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/apperr"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/principal"
)

type Repository interface {
	Create(ctx context.Context, h *Holiday) error
	GetByID(ctx context.Context, id int64) (*Holiday, error)
	List(ctx context.Context, f Filter) ([]Holiday, error)
	Update(ctx context.Context, h *Holiday) error
	Delete(ctx context.Context, id int64) (int64, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create requests a leave. Only staff may file one for another employee.
func (s *Service) Create(ctx context.Context, p principal.Principal, req CreateRequest) (*Holiday, error) {
	employeeID := p.UserID
	if req.EmployeeID != nil && *req.EmployeeID != p.UserID {
		if !p.IsStaff() {
			return nil, ErrNotOwner
		}
		employeeID = *req.EmployeeID
	}
	if err := checkPeriod(req.BeginDate, req.EndDate); err != nil {
		return nil, err
	}

	h := &Holiday{
		EmployeeID:      employeeID,
		EstablishmentID: req.EstablishmentID,
		BeginDate:       req.BeginDate.UTC(),
		EndDate:         req.EndDate.UTC(),
	}
	if err := s.repo.Create(ctx, h); err != nil {
		return nil, apperr.Unprocessable("failed to create holiday", err)
	}
	return h, nil
}

func (s *Service) Find(ctx context.Context, f Filter) ([]Holiday, error) {
	list, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, apperr.BadRequest("failed to list holidays", err)
	}
	return list, nil
}

func (s *Service) FindOne(ctx context.Context, id int64) (*Holiday, error) {
	h, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, apperr.BadRequest("failed to load holiday", err)
	}
	return h, nil
}

// Update changes the period. An approved holiday goes back to pending when
// its dates move.
func (s *Service) Update(ctx context.Context, p principal.Principal, id int64, req UpdateRequest) (*Holiday, error) {
	h, err := s.owned(ctx, p, id)
	if err != nil {
		return nil, err
	}

	if req.EstablishmentID != nil {
		h.EstablishmentID = *req.EstablishmentID
	}
	moved := false
	if req.BeginDate != nil && !req.BeginDate.Equal(h.BeginDate) {
		h.BeginDate = req.BeginDate.UTC()
		moved = true
	}
	if req.EndDate != nil && !req.EndDate.Equal(h.EndDate) {
		h.EndDate = req.EndDate.UTC()
		moved = true
	}
	if err := checkPeriod(h.BeginDate, h.EndDate); err != nil {
		return nil, err
	}
	if moved {
		h.IsApproved = false
	}

	if err := s.repo.Update(ctx, h); err != nil {
		return nil, apperr.Unprocessable("failed to update holiday", err)
	}
	return h, nil
}

func (s *Service) Approve(ctx context.Context, id int64) (*Holiday, error) {
	h, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if h.IsApproved {
		return h, nil
	}

	h.IsApproved = true
	if err := s.repo.Update(ctx, h); err != nil {
		return nil, apperr.Unprocessable("failed to approve holiday", err)
	}
	return h, nil
}

func (s *Service) Delete(ctx context.Context, p principal.Principal, id int64) error {
	if _, err := s.owned(ctx, p, id); err != nil {
		return err
	}
	if _, err := s.repo.Delete(ctx, id); err != nil {
		return apperr.BadRequest("failed to delete holiday", err)
	}
	return nil
}

// owned loads the holiday and checks that an educator only touches their own.
func (s *Service) owned(ctx context.Context, p principal.Principal, id int64) (*Holiday, error) {
	h, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.IsStaff() && h.EmployeeID != p.UserID {
		return nil, ErrNotOwner
	}
	return h, nil
}

func checkPeriod(begin, end time.Time) error {
	if begin.IsZero() || end.IsZero() || !end.After(begin) {
		return ErrInvalidPeriod
	}
	return nil
}
