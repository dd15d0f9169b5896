package session

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/domain/activity"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/domain/establishment"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/domain/user"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/metrics"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/apperr"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/principal"
)

type Repository interface {
	Create(ctx context.Context, s *Session) error
	GetByID(ctx context.Context, id int64) (*Session, error)
	List(ctx context.Context, f ListFilter) ([]Session, error)
	Update(ctx context.Context, s *Session) error
	UpdateReport(ctx context.Context, id int64, report string) error
	Delete(ctx context.Context, id int64) (int64, error)
	DeleteByEducator(ctx context.Context, educatorID int64) (int64, error)
	DeleteByActivity(ctx context.Context, activityID int64) (int64, error)
}

type ActivityReader interface {
	GetByID(ctx context.Context, id int64) (*activity.Activity, error)
}

type EducatorReader interface {
	GetByID(ctx context.Context, id int64) (*user.User, error)
}

type EstablishmentReader interface {
	GetByID(ctx context.Context, id int64) (*establishment.Establishment, error)
}

// ReservationCounter is implemented by the reservation store.
type ReservationCounter interface {
	CountBySession(ctx context.Context, sessionID int64) (int64, error)
	ReservedSessionIDs(ctx context.Context, sessionIDs []int64) ([]int64, error)
}

type Service struct {
	repo           Repository
	activities     ActivityReader
	educators      EducatorReader
	establishments EstablishmentReader
	reservations   ReservationCounter
	metrics        *metrics.Metrics
}

func NewService(
	repo Repository,
	activities ActivityReader,
	educators EducatorReader,
	establishments EstablishmentReader,
	reservations ReservationCounter,
	m *metrics.Metrics,
) *Service {
	return &Service{
		repo:           repo,
		activities:     activities,
		educators:      educators,
		establishments: establishments,
		reservations:   reservations,
		metrics:        m,
	}
}

// Create schedules a session. The end date comes from the activity duration;
// an educator creating a session without naming one leads it.
func (s *Service) Create(ctx context.Context, p principal.Principal, req CreateRequest) (*View, error) {
	educatorID := req.EducatorID
	if educatorID == nil {
		if p.Role != principal.RoleEducator {
			return nil, ErrEducatorMissing
		}
		educatorID = &p.UserID
	}
	if req.BeginDate.IsZero() {
		return nil, apperr.Validation("begin_date is required")
	}

	act, err := s.activities.GetByID(ctx, req.ActivityID)
	if err != nil {
		return nil, apperr.Unprocessable("failed to load activity", err)
	}

	sess := &Session{
		EducatorID:      *educatorID,
		ActivityID:      req.ActivityID,
		EstablishmentID: req.EstablishmentID,
		Status:          StatusPending,
		MaximumCapacity: DefaultMaximumCapacity,
		BeginDate:       req.BeginDate.UTC(),
		EndDate:         EndDate(req.BeginDate, act),
	}
	if req.Status != nil {
		sess.Status = *req.Status
	}
	if req.MaximumCapacity != nil {
		sess.MaximumCapacity = *req.MaximumCapacity
	}

	if err := s.repo.Create(ctx, sess); err != nil {
		return nil, apperr.Unprocessable("failed to create session", err)
	}
	s.metrics.SessionCreated()

	return s.loadWithRelations(ctx, sess)
}

// WriteReport sets the educator's report and touches nothing else.
func (s *Service) WriteReport(ctx context.Context, id int64, report string) (*View, error) {
	sess, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateReport(ctx, id, report); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, apperr.Unprocessable("failed to write report", err)
	}
	sess.Report = report

	return s.loadWithRelations(ctx, sess)
}

// Find routes on the first filter set among educator, activity and
// establishment. A date narrows to sessions overlapping the following 24h.
// With reserved and an establishment, only sessions holding at least one
// reservation are returned and the date is ignored.
func (s *Service) Find(ctx context.Context, q FindQuery) ([]View, error) {
	var f ListFilter
	switch {
	case q.EducatorID != nil:
		f.EducatorID = q.EducatorID
	case q.ActivityID != nil:
		f.ActivityID = q.ActivityID
	case q.EstablishmentID != nil:
		f.EstablishmentID = q.EstablishmentID
		if q.Reserved {
			return s.findReserved(ctx, f)
		}
	}
	if q.Date != nil && !q.Reserved {
		w := DayWindow(*q.Date)
		f.Window = &w
	}

	sessions, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, apperr.BadRequest("failed to list sessions", err)
	}
	return s.loadAllWithRelations(ctx, sessions)
}

func (s *Service) findReserved(ctx context.Context, f ListFilter) ([]View, error) {
	sessions, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, apperr.BadRequest("failed to list sessions", err)
	}
	if len(sessions) == 0 {
		return []View{}, nil
	}

	ids := make([]int64, 0, len(sessions))
	for _, sess := range sessions {
		ids = append(ids, sess.ID)
	}
	reservedIDs, err := s.reservations.ReservedSessionIDs(ctx, ids)
	if err != nil {
		return nil, apperr.BadRequest("failed to count reservations", err)
	}

	reserved := make(map[int64]struct{}, len(reservedIDs))
	for _, id := range reservedIDs {
		reserved[id] = struct{}{}
	}
	kept := sessions[:0]
	for _, sess := range sessions {
		if _, ok := reserved[sess.ID]; ok {
			kept = append(kept, sess)
		}
	}
	return s.loadAllWithRelations(ctx, kept)
}

func (s *Service) FindOne(ctx context.Context, id int64) (*View, error) {
	sess, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.loadWithRelations(ctx, sess)
}

// FindPlacesLeft counts live reservations on every call.
func (s *Service) FindPlacesLeft(ctx context.Context, id int64) (int, error) {
	sess, err := s.get(ctx, id)
	if err != nil {
		return 0, err
	}

	count, err := s.reservations.CountBySession(ctx, id)
	if err != nil {
		return 0, apperr.BadRequest("failed to count reservations", err)
	}
	return PlacesLeft(sess.MaximumCapacity, count), nil
}

// Update applies a partial change. The end date is recomputed on every call
// from the (possibly new) begin date and the current duration of the
// (possibly new) activity.
func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (*View, error) {
	sess, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	activityID := sess.ActivityID
	if req.ActivityID != nil {
		activityID = *req.ActivityID
	}
	act, err := s.activities.GetByID(ctx, activityID)
	if err != nil {
		return nil, apperr.Unprocessable("failed to load activity", err)
	}

	if req.EducatorID != nil {
		sess.EducatorID = *req.EducatorID
	}
	if req.EstablishmentID != nil {
		sess.EstablishmentID = *req.EstablishmentID
	}
	if req.MaximumCapacity != nil {
		sess.MaximumCapacity = *req.MaximumCapacity
	}
	if req.Status != nil {
		sess.Status = *req.Status
	}
	if req.BeginDate != nil {
		sess.BeginDate = req.BeginDate.UTC()
	}
	sess.ActivityID = activityID
	sess.EndDate = EndDate(sess.BeginDate, act)

	if err := s.repo.Update(ctx, sess); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, apperr.Unprocessable("failed to update session", err)
	}

	return s.loadWithRelations(ctx, sess)
}

// Delete removes the session. Its reservations are kept.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	if _, err := s.repo.Delete(ctx, id); err != nil {
		return apperr.BadRequest("failed to delete session", err)
	}
	return nil
}

func (s *Service) DeleteByEducator(ctx context.Context, educatorID int64) (int64, error) {
	n, err := s.repo.DeleteByEducator(ctx, educatorID)
	if err != nil {
		return 0, apperr.BadRequest("failed to delete sessions", err)
	}
	return n, nil
}

func (s *Service) DeleteByActivity(ctx context.Context, activityID int64) (int64, error) {
	n, err := s.repo.DeleteByActivity(ctx, activityID)
	if err != nil {
		return 0, apperr.BadRequest("failed to delete sessions", err)
	}
	return n, nil
}

func (s *Service) get(ctx context.Context, id int64) (*Session, error) {
	sess, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, apperr.BadRequest("failed to load session", err)
	}
	return sess, nil
}
