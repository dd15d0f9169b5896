package reservation

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/domain/dog"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/domain/session"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/events"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/metrics"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/apperr"
)

type Repository interface {
	Create(ctx context.Context, res *Reservation) error
	GetByID(ctx context.Context, id int64) (*Reservation, error)
	List(ctx context.Context, sessionID *int64) ([]Reservation, error)
	Update(ctx context.Context, res *Reservation) error
	SetApproved(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) (int64, error)
}

type SessionReader interface {
	GetByID(ctx context.Context, id int64) (*session.Session, error)
}

type DogReader interface {
	GetByID(ctx context.Context, id int64) (*dog.Dog, error)
}

type Service struct {
	repo      Repository
	sessions  SessionReader
	dogs      DogReader
	publisher events.Publisher
	metrics   *metrics.Metrics
}

func NewService(repo Repository, sessions SessionReader, dogs DogReader, publisher events.Publisher, m *metrics.Metrics) *Service {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &Service{
		repo:      repo,
		sessions:  sessions,
		dogs:      dogs,
		publisher: publisher,
		metrics:   m,
	}
}

// Create books a dog into a session. A reservation on a single-place session
// is approved immediately; otherwise it waits for Approve.
//
// The capacity is not checked against existing reservations and two
// concurrent creates may both succeed.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*View, error) {
	sess, err := s.sessions.GetByID(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Wrap(ErrUnknownSession, ErrUnknownSession.Message, err)
		}
		return nil, apperr.Unprocessable("failed to load session", err)
	}

	res := &Reservation{
		SessionID:  req.SessionID,
		DogID:      req.DogID,
		IsApproved: sess.MaximumCapacity == 1,
	}
	if err := s.repo.Create(ctx, res); err != nil {
		return nil, apperr.Unprocessable("failed to create reservation", err)
	}
	s.metrics.ReservationCreated(res.IsApproved)
	s.publish(ctx, events.RoutingReservationCreated, res, sess)

	d, err := s.dog(ctx, res.DogID)
	if err != nil {
		return nil, err
	}
	return &View{Reservation: res, Session: sess, Dog: d}, nil
}

func (s *Service) Find(ctx context.Context, sessionID *int64) ([]View, error) {
	list, err := s.repo.List(ctx, sessionID)
	if err != nil {
		return nil, apperr.BadRequest("failed to list reservations", err)
	}

	sessions := map[int64]*session.Session{}
	dogs := map[int64]*dog.Dog{}
	out := make([]View, 0, len(list))
	for i := range list {
		res := &list[i]

		sess, ok := sessions[res.SessionID]
		if !ok {
			if sess, err = s.session(ctx, res.SessionID); err != nil {
				return nil, err
			}
			sessions[res.SessionID] = sess
		}
		d, ok := dogs[res.DogID]
		if !ok {
			if d, err = s.dog(ctx, res.DogID); err != nil {
				return nil, err
			}
			dogs[res.DogID] = d
		}

		out = append(out, View{Reservation: res, Session: sess, Dog: d})
	}
	return out, nil
}

func (s *Service) FindOne(ctx context.Context, id int64) (*View, error) {
	res, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, res)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (*View, error) {
	res, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.SessionID != nil {
		res.SessionID = *req.SessionID
	}
	if req.DogID != nil {
		res.DogID = *req.DogID
	}
	if req.IsApproved != nil {
		res.IsApproved = *req.IsApproved
	}

	if err := s.repo.Update(ctx, res); err != nil {
		return nil, apperr.Unprocessable("failed to update reservation", err)
	}
	return s.view(ctx, res)
}

// Approve marks the reservation approved. Approving twice is a no-op that
// publishes no second event.
func (s *Service) Approve(ctx context.Context, id int64) (*View, error) {
	res, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	v, err := s.view(ctx, res)
	if err != nil {
		return nil, err
	}
	if res.IsApproved {
		return v, nil
	}

	if err := s.repo.SetApproved(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, apperr.Unprocessable("failed to approve reservation", err)
	}
	res.IsApproved = true
	s.publish(ctx, events.RoutingReservationApproved, res, v.Session)

	return v, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	if _, err := s.repo.Delete(ctx, id); err != nil {
		return apperr.BadRequest("failed to delete reservation", err)
	}
	return nil
}

func (s *Service) get(ctx context.Context, id int64) (*Reservation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, apperr.BadRequest("failed to load reservation", err)
	}
	return res, nil
}

func (s *Service) view(ctx context.Context, res *Reservation) (*View, error) {
	sess, err := s.session(ctx, res.SessionID)
	if err != nil {
		return nil, err
	}
	d, err := s.dog(ctx, res.DogID)
	if err != nil {
		return nil, err
	}
	return &View{Reservation: res, Session: sess, Dog: d}, nil
}

func (s *Service) session(ctx context.Context, id int64) (*session.Session, error) {
	sess, err := s.sessions.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.BadRequest("failed to load session", err)
	}
	return sess, nil
}

func (s *Service) dog(ctx context.Context, id int64) (*dog.Dog, error) {
	d, err := s.dogs.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.BadRequest("failed to load dog", err)
	}
	return d, nil
}

// publish is best effort: a broker failure never fails the request.
func (s *Service) publish(ctx context.Context, routingKey string, res *Reservation, sess *session.Session) {
	evt := events.ReservationEvent{
		ReservationID: res.ID,
		SessionID:     res.SessionID,
		DogID:         res.DogID,
		IsApproved:    res.IsApproved,
		OccurredAt:    time.Now().UTC(),
	}
	if sess != nil {
		evt.EstablishmentID = sess.EstablishmentID
		evt.BeginDate = sess.BeginDate
	}

	if err := s.publisher.Publish(ctx, routingKey, evt); err != nil {
		log.Printf("reservation: publish event=%s reservation_id=%d err=%v", routingKey, res.ID, err)
	}
}
