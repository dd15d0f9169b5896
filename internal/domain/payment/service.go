package payment

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/big"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/domain/activity"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/domain/reservation"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/domain/session"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/metrics"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/apperr"
)

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	GetByID(ctx context.Context, id int64) (*Payment, error)
	GetByInvID(ctx context.Context, invID int64) (*Payment, error)
	List(ctx context.Context, reservationID *int64) ([]Payment, error)
	MarkFailed(ctx context.Context, invID int64, rawBody, reason string) error
	MarkPaid(ctx context.Context, invID int64, rawBody string, paidAt time.Time) (bool, error)
}

type ReservationReader interface {
	GetByID(ctx context.Context, id int64) (*reservation.Reservation, error)
}

type SessionReader interface {
	GetByID(ctx context.Context, id int64) (*session.Session, error)
}

type ActivityReader interface {
	GetByID(ctx context.Context, id int64) (*activity.Activity, error)
}

type Service struct {
	repo         Repository
	reservations ReservationReader
	sessions     SessionReader
	activities   ActivityReader
	gateway      Gateway
	metrics      *metrics.Metrics
	now          func() time.Time
}

func NewService(
	repo Repository,
	reservations ReservationReader,
	sessions SessionReader,
	activities ActivityReader,
	gateway Gateway,
	m *metrics.Metrics,
) *Service {
	return &Service{
		repo:         repo,
		reservations: reservations,
		sessions:     sessions,
		activities:   activities,
		gateway:      gateway,
		metrics:      m,
		now:          time.Now,
	}
}

// Create opens a checkout for a reservation. The amount is the price of the
// activity of the reserved session.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Payment, error) {
	amount, err := s.amountFor(ctx, req.ReservationID)
	if err != nil {
		return nil, err
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		description = fmt.Sprintf("Reservation #%d", req.ReservationID)
	}

	invID := s.now().UnixNano()
	checkoutURL, err := s.gateway.CheckoutURL(amount, invID, description)
	if err != nil {
		return nil, err
	}

	p := &Payment{
		ReservationID: req.ReservationID,
		InvID:         invID,
		Amount:        amount,
		Description:   description,
		Status:        StatusCreated,
		CheckoutURL:   checkoutURL,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, apperr.Unprocessable("failed to create payment", err)
	}
	return p, nil
}

func (s *Service) amountFor(ctx context.Context, reservationID int64) (string, error) {
	res, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperr.Wrap(ErrUnknownReservation, ErrUnknownReservation.Message, err)
		}
		return "", apperr.Unprocessable("failed to load reservation", err)
	}
	sess, err := s.sessions.GetByID(ctx, res.SessionID)
	if err != nil {
		return "", apperr.Wrap(ErrNoPrice, "failed to load session", err)
	}
	act, err := s.activities.GetByID(ctx, sess.ActivityID)
	if err != nil {
		return "", apperr.Wrap(ErrNoPrice, "failed to load activity", err)
	}
	if act.Price <= 0 {
		return "", ErrNoPrice
	}
	return strconv.FormatFloat(act.Price, 'f', 2, 64), nil
}

// HandleResult processes the gateway's result callback and returns the
// acknowledgement body. Repeated callbacks for a paid invoice are acknowledged
// again without changing anything.
func (s *Service) HandleResult(ctx context.Context, cb ResultCallback) (string, error) {
	valid := s.gateway.VerifyResult(cb.OutSum, cb.InvID, cb.Signature)
	log.Printf("payment: result callback inv_id=%d signature_valid=%t", cb.InvID, valid)
	// Callbacks failing the signature check never touch the row.
	if !valid {
		log.Printf("payment: rejected callback inv_id=%d out_sum=%s reason=invalid_signature", cb.InvID, cb.OutSum)
		return "", ErrInvalidSignature
	}

	p, err := s.repo.GetByInvID(ctx, cb.InvID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", apperr.BadRequest("failed to load payment", err)
	}
	if !amountEqual(cb.OutSum, p.Amount) {
		reason := fmt.Sprintf("amount mismatch callback=%s expected=%s", cb.OutSum, p.Amount)
		if err := s.repo.MarkFailed(ctx, cb.InvID, cb.RawBody, reason); err != nil {
			log.Printf("payment: mark failed inv_id=%d err=%v", cb.InvID, err)
		}
		return "", ErrAmountMismatch
	}

	changed, err := s.repo.MarkPaid(ctx, cb.InvID, cb.RawBody, s.now().UTC())
	if err != nil {
		return "", err
	}
	if changed {
		s.metrics.PaymentPaid()
	} else {
		log.Printf("payment: callback for already paid inv_id=%d", cb.InvID)
	}
	return "OK" + strconv.FormatInt(cb.InvID, 10), nil
}

func (s *Service) FindOne(ctx context.Context, id int64) (*Payment, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, apperr.BadRequest("failed to load payment", err)
	}
	return p, nil
}

func (s *Service) Find(ctx context.Context, reservationID *int64) ([]Payment, error) {
	list, err := s.repo.List(ctx, reservationID)
	if err != nil {
		return nil, apperr.BadRequest("failed to list payments", err)
	}
	return list, nil
}

// amountEqual compares decimal strings by value, so "300" matches "300.00".
func amountEqual(a, b string) bool {
	ar, ok := new(big.Rat).SetString(strings.TrimSpace(a))
	if !ok {
		return false
	}
	br, ok := new(big.Rat).SetString(strings.TrimSpace(b))
	if !ok {
		return false
	}
	return ar.Cmp(br) == 0
}
