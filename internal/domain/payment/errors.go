package payment

import (
	"errors"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/apperr"
)

var (
	ErrNotFound           = apperr.New(apperr.ErrNotFound, "payment not found")
	ErrUnknownReservation = apperr.New(apperr.ErrUnprocessable, "reservation does not exist")
	ErrNoPrice            = apperr.New(apperr.ErrUnprocessable, "reservation has no billable activity")
	ErrInvalidSignature   = apperr.New(apperr.ErrForbidden, "invalid signature")
	ErrAmountMismatch     = apperr.New(apperr.ErrForbidden, "amount mismatch")

	ErrGatewayNotConfigured = errors.New("payment gateway credentials are not configured")
)
