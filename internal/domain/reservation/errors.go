package reservation

import "github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/apperr"

var (
	ErrNotFound       = apperr.New(apperr.ErrNotFound, "reservation not found")
	ErrUnknownSession = apperr.New(apperr.ErrUnprocessable, "session does not exist")
)
