package holiday

import "github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/apperr"

var (
	ErrNotFound      = apperr.New(apperr.ErrNotFound, "holiday not found")
	ErrInvalidPeriod = apperr.New(apperr.ErrValidation, "end_date must be after begin_date")
	ErrNotOwner      = apperr.New(apperr.ErrForbidden, "holiday belongs to another employee")
)
