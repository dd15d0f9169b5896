package dog

import "github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/apperr"

var (
	ErrNotFound     = apperr.New(apperr.ErrNotFound, "dog not found")
	ErrOwnerMissing = apperr.New(apperr.ErrValidation, "owner_id is required")
	ErrNotOwner     = apperr.New(apperr.ErrForbidden, "dog belongs to another client")
)
