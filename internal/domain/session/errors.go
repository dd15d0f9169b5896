package session

import "github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/apperr"

var (
	ErrNotFound        = apperr.New(apperr.ErrNotFound, "session not found")
	ErrEducatorMissing = apperr.New(apperr.ErrValidation, "educator_id is required")
)
