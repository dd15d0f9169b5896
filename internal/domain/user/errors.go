package user

import "github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/apperr"

var (
	ErrNotFound           = apperr.New(apperr.ErrNotFound, "user not found")
	ErrEmailTaken         = apperr.New(apperr.ErrConflict, "email already registered")
	ErrInvalidCredentials = apperr.New(apperr.ErrUnauthorized, "invalid email or password")
	ErrForbidden          = apperr.New(apperr.ErrForbidden, "not allowed to manage this user")
)
