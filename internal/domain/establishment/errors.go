package establishment

import "github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/apperr"

var (
	ErrNotFound        = apperr.New(apperr.ErrNotFound, "establishment not found")
	ErrNotOwner        = apperr.New(apperr.ErrForbidden, "establishment belongs to another manager")
	ErrUnknownEmployee = apperr.New(apperr.ErrUnprocessable, "employee does not exist")
	ErrNotAnEmployee   = apperr.New(apperr.ErrUnprocessable, "clients cannot be assigned to an establishment")
)
