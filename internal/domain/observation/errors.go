package observation

import "github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/apperr"

var (
	ErrNotFound   = apperr.New(apperr.ErrNotFound, "observation not found")
	ErrUnknownDog = apperr.New(apperr.ErrUnprocessable, "dog does not exist")
)
