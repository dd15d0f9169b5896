package activity

import "github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/apperr"

var ErrNotFound = apperr.New(apperr.ErrNotFound, "activity not found")
