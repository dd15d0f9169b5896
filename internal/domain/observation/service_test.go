package observation

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/database"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/domain/dog"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/apperr"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/principal"
)

type stubDogs map[int64]bool

func (s stubDogs) GetByID(_ context.Context, id int64) (*dog.Dog, error) {
	if !s[id] {
		return nil, gorm.ErrRecordNotFound
	}
	return &dog.Dog{ID: id}, nil
}

func setupService(t *testing.T) *Service {
	t.Helper()

	dsn := fmt.Sprintf("file:observation_test_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	return NewService(NewRepository(db), stubDogs{1: true, 2: true})
}

func TestObservationLifecycle(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	educator := principal.Principal{UserID: 3, Role: principal.RoleEducator}

	o, err := svc.Create(ctx, educator, CreateRequest{DogID: 1, Description: "Reacts to bikes"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), o.AuthorID)

	_, err = svc.Create(ctx, educator, CreateRequest{DogID: 2, Description: "Good recall"})
	require.NoError(t, err)

	dogID := int64(1)
	list, err := svc.Find(ctx, &dogID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Reacts to bikes", list[0].Description)

	text := "Calmer around bikes"
	updated, err := svc.Update(ctx, o.ID, UpdateRequest{Description: &text})
	require.NoError(t, err)
	assert.Equal(t, text, updated.Description)

	require.NoError(t, svc.Delete(ctx, o.ID))
	_, err = svc.FindOne(ctx, o.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, o.ID), ErrNotFound)
}

func TestCreate_UnknownDog(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Create(context.Background(), principal.Principal{UserID: 3, Role: principal.RoleEducator},
		CreateRequest{DogID: 9, Description: "?"})
	assert.ErrorIs(t, err, ErrUnknownDog)
	assert.ErrorIs(t, err, apperr.ErrUnprocessable)
}
