package activity

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/database"
)

func setupService(t *testing.T) *Service {
	t.Helper()

	dsn := fmt.Sprintf("file:activity_test_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	return NewService(NewRepository(db))
}

func TestActivityLifecycle(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateRequest{EstablishmentID: 1, Title: "Agility", Duration: 45, Price: 30})
	require.NoError(t, err)
	assert.NotZero(t, a.ID)

	_, err = svc.Create(ctx, CreateRequest{EstablishmentID: 2, Title: "Obedience", Duration: 60})
	require.NoError(t, err)

	est := int64(1)
	list, err := svc.Find(ctx, &est)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Agility", list[0].Title)

	duration := 30
	updated, err := svc.Update(ctx, a.ID, UpdateRequest{Duration: &duration})
	require.NoError(t, err)
	assert.Equal(t, 30, updated.Duration)
	assert.Equal(t, "Agility", updated.Title)

	require.NoError(t, svc.Delete(ctx, a.ID))
	_, err = svc.FindOne(ctx, a.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, a.ID), ErrNotFound)
}
