package reservation

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/database"
)

func setupRepository(t *testing.T) *GormRepository {
	t.Helper()

	dsn := fmt.Sprintf("file:reservation_test_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	return NewRepository(db)
}

func TestRepository_CountsAndReservedSessions(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	for _, r := range []Reservation{
		{SessionID: 1, DogID: 1},
		{SessionID: 1, DogID: 2, IsApproved: true},
		{SessionID: 3, DogID: 1},
	} {
		require.NoError(t, repo.Create(ctx, &r))
	}

	n, err := repo.CountBySession(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = repo.CountBySession(ctx, 2)
	require.NoError(t, err)
	assert.Zero(t, n)

	ids, err := repo.ReservedSessionIDs(ctx, []int64{1, 2, 3})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 3}, ids)

	ids, err = repo.ReservedSessionIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestRepository_ListAndApprove(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	a := &Reservation{SessionID: 1, DogID: 1}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, &Reservation{SessionID: 2, DogID: 1}))

	sessionID := int64(1)
	list, err := repo.List(ctx, &sessionID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.False(t, list[0].IsApproved)

	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, repo.SetApproved(ctx, a.ID))
	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, got.IsApproved)

	assert.ErrorIs(t, repo.SetApproved(ctx, 999), gorm.ErrRecordNotFound)
}
