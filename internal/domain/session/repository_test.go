package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/database"
)

func setupRepository(t *testing.T) *GormRepository {
	t.Helper()

	dsn := fmt.Sprintf("file:session_test_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	return NewRepository(db)
}

func seedSession(t *testing.T, repo *GormRepository, educatorID, activityID int64, begin time.Time, length time.Duration) *Session {
	t.Helper()

	s := &Session{
		EducatorID:      educatorID,
		ActivityID:      activityID,
		EstablishmentID: 1,
		Status:          StatusPending,
		MaximumCapacity: 2,
		BeginDate:       begin,
		EndDate:         begin.Add(length),
	}
	require.NoError(t, repo.Create(context.Background(), s))
	require.NotZero(t, s.ID)
	return s
}

func TestRepository_ListWindow(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	inside := seedSession(t, repo, 3, 5, day.Add(9*time.Hour), time.Hour)
	straddling := seedSession(t, repo, 3, 5, day.Add(-30*time.Minute), time.Hour)
	seedSession(t, repo, 3, 5, day.Add(-time.Hour), time.Hour)
	seedSession(t, repo, 4, 5, day.Add(24*time.Hour), time.Hour)

	w := DayWindow(day)
	list, err := repo.List(ctx, ListFilter{Window: &w})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, straddling.ID, list[0].ID)
	assert.Equal(t, inside.ID, list[1].ID)

	educatorID := int64(4)
	list, err = repo.List(ctx, ListFilter{EducatorID: &educatorID})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, time.UTC, list[0].BeginDate.Location())
}

func TestRepository_UpdateKeepsReport(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()
	begin := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	s := seedSession(t, repo, 3, 5, begin, 30*time.Minute)

	require.NoError(t, repo.UpdateReport(ctx, s.ID, "pulls on the leash"))

	s.Status = StatusPostponed
	s.BeginDate = begin.Add(24 * time.Hour)
	s.EndDate = s.BeginDate.Add(30 * time.Minute)
	require.NoError(t, repo.Update(ctx, s))

	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPostponed, got.Status)
	assert.Equal(t, "pulls on the leash", got.Report)
	assert.True(t, got.BeginDate.Equal(begin.Add(24*time.Hour)))

	s.ID = 999
	assert.ErrorIs(t, repo.Update(ctx, s), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.UpdateReport(ctx, 999, "x"), gorm.ErrRecordNotFound)
}

func TestRepository_BulkDelete(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()
	begin := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	seedSession(t, repo, 3, 5, begin, time.Hour)
	seedSession(t, repo, 3, 6, begin, time.Hour)
	kept := seedSession(t, repo, 4, 6, begin, time.Hour)

	n, err := repo.DeleteByEducator(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = repo.DeleteByActivity(ctx, 5)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = repo.Delete(ctx, kept.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = repo.GetByID(ctx, kept.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
