package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/domain/activity"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/domain/establishment"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/domain/user"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/apperr"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/principal"
)

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, s *Session) error {
	args := m.Called(ctx, s)
	if args.Error(0) == nil {
		s.ID = 1
	}
	return args.Error(0)
}

func (m *MockSessionRepository) GetByID(ctx context.Context, id int64) (*Session, error) {
	args := m.Called(ctx, id)
	if s := args.Get(0); s != nil {
		cp := *s.(*Session)
		return &cp, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSessionRepository) List(ctx context.Context, f ListFilter) ([]Session, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]Session), args.Error(1)
}

func (m *MockSessionRepository) Update(ctx context.Context, s *Session) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSessionRepository) UpdateReport(ctx context.Context, id int64, report string) error {
	return m.Called(ctx, id, report).Error(0)
}

func (m *MockSessionRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSessionRepository) DeleteByEducator(ctx context.Context, educatorID int64) (int64, error) {
	args := m.Called(ctx, educatorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSessionRepository) DeleteByActivity(ctx context.Context, activityID int64) (int64, error) {
	args := m.Called(ctx, activityID)
	return args.Get(0).(int64), args.Error(1)
}

type MockActivityReader struct {
	mock.Mock
}

func (m *MockActivityReader) GetByID(ctx context.Context, id int64) (*activity.Activity, error) {
	args := m.Called(ctx, id)
	if a := args.Get(0); a != nil {
		return a.(*activity.Activity), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockReservationCounter struct {
	mock.Mock
}

func (m *MockReservationCounter) CountBySession(ctx context.Context, sessionID int64) (int64, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationCounter) ReservedSessionIDs(ctx context.Context, sessionIDs []int64) ([]int64, error) {
	args := m.Called(ctx, sessionIDs)
	return args.Get(0).([]int64), args.Error(1)
}

// stubUsers and stubEstablishments resolve every id.
type stubUsers struct{}

func (stubUsers) GetByID(_ context.Context, id int64) (*user.User, error) {
	return &user.User{ID: id, Role: principal.RoleEducator}, nil
}

type stubEstablishments struct{}

func (stubEstablishments) GetByID(_ context.Context, id int64) (*establishment.Establishment, error) {
	return &establishment.Establishment{ID: id}, nil
}

type fixture struct {
	repo         *MockSessionRepository
	activities   *MockActivityReader
	reservations *MockReservationCounter
	svc          *Service
}

func newFixture() *fixture {
	f := &fixture{
		repo:         new(MockSessionRepository),
		activities:   new(MockActivityReader),
		reservations: new(MockReservationCounter),
	}
	f.svc = NewService(f.repo, f.activities, stubUsers{}, stubEstablishments{}, f.reservations, nil)
	return f
}

var (
	manager  = principal.Principal{UserID: 2, Role: principal.RoleManager}
	educator = principal.Principal{UserID: 3, Role: principal.RoleEducator}
	nine     = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
)

func ptr[T any](v T) *T { return &v }

func TestCreate_EndDateFromActivityDuration(t *testing.T) {
	f := newFixture()
	f.activities.On("GetByID", mock.Anything, int64(5)).Return(&activity.Activity{ID: 5, Duration: 30}, nil)
	f.repo.On("Create", mock.Anything, mock.AnythingOfType("*session.Session")).Return(nil)

	v, err := f.svc.Create(context.Background(), manager, CreateRequest{
		EducatorID:      ptr(int64(3)),
		ActivityID:      5,
		EstablishmentID: 1,
		BeginDate:       nine,
	})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC), v.EndDate)
	assert.Equal(t, 30*time.Minute, v.EndDate.Sub(v.BeginDate))
	assert.Equal(t, StatusPending, v.Status)
	assert.Equal(t, 1, v.MaximumCapacity)
	assert.Equal(t, int64(5), v.Activity.ID)
	assert.Equal(t, int64(3), v.Educator.ID)
	assert.Equal(t, int64(1), v.Establishment.ID)
}

func TestCreate_EducatorDefaultsToCaller(t *testing.T) {
	f := newFixture()
	f.activities.On("GetByID", mock.Anything, int64(5)).Return(&activity.Activity{ID: 5, Duration: 60}, nil)
	f.repo.On("Create", mock.Anything, mock.MatchedBy(func(s *Session) bool { return s.EducatorID == 3 })).Return(nil)

	_, err := f.svc.Create(context.Background(), educator, CreateRequest{ActivityID: 5, EstablishmentID: 1, BeginDate: nine})
	require.NoError(t, err)

	_, err = f.svc.Create(context.Background(), manager, CreateRequest{ActivityID: 5, EstablishmentID: 1, BeginDate: nine})
	assert.ErrorIs(t, err, ErrEducatorMissing)
}

func TestCreate_UnknownActivityIsUnprocessable(t *testing.T) {
	f := newFixture()
	f.activities.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := f.svc.Create(context.Background(), manager, CreateRequest{
		EducatorID: ptr(int64(3)), ActivityID: 404, EstablishmentID: 1, BeginDate: nine,
	})

	assert.ErrorIs(t, err, apperr.ErrUnprocessable)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_PersistenceFailureIsUnprocessable(t *testing.T) {
	f := newFixture()
	cause := errors.New("insert failed")
	f.activities.On("GetByID", mock.Anything, int64(5)).Return(&activity.Activity{ID: 5, Duration: 30}, nil)
	f.repo.On("Create", mock.Anything, mock.Anything).Return(cause)

	_, err := f.svc.Create(context.Background(), manager, CreateRequest{
		EducatorID: ptr(int64(3)), ActivityID: 5, EstablishmentID: 1, BeginDate: nine,
	})

	assert.ErrorIs(t, err, apperr.ErrUnprocessable)
	assert.ErrorIs(t, err, cause)
}

func TestFindPlacesLeft(t *testing.T) {
	f := newFixture()
	f.repo.On("GetByID", mock.Anything, int64(1)).Return(&Session{ID: 1, MaximumCapacity: 3}, nil)
	f.reservations.On("CountBySession", mock.Anything, int64(1)).Return(int64(2), nil).Once()
	f.reservations.On("CountBySession", mock.Anything, int64(1)).Return(int64(3), nil).Once()

	left, err := f.svc.FindPlacesLeft(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, left)

	left, err = f.svc.FindPlacesLeft(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 0, left)
}

func TestMissingSessionIsNotFound(t *testing.T) {
	f := newFixture()
	f.repo.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)
	ctx := context.Background()

	_, err := f.svc.FindOne(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.FindPlacesLeft(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.Update(ctx, 99, UpdateRequest{BeginDate: &nine})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, f.svc.Delete(ctx, 99), ErrNotFound)

	_, err = f.svc.WriteReport(ctx, 99, "good boy")
	assert.ErrorIs(t, err, ErrNotFound)

	f.activities.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	f.reservations.AssertNotCalled(t, "CountBySession", mock.Anything, mock.Anything)
	f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUpdate_BeginDateUsesCurrentDuration(t *testing.T) {
	f := newFixture()
	stored := &Session{
		ID: 1, ActivityID: 5, EducatorID: 3, EstablishmentID: 1, MaximumCapacity: 2,
		BeginDate: nine, EndDate: nine.Add(30 * time.Minute),
	}
	f.repo.On("GetByID", mock.Anything, int64(1)).Return(stored, nil)
	// the activity was lengthened after the session was created
	f.activities.On("GetByID", mock.Anything, int64(5)).Return(&activity.Activity{ID: 5, Duration: 45}, nil)
	f.repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	newBegin := time.Date(2024, 3, 2, 14, 0, 0, 0, time.UTC)
	v, err := f.svc.Update(context.Background(), 1, UpdateRequest{BeginDate: &newBegin})
	require.NoError(t, err)

	assert.Equal(t, newBegin, v.BeginDate)
	assert.Equal(t, newBegin.Add(45*time.Minute), v.EndDate)
	assert.Equal(t, 2, v.MaximumCapacity)
}

func TestUpdate_RecomputesEvenWithoutDateChange(t *testing.T) {
	f := newFixture()
	f.repo.On("GetByID", mock.Anything, int64(1)).Return(&Session{
		ID: 1, ActivityID: 5, BeginDate: nine, EndDate: nine.Add(30 * time.Minute),
	}, nil)
	f.activities.On("GetByID", mock.Anything, int64(6)).Return(&activity.Activity{ID: 6, Duration: 90}, nil)
	f.repo.On("Update", mock.Anything, mock.MatchedBy(func(s *Session) bool {
		return s.ActivityID == 6 && s.EndDate.Equal(nine.Add(90*time.Minute)) && s.Status == StatusOnline
	})).Return(nil)

	status := StatusOnline
	v, err := f.svc.Update(context.Background(), 1, UpdateRequest{ActivityID: ptr(int64(6)), Status: &status})
	require.NoError(t, err)
	assert.Equal(t, nine.Add(90*time.Minute), v.EndDate)
	f.repo.AssertExpectations(t)
}

func TestUpdate_UnknownActivityIsUnprocessable(t *testing.T) {
	f := newFixture()
	f.repo.On("GetByID", mock.Anything, int64(1)).Return(&Session{ID: 1, ActivityID: 5, BeginDate: nine}, nil)
	f.activities.On("GetByID", mock.Anything, int64(5)).Return(nil, gorm.ErrRecordNotFound)

	_, err := f.svc.Update(context.Background(), 1, UpdateRequest{})
	assert.ErrorIs(t, err, apperr.ErrUnprocessable)
	f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestFind_FilterPriority(t *testing.T) {
	f := newFixture()
	f.activities.On("GetByID", mock.Anything, mock.Anything).Return(&activity.Activity{Duration: 30}, nil)

	f.repo.On("List", mock.Anything, ListFilter{EducatorID: ptr(int64(3))}).Return([]Session{{ID: 1, EducatorID: 3}}, nil)

	list, err := f.svc.Find(context.Background(), FindQuery{EducatorID: ptr(int64(3)), ActivityID: ptr(int64(5)), EstablishmentID: ptr(int64(1))})
	require.NoError(t, err)
	require.Len(t, list, 1)
	f.repo.AssertNumberOfCalls(t, "List", 1)

	f.repo.On("List", mock.Anything, ListFilter{ActivityID: ptr(int64(5))}).Return([]Session{}, nil)
	_, err = f.svc.Find(context.Background(), FindQuery{ActivityID: ptr(int64(5)), EstablishmentID: ptr(int64(1))})
	require.NoError(t, err)
}

func TestFind_DateWindow(t *testing.T) {
	f := newFixture()
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	want := ListFilter{
		EstablishmentID: ptr(int64(1)),
		Window:          &Window{Start: day, End: day.Add(24 * time.Hour)},
	}
	f.repo.On("List", mock.Anything, want).Return([]Session{}, nil)

	list, err := f.svc.Find(context.Background(), FindQuery{EstablishmentID: ptr(int64(1)), Date: &day})
	require.NoError(t, err)
	assert.Empty(t, list)
	f.repo.AssertExpectations(t)
}

func TestFind_ReservedIgnoresDate(t *testing.T) {
	f := newFixture()
	f.activities.On("GetByID", mock.Anything, mock.Anything).Return(&activity.Activity{Duration: 30}, nil)
	f.repo.On("List", mock.Anything, ListFilter{EstablishmentID: ptr(int64(1))}).
		Return([]Session{{ID: 1}, {ID: 2}, {ID: 3}}, nil)
	f.reservations.On("ReservedSessionIDs", mock.Anything, []int64{1, 2, 3}).Return([]int64{3, 1}, nil)

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	list, err := f.svc.Find(context.Background(), FindQuery{EstablishmentID: ptr(int64(1)), Date: &day, Reserved: true})
	require.NoError(t, err)

	require.Len(t, list, 2)
	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, int64(3), list[1].ID)
}

func TestFind_StorageFailureIsBadRequest(t *testing.T) {
	f := newFixture()
	f.repo.On("List", mock.Anything, ListFilter{}).Return([]Session{}, errors.New("syntax error"))

	_, err := f.svc.Find(context.Background(), FindQuery{})
	assert.ErrorIs(t, err, apperr.ErrBadRequest)
}

func TestWriteReport_OnlyTouchesReport(t *testing.T) {
	f := newFixture()
	stored := &Session{ID: 1, ActivityID: 5, BeginDate: nine, EndDate: nine.Add(time.Hour)}
	f.repo.On("GetByID", mock.Anything, int64(1)).Return(stored, nil)
	f.repo.On("UpdateReport", mock.Anything, int64(1), "calm and focused").Return(nil)
	f.activities.On("GetByID", mock.Anything, int64(5)).Return(&activity.Activity{ID: 5, Duration: 30}, nil)

	v, err := f.svc.WriteReport(context.Background(), 1, "calm and focused")
	require.NoError(t, err)

	assert.Equal(t, "calm and focused", v.Report)
	assert.Equal(t, nine.Add(time.Hour), v.EndDate)
	f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteByEducatorAndActivity(t *testing.T) {
	f := newFixture()
	f.repo.On("DeleteByEducator", mock.Anything, int64(3)).Return(int64(4), nil)
	f.repo.On("DeleteByActivity", mock.Anything, int64(5)).Return(int64(0), nil)

	n, err := f.svc.DeleteByEducator(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)

	n, err = f.svc.DeleteByActivity(context.Background(), 5)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestWindowOverlaps(t *testing.T) {
	w := DayWindow(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

	assert.True(t, w.Overlaps(nine, nine.Add(time.Hour)))
	assert.True(t, w.Overlaps(w.Start.Add(-time.Hour), w.Start.Add(time.Minute)))
	assert.False(t, w.Overlaps(w.Start.Add(-time.Hour), w.Start))
	assert.False(t, w.Overlaps(w.End, w.End.Add(time.Hour)))
	assert.Equal(t, -1, PlacesLeft(2, 3))
}
