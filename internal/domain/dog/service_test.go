package dog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/apperr"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/principal"
)

type MockDogRepository struct {
	mock.Mock
}

func (m *MockDogRepository) Create(ctx context.Context, d *Dog) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDogRepository) GetByID(ctx context.Context, id int64) (*Dog, error) {
	args := m.Called(ctx, id)
	if d := args.Get(0); d != nil {
		return d.(*Dog), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDogRepository) List(ctx context.Context, f Filter) ([]Dog, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]Dog), args.Error(1)
}

func (m *MockDogRepository) Update(ctx context.Context, d *Dog) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDogRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

var (
	client   = principal.Principal{UserID: 10, Role: principal.RoleClient}
	educator = principal.Principal{UserID: 3, Role: principal.RoleEducator}
)

func TestCreate_ClientOwnsDog(t *testing.T) {
	repo := new(MockDogRepository)
	svc := NewService(repo)

	someoneElse := int64(77)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(d *Dog) bool { return d.OwnerID == 10 })).Return(nil)

	d, err := svc.Create(context.Background(), client, CreateRequest{OwnerID: &someoneElse, EstablishmentID: 1, Name: "Rex"})
	require.NoError(t, err)
	assert.Equal(t, int64(10), d.OwnerID)
}

func TestCreate_EmployeeMustNameOwner(t *testing.T) {
	svc := NewService(new(MockDogRepository))

	_, err := svc.Create(context.Background(), educator, CreateRequest{EstablishmentID: 1, Name: "Rex"})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestFind_ClientScopedToOwnDogs(t *testing.T) {
	repo := new(MockDogRepository)
	svc := NewService(repo)

	repo.On("List", mock.Anything, mock.MatchedBy(func(f Filter) bool {
		return f.OwnerID != nil && *f.OwnerID == 10
	})).Return([]Dog{{ID: 1, OwnerID: 10}}, nil)

	list, err := svc.Find(context.Background(), client, Filter{})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestFindOne(t *testing.T) {
	repo := new(MockDogRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, int64(1)).Return(&Dog{ID: 1, OwnerID: 99}, nil)
	repo.On("GetByID", mock.Anything, int64(2)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.FindOne(context.Background(), client, 1)
	assert.ErrorIs(t, err, ErrNotOwner)

	d, err := svc.FindOne(context.Background(), educator, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(99), d.OwnerID)

	_, err = svc.FindOne(context.Background(), educator, 2)
	assert.ErrorIs(t, err, ErrNotFound)
}
