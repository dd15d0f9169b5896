package establishment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/domain/user"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/apperr"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/principal"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, e *Establishment) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*Establishment, error) {
	args := m.Called(ctx, id)
	if e := args.Get(0); e != nil {
		return e.(*Establishment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, ownerID *int64) ([]Establishment, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]Establishment), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, e *Establishment) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockEmployees struct {
	mock.Mock
}

func (m *MockEmployees) GetByID(ctx context.Context, id int64) (*user.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*user.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEmployees) List(ctx context.Context, f user.Filter) ([]user.User, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]user.User), args.Error(1)
}

func (m *MockEmployees) AssignEstablishment(ctx context.Context, userID, establishmentID int64) error {
	return m.Called(ctx, userID, establishmentID).Error(0)
}

var manager = principal.Principal{UserID: 2, Role: principal.RoleManager}

func TestCreate_OwnerIsCaller(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockEmployees))

	other := int64(99)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *Establishment) bool { return e.OwnerID == 2 })).Return(nil)

	e, err := svc.Create(context.Background(), manager, CreateRequest{OwnerID: &other, Name: "Canis", Address: "1 rue"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), e.OwnerID)
}

func TestUpdate_OtherManagerForbidden(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockEmployees))
	repo.On("GetByID", mock.Anything, int64(1)).Return(&Establishment{ID: 1, OwnerID: 50}, nil)

	name := "x"
	_, err := svc.Update(context.Background(), manager, 1, UpdateRequest{Name: &name})
	assert.ErrorIs(t, err, ErrNotOwner)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestFindOne_NotFound(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockEmployees))
	repo.On("GetByID", mock.Anything, int64(8)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.FindOne(context.Background(), 8)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestAddEmployee(t *testing.T) {
	repo := new(MockRepository)
	emp := new(MockEmployees)
	svc := NewService(repo, emp)

	repo.On("GetByID", mock.Anything, int64(1)).Return(&Establishment{ID: 1, OwnerID: 2}, nil)
	emp.On("GetByID", mock.Anything, int64(7)).Return(&user.User{ID: 7, Role: principal.RoleEducator}, nil)
	emp.On("GetByID", mock.Anything, int64(8)).Return(&user.User{ID: 8, Role: principal.RoleClient}, nil)
	emp.On("GetByID", mock.Anything, int64(9)).Return(nil, gorm.ErrRecordNotFound)
	emp.On("AssignEstablishment", mock.Anything, int64(7), int64(1)).Return(nil)

	u, err := svc.AddEmployee(context.Background(), manager, 1, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), *u.EstablishmentID)

	_, err = svc.AddEmployee(context.Background(), manager, 1, 8)
	assert.ErrorIs(t, err, ErrNotAnEmployee)

	_, err = svc.AddEmployee(context.Background(), manager, 1, 9)
	assert.ErrorIs(t, err, apperr.ErrUnprocessable)
}

func TestEmployees_FiltersClients(t *testing.T) {
	repo := new(MockRepository)
	emp := new(MockEmployees)
	svc := NewService(repo, emp)

	id := int64(1)
	repo.On("GetByID", mock.Anything, id).Return(&Establishment{ID: 1}, nil)
	emp.On("List", mock.Anything, user.Filter{EstablishmentID: &id}).Return([]user.User{
		{ID: 1, Role: principal.RoleEducator},
		{ID: 2, Role: principal.RoleClient},
		{ID: 3, Role: principal.RoleManager},
	}, nil)

	list, err := svc.Employees(context.Background(), id)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
