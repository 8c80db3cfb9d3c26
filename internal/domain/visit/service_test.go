package visit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"salescrm/internal/domain/account"
)

type mockVisitRepo struct {
	mock.Mock
}

func (m *mockVisitRepo) Create(ctx context.Context, v *VisitReport) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *mockVisitRepo) GetByID(ctx context.Context, id string) (*VisitReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*VisitReport), args.Error(1)
}

func (m *mockVisitRepo) GetOpenByUser(ctx context.Context, userID string) (*VisitReport, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*VisitReport), args.Error(1)
}

func (m *mockVisitRepo) List(ctx context.Context, userID, accountID string, limit, offset int) ([]VisitReport, int64, error) {
	args := m.Called(ctx, userID, accountID, limit, offset)
	return args.Get(0).([]VisitReport), args.Get(1).(int64), args.Error(2)
}

func (m *mockVisitRepo) Update(ctx context.Context, v *VisitReport) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

type mockAccountGetter struct {
	mock.Mock
}

func (m *mockAccountGetter) GetByID(ctx context.Context, id string) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func TestCheckIn_Success(t *testing.T) {
	visits := new(mockVisitRepo)
	accounts := new(mockAccountGetter)
	svc := NewService(visits, accounts, nil)

	visits.On("GetOpenByUser", mock.Anything, "u1").Return(nil, nil)
	accounts.On("GetByID", mock.Anything, "acc-1").Return(&account.Account{ID: "acc-1"}, nil)
	visits.On("Create", mock.Anything, mock.AnythingOfType("*visit.VisitReport")).Return(nil)

	v, err := svc.CheckIn(context.Background(), "u1", CheckInRequest{AccountID: "acc-1"})

	require.NoError(t, err)
	assert.True(t, v.IsOpen())
	assert.False(t, v.CheckInAt.IsZero())
}

func TestCheckIn_OpenVisitBlocks(t *testing.T) {
	visits := new(mockVisitRepo)
	accounts := new(mockAccountGetter)
	svc := NewService(visits, accounts, nil)

	visits.On("GetOpenByUser", mock.Anything, "u1").Return(&VisitReport{ID: "v1", UserID: "u1"}, nil)

	_, err := svc.CheckIn(context.Background(), "u1", CheckInRequest{AccountID: "acc-1"})

	assert.ErrorIs(t, err, ErrVisitOpen)
	visits.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckOut_Success(t *testing.T) {
	visits := new(mockVisitRepo)
	svc := NewService(visits, nil, nil)

	visits.On("GetOpenByUser", mock.Anything, "u1").Return(&VisitReport{ID: "v1", UserID: "u1"}, nil)
	visits.On("Update", mock.Anything, mock.AnythingOfType("*visit.VisitReport")).Return(nil)

	v, err := svc.CheckOut(context.Background(), "u1", CheckOutRequest{Notes: "Met procurement"})

	require.NoError(t, err)
	assert.False(t, v.IsOpen())
	assert.Equal(t, "Met procurement", v.Notes)
}

func TestCheckOut_NoOpenVisit(t *testing.T) {
	visits := new(mockVisitRepo)
	svc := NewService(visits, nil, nil)

	visits.On("GetOpenByUser", mock.Anything, "u1").Return(nil, nil)

	_, err := svc.CheckOut(context.Background(), "u1", CheckOutRequest{})

	assert.ErrorIs(t, err, ErrNoOpenVisit)
	visits.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
