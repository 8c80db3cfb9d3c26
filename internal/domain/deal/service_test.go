package deal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"salescrm/internal/domain/account"
	"salescrm/internal/domain/contact"
	"salescrm/internal/domain/pipeline"
)

type mockDealRepo struct {
	mock.Mock
}

func (m *mockDealRepo) Create(ctx context.Context, d *Deal) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *mockDealRepo) GetByID(ctx context.Context, id string) (*Deal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Deal), args.Error(1)
}

func (m *mockDealRepo) List(ctx context.Context, status string, limit, offset int) ([]Deal, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	return args.Get(0).([]Deal), args.Get(1).(int64), args.Error(2)
}

func (m *mockDealRepo) ListOpenByStage(ctx context.Context, stageID string) ([]Deal, error) {
	args := m.Called(ctx, stageID)
	return args.Get(0).([]Deal), args.Error(1)
}

func (m *mockDealRepo) Update(ctx context.Context, d *Deal) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

type mockStageRepo struct {
	mock.Mock
}

func (m *mockStageRepo) GetByID(ctx context.Context, id string) (*pipeline.Stage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pipeline.Stage), args.Error(1)
}

func (m *mockStageRepo) List(ctx context.Context, activeOnly bool) ([]pipeline.Stage, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).([]pipeline.Stage), args.Error(1)
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

type mockContactGetter struct {
	mock.Mock
}

func (m *mockContactGetter) GetByID(ctx context.Context, id string) (*contact.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contact.Contact), args.Error(1)
}

type mockBroadcaster struct {
	mock.Mock
}

func (m *mockBroadcaster) Broadcast(eventType string, payload any) {
	m.Called(eventType, payload)
}

func newTestService(deals *mockDealRepo, stages *mockStageRepo, accounts *mockAccountGetter, contacts *mockContactGetter, events *mockBroadcaster) *Service {
	var b Broadcaster
	if events != nil {
		b = events
	}
	return NewService(deals, stages, accounts, contacts, nil, b, nil)
}

func TestCreate_Success(t *testing.T) {
	deals := new(mockDealRepo)
	stages := new(mockStageRepo)
	accounts := new(mockAccountGetter)
	events := new(mockBroadcaster)
	svc := newTestService(deals, stages, accounts, nil, events)

	stages.On("GetByID", mock.Anything, "stage-1").Return(&pipeline.Stage{ID: "stage-1", IsActive: true}, nil)
	accounts.On("GetByID", mock.Anything, "acc-1").Return(&account.Account{ID: "acc-1"}, nil)
	deals.On("Create", mock.Anything, mock.AnythingOfType("*deal.Deal")).Return(nil)
	events.On("Broadcast", "deal_created", mock.Anything).Return()

	d, err := svc.Create(context.Background(), CreateDealRequest{
		Title:     "New office fit-out",
		AccountID: "acc-1",
		StageID:   "stage-1",
		Value:     5000000,
	})

	assert.NoError(t, err)
	assert.Equal(t, StatusOpen, d.Status)
	assert.Nil(t, d.ActualCloseDate)
	deals.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestCreate_InactiveStage(t *testing.T) {
	deals := new(mockDealRepo)
	stages := new(mockStageRepo)
	svc := newTestService(deals, stages, nil, nil, nil)

	stages.On("GetByID", mock.Anything, "stage-1").Return(&pipeline.Stage{ID: "stage-1", IsActive: false}, nil)

	_, err := svc.Create(context.Background(), CreateDealRequest{
		Title:     "Dead on arrival",
		AccountID: "acc-1",
		StageID:   "stage-1",
	})

	assert.ErrorIs(t, err, ErrStageInactive)
	deals.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_UnknownAccount(t *testing.T) {
	deals := new(mockDealRepo)
	stages := new(mockStageRepo)
	accounts := new(mockAccountGetter)
	svc := newTestService(deals, stages, accounts, nil, nil)

	stages.On("GetByID", mock.Anything, "stage-1").Return(&pipeline.Stage{ID: "stage-1", IsActive: true}, nil)
	accounts.On("GetByID", mock.Anything, "acc-missing").Return(nil, nil)

	_, err := svc.Create(context.Background(), CreateDealRequest{
		Title:     "Orphan",
		AccountID: "acc-missing",
		StageID:   "stage-1",
	})

	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestMoveStage_WonStageClosesDeal(t *testing.T) {
	deals := new(mockDealRepo)
	stages := new(mockStageRepo)
	events := new(mockBroadcaster)
	svc := newTestService(deals, stages, nil, nil, events)

	deals.On("GetByID", mock.Anything, "deal-1").Return(&Deal{ID: "deal-1", Status: StatusOpen, StageID: "stage-1"}, nil)
	stages.On("GetByID", mock.Anything, "stage-won").Return(&pipeline.Stage{ID: "stage-won", IsActive: true, IsWon: true}, nil)
	deals.On("Update", mock.Anything, mock.AnythingOfType("*deal.Deal")).Return(nil)
	events.On("Broadcast", "deal_moved", mock.Anything).Return()

	d, err := svc.MoveStage(context.Background(), "deal-1", "stage-won")

	assert.NoError(t, err)
	assert.Equal(t, StatusWon, d.Status)
	assert.Equal(t, "stage-won", d.StageID)
	assert.NotNil(t, d.ActualCloseDate)
}

func TestMoveStage_LostStageClosesDeal(t *testing.T) {
	deals := new(mockDealRepo)
	stages := new(mockStageRepo)
	events := new(mockBroadcaster)
	svc := newTestService(deals, stages, nil, nil, events)

	deals.On("GetByID", mock.Anything, "deal-1").Return(&Deal{ID: "deal-1", Status: StatusOpen}, nil)
	stages.On("GetByID", mock.Anything, "stage-lost").Return(&pipeline.Stage{ID: "stage-lost", IsActive: true, IsLost: true}, nil)
	deals.On("Update", mock.Anything, mock.AnythingOfType("*deal.Deal")).Return(nil)
	events.On("Broadcast", "deal_moved", mock.Anything).Return()

	d, err := svc.MoveStage(context.Background(), "deal-1", "stage-lost")

	assert.NoError(t, err)
	assert.Equal(t, StatusLost, d.Status)
	assert.NotNil(t, d.ActualCloseDate)
}

func TestMoveStage_ClosedDealRejected(t *testing.T) {
	deals := new(mockDealRepo)
	stages := new(mockStageRepo)
	svc := newTestService(deals, stages, nil, nil, nil)

	deals.On("GetByID", mock.Anything, "deal-1").Return(&Deal{ID: "deal-1", Status: StatusWon}, nil)

	_, err := svc.MoveStage(context.Background(), "deal-1", "stage-2")

	assert.ErrorIs(t, err, ErrDealClosed)
	deals.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestMoveStage_InactiveStageRejected(t *testing.T) {
	deals := new(mockDealRepo)
	stages := new(mockStageRepo)
	svc := newTestService(deals, stages, nil, nil, nil)

	deals.On("GetByID", mock.Anything, "deal-1").Return(&Deal{ID: "deal-1", Status: StatusOpen}, nil)
	stages.On("GetByID", mock.Anything, "stage-retired").Return(&pipeline.Stage{ID: "stage-retired", IsActive: false}, nil)

	_, err := svc.MoveStage(context.Background(), "deal-1", "stage-retired")

	assert.ErrorIs(t, err, ErrStageInactive)
	deals.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdate_ClosedDealRejected(t *testing.T) {
	deals := new(mockDealRepo)
	svc := newTestService(deals, nil, nil, nil, nil)

	deals.On("GetByID", mock.Anything, "deal-1").Return(&Deal{ID: "deal-1", Status: StatusLost}, nil)

	title := "Renamed"
	_, err := svc.Update(context.Background(), "deal-1", UpdateDealRequest{Title: &title})

	assert.ErrorIs(t, err, ErrDealClosed)
}

func TestKanban_SumsOpenDealValues(t *testing.T) {
	deals := new(mockDealRepo)
	stages := new(mockStageRepo)
	svc := newTestService(deals, stages, nil, nil, nil)

	stages.On("List", mock.Anything, true).Return([]pipeline.Stage{
		{ID: "s1", Name: "Qualification", SortOrder: 1},
		{ID: "s2", Name: "Proposal", SortOrder: 2},
	}, nil)
	deals.On("ListOpenByStage", mock.Anything, "s1").Return([]Deal{
		{ID: "d1", Value: 100000},
		{ID: "d2", Value: 250000},
	}, nil)
	deals.On("ListOpenByStage", mock.Anything, "s2").Return([]Deal{}, nil)

	resp, err := svc.Kanban(context.Background())

	assert.NoError(t, err)
	assert.Len(t, resp.Columns, 2)
	assert.Equal(t, int64(350000), resp.Columns[0].TotalValue)
	assert.Equal(t, "3500.00", resp.Columns[0].TotalValueDisplay)
	assert.Equal(t, int64(0), resp.Columns[1].TotalValue)
	assert.Equal(t, "0.00", resp.Columns[1].TotalValueDisplay)
}

func TestCreate_MalformedCloseDateRejected(t *testing.T) {
	deals := new(mockDealRepo)
	stages := new(mockStageRepo)
	accounts := new(mockAccountGetter)
	svc := newTestService(deals, stages, accounts, nil, nil)

	stages.On("GetByID", mock.Anything, "stage-1").Return(&pipeline.Stage{ID: "stage-1", IsActive: true}, nil)
	accounts.On("GetByID", mock.Anything, "acc-1").Return(&account.Account{ID: "acc-1"}, nil)

	_, err := svc.Create(context.Background(), CreateDealRequest{
		Title:             "Bad date",
		AccountID:         "acc-1",
		StageID:           "stage-1",
		ExpectedCloseDate: "31-12-2026",
	})

	assert.Error(t, err)
	deals.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
