package lead

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"salescrm/internal/cache"
	"salescrm/internal/domain/deal"
	"salescrm/internal/domain/pipeline"
)

type mockLeadRepo struct {
	mock.Mock
}

func (m *mockLeadRepo) Create(ctx context.Context, l *Lead) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *mockLeadRepo) GetByID(ctx context.Context, id string) (*Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Lead), args.Error(1)
}

func (m *mockLeadRepo) List(ctx context.Context, params ListParams) ([]Lead, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]Lead), args.Get(1).(int64), args.Error(2)
}

func (m *mockLeadRepo) Update(ctx context.Context, l *Lead) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *mockLeadRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockLeadRepo) ApplyConversion(ctx context.Context, l *Lead, p *ConversionPayload) (*ConversionResult, error) {
	args := m.Called(ctx, l, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ConversionResult), args.Error(1)
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

type mockBroadcaster struct {
	mock.Mock
}

func (m *mockBroadcaster) Broadcast(eventType string, payload any) {
	m.Called(eventType, payload)
}

func testStore(t *testing.T) *cache.Store {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return cache.New(client, time.Minute)
}

func activeStage(id string) *pipeline.Stage {
	return &pipeline.Stage{ID: id, Name: "Qualification", IsActive: true}
}

func TestConvert_Success(t *testing.T) {
	leads := new(mockLeadRepo)
	stages := new(mockStageRepo)
	events := new(mockBroadcaster)
	svc := NewService(leads, stages, nil, events, nil)

	l := qualifiedLead()
	req := validConvertRequest()

	leads.On("GetByID", mock.Anything, "L1").Return(l, nil)
	stages.On("GetByID", mock.Anything, req.StageID).Return(activeStage(req.StageID), nil)
	leads.On("ApplyConversion", mock.Anything, l, mock.AnythingOfType("*lead.ConversionPayload")).
		Return(&ConversionResult{Lead: l, Deal: &deal.Deal{ID: "D1", Title: "Acme - Opportunity"}}, nil)
	events.On("Broadcast", "lead_converted", mock.Anything).Return()

	result, err := svc.Convert(context.Background(), "L1", req)

	require.NoError(t, err)
	assert.Equal(t, "D1", result.Deal.ID)
	leads.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestConvert_NonQualifiedLeadRejected(t *testing.T) {
	leads := new(mockLeadRepo)
	stages := new(mockStageRepo)
	svc := NewService(leads, stages, nil, nil, nil)

	l := qualifiedLead()
	l.Status = StatusContacted
	req := validConvertRequest()

	leads.On("GetByID", mock.Anything, "L1").Return(l, nil)
	stages.On("GetByID", mock.Anything, req.StageID).Return(activeStage(req.StageID), nil)

	_, err := svc.Convert(context.Background(), "L1", req)

	assert.ErrorIs(t, err, ErrLeadNotQualified)
	leads.AssertNotCalled(t, "ApplyConversion", mock.Anything, mock.Anything, mock.Anything)
}

func TestConvert_InactiveStageRejected(t *testing.T) {
	leads := new(mockLeadRepo)
	stages := new(mockStageRepo)
	svc := NewService(leads, stages, nil, nil, nil)

	req := validConvertRequest()

	leads.On("GetByID", mock.Anything, "L1").Return(qualifiedLead(), nil)
	stages.On("GetByID", mock.Anything, req.StageID).Return(&pipeline.Stage{ID: req.StageID, IsActive: false}, nil)

	_, err := svc.Convert(context.Background(), "L1", req)

	assert.ErrorIs(t, err, ErrStageInactive)
	leads.AssertNotCalled(t, "ApplyConversion", mock.Anything, mock.Anything, mock.Anything)
}

func TestConvert_UnknownLead(t *testing.T) {
	leads := new(mockLeadRepo)
	stages := new(mockStageRepo)
	svc := NewService(leads, stages, nil, nil, nil)

	leads.On("GetByID", mock.Anything, "L404").Return(nil, nil)

	_, err := svc.Convert(context.Background(), "L404", validConvertRequest())

	assert.ErrorIs(t, err, ErrLeadNotFound)
}

func TestConvert_InvalidatesTouchedCollections(t *testing.T) {
	leads := new(mockLeadRepo)
	stages := new(mockStageRepo)
	store := testStore(t)
	svc := NewService(leads, stages, store, nil, nil)

	ctx := context.Background()
	seeded := []string{
		cache.CollectionKey("leads", map[string]string{"page": "1"}),
		cache.CollectionKey("deals", map[string]string{"view": "kanban"}),
		cache.CollectionKey("accounts", nil),
		cache.CollectionKey("contacts", nil),
		cache.DetailKey("leads", "L1"),
	}
	for _, key := range seeded {
		store.Set(ctx, key, map[string]string{"stale": "yes"})
	}
	untouched := cache.CollectionKey("visits", nil)
	store.Set(ctx, untouched, map[string]string{"stale": "no"})

	l := qualifiedLead()
	req := validConvertRequest()

	leads.On("GetByID", mock.Anything, "L1").Return(l, nil)
	stages.On("GetByID", mock.Anything, req.StageID).Return(activeStage(req.StageID), nil)
	leads.On("ApplyConversion", mock.Anything, l, mock.Anything).
		Return(&ConversionResult{Lead: l, Deal: &deal.Deal{ID: "D1"}}, nil)

	_, err := svc.Convert(ctx, "L1", req)
	require.NoError(t, err)

	var out map[string]string
	for _, key := range seeded {
		assert.False(t, store.Get(ctx, key, &out), "key %s must be invalidated", key)
	}
	assert.True(t, store.Get(ctx, untouched, &out))
}

func TestUpdateStatus_ValidTransition(t *testing.T) {
	leads := new(mockLeadRepo)
	svc := NewService(leads, nil, nil, nil, nil)

	leads.On("GetByID", mock.Anything, "L1").Return(&Lead{ID: "L1", Status: StatusContacted}, nil)
	leads.On("Update", mock.Anything, mock.AnythingOfType("*lead.Lead")).Return(nil)

	l, err := svc.UpdateStatus(context.Background(), "L1", StatusQualified)

	require.NoError(t, err)
	assert.Equal(t, StatusQualified, l.Status)
}

func TestUpdateStatus_InvalidTransition(t *testing.T) {
	leads := new(mockLeadRepo)
	svc := NewService(leads, nil, nil, nil, nil)

	leads.On("GetByID", mock.Anything, "L1").Return(&Lead{ID: "L1", Status: StatusDisqualified}, nil)

	_, err := svc.UpdateStatus(context.Background(), "L1", StatusQualified)

	assert.ErrorIs(t, err, ErrInvalidTransition)
	leads.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateStatus_ConvertedIsImmutable(t *testing.T) {
	leads := new(mockLeadRepo)
	svc := NewService(leads, nil, nil, nil, nil)

	leads.On("GetByID", mock.Anything, "L1").Return(&Lead{ID: "L1", Status: StatusConverted}, nil)

	_, err := svc.UpdateStatus(context.Background(), "L1", StatusLost)

	assert.ErrorIs(t, err, ErrLeadConverted)
}

func TestUpdate_ConvertedIsImmutable(t *testing.T) {
	leads := new(mockLeadRepo)
	svc := NewService(leads, nil, nil, nil, nil)

	leads.On("GetByID", mock.Anything, "L1").Return(&Lead{ID: "L1", Status: StatusConverted}, nil)

	name := "Changed"
	_, err := svc.Update(context.Background(), "L1", UpdateLeadRequest{FirstName: &name})

	assert.ErrorIs(t, err, ErrLeadConverted)
	leads.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDelete_ConvertedIsImmutable(t *testing.T) {
	leads := new(mockLeadRepo)
	svc := NewService(leads, nil, nil, nil, nil)

	leads.On("GetByID", mock.Anything, "L1").Return(&Lead{ID: "L1", Status: StatusConverted}, nil)

	err := svc.Delete(context.Background(), "L1")

	assert.ErrorIs(t, err, ErrLeadConverted)
	leads.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
