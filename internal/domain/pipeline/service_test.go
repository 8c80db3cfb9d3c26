package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStageRepo struct {
	mock.Mock
}

func (m *mockStageRepo) Create(ctx context.Context, stage *Stage) error {
	args := m.Called(ctx, stage)
	return args.Error(0)
}

func (m *mockStageRepo) GetByID(ctx context.Context, id string) (*Stage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Stage), args.Error(1)
}

func (m *mockStageRepo) List(ctx context.Context, activeOnly bool) ([]Stage, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).([]Stage), args.Error(1)
}

func (m *mockStageRepo) Update(ctx context.Context, stage *Stage) error {
	args := m.Called(ctx, stage)
	return args.Error(0)
}

func (m *mockStageRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockStageRepo) CountDeals(ctx context.Context, stageID string) (int64, error) {
	args := m.Called(ctx, stageID)
	return args.Get(0).(int64), args.Error(1)
}

func TestCreate_NewStagesStartActive(t *testing.T) {
	stages := new(mockStageRepo)
	svc := NewService(stages)

	stages.On("Create", mock.Anything, mock.AnythingOfType("*pipeline.Stage")).Return(nil)

	stage, err := svc.Create(context.Background(), CreateStageRequest{Name: "Proposal", SortOrder: 3, Color: "#f59e0b"})

	require.NoError(t, err)
	assert.True(t, stage.IsActive)
	assert.False(t, stage.IsWon)
}

func TestDelete_StageInUse(t *testing.T) {
	stages := new(mockStageRepo)
	svc := NewService(stages)

	stages.On("GetByID", mock.Anything, "s1").Return(&Stage{ID: "s1"}, nil)
	stages.On("CountDeals", mock.Anything, "s1").Return(int64(4), nil)

	err := svc.Delete(context.Background(), "s1")

	assert.ErrorIs(t, err, ErrStageInUse)
	stages.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDelete_EmptyStage(t *testing.T) {
	stages := new(mockStageRepo)
	svc := NewService(stages)

	stages.On("GetByID", mock.Anything, "s1").Return(&Stage{ID: "s1"}, nil)
	stages.On("CountDeals", mock.Anything, "s1").Return(int64(0), nil)
	stages.On("Delete", mock.Anything, "s1").Return(nil)

	err := svc.Delete(context.Background(), "s1")

	assert.NoError(t, err)
	stages.AssertExpectations(t)
}

func TestUpdate_UnknownStage(t *testing.T) {
	stages := new(mockStageRepo)
	svc := NewService(stages)

	stages.On("GetByID", mock.Anything, "missing").Return(nil, nil)

	name := "Renamed"
	_, err := svc.Update(context.Background(), "missing", UpdateStageRequest{Name: &name})

	assert.ErrorIs(t, err, ErrStageNotFound)
}
