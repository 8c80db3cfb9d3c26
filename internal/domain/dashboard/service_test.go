package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"salescrm/internal/domain/deal"
)

type mockStatsRepo struct {
	mock.Mock
}

func (m *mockStatsRepo) LeadCountsByStatus(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *mockStatsRepo) StageTotals(ctx context.Context) ([]StageTotal, error) {
	args := m.Called(ctx)
	return args.Get(0).([]StageTotal), args.Error(1)
}

func (m *mockStatsRepo) DealCountByStatus(ctx context.Context, status deal.Status) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func TestSummary(t *testing.T) {
	stats := new(mockStatsRepo)
	svc := NewService(stats, nil)

	stats.On("LeadCountsByStatus", mock.Anything).Return(map[string]int64{
		"new":       4,
		"qualified": 2,
		"converted": 1,
	}, nil)
	stats.On("StageTotals", mock.Anything).Return([]StageTotal{
		{StageID: "s1", StageName: "Qualification", SortOrder: 1, DealCount: 3, TotalValue: 750000},
	}, nil)
	stats.On("DealCountByStatus", mock.Anything, deal.StatusOpen).Return(int64(3), nil)
	stats.On("DealCountByStatus", mock.Anything, deal.StatusWon).Return(int64(3), nil)
	stats.On("DealCountByStatus", mock.Anything, deal.StatusLost).Return(int64(1), nil)

	summary, err := svc.Summary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.LeadCounts["qualified"])
	assert.Equal(t, int64(750000), summary.StageTotals[0].TotalValue)
	assert.InDelta(t, 0.75, summary.WinRate, 1e-9)
}

func TestWinRate_NoClosedDeals(t *testing.T) {
	assert.Equal(t, 0.0, winRate(0, 0))
	assert.Equal(t, 1.0, winRate(5, 0))
	assert.Equal(t, 0.0, winRate(0, 5))
}
