package dashboard

import (
	"context"

	"salescrm/internal/cache"
	"salescrm/internal/domain/deal"
)

// StatsRepository reads the dashboard aggregates.
type StatsRepository interface {
	LeadCountsByStatus(ctx context.Context) (map[string]int64, error)
	StageTotals(ctx context.Context) ([]StageTotal, error)
	DealCountByStatus(ctx context.Context, status deal.Status) (int64, error)
}

// Service assembles the dashboard summary. Results are cached for the
// store TTL; the dashboard tolerates slightly stale numbers.
type Service struct {
	stats StatsRepository
	cache *cache.Store
}

func NewService(stats StatsRepository, store *cache.Store) *Service {
	return &Service{stats: stats, cache: store}
}

func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	key := cache.CollectionKey("dashboard", nil)

	var cached Summary
	if s.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	leadCounts, err := s.stats.LeadCountsByStatus(ctx)
	if err != nil {
		return nil, err
	}

	stageTotals, err := s.stats.StageTotals(ctx)
	if err != nil {
		return nil, err
	}

	open, err := s.stats.DealCountByStatus(ctx, deal.StatusOpen)
	if err != nil {
		return nil, err
	}
	won, err := s.stats.DealCountByStatus(ctx, deal.StatusWon)
	if err != nil {
		return nil, err
	}
	lost, err := s.stats.DealCountByStatus(ctx, deal.StatusLost)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		LeadCounts:  leadCounts,
		StageTotals: stageTotals,
		OpenDeals:   open,
		WonDeals:    won,
		LostDeals:   lost,
		WinRate:     winRate(won, lost),
	}
	s.cache.Set(ctx, key, summary)
	return summary, nil
}

// winRate is won over closed, as a fraction. Zero closed deals means a
// zero rate rather than a division error.
func winRate(won, lost int64) float64 {
	closed := won + lost
	if closed == 0 {
		return 0
	}
	return float64(won) / float64(closed)
}
