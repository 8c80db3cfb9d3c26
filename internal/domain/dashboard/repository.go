package dashboard

import (
	"context"

	"gorm.io/gorm"

	"salescrm/internal/domain/deal"
	"salescrm/internal/domain/lead"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) LeadCountsByStatus(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&lead.Lead{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Status] = rw.Count
	}
	return counts, nil
}

// StageTotals sums open deal value per active pipeline stage, in board
// order. Stages without open deals still appear with zero totals.
func (r *Repository) StageTotals(ctx context.Context) ([]StageTotal, error) {
	var totals []StageTotal
	err := r.db.WithContext(ctx).
		Table("pipeline_stages").
		Select(`pipeline_stages.id as stage_id,
			pipeline_stages.name as stage_name,
			pipeline_stages.sort_order as sort_order,
			COUNT(deals.id) as deal_count,
			COALESCE(SUM(deals.value), 0) as total_value`).
		Joins("LEFT JOIN deals ON deals.stage_id = pipeline_stages.id AND deals.status = ?", deal.StatusOpen).
		Where("pipeline_stages.is_active = ?", true).
		Group("pipeline_stages.id, pipeline_stages.name, pipeline_stages.sort_order").
		Order("pipeline_stages.sort_order ASC").
		Scan(&totals).Error
	return totals, err
}

func (r *Repository) DealCountByStatus(ctx context.Context, status deal.Status) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&deal.Deal{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
