package pipeline

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repository handles pipeline stage data access.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, stage *Stage) error {
	return r.db.WithContext(ctx).Create(stage).Error
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Stage, error) {
	var s Stage
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// List returns stages in kanban column order. When activeOnly is set,
// inactive stages are filtered out.
func (r *Repository) List(ctx context.Context, activeOnly bool) ([]Stage, error) {
	var stages []Stage
	q := r.db.WithContext(ctx).Order("sort_order ASC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Find(&stages).Error
	return stages, err
}

func (r *Repository) Update(ctx context.Context, stage *Stage) error {
	return r.db.WithContext(ctx).Save(stage).Error
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Stage{}, "id = ?", id).Error
}

// CountDeals reports how many deals reference the stage.
func (r *Repository) CountDeals(ctx context.Context, stageID string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Table("deals").Where("stage_id = ?", stageID).Count(&cnt).Error
	return cnt, err
}
