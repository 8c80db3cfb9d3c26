package deal

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, d *Deal) error {
	err := r.db.WithContext(ctx).Create(d).Error
	if err != nil {
		// surface broken references as domain errors under Postgres
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrAccountNotFound
		}
		return err
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Deal, error) {
	var d Deal
	err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) List(ctx context.Context, status string, limit, offset int) ([]Deal, int64, error) {
	q := r.db.WithContext(ctx).Model(&Deal{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var deals []Deal
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&deals).Error
	return deals, total, err
}

// ListOpenByStage returns open deals grouped for the kanban board.
func (r *Repository) ListOpenByStage(ctx context.Context, stageID string) ([]Deal, error) {
	var deals []Deal
	err := r.db.WithContext(ctx).
		Where("stage_id = ? AND status = ?", stageID, StatusOpen).
		Order("updated_at DESC").
		Find(&deals).Error
	return deals, err
}

func (r *Repository) Update(ctx context.Context, d *Deal) error {
	return r.db.WithContext(ctx).Save(d).Error
}
