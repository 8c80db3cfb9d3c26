package visit

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, v *VisitReport) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *Repository) GetByID(ctx context.Context, id string) (*VisitReport, error) {
	var v VisitReport
	err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// GetOpenByUser returns the user's current open visit, if any.
func (r *Repository) GetOpenByUser(ctx context.Context, userID string) (*VisitReport, error) {
	var v VisitReport
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND check_out_at IS NULL", userID).
		First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *Repository) List(ctx context.Context, userID, accountID string, limit, offset int) ([]VisitReport, int64, error) {
	q := r.db.WithContext(ctx).Model(&VisitReport{})
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	if accountID != "" {
		q = q.Where("account_id = ?", accountID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var visits []VisitReport
	err := q.Order("check_in_at DESC").Limit(limit).Offset(offset).Find(&visits).Error
	return visits, total, err
}

func (r *Repository) Update(ctx context.Context, v *VisitReport) error {
	return r.db.WithContext(ctx).Save(v).Error
}
