package account

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

func (r *Repository) Create(ctx context.Context, a *Account) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Account, error) {
	var a Account
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) List(ctx context.Context, p ListParams) ([]Account, int64, error) {
	q := r.db.WithContext(ctx).Model(&Account{})
	if p.Search != "" {
		q = q.Where("name LIKE ?", "%"+p.Search+"%")
	}
	if p.Status != "" {
		q = q.Where("status = ?", p.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var accounts []Account
	err := q.Order("name ASC").
		Limit(p.PerPage).
		Offset((p.Page - 1) * p.PerPage).
		Find(&accounts).Error
	return accounts, total, err
}

func (r *Repository) Update(ctx context.Context, a *Account) error {
	return r.db.WithContext(ctx).Save(a).Error
}
