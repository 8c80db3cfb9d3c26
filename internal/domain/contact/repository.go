package contact

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

func (r *Repository) Create(ctx context.Context, c *Contact) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Contact, error) {
	var c Contact
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByAccount returns the account's contacts, newest first.
func (r *Repository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]Contact, int64, error) {
	q := r.db.WithContext(ctx).Model(&Contact{}).Where("account_id = ?", accountID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var contacts []Contact
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&contacts).Error
	return contacts, total, err
}

func (r *Repository) Update(ctx context.Context, c *Contact) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Contact{}, "id = ?", id).Error
}
