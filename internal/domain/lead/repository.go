package lead

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"salescrm/internal/domain/account"
	"salescrm/internal/domain/contact"
	"salescrm/internal/domain/deal"
)

// ConversionResult bundles the converted lead with the records the
// conversion created or linked.
type ConversionResult struct {
	Lead    *Lead            `json:"lead"`
	Account *account.Account `json:"account,omitempty"`
	Contact *contact.Contact `json:"contact,omitempty"`
	Deal    *deal.Deal       `json:"deal"`
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, l *Lead) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Lead, error) {
	var l Lead
	err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *Repository) List(ctx context.Context, params ListParams) ([]Lead, int64, error) {
	q := r.db.WithContext(ctx).Model(&Lead{})
	if params.Search != "" {
		like := "%" + params.Search + "%"
		q = q.Where("first_name LIKE ? OR last_name LIKE ? OR company_name LIKE ? OR email LIKE ?", like, like, like, like)
	}
	if params.Status != "" {
		q = q.Where("status = ?", params.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var leads []Lead
	err := q.Order("created_at DESC").
		Limit(params.PerPage).
		Offset((params.Page - 1) * params.PerPage).
		Find(&leads).Error
	return leads, total, err
}

func (r *Repository) Update(ctx context.Context, l *Lead) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Lead{}, "id = ?", id).Error
}

// ApplyConversion runs the conversion as one transaction. It creates the
// account and contact when the payload asks for them, opens the deal in
// the chosen stage, and marks the lead converted. Either everything
// lands or nothing does. The lead row is flipped with a status-guarded
// update, so a conversion racing on a stale snapshot rolls back with
// ErrLeadConverted instead of committing a second deal.
func (r *Repository) ApplyConversion(ctx context.Context, l *Lead, p *ConversionPayload) (*ConversionResult, error) {
	result := &ConversionResult{Lead: l}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		accountID := p.AccountID
		if p.CreateAccount {
			acc := &account.Account{
				Name:   l.CompanyName,
				Status: account.StatusActive,
			}
			if err := tx.Create(acc).Error; err != nil {
				return err
			}
			result.Account = acc
			accountID = acc.ID
		}

		var contactID *string
		if p.CreateContact {
			ct := &contact.Contact{
				AccountID: accountID,
				FirstName: l.FirstName,
				LastName:  l.LastName,
				Email:     l.Email,
				Phone:     l.Phone,
			}
			if err := tx.Create(ct).Error; err != nil {
				return err
			}
			result.Contact = ct
			contactID = &ct.ID
		} else if p.ContactID != "" {
			id := p.ContactID
			contactID = &id
		}

		d := &deal.Deal{
			Title:       p.OpportunityTitle,
			Description: p.OpportunityDescription,
			AccountID:   accountID,
			ContactID:   contactID,
			StageID:     p.StageID,
			Value:       p.Value,
			Probability: p.Probability,
			Status:      deal.StatusOpen,
		}
		if p.ExpectedCloseDate != "" {
			t, err := time.Parse("2006-01-02", p.ExpectedCloseDate)
			if err != nil {
				return err
			}
			d.ExpectedCloseDate = &t
		}
		if err := tx.Create(d).Error; err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return ErrStageNotFound
			}
			return err
		}
		result.Deal = d

		now := time.Now()
		res := tx.Model(&Lead{}).
			Where("id = ? AND status = ?", l.ID, StatusQualified).
			Updates(map[string]any{
				"status":         StatusConverted,
				"account_id":     accountID,
				"opportunity_id": d.ID,
				"converted_at":   now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrLeadConverted
		}

		l.Status = StatusConverted
		l.AccountID = &accountID
		l.OpportunityID = &d.ID
		l.ConvertedAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
