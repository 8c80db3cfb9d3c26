package deal

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status is the deal lifecycle state. Won and lost are terminal; a deal
// enters them by being moved into a stage flagged is_won/is_lost.
type Status string

const (
	StatusOpen Status = "open"
	StatusWon  Status = "won"
	StatusLost Status = "lost"
)

// Deal is a tracked sales opportunity. Value is stored in sen, the minor
// currency unit (display value x100).
type Deal struct {
	ID                string     `gorm:"primaryKey;size:36" json:"id"`
	Title             string     `gorm:"size:255" json:"title"`
	Description       string     `gorm:"type:text" json:"description,omitempty"`
	AccountID         string     `gorm:"size:36;index;not null" json:"account_id"`
	ContactID         *string    `gorm:"size:36" json:"contact_id,omitempty"`
	StageID           string     `gorm:"size:36;index;not null" json:"stage_id"`
	Value             int64      `json:"value"`
	Probability       int        `json:"probability"`
	Status            Status     `gorm:"size:16;default:'open'" json:"status"`
	ExpectedCloseDate *time.Time `json:"expected_close_date,omitempty"`
	ActualCloseDate   *time.Time `json:"actual_close_date,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func (Deal) TableName() string { return "deals" }

func (d *Deal) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// IsClosed reports whether the deal reached a terminal status.
func (d *Deal) IsClosed() bool {
	return d.Status == StatusWon || d.Status == StatusLost
}
