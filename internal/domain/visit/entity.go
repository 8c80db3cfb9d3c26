package visit

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VisitReport records a field sales visit to an account. A visit is open
// between check-in and check-out; a user has at most one open visit.
type VisitReport struct {
	ID         string     `gorm:"primaryKey;size:36" json:"id"`
	AccountID  string     `gorm:"size:36;index;not null" json:"account_id"`
	ContactID  *string    `gorm:"size:36" json:"contact_id,omitempty"`
	UserID     string     `gorm:"size:36;index;not null" json:"user_id"`
	Location   string     `gorm:"size:255" json:"location,omitempty"`
	Notes      string     `gorm:"type:text" json:"notes,omitempty"`
	CheckInAt  time.Time  `json:"check_in_at"`
	CheckOutAt *time.Time `json:"check_out_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (VisitReport) TableName() string { return "visit_reports" }

func (v *VisitReport) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

// IsOpen reports whether the visit has not been checked out yet.
func (v *VisitReport) IsOpen() bool {
	return v.CheckOutAt == nil
}
