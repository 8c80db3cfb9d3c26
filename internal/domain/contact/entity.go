package contact

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact is a person at an account. A contact cannot exist without its
// owning account.
type Contact struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	AccountID string    `gorm:"size:36;index;not null" json:"account_id"`
	FirstName string    `gorm:"size:255" json:"first_name"`
	LastName  string    `gorm:"size:255" json:"last_name"`
	Role      string    `gorm:"size:64" json:"role"`
	Phone     string    `gorm:"size:32" json:"phone,omitempty"`
	Email     string    `gorm:"size:255" json:"email,omitempty"`
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Contact) TableName() string { return "contacts" }

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
