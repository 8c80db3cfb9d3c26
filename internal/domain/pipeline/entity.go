package pipeline

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Stage is an ordered step in the sales pipeline. Stages flagged won/lost
// close deals moved into them; inactive stages accept no new deals.
type Stage struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:255" json:"name"`
	SortOrder int       `gorm:"column:sort_order" json:"order"`
	Color     string    `gorm:"size:32" json:"color"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	IsWon     bool      `gorm:"default:false" json:"is_won"`
	IsLost    bool      `gorm:"default:false" json:"is_lost"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Stage) TableName() string { return "pipeline_stages" }

func (s *Stage) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
