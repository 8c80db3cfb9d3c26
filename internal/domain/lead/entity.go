package lead

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status tracks a lead through the qualification funnel. Converted is
// terminal and reachable only through the conversion workflow, never
// through a plain status update.
type Status string

const (
	StatusNew          Status = "new"
	StatusContacted    Status = "contacted"
	StatusQualified    Status = "qualified"
	StatusUnqualified  Status = "unqualified"
	StatusNurturing    Status = "nurturing"
	StatusDisqualified Status = "disqualified"
	StatusConverted    Status = "converted"
	StatusLost         Status = "lost"
)

var statusTransitions = map[Status][]Status{
	StatusNew:          {StatusContacted, StatusQualified, StatusUnqualified, StatusDisqualified, StatusLost},
	StatusContacted:    {StatusQualified, StatusUnqualified, StatusNurturing, StatusDisqualified, StatusLost},
	StatusQualified:    {StatusUnqualified, StatusNurturing, StatusDisqualified, StatusLost},
	StatusNurturing:    {StatusContacted, StatusQualified, StatusDisqualified, StatusLost},
	StatusUnqualified:  {StatusNurturing, StatusContacted, StatusDisqualified},
	StatusDisqualified: {},
	StatusConverted:    {},
	StatusLost:         {},
}

// CanTransition reports whether a plain status update from one status to
// another is allowed. Converted is excluded entirely here.
func CanTransition(from, to Status) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Lead is a prospective customer not yet linked to an account.
type Lead struct {
	ID            string     `gorm:"primaryKey;size:36" json:"id"`
	FirstName     string     `gorm:"size:120" json:"first_name"`
	LastName      string     `gorm:"size:120" json:"last_name"`
	Email         string     `gorm:"size:255;index" json:"email"`
	Phone         string     `gorm:"size:32" json:"phone,omitempty"`
	CompanyName   string     `gorm:"size:255" json:"company_name,omitempty"`
	Source        string     `gorm:"size:64" json:"source,omitempty"`
	Status        Status     `gorm:"size:16;default:'new';index" json:"lead_status"`
	Score         int        `json:"lead_score"`
	Notes         string     `gorm:"type:text" json:"notes,omitempty"`
	AccountID     *string    `gorm:"size:36" json:"account_id,omitempty"`
	OpportunityID *string    `gorm:"size:36" json:"opportunity_id,omitempty"`
	ConvertedAt   *time.Time `json:"converted_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (Lead) TableName() string { return "leads" }

func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// IsConverted reports whether the lead already went through conversion.
// A converted lead accepts no further edits or deletes.
func (l *Lead) IsConverted() bool {
	return l.Status == StatusConverted
}
