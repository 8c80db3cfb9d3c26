package auth

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role determines which permission set a user carries.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleSales   Role = "sales"
)

// Permission names, checked by the route middleware.
const (
	PermViewLeads      = "leads.view"
	PermEditLeads      = "leads.edit"
	PermConvertLeads   = "leads.convert"
	PermViewDeals      = "deals.view"
	PermEditDeals      = "deals.edit"
	PermEditAccounts   = "accounts.edit"
	PermEditContacts   = "contacts.edit"
	PermManagePipeline = "pipelines.manage"
	PermEditVisits     = "visits.edit"
	PermViewDashboard  = "dashboard.view"
)

var rolePermissions = map[Role]map[string]bool{
	RoleAdmin: {
		PermViewLeads: true, PermEditLeads: true, PermConvertLeads: true,
		PermViewDeals: true, PermEditDeals: true,
		PermEditAccounts: true, PermEditContacts: true,
		PermManagePipeline: true, PermEditVisits: true, PermViewDashboard: true,
	},
	RoleManager: {
		PermViewLeads: true, PermEditLeads: true, PermConvertLeads: true,
		PermViewDeals: true, PermEditDeals: true,
		PermEditAccounts: true, PermEditContacts: true,
		PermEditVisits: true, PermViewDashboard: true,
	},
	RoleSales: {
		PermViewLeads: true, PermEditLeads: true, PermConvertLeads: true,
		PermViewDeals: true, PermEditDeals: true,
		PermEditContacts: true, PermEditVisits: true, PermViewDashboard: true,
	},
}

// HasPermission reports whether the role grants the named permission.
func HasPermission(role Role, permission string) bool {
	return rolePermissions[role][permission]
}

// User is an authenticated CRM user.
type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:255" json:"email"`
	PasswordHash string    `gorm:"size:255" json:"-"`
	Name         string    `gorm:"size:255" json:"name"`
	Role         Role      `gorm:"size:32" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
