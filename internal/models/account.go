package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleOwner Role = "OWNER"
	RoleStaff Role = "STAFF"
)

// Account is a contractor login. OWNER accounts head an organization;
// STAFF accounts belong to the organization of their manager.
type Account struct {
	ID           string    `gorm:"type:varchar(36);primarykey" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Phone        *string   `gorm:"type:varchar(32)" json:"phone"`
	Role         Role      `gorm:"type:varchar(20);not null;default:'OWNER'" json:"role"`
	ManagerID    *string   `gorm:"type:varchar(36);index" json:"managerId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// OrgID returns the id of the organization the account acts for.
func (a Account) OrgID() string {
	if a.ManagerID != nil && *a.ManagerID != "" {
		return *a.ManagerID
	}
	return a.ID
}
