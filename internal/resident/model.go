package resident

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// How a resident relates to a tenancy.
const (
	TypePrimaryTenant      = "primary_tenant"
	TypeCoTenant           = "co_tenant"
	TypeAuthorizedOccupant = "authorized_occupant"

	RoleLeaseholder      = "leaseholder"
	RoleEmergencyContact = "emergency_contact"
	RoleGuarantor        = "guarantor"
)

var validTypes = map[string]bool{
	TypePrimaryTenant:      true,
	TypeCoTenant:           true,
	TypeAuthorizedOccupant: true,
}

var validRoles = map[string]bool{
	RoleLeaseholder:      true,
	RoleEmergencyContact: true,
	RoleGuarantor:        true,
}

func IsValidType(s string) bool { return validTypes[s] }
func IsValidRole(s string) bool { return validRoles[s] }

// Resident is a person associated with a lease. UserID links the resident to
// a login account when one exists.
type Resident struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Phone     string    `gorm:"size:50" json:"phone,omitempty"`
	Type      string    `gorm:"size:50;not null" json:"type"`
	Role      string    `gorm:"size:50;not null" json:"role"`
	UserID    *string   `gorm:"type:varchar(36);index" json:"userId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (res *Resident) BeforeCreate(tx *gorm.DB) error {
	if res.ID == "" {
		res.ID = uuid.NewString()
	}
	return nil
}
