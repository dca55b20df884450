package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles a user account can hold.
const (
	RoleAdmin           = "admin"
	RolePropertyManager = "property_manager"
	RoleFacilityManager = "facility_manager"
	RoleResident        = "resident"
	RoleSecurity        = "security"
	RoleCaseManager     = "case_manager"
)

var validRoles = map[string]bool{
	RoleAdmin:           true,
	RolePropertyManager: true,
	RoleFacilityManager: true,
	RoleResident:        true,
	RoleSecurity:        true,
	RoleCaseManager:     true,
}

// IsValidRole reports whether s is a known user role.
func IsValidRole(s string) bool { return validRoles[s] }

// User is an authenticated account. Password holds the bcrypt hash and is
// never serialized.
type User struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Username  string    `gorm:"size:100;not null;uniqueIndex" json:"username"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"size:50;not null;default:'resident'" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
