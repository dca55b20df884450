package site

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Site is a managed property or building.
type Site struct {
	ID                   string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name                 string     `gorm:"size:255;not null" json:"name"`
	Address              string     `gorm:"not null" json:"address"`
	PropertyDateAcquired *time.Time `json:"propertyDateAcquired,omitempty"`
	CreatedAt            time.Time  `json:"createdAt"`
}

func (s *Site) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
