package space

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Space is a unit within a site, rentable or not.
type Space struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Identifier  string    `gorm:"size:100;not null" json:"identifier"`
	SpaceTypeID string    `gorm:"type:varchar(36);not null;index" json:"spaceTypeId"`
	SiteID      string    `gorm:"type:varchar(36);not null;index" json:"siteId"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (s *Space) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
