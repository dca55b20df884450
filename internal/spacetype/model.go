package spacetype

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SpaceType is a catalog entry describing a kind of rentable unit
// (studio, 1_bedroom, 2_bedroom, 3_bedroom, common_area, ...).
type SpaceType struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (t *SpaceType) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
