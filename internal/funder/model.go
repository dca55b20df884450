package funder

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Funder is a party (subsidy program, guarantor, resident) contributing money
// toward a lease's market value. Shared across leases.
type Funder struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (f *Funder) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
