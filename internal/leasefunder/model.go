package leasefunder

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LeaseFunder is one funder's committed monthly contribution to one lease.
// A lease carries one row per contributing funder.
type LeaseFunder struct {
	ID        string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	LeaseID   string          `gorm:"type:varchar(36);not null;index" json:"leaseId"`
	FunderID  string          `gorm:"type:varchar(36);not null;index" json:"funderId"`
	Amount    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	CreatedAt time.Time       `json:"createdAt"`
}

func (lf *LeaseFunder) BeforeCreate(tx *gorm.DB) error {
	if lf.ID == "" {
		lf.ID = uuid.NewString()
	}
	return nil
}
