package revenueevent

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RevenueEvent is an expected revenue-recognition entry: one row per calendar
// month within a lease term, per funder on that lease. Rows are derived data:
// bulk created when a lease is funded and bulk deleted if funding is
// recomputed, never edited row by row.
type RevenueEvent struct {
	ID        string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	LeaseID   string          `gorm:"type:varchar(36);not null;index" json:"leaseId"`
	FunderID  string          `gorm:"type:varchar(36);not null;index" json:"funderId"`
	Amount    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	EventDate time.Time       `gorm:"not null" json:"eventDate"`
	Month     string          `gorm:"size:7;not null;index" json:"month"`
	CreatedAt time.Time       `json:"createdAt"`
}

func (e *RevenueEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
