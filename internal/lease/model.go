package lease

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Lease binds a resident to a space for a date range at a rental amount and
// an assessed market value. Identity fields are fixed at creation;
// rentalAmount and marketValue stay editable.
type Lease struct {
	ID           string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	ResidentID   string          `gorm:"type:varchar(36);not null;index" json:"residentId"`
	SpaceID      string          `gorm:"type:varchar(36);not null;index" json:"spaceId"`
	RentalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"rentalAmount"`
	MarketValue  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"marketValue"`
	StartDate    time.Time       `gorm:"not null" json:"startDate"`
	EndDate      time.Time       `gorm:"not null" json:"endDate"`
	CreatedAt    time.Time       `json:"createdAt"`
}

func (l *Lease) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
