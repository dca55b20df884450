package serviceorder

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order statuses. Recorded, not enforced: any status can be set from any
// other.
const (
	StatusPending    = "pending"
	StatusAssigned   = "assigned"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

var validStatuses = map[string]bool{
	StatusPending:    true,
	StatusAssigned:   true,
	StatusInProgress: true,
	StatusCompleted:  true,
	StatusCancelled:  true,
}

func IsValidStatus(s string) bool { return validStatuses[s] }

// ServiceOrder is staff-performed work, optionally linked to one or more
// service requests.
type ServiceOrder struct {
	ID              string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title           string     `gorm:"size:255;not null" json:"title"`
	Description     string     `json:"description"`
	AssignedStaffID *string    `gorm:"type:varchar(36);index" json:"assignedStaffId,omitempty"`
	Status          string     `gorm:"size:50;not null;default:'pending';index" json:"status"`
	ScheduledDate   *time.Time `json:"scheduledDate,omitempty"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

func (o *ServiceOrder) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
