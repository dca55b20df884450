package servicerequest

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Request statuses. Recorded, not enforced: any status can be set from any
// other via a plain update.
const (
	StatusSubmitted    = "submitted"
	StatusAcknowledged = "acknowledged"
	StatusTriaged      = "triaged"
	StatusInProgress   = "in_progress"
	StatusResolved     = "resolved"
	StatusClosed       = "closed"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

var validStatuses = map[string]bool{
	StatusSubmitted:    true,
	StatusAcknowledged: true,
	StatusTriaged:      true,
	StatusInProgress:   true,
	StatusResolved:     true,
	StatusClosed:       true,
}

var validPriorities = map[string]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
	PriorityUrgent: true,
}

func IsValidStatus(s string) bool   { return validStatuses[s] }
func IsValidPriority(s string) bool { return validPriorities[s] }

// ServiceRequest is a resident-submitted maintenance issue. The *At columns
// are stamped when an update carries the matching status.
type ServiceRequest struct {
	ID             string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	ResidentID     string     `gorm:"type:varchar(36);not null;index" json:"residentId"`
	SpaceID        string     `gorm:"type:varchar(36);not null;index" json:"spaceId"`
	Title          string     `gorm:"size:255;not null" json:"title"`
	Description    string     `json:"description"`
	Priority       string     `gorm:"size:50;not null;default:'medium'" json:"priority"`
	Status         string     `gorm:"size:50;not null;default:'submitted';index" json:"status"`
	AcknowledgedAt *time.Time `json:"acknowledgedAt,omitempty"`
	TriagedAt      *time.Time `json:"triagedAt,omitempty"`
	ResolvedAt     *time.Time `json:"resolvedAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

func (sr *ServiceRequest) BeforeCreate(tx *gorm.DB) error {
	if sr.ID == "" {
		sr.ID = uuid.NewString()
	}
	return nil
}

// ServiceRequestServiceOrder links a request to a staff service order.
type ServiceRequestServiceOrder struct {
	ID               string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	ServiceRequestID string    `gorm:"type:varchar(36);not null;index" json:"serviceRequestId"`
	ServiceOrderID   string    `gorm:"type:varchar(36);not null;index" json:"serviceOrderId"`
	CreatedAt        time.Time `json:"createdAt"`
}

func (l *ServiceRequestServiceOrder) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// ServiceRequestWorkOrder links a request to a contractor work order.
type ServiceRequestWorkOrder struct {
	ID               string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	ServiceRequestID string    `gorm:"type:varchar(36);not null;index" json:"serviceRequestId"`
	WorkOrderID      string    `gorm:"type:varchar(36);not null;index" json:"workOrderId"`
	CreatedAt        time.Time `json:"createdAt"`
}

func (l *ServiceRequestWorkOrder) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
