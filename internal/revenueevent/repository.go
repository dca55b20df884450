package revenueevent

import "gorm.io/gorm"

// Repository wraps data access for revenue events.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instantiates a repository. Pass a transaction handle to run
// writes inside an enclosing transaction.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// CreateInBatch inserts all rows at once (no-op when empty).
func (r *Repository) CreateInBatch(rows []*RevenueEvent) error {
	if len(rows) == 0 {
		return nil
	}
	return r.DB.Create(rows).Error
}

func (r *Repository) ListAll() ([]RevenueEvent, error) {
	var rows []RevenueEvent
	err := r.DB.Order("event_date ASC").Find(&rows).Error
	return rows, err
}

func (r *Repository) ListByLease(leaseID string) ([]RevenueEvent, error) {
	var rows []RevenueEvent
	err := r.DB.Where("lease_id = ?", leaseID).Order("event_date ASC").Find(&rows).Error
	return rows, err
}

// DeleteByLease removes every revenue event of a lease. Used when funding is
// recomputed.
func (r *Repository) DeleteByLease(leaseID string) error {
	return r.DB.Where("lease_id = ?", leaseID).Delete(&RevenueEvent{}).Error
}
