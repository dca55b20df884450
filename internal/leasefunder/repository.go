package leasefunder

import "gorm.io/gorm"

// Repository wraps data access for lease funding rows.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instantiates a repository. Pass a transaction handle to run
// writes inside an enclosing transaction.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// CreateInBatch inserts all rows at once (no-op when empty).
func (r *Repository) CreateInBatch(rows []*LeaseFunder) error {
	if len(rows) == 0 {
		return nil
	}
	return r.DB.Create(rows).Error
}

func (r *Repository) ListByLease(leaseID string) ([]LeaseFunder, error) {
	var rows []LeaseFunder
	err := r.DB.Where("lease_id = ?", leaseID).Find(&rows).Error
	return rows, err
}

// DeleteByLease removes every funding row of a lease. Used when funding is
// recomputed.
func (r *Repository) DeleteByLease(leaseID string) error {
	return r.DB.Where("lease_id = ?", leaseID).Delete(&LeaseFunder{}).Error
}
