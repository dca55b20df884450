package lease

import "gorm.io/gorm"

// Repository wraps data access for leases.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) ListAll() ([]Lease, error) {
	var leases []Lease
	err := r.DB.Find(&leases).Error
	return leases, err
}

func (r *Repository) ListByResident(residentID string) ([]Lease, error) {
	var leases []Lease
	err := r.DB.Where("resident_id = ?", residentID).Find(&leases).Error
	return leases, err
}

func (r *Repository) FindByID(id string) (*Lease, error) {
	var l Lease
	if err := r.DB.First(&l, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *Repository) Create(l *Lease) error {
	return r.DB.Create(l).Error
}

func (r *Repository) Update(l *Lease) error {
	return r.DB.Save(l).Error
}
