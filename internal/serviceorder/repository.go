package serviceorder

import "gorm.io/gorm"

// Repository wraps data access for service orders.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) ListAll() ([]ServiceOrder, error) {
	var orders []ServiceOrder
	err := r.DB.Find(&orders).Error
	return orders, err
}

func (r *Repository) ListByStatus(status string) ([]ServiceOrder, error) {
	var orders []ServiceOrder
	err := r.DB.Where("status = ?", status).Find(&orders).Error
	return orders, err
}

func (r *Repository) ListByAssignedStaff(staffID string) ([]ServiceOrder, error) {
	var orders []ServiceOrder
	err := r.DB.Where("assigned_staff_id = ?", staffID).Find(&orders).Error
	return orders, err
}

func (r *Repository) FindByID(id string) (*ServiceOrder, error) {
	var o ServiceOrder
	if err := r.DB.First(&o, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repository) Create(o *ServiceOrder) error {
	return r.DB.Create(o).Error
}

func (r *Repository) Update(o *ServiceOrder) error {
	return r.DB.Save(o).Error
}

func (r *Repository) DeleteByID(id string) error {
	res := r.DB.Delete(&ServiceOrder{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
