package workorder

import "gorm.io/gorm"

// Repository wraps data access for work orders.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) ListAll() ([]WorkOrder, error) {
	var orders []WorkOrder
	err := r.DB.Find(&orders).Error
	return orders, err
}

func (r *Repository) ListByStatus(status string) ([]WorkOrder, error) {
	var orders []WorkOrder
	err := r.DB.Where("status = ?", status).Find(&orders).Error
	return orders, err
}

func (r *Repository) FindByID(id string) (*WorkOrder, error) {
	var o WorkOrder
	if err := r.DB.First(&o, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repository) Create(o *WorkOrder) error {
	return r.DB.Create(o).Error
}

func (r *Repository) Update(o *WorkOrder) error {
	return r.DB.Save(o).Error
}

func (r *Repository) DeleteByID(id string) error {
	res := r.DB.Delete(&WorkOrder{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
