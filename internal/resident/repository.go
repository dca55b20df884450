package resident

import "gorm.io/gorm"

// Repository wraps data access for residents.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) ListAll() ([]Resident, error) {
	var residents []Resident
	err := r.DB.Find(&residents).Error
	return residents, err
}

func (r *Repository) FindByID(id string) (*Resident, error) {
	var res Resident
	if err := r.DB.First(&res, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *Repository) Create(res *Resident) error {
	return r.DB.Create(res).Error
}

func (r *Repository) Update(res *Resident) error {
	return r.DB.Save(res).Error
}

func (r *Repository) DeleteByID(id string) error {
	res := r.DB.Delete(&Resident{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
