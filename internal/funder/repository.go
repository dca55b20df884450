package funder

import "gorm.io/gorm"

// Repository wraps data access for funders.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) ListAll() ([]Funder, error) {
	var funders []Funder
	err := r.DB.Find(&funders).Error
	return funders, err
}

func (r *Repository) FindByID(id string) (*Funder, error) {
	var f Funder
	if err := r.DB.First(&f, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *Repository) Create(f *Funder) error {
	return r.DB.Create(f).Error
}

func (r *Repository) Update(f *Funder) error {
	return r.DB.Save(f).Error
}

func (r *Repository) DeleteByID(id string) error {
	res := r.DB.Delete(&Funder{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
