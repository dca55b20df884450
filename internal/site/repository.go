package site

import "gorm.io/gorm"

// Repository wraps data access for sites.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) ListAll() ([]Site, error) {
	var sites []Site
	err := r.DB.Find(&sites).Error
	return sites, err
}

func (r *Repository) FindByID(id string) (*Site, error) {
	var s Site
	if err := r.DB.First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) Create(s *Site) error {
	return r.DB.Create(s).Error
}

func (r *Repository) Update(s *Site) error {
	return r.DB.Save(s).Error
}

// DeleteByID removes a site; returns gorm.ErrRecordNotFound when nothing matched.
func (r *Repository) DeleteByID(id string) error {
	res := r.DB.Delete(&Site{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
