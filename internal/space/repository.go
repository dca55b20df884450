package space

import "gorm.io/gorm"

// Repository wraps data access for spaces.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) ListAll() ([]Space, error) {
	var spaces []Space
	err := r.DB.Find(&spaces).Error
	return spaces, err
}

func (r *Repository) ListBySite(siteID string) ([]Space, error) {
	var spaces []Space
	err := r.DB.Where("site_id = ?", siteID).Find(&spaces).Error
	return spaces, err
}

func (r *Repository) FindByID(id string) (*Space, error) {
	var s Space
	if err := r.DB.First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) Create(s *Space) error {
	return r.DB.Create(s).Error
}

func (r *Repository) Update(s *Space) error {
	return r.DB.Save(s).Error
}

func (r *Repository) DeleteByID(id string) error {
	res := r.DB.Delete(&Space{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
