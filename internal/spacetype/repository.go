package spacetype

import "gorm.io/gorm"

// Repository wraps data access for space types.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) ListAll() ([]SpaceType, error) {
	var types []SpaceType
	err := r.DB.Find(&types).Error
	return types, err
}

func (r *Repository) FindByID(id string) (*SpaceType, error) {
	var t SpaceType
	if err := r.DB.First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repository) Create(t *SpaceType) error {
	return r.DB.Create(t).Error
}
