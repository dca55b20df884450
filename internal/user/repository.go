package user

import "gorm.io/gorm"

// Repository wraps data access for user accounts.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(u *User) error {
	return r.DB.Create(u).Error
}

func (r *Repository) FindByID(id string) (*User, error) {
	var u User
	if err := r.DB.First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) FindByUsername(username string) (*User, error) {
	var u User
	if err := r.DB.First(&u, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
