package repository

import (
	"schichtplan-backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) GetByUsername(username string) (model.User, error) {
	var user model.User
	err := r.db.Where("username = ?", username).First(&user).Error
	return user, err
}

func (r *UserRepository) GetByID(id uint) (model.User, error) {
	var user model.User
	err := r.db.First(&user, id).Error
	return user, err
}

// Upsert creates the user or refreshes name, password and role of an existing one.
func (r *UserRepository) Upsert(user *model.User) error {
	var existing model.User
	if err := r.db.Where("username = ?", user.Username).Limit(1).Find(&existing).Error; err != nil {
		return err
	}
	if existing.ID == 0 {
		return r.db.Create(user).Error
	}
	user.ID = existing.ID
	return r.db.Model(&existing).Updates(map[string]interface{}{
		"name":     user.Name,
		"password": user.Password,
		"role":     user.Role,
	}).Error
}
