package repository

import (
	"errors"
	"schichtplan-backend/internal/model"

	"gorm.io/gorm"
)

type ShiftRepository interface {
	GetAll() ([]model.ShiftType, error)
	Create(shift *model.ShiftType) error
	Update(shift *model.ShiftType) error
	Delete(id uint) error
	GetByID(id uint) (*model.ShiftType, error)
	FindOrCreate(shortName, name string) (*model.ShiftType, error)
}

type shiftRepository struct {
	db *gorm.DB
}

func NewShiftRepository(db *gorm.DB) ShiftRepository {
	return &shiftRepository{db}
}

func (r *shiftRepository) GetAll() ([]model.ShiftType, error) {
	var shifts []model.ShiftType
	err := r.db.Order("short_name asc").Find(&shifts).Error
	return shifts, err
}

func (r *shiftRepository) Create(shift *model.ShiftType) error {
	return r.db.Create(shift).Error
}

func (r *shiftRepository) Update(shift *model.ShiftType) error {
	return r.db.Save(shift).Error
}

func (r *shiftRepository) Delete(id uint) error {
	return r.db.Delete(&model.ShiftType{}, id).Error
}

func (r *shiftRepository) GetByID(id uint) (*model.ShiftType, error) {
	var shift model.ShiftType
	err := r.db.First(&shift, id).Error
	return &shift, err
}

func (r *shiftRepository) FindOrCreate(shortName, name string) (*model.ShiftType, error) {
	var shift model.ShiftType
	err := r.db.Where("short_name = ?", shortName).First(&shift).Error
	if err == nil {
		return &shift, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		newShift := model.ShiftType{
			Name:      name,
			ShortName: shortName,
		}
		if err := r.db.Create(&newShift).Error; err != nil {
			return nil, err
		}
		return &newShift, nil
	}

	return nil, err
}
