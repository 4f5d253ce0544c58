package repository

import (
	"schichtplan-backend/internal/model"

	"gorm.io/gorm"
)

type CycleRepository interface {
	GetAll() ([]model.ShiftCycle, error)
	GetByID(id uint) (*model.ShiftCycle, error)
	Create(cycle *model.ShiftCycle) error
	Update(cycle *model.ShiftCycle) error
	Delete(id uint) error
	CountAssignments(cycleID uint) (int64, error)
}

type cycleRepository struct {
	db *gorm.DB
}

func NewCycleRepository(db *gorm.DB) CycleRepository {
	return &cycleRepository{db}
}

func (r *cycleRepository) GetAll() ([]model.ShiftCycle, error) {
	var cycles []model.ShiftCycle
	err := r.db.Order("name asc").Find(&cycles).Error
	return cycles, err
}

func (r *cycleRepository) GetByID(id uint) (*model.ShiftCycle, error) {
	var cycle model.ShiftCycle
	err := r.db.First(&cycle, id).Error
	return &cycle, err
}

func (r *cycleRepository) Create(cycle *model.ShiftCycle) error {
	return r.db.Create(cycle).Error
}

func (r *cycleRepository) Update(cycle *model.ShiftCycle) error {
	return r.db.Save(cycle).Error
}

func (r *cycleRepository) Delete(id uint) error {
	return r.db.Delete(&model.ShiftCycle{}, id).Error
}

func (r *cycleRepository) CountAssignments(cycleID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.CycleAssignment{}).Where("cycle_id = ?", cycleID).Count(&count).Error
	return count, err
}
