package repository

import (
	"schichtplan-backend/internal/model"

	"gorm.io/gorm"
)

type OvertimeRepository interface {
	Create(entry *model.OvertimeEntry) error
	Find(employeeID *uint, from, to string) ([]model.OvertimeEntry, error)
	Delete(id uint) error
}

type overtimeRepository struct {
	db *gorm.DB
}

func NewOvertimeRepository(db *gorm.DB) OvertimeRepository {
	return &overtimeRepository{db}
}

func (r *overtimeRepository) Create(entry *model.OvertimeEntry) error {
	return r.db.Create(entry).Error
}

func (r *overtimeRepository) Find(employeeID *uint, from, to string) ([]model.OvertimeEntry, error) {
	var list []model.OvertimeEntry
	query := r.db.Order("date asc")
	if employeeID != nil {
		query = query.Where("employee_id = ?", *employeeID)
	}
	if from != "" {
		query = query.Where("date >= ?", from)
	}
	if to != "" {
		query = query.Where("date <= ?", to)
	}
	err := query.Find(&list).Error
	return list, err
}

func (r *overtimeRepository) Delete(id uint) error {
	return r.db.Delete(&model.OvertimeEntry{}, id).Error
}
