package repository

import (
	"schichtplan-backend/internal/model"

	"gorm.io/gorm"
)

type AbsenceRepository interface {
	Create(absence *model.Absence) error
	CreateMany(absences []model.Absence) error
	GetByID(id uint) (*model.Absence, error)
	Find(employeeID *uint, kind, from, to string) ([]model.Absence, error)
	Update(absence *model.Absence) error
	Delete(id uint) error
}

type absenceRepository struct {
	db *gorm.DB
}

func NewAbsenceRepository(db *gorm.DB) AbsenceRepository {
	return &absenceRepository{db}
}

func (r *absenceRepository) Create(absence *model.Absence) error {
	return r.db.Create(absence).Error
}

func (r *absenceRepository) CreateMany(absences []model.Absence) error {
	if len(absences) == 0 {
		return nil
	}
	return r.db.Create(&absences).Error
}

func (r *absenceRepository) GetByID(id uint) (*model.Absence, error) {
	var absence model.Absence
	err := r.db.First(&absence, id).Error
	return &absence, err
}

func (r *absenceRepository) Find(employeeID *uint, kind, from, to string) ([]model.Absence, error) {
	var list []model.Absence
	query := r.db.Order("date asc")
	if employeeID != nil {
		query = query.Where("employee_id = ?", *employeeID)
	}
	if kind != "" {
		query = query.Where("kind = ?", kind)
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

func (r *absenceRepository) Update(absence *model.Absence) error {
	return r.db.Save(absence).Error
}

func (r *absenceRepository) Delete(id uint) error {
	return r.db.Delete(&model.Absence{}, id).Error
}
