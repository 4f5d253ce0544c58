package repository

import (
	"schichtplan-backend/internal/model"

	"gorm.io/gorm"
)

type RequirementRepository interface {
	GetWeekly() ([]model.StaffingRequirement, error)
	GetWeeklyByID(id uint) (*model.StaffingRequirement, error)
	SetWeekly(req *model.StaffingRequirement) error
	DeleteWeekly(id uint) error

	GetSpecial(from, to string) ([]model.SpecialStaffingRequirement, error)
	GetSpecialByID(id uint) (*model.SpecialStaffingRequirement, error)
	SetSpecial(req *model.SpecialStaffingRequirement) error
	DeleteSpecial(id uint) error
}

type requirementRepository struct {
	db *gorm.DB
}

func NewRequirementRepository(db *gorm.DB) RequirementRepository {
	return &requirementRepository{db}
}

// groupScope matches a nullable group_id; "= NULL" never matches in SQL.
func groupScope(groupID *uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if groupID == nil {
			return db.Where("group_id IS NULL")
		}
		return db.Where("group_id = ?", *groupID)
	}
}

func (r *requirementRepository) GetWeekly() ([]model.StaffingRequirement, error) {
	var list []model.StaffingRequirement
	err := r.db.Preload("Shift").Order("weekday asc").Order("shift_id asc").Find(&list).Error
	return list, err
}

func (r *requirementRepository) GetWeeklyByID(id uint) (*model.StaffingRequirement, error) {
	var req model.StaffingRequirement
	err := r.db.First(&req, id).Error
	return &req, err
}

// SetWeekly upserts on (shift, weekday, group).
func (r *requirementRepository) SetWeekly(req *model.StaffingRequirement) error {
	var existing model.StaffingRequirement
	err := r.db.Scopes(groupScope(req.GroupID)).
		Where("shift_id = ? AND weekday = ?", req.ShiftID, req.Weekday).
		Limit(1).Find(&existing).Error
	if err != nil {
		return err
	}

	if existing.ID != 0 {
		existing.Min = req.Min
		existing.Max = req.Max
		if err := r.db.Save(&existing).Error; err != nil {
			return err
		}
		*req = existing
		return nil
	}
	return r.db.Create(req).Error
}

func (r *requirementRepository) DeleteWeekly(id uint) error {
	return r.db.Delete(&model.StaffingRequirement{}, id).Error
}

func (r *requirementRepository) GetSpecial(from, to string) ([]model.SpecialStaffingRequirement, error) {
	var list []model.SpecialStaffingRequirement
	query := r.db.Preload("Shift").Order("date asc").Order("shift_id asc")
	if from != "" {
		query = query.Where("date >= ?", from)
	}
	if to != "" {
		query = query.Where("date <= ?", to)
	}
	err := query.Find(&list).Error
	return list, err
}

func (r *requirementRepository) GetSpecialByID(id uint) (*model.SpecialStaffingRequirement, error) {
	var req model.SpecialStaffingRequirement
	err := r.db.First(&req, id).Error
	return &req, err
}

// SetSpecial upserts on (date, shift, group).
func (r *requirementRepository) SetSpecial(req *model.SpecialStaffingRequirement) error {
	var existing model.SpecialStaffingRequirement
	err := r.db.Scopes(groupScope(req.GroupID)).
		Where("shift_id = ? AND date = ?", req.ShiftID, req.Date).
		Limit(1).Find(&existing).Error
	if err != nil {
		return err
	}

	if existing.ID != 0 {
		existing.Min = req.Min
		existing.Max = req.Max
		if err := r.db.Save(&existing).Error; err != nil {
			return err
		}
		*req = existing
		return nil
	}
	return r.db.Create(req).Error
}

func (r *requirementRepository) DeleteSpecial(id uint) error {
	return r.db.Delete(&model.SpecialStaffingRequirement{}, id).Error
}
