package repository

import (
	"schichtplan-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ExceptionFilter narrows Find. Zero values mean "any".
type ExceptionFilter struct {
	EmployeeID *uint
	From       string // YYYY-MM-DD inclusive
	To         string
}

type ExceptionRepository interface {
	Find(filter ExceptionFilter) ([]model.CycleException, error)
	GetByID(id uint) (*model.CycleException, error)
	Set(exception *model.CycleException) error
	SetBatch(exceptions []model.CycleException) error
	Delete(id uint) error
}

type exceptionRepository struct {
	db *gorm.DB
}

func NewExceptionRepository(db *gorm.DB) ExceptionRepository {
	return &exceptionRepository{db}
}

func (r *exceptionRepository) Find(filter ExceptionFilter) ([]model.CycleException, error) {
	var list []model.CycleException
	query := r.db.Order("date asc").Order("employee_id asc")

	if filter.EmployeeID != nil {
		query = query.Where("employee_id = ?", *filter.EmployeeID)
	}
	if filter.From != "" {
		query = query.Where("date >= ?", filter.From)
	}
	if filter.To != "" {
		query = query.Where("date <= ?", filter.To)
	}

	err := query.Find(&list).Error
	return list, err
}

func (r *exceptionRepository) GetByID(id uint) (*model.CycleException, error) {
	var ex model.CycleException
	err := r.db.First(&ex, id).Error
	return &ex, err
}

// Set keeps at most one exception per (employee, date): an existing row, even a
// soft-deleted one, is overwritten and restored.
func (r *exceptionRepository) Set(exception *model.CycleException) error {
	var existing model.CycleException
	err := r.db.Unscoped().Where("employee_id = ? AND date = ?", exception.EmployeeID, exception.Date).Limit(1).Find(&existing).Error
	if err != nil {
		return err
	}

	if existing.ID != 0 {
		exception.ID = existing.ID
		return r.db.Unscoped().Model(&existing).Updates(map[string]interface{}{
			"assignment_id": exception.AssignmentID,
			"shift_id":      exception.ShiftID,
			"note":          exception.Note,
			"deleted_at":    nil,
		}).Error
	}

	return r.db.Create(exception).Error
}

func (r *exceptionRepository) SetBatch(exceptions []model.CycleException) error {
	if len(exceptions) == 0 {
		return nil
	}
	// Unique index on (employee_id, date)
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"assignment_id", "shift_id", "note", "updated_at", "deleted_at"}),
	}).Create(&exceptions).Error
}

func (r *exceptionRepository) Delete(id uint) error {
	return r.db.Delete(&model.CycleException{}, id).Error
}
