package repository

import (
	"schichtplan-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AssignmentRepository interface {
	GetAll() ([]model.CycleAssignment, error)
	GetByID(id uint) (*model.CycleAssignment, error)
	GetByEmployee(employeeID uint) (*model.CycleAssignment, error)
	Set(assignment *model.CycleAssignment) error
	Remove(employeeID uint) error
}

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db}
}

func (r *assignmentRepository) GetAll() ([]model.CycleAssignment, error) {
	var list []model.CycleAssignment
	err := r.db.Order("employee_id asc").Find(&list).Error
	return list, err
}

func (r *assignmentRepository) GetByID(id uint) (*model.CycleAssignment, error) {
	var a model.CycleAssignment
	err := r.db.First(&a, id).Error
	return &a, err
}

func (r *assignmentRepository) GetByEmployee(employeeID uint) (*model.CycleAssignment, error) {
	var a model.CycleAssignment
	// Find + Limit(1) keeps GORM from logging "record not found" for unassigned employees
	err := r.db.Preload("Cycle").Where("employee_id = ?", employeeID).Limit(1).Find(&a).Error
	if err != nil {
		return nil, err
	}
	if a.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &a, nil
}

// Set creates the employee's assignment or updates the existing row in place, so
// its id (and the exceptions referencing it) survive a cycle change. The lookup
// locks the live row and the unique active_employee_id index rejects a second
// concurrent insert.
func (r *assignmentRepository) Set(assignment *model.CycleAssignment) error {
	active := assignment.EmployeeID
	assignment.ActiveEmployeeID = &active

	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing model.CycleAssignment
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("employee_id = ?", assignment.EmployeeID).Limit(1).Find(&existing).Error
		if err != nil {
			return err
		}

		if existing.ID != 0 {
			assignment.ID = existing.ID
			assignment.CreatedAt = existing.CreatedAt
			return tx.Model(&existing).Updates(map[string]interface{}{
				"cycle_id":           assignment.CycleID,
				"start_date":         assignment.StartDate,
				"active_employee_id": active,
			}).Error
		}

		return tx.Create(assignment).Error
	})
}

// Remove soft-deletes the assignment and releases its active_employee_id. The row
// keeps its id, so a later Set always gets a fresh one and exceptions made for the
// removed assignment stay inert.
func (r *assignmentRepository) Remove(employeeID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.CycleAssignment{}).
			Where("employee_id = ?", employeeID).
			Update("active_employee_id", nil).Error
		if err != nil {
			return err
		}
		return tx.Where("employee_id = ?", employeeID).Delete(&model.CycleAssignment{}).Error
	})
}
