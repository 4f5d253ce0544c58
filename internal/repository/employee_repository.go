package repository

import (
	"schichtplan-backend/internal/model"

	"gorm.io/gorm"
)

type EmployeeRepository interface {
	GetAll(search string) ([]model.Employee, error)
	GetActiveIDs() ([]uint, error)
	FindByID(id uint) (*model.Employee, error)
	FindByPersonnelNo(no string) (*model.Employee, error)
	Create(employee *model.Employee) error
	Update(employee *model.Employee) error
	Delete(id uint) error
	Count() (int64, error)
}

type employeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db}
}

func (r *employeeRepository) GetAll(search string) ([]model.Employee, error) {
	var employees []model.Employee
	query := r.db.Preload("Groups").Order("name asc")

	if search != "" {
		searchPattern := "%" + search + "%"
		query = query.Where("name LIKE ? OR personnel_no LIKE ?", searchPattern, searchPattern)
	}

	err := query.Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) GetActiveIDs() ([]uint, error) {
	var ids []uint
	err := r.db.Model(&model.Employee{}).Where("is_active = ?", true).Order("id asc").Pluck("id", &ids).Error
	return ids, err
}

func (r *employeeRepository) FindByID(id uint) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.Preload("Groups").First(&employee, id).Error
	return &employee, err
}

// FindByPersonnelNo returns nil, nil when no employee carries the number.
func (r *employeeRepository) FindByPersonnelNo(no string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.Where("personnel_no = ?", no).Limit(1).Find(&employee).Error
	if err != nil || employee.ID == 0 {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) Create(employee *model.Employee) error {
	return r.db.Create(employee).Error
}

func (r *employeeRepository) Update(employee *model.Employee) error {
	return r.db.Omit("Groups").Save(employee).Error
}

func (r *employeeRepository) Delete(id uint) error {
	return r.db.Delete(&model.Employee{}, id).Error
}

func (r *employeeRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Employee{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
