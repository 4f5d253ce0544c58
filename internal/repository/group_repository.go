package repository

import (
	"schichtplan-backend/internal/model"

	"gorm.io/gorm"
)

type GroupRepository interface {
	GetAll() ([]model.Group, error)
	GetByID(id uint) (*model.Group, error)
	Create(group *model.Group) error
	Update(group *model.Group) error
	Delete(id uint) error
	MemberIDs(groupID uint) ([]uint, error)
	SetMembers(groupID uint, employeeIDs []uint) error
}

type groupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db}
}

func (r *groupRepository) GetAll() ([]model.Group, error) {
	var groups []model.Group
	err := r.db.Order("name asc").Find(&groups).Error
	return groups, err
}

func (r *groupRepository) GetByID(id uint) (*model.Group, error) {
	var group model.Group
	err := r.db.Preload("Employees").First(&group, id).Error
	return &group, err
}

func (r *groupRepository) Create(group *model.Group) error {
	return r.db.Create(group).Error
}

func (r *groupRepository) Update(group *model.Group) error {
	return r.db.Omit("Employees").Save(group).Error
}

func (r *groupRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Group{Model: gorm.Model{ID: id}}).Association("Employees").Clear(); err != nil {
			return err
		}
		return tx.Delete(&model.Group{}, id).Error
	})
}

func (r *groupRepository) MemberIDs(groupID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Table("group_members").Where("group_id = ?", groupID).Pluck("employee_id", &ids).Error
	return ids, err
}

// SetMembers replaces the membership list of a group.
func (r *groupRepository) SetMembers(groupID uint, employeeIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var group model.Group
		if err := tx.First(&group, groupID).Error; err != nil {
			return err
		}
		if len(employeeIDs) == 0 {
			return tx.Model(&group).Association("Employees").Clear()
		}
		var employees []model.Employee
		if err := tx.Where("id IN ?", employeeIDs).Find(&employees).Error; err != nil {
			return err
		}
		return tx.Model(&group).Association("Employees").Replace(employees)
	})
}
