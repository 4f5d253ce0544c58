package model

import "gorm.io/gorm"

type Employee struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null"`
	PersonnelNo string `json:"personnel_no" gorm:"uniqueIndex;size:32;not null"`
	Email       string `json:"email"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`

	// Relations
	Groups []Group `json:"groups,omitempty" gorm:"many2many:group_members;"`
}
