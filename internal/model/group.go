package model

import "gorm.io/gorm"

type Group struct {
	gorm.Model
	Name      string     `json:"name" gorm:"uniqueIndex;size:64;not null"`
	Employees []Employee `json:"employees,omitempty" gorm:"many2many:group_members;"`
}
