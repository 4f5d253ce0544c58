package model

import "gorm.io/gorm"

// StaffingRequirement ("Personalbedarf") per weekday, Monday=0. Max 0 = no upper bound.
type StaffingRequirement struct {
	gorm.Model
	ShiftID uint  `json:"shift_id" gorm:"index;not null"`
	Weekday int   `json:"weekday"`
	GroupID *uint `json:"group_id" gorm:"index"`
	Min     int   `json:"min"`
	Max     int   `json:"max"`

	Shift ShiftType `gorm:"foreignKey:ShiftID" json:"shift,omitempty"`
}

// SpecialStaffingRequirement overrides the weekly requirement on one date.
type SpecialStaffingRequirement struct {
	gorm.Model
	ShiftID uint   `json:"shift_id" gorm:"index;not null"`
	Date    string `json:"date" gorm:"index;size:10;not null"`
	GroupID *uint  `json:"group_id" gorm:"index"`
	Min     int    `json:"min"`
	Max     int    `json:"max"`

	Shift ShiftType `gorm:"foreignKey:ShiftID" json:"shift,omitempty"`
}
