package model

import "gorm.io/gorm"

const (
	AbsenceSick     = "SICK"
	AbsenceVacation = "VACATION"
	AbsenceOther    = "OTHER"
)

type Absence struct {
	gorm.Model
	EmployeeID uint   `json:"employee_id" gorm:"index;not null"`
	Date       string `json:"date" gorm:"index;size:10;not null"`
	Kind       string `json:"kind" gorm:"size:16;not null"` // SICK/VACATION/OTHER
	Note       string `json:"note"`
}

type OvertimeEntry struct {
	gorm.Model
	EmployeeID uint    `json:"employee_id" gorm:"index;not null"`
	Date       string  `json:"date" gorm:"index;size:10;not null"`
	Hours      float64 `json:"hours"`
	Note       string  `json:"note"`
}
