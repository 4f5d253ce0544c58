package model

import "gorm.io/gorm"

// ShiftCycle ("Schichtmodell"). Pattern holds WeekCount*7 cells, index
// week*7+weekday (Monday=0); null is a free cell.
type ShiftCycle struct {
	gorm.Model
	Name      string  `json:"name" gorm:"not null"`
	WeekCount int     `json:"week_count"`
	Pattern   []*uint `json:"pattern" gorm:"serializer:json;type:text"`
}

type CycleAssignment struct {
	gorm.Model
	EmployeeID uint   `json:"employee_id" gorm:"index;not null"`
	CycleID    uint   `json:"cycle_id" gorm:"not null"`
	StartDate  string `json:"start_date" gorm:"size:10;not null"` // YYYY-MM-DD, phase 0

	// ActiveEmployeeID mirrors EmployeeID on the live row and is NULL once removed,
	// so the unique index allows one live row per employee next to any number of
	// retired ones.
	ActiveEmployeeID *uint `json:"-" gorm:"uniqueIndex"`

	// Relations
	Cycle ShiftCycle `gorm:"foreignKey:CycleID" json:"cycle,omitempty"`
}

// CycleException overrides the cycle for one employee on one date. ShiftID nil is
// a free day.
type CycleException struct {
	gorm.Model
	EmployeeID   uint   `json:"employee_id" gorm:"uniqueIndex:idx_exception_employee_date;not null"`
	AssignmentID uint   `json:"assignment_id" gorm:"index;not null"`
	Date         string `json:"date" gorm:"uniqueIndex:idx_exception_employee_date;size:10;not null"`
	ShiftID      *uint  `json:"shift_id"`
	Note         string `json:"note"`
}
