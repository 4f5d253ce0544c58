package usecase

import (
	"errors"
	"schichtplan-backend/internal/model"
	"schichtplan-backend/internal/scheduling"

	"gorm.io/gorm"
)

func toCycle(c model.ShiftCycle) (scheduling.ShiftCycle, error) {
	cells := make([]scheduling.Slot, len(c.Pattern))
	for i, id := range c.Pattern {
		cells[i] = scheduling.SlotFromPtr(id)
	}
	return scheduling.NewShiftCycle(c.ID, c.Name, c.WeekCount, cells)
}

func toAssignment(a model.CycleAssignment) (scheduling.Assignment, error) {
	start, err := scheduling.ParseDate(a.StartDate)
	if err != nil {
		return scheduling.Assignment{}, err
	}
	return scheduling.Assignment{ID: a.ID, EmployeeID: a.EmployeeID, CycleID: a.CycleID, StartDate: start}, nil
}

func toException(e model.CycleException) (scheduling.Exception, error) {
	d, err := scheduling.ParseDate(e.Date)
	if err != nil {
		return scheduling.Exception{}, err
	}
	return scheduling.Exception{
		ID:           e.ID,
		EmployeeID:   e.EmployeeID,
		AssignmentID: e.AssignmentID,
		Date:         d,
		Shift:        scheduling.SlotFromPtr(e.ShiftID),
	}, nil
}

func toRequirement(r model.StaffingRequirement) scheduling.Requirement {
	return scheduling.Requirement{ShiftID: r.ShiftID, Weekday: r.Weekday, GroupID: r.GroupID, Min: r.Min, Max: r.Max}
}

func toSpecialRequirement(r model.SpecialStaffingRequirement) (scheduling.SpecialRequirement, error) {
	d, err := scheduling.ParseDate(r.Date)
	if err != nil {
		return scheduling.SpecialRequirement{}, err
	}
	return scheduling.SpecialRequirement{ShiftID: r.ShiftID, Date: d, GroupID: r.GroupID, Min: r.Min, Max: r.Max}, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// notFound turns gorm.ErrRecordNotFound into a NotFoundError and passes other errors through.
func notFound(err error, kind string, id uint) error {
	if isNotFound(err) {
		return &scheduling.NotFoundError{Kind: kind, ID: id}
	}
	return err
}
