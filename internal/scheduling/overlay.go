package scheduling

import "time"

// Exception overrides the cycle for one employee on one date. A nil Shift is a
// free day.
type Exception struct {
	ID           uint
	EmployeeID   uint
	AssignmentID uint
	Date         time.Time
	Shift        Slot
}

// ExceptionFromType decodes the 0 = free day, >0 = shift id wire encoding.
func ExceptionFromType(t int) (Slot, error) {
	if t < 0 {
		return NoShift(), invalid("type", "must be 0 (free day) or a shift id, got %d", t)
	}
	if t == 0 {
		return NoShift(), nil
	}
	return ShiftOf(uint(t)), nil
}

// TypeOf encodes a slot back to the wire type.
func TypeOf(s Slot) int {
	id, ok := s.ShiftID()
	if !ok {
		return 0
	}
	return int(id)
}

// Apply overlays an exception on the base slot. Exceptions always win.
func Apply(base Slot, ex *Exception) Slot {
	if ex == nil {
		return base
	}
	return ex.Shift
}

// ExceptionIndex keys exceptions by (employee, date) for overlay lookups.
type ExceptionIndex map[exceptionKey]Exception

type exceptionKey struct {
	employeeID uint
	date       string
}

// IndexExceptions builds an index, dropping exceptions whose assignment is not the
// employee's current one. current maps employee id to the live assignment id.
func IndexExceptions(exceptions []Exception, current map[uint]uint) ExceptionIndex {
	idx := make(ExceptionIndex, len(exceptions))
	for _, ex := range exceptions {
		if live, ok := current[ex.EmployeeID]; !ok || live != ex.AssignmentID {
			continue
		}
		idx[exceptionKey{ex.EmployeeID, FormatDate(ex.Date)}] = ex
	}
	return idx
}

// Lookup returns the exception for (employee, date) or nil.
func (idx ExceptionIndex) Lookup(employeeID uint, date time.Time) *Exception {
	ex, ok := idx[exceptionKey{employeeID, FormatDate(date)}]
	if !ok {
		return nil
	}
	return &ex
}
