package scheduling

import "time"

// Assignment anchors an employee to a cycle. StartDate is phase 0 of week 0.
type Assignment struct {
	ID         uint
	EmployeeID uint
	CycleID    uint
	StartDate  time.Time
}

// WeekIndex returns floor(daysSinceStart/7) mod weekCount, always in [0, weekCount).
func WeekIndex(daysSinceStart, weekCount int) int {
	w := floorDiv(daysSinceStart, DaysPerWeek) % weekCount
	if w < 0 {
		w += weekCount
	}
	return w
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Resolve returns the cycle cell the assignment places on date. Dates before the
// anchor are not yet active and resolve to NoShift. The cycle must be valid.
func Resolve(a Assignment, cycle ShiftCycle, date time.Time) Slot {
	days := DaysBetween(a.StartDate, date)
	if days < 0 {
		return NoShift()
	}
	week := WeekIndex(days, cycle.WeekCount)
	return cycle.Pattern[week*DaysPerWeek+Weekday(date)]
}
