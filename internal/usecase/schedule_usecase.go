package usecase

import (
	"fmt"
	"schichtplan-backend/internal/model"
	"schichtplan-backend/internal/repository"
	"schichtplan-backend/internal/scheduling"
	"time"

	"go.uber.org/zap"
)

// ScheduleUsecase loads cycles, assignments and exceptions and resolves shifts.
type ScheduleUsecase struct {
	cycles       repository.CycleRepository
	assignments  repository.AssignmentRepository
	exceptions   repository.ExceptionRepository
	employees    repository.EmployeeRepository
	maxRangeDays int
	log          *zap.Logger
}

func NewScheduleUsecase(
	cycles repository.CycleRepository,
	assignments repository.AssignmentRepository,
	exceptions repository.ExceptionRepository,
	employees repository.EmployeeRepository,
	maxRangeDays int,
	log *zap.Logger,
) *ScheduleUsecase {
	return &ScheduleUsecase{
		cycles:       cycles,
		assignments:  assignments,
		exceptions:   exceptions,
		employees:    employees,
		maxRangeDays: maxRangeDays,
		log:          log,
	}
}

// DaySlot is one row of an employee's schedule.
type DaySlot struct {
	Date       string          `json:"date"`
	Weekday    int             `json:"weekday"`
	Shift      scheduling.Slot `json:"shift_id"`
	Overridden bool            `json:"overridden"`
}

// CheckRange validates an inclusive date range against the configured maximum.
func (u *ScheduleUsecase) CheckRange(from, to time.Time) error {
	if to.Before(from) {
		return &scheduling.ValidationError{Field: "to", Reason: "must not precede from"}
	}
	if days := scheduling.DaysBetween(from, to) + 1; days > u.maxRangeDays {
		return &scheduling.ValidationError{Field: "to", Reason: fmt.Sprintf("range of %d days exceeds the maximum of %d", days, u.maxRangeDays)}
	}
	return nil
}

// LoadRoster fetches everything needed to resolve dates in [from, to] once.
// Rows that fail validation are logged and skipped, so references to them resolve
// to no shift.
func (u *ScheduleUsecase) LoadRoster(from, to time.Time) (*scheduling.Roster, error) {
	cycleRows, err := u.cycles.GetAll()
	if err != nil {
		return nil, fmt.Errorf("loading cycles: %w", err)
	}
	cycles := make([]scheduling.ShiftCycle, 0, len(cycleRows))
	for _, row := range cycleRows {
		c, err := toCycle(row)
		if err != nil {
			u.log.Warn("skipping invalid cycle", zap.Uint("cycle_id", row.ID), zap.Error(err))
			continue
		}
		cycles = append(cycles, c)
	}

	assignmentRows, err := u.assignments.GetAll()
	if err != nil {
		return nil, fmt.Errorf("loading assignments: %w", err)
	}
	assignments := make([]scheduling.Assignment, 0, len(assignmentRows))
	for _, row := range assignmentRows {
		a, err := toAssignment(row)
		if err != nil {
			u.log.Warn("skipping assignment with bad start date", zap.Uint("employee_id", row.EmployeeID), zap.Error(err))
			continue
		}
		assignments = append(assignments, a)
	}

	exceptionRows, err := u.exceptions.Find(repository.ExceptionFilter{
		From: scheduling.FormatDate(from),
		To:   scheduling.FormatDate(to),
	})
	if err != nil {
		return nil, fmt.Errorf("loading exceptions: %w", err)
	}
	exceptions := make([]scheduling.Exception, 0, len(exceptionRows))
	for _, row := range exceptionRows {
		e, err := toException(row)
		if err != nil {
			u.log.Warn("skipping exception with bad date", zap.Uint("exception_id", row.ID), zap.Error(err))
			continue
		}
		exceptions = append(exceptions, e)
	}

	return scheduling.NewRoster(scheduling.NewCatalog(cycles...), assignments, exceptions), nil
}

// ResolveShift returns the effective shift of one employee on date.
func (u *ScheduleUsecase) ResolveShift(employeeID uint, date time.Time) (scheduling.Resolved, error) {
	if _, err := u.employees.FindByID(employeeID); err != nil {
		return scheduling.Resolved{}, notFound(err, "employee", employeeID)
	}
	roster, err := u.LoadRoster(date, date)
	if err != nil {
		return scheduling.Resolved{}, err
	}
	res, err := roster.ResolveShift(employeeID, date)
	if err != nil {
		u.log.Warn("dangling reference during resolution", zap.Uint("employee_id", employeeID), zap.Error(err))
	}
	return res, nil
}

// EmployeeSchedule resolves every date of [from, to] for one employee.
func (u *ScheduleUsecase) EmployeeSchedule(employeeID uint, from, to time.Time) ([]DaySlot, error) {
	if err := u.CheckRange(from, to); err != nil {
		return nil, err
	}
	if _, err := u.employees.FindByID(employeeID); err != nil {
		return nil, notFound(err, "employee", employeeID)
	}
	roster, err := u.LoadRoster(from, to)
	if err != nil {
		return nil, err
	}

	dates := scheduling.DateRange(from, to)
	out := make([]DaySlot, 0, len(dates))
	warned := false
	for _, d := range dates {
		res, err := roster.ResolveShift(employeeID, d)
		if err != nil && !warned {
			u.log.Warn("dangling reference during resolution", zap.Uint("employee_id", employeeID), zap.Error(err))
			warned = true
		}
		out = append(out, DaySlot{
			Date:       scheduling.FormatDate(d),
			Weekday:    scheduling.Weekday(d),
			Shift:      res.Slot,
			Overridden: res.Overridden,
		})
	}
	return out, nil
}

// SetAssignment creates or replaces the employee's cycle assignment.
func (u *ScheduleUsecase) SetAssignment(employeeID, cycleID uint, startDate string) (*model.CycleAssignment, error) {
	start, err := scheduling.ParseDate(startDate)
	if err != nil {
		return nil, err
	}
	if _, err := u.employees.FindByID(employeeID); err != nil {
		return nil, notFound(err, "employee", employeeID)
	}
	if _, err := u.cycles.GetByID(cycleID); err != nil {
		return nil, notFound(err, "cycle", cycleID)
	}

	a := &model.CycleAssignment{
		EmployeeID: employeeID,
		CycleID:    cycleID,
		StartDate:  scheduling.FormatDate(start),
	}
	if err := u.assignments.Set(a); err != nil {
		return nil, fmt.Errorf("saving assignment: %w", err)
	}
	u.log.Info("cycle assigned",
		zap.Uint("employee_id", employeeID),
		zap.Uint("cycle_id", cycleID),
		zap.String("start_date", a.StartDate))
	return a, nil
}

// RemoveAssignment drops the employee's recurring schedule. Exceptions stay in the
// table and become inert.
func (u *ScheduleUsecase) RemoveAssignment(employeeID uint) error {
	if _, err := u.assignments.GetByEmployee(employeeID); err != nil {
		return notFound(err, "assignment for employee", employeeID)
	}
	return u.assignments.Remove(employeeID)
}

// ExceptionInput is the wire form of an exception: Type 0 = free day, >0 = shift id.
type ExceptionInput struct {
	EmployeeID   uint   `json:"employee_id"`
	AssignmentID uint   `json:"assignment_id"`
	Date         string `json:"date"`
	Type         int    `json:"type"`
	Note         string `json:"note"`
}

// SetException validates and upserts one exception. The referenced assignment must
// exist and belong to the employee.
func (u *ScheduleUsecase) SetException(in ExceptionInput) (*model.CycleException, error) {
	d, err := scheduling.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}
	slot, err := scheduling.ExceptionFromType(in.Type)
	if err != nil {
		return nil, err
	}

	a, err := u.assignments.GetByID(in.AssignmentID)
	if err != nil {
		if isNotFound(err) {
			return nil, &scheduling.ValidationError{Field: "assignment_id", Reason: fmt.Sprintf("assignment %d does not exist", in.AssignmentID)}
		}
		return nil, err
	}
	if a.EmployeeID != in.EmployeeID {
		return nil, &scheduling.ValidationError{Field: "assignment_id", Reason: fmt.Sprintf("assignment %d does not belong to employee %d", a.ID, in.EmployeeID)}
	}

	ex := &model.CycleException{
		EmployeeID:   in.EmployeeID,
		AssignmentID: in.AssignmentID,
		Date:         scheduling.FormatDate(d),
		ShiftID:      slot.Ptr(),
		Note:         in.Note,
	}
	if err := u.exceptions.Set(ex); err != nil {
		return nil, fmt.Errorf("saving exception: %w", err)
	}
	return ex, nil
}

// SetExceptions applies a batch of exceptions. Validation is all-or-nothing; a later
// item for the same (employee, date) replaces an earlier one.
func (u *ScheduleUsecase) SetExceptions(inputs []ExceptionInput) (int, error) {
	rows := make([]model.CycleException, 0, len(inputs))
	position := make(map[string]int)
	owners := make(map[uint]uint)
	for i, in := range inputs {
		d, err := scheduling.ParseDate(in.Date)
		if err != nil {
			return 0, fmt.Errorf("item %d: %w", i, err)
		}
		slot, err := scheduling.ExceptionFromType(in.Type)
		if err != nil {
			return 0, fmt.Errorf("item %d: %w", i, err)
		}
		owner, ok := owners[in.AssignmentID]
		if !ok {
			a, err := u.assignments.GetByID(in.AssignmentID)
			if err != nil {
				if isNotFound(err) {
					return 0, &scheduling.ValidationError{Field: fmt.Sprintf("items[%d].assignment_id", i), Reason: fmt.Sprintf("assignment %d does not exist", in.AssignmentID)}
				}
				return 0, err
			}
			owner = a.EmployeeID
			owners[in.AssignmentID] = owner
		}
		if owner != in.EmployeeID {
			return 0, &scheduling.ValidationError{Field: fmt.Sprintf("items[%d].assignment_id", i), Reason: "assignment belongs to another employee"}
		}
		row := model.CycleException{
			EmployeeID:   in.EmployeeID,
			AssignmentID: in.AssignmentID,
			Date:         scheduling.FormatDate(d),
			ShiftID:      slot.Ptr(),
			Note:         in.Note,
		}
		key := fmt.Sprintf("%d/%s", row.EmployeeID, row.Date)
		if at, dup := position[key]; dup {
			rows[at] = row
			continue
		}
		position[key] = len(rows)
		rows = append(rows, row)
	}
	if err := u.exceptions.SetBatch(rows); err != nil {
		return 0, fmt.Errorf("saving exceptions: %w", err)
	}
	return len(rows), nil
}
