package usecase

import (
	"fmt"
	"schichtplan-backend/internal/model"
	"schichtplan-backend/internal/repository"
	"schichtplan-backend/internal/scheduling"
)

// CycleUsecase guards writes to the cycle catalog.
type CycleUsecase struct {
	cycles repository.CycleRepository
	shifts repository.ShiftRepository
}

func NewCycleUsecase(cycles repository.CycleRepository, shifts repository.ShiftRepository) *CycleUsecase {
	return &CycleUsecase{cycles: cycles, shifts: shifts}
}

// CycleInput is the request body for creating or updating a cycle.
type CycleInput struct {
	Name      string  `json:"name"`
	WeekCount int     `json:"week_count"`
	Pattern   []*uint `json:"pattern"`
}

func (u *CycleUsecase) validate(in CycleInput) error {
	if in.Name == "" {
		return &scheduling.ValidationError{Field: "name", Reason: "is required"}
	}
	c, err := toCycle(model.ShiftCycle{Name: in.Name, WeekCount: in.WeekCount, Pattern: in.Pattern})
	if err != nil {
		return err
	}
	for _, id := range c.ShiftIDs() {
		if _, err := u.shifts.GetByID(id); err != nil {
			if isNotFound(err) {
				return &scheduling.ValidationError{Field: "pattern", Reason: fmt.Sprintf("unknown shift type %d", id)}
			}
			return err
		}
	}
	return nil
}

func (u *CycleUsecase) Create(in CycleInput) (*model.ShiftCycle, error) {
	if err := u.validate(in); err != nil {
		return nil, err
	}
	cycle := &model.ShiftCycle{Name: in.Name, WeekCount: in.WeekCount, Pattern: in.Pattern}
	if err := u.cycles.Create(cycle); err != nil {
		return nil, fmt.Errorf("creating cycle: %w", err)
	}
	return cycle, nil
}

func (u *CycleUsecase) Update(id uint, in CycleInput) (*model.ShiftCycle, error) {
	cycle, err := u.cycles.GetByID(id)
	if err != nil {
		return nil, notFound(err, "cycle", id)
	}
	if err := u.validate(in); err != nil {
		return nil, err
	}
	cycle.Name = in.Name
	cycle.WeekCount = in.WeekCount
	cycle.Pattern = in.Pattern
	if err := u.cycles.Update(cycle); err != nil {
		return nil, fmt.Errorf("updating cycle: %w", err)
	}
	return cycle, nil
}

// Delete refuses to remove a cycle that is still assigned.
func (u *CycleUsecase) Delete(id uint) error {
	if _, err := u.cycles.GetByID(id); err != nil {
		return notFound(err, "cycle", id)
	}
	count, err := u.cycles.CountAssignments(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return &scheduling.ValidationError{Field: "id", Reason: fmt.Sprintf("cycle is assigned to %d employees", count)}
	}
	return u.cycles.Delete(id)
}
