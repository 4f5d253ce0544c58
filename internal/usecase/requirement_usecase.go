package usecase

import (
	"fmt"
	"schichtplan-backend/internal/model"
	"schichtplan-backend/internal/repository"
	"schichtplan-backend/internal/scheduling"
)

// RequirementUsecase validates staffing bounds before they reach the store.
type RequirementUsecase struct {
	requirements repository.RequirementRepository
	shifts       repository.ShiftRepository
	groups       repository.GroupRepository
}

func NewRequirementUsecase(requirements repository.RequirementRepository, shifts repository.ShiftRepository, groups repository.GroupRepository) *RequirementUsecase {
	return &RequirementUsecase{requirements: requirements, shifts: shifts, groups: groups}
}

type RequirementInput struct {
	ShiftID uint   `json:"shift_id"`
	Weekday int    `json:"weekday"`
	Date    string `json:"date"`
	GroupID *uint  `json:"group_id"`
	Min     int    `json:"min"`
	Max     int    `json:"max"`
}

func (u *RequirementUsecase) references(shiftID uint, groupID *uint) error {
	if _, err := u.shifts.GetByID(shiftID); err != nil {
		if isNotFound(err) {
			return &scheduling.ValidationError{Field: "shift_id", Reason: fmt.Sprintf("unknown shift type %d", shiftID)}
		}
		return err
	}
	if groupID != nil {
		if _, err := u.groups.GetByID(*groupID); err != nil {
			if isNotFound(err) {
				return &scheduling.ValidationError{Field: "group_id", Reason: fmt.Sprintf("unknown group %d", *groupID)}
			}
			return err
		}
	}
	return nil
}

// SetWeekly upserts the bound for (shift, weekday, group).
func (u *RequirementUsecase) SetWeekly(in RequirementInput) (*model.StaffingRequirement, error) {
	if err := toRequirement(model.StaffingRequirement{ShiftID: in.ShiftID, Weekday: in.Weekday, GroupID: in.GroupID, Min: in.Min, Max: in.Max}).Validate(); err != nil {
		return nil, err
	}
	if err := u.references(in.ShiftID, in.GroupID); err != nil {
		return nil, err
	}

	req := &model.StaffingRequirement{ShiftID: in.ShiftID, Weekday: in.Weekday, GroupID: in.GroupID, Min: in.Min, Max: in.Max}
	if err := u.requirements.SetWeekly(req); err != nil {
		return nil, fmt.Errorf("saving requirement: %w", err)
	}
	return req, nil
}

// SetSpecial upserts the bound for (shift, date, group).
func (u *RequirementUsecase) SetSpecial(in RequirementInput) (*model.SpecialStaffingRequirement, error) {
	d, err := scheduling.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}
	core := scheduling.SpecialRequirement{ShiftID: in.ShiftID, Date: d, GroupID: in.GroupID, Min: in.Min, Max: in.Max}
	if err := core.Validate(); err != nil {
		return nil, err
	}
	if err := u.references(in.ShiftID, in.GroupID); err != nil {
		return nil, err
	}

	req := &model.SpecialStaffingRequirement{ShiftID: in.ShiftID, Date: scheduling.FormatDate(d), GroupID: in.GroupID, Min: in.Min, Max: in.Max}
	if err := u.requirements.SetSpecial(req); err != nil {
		return nil, fmt.Errorf("saving special requirement: %w", err)
	}
	return req, nil
}

func (u *RequirementUsecase) DeleteWeekly(id uint) error {
	if _, err := u.requirements.GetWeeklyByID(id); err != nil {
		return notFound(err, "requirement", id)
	}
	return u.requirements.DeleteWeekly(id)
}

func (u *RequirementUsecase) DeleteSpecial(id uint) error {
	if _, err := u.requirements.GetSpecialByID(id); err != nil {
		return notFound(err, "special requirement", id)
	}
	return u.requirements.DeleteSpecial(id)
}
