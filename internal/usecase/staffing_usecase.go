package usecase

import (
	"context"
	"fmt"
	"schichtplan-backend/internal/repository"
	"schichtplan-backend/internal/scheduling"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// StaffingUsecase aggregates resolved shifts and checks them against requirements.
type StaffingUsecase struct {
	schedule     *ScheduleUsecase
	requirements repository.RequirementRepository
	groups       repository.GroupRepository
	employees    repository.EmployeeRepository
	workers      int
	log          *zap.Logger
}

func NewStaffingUsecase(
	schedule *ScheduleUsecase,
	requirements repository.RequirementRepository,
	groups repository.GroupRepository,
	employees repository.EmployeeRepository,
	workers int,
	log *zap.Logger,
) *StaffingUsecase {
	if workers < 1 {
		workers = 1
	}
	return &StaffingUsecase{
		schedule:     schedule,
		requirements: requirements,
		groups:       groups,
		employees:    employees,
		workers:      workers,
		log:          log,
	}
}

// DayStaffing is the staffing of one date: counts per shift and a verdict for
// every shift that is staffed or has a bound.
type DayStaffing struct {
	Date     string               `json:"date"`
	Weekday  int                  `json:"weekday"`
	Counts   map[uint]int         `json:"counts"`
	Verdicts []scheduling.Verdict `json:"verdicts"`
}

type StaffingMatrix struct {
	From        string               `json:"from"`
	To          string               `json:"to"`
	GroupID     *uint                `json:"group_id,omitempty"`
	Days        []DayStaffing        `json:"days"`
	OverStaffed []scheduling.Verdict `json:"over_staffed"`
}

// population returns the employees to resolve and the aggregation filter for an
// optional group.
func (u *StaffingUsecase) population(groupID *uint) ([]uint, scheduling.Members, error) {
	ids, err := u.employees.GetActiveIDs()
	if err != nil {
		return nil, nil, fmt.Errorf("loading employees: %w", err)
	}
	if groupID == nil {
		return ids, nil, nil
	}
	if _, err := u.groups.GetByID(*groupID); err != nil {
		return nil, nil, notFound(err, "group", *groupID)
	}
	members, err := u.groups.MemberIDs(*groupID)
	if err != nil {
		return nil, nil, fmt.Errorf("loading group members: %w", err)
	}
	return ids, scheduling.NewMembers(members...), nil
}

func (u *StaffingUsecase) matcher(from, to time.Time) (*scheduling.Matcher, error) {
	weeklyRows, err := u.requirements.GetWeekly()
	if err != nil {
		return nil, fmt.Errorf("loading requirements: %w", err)
	}
	weekly := make([]scheduling.Requirement, 0, len(weeklyRows))
	for _, row := range weeklyRows {
		weekly = append(weekly, toRequirement(row))
	}

	specialRows, err := u.requirements.GetSpecial(scheduling.FormatDate(from), scheduling.FormatDate(to))
	if err != nil {
		return nil, fmt.Errorf("loading special requirements: %w", err)
	}
	special := make([]scheduling.SpecialRequirement, 0, len(specialRows))
	for _, row := range specialRows {
		r, err := toSpecialRequirement(row)
		if err != nil {
			u.log.Warn("skipping special requirement with bad date", zap.Uint("id", row.ID), zap.Error(err))
			continue
		}
		special = append(special, r)
	}
	return scheduling.NewMatcher(weekly, special), nil
}

func (u *StaffingUsecase) countDay(roster *scheduling.Roster, ids []uint, filter scheduling.Members, date time.Time) map[uint]int {
	resolved, errs := roster.ResolveDay(ids, date)
	if len(errs) > 0 {
		u.log.Warn("dangling references during aggregation",
			zap.String("date", scheduling.FormatDate(date)),
			zap.Int("count", len(errs)),
			zap.Error(errs[0]))
	}
	return scheduling.Aggregate(resolved, filter)
}

// AggregateStaffing counts employees per shift on date, optionally for one group.
func (u *StaffingUsecase) AggregateStaffing(date time.Time, groupID *uint) (map[uint]int, error) {
	ids, filter, err := u.population(groupID)
	if err != nil {
		return nil, err
	}
	roster, err := u.schedule.LoadRoster(date, date)
	if err != nil {
		return nil, err
	}
	return u.countDay(roster, ids, filter, date), nil
}

// CheckRequirement aggregates the date and checks one shift against its bound.
func (u *StaffingUsecase) CheckRequirement(shiftID uint, date time.Time, groupID *uint) (scheduling.Verdict, error) {
	counts, err := u.AggregateStaffing(date, groupID)
	if err != nil {
		return scheduling.Verdict{}, err
	}
	m, err := u.matcher(date, date)
	if err != nil {
		return scheduling.Verdict{}, err
	}
	return m.Check(shiftID, date, groupID, counts[shiftID]), nil
}

// Matrix computes staffing and verdicts for every date in [from, to]. Dates are
// resolved in parallel; each worker writes only its own slot.
func (u *StaffingUsecase) Matrix(ctx context.Context, from, to time.Time, groupID *uint) (*StaffingMatrix, error) {
	if err := u.schedule.CheckRange(from, to); err != nil {
		return nil, err
	}
	ids, filter, err := u.population(groupID)
	if err != nil {
		return nil, err
	}
	roster, err := u.schedule.LoadRoster(from, to)
	if err != nil {
		return nil, err
	}
	m, err := u.matcher(from, to)
	if err != nil {
		return nil, err
	}

	dates := scheduling.DateRange(from, to)
	days := make([]DayStaffing, len(dates))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(u.workers)
	for i, d := range dates {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			counts := u.countDay(roster, ids, filter, d)
			days[i] = DayStaffing{
				Date:     scheduling.FormatDate(d),
				Weekday:  scheduling.Weekday(d),
				Counts:   counts,
				Verdicts: verdictsFor(m, d, groupID, counts),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &StaffingMatrix{
		From:        scheduling.FormatDate(from),
		To:          scheduling.FormatDate(to),
		GroupID:     groupID,
		Days:        days,
		OverStaffed: []scheduling.Verdict{},
	}
	for _, day := range days {
		for _, v := range day.Verdicts {
			if v.ViolatesMax {
				out.OverStaffed = append(out.OverStaffed, v)
			}
		}
	}
	return out, nil
}

func verdictsFor(m *scheduling.Matcher, date time.Time, groupID *uint, counts map[uint]int) []scheduling.Verdict {
	shiftIDs := m.ShiftsOn(date, groupID)
	for id := range counts {
		shiftIDs = append(shiftIDs, id)
	}
	sort.Slice(shiftIDs, func(i, j int) bool { return shiftIDs[i] < shiftIDs[j] })

	verdicts := make([]scheduling.Verdict, 0, len(shiftIDs))
	for i, id := range shiftIDs {
		if i > 0 && shiftIDs[i-1] == id {
			continue
		}
		verdicts = append(verdicts, m.Check(id, date, groupID, counts[id]))
	}
	return verdicts
}

// DailyTotals returns the number of staffed person-shifts for each date, used for
// monthly staffing series. It bypasses the range limit: callers bound it.
func (u *StaffingUsecase) DailyTotals(ctx context.Context, dates []time.Time, groupID *uint) ([]int, error) {
	if len(dates) == 0 {
		return nil, nil
	}
	ids, filter, err := u.population(groupID)
	if err != nil {
		return nil, err
	}
	roster, err := u.schedule.LoadRoster(dates[0], dates[len(dates)-1])
	if err != nil {
		return nil, err
	}

	totals := make([]int, len(dates))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(u.workers)
	for i, d := range dates {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for _, n := range u.countDay(roster, ids, filter, d) {
				totals[i] += n
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return totals, nil
}
