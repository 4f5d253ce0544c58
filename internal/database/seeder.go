package database

import (
	"fmt"
	"schichtplan-backend/internal/model"
	"schichtplan-backend/internal/repository"
	"schichtplan-backend/internal/scheduling"
	"schichtplan-backend/internal/usecase"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Seeder writes a Fixture into the database. Running it twice is harmless: every
// step looks rows up by their natural key first.
type Seeder struct {
	db   *gorm.DB
	auth *usecase.AuthUsecase
	log  *zap.Logger

	shifts map[string]uint
	groups map[string]uint
	staff  map[string]uint
	cycles map[string]uint
}

func NewSeeder(db *gorm.DB, auth *usecase.AuthUsecase, log *zap.Logger) *Seeder {
	return &Seeder{
		db:     db,
		auth:   auth,
		log:    log,
		shifts: make(map[string]uint),
		groups: make(map[string]uint),
		staff:  make(map[string]uint),
		cycles: make(map[string]uint),
	}
}

func (s *Seeder) Run(f *Fixture) error {
	steps := []struct {
		name string
		fn   func(*Fixture) error
	}{
		{"admin", s.seedAdmin},
		{"shifts", s.seedShifts},
		{"groups", s.seedGroups},
		{"employees", s.seedEmployees},
		{"cycles", s.seedCycles},
		{"assignments", s.seedAssignments},
		{"requirements", s.seedRequirements},
	}
	for _, step := range steps {
		if err := step.fn(f); err != nil {
			return fmt.Errorf("seeding %s: %w", step.name, err)
		}
		s.log.Info("seeded", zap.String("step", step.name))
	}
	return nil
}

func (s *Seeder) seedAdmin(f *Fixture) error {
	if f.Admin.Username == "" {
		return nil
	}
	_, err := s.auth.Register(f.Admin.Name, f.Admin.Username, f.Admin.Password, model.RoleAdmin)
	return err
}

func (s *Seeder) seedShifts(f *Fixture) error {
	repo := repository.NewShiftRepository(s.db)
	for _, sf := range f.Shifts {
		shift, err := repo.FindOrCreate(sf.ShortName, sf.Name)
		if err != nil {
			return err
		}
		if sf.Color != "" || sf.TextColor != "" {
			shift.Color, shift.TextColor = sf.Color, sf.TextColor
			if err := repo.Update(shift); err != nil {
				return err
			}
		}
		s.shifts[sf.ShortName] = shift.ID
	}
	return nil
}

func (s *Seeder) seedGroups(f *Fixture) error {
	for _, name := range f.Groups {
		g := model.Group{Name: name}
		if err := s.db.Where(model.Group{Name: name}).FirstOrCreate(&g).Error; err != nil {
			return err
		}
		s.groups[name] = g.ID
	}
	return nil
}

func (s *Seeder) seedEmployees(f *Fixture) error {
	members := make(map[uint][]uint)
	for _, ef := range f.Employees {
		e := model.Employee{PersonnelNo: ef.PersonnelNo, Name: ef.Name, Email: ef.Email, IsActive: true}
		if err := s.db.Where(model.Employee{PersonnelNo: ef.PersonnelNo}).Attrs(e).FirstOrCreate(&e).Error; err != nil {
			return err
		}
		s.staff[ef.PersonnelNo] = e.ID
		for _, name := range ef.Groups {
			gid, ok := s.groups[name]
			if !ok {
				return fmt.Errorf("employee %s: unknown group %q", ef.PersonnelNo, name)
			}
			members[gid] = append(members[gid], e.ID)
		}
	}

	groups := repository.NewGroupRepository(s.db)
	for gid, ids := range members {
		if err := groups.SetMembers(gid, ids); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedCycles(f *Fixture) error {
	uc := usecase.NewCycleUsecase(repository.NewCycleRepository(s.db), repository.NewShiftRepository(s.db))
	for _, cf := range f.Cycles {
		pattern, err := s.pattern(cf)
		if err != nil {
			return err
		}
		in := usecase.CycleInput{Name: cf.Name, WeekCount: len(cf.Weeks), Pattern: pattern}

		var existing model.ShiftCycle
		if err := s.db.Where("name = ?", cf.Name).Limit(1).Find(&existing).Error; err != nil {
			return err
		}
		var saved *model.ShiftCycle
		if existing.ID != 0 {
			saved, err = uc.Update(existing.ID, in)
		} else {
			saved, err = uc.Create(in)
		}
		if err != nil {
			return fmt.Errorf("cycle %q: %w", cf.Name, err)
		}
		s.cycles[cf.Name] = saved.ID
	}
	return nil
}

// pattern flattens the week rows into the stored grid.
func (s *Seeder) pattern(cf CycleFixture) ([]*uint, error) {
	out := make([]*uint, 0, len(cf.Weeks)*scheduling.DaysPerWeek)
	for w, week := range cf.Weeks {
		if len(week) != scheduling.DaysPerWeek {
			return nil, fmt.Errorf("cycle %q week %d: want %d days, got %d", cf.Name, w+1, scheduling.DaysPerWeek, len(week))
		}
		for _, short := range week {
			if short == "-" || short == "" {
				out = append(out, nil)
				continue
			}
			id, ok := s.shifts[short]
			if !ok {
				return nil, fmt.Errorf("cycle %q: unknown shift %q", cf.Name, short)
			}
			out = append(out, &id)
		}
	}
	return out, nil
}

func (s *Seeder) seedAssignments(f *Fixture) error {
	schedule := usecase.NewScheduleUsecase(
		repository.NewCycleRepository(s.db),
		repository.NewAssignmentRepository(s.db),
		repository.NewExceptionRepository(s.db),
		repository.NewEmployeeRepository(s.db),
		0,
		s.log,
	)
	for _, af := range f.Assignments {
		eid, ok := s.staff[af.PersonnelNo]
		if !ok {
			return fmt.Errorf("assignment: unknown employee %s", af.PersonnelNo)
		}
		cid, ok := s.cycles[af.Cycle]
		if !ok {
			return fmt.Errorf("assignment: unknown cycle %q", af.Cycle)
		}
		if _, err := schedule.SetAssignment(eid, cid, af.StartDate); err != nil {
			return fmt.Errorf("assignment for %s: %w", af.PersonnelNo, err)
		}
	}
	return nil
}

func (s *Seeder) seedRequirements(f *Fixture) error {
	uc := usecase.NewRequirementUsecase(
		repository.NewRequirementRepository(s.db),
		repository.NewShiftRepository(s.db),
		repository.NewGroupRepository(s.db),
	)
	for i, rf := range f.Requirements {
		shiftID, ok := s.shifts[rf.Shift]
		if !ok {
			return fmt.Errorf("requirement %d: unknown shift %q", i, rf.Shift)
		}
		in := usecase.RequirementInput{ShiftID: shiftID, Weekday: rf.Weekday, Date: rf.Date, Min: rf.Min, Max: rf.Max}
		if rf.Group != "" {
			gid, ok := s.groups[rf.Group]
			if !ok {
				return fmt.Errorf("requirement %d: unknown group %q", i, rf.Group)
			}
			in.GroupID = &gid
		}

		var err error
		if rf.Date != "" {
			_, err = uc.SetSpecial(in)
		} else {
			_, err = uc.SetWeekly(in)
		}
		if err != nil {
			return fmt.Errorf("requirement %d: %w", i, err)
		}
	}
	return nil
}
