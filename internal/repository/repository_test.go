package repository_test

import (
	"testing"

	"schichtplan-backend/internal/model"
	"schichtplan-backend/internal/repository"
	"schichtplan-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAssignmentSetKeepsIDAndRemoveRetiresIt(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewAssignmentRepository(db)

	emp := testutil.Employee(t, db, "1001")
	early := testutil.Shift(t, db, "F")
	c1 := testutil.Cycle(t, db, "one", 1, make([]*uint, 7))
	c2 := testutil.Cycle(t, db, "two", 1, []*uint{testutil.Ptr(early), nil, nil, nil, nil, nil, nil})

	first := &model.CycleAssignment{EmployeeID: emp, CycleID: c1, StartDate: "2024-01-01"}
	require.NoError(t, repo.Set(first))
	require.NotZero(t, first.ID)

	second := &model.CycleAssignment{EmployeeID: emp, CycleID: c2, StartDate: "2024-02-05"}
	require.NoError(t, repo.Set(second))
	assert.Equal(t, first.ID, second.ID, "replacing the cycle keeps the assignment id")

	got, err := repo.GetByEmployee(emp)
	require.NoError(t, err)
	assert.Equal(t, c2, got.CycleID)
	assert.Equal(t, "2024-02-05", got.StartDate)
	assert.Equal(t, "two", got.Cycle.Name)

	require.NoError(t, repo.Remove(emp))
	_, err = repo.GetByEmployee(emp)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = repo.GetByID(first.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	third := &model.CycleAssignment{EmployeeID: emp, CycleID: c1, StartDate: "2024-03-04"}
	require.NoError(t, repo.Set(third))
	assert.NotEqual(t, first.ID, third.ID, "a removed assignment id is never reused")

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestAssignmentKeepsOneLiveRowPerEmployee(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewAssignmentRepository(db)

	emp := testutil.Employee(t, db, "1002")
	c := testutil.Cycle(t, db, "one", 1, make([]*uint, 7))

	liveRows := func() int64 {
		var n int64
		require.NoError(t, db.Model(&model.CycleAssignment{}).Where("employee_id = ?", emp).Count(&n).Error)
		return n
	}

	for _, start := range []string{"2024-01-01", "2024-01-08", "2024-01-15"} {
		require.NoError(t, repo.Set(&model.CycleAssignment{EmployeeID: emp, CycleID: c, StartDate: start}))
		assert.Equal(t, int64(1), liveRows(), start)
	}

	// A racing insert that skipped the lookup is refused by the unique index.
	active := emp
	dup := &model.CycleAssignment{EmployeeID: emp, CycleID: c, StartDate: "2024-01-22", ActiveEmployeeID: &active}
	assert.Error(t, db.Create(dup).Error)
	assert.Equal(t, int64(1), liveRows())

	// Removed rows release the index, so reassigning works and the retired row stays.
	require.NoError(t, repo.Remove(emp))
	require.NoError(t, repo.Set(&model.CycleAssignment{EmployeeID: emp, CycleID: c, StartDate: "2024-02-05"}))
	assert.Equal(t, int64(1), liveRows())

	var total int64
	require.NoError(t, db.Unscoped().Model(&model.CycleAssignment{}).Where("employee_id = ?", emp).Count(&total).Error)
	assert.Equal(t, int64(2), total)
}

func exceptionOn(t *testing.T, repo repository.ExceptionRepository, employeeID uint, date string) *model.CycleException {
	t.Helper()
	rows, err := repo.Find(repository.ExceptionFilter{EmployeeID: &employeeID, From: date, To: date})
	require.NoError(t, err)
	require.LessOrEqual(t, len(rows), 1)
	if len(rows) == 0 {
		return nil
	}
	return &rows[0]
}

func TestExceptionSetUpsertsAndRestores(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewExceptionRepository(db)
	late := testutil.Shift(t, db, "S")

	ex := &model.CycleException{EmployeeID: 1, AssignmentID: 7, Date: "2024-01-03", ShiftID: testutil.Ptr(late)}
	require.NoError(t, repo.Set(ex))
	id := ex.ID

	// Same (employee, date) overwrites the row, here with a free day.
	again := &model.CycleException{EmployeeID: 1, AssignmentID: 7, Date: "2024-01-03", Note: "swap"}
	require.NoError(t, repo.Set(again))
	assert.Equal(t, id, again.ID)

	got := exceptionOn(t, repo, 1, "2024-01-03")
	require.NotNil(t, got)
	assert.Nil(t, got.ShiftID)
	assert.Equal(t, "swap", got.Note)

	// Deleted rows come back on the next Set instead of tripping the unique index.
	require.NoError(t, repo.Delete(id))
	assert.Nil(t, exceptionOn(t, repo, 1, "2024-01-03"))

	restored := &model.CycleException{EmployeeID: 1, AssignmentID: 8, Date: "2024-01-03", ShiftID: testutil.Ptr(late)}
	require.NoError(t, repo.Set(restored))
	assert.Equal(t, id, restored.ID)

	got = exceptionOn(t, repo, 1, "2024-01-03")
	require.NotNil(t, got)
	assert.Equal(t, uint(8), got.AssignmentID)
	require.NotNil(t, got.ShiftID)
	assert.Equal(t, late, *got.ShiftID)
}

func TestExceptionFind(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewExceptionRepository(db)

	require.NoError(t, repo.SetBatch([]model.CycleException{
		{EmployeeID: 1, AssignmentID: 1, Date: "2024-01-01"},
		{EmployeeID: 1, AssignmentID: 1, Date: "2024-01-05"},
		{EmployeeID: 2, AssignmentID: 2, Date: "2024-01-03"},
	}))
	// Batch upsert on the same keys updates instead of failing.
	require.NoError(t, repo.SetBatch([]model.CycleException{
		{EmployeeID: 1, AssignmentID: 1, Date: "2024-01-05", Note: "updated"},
	}))

	emp := uint(1)
	tests := []struct {
		name   string
		filter repository.ExceptionFilter
		want   []string
	}{
		{"all", repository.ExceptionFilter{}, []string{"2024-01-01", "2024-01-03", "2024-01-05"}},
		{"employee", repository.ExceptionFilter{EmployeeID: &emp}, []string{"2024-01-01", "2024-01-05"}},
		{"window", repository.ExceptionFilter{From: "2024-01-02", To: "2024-01-04"}, []string{"2024-01-03"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := repo.Find(tt.filter)
			require.NoError(t, err)
			var dates []string
			for _, r := range rows {
				dates = append(dates, r.Date)
			}
			assert.Equal(t, tt.want, dates)
		})
	}

	got := exceptionOn(t, repo, 1, "2024-01-05")
	require.NotNil(t, got)
	assert.Equal(t, "updated", got.Note)
}

func TestRequirementUpsertDistinguishesGroups(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewRequirementRepository(db)
	shift := testutil.Shift(t, db, "F")
	group := uint(3)

	require.NoError(t, repo.SetWeekly(&model.StaffingRequirement{ShiftID: shift, Weekday: 0, Min: 1, Max: 2}))
	require.NoError(t, repo.SetWeekly(&model.StaffingRequirement{ShiftID: shift, Weekday: 0, GroupID: &group, Min: 1, Max: 1}))
	// Overwrites the ungrouped row, not the group row.
	require.NoError(t, repo.SetWeekly(&model.StaffingRequirement{ShiftID: shift, Weekday: 0, Min: 2, Max: 4}))

	list, err := repo.GetWeekly()
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, r := range list {
		if r.GroupID == nil {
			assert.Equal(t, 2, r.Min)
			assert.Equal(t, 4, r.Max)
		} else {
			assert.Equal(t, 1, r.Max)
		}
	}

	require.NoError(t, repo.SetSpecial(&model.SpecialStaffingRequirement{ShiftID: shift, Date: "2024-12-24", Min: 0, Max: 1}))
	require.NoError(t, repo.SetSpecial(&model.SpecialStaffingRequirement{ShiftID: shift, Date: "2024-12-24", Min: 1, Max: 1}))
	special, err := repo.GetSpecial("2024-12-01", "2024-12-31")
	require.NoError(t, err)
	require.Len(t, special, 1)
	assert.Equal(t, 1, special[0].Min)

	none, err := repo.GetSpecial("2025-01-01", "2025-01-31")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGroupMembers(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewGroupRepository(db)
	a := testutil.Employee(t, db, "1")
	b := testutil.Employee(t, db, "2")

	g := model.Group{Name: "Station 1"}
	require.NoError(t, repo.Create(&g))

	require.NoError(t, repo.SetMembers(g.ID, []uint{a, b}))
	ids, err := repo.MemberIDs(g.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{a, b}, ids)

	require.NoError(t, repo.SetMembers(g.ID, []uint{b}))
	ids, err = repo.MemberIDs(g.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{b}, ids)

	require.NoError(t, repo.SetMembers(g.ID, nil))
	ids, err = repo.MemberIDs(g.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)

	assert.ErrorIs(t, repo.SetMembers(999, []uint{a}), gorm.ErrRecordNotFound)
}

func TestEmployeeLookups(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewEmployeeRepository(db)

	active := testutil.Employee(t, db, "1001")
	inactive := model.Employee{Name: "Gone", PersonnelNo: "1002", IsActive: true}
	require.NoError(t, repo.Create(&inactive))
	require.NoError(t, db.Model(&inactive).Update("is_active", false).Error)

	ids, err := repo.GetActiveIDs()
	require.NoError(t, err)
	assert.Equal(t, []uint{active}, ids)

	missing, err := repo.FindByPersonnelNo("9999")
	require.NoError(t, err)
	assert.Nil(t, missing)

	found, err := repo.FindByPersonnelNo("1002")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, inactive.ID, found.ID)

	list, err := repo.GetAll("100")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestStatisticsMonthly(t *testing.T) {
	db := testutil.NewTestDB(t)
	stats := repository.NewStatisticsRepository(db)
	absences := repository.NewAbsenceRepository(db)
	overtime := repository.NewOvertimeRepository(db)
	groups := repository.NewGroupRepository(db)

	a := testutil.Employee(t, db, "1")
	b := testutil.Employee(t, db, "2")
	g := model.Group{Name: "Station 1"}
	require.NoError(t, groups.Create(&g))
	require.NoError(t, groups.SetMembers(g.ID, []uint{a}))

	require.NoError(t, absences.CreateMany([]model.Absence{
		{EmployeeID: a, Date: "2024-01-10", Kind: model.AbsenceSick},
		{EmployeeID: a, Date: "2024-01-11", Kind: model.AbsenceSick},
		{EmployeeID: b, Date: "2024-01-11", Kind: model.AbsenceSick},
		{EmployeeID: b, Date: "2024-02-01", Kind: model.AbsenceSick},
		{EmployeeID: b, Date: "2024-02-02", Kind: model.AbsenceVacation},
	}))
	require.NoError(t, overtime.Create(&model.OvertimeEntry{EmployeeID: a, Date: "2024-01-31", Hours: 1.5}))
	require.NoError(t, overtime.Create(&model.OvertimeEntry{EmployeeID: b, Date: "2024-01-02", Hours: 2}))

	sick, err := stats.MonthlyAbsences(model.AbsenceSick, "2024-01-01", "2024-02-29", nil)
	require.NoError(t, err)
	assert.Equal(t, []repository.MonthlyValue{{Month: "2024-01", Total: 3}, {Month: "2024-02", Total: 1}}, sick)

	sick, err = stats.MonthlyAbsences(model.AbsenceSick, "2024-01-01", "2024-02-29", &g.ID)
	require.NoError(t, err)
	assert.Equal(t, []repository.MonthlyValue{{Month: "2024-01", Total: 2}}, sick)

	hours, err := stats.MonthlyOvertime("2024-01-01", "2024-01-31", nil)
	require.NoError(t, err)
	assert.Equal(t, []repository.MonthlyValue{{Month: "2024-01", Total: 3.5}}, hours)
}

func TestUserUpsert(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewUserRepository(db)

	u := &model.User{Name: "Admin", Username: "admin", Password: "x", Role: model.RoleAdmin}
	require.NoError(t, repo.Upsert(u))
	again := &model.User{Name: "Admin 2", Username: "admin", Password: "y", Role: model.RolePlanner}
	require.NoError(t, repo.Upsert(again))
	assert.Equal(t, u.ID, again.ID)

	got, err := repo.GetByUsername("admin")
	require.NoError(t, err)
	assert.Equal(t, "Admin 2", got.Name)
	assert.Equal(t, model.RolePlanner, got.Role)
}
