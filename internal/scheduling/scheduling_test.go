package scheduling

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	shiftA uint = 1
	shiftB uint = 2
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func week(cells ...Slot) []Slot { return cells }

// twoWeekCycle: week0 = A Mon..Fri, week1 = B Mon..Fri, weekends free.
func twoWeekCycle(t *testing.T) ShiftCycle {
	t.Helper()
	a, b, n := ShiftOf(shiftA), ShiftOf(shiftB), NoShift()
	pattern := append(week(a, a, a, a, a, n, n), week(b, b, b, b, b, n, n)...)
	c, err := NewShiftCycle(10, "A/B", 2, pattern)
	require.NoError(t, err)
	return c
}

func TestNewShiftCycle_Validation(t *testing.T) {
	tests := []struct {
		name      string
		weekCount int
		cells     int
		wantErr   bool
	}{
		{name: "one week", weekCount: 1, cells: 7},
		{name: "twelve weeks", weekCount: 12, cells: 84},
		{name: "zero weeks", weekCount: 0, cells: 0, wantErr: true},
		{name: "thirteen weeks", weekCount: 13, cells: 91, wantErr: true},
		{name: "pattern too short", weekCount: 2, cells: 13, wantErr: true},
		{name: "pattern too long", weekCount: 1, cells: 8, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewShiftCycle(1, "c", test.weekCount, make([]Slot, test.cells))
			if !test.wantErr {
				require.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
		})
	}
}

func TestShiftCycle_CellBounds(t *testing.T) {
	c := twoWeekCycle(t)

	cell, err := c.Cell(1, 0)
	require.NoError(t, err)
	assert.Equal(t, ShiftOf(shiftB), cell)

	_, err = c.Cell(2, 0)
	assert.Error(t, err)
	_, err = c.Cell(0, 7)
	assert.Error(t, err)
	assert.ElementsMatch(t, []uint{shiftA, shiftB}, c.ShiftIDs())
}

func TestWeekIndex_AlwaysInRange(t *testing.T) {
	for wc := MinWeekCount; wc <= MaxWeekCount; wc++ {
		for days := 0; days < 2*366; days++ {
			w := WeekIndex(days, wc)
			if w < 0 || w >= wc {
				t.Fatalf("WeekIndex(%d, %d) = %d, out of range", days, wc, w)
			}
			if want := (days / 7) % wc; w != want {
				t.Fatalf("WeekIndex(%d, %d) = %d, want %d", days, wc, w, want)
			}
		}
	}
	assert.Equal(t, 2, WeekIndex(-1, 3))
	assert.Equal(t, 2, WeekIndex(-7, 3))
	assert.Equal(t, 1, WeekIndex(-8, 3))
}

func TestResolve_TwoWeekScenario(t *testing.T) {
	c := twoWeekCycle(t)
	monday := date(t, "2024-01-01")
	a := Assignment{ID: 1, EmployeeID: 7, CycleID: c.ID, StartDate: monday}

	assert.Equal(t, ShiftOf(shiftA), Resolve(a, c, monday))
	assert.Equal(t, ShiftOf(shiftB), Resolve(a, c, monday.AddDate(0, 0, 7)))
	assert.Equal(t, ShiftOf(shiftA), Resolve(a, c, monday.AddDate(0, 0, 14)))
	assert.True(t, Resolve(a, c, monday.AddDate(0, 0, 5)).IsNone(), "saturday is free")
	assert.Equal(t, ShiftOf(shiftB), Resolve(a, c, monday.AddDate(0, 0, 11)), "thursday of week 1")
}

func TestResolve_KeepsRotatingCenturiesAfterAnchor(t *testing.T) {
	c := twoWeekCycle(t)
	monday := time.Date(1970, time.January, 5, 0, 0, 0, 0, time.UTC)
	a := Assignment{StartDate: monday}

	assert.Equal(t, 118338, DaysBetween(time.Date(1700, time.January, 1, 0, 0, 0, 0, time.UTC), date(t, "2024-01-01")))
	// 20000 weeks is past the range of time.Duration.
	assert.Equal(t, ShiftOf(shiftA), Resolve(a, c, monday.AddDate(0, 0, 7*20000)))
	assert.Equal(t, ShiftOf(shiftB), Resolve(a, c, monday.AddDate(0, 0, 7*20001)))
	assert.Equal(t, ShiftOf(shiftA), Resolve(a, c, monday.AddDate(0, 0, 7*20002)))
}

func TestResolve_BeforeAnchorIsNone(t *testing.T) {
	c := twoWeekCycle(t)
	a := Assignment{StartDate: date(t, "2024-01-08")}
	assert.True(t, Resolve(a, c, date(t, "2024-01-01")).IsNone())
	assert.True(t, Resolve(a, c, date(t, "2024-01-07")).IsNone())
}

func TestResolve_MidWeekAnchorUsesCalendarWeekday(t *testing.T) {
	c := twoWeekCycle(t)
	// Anchored on a Wednesday: the weekday still comes from the date itself.
	a := Assignment{StartDate: date(t, "2024-01-03")}
	assert.Equal(t, ShiftOf(shiftA), Resolve(a, c, date(t, "2024-01-03")))
	// Six days later (Tuesday) is still week 0.
	assert.Equal(t, ShiftOf(shiftA), Resolve(a, c, date(t, "2024-01-09")))
	// Seven days later (Wednesday) is week 1.
	assert.Equal(t, ShiftOf(shiftB), Resolve(a, c, date(t, "2024-01-10")))
}

func TestResolve_IsPure(t *testing.T) {
	c := twoWeekCycle(t)
	a := Assignment{StartDate: date(t, "2024-01-01")}
	for i := 0; i < 60; i++ {
		d := a.StartDate.AddDate(0, 0, i)
		assert.Equal(t, Resolve(a, c, d), Resolve(a, c, d))
	}
}

func TestApply_Precedence(t *testing.T) {
	free := &Exception{Shift: NoShift()}
	explicit := &Exception{Shift: ShiftOf(shiftB)}

	assert.Equal(t, ShiftOf(shiftA), Apply(ShiftOf(shiftA), nil))
	assert.True(t, Apply(NoShift(), nil).IsNone())
	assert.True(t, Apply(ShiftOf(shiftA), free).IsNone())
	assert.True(t, Apply(NoShift(), free).IsNone())
	assert.Equal(t, ShiftOf(shiftB), Apply(ShiftOf(shiftA), explicit))
	assert.Equal(t, ShiftOf(shiftB), Apply(NoShift(), explicit))
}

func TestExceptionFromType(t *testing.T) {
	s, err := ExceptionFromType(0)
	require.NoError(t, err)
	assert.True(t, s.IsNone())

	s, err = ExceptionFromType(3)
	require.NoError(t, err)
	assert.Equal(t, ShiftOf(3), s)
	assert.Equal(t, 3, TypeOf(s))

	_, err = ExceptionFromType(-1)
	assert.Error(t, err)
}

func TestRoster_OrphanedExceptionsAreInert(t *testing.T) {
	c := twoWeekCycle(t)
	monday := date(t, "2024-01-01")
	catalog := NewCatalog(c)

	assignments := []Assignment{{ID: 5, EmployeeID: 1, CycleID: c.ID, StartDate: monday}}
	exceptions := []Exception{
		{EmployeeID: 1, AssignmentID: 5, Date: monday, Shift: NoShift()},
		{EmployeeID: 1, AssignmentID: 4, Date: monday.AddDate(0, 0, 1), Shift: ShiftOf(shiftB)},
		{EmployeeID: 2, AssignmentID: 9, Date: monday, Shift: ShiftOf(shiftB)},
	}
	r := NewRoster(catalog, assignments, exceptions)

	res, err := r.ResolveShift(1, monday)
	require.NoError(t, err)
	assert.True(t, res.Slot.IsNone())
	assert.True(t, res.Overridden)

	res, err = r.ResolveShift(1, monday.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, ShiftOf(shiftA), res.Slot, "exception for a replaced assignment is ignored")
	assert.False(t, res.Overridden)

	res, err = r.ResolveShift(2, monday)
	require.NoError(t, err)
	assert.True(t, res.Slot.IsNone(), "no assignment, exception does not resurrect a cycle")
}

func TestRoster_DanglingCycleDegradesToNone(t *testing.T) {
	r := NewRoster(NewCatalog(), []Assignment{{ID: 1, EmployeeID: 1, CycleID: 99, StartDate: date(t, "2024-01-01")}}, nil)

	res, err := r.ResolveShift(1, date(t, "2024-01-01"))
	assert.True(t, res.Slot.IsNone())
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "cycle", nf.Kind)
}

func TestAggregate_MatchesPerEmployeeResolution(t *testing.T) {
	c := twoWeekCycle(t)
	monday := date(t, "2024-01-01")
	var assignments []Assignment
	for i := uint(1); i <= 6; i++ {
		start := monday
		if i%2 == 0 {
			start = monday.AddDate(0, 0, -7) // phase-shifted into week 1
		}
		assignments = append(assignments, Assignment{ID: i, EmployeeID: i, CycleID: c.ID, StartDate: start})
	}
	exceptions := []Exception{
		{EmployeeID: 1, AssignmentID: 1, Date: monday, Shift: NoShift()},
		{EmployeeID: 2, AssignmentID: 2, Date: monday, Shift: ShiftOf(shiftA)},
	}
	r := NewRoster(NewCatalog(c), assignments, exceptions)

	ids := []uint{1, 2, 3, 4, 5, 6, 7}
	resolved, errs := r.ResolveDay(ids, monday)
	require.Empty(t, errs)

	counts := Aggregate(resolved, nil)
	// 3 and 5 on A, 2 overridden to A, 4 and 6 on B, 1 free, 7 unassigned.
	assert.Equal(t, map[uint]int{shiftA: 3, shiftB: 2}, counts)

	want := map[uint]int{}
	for _, res := range resolved {
		if id, ok := res.Slot.ShiftID(); ok {
			want[id]++
		}
	}
	assert.Equal(t, want, counts)

	reversed := make([]Resolved, len(resolved))
	for i := range resolved {
		reversed[len(resolved)-1-i] = resolved[i]
	}
	assert.Equal(t, counts, Aggregate(reversed, nil), "order independent")

	assert.Equal(t, map[uint]int{shiftA: 1, shiftB: 1}, Aggregate(resolved, NewMembers(3, 4, 1)))
}

func TestAggregate_NoDoubleCounting(t *testing.T) {
	resolved := []Resolved{
		{EmployeeID: 1, Slot: ShiftOf(shiftA)},
		{EmployeeID: 1, Slot: ShiftOf(shiftB)},
	}
	assert.Equal(t, map[uint]int{shiftA: 1}, Aggregate(resolved, nil))
}

func TestMatcher_Check(t *testing.T) {
	monday := date(t, "2024-01-01")
	group := uint(3)
	m := NewMatcher(
		[]Requirement{
			{ShiftID: shiftA, Weekday: 0, Min: 2, Max: 4},
			{ShiftID: shiftB, Weekday: 0, Min: 1, Max: 0},
			{ShiftID: shiftA, Weekday: 0, GroupID: &group, Min: 1, Max: 1},
		},
		[]SpecialRequirement{
			{ShiftID: shiftA, Date: monday.AddDate(0, 0, 7), Min: 5, Max: 6},
		},
	)

	v := m.Check(shiftA, monday, nil, 5)
	assert.True(t, v.Defined)
	assert.Equal(t, SourceWeekly, v.Source)
	assert.True(t, v.ViolatesMax)
	assert.False(t, v.ViolatesMin)

	v = m.Check(shiftA, monday, nil, 1)
	assert.False(t, v.ViolatesMax)
	assert.True(t, v.ViolatesMin)

	v = m.Check(shiftB, monday, nil, 50)
	assert.True(t, v.Defined)
	assert.False(t, v.ViolatesMax, "max 0 is unbounded")

	v = m.Check(shiftA, monday.AddDate(0, 0, 7), nil, 5)
	assert.Equal(t, SourceSpecial, v.Source)
	assert.Equal(t, 5, v.Min)
	assert.Equal(t, 6, v.Max)
	assert.False(t, v.ViolatesMax)

	v = m.Check(shiftA, monday, &group, 2)
	assert.Equal(t, 1, v.Max)
	assert.True(t, v.ViolatesMax)

	v = m.Check(shiftA, monday.AddDate(0, 0, 1), nil, 100)
	assert.False(t, v.Defined)
	assert.Equal(t, SourceNone, v.Source)
	assert.False(t, v.ViolatesMax)
	assert.False(t, v.ViolatesMin)

	other := uint(8)
	v = m.Check(shiftA, monday, &other, 9)
	assert.False(t, v.Defined, "group bounds do not fall back to ungrouped ones")

	assert.ElementsMatch(t, []uint{shiftA, shiftB}, m.ShiftsOn(monday, nil))
}

func TestRequirement_Validate(t *testing.T) {
	assert.NoError(t, Requirement{ShiftID: 1, Weekday: 6, Min: 0, Max: 0}.Validate())
	assert.Error(t, Requirement{ShiftID: 1, Weekday: 7}.Validate())
	assert.Error(t, Requirement{ShiftID: 1, Weekday: -1}.Validate())
	assert.Error(t, Requirement{ShiftID: 1, Min: -1}.Validate())
	assert.Error(t, Requirement{ShiftID: 0}.Validate())
	assert.Error(t, SpecialRequirement{ShiftID: 1}.Validate())
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name   string
		series []float64
		want   []bool
	}{
		{name: "empty", series: []float64{}, want: []bool{}},
		{name: "single", series: []float64{42}, want: []bool{false}},
		{name: "constant", series: []float64{3, 3, 3, 3}, want: []bool{false, false, false, false}},
		{name: "two values", series: []float64{1, 100}, want: []bool{false, false}},
		{
			// With five points a single outlier sits exactly on mean+2σ (threshold 100).
			name:   "outlier on threshold",
			series: []float64{1, 1, 1, 1, 100},
			want:   []bool{false, false, false, false, false},
		},
		{
			name:   "outlier above threshold",
			series: []float64{1, 1, 1, 1, 1, 100},
			want:   []bool{false, false, false, false, false, true},
		},
		{
			name:   "monthly sick days",
			series: []float64{4, 5, 6, 5, 4, 5, 6, 5, 4, 5, 6, 30},
			want:   []bool{false, false, false, false, false, false, false, false, false, false, false, true},
		},
		{
			name:   "low values never flagged",
			series: []float64{30, 5, 5, 5, 5, 5, 5, -60},
			want:   []bool{false, false, false, false, false, false, false, false},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, Detect(test.series))
		})
	}
}

func TestNewBand(t *testing.T) {
	b := NewBand([]float64{1, 1, 1, 1, 100})
	assert.InDelta(t, 20.8, b.Mean, 1e-9)
	assert.InDelta(t, 39.6, b.StdDev, 1e-9)
	assert.InDelta(t, 100.0, b.Threshold, 1e-9)

	assert.Equal(t, Band{}, NewBand(nil))
	assert.Equal(t, 0.0, NewBand([]float64{7}).StdDev)
}

func TestMergeSpans(t *testing.T) {
	dates := []time.Time{
		date(t, "2024-03-08"), // Fri
		date(t, "2024-03-04"), // Mon
		date(t, "2024-03-05"),
		date(t, "2024-03-05"),
		date(t, "2024-03-11"), // next Mon, gap 3 from Fri
		date(t, "2024-03-20"),
	}
	spans := MergeSpans(dates, 3)
	require.Len(t, spans, 2)
	assert.Equal(t, "2024-03-04", FormatDate(spans[0].From))
	assert.Equal(t, "2024-03-11", FormatDate(spans[0].To))
	assert.Equal(t, 4, spans[0].Days)
	assert.Equal(t, 1, spans[1].Days)

	assert.Len(t, MergeSpans(dates, 1), 4)
	assert.Nil(t, MergeSpans(nil, 3))
}

func TestSlotJSON(t *testing.T) {
	b, err := ShiftOf(4).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "4", string(b))
	b, err = NoShift().MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))

	var s Slot
	require.NoError(t, s.UnmarshalJSON([]byte("null")))
	assert.True(t, s.IsNone())
	require.NoError(t, s.UnmarshalJSON([]byte("9")))
	assert.Equal(t, ShiftOf(9), s)
}

func TestDateHelpers(t *testing.T) {
	var verr *ValidationError
	for _, in := range []string{"2024-13-01", "1969-12-31", "0001-01-01"} {
		_, err := ParseDate(in)
		require.True(t, errors.As(err, &verr), in)
	}
	assert.Equal(t, Epoch, date(t, "1970-01-01"))

	assert.Equal(t, 0, Weekday(date(t, "2024-01-01")))
	assert.Equal(t, 6, Weekday(date(t, "2024-01-07")))
	assert.Equal(t, -3, DaysBetween(date(t, "2024-01-04"), date(t, "2024-01-01")))
	assert.Len(t, DateRange(date(t, "2024-02-01"), date(t, "2024-02-29")), 29)
	assert.Nil(t, DateRange(date(t, "2024-02-02"), date(t, "2024-02-01")))
	// DST in local zones does not matter: everything is UTC midnight.
	assert.Equal(t, 31, DaysBetween(date(t, "2024-03-01"), date(t, "2024-04-01")))
}
