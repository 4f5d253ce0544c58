package usecase_test

import (
	"context"
	"errors"
	"testing"

	"schichtplan-backend/internal/model"
	"schichtplan-backend/internal/repository"
	"schichtplan-backend/internal/scheduling"
	"schichtplan-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setWeekly(t *testing.T, w *world, r model.StaffingRequirement) {
	t.Helper()
	require.NoError(t, repository.NewRequirementRepository(w.db).SetWeekly(&r))
}

func TestAggregateStaffing(t *testing.T) {
	w := newWorld(t)
	monday := day(t, "2024-01-01")

	counts, err := w.staffing.AggregateStaffing(monday, nil)
	require.NoError(t, err)
	assert.Equal(t, map[uint]int{w.early: 2, w.late: 1}, counts)

	g := w.group(t, "Station 1", w.alice, w.bob)
	counts, err = w.staffing.AggregateStaffing(monday, &g)
	require.NoError(t, err)
	assert.Equal(t, map[uint]int{w.early: 1, w.late: 1}, counts)

	sunday, err := w.staffing.AggregateStaffing(day(t, "2024-01-07"), nil)
	require.NoError(t, err)
	assert.Empty(t, sunday)

	missing := uint(999)
	_, err = w.staffing.AggregateStaffing(monday, &missing)
	var nf *scheduling.NotFoundError
	assert.True(t, errors.As(err, &nf))
}

func TestAggregateStaffingSkipsInactiveEmployees(t *testing.T) {
	w := newWorld(t)
	require.NoError(t, w.db.Model(&model.Employee{}).Where("id = ?", w.carol).Update("is_active", false).Error)

	counts, err := w.staffing.AggregateStaffing(day(t, "2024-01-01"), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, counts[w.early])
}

func TestCheckRequirement(t *testing.T) {
	w := newWorld(t)
	monday := day(t, "2024-01-01")
	setWeekly(t, w, model.StaffingRequirement{ShiftID: w.early, Weekday: 0, Min: 1, Max: 1})

	v, err := w.staffing.CheckRequirement(w.early, monday, nil)
	require.NoError(t, err)
	assert.Equal(t, scheduling.SourceWeekly, v.Source)
	assert.Equal(t, 2, v.Actual)
	assert.True(t, v.ViolatesMax)
	assert.False(t, v.ViolatesMin)

	v, err = w.staffing.CheckRequirement(w.late, monday, nil)
	require.NoError(t, err)
	assert.Equal(t, scheduling.SourceNone, v.Source)
	assert.False(t, v.Defined)
	assert.False(t, v.ViolatesMax)

	// A date-specific bound wins over the weekly one.
	require.NoError(t, repository.NewRequirementRepository(w.db).SetSpecial(&model.SpecialStaffingRequirement{
		ShiftID: w.early, Date: "2024-01-01", Min: 3, Max: 0,
	}))
	v, err = w.staffing.CheckRequirement(w.early, monday, nil)
	require.NoError(t, err)
	assert.Equal(t, scheduling.SourceSpecial, v.Source)
	assert.False(t, v.ViolatesMax, "max 0 is unbounded")
	assert.True(t, v.ViolatesMin)

	// Group checks do not fall back to ungrouped bounds.
	g := w.group(t, "Station 1", w.alice, w.carol)
	v, err = w.staffing.CheckRequirement(w.early, day(t, "2024-01-15"), &g)
	require.NoError(t, err)
	assert.Equal(t, 2, v.Actual)
	assert.False(t, v.Defined)
}

func TestMatrix(t *testing.T) {
	w := newWorld(t)
	setWeekly(t, w, model.StaffingRequirement{ShiftID: w.early, Weekday: 0, Min: 1, Max: 1})
	setWeekly(t, w, model.StaffingRequirement{ShiftID: w.late, Weekday: 5, Min: 1, Max: 2})

	m, err := w.staffing.Matrix(context.Background(), day(t, "2024-01-01"), day(t, "2024-01-14"), nil)
	require.NoError(t, err)
	require.Len(t, m.Days, 14)
	assert.Equal(t, "2024-01-01", m.From)
	assert.Equal(t, "2024-01-14", m.To)

	for i, d := range m.Days {
		assert.Equal(t, scheduling.FormatDate(day(t, "2024-01-01").AddDate(0, 0, i)), d.Date)
		assert.Equal(t, i%7, d.Weekday)
	}

	// Mondays: two early in week one, one early in week two.
	require.Len(t, m.OverStaffed, 1)
	assert.Equal(t, "2024-01-01", m.OverStaffed[0].Date)
	assert.Equal(t, w.early, m.OverStaffed[0].ShiftID)

	// Saturday carries a bound even though nobody works.
	sat := m.Days[5]
	require.Len(t, sat.Verdicts, 1)
	assert.Equal(t, w.late, sat.Verdicts[0].ShiftID)
	assert.Equal(t, 0, sat.Verdicts[0].Actual)
	assert.True(t, sat.Verdicts[0].ViolatesMin)
}

func TestMatrixBoundsAndCancellation(t *testing.T) {
	w := newWorld(t)

	_, err := w.staffing.Matrix(context.Background(), day(t, "2024-01-01"), day(t, "2024-03-01"), nil)
	var verr *scheduling.ValidationError
	assert.True(t, errors.As(err, &verr))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = w.staffing.Matrix(ctx, day(t, "2024-01-01"), day(t, "2024-01-31"), nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDailyTotals(t *testing.T) {
	w := newWorld(t)
	dates := scheduling.DateRange(day(t, "2024-01-01"), day(t, "2024-01-07"))

	totals, err := w.staffing.DailyTotals(context.Background(), dates, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3, 3, 3, 3, 0, 0}, totals)

	empty, err := w.staffing.DailyTotals(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

type recordingMailer struct {
	to      []string
	subject string
	body    string
	calls   int
}

func (m *recordingMailer) Send(to []string, subject, body string) error {
	m.to, m.subject, m.body = to, subject, body
	m.calls++
	return nil
}

func TestSendOverstaffingDigest(t *testing.T) {
	w := newWorld(t)
	setWeekly(t, w, model.StaffingRequirement{ShiftID: w.early, Weekday: 0, Min: 0, Max: 1})
	shifts := repository.NewShiftRepository(w.db)

	mailer := &recordingMailer{}
	n := usecase.NewNotificationUsecase(w.staffing, shifts, mailer, []string{"lead@example.org"}, zapNop())
	count, err := n.SendOverstaffingDigest(context.Background(), day(t, "2024-01-01"), day(t, "2024-01-07"), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, mailer.calls)
	assert.Equal(t, []string{"lead@example.org"}, mailer.to)
	assert.Contains(t, mailer.subject, "1 over-staffed")
	assert.Contains(t, mailer.body, "2024-01-01")

	silent := usecase.NewNotificationUsecase(w.staffing, shifts, mailer, nil, zapNop())
	_, err = silent.SendOverstaffingDigest(context.Background(), day(t, "2024-01-01"), day(t, "2024-01-07"), nil)
	assert.ErrorIs(t, err, usecase.ErrNoRecipients)
	assert.Equal(t, 1, mailer.calls)
}
