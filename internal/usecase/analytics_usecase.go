package usecase

import (
	"context"
	"fmt"
	"schichtplan-backend/internal/model"
	"schichtplan-backend/internal/repository"
	"schichtplan-backend/internal/scheduling"
	"time"

	"go.uber.org/zap"
)

const (
	MetricSick     = "sick"
	MetricOvertime = "overtime"
	MetricStaffing = "staffing"
)

// AnalyticsUsecase builds monthly series and runs the 2σ anomaly test on them.
type AnalyticsUsecase struct {
	stats     repository.StatisticsRepository
	absences  repository.AbsenceRepository
	staffing  *StaffingUsecase
	maxMonths int
	spanGap   int
	log       *zap.Logger
}

func NewAnalyticsUsecase(stats repository.StatisticsRepository, absences repository.AbsenceRepository, staffing *StaffingUsecase, maxMonths, spanGap int, log *zap.Logger) *AnalyticsUsecase {
	return &AnalyticsUsecase{stats: stats, absences: absences, staffing: staffing, maxMonths: maxMonths, spanGap: spanGap, log: log}
}

type MonthPoint struct {
	Month   string  `json:"month"`
	Value   float64 `json:"value"`
	Anomaly bool    `json:"anomaly"`
}

type MonthlyReport struct {
	Metric  string          `json:"metric"`
	GroupID *uint           `json:"group_id,omitempty"`
	Band    scheduling.Band `json:"band"`
	Points  []MonthPoint    `json:"points"`
}

// Detect flags values above mean + 2σ.
func (u *AnalyticsUsecase) Detect(series []float64) ([]bool, scheduling.Band) {
	return scheduling.Detect(series), scheduling.NewBand(series)
}

// Monthly builds the series of the last `months` complete calendar months before
// now and flags anomalies. Months without data count as zero; months == 0 means
// the configured maximum.
func (u *AnalyticsUsecase) Monthly(ctx context.Context, metric string, months int, groupID *uint, now time.Time) (*MonthlyReport, error) {
	if months == 0 {
		months = u.maxMonths
	}
	if months < 1 || months > u.maxMonths {
		return nil, &scheduling.ValidationError{Field: "months", Reason: fmt.Sprintf("must be between 1 and %d", u.maxMonths)}
	}

	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -months, 0)
	last := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	keys := make([]string, months)
	for i := range keys {
		keys[i] = first.AddDate(0, i, 0).Format("2006-01")
	}

	values := make(map[string]float64, months)
	from, to := scheduling.FormatDate(first), scheduling.FormatDate(last)

	switch metric {
	case MetricSick:
		rows, err := u.stats.MonthlyAbsences(model.AbsenceSick, from, to, groupID)
		if err != nil {
			return nil, fmt.Errorf("loading sick days: %w", err)
		}
		for _, r := range rows {
			values[r.Month] = r.Total
		}
	case MetricOvertime:
		rows, err := u.stats.MonthlyOvertime(from, to, groupID)
		if err != nil {
			return nil, fmt.Errorf("loading overtime: %w", err)
		}
		for _, r := range rows {
			values[r.Month] = r.Total
		}
	case MetricStaffing:
		dates := scheduling.DateRange(first, last)
		totals, err := u.staffing.DailyTotals(ctx, dates, groupID)
		if err != nil {
			return nil, err
		}
		for i, d := range dates {
			values[d.Format("2006-01")] += float64(totals[i])
		}
	default:
		return nil, &scheduling.ValidationError{Field: "metric", Reason: fmt.Sprintf("unknown metric %q", metric)}
	}

	series := make([]float64, months)
	for i, k := range keys {
		series[i] = values[k]
	}
	flags, band := u.Detect(series)

	report := &MonthlyReport{Metric: metric, GroupID: groupID, Band: band, Points: make([]MonthPoint, months)}
	for i, k := range keys {
		report.Points[i] = MonthPoint{Month: k, Value: series[i], Anomaly: flags[i]}
	}
	return report, nil
}

type AbsenceSpan struct {
	From string `json:"from"`
	To   string `json:"to"`
	Days int    `json:"days"`
}

// AbsenceSpans merges one employee's absences of a kind into spans, bridging gaps
// up to the configured day count.
func (u *AnalyticsUsecase) AbsenceSpans(employeeID uint, kind, from, to string) ([]AbsenceSpan, error) {
	rows, err := u.absences.Find(&employeeID, kind, from, to)
	if err != nil {
		return nil, fmt.Errorf("loading absences: %w", err)
	}
	dates := make([]time.Time, 0, len(rows))
	for _, r := range rows {
		d, err := scheduling.ParseDate(r.Date)
		if err != nil {
			u.log.Warn("skipping absence with bad date", zap.Uint("absence_id", r.ID), zap.Error(err))
			continue
		}
		dates = append(dates, d)
	}

	spans := scheduling.MergeSpans(dates, u.spanGap)
	out := make([]AbsenceSpan, 0, len(spans))
	for _, s := range spans {
		out = append(out, AbsenceSpan{From: scheduling.FormatDate(s.From), To: scheduling.FormatDate(s.To), Days: s.Days})
	}
	return out, nil
}
