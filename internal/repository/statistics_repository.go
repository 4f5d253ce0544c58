package repository

import (
	"schichtplan-backend/internal/model"

	"gorm.io/gorm"
)

// MonthlyValue is one bucket of a monthly series; Month is YYYY-MM.
type MonthlyValue struct {
	Month string
	Total float64
}

type StatisticsRepository interface {
	MonthlyAbsences(kind, from, to string, groupID *uint) ([]MonthlyValue, error)
	MonthlyOvertime(from, to string, groupID *uint) ([]MonthlyValue, error)
}

type statisticsRepository struct {
	db *gorm.DB
}

func NewStatisticsRepository(db *gorm.DB) StatisticsRepository {
	return &statisticsRepository{db}
}

// SUBSTR(date, 1, 7) works on YYYY-MM-DD strings in both MySQL and SQLite.
const monthExpr = "SUBSTR(date, 1, 7)"

func inGroup(groupID *uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if groupID == nil {
			return db
		}
		return db.Where("employee_id IN (?)", db.Session(&gorm.Session{NewDB: true}).
			Table("group_members").Select("employee_id").Where("group_id = ?", *groupID))
	}
}

func (r *statisticsRepository) MonthlyAbsences(kind, from, to string, groupID *uint) ([]MonthlyValue, error) {
	var rows []MonthlyValue
	err := r.db.Model(&model.Absence{}).
		Scopes(inGroup(groupID)).
		Where("kind = ? AND date >= ? AND date <= ?", kind, from, to).
		Select(monthExpr + " AS month, COUNT(*) AS total").
		Group(monthExpr).Order("month asc").
		Scan(&rows).Error
	return rows, err
}

func (r *statisticsRepository) MonthlyOvertime(from, to string, groupID *uint) ([]MonthlyValue, error) {
	var rows []MonthlyValue
	err := r.db.Model(&model.OvertimeEntry{}).
		Scopes(inGroup(groupID)).
		Where("date >= ? AND date <= ?", from, to).
		Select(monthExpr + " AS month, SUM(hours) AS total").
		Group(monthExpr).Order("month asc").
		Scan(&rows).Error
	return rows, err
}
