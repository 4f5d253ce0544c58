package testutil

import (
	"testing"

	"schichtplan-backend/config"
	"schichtplan-backend/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewTestDB returns a migrated in-memory SQLite database private to the test.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := config.Open(sqlite.Open(":memory:"))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every new connection to ":memory:" would see an empty database.
	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() { sqlDB.Close() })
	return db
}

// Shift inserts a shift type and returns its id.
func Shift(t *testing.T, db *gorm.DB, short string) uint {
	t.Helper()
	s := model.ShiftType{Name: short, ShortName: short}
	require.NoError(t, db.Create(&s).Error)
	return s.ID
}

// Employee inserts an active employee and returns its id.
func Employee(t *testing.T, db *gorm.DB, personnelNo string) uint {
	t.Helper()
	e := model.Employee{Name: "Employee " + personnelNo, PersonnelNo: personnelNo, IsActive: true}
	require.NoError(t, db.Create(&e).Error)
	return e.ID
}

// Cycle inserts a cycle with the given flat pattern.
func Cycle(t *testing.T, db *gorm.DB, name string, weekCount int, pattern []*uint) uint {
	t.Helper()
	c := model.ShiftCycle{Name: name, WeekCount: weekCount, Pattern: pattern}
	require.NoError(t, db.Create(&c).Error)
	return c.ID
}

// Ptr returns a pointer to id, for building cycle patterns.
func Ptr(id uint) *uint { return &id }
