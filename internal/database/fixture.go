package database

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixture is the YAML seed file. Shifts are referenced by short name, groups by
// name and employees by personnel number; "-" in a cycle week is a free day.
type Fixture struct {
	Admin        AdminFixture         `yaml:"admin"`
	Shifts       []ShiftFixture       `yaml:"shifts"`
	Groups       []string             `yaml:"groups"`
	Employees    []EmployeeFixture    `yaml:"employees"`
	Cycles       []CycleFixture       `yaml:"cycles"`
	Assignments  []AssignmentFixture  `yaml:"assignments"`
	Requirements []RequirementFixture `yaml:"requirements"`
}

type AdminFixture struct {
	Name     string `yaml:"name"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type ShiftFixture struct {
	ShortName string `yaml:"short_name"`
	Name      string `yaml:"name"`
	Color     string `yaml:"color"`
	TextColor string `yaml:"text_color"`
}

type EmployeeFixture struct {
	PersonnelNo string   `yaml:"personnel_no"`
	Name        string   `yaml:"name"`
	Email       string   `yaml:"email"`
	Groups      []string `yaml:"groups"`
}

type CycleFixture struct {
	Name  string     `yaml:"name"`
	Weeks [][]string `yaml:"weeks"`
}

type AssignmentFixture struct {
	PersonnelNo string `yaml:"personnel_no"`
	Cycle       string `yaml:"cycle"`
	StartDate   string `yaml:"start_date"`
}

type RequirementFixture struct {
	Shift   string `yaml:"shift"`
	Weekday int    `yaml:"weekday"`
	Date    string `yaml:"date"` // set for a special requirement
	Group   string `yaml:"group"`
	Min     int    `yaml:"min"`
	Max     int    `yaml:"max"`
}

// LoadFixture reads and strictly decodes a seed file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	return ParseFixture(data)
}

func ParseFixture(data []byte) (*Fixture, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f Fixture
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding fixture: %w", err)
	}
	return &f, nil
}
