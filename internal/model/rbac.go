package model

const (
	RoleAdmin   = "Admin"   // everything, including accounts and reference data
	RolePlanner = "Planner" // assignments, exceptions, requirements
	RoleViewer  = "Viewer"
)

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RolePlanner, RoleViewer:
		return true
	}
	return false
}

// All lists every model for AutoMigrate.
func All() []any {
	return []any{
		&User{},
		&ShiftType{},
		&ShiftCycle{},
		&CycleAssignment{},
		&CycleException{},
		&StaffingRequirement{},
		&SpecialStaffingRequirement{},
		&Employee{},
		&Group{},
		&Absence{},
		&OvertimeEntry{},
	}
}
