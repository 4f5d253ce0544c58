package scheduling

import "time"

// Resolved is the effective slot of one employee on one date.
type Resolved struct {
	EmployeeID uint      `json:"employee_id"`
	Date       time.Time `json:"-"`
	Slot       Slot      `json:"shift_id"`
	Overridden bool      `json:"overridden"`
}

// Roster bundles the inputs fetched for a request: catalog, current assignments and
// the exceptions in the queried window. It is immutable after construction and
// safe for concurrent use.
type Roster struct {
	catalog     *Catalog
	assignments map[uint]Assignment
	exceptions  ExceptionIndex
}

func NewRoster(catalog *Catalog, assignments []Assignment, exceptions []Exception) *Roster {
	byEmployee := make(map[uint]Assignment, len(assignments))
	current := make(map[uint]uint, len(assignments))
	for _, a := range assignments {
		byEmployee[a.EmployeeID] = a
		current[a.EmployeeID] = a.ID
	}
	return &Roster{
		catalog:     catalog,
		assignments: byEmployee,
		exceptions:  IndexExceptions(exceptions, current),
	}
}

// ResolveShift runs resolver and overlay for one employee. Employees without an
// assignment resolve to NoShift and their exceptions stay inert. A dangling cycle
// reference resolves to NoShift and is reported as a NotFoundError for logging.
func (r *Roster) ResolveShift(employeeID uint, date time.Time) (Resolved, error) {
	date = Day(date)
	out := Resolved{EmployeeID: employeeID, Date: date}

	a, ok := r.assignments[employeeID]
	if !ok {
		return out, nil
	}

	base := NoShift()
	cycle, err := r.catalog.Get(a.CycleID)
	if err == nil {
		base = Resolve(a, cycle, date)
	}

	ex := r.exceptions.Lookup(employeeID, date)
	out.Slot = Apply(base, ex)
	out.Overridden = ex != nil
	return out, err
}

// ResolveDay resolves every listed employee on date. Dangling references are
// collected, never fatal.
func (r *Roster) ResolveDay(employeeIDs []uint, date time.Time) ([]Resolved, []error) {
	out := make([]Resolved, 0, len(employeeIDs))
	var errs []error
	for _, id := range employeeIDs {
		res, err := r.ResolveShift(id, date)
		if err != nil {
			errs = append(errs, err)
		}
		out = append(out, res)
	}
	return out, errs
}
