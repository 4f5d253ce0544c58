package scheduling

// Members restricts aggregation to a group's employees. A nil Members means no
// filter.
type Members map[uint]struct{}

func NewMembers(ids ...uint) Members {
	m := make(Members, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return m
}

func (m Members) Contains(id uint) bool {
	if m == nil {
		return true
	}
	_, ok := m[id]
	return ok
}

// Aggregate counts employees per shift among the resolved slots of a single date.
// Entries with NoShift are skipped; each employee is counted at most once.
func Aggregate(resolved []Resolved, filter Members) map[uint]int {
	counts := make(map[uint]int)
	seen := make(map[uint]bool, len(resolved))
	for _, r := range resolved {
		if seen[r.EmployeeID] || !filter.Contains(r.EmployeeID) {
			continue
		}
		id, ok := r.Slot.ShiftID()
		if !ok {
			continue
		}
		seen[r.EmployeeID] = true
		counts[id]++
	}
	return counts
}
