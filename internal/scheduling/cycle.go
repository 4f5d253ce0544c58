package scheduling

const (
	DaysPerWeek  = 7
	MinWeekCount = 1
	MaxWeekCount = 12
)

// ShiftCycle is a validated recurring pattern of WeekCount weeks. Pattern is a flat
// grid indexed by week*7 + weekday.
type ShiftCycle struct {
	ID        uint
	Name      string
	WeekCount int
	Pattern   []Slot
}

// NewShiftCycle validates the week count and pattern length.
func NewShiftCycle(id uint, name string, weekCount int, pattern []Slot) (ShiftCycle, error) {
	if weekCount < MinWeekCount || weekCount > MaxWeekCount {
		return ShiftCycle{}, invalid("week_count", "must be between %d and %d, got %d", MinWeekCount, MaxWeekCount, weekCount)
	}
	if len(pattern) != weekCount*DaysPerWeek {
		return ShiftCycle{}, invalid("pattern", "expected %d cells for %d weeks, got %d", weekCount*DaysPerWeek, weekCount, len(pattern))
	}
	cells := make([]Slot, len(pattern))
	copy(cells, pattern)
	return ShiftCycle{ID: id, Name: name, WeekCount: weekCount, Pattern: cells}, nil
}

// Cell returns the slot at (week, weekday).
func (c ShiftCycle) Cell(week, weekday int) (Slot, error) {
	if week < 0 || week >= c.WeekCount {
		return NoShift(), invalid("week", "out of range [0,%d): %d", c.WeekCount, week)
	}
	if weekday < 0 || weekday >= DaysPerWeek {
		return NoShift(), invalid("weekday", "out of range [0,7): %d", weekday)
	}
	return c.Pattern[week*DaysPerWeek+weekday], nil
}

// Week returns the seven cells of one week.
func (c ShiftCycle) Week(week int) []Slot {
	if week < 0 || week >= c.WeekCount {
		return nil
	}
	return c.Pattern[week*DaysPerWeek : (week+1)*DaysPerWeek]
}

// ShiftIDs lists the distinct shift types the cycle references.
func (c ShiftCycle) ShiftIDs() []uint {
	seen := make(map[uint]bool)
	var ids []uint
	for _, cell := range c.Pattern {
		if id, ok := cell.ShiftID(); ok && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

// Catalog is a read-only lookup of cycles by id.
type Catalog struct {
	cycles map[uint]ShiftCycle
}

func NewCatalog(cycles ...ShiftCycle) *Catalog {
	m := make(map[uint]ShiftCycle, len(cycles))
	for _, c := range cycles {
		m[c.ID] = c
	}
	return &Catalog{cycles: m}
}

// Get returns the cycle or a NotFoundError.
func (c *Catalog) Get(id uint) (ShiftCycle, error) {
	cycle, ok := c.cycles[id]
	if !ok {
		return ShiftCycle{}, &NotFoundError{Kind: "cycle", ID: id}
	}
	return cycle, nil
}

func (c *Catalog) Len() int { return len(c.cycles) }
