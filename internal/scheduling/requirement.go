package scheduling

import "time"

// Requirement is a weekly recurring staffing bound. Max == 0 means unbounded.
type Requirement struct {
	ShiftID uint
	Weekday int
	GroupID *uint
	Min     int
	Max     int
}

// SpecialRequirement is a date-specific bound overriding the weekly one for the
// same (shift, group).
type SpecialRequirement struct {
	ShiftID uint
	Date    time.Time
	GroupID *uint
	Min     int
	Max     int
}

func (r Requirement) Validate() error {
	if r.Weekday < 0 || r.Weekday >= DaysPerWeek {
		return invalid("weekday", "must be 0 (Monday) to 6 (Sunday), got %d", r.Weekday)
	}
	return validateBounds(r.ShiftID, r.Min, r.Max)
}

func (r SpecialRequirement) Validate() error {
	if r.Date.IsZero() {
		return invalid("date", "is required")
	}
	return validateBounds(r.ShiftID, r.Min, r.Max)
}

func validateBounds(shiftID uint, min, max int) error {
	if shiftID == 0 {
		return invalid("shift_id", "is required")
	}
	if min < 0 {
		return invalid("min", "must be >= 0, got %d", min)
	}
	if max < 0 {
		return invalid("max", "must be >= 0, got %d", max)
	}
	return nil
}

// Source tells where a verdict's bounds came from.
type Source string

const (
	SourceNone    Source = "not_configured"
	SourceWeekly  Source = "weekly"
	SourceSpecial Source = "special"
)

// Verdict is the outcome of checking one (date, shift, group) cell.
type Verdict struct {
	ShiftID     uint   `json:"shift_id"`
	Date        string `json:"date"`
	GroupID     *uint  `json:"group_id,omitempty"`
	Actual      int    `json:"actual"`
	Defined     bool   `json:"defined"`
	Source      Source `json:"source"`
	Min         int    `json:"min"`
	Max         int    `json:"max"`
	ViolatesMin bool   `json:"violates_min"`
	ViolatesMax bool   `json:"violates_max"`
}

type groupKey struct {
	id  uint
	set bool
}

func keyOf(groupID *uint) groupKey {
	if groupID == nil {
		return groupKey{}
	}
	return groupKey{id: *groupID, set: true}
}

type weeklyKey struct {
	shiftID uint
	weekday int
	group   groupKey
}

type specialKey struct {
	shiftID uint
	date    string
	group   groupKey
}

type bound struct{ min, max int }

// Matcher resolves bounds for (shift, date, group): special first, then weekly.
type Matcher struct {
	weekly  map[weeklyKey]bound
	special map[specialKey]bound
}

func NewMatcher(weekly []Requirement, special []SpecialRequirement) *Matcher {
	m := &Matcher{
		weekly:  make(map[weeklyKey]bound, len(weekly)),
		special: make(map[specialKey]bound, len(special)),
	}
	for _, r := range weekly {
		m.weekly[weeklyKey{r.ShiftID, r.Weekday, keyOf(r.GroupID)}] = bound{r.Min, r.Max}
	}
	for _, r := range special {
		m.special[specialKey{r.ShiftID, FormatDate(r.Date), keyOf(r.GroupID)}] = bound{r.Min, r.Max}
	}
	return m
}

// Check compares actual against the applicable bound. Undefined cells never
// violate. Only ViolatesMax is an error state; ViolatesMin is advisory.
func (m *Matcher) Check(shiftID uint, date time.Time, groupID *uint, actual int) Verdict {
	v := Verdict{
		ShiftID: shiftID,
		Date:    FormatDate(date),
		GroupID: groupID,
		Actual:  actual,
		Source:  SourceNone,
	}

	g := keyOf(groupID)
	b, ok := m.special[specialKey{shiftID, FormatDate(date), g}]
	if ok {
		v.Source = SourceSpecial
	} else if b, ok = m.weekly[weeklyKey{shiftID, Weekday(date), g}]; ok {
		v.Source = SourceWeekly
	} else {
		return v
	}

	v.Defined = true
	v.Min, v.Max = b.min, b.max
	v.ViolatesMax = b.max > 0 && actual > b.max
	v.ViolatesMin = actual < b.min
	return v
}

// ShiftsOn lists shift ids that carry any bound on date for the group, so cells
// with zero staff still get checked.
func (m *Matcher) ShiftsOn(date time.Time, groupID *uint) []uint {
	g := keyOf(groupID)
	day := FormatDate(date)
	wd := Weekday(date)
	seen := make(map[uint]bool)
	var ids []uint
	for k := range m.special {
		if k.date == day && k.group == g && !seen[k.shiftID] {
			seen[k.shiftID] = true
			ids = append(ids, k.shiftID)
		}
	}
	for k := range m.weekly {
		if k.weekday == wd && k.group == g && !seen[k.shiftID] {
			seen[k.shiftID] = true
			ids = append(ids, k.shiftID)
		}
	}
	return ids
}
