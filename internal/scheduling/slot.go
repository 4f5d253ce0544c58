package scheduling

import (
	"encoding/json"
	"strconv"
)

// Slot is the resolved value of one (employee, date) cell: either no shift or a
// shift type id. The zero value is NoShift.
type Slot struct {
	shiftID uint
	set     bool
}

// NoShift is the empty slot.
func NoShift() Slot { return Slot{} }

// ShiftOf returns a slot holding the given shift type id.
func ShiftOf(id uint) Slot { return Slot{shiftID: id, set: true} }

// ShiftID returns the shift id and whether the slot holds one.
func (s Slot) ShiftID() (uint, bool) { return s.shiftID, s.set }

func (s Slot) IsNone() bool { return !s.set }

func (s Slot) String() string {
	if !s.set {
		return "none"
	}
	return strconv.FormatUint(uint64(s.shiftID), 10)
}

// MarshalJSON renders NoShift as null and a shift as its id.
func (s Slot) MarshalJSON() ([]byte, error) {
	if !s.set {
		return []byte("null"), nil
	}
	return json.Marshal(s.shiftID)
}

func (s *Slot) UnmarshalJSON(data []byte) error {
	var id *uint
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	if id == nil {
		*s = NoShift()
		return nil
	}
	*s = ShiftOf(*id)
	return nil
}

// SlotFromPtr converts a nullable shift reference into a slot.
func SlotFromPtr(id *uint) Slot {
	if id == nil {
		return NoShift()
	}
	return ShiftOf(*id)
}

// Ptr converts the slot back into a nullable shift reference.
func (s Slot) Ptr() *uint {
	if !s.set {
		return nil
	}
	id := s.shiftID
	return &id
}
