package scheduling

import (
	"sort"
	"time"
)

// Span is an inclusive run of dates.
type Span struct {
	From time.Time `json:"-"`
	To   time.Time `json:"-"`
	Days int       `json:"days"`
}

// MergeSpans groups dates into spans, bridging gaps of up to maxGap days between
// consecutive dates (a gap of 3 joins Friday to Monday). Days counts only the
// dates present, not the bridged ones. Duplicates are ignored.
func MergeSpans(dates []time.Time, maxGap int) []Span {
	if len(dates) == 0 {
		return nil
	}
	sorted := make([]time.Time, len(dates))
	for i, d := range dates {
		sorted[i] = Day(d)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	var spans []Span
	cur := Span{From: sorted[0], To: sorted[0], Days: 1}
	for _, d := range sorted[1:] {
		gap := DaysBetween(cur.To, d)
		switch {
		case gap == 0:
			continue
		case gap <= maxGap:
			cur.To = d
			cur.Days++
		default:
			spans = append(spans, cur)
			cur = Span{From: d, To: d, Days: 1}
		}
	}
	return append(spans, cur)
}
