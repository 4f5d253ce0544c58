package notify

import (
	"fmt"
	"strings"

	"schichtplan-backend/internal/scheduling"
)

// OverstaffingDigest renders the over-staffed cells of a period as a plain-text mail.
func OverstaffingDigest(from, to string, verdicts []scheduling.Verdict, shiftNames map[uint]string) (subject, body string) {
	subject = fmt.Sprintf("Personalbedarf: %d over-staffed shifts %s to %s", len(verdicts), from, to)

	var b strings.Builder
	fmt.Fprintf(&b, "Over-staffed shifts between %s and %s\n\n", from, to)
	if len(verdicts) == 0 {
		b.WriteString("None.\n")
		return subject, b.String()
	}
	for _, v := range verdicts {
		name := shiftNames[v.ShiftID]
		if name == "" {
			name = fmt.Sprintf("shift %d", v.ShiftID)
		}
		group := ""
		if v.GroupID != nil {
			group = fmt.Sprintf(" (group %d)", *v.GroupID)
		}
		fmt.Fprintf(&b, "%s  %-20s%s  %d staffed, max %d (%s)\n", v.Date, name, group, v.Actual, v.Max, v.Source)
	}
	return subject, b.String()
}
