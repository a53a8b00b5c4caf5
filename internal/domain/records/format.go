package records

import (
	"strings"
	"time"
)

// InvalidDate es lo que se renderiza cuando date/time no parsean.
const InvalidDate = "Invalid Date"

// FormatDateTime: "Jan 1, 8:00 AM" (tarjeta del dashboard, "last taken").
func FormatDateTime(date, clock string) string {
	t, ok := parseDateTime(date, clock)
	if !ok {
		return InvalidDate
	}
	return t.Format("Jan 2, 3:04 PM")
}

// FormatDate: "January 1, 2024". Se formatea la fecha de calendario tal cual,
// sin pasar por UTC (evita que 2024-01-01 se muestre como Dec 31).
func FormatDate(date string) string {
	t, err := time.Parse(dateLayout, strings.TrimSpace(date))
	if err != nil {
		return InvalidDate
	}
	return t.Format("January 2, 2006")
}

// FormatTime: "8:00 AM", "12:30 PM", "12:05 AM".
func FormatTime(clock string) string {
	clock = strings.TrimSpace(clock)
	for _, layout := range []string{timeLayout, "15:04:05"} {
		if t, err := time.Parse(layout, clock); err == nil {
			return t.Format("3:04 PM")
		}
	}
	return InvalidDate
}
