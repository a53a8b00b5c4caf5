package records

import (
	"sort"
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// MostRecentLogs filtra por nombre exacto y ordena por date+time descendente.
// El orden entre timestamps iguales es el de inserción (sort estable).
// Timestamps que no parsean quedan al final. limit <= 0 => vacío.
func MostRecentLogs(logs []MedicineLog, medicineName string, limit int) []MedicineLog {
	if limit <= 0 {
		return []MedicineLog{}
	}

	out := LogsFor(logs, medicineName)
	sort.SliceStable(out, func(i, j int) bool {
		return logInstant(out[i]).After(logInstant(out[j]))
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// LogsFor devuelve los logs del medicamento en orden de registro.
func LogsFor(logs []MedicineLog, medicineName string) []MedicineLog {
	out := make([]MedicineLog, 0)
	for _, l := range logs {
		if l.MedicineName == medicineName {
			out = append(out, l)
		}
	}
	return out
}

// NotesFor concatena los síntomas de todos los logs del medicamento, uno por línea.
func NotesFor(logs []MedicineLog, medicineName string) string {
	matched := LogsFor(logs, medicineName)
	parts := make([]string, 0, len(matched))
	for _, l := range matched {
		parts = append(parts, l.Symptoms)
	}
	return strings.Join(parts, "\n")
}

// logInstant combina date y time en hora local de pared (sin zona).
func logInstant(l MedicineLog) time.Time {
	t, ok := parseDateTime(l.Date, l.Time)
	if !ok {
		return time.Time{}
	}
	return t
}

func parseDateTime(date, clock string) (time.Time, bool) {
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)

	for _, layout := range []string{dateLayout + "T" + timeLayout, dateLayout + "T15:04:05"} {
		if t, err := time.Parse(layout, date+"T"+clock); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
