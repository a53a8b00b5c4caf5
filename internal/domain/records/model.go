package records

// Medicine es un medicamento registrado por el usuario.
// El nombre NO es único: los logs se asocian por nombre, así que dos
// medicamentos con el mismo nombre comparten historial.
type Medicine struct {
	Name   string `json:"name"`
	Dosage string `json:"dosage"`
}

// MedicineLog es una toma registrada con sus síntomas/notas.
// Referencia débil a Medicine por MedicineName (sin integridad referencial).
type MedicineLog struct {
	MedicineName string `json:"medicineName"`
	Date         string `json:"date"` // YYYY-MM-DD
	Time         string `json:"time"` // HH:MM
	Symptoms     string `json:"symptoms"`
}

// Collections es el contenido completo del store de un owner.
type Collections struct {
	Medicines []Medicine    `json:"medicines"`
	Logs      []MedicineLog `json:"logs"`
}
