package records

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// Service aplica las mutaciones del dashboard sobre el Store.
//
// Cada mutación es load -> append -> overwrite de la colección completa.
// Dentro del proceso los ciclos se serializan con mu (single writer); entre
// procesos distintos sobre el mismo backend gana la última escritura.
type Service struct {
	store *Store
	now   func() time.Time

	mu sync.Mutex
}

func NewService(store *Store) *Service {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

type AddMedicineInput struct {
	Name   string `validate:"required"`
	Dosage string `validate:"required"`
}

type TrackInput struct {
	Date     string `validate:"required,datetime=2006-01-02"`
	Time     string `validate:"required,datetime=15:04"`
	Symptoms string
}

// DashboardEntry es una tarjeta del dashboard.
type DashboardEntry struct {
	Index     int
	Medicine  Medicine
	LastTaken *MedicineLog
}

// Snapshot devuelve ambas colecciones tal como están persistidas (export).
func (s *Service) Snapshot(ctx context.Context, owner string) (Collections, error) {
	return s.store.Load(ctx, owner)
}

// AddMedicine agrega un medicamento. No se controla duplicado por nombre.
func (s *Service) AddMedicine(ctx context.Context, owner string, in AddMedicineInput) (Medicine, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Dosage = strings.TrimSpace(in.Dosage)
	if err := validateStruct(in); err != nil {
		return Medicine{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.store.Load(ctx, owner)
	if err != nil {
		return Medicine{}, err
	}

	m := Medicine{Name: in.Name, Dosage: in.Dosage}
	meds := append(c.Medicines, m)
	if err := s.store.SaveMedicines(ctx, owner, meds); err != nil {
		return Medicine{}, err
	}
	return m, nil
}

// TrackMedicine registra una toma del medicamento en la posición index
// (como el botón "Track" de cada tarjeta). El log guarda el nombre, no el índice.
func (s *Service) TrackMedicine(ctx context.Context, owner string, index int, in TrackInput) (MedicineLog, error) {
	if err := validateTrack(&in); err != nil {
		return MedicineLog{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.store.Load(ctx, owner)
	if err != nil {
		return MedicineLog{}, err
	}
	if index < 0 || index >= len(c.Medicines) {
		return MedicineLog{}, ErrNotFound
	}

	l := MedicineLog{
		MedicineName: c.Medicines[index].Name,
		Date:         in.Date,
		Time:         in.Time,
		Symptoms:     in.Symptoms,
	}
	if err := s.store.SaveLogs(ctx, owner, append(c.Logs, l)); err != nil {
		return MedicineLog{}, err
	}
	return l, nil
}

// Track registra un log por nombre. No valida que el medicamento exista:
// un log huérfano se guarda igual y simplemente no aparece bajo ningún medicamento.
func (s *Service) Track(ctx context.Context, owner string, medicineName string, in TrackInput) (MedicineLog, error) {
	// Mismo trim que AddMedicine, si no el log nunca matchea por nombre.
	medicineName = strings.TrimSpace(medicineName)
	if medicineName == "" {
		return MedicineLog{}, ErrInvalidInput
	}
	if err := validateTrack(&in); err != nil {
		return MedicineLog{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.store.Load(ctx, owner)
	if err != nil {
		return MedicineLog{}, err
	}

	l := MedicineLog{
		MedicineName: medicineName,
		Date:         in.Date,
		Time:         in.Time,
		Symptoms:     in.Symptoms,
	}
	if err := s.store.SaveLogs(ctx, owner, append(c.Logs, l)); err != nil {
		return MedicineLog{}, err
	}
	return l, nil
}

// Dashboard arma las tarjetas: cada medicamento con su log más reciente (si hay).
func (s *Service) Dashboard(ctx context.Context, owner string) ([]DashboardEntry, error) {
	c, err := s.store.Load(ctx, owner)
	if err != nil {
		return nil, err
	}

	out := make([]DashboardEntry, 0, len(c.Medicines))
	for i, m := range c.Medicines {
		e := DashboardEntry{Index: i, Medicine: m}
		if recent := MostRecentLogs(c.Logs, m.Name, 1); len(recent) > 0 {
			last := recent[0]
			e.LastTaken = &last
		}
		out = append(out, e)
	}
	return out, nil
}

func (s *Service) LogsFor(ctx context.Context, owner, medicineName string) ([]MedicineLog, error) {
	c, err := s.store.Load(ctx, owner)
	if err != nil {
		return nil, err
	}
	return LogsFor(c.Logs, medicineName), nil
}

// Notes devuelve las notas concatenadas que alimentan el pedido de insights.
func (s *Service) Notes(ctx context.Context, owner, medicineName string) (string, error) {
	c, err := s.store.Load(ctx, owner)
	if err != nil {
		return "", err
	}
	return NotesFor(c.Logs, medicineName), nil
}

// CurrentDate / CurrentTime son los valores por defecto del diálogo de tracking.
func (s *Service) CurrentDate() string { return s.now().Format(dateLayout) }
func (s *Service) CurrentTime() string { return s.now().Format(timeLayout) }

func validateTrack(in *TrackInput) error {
	in.Date = strings.TrimSpace(in.Date)
	in.Time = strings.TrimSpace(in.Time)
	return validateStruct(*in)
}
