package records

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"medication-tracker/internal/platform/logger"
	"medication-tracker/internal/platform/metrics"
)

// Store es el Record Store: carga y sobrescribe colecciones completas
// sobre un Backend. No hay updates parciales, migraciones ni versión de esquema.
//
// Política ante payload corrupto: fail-closed por key. Si una key no parsea,
// esa colección se carga vacía, se loguea un warn y el payload queda intacto
// hasta que el próximo save de esa key lo sobrescriba.
type Store struct {
	backend Backend
	log     logger.Logger
	metrics *metrics.Collector
}

type StoreOptions struct {
	Logger  logger.Logger
	Metrics *metrics.Collector
}

func NewStore(backend Backend, opts StoreOptions) *Store {
	l := opts.Logger
	if l == nil {
		l = logger.Nop()
	}
	return &Store{
		backend: backend,
		log:     l,
		metrics: opts.Metrics,
	}
}

// Load lee ambas colecciones del owner. Keys ausentes => colecciones vacías.
func (s *Store) Load(ctx context.Context, owner string) (Collections, error) {
	meds, err := loadKey[Medicine](ctx, s, owner, KeyMedicines)
	if err != nil {
		return Collections{}, err
	}
	logs, err := loadKey[MedicineLog](ctx, s, owner, KeyLogs)
	if err != nil {
		return Collections{}, err
	}
	return Collections{Medicines: meds, Logs: logs}, nil
}

func (s *Store) SaveMedicines(ctx context.Context, owner string, meds []Medicine) error {
	return saveKey(ctx, s, owner, KeyMedicines, meds)
}

func (s *Store) SaveLogs(ctx context.Context, owner string, logs []MedicineLog) error {
	return saveKey(ctx, s, owner, KeyLogs, logs)
}

func loadKey[T any](ctx context.Context, s *Store, owner, key string) ([]T, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, ErrInvalidInput
	}

	raw, err := s.backend.Get(ctx, owner, key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}

	out := make([]T, 0)
	if len(raw) == 0 {
		return out, nil
	}

	var decoded []T
	if err := json.Unmarshal(raw, &decoded); err != nil {
		s.log.Warn("stored collection is not valid json; using empty collection", map[string]any{
			"owner": owner,
			"key":   key,
			"error": err,
		})
		return out, nil
	}

	// "null" persistido también cuenta como vacío.
	if decoded == nil {
		return out, nil
	}
	return decoded, nil
}

func saveKey[T any](ctx context.Context, s *Store, owner, key string, items []T) error {
	if strings.TrimSpace(owner) == "" {
		return ErrInvalidInput
	}
	if items == nil {
		items = []T{}
	}

	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.backend.Put(ctx, owner, key, b); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}

	s.metrics.IncRecordSave(key)
	return nil
}
