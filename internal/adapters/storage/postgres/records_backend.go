package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"medication-tracker/internal/domain/records"
)

// RecordsBackend guarda cada colección como una fila (owner_id, key) con el
// array JSON completo. Put es un upsert: sobrescribe sin versionar.
// La columna es json (no jsonb) para devolver el texto tal cual se guardó.
type RecordsBackend struct {
	db *sql.DB
}

var _ records.Backend = (*RecordsBackend)(nil)

func NewRecordsBackend(db *sql.DB) *RecordsBackend {
	return &RecordsBackend{db: db}
}

func (r *RecordsBackend) Get(ctx context.Context, owner, key string) ([]byte, error) {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return nil, ErrOwnerRequired
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT payload::text
		FROM record_collections
		WHERE owner_id = $1 AND key = $2
	`, owner, key)

	var payload string
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return []byte(payload), nil
}

// Put falla si el payload no es JSON válido (columna json); el Store
// siempre escribe JSON, así que eso sería un bug del caller.
func (r *RecordsBackend) Put(ctx context.Context, owner, key string, payload []byte) error {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return ErrOwnerRequired
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO record_collections (owner_id, key, payload, updated_at)
		VALUES ($1, $2, $3::json, now())
		ON CONFLICT (owner_id, key)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at
	`, owner, key, string(payload))
	return err
}
