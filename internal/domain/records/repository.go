package records

import "context"

// Keys persistidas. Cada una guarda el array JSON completo de su colección.
const (
	KeyMedicines = "medicines"
	KeyLogs      = "logs"
)

// Backend guarda bytes crudos por (owner, key).
// Get devuelve (nil, nil) si la key no existe. Put sobrescribe el valor completo.
type Backend interface {
	Get(ctx context.Context, owner, key string) ([]byte, error)
	Put(ctx context.Context, owner, key string, payload []byte) error
}
