package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"medication-tracker/internal/domain/records"
)

var ErrOwnerRequired = errors.New("owner required")

type recordsBackend struct {
	mu      sync.RWMutex
	byOwner map[string]map[string][]byte
}

// NewRecordsBackend es el backend in-memory (dev/tests). Se pierde al reiniciar.
func NewRecordsBackend() records.Backend {
	return &recordsBackend{
		byOwner: make(map[string]map[string][]byte),
	}
}

func (b *recordsBackend) Get(ctx context.Context, owner, key string) ([]byte, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, ErrOwnerRequired
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	v, ok := b.byOwner[owner][key]
	if !ok {
		return nil, nil
	}
	// copia: el caller no debe poder mutar lo guardado
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (b *recordsBackend) Put(ctx context.Context, owner, key string, payload []byte) error {
	if strings.TrimSpace(owner) == "" {
		return ErrOwnerRequired
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	keys, ok := b.byOwner[owner]
	if !ok {
		keys = make(map[string][]byte)
		b.byOwner[owner] = keys
	}
	v := make([]byte, len(payload))
	copy(v, payload)
	keys[key] = v
	return nil
}
