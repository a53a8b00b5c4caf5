package bolt

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"medication-tracker/internal/domain/records"

	"go.etcd.io/bbolt"
)

var ErrOwnerRequired = errors.New("owner required")

// RecordsBackend guarda cada owner en su propio bucket; dentro, las keys
// "medicines" y "logs" con el array JSON completo.
type RecordsBackend struct {
	db *bbolt.DB
}

var _ records.Backend = (*RecordsBackend)(nil)

// Open abre (o crea) el archivo bbolt en path.
func Open(path string) (*RecordsBackend, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bolt open %s: %w", path, err)
	}
	return &RecordsBackend{db: db}, nil
}

func (b *RecordsBackend) Close() error {
	return b.db.Close()
}

func (b *RecordsBackend) Get(ctx context.Context, owner, key string) ([]byte, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, ErrOwnerRequired
	}

	var out []byte
	err := b.db.View(func(tx *bbolt.Tx) error {
		bk := tx.Bucket(bucketName(owner))
		if bk == nil {
			return nil
		}
		v := bk.Get([]byte(key))
		if v == nil {
			return nil
		}
		// v solo es válido dentro de la tx
		out = append([]byte(nil), v...)
		return nil
	})
	return out, err
}

func (b *RecordsBackend) Put(ctx context.Context, owner, key string, payload []byte) error {
	if strings.TrimSpace(owner) == "" {
		return ErrOwnerRequired
	}

	return b.db.Update(func(tx *bbolt.Tx) error {
		bk, err := tx.CreateBucketIfNotExists(bucketName(owner))
		if err != nil {
			return err
		}
		return bk.Put([]byte(key), payload)
	})
}

func bucketName(owner string) []byte {
	return []byte("owner:" + owner)
}
