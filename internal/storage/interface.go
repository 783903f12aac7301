package storage

import "context"

// Storage is an opaque key-value store holding serialized snapshots.
// Get returns model.ErrKeyNotFound when the key is absent.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
