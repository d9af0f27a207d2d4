package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

// Store is a string key-value store. Values are opaque to the store; callers
// own their serialization.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
