package storage

import (
	"context"
	"errors"
	"fmt"
)

const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

var ErrUnknownBackend = errors.New("storage: unknown backend")

type Options struct {
	Backend     string
	SQLitePath  string
	RedisAddr   string
	RedisDB     int
	RedisPrefix string
}

func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case BackendSQLite, "":
		return OpenSQLite(opts.SQLitePath)
	case BackendRedis:
		return OpenRedis(ctx, opts.RedisAddr, opts.RedisDB, opts.RedisPrefix)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}
