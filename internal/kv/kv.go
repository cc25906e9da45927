// Package kv provides the persistence boundary for attendance data: one
// opaque JSON blob per key, replaced wholesale on every write.
package kv

import (
	"context"
	"errors"
	"fmt"

	"punchclock/internal/config"
)

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("kv: key not found")

// Store is a single-slot blob store. Set replaces the whole value for a
// key; there are no partial updates.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Open creates the store selected by the configuration.
func Open(cfg *config.Config) (Store, error) {
	switch cfg.Storage.Backend {
	case "memory":
		return NewMemory(), nil
	case "file":
		return NewFile(cfg.Storage.Dir)
	case "postgres":
		return NewPostgres(cfg.Database)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
