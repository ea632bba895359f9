// Package localcache provides the fast, process-local tier that mirrors study
// sessions. Two drivers exist: an in-memory LRU and a SQLite file that
// survives restarts.
package localcache

import (
	"context"
	"fmt"

	"github.com/yoonbyeo/quizflow/internal/config"
)

// Cache is a small byte-oriented key/value store.
// Get reports false for a missing key.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

// Open creates the cache selected by cfg.Driver.
func Open(ctx context.Context, cfg config.LocalCacheConfig) (Cache, error) {
	switch cfg.Driver {
	case "memory":
		return NewMemory(cfg.MaxEntries)
	case "sqlite":
		return OpenSQLite(ctx, cfg.Path)
	default:
		return nil, fmt.Errorf("localcache: unknown driver %q", cfg.Driver)
	}
}
