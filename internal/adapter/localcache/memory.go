package localcache

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Memory is a bounded in-memory cache evicting the least recently used key.
type Memory struct {
	entries *lru.Cache[string, []byte]
}

// NewMemory creates a cache holding at most maxEntries keys.
func NewMemory(maxEntries int) (*Memory, error) {
	entries, err := lru.New[string, []byte](maxEntries)
	if err != nil {
		return nil, fmt.Errorf("localcache: create lru: %w", err)
	}
	return &Memory{entries: entries}, nil
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := m.entries.Get(key)
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.entries.Add(key, append([]byte(nil), value...))
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.entries.Remove(key)
	return nil
}

func (m *Memory) Ping(_ context.Context) error { return nil }

func (m *Memory) Close() error {
	m.entries.Purge()
	return nil
}
