package data

import (
	"context"
	"errors"
	"sync"
)

// MemoryKVStore is a process-local ports.KeyValueStore. State is lost on exit.
type MemoryKVStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryKVStore creates an empty MemoryKVStore.
func NewMemoryKVStore() *MemoryKVStore {
	return &MemoryKVStore{values: make(map[string][]byte)}
}

func (m *MemoryKVStore) Get(_ context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.New("key cannot be empty")
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryKVStore) Set(_ context.Context, key string, value []byte) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryKVStore) Delete(_ context.Context, key string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
