package data

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tijaniyah/companion/internal/ports"
)

// getJSON decodes the value under key into out. It reports false when the key is absent.
func getJSON(ctx context.Context, kv ports.KeyValueStore, key string, out any) (bool, error) {
	b, err := kv.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}
	if b == nil {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// setJSON encodes v and stores it under key.
func setJSON(ctx context.Context, kv ports.KeyValueStore, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := kv.Set(ctx, key, b); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// JSONRepo stores arbitrary JSON documents under caller-chosen keys. It backs the
// per-feature caches (journal entries, app settings, completion flags).
type JSONRepo struct {
	kv ports.KeyValueStore
}

// NewJSONRepo creates a JSONRepo on kv.
func NewJSONRepo(kv ports.KeyValueStore) *JSONRepo { return &JSONRepo{kv: kv} }

// Get decodes the document under key into out and reports whether it existed.
func (r *JSONRepo) Get(ctx context.Context, key string, out any) (bool, error) {
	return getJSON(ctx, r.kv, key, out)
}

// Put stores v under key.
func (r *JSONRepo) Put(ctx context.Context, key string, v any) error {
	return setJSON(ctx, r.kv, key, v)
}

// Delete removes key.
func (r *JSONRepo) Delete(ctx context.Context, key string) error {
	if err := r.kv.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
