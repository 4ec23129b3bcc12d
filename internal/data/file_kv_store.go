package data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileKVStore implements ports.KeyValueStore as a single JSON document on disk.
// Values must be valid JSON; every write rewrites the document through a temp file
// and a rename so a crash never leaves a truncated file behind.
type FileKVStore struct {
	path string

	mu     sync.Mutex
	loaded bool
	values map[string]json.RawMessage
}

// NewFileKVStore creates a store backed by path. The file is created on first write.
func NewFileKVStore(path string) *FileKVStore {
	return &FileKVStore{path: path}
}

// Path returns the backing file location.
func (f *FileKVStore) Path() string { return f.path }

func (f *FileKVStore) Get(_ context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.New("key cannot be empty")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.loadLocked(); err != nil {
		return nil, err
	}
	v, ok := f.values[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (f *FileKVStore) Set(_ context.Context, key string, value []byte) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}
	if !json.Valid(value) {
		return fmt.Errorf("value for %q is not valid JSON", key)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.loadLocked(); err != nil {
		return err
	}
	f.values[key] = append(json.RawMessage(nil), value...)
	return f.flushLocked()
}

func (f *FileKVStore) Delete(_ context.Context, key string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.loadLocked(); err != nil {
		return err
	}
	if _, ok := f.values[key]; !ok {
		return nil
	}
	delete(f.values, key)
	return f.flushLocked()
}

func (f *FileKVStore) loadLocked() error {
	if f.loaded {
		return nil
	}
	values := make(map[string]json.RawMessage)
	b, err := os.ReadFile(f.path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return fmt.Errorf("read state file: %w", err)
	case len(b) > 0:
		if err := json.Unmarshal(b, &values); err != nil {
			return fmt.Errorf("decode state file: %w", err)
		}
	}
	f.values = values
	f.loaded = true
	return nil
}

func (f *FileKVStore) flushLocked() error {
	b, err := json.MarshalIndent(f.values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state file: %w", err)
	}
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".state-*.json")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(b); err != nil {
		return errors.Join(fmt.Errorf("write temp state file: %w", err), tmp.Close(), os.Remove(tmpName))
	}
	if err := tmp.Close(); err != nil {
		return errors.Join(fmt.Errorf("close temp state file: %w", err), os.Remove(tmpName))
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return errors.Join(fmt.Errorf("replace state file: %w", err), os.Remove(tmpName))
	}
	return nil
}
