package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileKV persists keys as a single JSON object on disk. Writes go through a
// temp file followed by rename so a crash mid-write never corrupts the store.
type FileKV struct {
	mu   sync.Mutex
	path string
	data map[string]string
}

// NewFileKV opens (or creates) the store at path.
func NewFileKV(path string) (*FileKV, error) {
	kv := &FileKV{path: path, data: map[string]string{}}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return kv, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read storage file: %w", err)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &kv.data); err != nil {
			return nil, fmt.Errorf("failed to parse storage file %s: %w", path, err)
		}
	}
	return kv, nil
}

// Get retrieves a value by key.
func (kv *FileKV) Get(_ context.Context, key string) (string, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	v, ok := kv.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Set stores a key-value pair and flushes to disk.
func (kv *FileKV) Set(_ context.Context, key, value string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	kv.data[key] = value
	return kv.flush()
}

// Delete removes keys and flushes to disk. Deleting an absent key is not an
// error.
func (kv *FileKV) Delete(_ context.Context, keys ...string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	for _, k := range keys {
		delete(kv.data, k)
	}
	return kv.flush()
}

// Close flushes any pending state. The file handle is not kept open between
// operations, so there is nothing else to release.
func (kv *FileKV) Close() error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	return kv.flush()
}

// flush writes the current map to disk. Caller must hold kv.mu.
func (kv *FileKV) flush() error {
	raw, err := json.MarshalIndent(kv.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal storage state: %w", err)
	}

	tmp := kv.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(kv.path), 0o755); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write storage file: %w", err)
	}
	if err := os.Rename(tmp, kv.path); err != nil {
		return fmt.Errorf("failed to replace storage file: %w", err)
	}
	return nil
}
