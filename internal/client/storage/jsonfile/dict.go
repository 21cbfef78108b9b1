// Package jsonfile implements the client stores as JSON documents on disk.
//
// Concurrent access is not supported. Two processes saving the same file race:
// the last Save wins and the other process's changes are lost. The client is a
// single interactive process, so this is accepted.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/iudanet/studysync/internal/client/storage"
)

// Dict is a string-keyed map persisted as one JSON object. The file is read
// lazily on first access and rewritten in full by Save.
type Dict[V any] struct {
	items  map[string]V
	path   string
	mu     sync.Mutex
	loaded bool
}

var _ storage.Store[struct{}] = (*Dict[struct{}])(nil)

// New создает хранилище, привязанное к файлу path. Файл может не существовать
func New[V any](path string) *Dict[V] {
	return &Dict[V]{path: path}
}

// Path returns the backing file.
func (d *Dict[V]) Path() string {
	return d.path
}

// load читает файл при первом обращении. Вызывается под d.mu
func (d *Dict[V]) load() error {
	if d.loaded {
		return nil
	}

	data, err := os.ReadFile(d.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			d.items = make(map[string]V)
			d.loaded = true
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", d.path, err)
	}

	items := make(map[string]V)
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("%w: %s: %v", storage.ErrCorrupt, d.path, err)
		}
	}

	d.items = items
	d.loaded = true
	return nil
}

// Get returns the value for key or storage.ErrNotFound.
func (d *Dict[V]) Get(key string) (V, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var zero V
	if err := d.load(); err != nil {
		return zero, err
	}
	v, ok := d.items[key]
	if !ok {
		return zero, fmt.Errorf("%w: %q", storage.ErrNotFound, key)
	}
	return v, nil
}

// Set stores value under key. Nothing is written until Save.
func (d *Dict[V]) Set(key string, value V) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.load(); err != nil {
		return err
	}
	d.items[key] = value
	return nil
}

// Contains reports whether key is present.
func (d *Dict[V]) Contains(key string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.load(); err != nil {
		return false, err
	}
	_, ok := d.items[key]
	return ok, nil
}

// Delete removes key.
func (d *Dict[V]) Delete(key string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.load(); err != nil {
		return err
	}
	delete(d.items, key)
	return nil
}

// Keys returns all keys, sorted.
func (d *Dict[V]) Keys() ([]string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.load(); err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(d.items))
	for k := range d.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Save writes the whole map to a temp file next to the target and renames it
// over the target. encoding/json sorts map keys, so an unchanged map produces
// identical bytes.
func (d *Dict[V]) Save() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.load(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(d.items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", d.path, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(d.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(d.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		// после успешного rename файла уже нет
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o600); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, d.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", d.path, err)
	}
	return nil
}
