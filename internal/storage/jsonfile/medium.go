// Package jsonfile provides a storage medium that keeps every key in a
// single JSON object on disk.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Medium stores a flat map of key to raw value. It holds no state between
// calls, so every GetItem sees the latest file contents.
type Medium struct {
	path string
}

func NewMedium(path string) *Medium {
	return &Medium{path: path}
}

// Init creates the file with an empty object if it does not exist yet.
func (m *Medium) Init() error {
	if err := os.MkdirAll(filepath.Dir(m.path), 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if _, err := os.Stat(m.path); err == nil {
		return nil
	}
	return m.save(map[string]string{})
}

func (m *Medium) GetItem(key string) (string, bool, error) {
	items, err := m.load()
	if err != nil {
		return "", false, err
	}
	v, ok := items[key]
	return v, ok, nil
}

// SetItem rewrites the file with key updated. A file that cannot be parsed
// is left untouched so other keys are not lost.
func (m *Medium) SetItem(key, value string) error {
	items, err := m.load()
	if err != nil {
		return fmt.Errorf("refusing to overwrite unreadable store: %w", err)
	}
	items[key] = value
	return m.save(items)
}

func (m *Medium) Close() error { return nil }

// Keys lists stored keys in sorted order.
func (m *Medium) Keys() ([]string, error) {
	items, err := m.load()
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *Medium) GetConfigPath() string {
	return m.path
}

func (m *Medium) load() (map[string]string, error) {
	data, err := os.ReadFile(m.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}
	if len(data) == 0 {
		return map[string]string{}, nil
	}

	items := map[string]string{}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse store file: %w", err)
	}
	return items, nil
}

func (m *Medium) save(items map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(m.path), 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(m.path), ".lifetrack-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, m.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}
