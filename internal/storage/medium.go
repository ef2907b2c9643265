package storage

import (
	"errors"
	"sync"
)

// ErrUnavailable is returned by a Medium that cannot be reached in the
// current execution context.
var ErrUnavailable = errors.New("storage medium unavailable")

// Medium is a string key-value persistence backend.
type Medium interface {
	// GetItem returns the stored value for key. ok is false when nothing
	// was ever stored under key.
	GetItem(key string) (value string, ok bool, err error)
	SetItem(key, value string) error
	Close() error
}

// MemoryMedium keeps values in process memory. It is safe for concurrent use.
type MemoryMedium struct {
	mu    sync.RWMutex
	items map[string]string
}

func NewMemoryMedium() *MemoryMedium {
	return &MemoryMedium{items: make(map[string]string)}
}

func (m *MemoryMedium) GetItem(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *MemoryMedium) SetItem(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *MemoryMedium) Close() error { return nil }

// Keys returns the stored keys, for tests and diagnostics.
func (m *MemoryMedium) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	return keys
}
