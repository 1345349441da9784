// Package testutil provides shared helpers for service and handler tests.
package testutil

import (
	"errors"
	"sync"
)

// MemoryBlobs is an in-memory implementation of the blob store contract.
// Services under test read and write it exactly as they would the database.
type MemoryBlobs struct {
	mu    sync.Mutex
	data  map[string][]byte
	fail  bool
	wrote map[string]int
}

// NewMemoryBlobs creates an empty in-memory blob store.
func NewMemoryBlobs() *MemoryBlobs {
	return &MemoryBlobs{
		data:  make(map[string][]byte),
		wrote: make(map[string]int),
	}
}

// Seed stores a payload under the given name before the subject loads it.
func (m *MemoryBlobs) Seed(name string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[name] = append([]byte(nil), data...)
}

// FailWrites makes every subsequent WriteBlob return an error.
func (m *MemoryBlobs) FailWrites() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fail = true
}

// ReadBlob returns the stored payload, or false when none was seeded.
func (m *MemoryBlobs) ReadBlob(name string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.data[name]
	if !ok || len(data) == 0 {
		return nil, false
	}
	return append([]byte(nil), data...), true
}

// WriteBlob overwrites the stored payload.
func (m *MemoryBlobs) WriteBlob(name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.fail {
		return errors.New("blob store unavailable")
	}
	m.data[name] = append([]byte(nil), data...)
	m.wrote[name]++
	return nil
}

// Written returns the last payload written under the given name.
func (m *MemoryBlobs) Written(name string) ([]byte, bool) {
	return m.ReadBlob(name)
}

// WriteCount returns how many times the named blob has been overwritten.
func (m *MemoryBlobs) WriteCount(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.wrote[name]
}
