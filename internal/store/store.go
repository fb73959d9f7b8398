// Package store provides the key-value storage that backs the ledger.
package store

import (
	"errors"
	"sync"
)

// ErrNotFound is returned by Get when a key has never been written or has
// been deleted. Callers treat it as "use defaults".
var ErrNotFound = errors.New("key not found")

// KV is a flat string key-value store. Each call is atomic on its own.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(keys ...string) error
	Close() error
}

// Memory is an in-process KV, used by tests and as a fallback when no data
// directory is writable.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// Get implements KV.
func (m *Memory) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Set implements KV.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Delete implements KV. Missing keys are ignored.
func (m *Memory) Delete(keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

// Close implements KV.
func (m *Memory) Close() error { return nil }
