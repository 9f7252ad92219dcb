// Package storage provides small durable key/value slots, such as the one
// that remembers the last comment author between sessions.
package storage

import (
	"errors"
	"sync"
)

// ErrNotFound is returned by Get when the key has never been written
var ErrNotFound = errors.New("key not found")

// ErrUnavailable is returned by stores whose backend cannot be used
var ErrUnavailable = errors.New("store unavailable")

// Store is a string-keyed slot store
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// Memory is a Store kept in process memory
type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Unavailable is a Store for platforms without durable storage; every call fails
type Unavailable struct{}

func (Unavailable) Get(string) (string, error) { return "", ErrUnavailable }
func (Unavailable) Set(string, string) error   { return ErrUnavailable }
