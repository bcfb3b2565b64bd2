package store

import (
	"context"
	"slices"
	"sync"
)

// Memory is an in-process KV used by tests and by the CLI when no database
// is wanted.
type Memory struct {
	mu   sync.Mutex
	data map[string][]byte

	// FailWrites makes Put and Delete return WriteErr.
	FailWrites bool
	WriteErr   error
}

// NewMemory returns an empty in-memory KV.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return slices.Clone(v), nil
}

func (m *Memory) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return m.WriteErr
	}
	m.data[key] = slices.Clone(value)
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return m.WriteErr
	}
	delete(m.data, key)
	return nil
}
