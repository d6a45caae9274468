package store

import "errors"

// ErrClosed is returned by a Memory store after Close.
var ErrClosed = errors.New("store closed")

// Memory is a non-persistent KV. It backs --ephemeral runs and tests.
type Memory struct {
	data   map[string]string
	closed bool

	// FailWrites makes every Set return the given error. Tests use it to
	// simulate a full or read-only disk.
	FailWrites error
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// Get implements KV.
func (m *Memory) Get(key string) (string, bool, error) {
	if m.closed {
		return "", false, ErrClosed
	}
	v, ok := m.data[key]
	return v, ok, nil
}

// Set implements KV.
func (m *Memory) Set(key, value string) error {
	if m.closed {
		return ErrClosed
	}
	if m.FailWrites != nil {
		return m.FailWrites
	}
	m.data[key] = value
	return nil
}

// Close implements KV.
func (m *Memory) Close() error {
	m.closed = true
	return nil
}
