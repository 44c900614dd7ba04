package cache

import (
	"context"
	"encoding"
	"sync"
	"time"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// Memory is an in-process Cache used when no redis instance is configured.
type Memory struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	closed  bool
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]memoryEntry)}
}

func (m *Memory) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if ttl == 0 {
		ttl = DefaultOptions().DefaultTTL
	}

	var data []byte
	switch v := value.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	case encoding.BinaryMarshaler:
		b, err := v.MarshalBinary()
		if err != nil {
			return err
		}
		data = b
	default:
		return ErrInvalidValue
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.entries[key] = memoryEntry{data: data, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (m *Memory) Get(ctx context.Context, key string, value interface{}) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}
	entry, ok := m.entries[key]
	if ok && time.Now().After(entry.expiresAt) {
		delete(m.entries, key)
		ok = false
	}
	m.mu.Unlock()

	if !ok {
		return ErrNotFound
	}

	switch v := value.(type) {
	case *string:
		*v = string(entry.data)
	case encoding.BinaryUnmarshaler:
		return v.UnmarshalBinary(entry.data)
	default:
		return ErrInvalidValue
	}
	return nil
}

func (m *Memory) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	delete(m.entries, key)
	return nil
}

func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.entries = nil
	return nil
}
