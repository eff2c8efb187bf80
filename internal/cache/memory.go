package cache

import (
	"context"
	"sync"
	"time"

	"github.com/arytiwari/jioastro-sub006/pkg/core"
)

// Memory is the in-process cache backend: a map with lazy expiry. Expired
// entries are dropped when read, not swept in the background.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	timeline *core.Timeline
	// expires is the zero time for entries without expiry.
	expires time.Time
}

// NewMemory creates an empty in-process cache.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]memoryEntry), now: time.Now}
}

// Get returns the cached timeline and true, or false on a miss or after
// expiry.
func (m *Memory) Get(_ context.Context, key string) (*core.Timeline, bool, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !entry.expires.IsZero() && !m.now().Before(entry.expires) {
		m.mu.Lock()
		// Re-check under the write lock; a Set may have replaced the entry.
		if current, ok := m.entries[key]; ok && current.expires.Equal(entry.expires) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return nil, false, nil
	}
	return entry.timeline, true, nil
}

// Set stores a timeline under key for ttl; a non-positive ttl stores it
// without expiry.
func (m *Memory) Set(_ context.Context, key string, timeline *core.Timeline, ttl time.Duration) error {
	entry := memoryEntry{timeline: timeline}
	if ttl > 0 {
		entry.expires = m.now().Add(ttl)
	}
	m.mu.Lock()
	m.entries[key] = entry
	m.mu.Unlock()
	return nil
}

// Ping always succeeds for the in-process backend.
func (m *Memory) Ping(context.Context) error { return nil }

// Close is a no-op for the in-process backend.
func (m *Memory) Close() error { return nil }

var _ TimelineCache = (*Memory)(nil)
