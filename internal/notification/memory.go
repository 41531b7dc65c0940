package notification

import (
	"context"
	"sort"
	"sync"
	"time"
)

type memoryEntry struct {
	n         Notification
	expiresAt time.Time
}

// MemoryStore is the fallback used when Redis is unavailable. Expired entries
// are pruned on every access.
type MemoryStore struct {
	mu      sync.Mutex
	entries []memoryEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: func() time.Time { return time.Now().UTC() }}
}

func (m *MemoryStore) Push(ctx context.Context, n Notification, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prune()
	m.entries = append(m.entries, memoryEntry{n: n, expiresAt: m.now().Add(ttl)})
	return nil
}

func (m *MemoryStore) List(ctx context.Context) ([]Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prune()
	out := make([]Notification, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e.n)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *MemoryStore) prune() {
	now := m.now()
	kept := m.entries[:0]
	for _, e := range m.entries {
		if e.expiresAt.After(now) {
			kept = append(kept, e)
		}
	}
	m.entries = kept
}
