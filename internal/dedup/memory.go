package dedup

import (
	"context"
	"sync"
	"time"
)

// Memory is a TTL'd in-process dedup store, used to suppress repeated
// webhook deliveries for the same head SHA. Bounded so a long-running
// process can't grow it without limit.
type Memory struct {
	mu         sync.Mutex
	seen       map[string]time.Time
	order      []string
	maxEntries int
	ttl        time.Duration
}

func NewMemory() *Memory {
	return &Memory{
		seen:       make(map[string]time.Time),
		maxEntries: 10000,
		ttl:        6 * time.Hour,
	}
}

func (m *Memory) Seen(ctx context.Context, key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	at, ok := m.seen[key]
	if !ok {
		return false
	}
	if time.Since(at) > m.ttl {
		delete(m.seen, key)
		return false
	}
	return true
}

func (m *Memory) Mark(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.seen[key]; !ok {
		m.order = append(m.order, key)
	}
	m.seen[key] = time.Now()

	for len(m.seen) > m.maxEntries && len(m.order) > 0 {
		oldest := m.order[0]
		m.order = m.order[1:]
		delete(m.seen, oldest)
	}

	return nil
}
