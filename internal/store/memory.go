package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory keeps records in process memory; used in tests and when no
// DB path is configured.
type Memory struct {
	mu      sync.Mutex
	records []Record
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Save(_ context.Context, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	m.records = append(m.records, rec)
	return nil
}

func (m *Memory) Latest(_ context.Context, repo string, pr int) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := len(m.records) - 1; i >= 0; i-- {
		if m.records[i].Repo == repo && m.records[i].PR == pr {
			return m.records[i], nil
		}
	}
	return Record{}, ErrNoReview
}

func (m *Memory) List(_ context.Context, repo string, limit int) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if limit <= 0 {
		limit = 50
	}

	var out []Record
	for i := len(m.records) - 1; i >= 0 && len(out) < limit; i-- {
		if m.records[i].Repo == repo {
			out = append(out, m.records[i])
		}
	}
	return out, nil
}

func (m *Memory) Close() error { return nil }
