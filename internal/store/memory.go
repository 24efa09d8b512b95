// internal/store/memory.go
//
// In-memory implementation of Store.
//
// Characteristics:
//   - Keeps results in insertion order, indexed by SessionID.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.

package store

import (
	"context"
	"sync"
)

// memory is an in-memory slice-backed Store implementation.
type memory struct {
	mu      sync.RWMutex        // guards everything below
	byID    map[string]struct{} // SessionIDs already saved
	results []Result            // chronological
	closed  bool
}

// NewMemory constructs a new in-memory Store.
func NewMemory() Store {
	return &memory{byID: make(map[string]struct{})}
}

func (m *memory) Save(ctx context.Context, r Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	if _, dup := m.byID[r.SessionID]; dup {
		return nil
	}
	m.byID[r.SessionID] = struct{}{}
	m.results = append(m.results, r)
	return nil
}

func (m *memory) Recent(ctx context.Context, limit int) ([]Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, ErrClosed
	}
	if limit <= 0 || limit > len(m.results) {
		limit = len(m.results)
	}
	out := make([]Result, 0, limit)
	for i := len(m.results) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.results[i])
	}
	return out, nil
}

func (m *memory) Stats(ctx context.Context) (Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return Stats{}, ErrClosed
	}
	return Summarize(m.results), nil
}

func (m *memory) PlayedDaily(ctx context.Context, date string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return false, ErrClosed
	}
	for _, r := range m.results {
		if r.Mode == ModeDaily && r.Date == date {
			return true, nil
		}
	}
	return false, nil
}

func (m *memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
