// internal/leaderboard/memory.go
//
// In-memory Backend. Used by tests and by `--backend memory`, where nothing
// should outlive the process.
//
// Characteristics:
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Load and Save copy the slice, so callers never share storage.
//   - State is lost when the process restarts.

package leaderboard

import (
	"context"
	"sync"
)

// memory is a slice-backed Backend.
type memory struct {
	mu      sync.RWMutex // guards entries
	entries Leaderboard
}

// NewMemoryBackend returns a Backend seeded with initial.
func NewMemoryBackend(initial ...Entry) Backend {
	return &memory{entries: append(Leaderboard{}, initial...)}
}

func (m *memory) Name() string { return "memory" }

func (m *memory) Load(_ context.Context) (Leaderboard, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append(Leaderboard{}, m.entries...), nil
}

func (m *memory) Save(_ context.Context, lb Leaderboard) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(Leaderboard{}, lb...)
	return nil
}
