// internal/leaderboard/store.go
//
// Store wraps a Backend with the leaderboard's fail-soft rules.
//
//   - Load never fails: a missing leaderboard is empty, and an unreadable one
//     is logged and treated as empty.
//   - UpsertBest always returns the updated in-memory leaderboard. A failed
//     save is reported as a *PersistenceWarning so the game can carry on.
package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/internal/game"
)

// ErrMalformed is returned by backends whose stored data cannot be parsed.
var ErrMalformed = errors.New("malformed leaderboard data")

// Backend persists the whole leaderboard. Save replaces everything stored.
type Backend interface {
	Name() string
	Load(ctx context.Context) (Leaderboard, error)
	Save(ctx context.Context, lb Leaderboard) error
}

// PersistenceWarning reports a save that did not reach the backend. The
// in-memory result is still valid.
type PersistenceWarning struct {
	Backend string
	Err     error
}

func (w *PersistenceWarning) Error() string {
	return fmt.Sprintf("could not save leaderboard record (%s): %v", w.Backend, w.Err)
}

func (w *PersistenceWarning) Unwrap() error { return w.Err }

// Store is the leaderboard as seen by the front ends.
type Store struct {
	backend Backend
}

// NewStore wraps b.
func NewStore(b Backend) *Store {
	return &Store{backend: b}
}

// Backend returns the wrapped backend.
func (s *Store) Backend() Backend { return s.backend }

// Load returns the stored leaderboard, or an empty one if it cannot be read.
func (s *Store) Load(ctx context.Context) Leaderboard {
	lb, err := s.backend.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Str("backend", s.backend.Name()).Msg("leaderboard unreadable; starting empty")
		return Leaderboard{}
	}
	if lb == nil {
		return Leaderboard{}
	}
	return lb
}

// UpsertBest records a winning time and persists the result.
// The only error it returns is a *PersistenceWarning.
func (s *Store) UpsertBest(ctx context.Context, name string, mode game.Mode, secs float64, ts time.Time) (Leaderboard, Result, error) {
	lb, res := Upsert(s.Load(ctx), name, mode, secs, ts)
	if res.Outcome == OutcomeNotImproved {
		log.Debug().Str("name", name).Str("mode", string(mode.Effective())).Float64("time", secs).Float64("best", res.Previous).Msg("no improvement")
	}
	if err := s.backend.Save(ctx, lb); err != nil {
		log.Warn().Err(err).Str("backend", s.backend.Name()).Msg("could not save leaderboard record")
		return lb, res, &PersistenceWarning{Backend: s.backend.Name(), Err: err}
	}
	log.Debug().Str("name", name).Str("mode", string(mode.Effective())).Stringer("outcome", res.Outcome).Msg("leaderboard saved")
	return lb, res, nil
}

// TopN loads the leaderboard and returns the fastest n records for mode.
func (s *Store) TopN(ctx context.Context, mode game.Mode, n int) []Entry {
	return TopN(s.Load(ctx), mode, n)
}

// Best loads the leaderboard and returns the record for (name, mode).
func (s *Store) Best(ctx context.Context, name string, mode game.Mode) (Entry, bool) {
	return Best(s.Load(ctx), name, mode)
}

// Close releases the backend if it holds a connection.
func (s *Store) Close() error {
	if c, ok := s.backend.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
