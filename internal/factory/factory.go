package factory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/internal/dependencies/clock"
	"github.com/robalobadob/wordle/internal/dependencies/random"
	"github.com/robalobadob/wordle/internal/leaderboard"
	"github.com/robalobadob/wordle/internal/words"
)

// Backend names accepted by Config.Backend.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// ErrUnknownBackend is returned for a Backend outside the constants above.
var ErrUnknownBackend = errors.New("unknown leaderboard backend")

// App contains all wired application components
type App struct {
	Lists *words.Lists
	Store *leaderboard.Store

	// External dependencies
	Clock  clock.Clock
	Random random.Random
}

// Config holds configuration for the application factory
type Config struct {
	// Words names the word list files; empty paths use the embedded lists.
	Words words.Config
	// Backend selects the leaderboard store. If empty, defaults to "json".
	Backend string
	// LeaderboardFile is the JSON file for the json backend.
	LeaderboardFile string
	// SQLiteDSN is the database path for the sqlite backend (required).
	SQLiteDSN string
	// RedisURL and RedisKey configure the redis backend; RedisURL is required.
	RedisURL string
	RedisKey string
}

// New loads the word lists and opens the leaderboard backend.
func New(ctx context.Context, cfg Config) (*App, error) {
	lists, err := words.Load(cfg.Words)
	if err != nil {
		return nil, err
	}
	backend, err := OpenBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("backend", backend.Name()).Msg("leaderboard backend ready")
	return newWithDependencies(lists, backend, clock.New(), random.New()), nil
}

// OpenBackend builds the leaderboard backend named by cfg.Backend.
func OpenBackend(ctx context.Context, cfg Config) (leaderboard.Backend, error) {
	switch strings.ToLower(cfg.Backend) {
	case "", BackendJSON:
		return leaderboard.NewFileBackend(cfg.LeaderboardFile), nil
	case BackendSQLite:
		if cfg.SQLiteDSN == "" {
			return nil, errors.New("SQLiteDSN required when Backend is sqlite")
		}
		return leaderboard.OpenSQLite(cfg.SQLiteDSN)
	case BackendRedis:
		if cfg.RedisURL == "" {
			return nil, errors.New("RedisURL required when Backend is redis")
		}
		return leaderboard.OpenRedis(ctx, cfg.RedisURL, cfg.RedisKey)
	case BackendMemory:
		return leaderboard.NewMemoryBackend(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(lists *words.Lists, backend leaderboard.Backend, clk clock.Clock, rnd random.Random) *App {
	return &App{
		Lists:  lists,
		Store:  leaderboard.NewStore(backend),
		Clock:  clk,
		Random: rnd,
	}
}

// Close releases the leaderboard backend.
func (a *App) Close() error {
	return a.Store.Close()
}
