package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/internal/factory"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg := DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "wordle",
		Short: "Play Wordle in the terminal",
		Long: `wordle is a single-player five-letter word game.

Guess the hidden word in six tries (Easy) or four (Medium). Winning times are
kept on a per-mode leaderboard stored in a JSON file, SQLite, or Redis.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(cmd.ErrOrStderr(), cfg.LogLevel)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.Backend, "backend", cfg.Backend, "Leaderboard backend: json, sqlite, redis, memory (env: WORDLE_LEADERBOARD_BACKEND)")
	pf.StringVar(&cfg.LeaderboardFile, "leaderboard", cfg.LeaderboardFile, "Leaderboard JSON file (env: WORDLE_LEADERBOARD_FILE)")
	pf.StringVar(&cfg.SQLiteDSN, "sqlite-dsn", cfg.SQLiteDSN, "SQLite database path (env: WORDLE_SQLITE_DSN)")
	pf.StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL, e.g. redis://localhost:6379/0 (env: WORDLE_REDIS_URL)")
	pf.StringVar(&cfg.RedisKey, "redis-key", cfg.RedisKey, "Redis list key (env: WORDLE_REDIS_KEY)")
	pf.StringVar(&cfg.WordsEasy, "words-easy", cfg.WordsEasy, "Easy target word list (env: WORDLE_WORDS_EASY)")
	pf.StringVar(&cfg.WordsMedium, "words-medium", cfg.WordsMedium, "Medium target word list (env: WORDLE_WORDS_MEDIUM)")
	pf.StringVar(&cfg.WordsAllowed, "words-allowed", cfg.WordsAllowed, "Allowed guesses list (env: WORDLE_WORDS_ALLOWED)")
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env: LOG_LEVEL)")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd(cfg))
	rootCmd.AddCommand(newTUICmd(cfg))
	rootCmd.AddCommand(newLeaderboardCmd(cfg))
	rootCmd.AddCommand(newServeCmd(cfg))
	rootCmd.AddCommand(newWordsCmd(cfg))

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("wordle")
		os.Exit(1)
	}
}

// setupLogging points the global zerolog logger at w in console format.
func setupLogging(w io.Writer, level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen})
	return nil
}

// openApp wires the word lists and leaderboard for a command.
func openApp(ctx context.Context, cfg *Config) (*factory.App, error) {
	return factory.New(ctx, cfg.Factory())
}
