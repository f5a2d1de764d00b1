package cli

import (
	"os"

	"github.com/robalobadob/wordle/internal/daily"
	"github.com/robalobadob/wordle/internal/factory"
	"github.com/robalobadob/wordle/internal/leaderboard"
	"github.com/robalobadob/wordle/internal/words"
)

// Config holds CLI configuration
type Config struct {
	Backend         string
	LeaderboardFile string
	SQLiteDSN       string
	RedisURL        string
	RedisKey        string
	WordsEasy       string
	WordsMedium     string
	WordsAllowed    string
	DailySalt       string
	LogLevel        string
}

// DefaultConfig returns a Config with defaults taken from the environment
func DefaultConfig() *Config {
	return &Config{
		Backend:         getEnvOrDefault("WORDLE_LEADERBOARD_BACKEND", factory.BackendJSON),
		LeaderboardFile: getEnvOrDefault("WORDLE_LEADERBOARD_FILE", leaderboard.DefaultFile),
		SQLiteDSN:       getEnvOrDefault("WORDLE_SQLITE_DSN", "./data/wordle.db"),
		RedisURL:        os.Getenv("WORDLE_REDIS_URL"),
		RedisKey:        getEnvOrDefault("WORDLE_REDIS_KEY", leaderboard.DefaultRedisKey),
		WordsEasy:       os.Getenv("WORDLE_WORDS_EASY"),
		WordsMedium:     os.Getenv("WORDLE_WORDS_MEDIUM"),
		WordsAllowed:    os.Getenv("WORDLE_WORDS_ALLOWED"),
		DailySalt:       getEnvOrDefault("WORDLE_DAILY_SALT", daily.DefaultSalt),
		LogLevel:        getEnvOrDefault("LOG_LEVEL", "warn"),
	}
}

// Factory converts the CLI settings into a factory.Config.
func (c *Config) Factory() factory.Config {
	return factory.Config{
		Words: words.Config{
			EasyPath:    c.WordsEasy,
			MediumPath:  c.WordsMedium,
			AllowedPath: c.WordsAllowed,
		},
		Backend:         c.Backend,
		LeaderboardFile: c.LeaderboardFile,
		SQLiteDSN:       c.SQLiteDSN,
		RedisURL:        c.RedisURL,
		RedisKey:        c.RedisKey,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
