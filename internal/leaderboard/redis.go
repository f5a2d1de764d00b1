package leaderboard

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

// DefaultRedisKey holds the leaderboard list when no key is configured.
const DefaultRedisKey = "wordle:leaderboard"

// RedisBackend stores the leaderboard as a Redis list of JSON documents, one
// per entry, in storage order.
type RedisBackend struct {
	client *redis.Client
	key    string
}

// OpenRedis connects to the server at url (redis://...) and pings it.
func OpenRedis(ctx context.Context, url, key string) (*RedisBackend, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewRedisBackend(client, key), nil
}

// NewRedisBackend wraps an existing client. An empty key uses DefaultRedisKey.
func NewRedisBackend(client *redis.Client, key string) *RedisBackend {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisBackend{client: client, key: key}
}

func (b *RedisBackend) Name() string { return "redis" }

// Load reads the whole list. Elements that are not valid entries are kept
// unparsed and written back unchanged by Save.
func (b *RedisBackend) Load(ctx context.Context) (Leaderboard, error) {
	vals, err := b.client.LRange(ctx, b.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("lrange %s: %w", b.key, err)
	}
	lb := make(Leaderboard, 0, len(vals))
	for i, v := range vals {
		if !gjson.Valid(v) {
			log.Debug().Int("index", i).Str("key", b.key).Msg("invalid leaderboard element")
			lb = append(lb, unparsedEntry(v))
			continue
		}
		lb = append(lb, parseEntry(gjson.Parse(v)))
	}
	return lb, nil
}

// Save replaces the list atomically (MULTI DEL + RPUSH EXEC).
func (b *RedisBackend) Save(ctx context.Context, lb Leaderboard) error {
	vals := make([]any, 0, len(lb))
	for _, e := range lb {
		data, err := e.encode()
		if err != nil {
			return err
		}
		vals = append(vals, string(data))
	}
	_, err := b.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, b.key)
		if len(vals) > 0 {
			pipe.RPush(ctx, b.key, vals...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save %s: %w", b.key, err)
	}
	return nil
}

// Close closes the client.
func (b *RedisBackend) Close() error {
	return b.client.Close()
}
