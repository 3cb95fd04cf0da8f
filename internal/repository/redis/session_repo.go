package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"eventboard/internal/domain"
)

// Config holds the redis connection settings.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// NewClient creates a redis client and verifies connectivity.
func NewClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

type sessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionRepository returns a SessionStore keeping each session in a redis
// hash that expires ttl after its last write. A zero ttl never expires.
func NewSessionRepository(client *redis.Client, ttl time.Duration) domain.SessionStore {
	return &sessionRepository{client: client, ttl: ttl}
}

func sessionKey(sessionID string) string {
	return "eventboard:session:" + sessionID
}

func (r *sessionRepository) Get(ctx context.Context, sessionID, key string) (string, error) {
	v, err := r.client.HGet(ctx, sessionKey(sessionID), key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("redis hget: %w", err)
	}
	return v, nil
}

func (r *sessionRepository) Put(ctx context.Context, sessionID, key, value string) error {
	k := sessionKey(sessionID)
	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, k, key, value)
	if r.ttl > 0 {
		pipe.Expire(ctx, k, r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis hset: %w", err)
	}
	return nil
}
