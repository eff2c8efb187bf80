package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/arytiwari/jioastro-sub006/pkg/core"
)

// RedisOptions configures the redis cache backend.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// Redis is the shared cache backend for multi-process deployments.
// Timelines are stored as JSON values with the TTL applied by SET.
type Redis struct {
	client *redis.Client
}

// NewRedis connects to redis and verifies the connection.
func NewRedis(ctx context.Context, opts RedisOptions) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", opts.Addr, err)
	}
	return &Redis{client: client}, nil
}

// Get returns the cached timeline and true, or false on a miss.
func (r *Redis) Get(ctx context.Context, key string) (*core.Timeline, bool, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get cached timeline: %w", err)
	}
	timeline := &core.Timeline{}
	if err := json.Unmarshal(data, timeline); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached timeline: %w", err)
	}
	return timeline, true, nil
}

// Set stores a timeline under key for ttl.
func (r *Redis) Set(ctx context.Context, key string, timeline *core.Timeline, ttl time.Duration) error {
	data, err := json.Marshal(timeline)
	if err != nil {
		return fmt.Errorf("failed to encode timeline: %w", err)
	}
	if ttl < 0 {
		ttl = 0 // redis treats zero as no expiry
	}
	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache timeline: %w", err)
	}
	return nil
}

// Ping verifies the redis connection.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the redis connection.
func (r *Redis) Close() error {
	return r.client.Close()
}

var _ TimelineCache = (*Redis)(nil)
