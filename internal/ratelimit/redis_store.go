package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is an AttemptStore backed by Redis, for deployments that need
// lockout state shared across instances. The fixed window maps onto a key TTL
// set once at creation: INCR on an existing key never touches the expiry.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStore creates a Redis-backed attempt store.
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "login:attempts:",
	}
}

// NewRedisStoreWithPrefix creates a Redis attempt store with a custom key prefix.
func NewRedisStoreWithPrefix(client redis.UniversalClient, prefix string) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
	}
}

// Fail increments the failure counter, starting the window only when the key
// is first created.
func (s *RedisStore) Fail(ctx context.Context, identity string, window time.Duration) (Entry, error) {
	if identity == "" {
		return Entry{}, errors.New("identity cannot be empty")
	}

	key := s.prefix + identity
	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return Entry{}, fmt.Errorf("redis incr: %w", err)
	}
	if count == 1 {
		if err := s.client.PExpire(ctx, key, window).Err(); err != nil {
			return Entry{}, fmt.Errorf("redis pexpire: %w", err)
		}
		return Entry{Count: count, ResetAt: time.Now().Add(window)}, nil
	}

	ttl, err := s.client.PTTL(ctx, key).Result()
	if err != nil {
		return Entry{}, fmt.Errorf("redis pttl: %w", err)
	}
	if ttl < 0 {
		// Key lost its expiry (e.g. created during a failed PEXPIRE); repair
		// it so the entry cannot outlive the window forever.
		if err := s.client.PExpire(ctx, key, window).Err(); err != nil {
			return Entry{}, fmt.Errorf("redis pexpire: %w", err)
		}
		ttl = window
	}
	return Entry{Count: count, ResetAt: time.Now().Add(ttl)}, nil
}

// Get returns the live entry; Redis TTL expiry handles the window for us.
func (s *RedisStore) Get(ctx context.Context, identity string) (Entry, bool, error) {
	if identity == "" {
		return Entry{}, false, nil
	}

	key := s.prefix + identity
	count, err := s.client.Get(ctx, key).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Entry{}, false, nil
		}
		return Entry{}, false, fmt.Errorf("redis get: %w", err)
	}

	ttl, err := s.client.PTTL(ctx, key).Result()
	if err != nil {
		return Entry{}, false, fmt.Errorf("redis pttl: %w", err)
	}
	if ttl < 0 {
		return Entry{}, false, nil
	}
	return Entry{Count: count, ResetAt: time.Now().Add(ttl)}, true, nil
}

// Reset deletes any entry for the identity.
func (s *RedisStore) Reset(ctx context.Context, identity string) error {
	if identity == "" {
		return nil
	}
	return s.client.Del(ctx, s.prefix+identity).Err()
}
