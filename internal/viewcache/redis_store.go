package viewcache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a shared view cache. View invalidation uses a per-view
// generation counter: every key embeds the generation it was written under,
// and bumping the counter orphans the old keys, which age out via their TTL.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStore creates a Redis-backed view cache.
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "view:",
	}
}

func (s *RedisStore) generation(ctx context.Context, view string) (int64, error) {
	gen, err := s.client.Get(ctx, s.prefix+"gen:"+view).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("redis get generation: %w", err)
	}
	return gen, nil
}

func (s *RedisStore) entryKey(view string, gen int64, key string) string {
	return s.prefix + view + ":g" + strconv.FormatInt(gen, 10) + ":" + key
}

// Get returns the cached payload written under the view's current generation.
func (s *RedisStore) Get(ctx context.Context, view, key string) ([]byte, bool, error) {
	gen, err := s.generation(ctx, view)
	if err != nil {
		return nil, false, err
	}

	value, err := s.client.Get(ctx, s.entryKey(view, gen, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	return value, true, nil
}

// Set stores a payload under the view's current generation. A non-positive
// TTL falls back to an hour so orphaned generations cannot accumulate.
func (s *RedisStore) Set(ctx context.Context, view, key string, value []byte, ttl time.Duration) error {
	gen, err := s.generation(ctx, view)
	if err != nil {
		return err
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return s.client.Set(ctx, s.entryKey(view, gen, key), value, ttl).Err()
}

// InvalidateView bumps the view's generation counter.
func (s *RedisStore) InvalidateView(ctx context.Context, view string) error {
	return s.client.Incr(ctx, s.prefix+"gen:"+view).Err()
}
