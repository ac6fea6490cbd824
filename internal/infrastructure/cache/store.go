package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned by Store.Get when the key is absent.
var ErrMiss = errors.New("cache miss")

// Store is the key/value surface the view cache needs.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetEx(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Incr atomically increments a counter key without expiry.
	Incr(ctx context.Context, key string) (int64, error)
	// DeleteMatching removes every key matching a glob pattern and reports how many went.
	DeleteMatching(ctx context.Context, pattern string) (int, error)
}

// RedisStore backs Store with redis.
type RedisStore struct {
	rdb       redis.Cmdable
	scanCount int64
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(rdb redis.Cmdable) *RedisStore {
	return &RedisStore{rdb: rdb, scanCount: 200}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	bs, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	return bs, err
}

func (s *RedisStore) SetEx(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.rdb.SetEx(ctx, key, value, ttl).Err()
}

func (s *RedisStore) Incr(ctx context.Context, key string) (int64, error) {
	return s.rdb.Incr(ctx, key).Result()
}

// DeleteMatching walks the keyspace with SCAN, never KEYS.
func (s *RedisStore) DeleteMatching(ctx context.Context, pattern string) (int, error) {
	var keys []string
	iter := s.rdb.Scan(ctx, 0, pattern, s.scanCount).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return 0, err
	}
	if len(keys) == 0 {
		return 0, nil
	}
	n, err := s.rdb.Del(ctx, keys...).Result()
	return int(n), err
}
