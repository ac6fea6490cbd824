package cache

import (
	"context"
	"log"
	"time"

	"cleaning_coop/internal/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to cfg.Addr. It returns nil when no address is
// configured or the server does not answer a ping, so callers run uncached.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("[cache][redis] ping failed addr=%s err=%v", cfg.Addr, err)
		_ = client.Close()
		return nil
	}
	return client
}
