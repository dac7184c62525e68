package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	ProductCacheTTL = 10 * time.Minute
	ProductListKey  = "products:all"
)

// Cache : lecture/écriture/invalidation de valeurs JSON sérialisées.
// Implémentation Redis en production, no-op dans les tests.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Del(ctx context.Context, key string)
}

type redisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) Cache {
	return &redisCache{client: client}
}

func (c *redisCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil || val == "" {
		return "", false
	}
	return val, true
}

func (c *redisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	c.client.Set(ctx, key, value, ttl)
}

func (c *redisCache) Del(ctx context.Context, key string) {
	c.client.Del(ctx, key)
}

// NoopCache : cache inerte pour les tests et les environnements sans
// Redis.
type NoopCache struct{}

func (NoopCache) Get(ctx context.Context, key string) (string, bool)               { return "", false }
func (NoopCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {}
func (NoopCache) Del(ctx context.Context, key string)                              {}
