package cache

import (
	"context"
	"errors"
	"time"

	"agendamento_cras/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// RedisLookupCache keeps lookup answers in Redis, shared by every instance.
type RedisLookupCache struct {
	client redis.Cmdable
}

var _ interfaces.ILookupCache = (*RedisLookupCache)(nil)

func NewRedisLookupCache(client redis.Cmdable) *RedisLookupCache {
	return &RedisLookupCache{client: client}
}

func (c *RedisLookupCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func (c *RedisLookupCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}
