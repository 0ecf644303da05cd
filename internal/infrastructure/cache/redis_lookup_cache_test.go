package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*RedisLookupCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisLookupCache(client), mr
}

func TestRedisLookupCache_GetSet(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "cras:units:centro")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "cras:units:centro", []byte(`[{"codigo":"1001"}]`), time.Minute))

	raw, ok, err := c.Get(ctx, "cras:units:centro")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"codigo":"1001"}]`, string(raw))
	assert.Equal(t, time.Minute, mr.TTL("cras:units:centro"))

	mr.FastForward(time.Minute)
	_, ok, err = c.Get(ctx, "cras:units:centro")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisLookupCache_ServerDown(t *testing.T) {
	c, mr := newTestCache(t)
	mr.Close()

	_, ok, err := c.Get(context.Background(), "cras:units:centro")
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Error(t, c.Set(context.Background(), "k", []byte("v"), time.Minute))
}
