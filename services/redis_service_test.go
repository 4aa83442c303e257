package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCache(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	ctx := context.Background()
	cache := NewRedisCache(rdb, time.Minute)

	var got map[string]int
	found, err := cache.Get(ctx, "revenue:2025-03", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, cache.Set(ctx, "revenue:2025-03", map[string]int{"bookings": 3}))
	require.NoError(t, cache.Set(ctx, "revenue:2025-04", map[string]int{"bookings": 1}))
	require.NoError(t, cache.Set(ctx, "other", 1))
	assert.Equal(t, time.Minute, mr.TTL("revenue:2025-03"))

	found, err = cache.Get(ctx, "revenue:2025-03", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 3, got["bookings"])

	require.NoError(t, cache.Invalidate(ctx, revenueCachePattern))
	assert.False(t, mr.Exists("revenue:2025-03"))
	assert.False(t, mr.Exists("revenue:2025-04"))
	assert.True(t, mr.Exists("other"))
}

func TestGetFromRedisCorrupt(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	require.NoError(t, mr.Set("broken", "{not json"))
	var target map[string]int
	found, err := GetFromRedis(context.Background(), rdb, "broken", &target)
	assert.True(t, found)
	assert.Error(t, err)
}
