package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cellmap-service/internal/domain"
	"github.com/cellmap-service/internal/repository/cache"
)

// getTestRedisClient creates a Redis client for testing
func getTestRedisClient(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     "localhost:6379",
		Password: "",
		DB:       1, // Use DB 1 for tests
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for integration tests: %v", err)
	}

	return client
}

func TestViewKey(t *testing.T) {
	sel := domain.Selection{Location: domain.LocationPhoenix, Metric: domain.MetricKA}

	assert.Equal(t, "view:abc:PHOENIX:ka:1", cache.ViewKey("abc", sel, true))
	assert.Equal(t, "view:abc:PHOENIX:ka:0", cache.ViewKey("abc", sel, false))
}

func TestNopRepository(t *testing.T) {
	repo := cache.NewNopRepository()
	ctx := context.Background()
	sel := domain.DefaultSelection()

	require.NoError(t, repo.SetView(ctx, "v1", sel, true, []byte("x"), time.Minute))
	data, err := repo.GetView(ctx, "v1", sel, true)
	assert.NoError(t, err)
	assert.Nil(t, data)
}

// TestCacheRepository_ViewRoundTrip stores and reads a view through Redis
func TestCacheRepository_ViewRoundTrip(t *testing.T) {
	client := getTestRedisClient(t)
	defer client.Close()

	repo := cache.NewCacheRepository(cache.NewRedisFromClient(client, zap.NewNop()))
	ctx := context.Background()
	sel := domain.Selection{Location: domain.LocationAustin, Metric: domain.MetricAirbag}
	key := cache.ViewKey("test-version", sel, false)
	defer client.Del(ctx, key)

	miss, err := repo.GetView(ctx, "test-version", sel, false)
	require.NoError(t, err)
	assert.Nil(t, miss)

	require.NoError(t, repo.SetView(ctx, "test-version", sel, false, []byte(`{"summary":"x"}`), time.Minute))

	hit, err := repo.GetView(ctx, "test-version", sel, false)
	require.NoError(t, err)
	assert.JSONEq(t, `{"summary":"x"}`, string(hit))

	ttl, err := client.TTL(ctx, key).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, repo.Delete(ctx, key))
	gone, err := repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
