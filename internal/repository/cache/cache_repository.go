package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/cellmap-service/internal/domain"
	"github.com/cellmap-service/internal/domain/repository"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func (r *cacheRepository) GetView(ctx context.Context, version string, sel domain.Selection, fit bool) ([]byte, error) {
	return r.Get(ctx, ViewKey(version, sel, fit))
}

func (r *cacheRepository) SetView(ctx context.Context, version string, sel domain.Selection, fit bool, data []byte, ttl time.Duration) error {
	return r.Set(ctx, ViewKey(version, sel, fit), data, ttl)
}

// ViewKey - ключ view в кеше. Версия датасета в ключе делает перезагрузку
// датасета инвалидацией: старые ключи просто истекают по TTL.
func ViewKey(version string, sel domain.Selection, fit bool) string {
	f := 0
	if fit {
		f = 1
	}
	return fmt.Sprintf("view:%s:%s:%s:%d", version, sel.Location, sel.Metric, f)
}
