package repository

import (
	"context"
	"time"

	"github.com/cellmap-service/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу, nil при промахе
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetView получает сериализованный view для версии датасета и выбора
	GetView(ctx context.Context, version string, sel domain.Selection, fit bool) ([]byte, error)

	// SetView сохраняет сериализованный view
	SetView(ctx context.Context, version string, sel domain.Selection, fit bool, data []byte, ttl time.Duration) error
}
