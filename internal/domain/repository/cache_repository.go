package repository

import (
	"context"
	"time"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу; nil при промахе
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// GetSearch получает обогащенный документ поиска
	GetSearch(ctx context.Context, searchID string) ([]byte, error)

	// SetSearch сохраняет обогащенный документ поиска
	SetSearch(ctx context.Context, searchID string, document []byte, ttl time.Duration) error
}
