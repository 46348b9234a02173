package repository

import (
	"context"
	"time"

	"github.com/attractions-service/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу (nil, nil при промахе)
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// Exists проверяет существование ключа
	Exists(ctx context.Context, key string) (bool, error)

	// GetSyncPayload получает сохранённый результат синхронизации (nil, nil при промахе)
	GetSyncPayload(ctx context.Context, tripAdvisorID string) (*domain.SyncPayload, error)

	// SetSyncPayload сохраняет результат синхронизации с TTL
	SetSyncPayload(ctx context.Context, tripAdvisorID string, payload *domain.SyncPayload, ttl time.Duration) error
}
