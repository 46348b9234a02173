package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/attractions-service/internal/domain"
	"github.com/attractions-service/internal/domain/repository"
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
	if err == redis.Nil {
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

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check cache existence", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("cache exists error: %w", err)
	}

	return val > 0, nil
}

// GetSyncPayload получает закешированный результат синхронизации с TripAdvisor
func (r *cacheRepository) GetSyncPayload(ctx context.Context, tripAdvisorID string) (*domain.SyncPayload, error) {
	data, err := r.Get(ctx, domain.SyncCacheKey(tripAdvisorID))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var payload domain.SyncPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		r.logger.Error("Failed to unmarshal sync payload from cache",
			zap.String("tripadvisor_id", tripAdvisorID), zap.Error(err))
		return nil, fmt.Errorf("unmarshal sync payload: %w", err)
	}

	return &payload, nil
}

// SetSyncPayload сохраняет результат синхронизации в кеше
func (r *cacheRepository) SetSyncPayload(ctx context.Context, tripAdvisorID string, payload *domain.SyncPayload, ttl time.Duration) error {
	data, err := json.Marshal(payload)
	if err != nil {
		r.logger.Error("Failed to marshal sync payload",
			zap.String("tripadvisor_id", tripAdvisorID), zap.Error(err))
		return fmt.Errorf("marshal sync payload: %w", err)
	}

	return r.Set(ctx, domain.SyncCacheKey(tripAdvisorID), data, ttl)
}
