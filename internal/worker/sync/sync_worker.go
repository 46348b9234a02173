package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/attractions-service/internal/domain"
	"github.com/attractions-service/internal/domain/repository"
	"github.com/attractions-service/internal/pkg/errors"
	"github.com/attractions-service/internal/worker"
)

const retryDelay = 2 * time.Second

// Syncer - часть SyncUseCase, нужная воркеру
type Syncer interface {
	SyncAttraction(ctx context.Context, attractionID int64, force bool) (*domain.SyncPayload, error)
}

// AttractionSyncWorker обрабатывает события обновления достопримечательностей
// из stream:attraction:sync и публикует результат в stream:attraction:synced
type AttractionSyncWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	syncUC       Syncer
	consumerName string
	maxRetries   int
}

// NewAttractionSyncWorker создает новый AttractionSyncWorker
func NewAttractionSyncWorker(
	streamRepo repository.StreamRepository,
	syncUC Syncer,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *AttractionSyncWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &AttractionSyncWorker{
		BaseWorker:   worker.NewBaseWorker("attraction-sync", consumerGroup, logger),
		streamRepo:   streamRepo,
		syncUC:       syncUC,
		consumerName: consumerName,
		maxRetries:   maxRetries,
	}
}

// Start запускает воркер
func (w *AttractionSyncWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting AttractionSyncWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamAttractionSync, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	msgChan, err := w.streamRepo.ConsumeStream(ctx, domain.StreamAttractionSync, w.ConsumerGroup(), w.consumerName)
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case msg, ok := <-msgChan:
			if !ok {
				logger.Info("Stream channel closed")
				return nil
			}
			w.handleMessage(ctx, msg)
		}
	}
}

// handleMessage обрабатывает одно событие синхронизации.
// Сообщение подтверждается всегда: битые события пропускаются, неудачные
// после maxRetries попыток завершаются событием с ошибкой.
func (w *AttractionSyncWorker) handleMessage(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger()

	var event domain.AttractionSyncEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		logger.Warn("Failed to parse message, skipping",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		w.ack(ctx, msg.ID)
		return
	}

	syncErr := w.syncWithRetries(ctx, event)

	synced := domain.AttractionSyncedEvent{
		RequestID:    event.RequestID,
		AttractionID: event.AttractionID,
	}
	if syncErr != nil {
		synced.Error = syncErr.Error()
		logger.Error("Sync failed",
			zap.String("request_id", event.RequestID.String()),
			zap.Int64("attraction_id", event.AttractionID),
			zap.Error(syncErr))
	} else {
		logger.Info("Sync completed",
			zap.String("request_id", event.RequestID.String()),
			zap.Int64("attraction_id", event.AttractionID))
	}

	if err := w.streamRepo.PublishToStream(ctx, domain.StreamAttractionSynced, synced); err != nil {
		logger.Error("Failed to publish synced event",
			zap.String("request_id", event.RequestID.String()),
			zap.Error(err))
	}

	w.ack(ctx, msg.ID)
}

// syncWithRetries повторяет синхронизацию при отказах провайдера.
// Ошибки данных (нет записи, нет внешнего ключа) не повторяются.
func (w *AttractionSyncWorker) syncWithRetries(ctx context.Context, event domain.AttractionSyncEvent) error {
	var lastErr error

	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		_, err := w.syncUC.SyncAttraction(ctx, event.AttractionID, event.Force)
		if err == nil {
			return nil
		}
		lastErr = err

		if err != errors.ErrProviderUnavailable {
			return err
		}

		w.Logger().Warn("Provider unavailable, retrying",
			zap.Int64("attraction_id", event.AttractionID),
			zap.Int("attempt", attempt),
			zap.Int("max_retries", w.maxRetries))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryDelay):
		}
	}

	return lastErr
}

func (w *AttractionSyncWorker) ack(ctx context.Context, messageID string) {
	if err := w.streamRepo.AckMessage(ctx, domain.StreamAttractionSync, w.ConsumerGroup(), messageID); err != nil {
		w.Logger().Error("Failed to ack message",
			zap.String("message_id", messageID),
			zap.Error(err))
	}
}
