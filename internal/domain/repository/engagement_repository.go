package repository

import (
	"context"

	"github.com/attractions-service/internal/domain"
)

// EngagementRepository определяет методы для лайков и личных списков
type EngagementRepository interface {
	// ToggleLike переключает лайк пары (user, attraction) и согласованно
	// изменяет счётчик num_likes в одной транзакции. Счётчик не уходит ниже нуля.
	ToggleLike(ctx context.Context, userID, attractionID int64) (*domain.LikeToggleResult, error)

	// ToggleSave переключает присутствие достопримечательности в личном списке
	ToggleSave(ctx context.Context, userID, attractionID int64) (*domain.SaveToggleResult, error)

	// ListSaved возвращает элементы личного списка пользователя (новые первыми)
	ListSaved(ctx context.Context, userID int64) ([]*domain.SavedAttraction, error)

	// ListSavedAttractions возвращает сами достопримечательности из личного списка
	ListSavedAttractions(ctx context.Context, userID int64) ([]*domain.Attraction, error)

	// CountLikes пересчитывает лайки по записям-отношениям (для сверки счётчика)
	CountLikes(ctx context.Context, attractionID int64) (int, error)
}
