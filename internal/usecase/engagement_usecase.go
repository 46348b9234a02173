package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/attractions-service/internal/domain"
	"github.com/attractions-service/internal/domain/repository"
	"github.com/attractions-service/internal/pkg/errors"
	"github.com/attractions-service/internal/pkg/geo"
	"github.com/attractions-service/internal/usecase/dto"
)

// EngagementUseCase - лайки и личные списки пользователей
type EngagementUseCase struct {
	engagementRepo repository.EngagementRepository
	attractionRepo repository.AttractionRepository
	logger         *zap.Logger
}

func NewEngagementUseCase(
	engagementRepo repository.EngagementRepository,
	attractionRepo repository.AttractionRepository,
	logger *zap.Logger,
) *EngagementUseCase {
	return &EngagementUseCase{
		engagementRepo: engagementRepo,
		attractionRepo: attractionRepo,
		logger:         logger,
	}
}

// ToggleLike переключает лайк и возвращает новое состояние со счётчиком
func (uc *EngagementUseCase) ToggleLike(ctx context.Context, userID, attractionID int64) (*domain.LikeToggleResult, error) {
	if userID <= 0 {
		return nil, errors.ErrMissingUser
	}
	if attractionID <= 0 {
		return nil, errors.ErrInvalidRequest
	}

	result, err := uc.engagementRepo.ToggleLike(ctx, userID, attractionID)
	if err != nil {
		uc.logger.Error("Failed to toggle like",
			zap.Int64("user_id", userID),
			zap.Int64("attraction_id", attractionID),
			zap.Error(err))
		return nil, err
	}

	return result, nil
}

// ToggleSave переключает присутствие достопримечательности в личном списке
func (uc *EngagementUseCase) ToggleSave(ctx context.Context, userID, attractionID int64) (*domain.SaveToggleResult, error) {
	if userID <= 0 {
		return nil, errors.ErrMissingUser
	}
	if attractionID <= 0 {
		return nil, errors.ErrInvalidRequest
	}

	result, err := uc.engagementRepo.ToggleSave(ctx, userID, attractionID)
	if err != nil {
		uc.logger.Error("Failed to toggle save",
			zap.Int64("user_id", userID),
			zap.Int64("attraction_id", attractionID),
			zap.Error(err))
		return nil, err
	}

	return result, nil
}

// ListSaved возвращает достопримечательности из личного списка пользователя
func (uc *EngagementUseCase) ListSaved(ctx context.Context, userID int64) ([]*domain.Attraction, error) {
	if userID <= 0 {
		return nil, errors.ErrMissingUser
	}

	attractions, err := uc.engagementRepo.ListSavedAttractions(ctx, userID)
	if err != nil {
		uc.logger.Error("Failed to list saved attractions",
			zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}

	return attractions, nil
}

// SavedByDistance возвращает личный список, упорядоченный жадным обходом
// ближайшего соседа от точки пользователя
func (uc *EngagementUseCase) SavedByDistance(ctx context.Context, userID int64, lat, lon *float64) ([]*domain.Attraction, error) {
	if lat == nil || lon == nil {
		return nil, errors.ErrInvalidCoordinates
	}
	if !geo.ValidateCoordinates(*lat, *lon) {
		return nil, errors.ErrInvalidCoordinates
	}

	attractions, err := uc.ListSaved(ctx, userID)
	if err != nil {
		return nil, err
	}

	start := domain.Point{Lat: *lat, Lon: *lon}
	return geo.OrderByProximity(start, attractions), nil
}

// BudgetTotal оценивает суммарный бюджет личного списка по ценовым категориям
func (uc *EngagementUseCase) BudgetTotal(ctx context.Context, userID int64) (*dto.BudgetResponse, error) {
	attractions, err := uc.ListSaved(ctx, userID)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, a := range attractions {
		total += domain.PriceLevelCost[a.PriceLevel]
	}

	return &dto.BudgetResponse{
		TotalBudget: total,
		Count:       len(attractions),
	}, nil
}
