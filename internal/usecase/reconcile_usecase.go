package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/attractions-service/internal/domain"
	"github.com/attractions-service/internal/domain/repository"
	"github.com/attractions-service/internal/pkg/errors"
)

// ReconcileUseCase сводит внешние данные провайдера с локальным каталогом.
// Одна операция Upsert либо создаёт запись, либо дополняет существующую -
// nil-поля патча не затирают ранее сохранённые значения.
type ReconcileUseCase struct {
	attractionRepo repository.AttractionRepository
	categoryRepo   repository.CategoryRepository
	logger         *zap.Logger
}

func NewReconcileUseCase(
	attractionRepo repository.AttractionRepository,
	categoryRepo repository.CategoryRepository,
	logger *zap.Logger,
) *ReconcileUseCase {
	return &ReconcileUseCase{
		attractionRepo: attractionRepo,
		categoryRepo:   categoryRepo,
		logger:         logger,
	}
}

// Upsert создаёт или обновляет достопримечательность по внешнему ключу.
// Имя категории из патча разрешается в ID до записи; неизвестная категория
// создаётся. Повторный вызов с теми же данными не меняет состояние.
func (uc *ReconcileUseCase) Upsert(ctx context.Context, tripAdvisorID string, patch domain.AttractionPatch) (*domain.Attraction, error) {
	if tripAdvisorID == "" {
		return nil, errors.ErrInvalidRequest
	}

	if patch.CategoryName != nil && *patch.CategoryName != "" {
		category, err := uc.categoryRepo.GetOrCreate(ctx, *patch.CategoryName)
		if err != nil {
			uc.logger.Error("Failed to resolve category",
				zap.String("category", *patch.CategoryName), zap.Error(err))
			return nil, err
		}
		patch.CategoryID = &category.ID
	}

	attraction, err := uc.attractionRepo.Upsert(ctx, tripAdvisorID, patch)
	if err != nil {
		uc.logger.Error("Failed to upsert attraction",
			zap.String("tripadvisor_id", tripAdvisorID), zap.Error(err))
		return nil, err
	}

	return attraction, nil
}
