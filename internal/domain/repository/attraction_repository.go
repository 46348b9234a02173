package repository

import (
	"context"

	"github.com/attractions-service/internal/domain"
)

// AttractionRepository определяет методы для работы с достопримечательностями
type AttractionRepository interface {
	// GetByID возвращает достопримечательность по локальному ID
	GetByID(ctx context.Context, id int64) (*domain.Attraction, error)

	// GetByTripAdvisorID возвращает достопримечательность по внешнему ключу провайдера
	GetByTripAdvisorID(ctx context.Context, tripAdvisorID string) (*domain.Attraction, error)

	// Find возвращает активные достопримечательности по фильтру,
	// отсортированные по -num_likes, -rating
	Find(ctx context.Context, filter domain.AttractionFilter) ([]*domain.Attraction, error)

	// FindPopularByCountry возвращает топ достопримечательностей страны
	FindPopularByCountry(ctx context.Context, countryID int64, limit int) ([]*domain.Attraction, error)

	// Upsert атомарно создаёт или частично обновляет запись по tripadvisor_id.
	// nil-поля patch не затирают сохранённые значения. Конкурентные вызовы
	// для одного tripadvisor_id сериализуются на уникальном индексе.
	Upsert(ctx context.Context, tripAdvisorID string, patch domain.AttractionPatch) (*domain.Attraction, error)

	// Delete удаляет достопримечательность
	Delete(ctx context.Context, id int64) error
}
