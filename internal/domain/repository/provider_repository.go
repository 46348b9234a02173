package repository

import (
	"context"

	"github.com/attractions-service/internal/domain"
)

// ProviderRepository - клиент TripAdvisor Content API.
// Любая транспортная ошибка, таймаут или не-2xx ответ возвращаются
// как errors.ErrProviderUnavailable.
type ProviderRepository interface {
	// GetLocationDetails возвращает детали локации
	GetLocationDetails(ctx context.Context, locationID string) (*domain.LocationDetails, error)

	// GetLocationPhotos возвращает фотографии локации
	GetLocationPhotos(ctx context.Context, locationID string) (*domain.PhotosResponse, error)

	// GetLocationReviews возвращает отзывы о локации
	GetLocationReviews(ctx context.Context, locationID string) (*domain.ReviewsResponse, error)

	// SearchNearby ищет локации рядом с точкой
	SearchNearby(ctx context.Context, query string, lat, lon float64) (*domain.NearbySearchResponse, error)
}
