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

const defaultPopularLimit = 20

type AttractionUseCase struct {
	attractionRepo repository.AttractionRepository
	countryRepo    repository.CountryRepository
	logger         *zap.Logger
}

func NewAttractionUseCase(
	attractionRepo repository.AttractionRepository,
	countryRepo repository.CountryRepository,
	logger *zap.Logger,
) *AttractionUseCase {
	return &AttractionUseCase{
		attractionRepo: attractionRepo,
		countryRepo:    countryRepo,
		logger:         logger,
	}
}

// List возвращает активные достопримечательности по фильтрам. Географическая
// тройка (latitude, longitude, radius) применяется поверх выборки из базы.
func (uc *AttractionUseCase) List(ctx context.Context, req dto.ListAttractionsRequest) ([]*domain.Attraction, error) {
	filter, err := buildFilter(req)
	if err != nil {
		return nil, err
	}

	hasGeo := req.Latitude != nil || req.Longitude != nil || req.RadiusKm != nil
	if hasGeo {
		if req.Latitude == nil || req.Longitude == nil || req.RadiusKm == nil {
			return nil, errors.ErrInvalidCoordinates
		}
		if !geo.ValidateCoordinates(*req.Latitude, *req.Longitude) {
			return nil, errors.ErrInvalidCoordinates
		}
		if !geo.ValidateRadius(*req.RadiusKm) {
			return nil, errors.ErrInvalidRadius
		}
	}

	attractions, err := uc.attractionRepo.Find(ctx, filter)
	if err != nil {
		uc.logger.Error("Failed to list attractions", zap.Error(err))
		return nil, err
	}

	if hasGeo {
		center := domain.Point{Lat: *req.Latitude, Lon: *req.Longitude}
		attractions = geo.FilterByRadius(center, *req.RadiusKm, attractions)
	}

	return attractions, nil
}

// GetByID возвращает достопримечательность по ID
func (uc *AttractionUseCase) GetByID(ctx context.Context, id int64) (*domain.Attraction, error) {
	if id <= 0 {
		return nil, errors.ErrInvalidRequest
	}

	attraction, err := uc.attractionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Деактивированные записи для чтения не существуют
	if !attraction.IsActive {
		return nil, errors.ErrAttractionNotFound
	}

	return attraction, nil
}

// Popular возвращает топ достопримечательностей по лайкам и рейтингу
func (uc *AttractionUseCase) Popular(ctx context.Context, req dto.ListAttractionsRequest) ([]*domain.Attraction, error) {
	filter, err := buildFilter(req)
	if err != nil {
		return nil, err
	}
	if filter.Limit == 0 || filter.Limit > defaultPopularLimit {
		filter.Limit = defaultPopularLimit
	}

	attractions, err := uc.attractionRepo.Find(ctx, filter)
	if err != nil {
		uc.logger.Error("Failed to get popular attractions", zap.Error(err))
		return nil, err
	}

	return attractions, nil
}

// PopularByCountry возвращает топ достопримечательностей страны
func (uc *AttractionUseCase) PopularByCountry(ctx context.Context, countryID int64, limit int) ([]*domain.Attraction, error) {
	if _, err := uc.countryRepo.GetByID(ctx, countryID); err != nil {
		return nil, err
	}

	if limit <= 0 || limit > defaultPopularLimit {
		limit = defaultPopularLimit
	}

	attractions, err := uc.attractionRepo.FindPopularByCountry(ctx, countryID, limit)
	if err != nil {
		uc.logger.Error("Failed to get popular attractions by country",
			zap.Int64("country_id", countryID), zap.Error(err))
		return nil, err
	}

	return attractions, nil
}

// OrderByDistance возвращает выборку, упорядоченную жадным обходом
// ближайшего соседа от стартовой точки
func (uc *AttractionUseCase) OrderByDistance(ctx context.Context, req dto.ByDistanceRequest) ([]*domain.Attraction, error) {
	if req.Latitude == nil || req.Longitude == nil {
		return nil, errors.ErrInvalidCoordinates
	}
	if !geo.ValidateCoordinates(*req.Latitude, *req.Longitude) {
		return nil, errors.ErrInvalidCoordinates
	}

	attractions, err := uc.List(ctx, req.Filter)
	if err != nil {
		return nil, err
	}

	start := domain.Point{Lat: *req.Latitude, Lon: *req.Longitude}
	return geo.OrderByProximity(start, attractions), nil
}

// ListCountries возвращает все страны
func (uc *AttractionUseCase) ListCountries(ctx context.Context) ([]*domain.Country, error) {
	countries, err := uc.countryRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list countries", zap.Error(err))
		return nil, err
	}

	return countries, nil
}

func buildFilter(req dto.ListAttractionsRequest) (domain.AttractionFilter, error) {
	filter := domain.AttractionFilter{
		CountryID:  req.CountryID,
		City:       req.City,
		CategoryID: req.CategoryID,
		Categories: req.Categories,
		MinReviews: req.MinReviews,
		MinPhotos:  req.MinPhotos,
		MinRating:  req.MinRating,
		Search:     req.Search,
		Limit:      req.Limit,
	}

	if req.PriceLevel != "" {
		level := domain.PriceLevel(req.PriceLevel)
		if !level.IsValid() {
			return domain.AttractionFilter{}, errors.ErrInvalidRequest
		}
		filter.PriceLevel = &level
	}

	return filter, nil
}
