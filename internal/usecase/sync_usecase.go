package usecase

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/attractions-service/internal/domain"
	"github.com/attractions-service/internal/domain/repository"
	"github.com/attractions-service/internal/pkg/errors"
)

const searchImportLimit = 20

// SyncUseCase синхронизирует локальные записи с TripAdvisor Content API.
// Кеш отвечает за частоту обращений к провайдеру: повторная синхронизация
// в пределах TTL не делает ни одного внешнего запроса.
type SyncUseCase struct {
	attractionRepo repository.AttractionRepository
	countryRepo    repository.CountryRepository
	cacheRepo      repository.CacheRepository
	provider       repository.ProviderRepository
	reconciler     *ReconcileUseCase
	cacheTTL       time.Duration
	logger         *zap.Logger
}

func NewSyncUseCase(
	attractionRepo repository.AttractionRepository,
	countryRepo repository.CountryRepository,
	cacheRepo repository.CacheRepository,
	provider repository.ProviderRepository,
	reconciler *ReconcileUseCase,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *SyncUseCase {
	return &SyncUseCase{
		attractionRepo: attractionRepo,
		countryRepo:    countryRepo,
		cacheRepo:      cacheRepo,
		provider:       provider,
		reconciler:     reconciler,
		cacheTTL:       cacheTTL,
		logger:         logger,
	}
}

// SyncAttraction обновляет запись данными провайдера. При попадании в кеш
// сохранённый результат возвращается без обращений к провайдеру и без записи
// в базу; force пропускает чтение кеша и всегда идёт к провайдеру. Отказ
// любого из трёх запросов провайдера прерывает операцию до каких-либо
// изменений каталога и кеша.
func (uc *SyncUseCase) SyncAttraction(ctx context.Context, attractionID int64, force bool) (*domain.SyncPayload, error) {
	attraction, err := uc.attractionRepo.GetByID(ctx, attractionID)
	if err != nil {
		return nil, err
	}

	if attraction.TripAdvisorID == "" {
		return nil, errors.ErrNoProviderID
	}

	if !force {
		cached, err := uc.cacheRepo.GetSyncPayload(ctx, attraction.TripAdvisorID)
		if err != nil {
			// Ошибка кеша - это промах, не отказ
			uc.logger.Warn("Failed to read sync cache",
				zap.String("tripadvisor_id", attraction.TripAdvisorID), zap.Error(err))
		}
		if cached != nil {
			uc.logger.Debug("Sync cache hit", zap.String("tripadvisor_id", attraction.TripAdvisorID))
			return cached, nil
		}
	}

	details, err := uc.provider.GetLocationDetails(ctx, attraction.TripAdvisorID)
	if err != nil {
		return nil, err
	}

	photos, err := uc.provider.GetLocationPhotos(ctx, attraction.TripAdvisorID)
	if err != nil {
		return nil, err
	}

	reviews, err := uc.provider.GetLocationReviews(ctx, attraction.TripAdvisorID)
	if err != nil {
		return nil, err
	}

	payload := &domain.SyncPayload{
		Details: details,
		Photos:  photos,
		Reviews: reviews,
	}

	patch := buildPatch(payload)
	if _, err := uc.reconciler.Upsert(ctx, attraction.TripAdvisorID, patch); err != nil {
		return nil, err
	}

	if err := uc.cacheRepo.SetSyncPayload(ctx, attraction.TripAdvisorID, payload, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to write sync cache",
			zap.String("tripadvisor_id", attraction.TripAdvisorID), zap.Error(err))
	}

	uc.logger.Info("Attraction synced",
		zap.Int64("attraction_id", attractionID),
		zap.String("tripadvisor_id", attraction.TripAdvisorID))

	return payload, nil
}

// SearchAndImport ищет локации провайдера вокруг столицы страны и заводит
// для найденных записи-заготовки. Существующие записи не затираются.
func (uc *SyncUseCase) SearchAndImport(ctx context.Context, countryID int64, query string) ([]*domain.Attraction, error) {
	if query == "" {
		return nil, errors.ErrInvalidRequest
	}

	country, err := uc.countryRepo.GetByID(ctx, countryID)
	if err != nil {
		return nil, err
	}

	result, err := uc.provider.SearchNearby(ctx, query, country.CapitalLat, country.CapitalLon)
	if err != nil {
		return nil, err
	}

	locations := result.Data
	if len(locations) > searchImportLimit {
		locations = locations[:searchImportLimit]
	}

	imported := make([]*domain.Attraction, 0, len(locations))
	for _, loc := range locations {
		if loc.LocationID == "" {
			continue
		}

		patch := domain.AttractionPatch{
			Name:      &loc.Name,
			CountryID: &country.ID,
		}
		if loc.AddressObj != nil {
			if loc.AddressObj.City != "" {
				patch.City = &loc.AddressObj.City
			}
			if loc.AddressObj.AddressString != "" {
				patch.Address = &loc.AddressObj.AddressString
			}
		}

		attraction, err := uc.reconciler.Upsert(ctx, loc.LocationID, patch)
		if err != nil {
			uc.logger.Error("Failed to import location",
				zap.String("location_id", loc.LocationID), zap.Error(err))
			return nil, err
		}
		imported = append(imported, attraction)
	}

	uc.logger.Info("Provider search imported",
		zap.Int64("country_id", countryID),
		zap.String("query", query),
		zap.Int("count", len(imported)))

	return imported, nil
}

// buildPatch переводит ответ провайдера в частичное обновление записи.
// Пустые и некорректные строковые числа провайдера пропускаются.
func buildPatch(payload *domain.SyncPayload) domain.AttractionPatch {
	details := payload.Details
	patch := domain.AttractionPatch{}

	if details.Name != "" {
		patch.Name = &details.Name
	}
	if details.Description != "" {
		patch.Description = &details.Description
	}
	if details.Phone != "" {
		patch.Phone = &details.Phone
	}
	if details.Website != "" {
		patch.Website = &details.Website
	}
	if details.AddressObj != nil {
		if details.AddressObj.City != "" {
			patch.City = &details.AddressObj.City
		}
		if details.AddressObj.AddressString != "" {
			patch.Address = &details.AddressObj.AddressString
		}
	}
	if details.Category != nil && details.Category.Name != "" {
		patch.CategoryName = &details.Category.Name
	}

	if lat, err := strconv.ParseFloat(details.Latitude, 64); err == nil {
		patch.Lat = &lat
	}
	if lon, err := strconv.ParseFloat(details.Longitude, 64); err == nil {
		patch.Lon = &lon
	}
	if rating, err := strconv.ParseFloat(details.Rating, 64); err == nil {
		patch.Rating = &rating
	}
	if numReviews, err := strconv.Atoi(details.NumReviews); err == nil {
		patch.NumReviews = &numReviews
	}
	if numPhotos, err := strconv.Atoi(details.PhotoCount); err == nil {
		patch.NumPhotos = &numPhotos
	}

	if len(details.Awards) > 0 {
		awards := make([]string, 0, len(details.Awards))
		for _, award := range details.Awards {
			if award.DisplayName != "" {
				awards = append(awards, award.DisplayName)
			}
		}
		patch.Awards = awards
	}

	if payload.Photos != nil && len(payload.Photos.Data) > 0 {
		images := make([]string, 0, len(payload.Photos.Data))
		for _, photo := range payload.Photos.Data {
			if photo.Images.Original != nil && photo.Images.Original.URL != "" {
				images = append(images, photo.Images.Original.URL)
			}
		}
		if len(images) > 0 {
			patch.Images = images
		}
	}

	return patch
}
