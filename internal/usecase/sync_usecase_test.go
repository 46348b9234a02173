package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/attractions-service/internal/domain"
	"github.com/attractions-service/internal/pkg/errors"
	"github.com/attractions-service/internal/usecase"
)

type syncMocks struct {
	attractions *MockAttractionRepository
	countries   *MockCountryRepository
	cache       *MockCacheRepository
	provider    *MockProviderRepository
}

func newSyncUseCase(t *testing.T) (*usecase.SyncUseCase, syncMocks) {
	t.Helper()
	logger := zap.NewNop()
	m := syncMocks{
		attractions: &MockAttractionRepository{},
		countries:   &MockCountryRepository{},
		cache:       &MockCacheRepository{},
		provider:    &MockProviderRepository{},
	}
	categories := &MockCategoryRepository{}
	categories.On("GetOrCreate", mock.Anything, mock.Anything).
		Return(&domain.Category{ID: 1, Name: "attraction"}, nil).Maybe()
	reconciler := usecase.NewReconcileUseCase(m.attractions, categories, logger)
	uc := usecase.NewSyncUseCase(m.attractions, m.countries, m.cache, m.provider, reconciler, time.Hour, logger)
	return uc, m
}

func providerDetails() *domain.LocationDetails {
	return &domain.LocationDetails{
		LocationID:  "ta-100",
		Name:        "Tour Eiffel",
		Description: "Monument emblématique de Paris",
		Latitude:    "48.8584",
		Longitude:   "2.2945",
		Rating:      "4.5",
		NumReviews:  "140000",
		PhotoCount:  "5200",
		Category:    &domain.ProviderCategory{Name: "attraction"},
		AddressObj: &domain.AddressObj{
			City:          "Paris",
			AddressString: "Champ de Mars, Paris",
		},
		Awards: []domain.Award{{DisplayName: "Travelers' Choice 2024"}},
	}
}

func TestSyncUseCase_SyncAttraction(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips provider and database", func(t *testing.T) {
		uc, m := newSyncUseCase(t)

		m.attractions.On("GetByID", ctx, int64(1)).
			Return(&domain.Attraction{ID: 1, TripAdvisorID: "ta-100"}, nil)

		cached := &domain.SyncPayload{Details: providerDetails()}
		m.cache.On("GetSyncPayload", ctx, "ta-100").Return(cached, nil)

		payload, err := uc.SyncAttraction(ctx, 1, false)

		require.NoError(t, err)
		assert.Equal(t, cached, payload)
		m.provider.AssertNotCalled(t, "GetLocationDetails")
		m.provider.AssertNotCalled(t, "GetLocationPhotos")
		m.provider.AssertNotCalled(t, "GetLocationReviews")
		m.attractions.AssertNotCalled(t, "Upsert")
		m.cache.AssertNotCalled(t, "SetSyncPayload")
	})

	t.Run("force bypasses the cache read", func(t *testing.T) {
		uc, m := newSyncUseCase(t)

		m.attractions.On("GetByID", ctx, int64(1)).
			Return(&domain.Attraction{ID: 1, TripAdvisorID: "ta-100"}, nil)

		m.provider.On("GetLocationDetails", ctx, "ta-100").Return(providerDetails(), nil).Once()
		m.provider.On("GetLocationPhotos", ctx, "ta-100").Return(&domain.PhotosResponse{}, nil).Once()
		m.provider.On("GetLocationReviews", ctx, "ta-100").Return(&domain.ReviewsResponse{}, nil).Once()

		m.attractions.On("Upsert", ctx, "ta-100", mock.Anything).
			Return(&domain.Attraction{ID: 1, TripAdvisorID: "ta-100"}, nil)
		m.cache.On("SetSyncPayload", ctx, "ta-100", mock.Anything, time.Hour).Return(nil)

		payload, err := uc.SyncAttraction(ctx, 1, true)

		require.NoError(t, err)
		require.NotNil(t, payload)
		m.cache.AssertNotCalled(t, "GetSyncPayload")
		// Свежий результат всё равно кешируется
		m.cache.AssertExpectations(t)
		m.provider.AssertExpectations(t)
	})

	t.Run("cache miss fetches each endpoint once and reconciles", func(t *testing.T) {
		uc, m := newSyncUseCase(t)

		m.attractions.On("GetByID", ctx, int64(1)).
			Return(&domain.Attraction{ID: 1, TripAdvisorID: "ta-100"}, nil)
		m.cache.On("GetSyncPayload", ctx, "ta-100").Return(nil, nil)

		details := providerDetails()
		photos := &domain.PhotosResponse{Data: []domain.Photo{
			{ID: 1, Images: domain.PhotoImages{Original: &domain.PhotoImage{URL: "https://img/1.jpg"}}},
		}}
		reviews := &domain.ReviewsResponse{Data: []domain.Review{{ID: 10, Rating: 5}}}

		m.provider.On("GetLocationDetails", ctx, "ta-100").Return(details, nil).Once()
		m.provider.On("GetLocationPhotos", ctx, "ta-100").Return(photos, nil).Once()
		m.provider.On("GetLocationReviews", ctx, "ta-100").Return(reviews, nil).Once()

		m.attractions.On("Upsert", ctx, "ta-100", mock.MatchedBy(func(p domain.AttractionPatch) bool {
			return p.Name != nil && *p.Name == "Tour Eiffel" &&
				p.Lat != nil && *p.Lat == 48.8584 &&
				p.Rating != nil && *p.Rating == 4.5 &&
				p.NumReviews != nil && *p.NumReviews == 140000 &&
				p.NumPhotos != nil && *p.NumPhotos == 5200 &&
				len(p.Images) == 1 && p.Images[0] == "https://img/1.jpg" &&
				len(p.Awards) == 1 && p.Awards[0] == "Travelers' Choice 2024"
		})).Return(&domain.Attraction{ID: 1, TripAdvisorID: "ta-100"}, nil)

		m.cache.On("SetSyncPayload", ctx, "ta-100", mock.Anything, time.Hour).Return(nil)

		payload, err := uc.SyncAttraction(ctx, 1, false)

		require.NoError(t, err)
		assert.Equal(t, details, payload.Details)
		assert.Equal(t, photos, payload.Photos)
		assert.Equal(t, reviews, payload.Reviews)
		m.provider.AssertExpectations(t)
		m.attractions.AssertExpectations(t)
		m.cache.AssertExpectations(t)
	})

	t.Run("photos failure aborts before any write", func(t *testing.T) {
		uc, m := newSyncUseCase(t)

		m.attractions.On("GetByID", ctx, int64(1)).
			Return(&domain.Attraction{ID: 1, TripAdvisorID: "ta-100"}, nil)
		m.cache.On("GetSyncPayload", ctx, "ta-100").Return(nil, nil)

		m.provider.On("GetLocationDetails", ctx, "ta-100").Return(providerDetails(), nil)
		m.provider.On("GetLocationPhotos", ctx, "ta-100").Return(nil, errors.ErrProviderUnavailable)

		payload, err := uc.SyncAttraction(ctx, 1, false)

		assert.Nil(t, payload)
		assert.Equal(t, errors.ErrProviderUnavailable, err)
		m.attractions.AssertNotCalled(t, "Upsert")
		m.cache.AssertNotCalled(t, "SetSyncPayload")
	})

	t.Run("cache write failure still returns payload", func(t *testing.T) {
		uc, m := newSyncUseCase(t)

		m.attractions.On("GetByID", ctx, int64(1)).
			Return(&domain.Attraction{ID: 1, TripAdvisorID: "ta-100"}, nil)
		m.cache.On("GetSyncPayload", ctx, "ta-100").Return(nil, nil)

		m.provider.On("GetLocationDetails", ctx, "ta-100").Return(providerDetails(), nil)
		m.provider.On("GetLocationPhotos", ctx, "ta-100").Return(&domain.PhotosResponse{}, nil)
		m.provider.On("GetLocationReviews", ctx, "ta-100").Return(&domain.ReviewsResponse{}, nil)

		m.attractions.On("Upsert", ctx, "ta-100", mock.Anything).
			Return(&domain.Attraction{ID: 1, TripAdvisorID: "ta-100"}, nil)
		m.cache.On("SetSyncPayload", ctx, "ta-100", mock.Anything, time.Hour).
			Return(errors.ErrCacheError)

		payload, err := uc.SyncAttraction(ctx, 1, false)

		require.NoError(t, err)
		require.NotNil(t, payload)
		assert.Equal(t, "Tour Eiffel", payload.Details.Name)
	})

	t.Run("cache read failure is treated as a miss", func(t *testing.T) {
		uc, m := newSyncUseCase(t)

		m.attractions.On("GetByID", ctx, int64(1)).
			Return(&domain.Attraction{ID: 1, TripAdvisorID: "ta-100"}, nil)
		m.cache.On("GetSyncPayload", ctx, "ta-100").Return(nil, errors.ErrCacheError)

		m.provider.On("GetLocationDetails", ctx, "ta-100").Return(providerDetails(), nil)
		m.provider.On("GetLocationPhotos", ctx, "ta-100").Return(&domain.PhotosResponse{}, nil)
		m.provider.On("GetLocationReviews", ctx, "ta-100").Return(&domain.ReviewsResponse{}, nil)
		m.attractions.On("Upsert", ctx, "ta-100", mock.Anything).
			Return(&domain.Attraction{ID: 1, TripAdvisorID: "ta-100"}, nil)
		m.cache.On("SetSyncPayload", ctx, "ta-100", mock.Anything, time.Hour).Return(nil)

		payload, err := uc.SyncAttraction(ctx, 1, false)

		require.NoError(t, err)
		require.NotNil(t, payload)
		m.provider.AssertExpectations(t)
	})

	t.Run("attraction without provider id", func(t *testing.T) {
		uc, m := newSyncUseCase(t)

		m.attractions.On("GetByID", ctx, int64(5)).
			Return(&domain.Attraction{ID: 5, TripAdvisorID: ""}, nil)

		payload, err := uc.SyncAttraction(ctx, 5, false)

		assert.Nil(t, payload)
		assert.Equal(t, errors.ErrNoProviderID, err)
		m.cache.AssertNotCalled(t, "GetSyncPayload")
	})

	t.Run("unknown attraction", func(t *testing.T) {
		uc, m := newSyncUseCase(t)

		m.attractions.On("GetByID", ctx, int64(99)).
			Return(nil, errors.ErrAttractionNotFound)

		payload, err := uc.SyncAttraction(ctx, 99, false)

		assert.Nil(t, payload)
		assert.Equal(t, errors.ErrAttractionNotFound, err)
	})
}

func TestSyncUseCase_SearchAndImport(t *testing.T) {
	ctx := context.Background()

	t.Run("imports stubs around the capital", func(t *testing.T) {
		uc, m := newSyncUseCase(t)

		country := &domain.Country{ID: 3, Name: "Spain", Capital: "Madrid", CapitalLat: 40.4168, CapitalLon: -3.7038}
		m.countries.On("GetByID", ctx, int64(3)).Return(country, nil)

		result := &domain.NearbySearchResponse{Data: []domain.NearbyLocation{
			{LocationID: "ta-200", Name: "Museo del Prado", AddressObj: &domain.AddressObj{City: "Madrid"}},
			{LocationID: "ta-201", Name: "Parque del Retiro"},
		}}
		m.provider.On("SearchNearby", ctx, "museum", 40.4168, -3.7038).Return(result, nil)

		m.attractions.On("Upsert", ctx, "ta-200", mock.MatchedBy(func(p domain.AttractionPatch) bool {
			return p.Name != nil && *p.Name == "Museo del Prado" &&
				p.City != nil && *p.City == "Madrid" &&
				p.CountryID != nil && *p.CountryID == 3
		})).Return(&domain.Attraction{ID: 10, TripAdvisorID: "ta-200"}, nil)
		m.attractions.On("Upsert", ctx, "ta-201", mock.Anything).
			Return(&domain.Attraction{ID: 11, TripAdvisorID: "ta-201"}, nil)

		imported, err := uc.SearchAndImport(ctx, 3, "museum")

		require.NoError(t, err)
		require.Len(t, imported, 2)
		assert.Equal(t, "ta-200", imported[0].TripAdvisorID)
		m.attractions.AssertExpectations(t)
	})

	t.Run("empty query is rejected", func(t *testing.T) {
		uc, m := newSyncUseCase(t)

		imported, err := uc.SearchAndImport(ctx, 3, "")

		assert.Nil(t, imported)
		assert.Equal(t, errors.ErrInvalidRequest, err)
		m.countries.AssertNotCalled(t, "GetByID")
	})

	t.Run("unknown country", func(t *testing.T) {
		uc, m := newSyncUseCase(t)

		m.countries.On("GetByID", ctx, int64(77)).Return(nil, errors.ErrCountryNotFound)

		imported, err := uc.SearchAndImport(ctx, 77, "museum")

		assert.Nil(t, imported)
		assert.Equal(t, errors.ErrCountryNotFound, err)
		m.provider.AssertNotCalled(t, "SearchNearby")
	})

	t.Run("provider failure propagates", func(t *testing.T) {
		uc, m := newSyncUseCase(t)

		country := &domain.Country{ID: 3, CapitalLat: 40.4168, CapitalLon: -3.7038}
		m.countries.On("GetByID", ctx, int64(3)).Return(country, nil)
		m.provider.On("SearchNearby", ctx, "museum", 40.4168, -3.7038).
			Return(nil, errors.ErrProviderUnavailable)

		imported, err := uc.SearchAndImport(ctx, 3, "museum")

		assert.Nil(t, imported)
		assert.Equal(t, errors.ErrProviderUnavailable, err)
		m.attractions.AssertNotCalled(t, "Upsert")
	})
}
