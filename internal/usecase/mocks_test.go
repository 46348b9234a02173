package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/attractions-service/internal/domain"
)

// MockAttractionRepository is a mock of AttractionRepository
type MockAttractionRepository struct {
	mock.Mock
}

func (m *MockAttractionRepository) GetByID(ctx context.Context, id int64) (*domain.Attraction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attraction), args.Error(1)
}

func (m *MockAttractionRepository) GetByTripAdvisorID(ctx context.Context, tripAdvisorID string) (*domain.Attraction, error) {
	args := m.Called(ctx, tripAdvisorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attraction), args.Error(1)
}

func (m *MockAttractionRepository) Find(ctx context.Context, filter domain.AttractionFilter) ([]*domain.Attraction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Attraction), args.Error(1)
}

func (m *MockAttractionRepository) FindPopularByCountry(ctx context.Context, countryID int64, limit int) ([]*domain.Attraction, error) {
	args := m.Called(ctx, countryID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Attraction), args.Error(1)
}

func (m *MockAttractionRepository) Upsert(ctx context.Context, tripAdvisorID string, patch domain.AttractionPatch) (*domain.Attraction, error) {
	args := m.Called(ctx, tripAdvisorID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attraction), args.Error(1)
}

func (m *MockAttractionRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCategoryRepository is a mock of CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetOrCreate(ctx context.Context, name string) (*domain.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

// MockCountryRepository is a mock of CountryRepository
type MockCountryRepository struct {
	mock.Mock
}

func (m *MockCountryRepository) GetByID(ctx context.Context, id int64) (*domain.Country, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Country), args.Error(1)
}

func (m *MockCountryRepository) List(ctx context.Context) ([]*domain.Country, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Country), args.Error(1)
}

// MockEngagementRepository is a mock of EngagementRepository
type MockEngagementRepository struct {
	mock.Mock
}

func (m *MockEngagementRepository) ToggleLike(ctx context.Context, userID, attractionID int64) (*domain.LikeToggleResult, error) {
	args := m.Called(ctx, userID, attractionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LikeToggleResult), args.Error(1)
}

func (m *MockEngagementRepository) ToggleSave(ctx context.Context, userID, attractionID int64) (*domain.SaveToggleResult, error) {
	args := m.Called(ctx, userID, attractionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SaveToggleResult), args.Error(1)
}

func (m *MockEngagementRepository) ListSaved(ctx context.Context, userID int64) ([]*domain.SavedAttraction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SavedAttraction), args.Error(1)
}

func (m *MockEngagementRepository) ListSavedAttractions(ctx context.Context, userID int64) ([]*domain.Attraction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Attraction), args.Error(1)
}

func (m *MockEngagementRepository) CountLikes(ctx context.Context, attractionID int64) (int, error) {
	args := m.Called(ctx, attractionID)
	return args.Int(0), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) GetSyncPayload(ctx context.Context, tripAdvisorID string) (*domain.SyncPayload, error) {
	args := m.Called(ctx, tripAdvisorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SyncPayload), args.Error(1)
}

func (m *MockCacheRepository) SetSyncPayload(ctx context.Context, tripAdvisorID string, payload *domain.SyncPayload, ttl time.Duration) error {
	args := m.Called(ctx, tripAdvisorID, payload, ttl)
	return args.Error(0)
}

// MockProviderRepository is a mock of ProviderRepository
type MockProviderRepository struct {
	mock.Mock
}

func (m *MockProviderRepository) GetLocationDetails(ctx context.Context, locationID string) (*domain.LocationDetails, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LocationDetails), args.Error(1)
}

func (m *MockProviderRepository) GetLocationPhotos(ctx context.Context, locationID string) (*domain.PhotosResponse, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PhotosResponse), args.Error(1)
}

func (m *MockProviderRepository) GetLocationReviews(ctx context.Context, locationID string) (*domain.ReviewsResponse, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReviewsResponse), args.Error(1)
}

func (m *MockProviderRepository) SearchNearby(ctx context.Context, query string, lat, lon float64) (*domain.NearbySearchResponse, error) {
	args := m.Called(ctx, query, lat, lon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NearbySearchResponse), args.Error(1)
}

// Helper functions

func ptrInt64(v int64) *int64 {
	return &v
}

func ptrFloat64(v float64) *float64 {
	return &v
}

func ptrString(v string) *string {
	return &v
}
