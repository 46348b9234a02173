package tripadvisor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/attractions-service/internal/config"
	"github.com/attractions-service/internal/domain"
	"github.com/attractions-service/internal/domain/repository"
	"github.com/attractions-service/internal/pkg/errors"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	language   string
	logger     *zap.Logger
}

// NewTripAdvisorClient создает новый клиент для TripAdvisor Content API.
// Любая ошибка транспорта, таймаут или не-2xx статус возвращаются наружу
// как PROVIDER_UNAVAILABLE - вызывающий сам решает, повторять ли операцию.
func NewTripAdvisorClient(cfg *config.TripAdvisorConfig, logger *zap.Logger) repository.ProviderRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:  cfg.BaseURL,
		apiKey:   cfg.APIKey,
		language: cfg.Language,
		logger:   logger,
	}
}

// GetLocationDetails возвращает детали локации
func (c *client) GetLocationDetails(ctx context.Context, locationID string) (*domain.LocationDetails, error) {
	endpoint := fmt.Sprintf("/location/%s/details", url.PathEscape(locationID))

	var details domain.LocationDetails
	if err := c.get(ctx, endpoint, nil, &details); err != nil {
		return nil, err
	}

	return &details, nil
}

// GetLocationPhotos возвращает фотографии локации
func (c *client) GetLocationPhotos(ctx context.Context, locationID string) (*domain.PhotosResponse, error) {
	endpoint := fmt.Sprintf("/location/%s/photos", url.PathEscape(locationID))

	var photos domain.PhotosResponse
	if err := c.get(ctx, endpoint, nil, &photos); err != nil {
		return nil, err
	}

	return &photos, nil
}

// GetLocationReviews возвращает отзывы о локации
func (c *client) GetLocationReviews(ctx context.Context, locationID string) (*domain.ReviewsResponse, error) {
	endpoint := fmt.Sprintf("/location/%s/reviews", url.PathEscape(locationID))

	var reviews domain.ReviewsResponse
	if err := c.get(ctx, endpoint, nil, &reviews); err != nil {
		return nil, err
	}

	return &reviews, nil
}

// SearchNearby ищет локации рядом с точкой
func (c *client) SearchNearby(ctx context.Context, query string, lat, lon float64) (*domain.NearbySearchResponse, error) {
	params := url.Values{}
	params.Set("searchQuery", query)
	params.Set("latLong", fmt.Sprintf("%f,%f", lat, lon))

	var result domain.NearbySearchResponse
	if err := c.get(ctx, "/location/nearby_search", params, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// get выполняет GET-запрос к API и декодирует JSON-ответ в out
func (c *client) get(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("key", c.apiKey)
	params.Set("language", c.language)

	reqURL := c.baseURL + endpoint + "?" + params.Encode()

	c.logger.Debug("Calling TripAdvisor API", zap.String("endpoint", endpoint))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.String("endpoint", endpoint), zap.Error(err))
		return errors.ErrProviderUnavailable
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.String("endpoint", endpoint), zap.Error(err))
		return errors.ErrProviderUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("TripAdvisor API returned error",
			zap.String("endpoint", endpoint),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return errors.ErrProviderUnavailable
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("Failed to decode response", zap.String("endpoint", endpoint), zap.Error(err))
		return errors.ErrProviderUnavailable
	}

	return nil
}
