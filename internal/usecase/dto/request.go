package dto

// ListAttractionsRequest - фильтры выборки достопримечательностей.
// Географическая тройка (Latitude, Longitude, RadiusKm) либо отсутствует
// целиком, либо задаётся целиком.
type ListAttractionsRequest struct {
	CountryID  *int64   `json:"country_id,omitempty"`
	City       string   `json:"city,omitempty"`
	CategoryID *int64   `json:"category_id,omitempty"`
	Categories []string `json:"categories,omitempty"`
	PriceLevel string   `json:"price_level,omitempty" validate:"omitempty,oneof=free budget moderate expensive luxury"`
	MinReviews *int     `json:"min_reviews,omitempty" validate:"omitempty,min=0"`
	MinPhotos  *int     `json:"min_photos,omitempty" validate:"omitempty,min=0"`
	MinRating  *float64 `json:"min_rating,omitempty" validate:"omitempty,min=0,max=5"`
	Search     string   `json:"search,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude  *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	RadiusKm   *float64 `json:"radius,omitempty"`
	Limit      int      `json:"limit,omitempty" validate:"omitempty,min=1,max=500"`
}

// ByDistanceRequest - запрос на упорядочивание по близости от стартовой точки
type ByDistanceRequest struct {
	Latitude  *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
	Filter    ListAttractionsRequest
}

// CountrySearchRequest - запрос поиска локаций провайдера вокруг столицы страны
type CountrySearchRequest struct {
	CountryID int64  `json:"country_id" validate:"required,min=1"`
	Query     string `json:"query" validate:"required,min=1"`
}
