package domain

import "time"

// PriceLevel - ценовая категория достопримечательности
type PriceLevel string

const (
	PriceFree      PriceLevel = "free"
	PriceBudget    PriceLevel = "budget"
	PriceModerate  PriceLevel = "moderate"
	PriceExpensive PriceLevel = "expensive"
	PriceLuxury    PriceLevel = "luxury"
)

// IsValid проверяет, что ценовая категория известна
func (p PriceLevel) IsValid() bool {
	switch p {
	case PriceFree, PriceBudget, PriceModerate, PriceExpensive, PriceLuxury:
		return true
	}
	return false
}

// PriceLevelCost - оценочная стоимость посещения по категориям (для подсчёта бюджета списка)
var PriceLevelCost = map[PriceLevel]int{
	PriceFree:      0,
	PriceBudget:    10,
	PriceModerate:  25,
	PriceExpensive: 50,
	PriceLuxury:    100,
}

// Attraction представляет туристическую достопримечательность
type Attraction struct {
	ID            int64   `json:"id" db:"id"`
	TripAdvisorID string  `json:"tripadvisor_id" db:"tripadvisor_id"`
	Name          string  `json:"name" db:"name"`
	Description   *string `json:"description,omitempty" db:"description"`
	CategoryID    *int64  `json:"category_id,omitempty" db:"category_id"`
	CountryID     *int64  `json:"country_id,omitempty" db:"country_id"`
	City          string  `json:"city" db:"city"`
	Address       *string `json:"address,omitempty" db:"address"`
	Lat           float64 `json:"lat" db:"lat"`
	Lon           float64 `json:"lon" db:"lon"`

	// Контакты
	Phone   *string `json:"phone,omitempty" db:"phone"`
	Website *string `json:"website,omitempty" db:"website"`
	Email   *string `json:"email,omitempty" db:"email"`

	PriceLevel PriceLevel `json:"price_level" db:"price_level"`

	// Данные TripAdvisor
	NumReviews int      `json:"num_reviews" db:"num_reviews"`
	NumPhotos  int      `json:"num_photos" db:"num_photos"`
	NumLikes   int      `json:"num_likes" db:"num_likes"`
	SavesCount int      `json:"saves_count" db:"saves_count"`
	Ranking    *int     `json:"ranking,omitempty" db:"ranking"`
	Rating     *float64 `json:"rating,omitempty" db:"rating"`

	Images []string `json:"images,omitempty" db:"images"`
	Awards []string `json:"awards,omitempty" db:"awards"`

	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Location возвращает координаты достопримечательности
func (a *Attraction) Location() Point {
	return Point{Lat: a.Lat, Lon: a.Lon}
}

// AttractionPatch - частичное обновление полей достопримечательности.
// nil-поля не изменяют сохранённые значения (merge, не replace).
type AttractionPatch struct {
	Name         *string
	Description  *string
	CountryID    *int64
	City         *string
	Address      *string
	Lat          *float64
	Lon          *float64
	Phone        *string
	Website      *string
	Rating       *float64
	NumReviews   *int
	NumPhotos    *int
	Images       []string
	Awards       []string
	CategoryName *string
	CategoryID   *int64
	IsActive     *bool
}

// Category представляет категорию достопримечательности
type Category struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description,omitempty" db:"description"`
}

// Country представляет страну со столицей - опорной точкой для поиска у провайдера
type Country struct {
	ID         int64     `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Code       string    `json:"code" db:"code"`
	Capital    string    `json:"capital" db:"capital"`
	CapitalLat float64   `json:"capital_lat" db:"capital_lat"`
	CapitalLon float64   `json:"capital_lon" db:"capital_lon"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// AttractionFilter - фильтры выборки достопримечательностей
type AttractionFilter struct {
	CountryID  *int64
	City       string
	CategoryID *int64
	Categories []string
	PriceLevel *PriceLevel
	MinReviews *int
	MinPhotos  *int
	MinRating  *float64
	Search     string
	Limit      int
}
