package domain

// Типы ответов TripAdvisor Content API.
// Числовые поля (координаты, рейтинг, счётчики) провайдер отдаёт строками.

// AddressObj - адресный блок локации
type AddressObj struct {
	Street1       string `json:"street1,omitempty"`
	Street2       string `json:"street2,omitempty"`
	City          string `json:"city,omitempty"`
	Country       string `json:"country,omitempty"`
	Postalcode    string `json:"postalcode,omitempty"`
	AddressString string `json:"address_string,omitempty"`
}

// ProviderCategory - категория локации у провайдера
type ProviderCategory struct {
	Name          string `json:"name"`
	LocalizedName string `json:"localized_name,omitempty"`
}

// Award - награда локации
type Award struct {
	AwardType   string `json:"award_type,omitempty"`
	Year        string `json:"year,omitempty"`
	DisplayName string `json:"display_name"`
}

// LocationDetails - ответ /location/{id}/details
type LocationDetails struct {
	LocationID  string            `json:"location_id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	WebURL      string            `json:"web_url,omitempty"`
	AddressObj  *AddressObj       `json:"address_obj,omitempty"`
	Latitude    string            `json:"latitude,omitempty"`
	Longitude   string            `json:"longitude,omitempty"`
	Phone       string            `json:"phone,omitempty"`
	Website     string            `json:"website,omitempty"`
	Rating      string            `json:"rating,omitempty"`
	NumReviews  string            `json:"num_reviews,omitempty"`
	PhotoCount  string            `json:"photo_count,omitempty"`
	Category    *ProviderCategory `json:"category,omitempty"`
	Awards      []Award           `json:"awards,omitempty"`
}

// PhotoImage - один размер изображения
type PhotoImage struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// PhotoImages - варианты изображения по размерам
type PhotoImages struct {
	Thumbnail *PhotoImage `json:"thumbnail,omitempty"`
	Small     *PhotoImage `json:"small,omitempty"`
	Medium    *PhotoImage `json:"medium,omitempty"`
	Large     *PhotoImage `json:"large,omitempty"`
	Original  *PhotoImage `json:"original,omitempty"`
}

// Photo - элемент ответа /location/{id}/photos
type Photo struct {
	ID      int64       `json:"id"`
	Caption string      `json:"caption,omitempty"`
	Images  PhotoImages `json:"images"`
}

// PhotosResponse - ответ /location/{id}/photos
type PhotosResponse struct {
	Data []Photo `json:"data"`
}

// ReviewUser - автор отзыва
type ReviewUser struct {
	Username string `json:"username"`
}

// Review - элемент ответа /location/{id}/reviews
type Review struct {
	ID            int64       `json:"id"`
	Title         string      `json:"title,omitempty"`
	Text          string      `json:"text,omitempty"`
	Rating        float64     `json:"rating,omitempty"`
	PublishedDate string      `json:"published_date,omitempty"`
	User          *ReviewUser `json:"user,omitempty"`
}

// ReviewsResponse - ответ /location/{id}/reviews
type ReviewsResponse struct {
	Data []Review `json:"data"`
}

// NearbyLocation - элемент ответа /location/nearby_search
type NearbyLocation struct {
	LocationID string      `json:"location_id"`
	Name       string      `json:"name"`
	AddressObj *AddressObj `json:"address_obj,omitempty"`
}

// NearbySearchResponse - ответ /location/nearby_search
type NearbySearchResponse struct {
	Data []NearbyLocation `json:"data"`
}

// SyncPayload - объединённый результат синхронизации одной локации.
// Кешируется целиком под ключом вида tripadvisor:details:<location_id>.
type SyncPayload struct {
	Details *LocationDetails `json:"details"`
	Photos  *PhotosResponse  `json:"photos"`
	Reviews *ReviewsResponse `json:"reviews"`
}

// SyncCacheKey возвращает ключ кеша для результата синхронизации
func SyncCacheKey(tripAdvisorID string) string {
	return "tripadvisor:details:" + tripAdvisorID
}
