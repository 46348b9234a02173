package geo

import "github.com/attractions-service/internal/domain"

// FilterByRadius возвращает достопримечательности не дальше radiusKm от центра.
// Порядок входного среза сохраняется, вход не изменяется. Валидность радиуса
// (radiusKm > 0) проверяет вызывающая сторона; сама функция оставляет записи
// с расстоянием <= radiusKm, так что нулевой радиус даёт только точные совпадения.
func FilterByRadius(center domain.Point, radiusKm float64, attractions []*domain.Attraction) []*domain.Attraction {
	result := make([]*domain.Attraction, 0, len(attractions))
	for _, a := range attractions {
		if DistanceKm(center, a.Location()) <= radiusKm {
			result = append(result, a)
		}
	}
	return result
}
