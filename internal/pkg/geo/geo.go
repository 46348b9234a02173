package geo

import (
	"math"

	"github.com/attractions-service/internal/domain"
)

const earthRadiusKm = 6371.0

// DistanceKm вычисляет расстояние большого круга между двумя точками
// в километрах (формула гаверсинусов)
func DistanceKm(a, b domain.Point) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180.0
	dLon := (b.Lon - a.Lon) * math.Pi / 180.0

	latARad := a.Lat * math.Pi / 180.0
	latBRad := b.Lat * math.Pi / 180.0

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(latARad)*math.Cos(latBRad)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// ValidateRadius проверяет валидность радиуса поиска
func ValidateRadius(radiusKm float64) bool {
	return radiusKm > 0
}
