package domain

// Point - географическая точка (широта/долгота в градусах)
type Point struct {
	Lat float64 `json:"lat" db:"lat"`
	Lon float64 `json:"lon" db:"lon"`
}
