package dto

import "github.com/attractions-service/internal/domain"

// AttractionWithDistance - достопримечательность с расстоянием от опорной точки
type AttractionWithDistance struct {
	*domain.Attraction
	DistanceKm float64 `json:"distance_km"`
}

// ListAttractionsResponse - результат выборки
type ListAttractionsResponse struct {
	Attractions []*domain.Attraction `json:"attractions"`
	Total       int                  `json:"total"`
}

// BudgetResponse - оценка бюджета личного списка
type BudgetResponse struct {
	TotalBudget int `json:"total_budget"`
	Count       int `json:"count"`
}
