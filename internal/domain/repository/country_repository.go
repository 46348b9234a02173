package repository

import (
	"context"

	"github.com/attractions-service/internal/domain"
)

// CountryRepository определяет методы для работы со странами
type CountryRepository interface {
	// GetByID возвращает страну по ID
	GetByID(ctx context.Context, id int64) (*domain.Country, error)

	// List возвращает все страны
	List(ctx context.Context) ([]*domain.Country, error)
}
