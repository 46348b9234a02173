package repository

import (
	"context"

	"github.com/attractions-service/internal/domain"
)

// CategoryRepository определяет методы для работы с категориями
type CategoryRepository interface {
	// GetByID возвращает категорию по ID
	GetByID(ctx context.Context, id int64) (*domain.Category, error)

	// GetByName возвращает категорию по точному имени (с учётом регистра)
	GetByName(ctx context.Context, name string) (*domain.Category, error)

	// GetOrCreate возвращает категорию по имени, создавая её при отсутствии.
	// Гонка двух конкурентных создателей разрешается на уникальном индексе имени.
	GetOrCreate(ctx context.Context, name string) (*domain.Category, error)

	// List возвращает все категории
	List(ctx context.Context) ([]*domain.Category, error)
}
