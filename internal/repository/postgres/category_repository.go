package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/attractions-service/internal/domain"
	"github.com/attractions-service/internal/domain/repository"
	"github.com/attractions-service/internal/pkg/errors"
)

type categoryRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewCategoryRepository(db *DB) repository.CategoryRepository {
	return &categoryRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	var c domain.Category
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, description FROM categories WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Description)

	if err == sql.ErrNoRows {
		return nil, errors.ErrCategoryNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get category by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &c, nil
}

func (r *categoryRepository) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	var c domain.Category
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, description FROM categories WHERE name = $1`, name,
	).Scan(&c.ID, &c.Name, &c.Description)

	if err == sql.ErrNoRows {
		return nil, errors.ErrCategoryNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get category by name", zap.String("name", name), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &c, nil
}

// GetOrCreate создаёт категорию по имени, если её нет. Конкурентная вставка
// того же имени упирается в уникальный индекс: DO NOTHING не возвращает ряд,
// и мы дочитываем победителя гонки обычным SELECT.
func (r *categoryRepository) GetOrCreate(ctx context.Context, name string) (*domain.Category, error) {
	var c domain.Category
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO categories (name)
		 VALUES ($1)
		 ON CONFLICT (name) DO NOTHING
		 RETURNING id, name, description`, name,
	).Scan(&c.ID, &c.Name, &c.Description)

	if err == nil {
		return &c, nil
	}
	if err != sql.ErrNoRows {
		r.logger.Error("Failed to create category", zap.String("name", name), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return r.GetByName(ctx, name)
}

func (r *categoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, description FROM categories ORDER BY name`)
	if err != nil {
		r.logger.Error("Failed to list categories", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var categories []*domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			r.logger.Error("Failed to scan category", zap.Error(err))
			continue
		}
		categories = append(categories, &c)
	}

	return categories, nil
}
