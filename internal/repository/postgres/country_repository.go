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

type countryRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewCountryRepository(db *DB) repository.CountryRepository {
	return &countryRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *countryRepository) GetByID(ctx context.Context, id int64) (*domain.Country, error) {
	var c domain.Country
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, code, capital, capital_lat, capital_lon, created_at
		 FROM countries WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Code, &c.Capital, &c.CapitalLat, &c.CapitalLon, &c.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, errors.ErrCountryNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get country by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &c, nil
}

func (r *countryRepository) List(ctx context.Context) ([]*domain.Country, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, code, capital, capital_lat, capital_lon, created_at
		 FROM countries ORDER BY name`)
	if err != nil {
		r.logger.Error("Failed to list countries", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var countries []*domain.Country
	for rows.Next() {
		var c domain.Country
		err := rows.Scan(&c.ID, &c.Name, &c.Code, &c.Capital, &c.CapitalLat, &c.CapitalLon, &c.CreatedAt)
		if err != nil {
			r.logger.Error("Failed to scan country", zap.Error(err))
			continue
		}
		countries = append(countries, &c)
	}

	return countries, nil
}
