package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/attractions-service/internal/domain"
	"github.com/attractions-service/internal/domain/repository"
	"github.com/attractions-service/internal/pkg/errors"
)

const attractionColumns = `
	id, tripadvisor_id, name, description, category_id, country_id, city, address,
	lat, lon, phone, website, email, price_level, num_reviews, num_photos,
	num_likes, saves_count, ranking, rating, images, awards, is_active,
	created_at, updated_at`

type attractionRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewAttractionRepository(db *DB) repository.AttractionRepository {
	return &attractionRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAttraction(row rowScanner) (*domain.Attraction, error) {
	var a domain.Attraction
	err := row.Scan(
		&a.ID, &a.TripAdvisorID, &a.Name, &a.Description, &a.CategoryID,
		&a.CountryID, &a.City, &a.Address, &a.Lat, &a.Lon,
		&a.Phone, &a.Website, &a.Email, &a.PriceLevel,
		&a.NumReviews, &a.NumPhotos, &a.NumLikes, &a.SavesCount,
		&a.Ranking, &a.Rating,
		pq.Array(&a.Images), pq.Array(&a.Awards),
		&a.IsActive, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *attractionRepository) GetByID(ctx context.Context, id int64) (*domain.Attraction, error) {
	query := `SELECT` + attractionColumns + ` FROM attractions WHERE id = $1`

	a, err := scanAttraction(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.ErrAttractionNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get attraction by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return a, nil
}

func (r *attractionRepository) GetByTripAdvisorID(ctx context.Context, tripAdvisorID string) (*domain.Attraction, error) {
	query := `SELECT` + attractionColumns + ` FROM attractions WHERE tripadvisor_id = $1`

	a, err := scanAttraction(r.db.QueryRowContext(ctx, query, tripAdvisorID))
	if err == sql.ErrNoRows {
		return nil, errors.ErrAttractionNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get attraction by TripAdvisor ID",
			zap.String("tripadvisor_id", tripAdvisorID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return a, nil
}

func (r *attractionRepository) Find(ctx context.Context, filter domain.AttractionFilter) ([]*domain.Attraction, error) {
	query := `
		SELECT
			a.id, a.tripadvisor_id, a.name, a.description, a.category_id, a.country_id,
			a.city, a.address, a.lat, a.lon, a.phone, a.website, a.email, a.price_level,
			a.num_reviews, a.num_photos, a.num_likes, a.saves_count, a.ranking, a.rating,
			a.images, a.awards, a.is_active, a.created_at, a.updated_at
		FROM attractions a
		LEFT JOIN categories c ON c.id = a.category_id
		WHERE a.is_active = TRUE
	`

	args := []interface{}{}
	argIdx := 1

	if filter.CountryID != nil {
		query += fmt.Sprintf(" AND a.country_id = $%d", argIdx)
		args = append(args, *filter.CountryID)
		argIdx++
	}
	if filter.City != "" {
		query += fmt.Sprintf(" AND a.city ILIKE '%%' || $%d || '%%'", argIdx)
		args = append(args, filter.City)
		argIdx++
	}
	if filter.CategoryID != nil {
		query += fmt.Sprintf(" AND a.category_id = $%d", argIdx)
		args = append(args, *filter.CategoryID)
		argIdx++
	}
	if len(filter.Categories) > 0 {
		query += fmt.Sprintf(" AND c.name = ANY($%d)", argIdx)
		args = append(args, pq.Array(filter.Categories))
		argIdx++
	}
	if filter.PriceLevel != nil {
		query += fmt.Sprintf(" AND a.price_level = $%d", argIdx)
		args = append(args, string(*filter.PriceLevel))
		argIdx++
	}
	if filter.MinReviews != nil {
		query += fmt.Sprintf(" AND a.num_reviews >= $%d", argIdx)
		args = append(args, *filter.MinReviews)
		argIdx++
	}
	if filter.MinPhotos != nil {
		query += fmt.Sprintf(" AND a.num_photos >= $%d", argIdx)
		args = append(args, *filter.MinPhotos)
		argIdx++
	}
	if filter.MinRating != nil {
		query += fmt.Sprintf(" AND a.rating >= $%d", argIdx)
		args = append(args, *filter.MinRating)
		argIdx++
	}
	if filter.Search != "" {
		query += fmt.Sprintf(" AND a.name ILIKE '%%' || $%d || '%%'", argIdx)
		args = append(args, filter.Search)
		argIdx++
	}

	query += " ORDER BY a.num_likes DESC, a.rating DESC NULLS LAST"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to find attractions", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var attractions []*domain.Attraction
	for rows.Next() {
		a, err := scanAttraction(rows)
		if err != nil {
			r.logger.Error("Failed to scan attraction", zap.Error(err))
			continue
		}
		attractions = append(attractions, a)
	}

	return attractions, nil
}

func (r *attractionRepository) FindPopularByCountry(ctx context.Context, countryID int64, limit int) ([]*domain.Attraction, error) {
	query := `SELECT` + attractionColumns + `
		FROM attractions
		WHERE country_id = $1 AND is_active = TRUE
		ORDER BY num_likes DESC, rating DESC NULLS LAST
		LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, countryID, limit)
	if err != nil {
		r.logger.Error("Failed to find popular attractions",
			zap.Int64("country_id", countryID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var attractions []*domain.Attraction
	for rows.Next() {
		a, err := scanAttraction(rows)
		if err != nil {
			r.logger.Error("Failed to scan attraction", zap.Error(err))
			continue
		}
		attractions = append(attractions, a)
	}

	return attractions, nil
}

// Upsert выполняет атомарный insert-if-absent / patch-named-fields по tripadvisor_id.
// COALESCE оставляет прежнее значение для nil-полей patch, поэтому повторный вызов
// с теми же полями идемпотентен, а гонка двух создателей схлопывается в один ряд
// на уникальном индексе.
func (r *attractionRepository) Upsert(ctx context.Context, tripAdvisorID string, patch domain.AttractionPatch) (*domain.Attraction, error) {
	query := `
		INSERT INTO attractions (
			tripadvisor_id, name, description, category_id, country_id, city, address,
			lat, lon, phone, website, rating, num_reviews, num_photos, images, awards, is_active
		) VALUES (
			$1,
			COALESCE($2, ''),
			$3, $4, $5,
			COALESCE($6, ''),
			$7,
			COALESCE($8::double precision, 0), COALESCE($9::double precision, 0),
			$10, $11, $12,
			COALESCE($13, 0), COALESCE($14, 0),
			COALESCE($15::text[], '{}'), COALESCE($16::text[], '{}'),
			COALESCE($17, TRUE)
		)
		ON CONFLICT (tripadvisor_id) DO UPDATE SET
			name        = COALESCE($2, attractions.name),
			description = COALESCE($3, attractions.description),
			category_id = COALESCE($4, attractions.category_id),
			country_id  = COALESCE($5, attractions.country_id),
			city        = COALESCE($6, attractions.city),
			address     = COALESCE($7, attractions.address),
			lat         = COALESCE($8::double precision, attractions.lat),
			lon         = COALESCE($9::double precision, attractions.lon),
			phone       = COALESCE($10, attractions.phone),
			website     = COALESCE($11, attractions.website),
			rating      = COALESCE($12, attractions.rating),
			num_reviews = COALESCE($13, attractions.num_reviews),
			num_photos  = COALESCE($14, attractions.num_photos),
			images      = COALESCE($15::text[], attractions.images),
			awards      = COALESCE($16::text[], attractions.awards),
			is_active   = COALESCE($17, attractions.is_active),
			updated_at  = NOW()
		RETURNING` + attractionColumns

	var images, awards interface{}
	if patch.Images != nil {
		images = pq.Array(patch.Images)
	}
	if patch.Awards != nil {
		awards = pq.Array(patch.Awards)
	}

	a, err := scanAttraction(r.db.QueryRowContext(ctx, query,
		tripAdvisorID,
		patch.Name, patch.Description, patch.CategoryID, patch.CountryID,
		patch.City, patch.Address, patch.Lat, patch.Lon,
		patch.Phone, patch.Website, patch.Rating,
		patch.NumReviews, patch.NumPhotos,
		images, awards, patch.IsActive,
	))
	if err != nil {
		r.logger.Error("Failed to upsert attraction",
			zap.String("tripadvisor_id", tripAdvisorID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return a, nil
}

func (r *attractionRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM attractions WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete attraction", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrAttractionNotFound
	}

	return nil
}
