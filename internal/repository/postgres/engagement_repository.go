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

type engagementRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewEngagementRepository(db *DB) repository.EngagementRepository {
	return &engagementRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// lockAttraction блокирует ряд достопримечательности на время транзакции.
// Конкурентные toggle-ы одной достопримечательности выстраиваются в очередь
// здесь, до чтения состояния отношения.
func lockAttraction(ctx context.Context, tx *sqlx.Tx, attractionID int64) error {
	var id int64
	err := tx.QueryRowContext(ctx,
		`SELECT id FROM attractions WHERE id = $1 FOR UPDATE`, attractionID,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return errors.ErrAttractionNotFound
	}
	if err != nil {
		return errors.ErrDatabaseError
	}
	return nil
}

// ToggleLike переключает лайк в одной транзакции. Существование отношения
// определяется исходом INSERT ... ON CONFLICT DO NOTHING: конкурентные вызовы
// для одной пары (user, attraction) сериализуются на уникальном индексе,
// поэтому оба не могут одновременно увидеть "лайка нет" и вставить два ряда.
func (r *engagementRepository) ToggleLike(ctx context.Context, userID, attractionID int64) (*domain.LikeToggleResult, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin like toggle", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer tx.Rollback()

	if err := lockAttraction(ctx, tx, attractionID); err != nil {
		return nil, err
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO attraction_likes (user_id, attraction_id)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id, attraction_id) DO NOTHING`,
		userID, attractionID,
	)
	if err != nil {
		r.logger.Error("Failed to insert like",
			zap.Int64("user_id", userID), zap.Int64("attraction_id", attractionID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return nil, errors.ErrDatabaseError
	}

	var numLikes int
	if inserted == 1 {
		err = tx.QueryRowContext(ctx,
			`UPDATE attractions SET num_likes = num_likes + 1, updated_at = NOW()
			 WHERE id = $1
			 RETURNING num_likes`,
			attractionID,
		).Scan(&numLikes)
	} else {
		if _, err = tx.ExecContext(ctx,
			`DELETE FROM attraction_likes WHERE user_id = $1 AND attraction_id = $2`,
			userID, attractionID,
		); err != nil {
			r.logger.Error("Failed to delete like", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		// floor at zero, счётчик не уходит в минус
		err = tx.QueryRowContext(ctx,
			`UPDATE attractions SET num_likes = GREATEST(num_likes - 1, 0), updated_at = NOW()
			 WHERE id = $1
			 RETURNING num_likes`,
			attractionID,
		).Scan(&numLikes)
	}

	if err == sql.ErrNoRows {
		return nil, errors.ErrAttractionNotFound
	}
	if err != nil {
		r.logger.Error("Failed to update like counter",
			zap.Int64("attraction_id", attractionID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit like toggle", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &domain.LikeToggleResult{
		Liked:    inserted == 1,
		NumLikes: numLikes,
	}, nil
}

// ToggleSave переключает присутствие в личном списке; счётчик saves_count
// ведётся так же, как num_likes у лайков.
func (r *engagementRepository) ToggleSave(ctx context.Context, userID, attractionID int64) (*domain.SaveToggleResult, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin save toggle", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer tx.Rollback()

	if err := lockAttraction(ctx, tx, attractionID); err != nil {
		return nil, err
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO saved_attractions (user_id, attraction_id)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id, attraction_id) DO NOTHING`,
		userID, attractionID,
	)
	if err != nil {
		r.logger.Error("Failed to insert saved attraction",
			zap.Int64("user_id", userID), zap.Int64("attraction_id", attractionID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return nil, errors.ErrDatabaseError
	}

	var counterQuery string
	if inserted == 1 {
		counterQuery = `UPDATE attractions SET saves_count = saves_count + 1, updated_at = NOW()
			WHERE id = $1 RETURNING saves_count`
	} else {
		if _, err = tx.ExecContext(ctx,
			`DELETE FROM saved_attractions WHERE user_id = $1 AND attraction_id = $2`,
			userID, attractionID,
		); err != nil {
			r.logger.Error("Failed to delete saved attraction", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		counterQuery = `UPDATE attractions SET saves_count = GREATEST(saves_count - 1, 0), updated_at = NOW()
			WHERE id = $1 RETURNING saves_count`
	}

	var savesCount int
	err = tx.QueryRowContext(ctx, counterQuery, attractionID).Scan(&savesCount)
	if err == sql.ErrNoRows {
		return nil, errors.ErrAttractionNotFound
	}
	if err != nil {
		r.logger.Error("Failed to update saves counter",
			zap.Int64("attraction_id", attractionID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit save toggle", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &domain.SaveToggleResult{Saved: inserted == 1}, nil
}

func (r *engagementRepository) ListSaved(ctx context.Context, userID int64) ([]*domain.SavedAttraction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, attraction_id, notes, visited, added_at
		 FROM saved_attractions
		 WHERE user_id = $1
		 ORDER BY added_at DESC`, userID)
	if err != nil {
		r.logger.Error("Failed to list saved attractions", zap.Int64("user_id", userID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var items []*domain.SavedAttraction
	for rows.Next() {
		var s domain.SavedAttraction
		err := rows.Scan(&s.ID, &s.UserID, &s.AttractionID, &s.Notes, &s.Visited, &s.AddedAt)
		if err != nil {
			r.logger.Error("Failed to scan saved attraction", zap.Error(err))
			continue
		}
		items = append(items, &s)
	}

	return items, nil
}

func (r *engagementRepository) ListSavedAttractions(ctx context.Context, userID int64) ([]*domain.Attraction, error) {
	query := `
		SELECT
			a.id, a.tripadvisor_id, a.name, a.description, a.category_id, a.country_id,
			a.city, a.address, a.lat, a.lon, a.phone, a.website, a.email, a.price_level,
			a.num_reviews, a.num_photos, a.num_likes, a.saves_count, a.ranking, a.rating,
			a.images, a.awards, a.is_active, a.created_at, a.updated_at
		FROM saved_attractions s
		JOIN attractions a ON a.id = s.attraction_id
		WHERE s.user_id = $1
		ORDER BY s.added_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.logger.Error("Failed to list saved attraction records",
			zap.Int64("user_id", userID), zap.Error(err))
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

func (r *engagementRepository) CountLikes(ctx context.Context, attractionID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM attraction_likes WHERE attraction_id = $1`, attractionID,
	).Scan(&count)
	if err != nil {
		r.logger.Error("Failed to count likes", zap.Int64("attraction_id", attractionID), zap.Error(err))
		return 0, errors.ErrDatabaseError
	}

	return count, nil
}
