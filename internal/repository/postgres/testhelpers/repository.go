package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/attractions-service/internal/domain/repository"
	"github.com/attractions-service/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewAttractionRepositoryForTest creates an attraction repository with test database and logger
func NewAttractionRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.AttractionRepository {
	pgDB := NewDBForTest(db, logger)
	return postgres.NewAttractionRepository(pgDB)
}

// NewCategoryRepositoryForTest creates a category repository with test database and logger
func NewCategoryRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.CategoryRepository {
	pgDB := NewDBForTest(db, logger)
	return postgres.NewCategoryRepository(pgDB)
}

// NewCountryRepositoryForTest creates a country repository with test database and logger
func NewCountryRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.CountryRepository {
	pgDB := NewDBForTest(db, logger)
	return postgres.NewCountryRepository(pgDB)
}

// NewEngagementRepositoryForTest creates an engagement repository with test database and logger
func NewEngagementRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.EngagementRepository {
	pgDB := NewDBForTest(db, logger)
	return postgres.NewEngagementRepository(pgDB)
}
