package testhelpers

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/search-enrichment-service/internal/domain/repository"
	"github.com/search-enrichment-service/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewSearchRepositoryForTest creates a search repository on a migrated test database
func NewSearchRepositoryForTest(t *testing.T, db *sqlx.DB, logger *zap.Logger) repository.SearchRepository {
	pgDB := NewDBForTest(db, logger)
	if err := pgDB.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return postgres.NewSearchRepository(pgDB)
}
