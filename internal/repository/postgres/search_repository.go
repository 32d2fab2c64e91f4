package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/search-enrichment-service/internal/domain"
	"github.com/search-enrichment-service/internal/domain/repository"
)

type searchRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewSearchRepository(db *DB) repository.SearchRepository {
	return &searchRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const upsertSearchQuery = `
	INSERT INTO searches (
		search_id, search_country, search_date, request_dep_date, advance_purchase,
		stay_duration, trip_type, ond, origin_country, destination_country, geo,
		ond_distance, document
	) VALUES (
		:search_id, :search_country, :search_date, :request_dep_date, :advance_purchase,
		:stay_duration, :trip_type, :ond, :origin_country, :destination_country, :geo,
		:ond_distance, :document
	)
	ON CONFLICT (search_id) DO UPDATE SET
		search_country      = EXCLUDED.search_country,
		search_date         = EXCLUDED.search_date,
		request_dep_date    = EXCLUDED.request_dep_date,
		advance_purchase    = EXCLUDED.advance_purchase,
		stay_duration       = EXCLUDED.stay_duration,
		trip_type           = EXCLUDED.trip_type,
		ond                 = EXCLUDED.ond,
		origin_country      = EXCLUDED.origin_country,
		destination_country = EXCLUDED.destination_country,
		geo                 = EXCLUDED.geo,
		ond_distance        = EXCLUDED.ond_distance,
		document            = EXCLUDED.document,
		updated_at          = now()
`

const insertRecoQuery = `
	INSERT INTO recos (
		search_id, reco_index, nb_of_flights, price_eur, flown_distance,
		main_marketing_airline, main_operating_airline, main_cabin, airlines
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

// Save перезаписывает поиск и все его рекомендации
func (r *searchRepository) Save(ctx context.Context, record *domain.SearchRecord) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.NamedExecContext(ctx, upsertSearchQuery, record); err != nil {
		r.logger.Error("Failed to upsert search", zap.String("search_id", record.SearchID), zap.Error(err))
		return fmt.Errorf("failed to upsert search: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM recos WHERE search_id = $1`, record.SearchID); err != nil {
		return fmt.Errorf("failed to delete old recos: %w", err)
	}

	for _, reco := range record.Recos {
		_, err := tx.ExecContext(ctx, insertRecoQuery,
			reco.SearchID, reco.RecoIndex, reco.NbOfFlights, reco.PriceEUR, reco.FlownDistance,
			reco.MainMarketingAirline, reco.MainOperatingAirline, reco.MainCabin,
			pq.Array(reco.Airlines),
		)
		if err != nil {
			r.logger.Error("Failed to insert reco",
				zap.String("search_id", record.SearchID),
				zap.Int("reco_index", reco.RecoIndex),
				zap.Error(err))
			return fmt.Errorf("failed to insert reco %d: %w", reco.RecoIndex, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit search: %w", err)
	}

	r.logger.Debug("Search saved",
		zap.String("search_id", record.SearchID),
		zap.Int("recos", len(record.Recos)))
	return nil
}

func (r *searchRepository) GetDocument(ctx context.Context, searchID string) ([]byte, error) {
	var document []byte
	err := r.db.GetContext(ctx, &document, `SELECT document FROM searches WHERE search_id = $1`, searchID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrSearchNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get search", zap.String("search_id", searchID), zap.Error(err))
		return nil, fmt.Errorf("failed to get search: %w", err)
	}
	return document, nil
}
