package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// schema - таблицы плоских поисков и рекомендаций
var schema = []string{
	`CREATE TABLE IF NOT EXISTS searches (
		search_id           TEXT PRIMARY KEY,
		search_country      TEXT NOT NULL DEFAULT '',
		search_date         DATE NOT NULL,
		request_dep_date    DATE NOT NULL,
		advance_purchase    INTEGER NOT NULL,
		stay_duration       INTEGER NOT NULL,
		trip_type           TEXT NOT NULL,
		ond                 TEXT NOT NULL,
		origin_country      TEXT NOT NULL DEFAULT '',
		destination_country TEXT NOT NULL DEFAULT '',
		geo                 TEXT NOT NULL,
		ond_distance        BIGINT NOT NULL,
		document            JSONB NOT NULL,
		created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at          TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_searches_search_date ON searches (search_date)`,
	`CREATE INDEX IF NOT EXISTS idx_searches_ond ON searches (ond)`,
	`CREATE TABLE IF NOT EXISTS recos (
		search_id              TEXT NOT NULL REFERENCES searches (search_id) ON DELETE CASCADE,
		reco_index             INTEGER NOT NULL,
		nb_of_flights          INTEGER NOT NULL,
		price_eur              NUMERIC(14, 2) NOT NULL,
		flown_distance         BIGINT NOT NULL,
		main_marketing_airline TEXT NOT NULL,
		main_operating_airline TEXT NOT NULL,
		main_cabin             TEXT NOT NULL,
		airlines               TEXT[] NOT NULL DEFAULT '{}',
		PRIMARY KEY (search_id, reco_index)
	)`,
}

// Migrate создает таблицы, если их еще нет
func (db *DB) Migrate(ctx context.Context) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement %d: %w", i, err)
		}
	}

	db.logger.Info("Database schema is up to date", zap.Int("statements", len(schema)))
	return nil
}
