package usecase

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/search-enrichment-service/internal/domain"
	"github.com/search-enrichment-service/internal/domain/repository"
	"github.com/search-enrichment-service/internal/pkg/errors"
)

// SearchUseCase - хранение и выдача обогащенных поисков
type SearchUseCase struct {
	searchRepo repository.SearchRepository
	cacheRepo  repository.CacheRepository
	logger     *zap.Logger
	cacheTTL   time.Duration
}

// NewSearchUseCase - создание нового SearchUseCase.
// searchRepo может быть nil, тогда поиски только кешируются.
func NewSearchUseCase(
	searchRepo repository.SearchRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *SearchUseCase {
	return &SearchUseCase{
		searchRepo: searchRepo,
		cacheRepo:  cacheRepo,
		logger:     logger,
		cacheTTL:   cacheTTL,
	}
}

// Store кеширует документ и сохраняет плоскую запись поиска.
// Документы без search_id не сохраняются.
func (uc *SearchUseCase) Store(ctx context.Context, result *EnrichmentResult) error {
	searchID := result.SearchID()
	if searchID == "" {
		uc.logger.Debug("Search has no search_id, skipping storage")
		return nil
	}

	if err := uc.cacheRepo.SetSearch(ctx, searchID, result.Document, uc.cacheTTL); err != nil {
		// кеш не критичен
		uc.logger.Warn("Failed to cache enriched search",
			zap.String("search_id", searchID),
			zap.Error(err))
	}

	if uc.searchRepo == nil {
		return nil
	}

	record := BuildSearchRecord(result)
	if err := uc.searchRepo.Save(ctx, record); err != nil {
		return fmt.Errorf("failed to save search %s: %w", searchID, err)
	}
	return nil
}

// GetDocument возвращает обогащенный документ: сначала из кеша, потом из базы
func (uc *SearchUseCase) GetDocument(ctx context.Context, searchID string) ([]byte, error) {
	cached, err := uc.cacheRepo.GetSearch(ctx, searchID)
	if err != nil {
		uc.logger.Warn("Failed to read search from cache", zap.String("search_id", searchID), zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	if uc.searchRepo == nil {
		return nil, errors.ErrSearchNotFound
	}

	document, err := uc.searchRepo.GetDocument(ctx, searchID)
	if err != nil {
		if stderrors.Is(err, repository.ErrSearchNotFound) {
			return nil, errors.ErrSearchNotFound
		}
		uc.logger.Error("Failed to load search", zap.String("search_id", searchID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if err := uc.cacheRepo.SetSearch(ctx, searchID, document, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache search", zap.String("search_id", searchID), zap.Error(err))
	}

	return document, nil
}

// BuildSearchRecord строит плоскую запись поиска и рекомендаций для хранения
func BuildSearchRecord(result *EnrichmentResult) *domain.SearchRecord {
	tree := result.Tree
	enriched := result.Enriched
	searchID := result.SearchID()

	stayDuration := int64(-1)
	if enriched.StayDuration.Valid {
		stayDuration = int64(enriched.StayDuration.Days)
	}

	ond := stringField(tree, "OnD")
	if ond == "" {
		ond = stringField(tree, "origin_city") + "-" + stringField(tree, "destination_city")
	}

	record := &domain.SearchRecord{
		SearchID:           searchID,
		SearchCountry:      stringField(tree, "search_country"),
		SearchDate:         stringField(tree, "search_date"),
		RequestDepDate:     stringField(tree, "request_dep_date"),
		AdvancePurchase:    int64(enriched.AdvancePurchase),
		StayDuration:       stayDuration,
		TripType:           string(enriched.TripType),
		OnD:                ond,
		OriginCountry:      enriched.OriginCountry,
		DestinationCountry: enriched.DestinationCountry,
		Geo:                string(enriched.Geo),
		OnDDistance:        int64(enriched.OnDDistance),
		Document:           result.Document,
		Recos:              make([]domain.RecoRecord, len(enriched.Recos)),
	}

	treeRecos, _ := tree["recos"].([]interface{})
	for i, reco := range enriched.Recos {
		nbOfFlights := len(reco.Flights)
		if i < len(treeRecos) {
			if treeReco, ok := treeRecos[i].(map[string]interface{}); ok {
				if n, ok := intField(treeReco, "nb_of_flights"); ok {
					nbOfFlights = n
				}
			}
		}

		record.Recos[i] = domain.RecoRecord{
			SearchID:             searchID,
			RecoIndex:            i,
			NbOfFlights:          nbOfFlights,
			PriceEUR:             reco.PriceEUR.Rounded(),
			FlownDistance:        int64(reco.FlownDistance),
			MainMarketingAirline: reco.MainMarketingAirline,
			MainOperatingAirline: reco.MainOperatingAirline,
			MainCabin:            reco.MainCabin,
			Airlines:             distinctAirlines(reco.Flights),
		}
	}

	return record
}

// distinctAirlines - маркетинговые перевозчики в порядке первого появления
func distinctAirlines(flights []domain.EnrichedFlight) []string {
	seen := make(map[string]struct{}, len(flights))
	airlines := make([]string, 0, len(flights))
	for _, flight := range flights {
		if _, ok := seen[flight.MarketingAirline]; ok {
			continue
		}
		seen[flight.MarketingAirline] = struct{}{}
		airlines = append(airlines, flight.MarketingAirline)
	}
	return airlines
}

func intField(tree map[string]interface{}, key string) (int, bool) {
	switch v := tree[key].(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}
