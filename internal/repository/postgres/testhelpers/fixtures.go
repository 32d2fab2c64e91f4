package testhelpers

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/search-enrichment-service/internal/domain"
)

// SampleSearchRecord returns a flattened round trip search with two recos
func SampleSearchRecord(searchID string) *domain.SearchRecord {
	return &domain.SearchRecord{
		SearchID:           searchID,
		SearchCountry:      "FR",
		SearchDate:         "2024-01-01",
		RequestDepDate:     "2024-01-10",
		AdvancePurchase:    9,
		StayDuration:       7,
		TripType:           "RT",
		OnD:                "PAR-NCE",
		OriginCountry:      "FR",
		DestinationCountry: "FR",
		Geo:                "D",
		OnDDistance:        685,
		Document:           []byte(fmt.Sprintf(`{"search_id":%q,"geo":"D"}`, searchID)),
		Recos: []domain.RecoRecord{
			{
				SearchID:             searchID,
				RecoIndex:            0,
				NbOfFlights:          2,
				PriceEUR:             90.91,
				FlownDistance:        1370,
				MainMarketingAirline: "AF",
				MainOperatingAirline: "AF",
				MainCabin:            "Y",
				Airlines:             []string{"AF"},
			},
			{
				SearchID:             searchID,
				RecoIndex:            1,
				NbOfFlights:          2,
				PriceEUR:             120.5,
				FlownDistance:        1370,
				MainMarketingAirline: "U2",
				MainOperatingAirline: "EC",
				MainCabin:            "Y",
				Airlines:             []string{"U2", "AF"},
			},
		},
	}
}

// CountRecos returns the number of stored recos for a search
func CountRecos(ctx context.Context, db *sql.DB, searchID string) (int, error) {
	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM recos WHERE search_id = $1`, searchID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count recos: %w", err)
	}
	return count, nil
}
