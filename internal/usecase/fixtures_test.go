package usecase_test

import (
	"github.com/search-enrichment-service/internal/domain"
)

func floatPtr(v float64) *float64 {
	return &v
}

func stringPtr(v string) *string {
	return &v
}

func testLocations() *domain.LocationIndex {
	return domain.NewLocationIndex(map[string]domain.LocationRecord{
		"NYC": {Latitude: floatPtr(40.71427), Longitude: floatPtr(-74.00597), CountryCode: "US", CityCodes: []string{"NYC"}},
		"LON": {Latitude: floatPtr(51.50853), Longitude: floatPtr(-0.12574), CountryCode: "GB", CityCodes: []string{"LON"}},
		"JFK": {Latitude: floatPtr(40.63983), Longitude: floatPtr(-73.77874), CountryCode: "US", CityCodes: []string{"NYC"}},
		"LHR": {Latitude: floatPtr(51.4775), Longitude: floatPtr(-0.46139), CountryCode: "GB", CityCodes: []string{"LON"}},
		"PAR": {Latitude: floatPtr(48.85341), Longitude: floatPtr(2.3488), CountryCode: "FR", CityCodes: []string{"PAR"}},
		"NCE": {Latitude: floatPtr(43.70313), Longitude: floatPtr(7.26608), CountryCode: "FR", CityCodes: []string{"NCE"}},
		"XCO": {CountryCode: "XX", CityCodes: []string{"XCO"}},
	})
}

func testRates() *domain.RateTable {
	return domain.NewRateTable(map[domain.Currency]float64{
		domain.CurrencyUSD: 1.1,
	}, "2024-01-01")
}

const endToEndDocument = `{
	"search_id": "abc-123",
	"search_country": "FR",
	"currency": "USD",
	"search_date": "2024-01-01",
	"request_dep_date": "2024-02-01",
	"passengers_string": "ADT=1",
	"origin_city": "NYC",
	"destination_city": "LON",
	"OnD": "NYC-LON",
	"recos": [{
		"reco_id": 7,
		"price": "100",
		"taxes": "10",
		"fees": "5",
		"flights": [{
			"flight_number": "BA178",
			"dep_airport": "JFK",
			"arr_airport": "LHR",
			"marketing_airline": "BA",
			"cabin": "Y"
		}]
	}]
}`
