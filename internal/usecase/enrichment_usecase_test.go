package usecase_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/search-enrichment-service/internal/domain"
	"github.com/search-enrichment-service/internal/usecase"
)

func newEnrichmentUseCase() *usecase.EnrichmentUseCase {
	return usecase.NewEnrichmentUseCase(testLocations(), testRates(), zap.NewNop())
}

func decodeObject(t *testing.T, data []byte) map[string]interface{} {
	t.Helper()
	var obj map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &obj))
	return obj
}

func TestEnrichmentUseCase_EnrichDocument(t *testing.T) {
	uc := newEnrichmentUseCase()

	result, err := uc.EnrichDocument([]byte(endToEndDocument))
	require.NoError(t, err)
	assert.Equal(t, "abc-123", result.SearchID())

	doc := decodeObject(t, result.Document)

	t.Run("computed search fields", func(t *testing.T) {
		assert.Equal(t, float64(31), doc["advance_purchase"])
		assert.Equal(t, "OW", doc["trip_type"])
		assert.Equal(t, float64(-1), doc["stay_duration"])
		assert.Equal(t, "I", doc["geo"])
		assert.Equal(t, "US", doc["origin_country"])
		assert.Equal(t, "GB", doc["destination_country"])
		assert.Equal(t, float64(5570), doc["OnD_distance"])
		assert.Equal(t, []interface{}{
			map[string]interface{}{"passenger_type": "ADT", "passenger_nb": float64(1)},
		}, doc["passengers"])
	})

	t.Run("original fields survive", func(t *testing.T) {
		for _, key := range []string{"search_id", "search_country", "currency", "search_date", "request_dep_date",
			"passengers_string", "origin_city", "destination_city", "OnD"} {
			assert.Contains(t, doc, key)
		}
		assert.Equal(t, "USD", doc["currency"])
		assert.Equal(t, "NYC-LON", doc["OnD"])
	})

	t.Run("reco and flight fields", func(t *testing.T) {
		recos := doc["recos"].([]interface{})
		require.Len(t, recos, 1)
		reco := recos[0].(map[string]interface{})

		assert.Equal(t, 90.91, reco["price_EUR"])
		assert.Equal(t, 9.09, reco["taxes_EUR"])
		assert.Equal(t, 4.55, reco["fees_EUR"])
		assert.Equal(t, float64(5539), reco["flown_distance"])
		assert.Equal(t, "BA", reco["main_marketing_airline"])
		assert.Equal(t, "BA", reco["main_operating_airline"])
		assert.Equal(t, "Y", reco["main_cabin"])

		// unknown and original reco fields are carried over
		assert.Equal(t, float64(7), reco["reco_id"])
		assert.Equal(t, "100", reco["price"])

		flights := reco["flights"].([]interface{})
		require.Len(t, flights, 1)
		flight := flights[0].(map[string]interface{})
		assert.Equal(t, "NYC", flight["dep_city"])
		assert.Equal(t, "LON", flight["arr_city"])
		assert.Equal(t, float64(5539), flight["distance"])
		assert.Equal(t, "BA", flight["operating_airline"])
		assert.Equal(t, "BA178", flight["flight_number"])
		assert.Equal(t, "JFK", flight["dep_airport"])
	})

	t.Run("typed result matches document", func(t *testing.T) {
		require.Len(t, result.Enriched.Recos, 1)
		assert.InDelta(t, 90.909, float64(result.Enriched.Recos[0].PriceEUR), 0.001)
		assert.Equal(t, domain.GeoInternational, result.Enriched.Geo)
	})
}

func TestEnrichmentUseCase_EnrichDocument_Idempotent(t *testing.T) {
	uc := newEnrichmentUseCase()

	first, err := uc.EnrichDocument([]byte(endToEndDocument))
	require.NoError(t, err)

	second, err := uc.EnrichDocument(first.Document)
	require.NoError(t, err)

	assert.JSONEq(t, string(first.Document), string(second.Document))
}

func TestEnrichmentUseCase_EnrichDocument_PreservesNumbers(t *testing.T) {
	uc := newEnrichmentUseCase()

	input := `{"search_count": 12345678901234567890, "ratio": 0.1000, "currency": "EUR",
		"search_date": "2024-01-01", "request_dep_date": "2024-01-01", "request_return_date": "",
		"passengers_string": "ADT=2", "origin_city": "PAR", "destination_city": "NCE", "recos": []}`

	result, err := uc.EnrichDocument([]byte(input))
	require.NoError(t, err)

	assert.Contains(t, string(result.Document), `"search_count":12345678901234567890`)
	assert.Contains(t, string(result.Document), `"ratio":0.1000`)

	doc := decodeObject(t, result.Document)
	assert.Equal(t, "D", doc["geo"])
	assert.Equal(t, "OW", doc["trip_type"])
	assert.Equal(t, float64(0), doc["advance_purchase"])
	assert.Equal(t, []interface{}{}, doc["recos"])
}

func TestEnrichmentUseCase_EnrichDocument_Errors(t *testing.T) {
	uc := newEnrichmentUseCase()

	withRecos := func(recos string) string {
		return `{"currency": "USD", "search_date": "2024-01-01", "request_dep_date": "2024-02-01",
			"passengers_string": "ADT=1", "origin_city": "NYC", "destination_city": "LON", "recos": ` + recos + `}`
	}

	tests := []struct {
		name  string
		input string
		field string
	}{
		{name: "not json", input: `{"currency":`},
		{name: "not an object", input: `[1, 2]`},
		{name: "trailing data", input: `{} {}`},
		{
			name:  "missing origin",
			input: `{"currency": "USD", "search_date": "2024-01-01", "request_dep_date": "2024-02-01", "passengers_string": "ADT=1", "destination_city": "LON", "recos": []}`,
			field: "origin_city",
		},
		{
			name:  "missing recos",
			input: `{"currency": "USD", "search_date": "2024-01-01", "request_dep_date": "2024-02-01", "passengers_string": "ADT=1", "origin_city": "NYC", "destination_city": "LON"}`,
			field: "recos",
		},
		{
			name:  "unknown currency",
			input: `{"currency": "usd", "search_date": "2024-01-01", "request_dep_date": "2024-02-01", "passengers_string": "ADT=1", "origin_city": "NYC", "destination_city": "LON", "recos": []}`,
			field: "currency",
		},
		{
			name:  "bad date",
			input: `{"currency": "USD", "search_date": "01/01/2024", "request_dep_date": "2024-02-01", "passengers_string": "ADT=1", "origin_city": "NYC", "destination_city": "LON", "recos": []}`,
			field: "search_date",
		},
		{
			name:  "origin of wrong type",
			input: `{"currency": "USD", "search_date": "2024-01-01", "request_dep_date": "2024-02-01", "passengers_string": "ADT=1", "origin_city": 5, "destination_city": "LON", "recos": []}`,
			field: "origin_city",
		},
		{name: "missing price", input: withRecos(`[{"taxes": 1, "fees": 1, "flights": []}]`), field: "recos[0].price"},
		{name: "negative fees", input: withRecos(`[{"price": 1, "taxes": 1, "fees": -1, "flights": []}]`), field: "recos[0].fees"},
		{name: "price not numeric", input: withRecos(`[{"price": "abc", "taxes": 1, "fees": 1, "flights": []}]`)},
		{name: "infinite price", input: withRecos(`[{"price": "Inf", "taxes": 1, "fees": 1, "flights": []}]`), field: "recos[0].price"},
		{name: "negative infinite taxes", input: withRecos(`[{"price": 1, "taxes": "-Infinity", "fees": 1, "flights": []}]`), field: "recos[0].taxes"},
		{name: "NaN fees", input: withRecos(`[{"price": 1, "taxes": 1, "fees": "NaN", "flights": []}]`), field: "recos[0].fees"},
		{
			name:  "flight without departure",
			input: withRecos(`[{"price": 1, "taxes": 1, "fees": 1, "flights": [{"arr_airport": "LHR", "marketing_airline": "BA", "cabin": "Y"}]}]`),
			field: "recos[0].flights[0].dep_airport",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := uc.EnrichDocument([]byte(tt.input))

			assert.Nil(t, result)
			var parseErr *domain.ParseError
			require.ErrorAs(t, err, &parseErr)
			if tt.field != "" {
				assert.Equal(t, tt.field, parseErr.Field)
			}
		})
	}
}

func TestEnrichmentUseCase_EnrichDocument_NonFiniteAmountIsInputError(t *testing.T) {
	uc := newEnrichmentUseCase()

	input := strings.Replace(endToEndDocument, `"price": "100"`, `"price": "Inf"`, 1)
	require.NotEqual(t, endToEndDocument, input)

	result, err := uc.EnrichDocument([]byte(input))

	assert.Nil(t, result)
	var parseErr *domain.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "recos[0].price", parseErr.Field)
	assert.True(t, usecase.IsInputError(err))
}

func TestEnrichmentUseCase_EnrichDocument_ConversionOverflow(t *testing.T) {
	rates := domain.NewRateTable(map[domain.Currency]float64{domain.CurrencyJPY: 0.5}, "")
	uc := usecase.NewEnrichmentUseCase(testLocations(), rates, zap.NewNop())

	input := strings.Replace(endToEndDocument, `"currency": "USD"`, `"currency": "JPY"`, 1)
	input = strings.Replace(input, `"price": "100"`, `"price": "1.7e308"`, 1)

	_, err := uc.EnrichDocument([]byte(input))

	var parseErr *domain.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "price", parseErr.Field)

	var recoErr *domain.RecommendationError
	require.ErrorAs(t, err, &recoErr)
	assert.Equal(t, 0, recoErr.Index)
	assert.True(t, usecase.IsInputError(err))
}

func TestEnrichmentUseCase_EnrichDocument_AbortsWholeDocument(t *testing.T) {
	uc := newEnrichmentUseCase()

	flight := `{"dep_airport": "JFK", "arr_airport": "LHR", "marketing_airline": "BA", "cabin": "Y"}`
	input := `{"currency": "USD", "search_date": "2024-01-01", "request_dep_date": "2024-02-01",
		"passengers_string": "ADT=1", "origin_city": "NYC", "destination_city": "LON",
		"recos": [{"price": 1, "taxes": 1, "fees": 1, "flights": [` + flight + `]},
		          {"price": 1, "taxes": 1, "fees": 1, "flights": []}]}`

	result, err := uc.EnrichDocument([]byte(input))

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrEmptyRecommendation)

	var recoErr *domain.RecommendationError
	require.ErrorAs(t, err, &recoErr)
	assert.Equal(t, 1, recoErr.Index)
}

func TestEnrichmentUseCase_EnrichDocument_MissingRate(t *testing.T) {
	uc := newEnrichmentUseCase()

	input := `{"currency": "GBP", "search_date": "2024-01-01", "request_dep_date": "2024-02-01",
		"passengers_string": "ADT=1", "origin_city": "NYC", "destination_city": "LON",
		"recos": [{"price": 1, "taxes": 1, "fees": 1, "flights": [
			{"dep_airport": "JFK", "arr_airport": "LHR", "marketing_airline": "BA", "cabin": "Y"}]}]}`

	_, err := uc.EnrichDocument([]byte(input))

	var rateErr *domain.RateUnavailableError
	require.ErrorAs(t, err, &rateErr)
	assert.Equal(t, domain.CurrencyGBP, rateErr.Currency)
}
