package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEuroAmount_MarshalJSON(t *testing.T) {
	tests := []struct {
		amount   EuroAmount
		expected string
	}{
		{amount: 100 / 1.1, expected: "90.91"},
		{amount: 10, expected: "10"},
		{amount: 0.125, expected: "0.13"},
		{amount: 4.5454545, expected: "4.55"},
	}

	for _, tt := range tests {
		data, err := json.Marshal(tt.amount)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, string(data))
	}
}

func TestEuroAmount_MarshalJSON_NonFinite(t *testing.T) {
	for _, amount := range []EuroAmount{EuroAmount(math.Inf(1)), EuroAmount(math.Inf(-1)), EuroAmount(math.NaN())} {
		_, err := json.Marshal(amount)
		assert.Error(t, err)
	}
}

func TestEuroAmount_Rounded(t *testing.T) {
	assert.Equal(t, 90.91, EuroAmount(100/1.1).Rounded())

	huge := EuroAmount(1.7e308)
	assert.Equal(t, 1.7e308, huge.Rounded())

	data, err := json.Marshal(huge)
	require.NoError(t, err)
	var decoded float64
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 1.7e308, decoded)
}

func TestStayDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(StayDuration{})
	require.NoError(t, err)
	assert.Equal(t, "-1", string(data))

	data, err = json.Marshal(StayDuration{Days: 7, Valid: true})
	require.NoError(t, err)
	assert.Equal(t, "7", string(data))
}

func TestEnrichedSearch_WireNames(t *testing.T) {
	search := EnrichedSearch{
		Recos: []EnrichedRecommendation{{
			PriceEUR: 1,
			Flights:  []EnrichedFlight{{DepCity: "NYC", ArrCity: "LON", Distance: 5539}},
		}},
		TripType:   TripTypeOneWay,
		Passengers: []Passenger{{Type: PassengerChild, Count: 2}},
		Geo:        GeoInternational,
	}

	data, err := json.Marshal(search)
	require.NoError(t, err)

	var tree map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &tree))

	for _, key := range []string{"recos", "advance_purchase", "stay_duration", "trip_type", "passengers",
		"origin_country", "destination_country", "geo", "OnD_distance"} {
		assert.Contains(t, tree, key)
	}
	assert.Equal(t, "OW", tree["trip_type"])
	assert.Equal(t, "I", tree["geo"])
	assert.Equal(t, float64(-1), tree["stay_duration"])

	passenger := tree["passengers"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "CH", passenger["passenger_type"])
	assert.Equal(t, float64(2), passenger["passenger_nb"])

	reco := tree["recos"].([]interface{})[0].(map[string]interface{})
	for _, key := range []string{"price_EUR", "taxes_EUR", "fees_EUR", "flights", "flown_distance",
		"main_marketing_airline", "main_operating_airline", "main_cabin"} {
		assert.Contains(t, reco, key)
	}
}

func TestDate_DaysUntil(t *testing.T) {
	assert.Equal(t, int64(31), MustParseDate("2024-01-01").DaysUntil(MustParseDate("2024-02-01")))
	assert.Equal(t, int64(-1), MustParseDate("2024-03-01").DaysUntil(MustParseDate("2024-02-29")))
	assert.Equal(t, int64(0), MustParseDate("2024-03-01").DaysUntil(MustParseDate("2024-03-01")))

	_, err := ParseDate("01/02/2024")
	assert.Error(t, err)
}
