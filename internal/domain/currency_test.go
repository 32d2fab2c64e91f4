package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateTable_ToEuros(t *testing.T) {
	table := NewRateTable(map[Currency]float64{
		CurrencyUSD: 1.1,
		CurrencyJPY: 128.22,
	}, "19 November 2021")

	t.Run("EUR passthrough", func(t *testing.T) {
		for _, amount := range []float64{0, 1, 99.999, 123456.78} {
			got, err := table.ToEuros(amount, CurrencyEUR)
			require.NoError(t, err)
			assert.Equal(t, amount, got)
		}
	})

	t.Run("division by rate", func(t *testing.T) {
		for _, amount := range []float64{0, 10, 100, 2500.5} {
			got, err := table.ToEuros(amount, CurrencyUSD)
			require.NoError(t, err)
			assert.Equal(t, amount/1.1, got)
		}
	})

	t.Run("missing rate is an error", func(t *testing.T) {
		_, err := table.ToEuros(10, CurrencyGBP)
		var rateErr *RateUnavailableError
		require.ErrorAs(t, err, &rateErr)
		assert.Equal(t, CurrencyGBP, rateErr.Currency)
	})
}

func TestNewRateTable_DropsEURAndInvalidRates(t *testing.T) {
	table := NewRateTable(map[Currency]float64{
		CurrencyEUR: 2,
		CurrencyUSD: 0,
		CurrencyGBP: -1,
		CurrencyCHF: 1.05,
	}, "")

	assert.Equal(t, 1, table.Len())

	got, err := table.ToEuros(10, CurrencyEUR)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got)

	_, ok := table.Rate(CurrencyUSD)
	assert.False(t, ok)
}

func TestParseCurrency(t *testing.T) {
	currency, err := ParseCurrency("USD")
	require.NoError(t, err)
	assert.Equal(t, CurrencyUSD, currency)

	_, err = ParseCurrency("usd")
	assert.Error(t, err)

	_, err = ParseCurrency("XYZ")
	assert.Error(t, err)
}
