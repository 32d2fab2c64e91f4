package domain

import (
	"fmt"
	"strings"
)

// Currency - код валюты ISO 4217 из закрытого набора, который публикует ЕЦБ
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyJPY Currency = "JPY"
	CurrencyBGN Currency = "BGN"
	CurrencyCZK Currency = "CZK"
	CurrencyDKK Currency = "DKK"
	CurrencyGBP Currency = "GBP"
	CurrencyHUF Currency = "HUF"
	CurrencyPLN Currency = "PLN"
	CurrencyRON Currency = "RON"
	CurrencySEK Currency = "SEK"
	CurrencyCHF Currency = "CHF"
	CurrencyISK Currency = "ISK"
	CurrencyNOK Currency = "NOK"
	CurrencyHRK Currency = "HRK"
	CurrencyRUB Currency = "RUB"
	CurrencyTRY Currency = "TRY"
	CurrencyAUD Currency = "AUD"
	CurrencyBRL Currency = "BRL"
	CurrencyCAD Currency = "CAD"
	CurrencyCNY Currency = "CNY"
	CurrencyHKD Currency = "HKD"
	CurrencyIDR Currency = "IDR"
	CurrencyILS Currency = "ILS"
	CurrencyINR Currency = "INR"
	CurrencyKRW Currency = "KRW"
	CurrencyMXN Currency = "MXN"
	CurrencyMYR Currency = "MYR"
	CurrencyNZD Currency = "NZD"
	CurrencyPHP Currency = "PHP"
	CurrencySGD Currency = "SGD"
	CurrencyTHB Currency = "THB"
	CurrencyZAR Currency = "ZAR"
)

var knownCurrencies = map[Currency]struct{}{
	CurrencyEUR: {}, CurrencyUSD: {}, CurrencyJPY: {}, CurrencyBGN: {}, CurrencyCZK: {},
	CurrencyDKK: {}, CurrencyGBP: {}, CurrencyHUF: {}, CurrencyPLN: {}, CurrencyRON: {},
	CurrencySEK: {}, CurrencyCHF: {}, CurrencyISK: {}, CurrencyNOK: {}, CurrencyHRK: {},
	CurrencyRUB: {}, CurrencyTRY: {}, CurrencyAUD: {}, CurrencyBRL: {}, CurrencyCAD: {},
	CurrencyCNY: {}, CurrencyHKD: {}, CurrencyIDR: {}, CurrencyILS: {}, CurrencyINR: {},
	CurrencyKRW: {}, CurrencyMXN: {}, CurrencyMYR: {}, CurrencyNZD: {}, CurrencyPHP: {},
	CurrencySGD: {}, CurrencyTHB: {}, CurrencyZAR: {},
}

// ParseCurrency разбирает код валюты. Неизвестный код - ошибка, а не значение по умолчанию.
func ParseCurrency(code string) (Currency, error) {
	c := Currency(strings.TrimSpace(code))
	if _, ok := knownCurrencies[c]; !ok {
		return "", fmt.Errorf("unknown currency code %q", code)
	}
	return c, nil
}

// RateTable - снимок курсов: сколько единиц валюты за 1 EUR.
// EUR не хранится, его курс всегда 1. После создания не изменяется.
type RateTable struct {
	rates      map[Currency]float64
	recordDate string
}

// NewRateTable создает таблицу курсов. Неположительные курсы и EUR отбрасываются.
func NewRateTable(rates map[Currency]float64, recordDate string) *RateTable {
	copied := make(map[Currency]float64, len(rates))
	for currency, rate := range rates {
		if currency == CurrencyEUR || rate <= 0 {
			continue
		}
		copied[currency] = rate
	}
	return &RateTable{rates: copied, recordDate: recordDate}
}

// Rate возвращает курс валюты к EUR
func (t *RateTable) Rate(currency Currency) (float64, bool) {
	if currency == CurrencyEUR {
		return 1, true
	}
	rate, ok := t.rates[currency]
	return rate, ok
}

// RecordDate - дата снимка курсов
func (t *RateTable) RecordDate() string {
	return t.recordDate
}

// Len - количество валют с курсом (без EUR)
func (t *RateTable) Len() int {
	return len(t.rates)
}

// ToEuros переводит сумму в евро
func (t *RateTable) ToEuros(amount float64, currency Currency) (float64, error) {
	if currency == CurrencyEUR {
		return amount, nil
	}
	rate, ok := t.rates[currency]
	if !ok {
		return 0, &RateUnavailableError{Currency: currency}
	}
	return amount / rate, nil
}
