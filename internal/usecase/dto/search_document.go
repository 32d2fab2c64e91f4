package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/search-enrichment-service/internal/domain"
)

// Amount - сумма; во входных документах бывает числом или строкой с числом
type Amount float64

// UnmarshalJSON принимает 12.5 и "12.5"
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("amount %q is not a number", s)
		}
		*a = Amount(value)
		return nil
	}

	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("amount must be a number or a numeric string: %w", err)
	}
	*a = Amount(value)
	return nil
}

// FlightDocument - перелет во входном документе
type FlightDocument struct {
	DepAirport       string  `json:"dep_airport" validate:"required"`
	ArrAirport       string  `json:"arr_airport" validate:"required"`
	MarketingAirline string  `json:"marketing_airline" validate:"required"`
	OperatingAirline *string `json:"operating_airline"`
	Cabin            string  `json:"cabin" validate:"required"`
}

// RecoDocument - рекомендация во входном документе
type RecoDocument struct {
	Price   *Amount          `json:"price" validate:"required,finite,gte=0"`
	Taxes   *Amount          `json:"taxes" validate:"required,finite,gte=0"`
	Fees    *Amount          `json:"fees" validate:"required,finite,gte=0"`
	Flights []FlightDocument `json:"flights" validate:"required,dive"`
}

// SearchDocument - известная часть входного документа поиска.
// Остальные поля не разбираются и переносятся в результат слиянием.
type SearchDocument struct {
	Currency          string         `json:"currency" validate:"required,len=3"`
	SearchDate        string         `json:"search_date" validate:"required"`
	RequestDepDate    string         `json:"request_dep_date" validate:"required"`
	RequestReturnDate *string        `json:"request_return_date"`
	PassengersString  string         `json:"passengers_string" validate:"required"`
	OriginCity        string         `json:"origin_city" validate:"required"`
	DestinationCity   string         `json:"destination_city" validate:"required"`
	Recos             []RecoDocument `json:"recos" validate:"required,dive"`
}

// ToDomain конвертирует документ в доменную модель.
// Ошибки формата дат и валюты возвращаются как *domain.ParseError.
func (d *SearchDocument) ToDomain() (*domain.Search, error) {
	currency, err := domain.ParseCurrency(d.Currency)
	if err != nil {
		return nil, &domain.ParseError{Field: "currency", Err: err}
	}

	searchDate, err := domain.ParseDate(d.SearchDate)
	if err != nil {
		return nil, &domain.ParseError{Field: "search_date", Err: err}
	}

	depDate, err := domain.ParseDate(d.RequestDepDate)
	if err != nil {
		return nil, &domain.ParseError{Field: "request_dep_date", Err: err}
	}

	var returnDate *domain.Date
	if d.RequestReturnDate != nil && *d.RequestReturnDate != "" {
		parsed, err := domain.ParseDate(*d.RequestReturnDate)
		if err != nil {
			return nil, &domain.ParseError{Field: "request_return_date", Err: err}
		}
		returnDate = &parsed
	}

	search := &domain.Search{
		Currency:          currency,
		SearchDate:        searchDate,
		RequestDepDate:    depDate,
		RequestReturnDate: returnDate,
		PassengersString:  d.PassengersString,
		OriginCity:        d.OriginCity,
		DestinationCity:   d.DestinationCity,
		Recos:             make([]domain.Recommendation, len(d.Recos)),
	}

	for i, reco := range d.Recos {
		flights := make([]domain.Flight, len(reco.Flights))
		for j, flight := range reco.Flights {
			var operating *string
			if flight.OperatingAirline != nil && *flight.OperatingAirline != "" {
				value := *flight.OperatingAirline
				operating = &value
			}
			flights[j] = domain.Flight{
				DepAirport:       flight.DepAirport,
				ArrAirport:       flight.ArrAirport,
				MarketingAirline: flight.MarketingAirline,
				OperatingAirline: operating,
				Cabin:            flight.Cabin,
			}
		}

		search.Recos[i] = domain.Recommendation{
			Price:   float64(*reco.Price),
			Taxes:   float64(*reco.Taxes),
			Fees:    float64(*reco.Fees),
			Flights: flights,
		}
	}

	return search, nil
}
