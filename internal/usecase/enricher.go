package usecase

import (
	"errors"
	"fmt"
	"math"

	"github.com/search-enrichment-service/internal/domain"
)

// EnrichFlight обогащает один перелет: города, расстояние, фактический перевозчик
func EnrichFlight(flight domain.Flight, locations *domain.LocationIndex) (domain.EnrichedFlight, error) {
	depCity := locations.CityOf(flight.DepAirport)
	arrCity := locations.CityOf(flight.ArrAirport)

	distance, ok := locations.DistanceBetween(flight.DepAirport, flight.ArrAirport)
	if !ok {
		return domain.EnrichedFlight{}, &domain.MissingLocationError{
			From: flight.DepAirport,
			To:   flight.ArrAirport,
		}
	}

	operatingAirline := flight.MarketingAirline
	if flight.OperatingAirline != nil {
		operatingAirline = *flight.OperatingAirline
	}

	return domain.EnrichedFlight{
		DepCity:          depCity,
		ArrCity:          arrCity,
		Distance:         distance,
		MarketingAirline: flight.MarketingAirline,
		OperatingAirline: operatingAirline,
		Cabin:            flight.Cabin,
	}, nil
}

// EnrichRecommendation обогащает рекомендацию: цены в EUR, перелеты,
// суммарное расстояние и атрибуты самого длинного перелета
func EnrichRecommendation(
	reco domain.Recommendation,
	locations *domain.LocationIndex,
	rates *domain.RateTable,
	currency domain.Currency,
) (domain.EnrichedRecommendation, error) {
	priceEUR, err := toEuros(rates, reco.Price, currency, "price")
	if err != nil {
		return domain.EnrichedRecommendation{}, err
	}
	taxesEUR, err := toEuros(rates, reco.Taxes, currency, "taxes")
	if err != nil {
		return domain.EnrichedRecommendation{}, err
	}
	feesEUR, err := toEuros(rates, reco.Fees, currency, "fees")
	if err != nil {
		return domain.EnrichedRecommendation{}, err
	}

	flights := make([]domain.EnrichedFlight, 0, len(reco.Flights))
	for i, flight := range reco.Flights {
		enriched, err := EnrichFlight(flight, locations)
		if err != nil {
			return domain.EnrichedRecommendation{}, &domain.FlightError{
				Index:      i,
				DepAirport: flight.DepAirport,
				ArrAirport: flight.ArrAirport,
				Err:        err,
			}
		}
		flights = append(flights, enriched)
	}

	if len(flights) == 0 {
		return domain.EnrichedRecommendation{}, domain.ErrEmptyRecommendation
	}

	var flownDistance uint64
	main := 0
	for i, flight := range flights {
		flownDistance += flight.Distance
		// строгое сравнение: при равенстве остается первый
		if flight.Distance > flights[main].Distance {
			main = i
		}
	}

	return domain.EnrichedRecommendation{
		PriceEUR:             domain.EuroAmount(priceEUR),
		TaxesEUR:             domain.EuroAmount(taxesEUR),
		FeesEUR:              domain.EuroAmount(feesEUR),
		Flights:              flights,
		FlownDistance:        flownDistance,
		MainMarketingAirline: flights[main].MarketingAirline,
		MainOperatingAirline: flights[main].OperatingAirline,
		MainCabin:            flights[main].Cabin,
	}, nil
}

// toEuros - перевод суммы рекомендации; переполнение при делении на курс меньше 1 считается ошибкой входа
func toEuros(rates *domain.RateTable, amount float64, currency domain.Currency, field string) (float64, error) {
	converted, err := rates.ToEuros(amount, currency)
	if err != nil {
		return 0, err
	}
	if math.IsInf(converted, 0) || math.IsNaN(converted) {
		return 0, &domain.ParseError{
			Field: field,
			Err:   fmt.Errorf("amount %g %s is out of range in EUR", amount, currency),
		}
	}
	return converted, nil
}

// EnrichSearch обогащает поиск целиком. Первая же ошибка прерывает обработку документа.
func EnrichSearch(
	search *domain.Search,
	locations *domain.LocationIndex,
	rates *domain.RateTable,
) (*domain.EnrichedSearch, error) {
	advancePurchase := search.SearchDate.DaysUntil(search.RequestDepDate)
	if advancePurchase < 0 {
		return nil, &domain.InvalidDateOrderError{
			Field: "advance_purchase",
			From:  search.SearchDate,
			To:    search.RequestDepDate,
		}
	}

	tripType := domain.TripTypeOneWay
	var stayDuration domain.StayDuration
	if search.RequestReturnDate != nil {
		days := search.RequestDepDate.DaysUntil(*search.RequestReturnDate)
		if days < 0 {
			return nil, &domain.InvalidDateOrderError{
				Field: "stay_duration",
				From:  search.RequestDepDate,
				To:    *search.RequestReturnDate,
			}
		}
		stayDuration = domain.StayDuration{Days: uint64(days), Valid: true}
		tripType = domain.TripTypeRoundTrip
	}

	passengers, err := domain.ParsePassengers(search.PassengersString)
	if err != nil {
		return nil, err
	}

	originCountry := locations.CountryOf(search.OriginCity)
	destinationCountry := locations.CountryOf(search.DestinationCity)

	ondDistance, ok := locations.DistanceBetween(search.OriginCity, search.DestinationCity)
	if !ok {
		return nil, &domain.MissingLocationError{
			From: search.OriginCity,
			To:   search.DestinationCity,
		}
	}

	recos := make([]domain.EnrichedRecommendation, 0, len(search.Recos))
	for i, reco := range search.Recos {
		enriched, err := EnrichRecommendation(reco, locations, rates, search.Currency)
		if err != nil {
			return nil, &domain.RecommendationError{Index: i, Err: err}
		}
		recos = append(recos, enriched)
	}

	return &domain.EnrichedSearch{
		Recos:              recos,
		AdvancePurchase:    uint64(advancePurchase),
		StayDuration:       stayDuration,
		TripType:           tripType,
		Passengers:         passengers,
		OriginCountry:      originCountry,
		DestinationCountry: destinationCountry,
		Geo:                domain.ClassifyGeo(originCountry, destinationCountry),
		OnDDistance:        ondDistance,
	}, nil
}

// IsInputError - ошибка вызвана содержимым документа, а не сбоем сервиса
func IsInputError(err error) bool {
	var serializationErr *domain.SerializationError
	return err != nil && !errors.As(err, &serializationErr)
}
