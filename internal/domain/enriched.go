package domain

import (
	"fmt"
	"math"
	"strconv"
)

// EuroAmount - сумма в евро. Округляется до 2 знаков только при сериализации.
type EuroAmount float64

// Rounded - сумма, округленная до центов. От 1e15 и выше центы уже не представимы,
// значение возвращается как есть.
func (a EuroAmount) Rounded() float64 {
	value := float64(a)
	if math.Abs(value) >= 1e15 {
		return value
	}
	return math.Round(value*100) / 100
}

// MarshalJSON округляет до центов. Inf и NaN в JSON не представимы.
func (a EuroAmount) MarshalJSON() ([]byte, error) {
	if math.IsInf(float64(a), 0) || math.IsNaN(float64(a)) {
		return nil, fmt.Errorf("euro amount %v is not finite", float64(a))
	}
	return []byte(strconv.FormatFloat(a.Rounded(), 'f', -1, 64)), nil
}

// StayDuration - длительность пребывания в днях; отсутствует для OW и сериализуется как -1
type StayDuration struct {
	Days  uint64
	Valid bool
}

// MarshalJSON пишет -1 вместо null для отсутствующего значения
func (d StayDuration) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("-1"), nil
	}
	return []byte(strconv.FormatUint(d.Days, 10)), nil
}

// EnrichedFlight - обогащенный перелет
type EnrichedFlight struct {
	DepCity          string `json:"dep_city"`
	ArrCity          string `json:"arr_city"`
	Distance         uint64 `json:"distance"`
	MarketingAirline string `json:"marketing_airline"`
	OperatingAirline string `json:"operating_airline"`
	Cabin            string `json:"cabin"`
}

// EnrichedRecommendation - обогащенная рекомендация
type EnrichedRecommendation struct {
	PriceEUR             EuroAmount       `json:"price_EUR"`
	TaxesEUR             EuroAmount       `json:"taxes_EUR"`
	FeesEUR              EuroAmount       `json:"fees_EUR"`
	Flights              []EnrichedFlight `json:"flights"`
	FlownDistance        uint64           `json:"flown_distance"`
	MainMarketingAirline string           `json:"main_marketing_airline"`
	MainOperatingAirline string           `json:"main_operating_airline"`
	MainCabin            string           `json:"main_cabin"`
}

// EnrichedSearch - поля, вычисленные для поиска
type EnrichedSearch struct {
	Recos              []EnrichedRecommendation `json:"recos"`
	AdvancePurchase    uint64                   `json:"advance_purchase"`
	StayDuration       StayDuration             `json:"stay_duration"`
	TripType           TripType                 `json:"trip_type"`
	Passengers         []Passenger              `json:"passengers"`
	OriginCountry      string                   `json:"origin_country"`
	DestinationCountry string                   `json:"destination_country"`
	Geo                GeoType                  `json:"geo"`
	OnDDistance        uint64                   `json:"OnD_distance"`
}
