package domain

// Flight - один перелет (leg) внутри рекомендации
type Flight struct {
	DepAirport       string
	ArrAirport       string
	MarketingAirline string
	OperatingAirline *string
	Cabin            string
}

// Recommendation - ценовое предложение; суммы в валюте поиска
type Recommendation struct {
	Price   float64
	Taxes   float64
	Fees    float64
	Flights []Flight
}

// Search - поисковый запрос с рекомендациями
type Search struct {
	Currency          Currency
	SearchDate        Date
	RequestDepDate    Date
	RequestReturnDate *Date
	PassengersString  string
	OriginCity        string
	DestinationCity   string
	Recos             []Recommendation
}

// TripType - OW или RT
type TripType string

const (
	TripTypeOneWay    TripType = "OW"
	TripTypeRoundTrip TripType = "RT"
)

// GeoType - внутренний (D) или международный (I) поиск
type GeoType string

const (
	GeoDomestic      GeoType = "D"
	GeoInternational GeoType = "I"
)

// ClassifyGeo сравнивает коды стран. Пустой код (неизвестная локация) никогда не совпадает.
func ClassifyGeo(originCountry, destinationCountry string) GeoType {
	if originCountry != "" && originCountry == destinationCountry {
		return GeoDomestic
	}
	return GeoInternational
}
