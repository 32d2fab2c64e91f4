package dto

// LocationResponse - запись справочника локаций
type LocationResponse struct {
	Code        string   `json:"code"`
	CountryCode string   `json:"country_code"`
	CityCode    string   `json:"city_code"`
	CityCodes   []string `json:"city_codes"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// DistanceRequest - параметры запроса расстояния
type DistanceRequest struct {
	From string `query:"from" json:"from" validate:"required"`
	To   string `query:"to" json:"to" validate:"required"`
}

// DistanceResponse - расстояние по большому кругу между двумя кодами
type DistanceResponse struct {
	From       string `json:"from"`
	To         string `json:"to"`
	DistanceKm uint64 `json:"distance_km"`
}

// RateResponse - курс валюты к EUR
type RateResponse struct {
	Currency   string  `json:"currency"`
	Rate       float64 `json:"rate"`
	RecordDate string  `json:"record_date,omitempty"`
}
