package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyRecommendation - рекомендация без перелетов
var ErrEmptyRecommendation = errors.New("recommendation has no flights")

// ParseError - документ не соответствует ожидаемой схеме
type ParseError struct {
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid search document: %v", e.Err)
	}
	return fmt.Sprintf("invalid search document: field %s: %v", e.Field, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// RateUnavailableError - нет курса для валюты
type RateUnavailableError struct {
	Currency Currency
}

func (e *RateUnavailableError) Error() string {
	return fmt.Sprintf("no exchange rate for currency %s", e.Currency)
}

// MissingLocationError - расстояние не вычислить: код неизвестен или нет координат
type MissingLocationError struct {
	From string
	To   string
}

func (e *MissingLocationError) Error() string {
	return fmt.Sprintf("missing location in distance calculation between %q and %q", e.From, e.To)
}

// InvalidDateOrderError - даты идут в обратном порядке
type InvalidDateOrderError struct {
	Field string
	From  Date
	To    Date
}

func (e *InvalidDateOrderError) Error() string {
	return fmt.Sprintf("cannot compute %s: %s is after %s", e.Field, e.From, e.To)
}

// PassengerParseError - некорректный сегмент TYPE=count
type PassengerParseError struct {
	Segment string
	Reason  string
}

func (e *PassengerParseError) Error() string {
	return fmt.Sprintf("invalid passenger segment %q: %s", e.Segment, e.Reason)
}

// SerializationError - обогащенный результат не удалось привести к дереву JSON
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("failed to serialize enriched search: %v", e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

// FlightError указывает, на каком перелете упало обогащение
type FlightError struct {
	Index      int
	DepAirport string
	ArrAirport string
	Err        error
}

func (e *FlightError) Error() string {
	return fmt.Sprintf("flight %d (%s-%s): %v", e.Index, e.DepAirport, e.ArrAirport, e.Err)
}

func (e *FlightError) Unwrap() error {
	return e.Err
}

// RecommendationError указывает, на какой рекомендации упало обогащение
type RecommendationError struct {
	Index int
	Err   error
}

func (e *RecommendationError) Error() string {
	return fmt.Sprintf("reco %d: %v", e.Index, e.Err)
}

func (e *RecommendationError) Unwrap() error {
	return e.Err
}
