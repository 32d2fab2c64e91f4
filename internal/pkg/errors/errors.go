package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/search-enrichment-service/internal/domain"
)

type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

// WithDetails возвращает копию ошибки с деталями, исходное значение не меняется
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	copied := *e
	copied.Details = details
	return &copied
}

// WithMessage возвращает копию ошибки с другим сообщением
func (e *AppError) WithMessage(message string) *AppError {
	copied := *e
	copied.Message = message
	return &copied
}

// FromDomain сопоставляет ошибку обогащения с кодом API.
// Сообщение берётся из исходной ошибки, чтобы клиент видел, что именно не так.
func FromDomain(err error) *AppError {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	var (
		parseErr     *domain.ParseError
		rateErr      *domain.RateUnavailableError
		locationErr  *domain.MissingLocationError
		dateErr      *domain.InvalidDateOrderError
		passengerErr *domain.PassengerParseError
		serializeErr *domain.SerializationError
		recoErr      *domain.RecommendationError
		flightErr    *domain.FlightError
		mapped       *AppError
	)
	details := make(map[string]interface{})

	if stderrors.As(err, &recoErr) {
		details["reco_index"] = recoErr.Index
	}
	if stderrors.As(err, &flightErr) {
		details["flight_index"] = flightErr.Index
	}

	switch {
	case stderrors.As(err, &parseErr):
		mapped = ErrInvalidSearch
		if parseErr.Field != "" {
			details["field"] = parseErr.Field
		}
	case stderrors.As(err, &rateErr):
		mapped = ErrRateUnavailable
		details["currency"] = string(rateErr.Currency)
	case stderrors.As(err, &locationErr):
		mapped = ErrMissingLocation
		details["from"] = locationErr.From
		details["to"] = locationErr.To
	case stderrors.As(err, &dateErr):
		mapped = ErrInvalidDateOrder
		details["field"] = dateErr.Field
	case stderrors.As(err, &passengerErr):
		mapped = ErrInvalidPassengers
		details["segment"] = passengerErr.Segment
	case stderrors.Is(err, domain.ErrEmptyRecommendation):
		mapped = ErrEmptyRecommendation
	case stderrors.As(err, &serializeErr):
		mapped = ErrSerialization
	default:
		return ErrInternalServer
	}

	return mapped.WithMessage(err.Error()).WithDetails(details)
}
