package errors

import "net/http"

var (
	ErrInvalidSearch = New(
		"INVALID_SEARCH",
		"Search document does not match the expected schema",
		http.StatusBadRequest,
	)

	ErrRateUnavailable = New(
		"RATE_UNAVAILABLE",
		"No exchange rate for currency",
		http.StatusUnprocessableEntity,
	)

	ErrMissingLocation = New(
		"MISSING_LOCATION",
		"Location unknown or without coordinates",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidDateOrder = New(
		"INVALID_DATE_ORDER",
		"Dates are in the wrong order",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidPassengers = New(
		"INVALID_PASSENGERS",
		"Invalid passengers string",
		http.StatusUnprocessableEntity,
	)

	ErrEmptyRecommendation = New(
		"EMPTY_RECOMMENDATION",
		"Recommendation has no flights",
		http.StatusUnprocessableEntity,
	)

	ErrSerialization = New(
		"SERIALIZATION_ERROR",
		"Failed to serialize enriched search",
		http.StatusInternalServerError,
	)

	ErrSearchNotFound = New(
		"SEARCH_NOT_FOUND",
		"Search not found",
		http.StatusNotFound,
	)

	ErrLocationNotFound = New(
		"LOCATION_NOT_FOUND",
		"Location not found",
		http.StatusNotFound,
	)

	ErrDistanceUnavailable = New(
		"DISTANCE_UNAVAILABLE",
		"Distance cannot be computed for these locations",
		http.StatusUnprocessableEntity,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
