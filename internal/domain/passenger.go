package domain

import (
	"strconv"
	"strings"
)

// PassengerType - тип пассажира
type PassengerType string

const (
	PassengerAdult PassengerType = "ADT"
	PassengerChild PassengerType = "CH"
)

// ParsePassengerType разбирает тег типа пассажира
func ParsePassengerType(token string) (PassengerType, bool) {
	switch PassengerType(token) {
	case PassengerAdult:
		return PassengerAdult, true
	case PassengerChild:
		return PassengerChild, true
	default:
		return "", false
	}
}

// Passenger - количество пассажиров одного типа
type Passenger struct {
	Type  PassengerType `json:"passenger_type"`
	Count uint64        `json:"passenger_nb"`
}

// ParsePassengers декодирует строку вида "ADT=1,CH=2" с сохранением порядка
func ParsePassengers(s string) ([]Passenger, error) {
	segments := strings.Split(strings.TrimSpace(s), ",")
	passengers := make([]Passenger, 0, len(segments))

	for _, segment := range segments {
		typeToken, countToken, found := strings.Cut(segment, "=")
		if typeToken == "" {
			return nil, &PassengerParseError{Segment: segment, Reason: "no passenger type provided"}
		}
		if !found || countToken == "" {
			return nil, &PassengerParseError{Segment: segment, Reason: "no passenger number provided"}
		}

		passengerType, ok := ParsePassengerType(typeToken)
		if !ok {
			return nil, &PassengerParseError{
				Segment: segment,
				Reason:  "unknown passenger type " + strconv.Quote(typeToken) + ", expected ADT or CH",
			}
		}

		count, err := strconv.ParseUint(countToken, 10, 64)
		if err != nil {
			return nil, &PassengerParseError{
				Segment: segment,
				Reason:  "passenger number is not a non-negative integer: " + strconv.Quote(countToken),
			}
		}

		passengers = append(passengers, Passenger{Type: passengerType, Count: count})
	}

	return passengers, nil
}
