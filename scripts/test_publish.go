//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type flight struct {
	DepAirport       string `json:"dep_airport"`
	DepDate          string `json:"dep_date"`
	ArrAirport       string `json:"arr_airport"`
	OperatingAirline string `json:"operating_airline,omitempty"`
	MarketingAirline string `json:"marketing_airline"`
	FlightNb         string `json:"flight_nb"`
	Cabin            string `json:"cabin"`
}

type reco struct {
	Price       string   `json:"price"`
	Taxes       string   `json:"taxes"`
	Fees        string   `json:"fees"`
	NbOfFlights int      `json:"nb_of_flights"`
	Flights     []flight `json:"flights"`
}

type searchEvent struct {
	VersionNb         string `json:"version_nb"`
	SearchID          string `json:"search_id"`
	SearchCountry     string `json:"search_country"`
	SearchDate        string `json:"search_date"`
	SearchTime        string `json:"search_time"`
	OriginCity        string `json:"origin_city"`
	DestinationCity   string `json:"destination_city"`
	RequestDepDate    string `json:"request_dep_date"`
	RequestReturnDate string `json:"request_return_date,omitempty"`
	PassengersString  string `json:"passengers_string"`
	Currency          string `json:"currency"`
	Recos             []reco `json:"recos"`
}

type route struct {
	origin, destination       string
	depAirport, arrAirport    string
	airline, operatingAirline string
	country, currency         string
}

var routes = []route{
	{"PAR", "NYC", "CDG", "JFK", "AF", "", "FR", "EUR"},
	{"NYC", "LON", "JFK", "LHR", "BA", "AA", "US", "USD"},
	{"PAR", "NCE", "ORY", "NCE", "AF", "", "FR", "EUR"},
	{"LON", "MAD", "LHR", "MAD", "IB", "BA", "GB", "GBP"},
}

var passengers = []string{"ADT=1", "ADT=2", "ADT=2,CH=1", "ADT=1,CH=2"}

func newSearch(rnd *rand.Rand) searchEvent {
	r := routes[rnd.Intn(len(routes))]
	now := time.Now().UTC()
	dep := now.AddDate(0, 0, 1+rnd.Intn(90))

	event := searchEvent{
		VersionNb:        "1.0",
		SearchID:         uuid.NewString(),
		SearchCountry:    r.country,
		SearchDate:       now.Format("2006-01-02"),
		SearchTime:       now.Format("15:04:05"),
		OriginCity:       r.origin,
		DestinationCity:  r.destination,
		RequestDepDate:   dep.Format("2006-01-02"),
		PassengersString: passengers[rnd.Intn(len(passengers))],
		Currency:         r.currency,
	}

	roundTrip := rnd.Intn(2) == 0
	var ret time.Time
	if roundTrip {
		ret = dep.AddDate(0, 0, 1+rnd.Intn(21))
		event.RequestReturnDate = ret.Format("2006-01-02")
	}

	for i := 0; i < 1+rnd.Intn(3); i++ {
		price := 80 + rnd.Float64()*900
		flights := []flight{{
			DepAirport:       r.depAirport,
			DepDate:          event.RequestDepDate,
			ArrAirport:       r.arrAirport,
			OperatingAirline: r.operatingAirline,
			MarketingAirline: r.airline,
			FlightNb:         fmt.Sprintf("%d", 100+rnd.Intn(900)),
			Cabin:            "M",
		}}
		if roundTrip {
			flights = append(flights, flight{
				DepAirport:       r.arrAirport,
				DepDate:          event.RequestReturnDate,
				ArrAirport:       r.depAirport,
				MarketingAirline: r.airline,
				FlightNb:         fmt.Sprintf("%d", 100+rnd.Intn(900)),
				Cabin:            "M",
			})
		}
		event.Recos = append(event.Recos, reco{
			Price:       fmt.Sprintf("%.2f", price),
			Taxes:       fmt.Sprintf("%.2f", price*0.2),
			Fees:        fmt.Sprintf("%.2f", price*0.05),
			NbOfFlights: len(flights),
			Flights:     flights,
		})
	}

	return event
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	stream := flag.String("stream", "stream:search:aggregated", "input stream")
	count := flag.Int("count", 10, "number of searches to publish")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i := 0; i < *count; i++ {
		event := newSearch(rnd)

		data, err := json.Marshal(event)
		if err != nil {
			log.Fatalf("Failed to marshal search: %v", err)
		}

		id, err := client.XAdd(ctx, &redis.XAddArgs{
			Stream: *stream,
			Values: map[string]interface{}{
				"data": string(data),
			},
		}).Result()
		if err != nil {
			log.Fatalf("Failed to publish search: %v", err)
		}

		fmt.Printf("published %s %s-%s (%d recos) as %s\n",
			event.SearchID, event.OriginCity, event.DestinationCity, len(event.Recos), id)
	}

	fmt.Printf("%d searches published to %s\n", *count, *stream)
}
