package domain

import "encoding/json"

// Имена стримов по умолчанию
const (
	StreamSearchAggregated = "stream:search:aggregated"
	StreamSearchEnriched   = "stream:search:enriched"
	StreamSearchFailed     = "stream:search:failed"
)

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data map[string]interface{}
}

// Payload возвращает JSON из поля "data"
func (m StreamMessage) Payload() ([]byte, bool) {
	data, ok := m.Data["data"].(string)
	if !ok {
		return nil, false
	}
	return []byte(data), true
}

// SearchFailedEvent - поиск, который не удалось обогатить
type SearchFailedEvent struct {
	MessageID string `json:"message_id"`
	SearchID  string `json:"search_id,omitempty"`
	Error     string `json:"error"`
}

// SearchRecord - плоское представление обогащенного поиска для хранения
type SearchRecord struct {
	SearchID           string          `db:"search_id"`
	SearchCountry      string          `db:"search_country"`
	SearchDate         string          `db:"search_date"`
	RequestDepDate     string          `db:"request_dep_date"`
	AdvancePurchase    int64           `db:"advance_purchase"`
	StayDuration       int64           `db:"stay_duration"`
	TripType           string          `db:"trip_type"`
	OnD                string          `db:"ond"`
	OriginCountry      string          `db:"origin_country"`
	DestinationCountry string          `db:"destination_country"`
	Geo                string          `db:"geo"`
	OnDDistance        int64           `db:"ond_distance"`
	Document           json.RawMessage `db:"document"`
	Recos              []RecoRecord    `db:"-"`
}

// RecoRecord - плоское представление рекомендации
type RecoRecord struct {
	SearchID             string   `db:"search_id"`
	RecoIndex            int      `db:"reco_index"`
	NbOfFlights          int      `db:"nb_of_flights"`
	PriceEUR             float64  `db:"price_eur"`
	FlownDistance        int64    `db:"flown_distance"`
	MainMarketingAirline string   `db:"main_marketing_airline"`
	MainOperatingAirline string   `db:"main_operating_airline"`
	MainCabin            string   `db:"main_cabin"`
	Airlines             []string `db:"airlines"`
}
