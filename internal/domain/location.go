package domain

import "github.com/search-enrichment-service/internal/pkg/geo"

// LocationRecord - справочные данные по коду локации (аэропорт или город)
type LocationRecord struct {
	Latitude    *float64
	Longitude   *float64
	CountryCode string
	// CityCodes упорядочены, первый - основной город
	CityCodes []string
}

// HasCoordinates проверяет наличие обеих координат
func (r LocationRecord) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// LocationIndex - неизменяемый индекс локаций по коду.
// Безопасен для конкурентного чтения без блокировок.
type LocationIndex struct {
	locations map[string]LocationRecord
}

// NewLocationIndex создает индекс из готовых записей
func NewLocationIndex(locations map[string]LocationRecord) *LocationIndex {
	copied := make(map[string]LocationRecord, len(locations))
	for code, record := range locations {
		copied[code] = record
	}
	return &LocationIndex{locations: copied}
}

// Lookup возвращает запись по коду
func (idx *LocationIndex) Lookup(code string) (LocationRecord, bool) {
	record, ok := idx.locations[code]
	return record, ok
}

// Len - количество локаций в индексе
func (idx *LocationIndex) Len() int {
	return len(idx.locations)
}

// CountryOf возвращает код страны или пустую строку, если код неизвестен
func (idx *LocationIndex) CountryOf(code string) string {
	record, ok := idx.locations[code]
	if !ok {
		return ""
	}
	return record.CountryCode
}

// CityOf возвращает основной город локации или пустую строку
func (idx *LocationIndex) CityOf(code string) string {
	record, ok := idx.locations[code]
	if !ok || len(record.CityCodes) == 0 {
		return ""
	}
	return record.CityCodes[0]
}

// DistanceBetween - расстояние по большому кругу в км, дробная часть отбрасывается.
// ok=false если одна из локаций неизвестна или без координат.
func (idx *LocationIndex) DistanceBetween(a, b string) (uint64, bool) {
	first, ok := idx.locations[a]
	if !ok || !first.HasCoordinates() {
		return 0, false
	}
	second, ok := idx.locations[b]
	if !ok || !second.HasCoordinates() {
		return 0, false
	}

	distance := geo.HaversineDistance(*first.Latitude, *first.Longitude, *second.Latitude, *second.Longitude)
	return uint64(distance), true
}
