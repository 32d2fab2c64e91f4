package reference

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/search-enrichment-service/internal/domain"
	"github.com/search-enrichment-service/internal/pkg/geo"
)

// Колонки OPTD (optd_por_public.csv), которые нужны индексу
const (
	columnIATACode     = "iata_code"
	columnLatitude     = "latitude"
	columnLongitude    = "longitude"
	columnCountryCode  = "country_code"
	columnCityCodeList = "city_code_list"
)

// LoadLocationsFile загружает индекс локаций из файла
func LoadLocationsFile(path string) (*domain.LocationIndex, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open locations file: %w", err)
	}
	defer file.Close()

	index, err := LoadLocations(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load locations from %s: %w", path, err)
	}
	return index, nil
}

// LoadLocations читает записи с разделителем '^' и заголовком.
// При повторе кода остается первая запись.
func LoadLocations(r io.Reader) (*domain.LocationIndex, error) {
	reader := csv.NewReader(r)
	reader.Comma = '^'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{columnIATACode, columnLatitude, columnLongitude, columnCountryCode, columnCityCodeList} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing column %q in header", required)
		}
	}

	locations := make(map[string]domain.LocationRecord)
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		code := field(record, columns[columnIATACode])
		if code == "" {
			continue
		}
		if _, exists := locations[code]; exists {
			continue
		}

		latitude, err := parseCoordinate(field(record, columns[columnLatitude]))
		if err != nil {
			return nil, fmt.Errorf("line %d: latitude: %w", line, err)
		}
		longitude, err := parseCoordinate(field(record, columns[columnLongitude]))
		if err != nil {
			return nil, fmt.Errorf("line %d: longitude: %w", line, err)
		}
		if latitude != nil && longitude != nil && !geo.ValidateCoordinates(*latitude, *longitude) {
			return nil, fmt.Errorf("line %d: coordinates %v,%v out of range", line, *latitude, *longitude)
		}

		locations[code] = domain.LocationRecord{
			Latitude:    latitude,
			Longitude:   longitude,
			CountryCode: field(record, columns[columnCountryCode]),
			CityCodes:   splitCodes(field(record, columns[columnCityCodeList])),
		}
	}

	return domain.NewLocationIndex(locations), nil
}

func field(record []string, idx int) string {
	if idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// parseCoordinate: пустое значение - координаты нет
func parseCoordinate(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func splitCodes(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	codes := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			codes = append(codes, trimmed)
		}
	}
	return codes
}
