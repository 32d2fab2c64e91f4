package reference

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/search-enrichment-service/internal/domain"
)

// LoadRatesFile загружает таблицу курсов из файла ЕЦБ (eurofxref.csv)
func LoadRatesFile(path string) (*domain.RateTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open rates file: %w", err)
	}
	defer file.Close()

	table, err := LoadRates(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load rates from %s: %w", path, err)
	}
	return table, nil
}

// LoadRates читает снимок курсов: заголовок "Date, USD, JPY, ...",
// берётся последняя строка данных. Пустые ячейки и N/A пропускаются.
func LoadRates(r io.Reader) (*domain.RateTable, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var last []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read rates: %w", err)
		}
		if len(record) <= 1 {
			continue
		}
		last = record
	}
	if last == nil {
		return nil, fmt.Errorf("rates file has no data rows")
	}

	rates := make(map[domain.Currency]float64, len(header))
	for i := 1; i < len(header) && i < len(last); i++ {
		name := strings.TrimSpace(header[i])
		if name == "" {
			continue
		}

		currency, err := domain.ParseCurrency(name)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}

		cell := strings.TrimSpace(last[i])
		if cell == "" || strings.EqualFold(cell, "N/A") {
			continue
		}
		rate, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid rate %q for %s: %w", cell, currency, err)
		}
		if rate <= 0 {
			return nil, fmt.Errorf("non-positive rate %v for %s", rate, currency)
		}
		rates[currency] = rate
	}

	return domain.NewRateTable(rates, strings.TrimSpace(last[0])), nil
}
