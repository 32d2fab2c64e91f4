package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/search-enrichment-service/internal/pkg/logger"
	"github.com/search-enrichment-service/internal/repository/reference"
	"github.com/search-enrichment-service/internal/usecase"
)

func main() {
	in := flag.String("in", "", "input search document (default stdin)")
	out := flag.String("out", "", "output file (default stdout)")
	locationsFile := flag.String("locations", "data/optd_por_public.csv", "locations reference file")
	ratesFile := flag.String("rates", "data/eurofxref.csv", "exchange rates reference file")
	pretty := flag.Bool("pretty", false, "indent output")
	logLevel := flag.String("log-level", "warn", "log level")
	flag.Parse()

	log, err := logger.NewStderr(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(log, *in, *out, *locationsFile, *ratesFile, *pretty); err != nil {
		log.Error("Enrichment failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(log *zap.Logger, in, out, locationsFile, ratesFile string, pretty bool) error {
	locations, err := reference.LoadLocationsFile(locationsFile)
	if err != nil {
		return err
	}
	rates, err := reference.LoadRatesFile(ratesFile)
	if err != nil {
		return err
	}
	log.Debug("Reference data loaded",
		zap.Int("locations", locations.Len()),
		zap.Int("rates", rates.Len()),
		zap.String("rates_date", rates.RecordDate()))

	raw, err := readInput(in)
	if err != nil {
		return err
	}

	result, err := usecase.NewEnrichmentUseCase(locations, rates, log).EnrichDocument(raw)
	if err != nil {
		return err
	}

	document := []byte(result.Document)
	if pretty {
		var buf bytes.Buffer
		if err := json.Indent(&buf, document, "", "  "); err != nil {
			return fmt.Errorf("failed to indent output: %w", err)
		}
		document = buf.Bytes()
	}
	document = append(document, '\n')

	if out == "" {
		_, err = os.Stdout.Write(document)
		return err
	}
	if err := os.WriteFile(out, document, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
