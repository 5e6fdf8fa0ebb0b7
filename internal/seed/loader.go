package seed

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for JSON and gzipped JSON files.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based dataset loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "seed-loader").Logger(),
	}
}

// Load reads the dataset at filePath, gunzipping it when the name ends in
// ".gz". An empty filePath returns the embedded default dataset.
func (l *fileLoader) Load(ctx context.Context, filePath string) (*Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if filePath == "" {
		l.logger.Info().Msg("loading embedded default dataset")
		ds, err := Default()
		if err != nil {
			return nil, err
		}
		if err := l.check(ds, "embedded"); err != nil {
			return nil, err
		}
		return ds, nil
	}

	l.logger.Info().Str("file", filePath).Msg("loading seed file")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open seed file")
		return nil, fmt.Errorf("failed to open seed file %s: %w", filePath, err)
	}
	defer file.Close()

	var r io.Reader = file
	if strings.HasSuffix(filePath, ".gz") {
		gzipReader, err := gzip.NewReader(file)
		if err != nil {
			l.logger.Error().Err(err).Str("file", filePath).Msg("failed to create gzip reader")
			return nil, fmt.Errorf("failed to create gzip reader for %s: %w", filePath, err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	ds, err := decode(r)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to decode seed file")
		return nil, fmt.Errorf("failed to decode seed file %s: %w", filePath, err)
	}

	if err := l.check(ds, filePath); err != nil {
		return nil, err
	}

	return ds, nil
}

func (l *fileLoader) check(ds *Dataset, source string) error {
	if err := ds.Validate(); err != nil {
		l.logger.Error().Err(err).Str("source", source).Msg("invalid seed dataset")
		return fmt.Errorf("invalid seed dataset %s: %w", source, err)
	}

	l.logger.Info().
		Str("source", source).
		Int("categories", len(ds.Categories)).
		Int("products", len(ds.Products)).
		Int("orders", len(ds.Orders)).
		Int("reviews", len(ds.Reviews)).
		Msg("seed dataset loaded successfully")

	return nil
}

func decode(r io.Reader) (*Dataset, error) {
	var ds Dataset
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&ds); err != nil {
		return nil, err
	}
	return &ds, nil
}
