package dataset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"

	"github.com/mpetrovic/rankboard/internal/apperr"
	"github.com/mpetrovic/rankboard/internal/domain"
	"github.com/mpetrovic/rankboard/internal/reader"
	"github.com/mpetrovic/rankboard/pkg/apis"
)

// CSVSource loads measurements from a CSV export. This is the primary
// dataset source; the file is read once and never watched for changes.
type CSVSource struct {
	path    string
	mapping *apis.DataMapping
}

func NewCSVSource(path string, mapping *apis.DataMapping) *CSVSource {
	if mapping == nil {
		mapping = reader.DefaultMapping()
	}
	return &CSVSource{
		path:    path,
		mapping: mapping,
	}
}

func (s *CSVSource) Name() Type {
	return CSV
}

func (s *CSVSource) Load(ctx context.Context) ([]domain.Measurement, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperr.NewMissingResource(s.path, err)
		}
		return nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer file.Close()

	var raw reader.HeaderReader = reader.NewCSVReader(file)
	headers, records, err := raw.ReadWithHeader()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file %s: %w", s.path, err)
	}

	// Extra columns are ignored; every mapped column must exist.
	for _, fm := range s.mapping.FieldMappings {
		if !slices.Contains(headers, fm.Source) {
			return nil, apperr.NewSchema(fm.Source)
		}
	}

	var mapper reader.Mapper = reader.NewMeasurementMapper(s.mapping)

	measurements := make([]domain.Measurement, 0, len(records))
	for i, record := range records {
		m, err := mapper.Map(record, reader.StrictMapping())
		if err != nil {
			var fe *reader.FieldError
			if errors.As(err, &fe) {
				return nil, apperr.NewTypeCoercion(fe.Source, i+1, fe.Value, fe.Err)
			}
			return nil, fmt.Errorf("failed to map row %d: %w", i+1, err)
		}
		measurements = append(measurements, m)
	}

	slog.Info("Loaded measurements from CSV", "path", s.path, "rows", len(measurements))

	return measurements, nil
}
