package factory

import (
	"context"
	"fmt"
	"os"

	"github.com/mpetrovic/rankboard/internal/dataset"
	"github.com/mpetrovic/rankboard/internal/dataset/es"
	"github.com/mpetrovic/rankboard/internal/dataset/pg"
	"github.com/mpetrovic/rankboard/internal/reader"
	"github.com/mpetrovic/rankboard/pkg/apis"
)

// NewSource creates a dataset.Source based on the configured source type.
func NewSource(ctx context.Context, cfg *SourceConfig) (dataset.Source, error) {
	switch cfg.Type {
	case dataset.CSV:
		mapping, err := loadMapping(cfg.MappingPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load dataset mapping: %w", err)
		}

		return dataset.NewCSVSource(cfg.CSVPath, mapping), nil

	case dataset.PG:
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}

		return pg.NewSource(pool, cfg.PgTable), nil

	case dataset.ES:
		return es.NewSource(*cfg.Es)

	default:
		return nil, fmt.Errorf(dataset.ErrUnsupportedSource, cfg.Type)
	}
}

// NewStore loads the configured source and freezes the result into the
// process-wide read-only store.
func NewStore(ctx context.Context, cfg *SourceConfig) (*dataset.Store, error) {
	source, err := NewSource(ctx, cfg)
	if err != nil {
		return nil, err
	}

	rows, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}

	return dataset.NewStore(source.Name(), rows)
}

func loadMapping(path string) (*apis.DataMapping, error) {
	if path == "" {
		return reader.DefaultMapping(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return reader.NewYAMLConfigLoader(file).Load(true)
}
