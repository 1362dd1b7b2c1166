package factory

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mpetrovic/rankboard/internal/dataset"
	"github.com/mpetrovic/rankboard/internal/dataset/es"
	"github.com/mpetrovic/rankboard/internal/dataset/pg"
	"github.com/mpetrovic/rankboard/pkg/utils"
)

const defaultDatasetPath = "ranking_results_avg.csv"

type SourceConfig struct {
	dataset.Type
	CSVPath     string
	MappingPath string
	Pg          *pg.PoolConfig
	PgTable     string
	Es          *es.ClientConfig
}

func LoadEnv() (*SourceConfig, error) {
	sourceEnv := os.Getenv("DATASET_SOURCE")
	if sourceEnv == "" {
		sourceEnv = string(dataset.CSV)
	}

	sourceType, err := dataset.ParseType(sourceEnv)
	if err != nil {
		slog.Error("Invalid DATASET_SOURCE environment variable value", "value", sourceEnv)
		return nil, fmt.Errorf(
			"invalid DATASET_SOURCE environment variable value: %s, expected one of %v",
			sourceEnv,
			dataset.ValidTypes())
	}

	cfg := &SourceConfig{
		Type:        sourceType,
		MappingPath: os.Getenv("DATASET_MAPPING"),
	}

	switch sourceType {
	case dataset.CSV:
		cfg.CSVPath = os.Getenv("DATASET_PATH")
		if cfg.CSVPath == "" {
			cfg.CSVPath = defaultDatasetPath
		}

	case dataset.PG:
		pgCfg := &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if pgCfg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}
		cfg.Pg = pgCfg
		cfg.PgTable = os.Getenv("PG_TABLE")

	case dataset.ES:
		esCfg := &es.ClientConfig{
			Addresses: utils.RemoveEmptyStrings(strings.Split(os.Getenv("ES_ADDRESSES"), ",")),
			IndexName: os.Getenv("ES_INDEX_NAME"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}
		if len(esCfg.Addresses) == 0 || esCfg.IndexName == "" {
			slog.Error("Elasticsearch configuration is incomplete", "addresses", esCfg.Addresses, "indexName", esCfg.IndexName)
			return nil, fmt.Errorf("elasticsearch configuration is incomplete: addresses or index name is missing")
		}
		cfg.Es = esCfg
	}

	return cfg, nil
}
