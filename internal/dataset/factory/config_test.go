package factory

import (
	"testing"

	"github.com/mpetrovic/rankboard/internal/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv_DefaultsToCSV(t *testing.T) {
	t.Setenv("DATASET_SOURCE", "")
	t.Setenv("DATASET_PATH", "")

	cfg, err := LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, dataset.CSV, cfg.Type)
	assert.Equal(t, "ranking_results_avg.csv", cfg.CSVPath)
}

func TestLoadEnv_CSVPathOverride(t *testing.T) {
	t.Setenv("DATASET_SOURCE", "csv")
	t.Setenv("DATASET_PATH", "/data/results.csv")

	cfg, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, "/data/results.csv", cfg.CSVPath)
}

func TestLoadEnv_InvalidSource(t *testing.T) {
	t.Setenv("DATASET_SOURCE", "mongodb")

	_, err := LoadEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid DATASET_SOURCE")
}

func TestLoadEnv_PGRequiresConnectionString(t *testing.T) {
	t.Setenv("DATASET_SOURCE", "postgres")
	t.Setenv("PG_CONNECTION_STRING", "")

	_, err := LoadEnv()
	require.Error(t, err)
}

func TestLoadEnv_ESRequiresAddresses(t *testing.T) {
	t.Setenv("DATASET_SOURCE", "elasticsearch")
	t.Setenv("ES_ADDRESSES", "")
	t.Setenv("ES_INDEX_NAME", "measurements")

	// An unset address list must not slip through as one empty address.
	_, err := LoadEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incomplete")
}

func TestLoadEnv_ESComplete(t *testing.T) {
	t.Setenv("DATASET_SOURCE", "elasticsearch")
	t.Setenv("ES_ADDRESSES", "http://localhost:9200, http://replica:9200")
	t.Setenv("ES_INDEX_NAME", "measurements")

	cfg, err := LoadEnv()
	require.NoError(t, err)
	require.NotNil(t, cfg.Es)
	assert.Equal(t, "measurements", cfg.Es.IndexName)
	assert.Len(t, cfg.Es.Addresses, 2)
}
