package es

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/mpetrovic/rankboard/internal/dataset"
	"github.com/mpetrovic/rankboard/internal/domain"
	"github.com/mpetrovic/rankboard/pkg/utils"
)

// scanSize bounds a single scan page. Averaged result sets are small; one
// page is enough in practice.
const scanSize = 10000

// measurementDoc mirrors the index document shape for ranking results.
type measurementDoc struct {
	NoiseLevel float64 `json:"noise_level"`
	NumItems   int     `json:"num_items"`
	NumPairs   int     `json:"num_pairs"`
	Algorithm  string  `json:"algorithm"`
	TopN       int     `json:"top_n"`
	Accuracy   float64 `json:"accuracy"`
}

type Source struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewSource(config ClientConfig) (*Source, error) {
	client, err := newClient(config)

	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	return &Source{
		client:    client,
		indexName: config.IndexName,
	}, nil
}

func (s *Source) Name() dataset.Type {
	return dataset.ES
}

func (s *Source) Load(ctx context.Context) ([]domain.Measurement, error) {
	res, err := s.client.Search().
		Index(s.indexName).
		Query(&types.Query{
			MatchAll: &types.MatchAllQuery{},
		}).
		Size(scanSize).
		Do(ctx)
	if err != nil {
		slog.Error("Elasticsearch scan failed", "error", err, "index", s.indexName)
		return nil, fmt.Errorf("failed to scan measurements index: %w", err)
	}

	measurements := make([]domain.Measurement, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc measurementDoc
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal measurement document: %w", err)
		}

		measurements = append(measurements, domain.Measurement{
			NoiseLevel: utils.RoundDecimal(doc.NoiseLevel, 2),
			NumItems:   doc.NumItems,
			NumPairs:   doc.NumPairs,
			Algorithm:  doc.Algorithm,
			TopN:       doc.TopN,
			Accuracy:   doc.Accuracy,
		})
	}

	slog.Info("Loaded measurements from Elasticsearch",
		"index", s.indexName,
		"total_matches", res.Hits.Total.Value,
		"returned_count", len(measurements))

	return measurements, nil
}
