package pg

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mpetrovic/rankboard/internal/dataset"
	"github.com/mpetrovic/rankboard/internal/domain"
	"github.com/mpetrovic/rankboard/pkg/utils"
)

const defaultTable = "measurements"

// Source reads the measurement table produced by the experiment pipeline.
// Same shape as the CSV export, one row per (params, algorithm, top-n).
type Source struct {
	pool  *ConnectionPool
	table string
}

func NewSource(pool *ConnectionPool, table string) *Source {
	if table == "" {
		table = defaultTable
	}
	return &Source{
		pool:  pool,
		table: table,
	}
}

func (s *Source) Name() dataset.Type {
	return dataset.PG
}

func (s *Source) Load(ctx context.Context) ([]domain.Measurement, error) {
	query := fmt.Sprintf(`
		SELECT noise_level, num_items, num_pairs, algorithm, top_n, accuracy
		FROM %s
		ORDER BY algorithm, top_n
	`, s.table)

	rows, err := s.pool.GetConn().Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query measurements: %w", err)
	}
	defer rows.Close()

	var measurements []domain.Measurement
	for rows.Next() {
		var m domain.Measurement
		if err := rows.Scan(
			&m.NoiseLevel,
			&m.NumItems,
			&m.NumPairs,
			&m.Algorithm,
			&m.TopN,
			&m.Accuracy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan measurement: %w", err)
		}

		m.NoiseLevel = utils.RoundDecimal(m.NoiseLevel, 2)
		measurements = append(measurements, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	slog.Info("Loaded measurements from PostgreSQL", "table", s.table, "rows", len(measurements))

	return measurements, nil
}
