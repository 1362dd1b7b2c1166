package dataset

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/mpetrovic/rankboard/internal/domain"
)

// Store is the process-wide snapshot of the loaded dataset. It is built
// once at startup and injected into every handler; after construction it
// is read-only, so concurrent request handlers need no locking.
type Store struct {
	id         uuid.UUID
	source     Type
	rows       []domain.Measurement
	algorithms []string

	noiseMin, noiseMax float64
	itemsMin, itemsMax int
	pairsMin, pairsMax int
}

func NewStore(source Type, rows []domain.Measurement) (*Store, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("dataset from source %q contains no rows", source)
	}

	s := &Store{
		id:       uuid.New(),
		source:   source,
		rows:     rows,
		noiseMin: rows[0].NoiseLevel,
		noiseMax: rows[0].NoiseLevel,
		itemsMin: rows[0].NumItems,
		itemsMax: rows[0].NumItems,
		pairsMin: rows[0].NumPairs,
		pairsMax: rows[0].NumPairs,
	}

	seen := make(map[string]struct{})
	for _, m := range rows {
		s.noiseMin = min(s.noiseMin, m.NoiseLevel)
		s.noiseMax = max(s.noiseMax, m.NoiseLevel)
		s.itemsMin = min(s.itemsMin, m.NumItems)
		s.itemsMax = max(s.itemsMax, m.NumItems)
		s.pairsMin = min(s.pairsMin, m.NumPairs)
		s.pairsMax = max(s.pairsMax, m.NumPairs)

		if _, ok := seen[m.Algorithm]; !ok {
			seen[m.Algorithm] = struct{}{}
			s.algorithms = append(s.algorithms, m.Algorithm)
		}
	}

	return s, nil
}

func (s *Store) ID() uuid.UUID {
	return s.id
}

func (s *Store) Source() Type {
	return s.source
}

// Rows returns the underlying measurement slice. Callers must treat it as
// read-only.
func (s *Store) Rows() []domain.Measurement {
	return s.rows
}

func (s *Store) Len() int {
	return len(s.rows)
}

// Algorithms returns the distinct algorithm labels in first-encountered
// order, which keeps color assignment stable across renders.
func (s *Store) Algorithms() []string {
	return s.algorithms
}

func (s *Store) NoiseRange() (min, max float64) {
	return s.noiseMin, s.noiseMax
}

func (s *Store) ItemsRange() (min, max int) {
	return s.itemsMin, s.itemsMax
}

func (s *Store) PairsRange() (min, max int) {
	return s.pairsMin, s.pairsMax
}
