package dashboard

import (
	"testing"

	"github.com/mpetrovic/rankboard/internal/dataset"
	"github.com/mpetrovic/rankboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rangeStore(t *testing.T) *dataset.Store {
	t.Helper()
	store, err := dataset.NewStore(dataset.CSV, []domain.Measurement{
		{NoiseLevel: 0.1, NumItems: 100, NumPairs: 500, Algorithm: "A", TopN: 5, Accuracy: 0.8},
		{NoiseLevel: 0.5, NumItems: 1000, NumPairs: 200000, Algorithm: "A", TopN: 10, Accuracy: 0.6},
	})
	require.NoError(t, err)
	return store
}

func TestComputeRanges(t *testing.T) {
	r := ComputeRanges(rangeStore(t), 1000)

	assert.Equal(t, NoiseRange{Min: 0.1, Max: 0.5, Step: 0.01}, r.Noise)
	assert.Equal(t, CountRange{Min: 100, Max: 1000, Step: 100}, r.Items)
	// C(1000, 2) = 499500 exceeds the data max, so the data max wins.
	assert.Equal(t, CountRange{Min: 500, Max: 200000, Step: 100}, r.Pairs)
	assert.Equal(t, 499500, r.MaxPossiblePairs)
}

func TestComputeRanges_PairsCappedByChooseTwo(t *testing.T) {
	// With 100 items only C(100, 2) = 4950 pairs exist, well under the
	// dataset's 200000 maximum.
	r := ComputeRanges(rangeStore(t), 100)

	assert.Equal(t, 4950, r.Pairs.Max)
	assert.Equal(t, 4950, r.MaxPossiblePairs)
}

func TestComputeRanges_PairsMinClampedByChooseTwo(t *testing.T) {
	// C(10, 2) = 45 is below the dataset's smallest pair count, so both
	// bounds collapse to it rather than leaving min above max.
	r := ComputeRanges(rangeStore(t), 10)

	assert.Equal(t, 45, r.Pairs.Min)
	assert.Equal(t, 45, r.Pairs.Max)
	assert.LessOrEqual(t, r.Pairs.Min, r.Pairs.Max)
}

func TestValidateSelection(t *testing.T) {
	ok := ValidateSelection(domain.FilterSelection{NoiseLevel: 0.1, NumItems: 500, NumPairs: 124750})
	assert.NoError(t, ok)

	bad := ValidateSelection(domain.FilterSelection{NoiseLevel: 0.1, NumItems: 500, NumPairs: 124751})
	require.Error(t, bad)
	assert.Contains(t, bad.Error(), "C(500, 2) = 124750")
}

func TestValidateSelection_TinyItemCounts(t *testing.T) {
	// C(n, 2) is 0 for n < 2, so any positive pair count is invalid.
	assert.Error(t, ValidateSelection(domain.FilterSelection{NumItems: 1, NumPairs: 1}))
	assert.NoError(t, ValidateSelection(domain.FilterSelection{NumItems: 0, NumPairs: 0}))
	assert.NoError(t, ValidateSelection(domain.FilterSelection{NumItems: 2, NumPairs: 1}))
}
