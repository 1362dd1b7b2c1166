package dashboard

import (
	"errors"
	"testing"

	"github.com/mpetrovic/rankboard/internal/apperr"
	"github.com/mpetrovic/rankboard/internal/dataset"
	"github.com/mpetrovic/rankboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T, rows []domain.Measurement) *dataset.Store {
	t.Helper()
	store, err := dataset.NewStore(dataset.CSV, rows)
	require.NoError(t, err)
	return store
}

func TestBuildChart_GroupsAndSorts(t *testing.T) {
	// Example from the dashboard's reference behavior: three rows, two
	// algorithms, series A sorted ascending by top-n.
	store := testStore(t, []domain.Measurement{
		{NoiseLevel: 0.1, NumItems: 500, NumPairs: 1000, Algorithm: "A", TopN: 10, Accuracy: 0.9},
		{NoiseLevel: 0.1, NumItems: 500, NumPairs: 1000, Algorithm: "A", TopN: 5, Accuracy: 0.8},
		{NoiseLevel: 0.1, NumItems: 500, NumPairs: 1000, Algorithm: "B", TopN: 5, Accuracy: 0.7},
	})

	chart, err := BuildChart(store, domain.FilterSelection{NoiseLevel: 0.1, NumItems: 500, NumPairs: 1000})
	require.NoError(t, err)

	require.Len(t, chart.Rows, 3)
	require.Len(t, chart.Series, 2)

	assert.Equal(t, "A", chart.Series[0].Name)
	assert.Equal(t, []Point{{TopN: 5, Accuracy: 0.8}, {TopN: 10, Accuracy: 0.9}}, chart.Series[0].Points)

	assert.Equal(t, "B", chart.Series[1].Name)
	assert.Equal(t, []Point{{TopN: 5, Accuracy: 0.7}}, chart.Series[1].Points)
}

func TestBuildChart_TitleAndAxes(t *testing.T) {
	store := testStore(t, []domain.Measurement{
		{NoiseLevel: 0.1, NumItems: 500, NumPairs: 1000, Algorithm: "A", TopN: 5, Accuracy: 0.8},
	})

	chart, err := BuildChart(store, domain.FilterSelection{NoiseLevel: 0.1, NumItems: 500, NumPairs: 1000})
	require.NoError(t, err)

	assert.Equal(t, "Top-n Accuracy at Noise Level 0.10, Num_Items 500, Num_Pairs 1000", chart.Title)
	assert.Equal(t, "Top-n Candidates", chart.XAxis)
	assert.Equal(t, "Accuracy", chart.YAxis)
}

func TestBuildChart_NormalizesNoiseLevel(t *testing.T) {
	store := testStore(t, []domain.Measurement{
		{NoiseLevel: 0.1, NumItems: 500, NumPairs: 1000, Algorithm: "A", TopN: 5, Accuracy: 0.8},
	})

	// Float drift in the request must not cause a spurious empty selection.
	chart, err := BuildChart(store, domain.FilterSelection{NoiseLevel: 0.10000000000000003, NumItems: 500, NumPairs: 1000})
	require.NoError(t, err)
	assert.Len(t, chart.Rows, 1)
}

func TestBuildChart_InvalidSelection(t *testing.T) {
	store := testStore(t, []domain.Measurement{
		{NoiseLevel: 0.1, NumItems: 500, NumPairs: 1000, Algorithm: "A", TopN: 5, Accuracy: 0.8},
	})

	_, err := BuildChart(store, domain.FilterSelection{NoiseLevel: 0.1, NumItems: 500, NumPairs: 124751})
	require.Error(t, err)

	var ise *apperr.InvalidSelectionError
	require.True(t, errors.As(err, &ise))
	assert.Equal(t, 124750, ise.MaxPairs)
	assert.Equal(t, 124751, ise.NumPairs)
}

func TestBuildChart_EmptySelection(t *testing.T) {
	store := testStore(t, []domain.Measurement{
		{NoiseLevel: 0.1, NumItems: 500, NumPairs: 1000, Algorithm: "A", TopN: 5, Accuracy: 0.8},
	})

	_, err := BuildChart(store, domain.FilterSelection{NoiseLevel: 0.2, NumItems: 500, NumPairs: 1000})
	require.Error(t, err)

	var ese *apperr.EmptySelectionError
	assert.True(t, errors.As(err, &ese))
}

func TestBuildChart_EmptyAfterTopNFilter(t *testing.T) {
	// The tuple matches, but every row is discarded because its top-n
	// exceeds the item count. That still counts as an empty selection.
	store := testStore(t, []domain.Measurement{
		{NoiseLevel: 0.1, NumItems: 10, NumPairs: 20, Algorithm: "A", TopN: 15, Accuracy: 0.9},
		{NoiseLevel: 0.1, NumItems: 10, NumPairs: 20, Algorithm: "B", TopN: 20, Accuracy: 0.85},
	})

	_, err := BuildChart(store, domain.FilterSelection{NoiseLevel: 0.1, NumItems: 10, NumPairs: 20})
	require.Error(t, err)

	var ese *apperr.EmptySelectionError
	assert.True(t, errors.As(err, &ese))
}

func TestBuildChart_DropsRowsBeyondNumItems(t *testing.T) {
	store := testStore(t, []domain.Measurement{
		{NoiseLevel: 0.1, NumItems: 10, NumPairs: 20, Algorithm: "A", TopN: 5, Accuracy: 0.8},
		{NoiseLevel: 0.1, NumItems: 10, NumPairs: 20, Algorithm: "A", TopN: 15, Accuracy: 0.9},
	})

	chart, err := BuildChart(store, domain.FilterSelection{NoiseLevel: 0.1, NumItems: 10, NumPairs: 20})
	require.NoError(t, err)

	require.Len(t, chart.Rows, 1)
	assert.Equal(t, 5, chart.Rows[0].TopN)
}

func TestBuildChart_DeterministicColors(t *testing.T) {
	rows := []domain.Measurement{
		{NoiseLevel: 0.1, NumItems: 500, NumPairs: 1000, Algorithm: "A", TopN: 5, Accuracy: 0.8},
		{NoiseLevel: 0.1, NumItems: 500, NumPairs: 1000, Algorithm: "B", TopN: 5, Accuracy: 0.7},
		{NoiseLevel: 0.1, NumItems: 500, NumPairs: 1000, Algorithm: "C", TopN: 5, Accuracy: 0.6},
	}
	store := testStore(t, rows)
	sel := domain.FilterSelection{NoiseLevel: 0.1, NumItems: 500, NumPairs: 1000}

	first, err := BuildChart(store, sel)
	require.NoError(t, err)
	second, err := BuildChart(store, sel)
	require.NoError(t, err)

	for i := range first.Series {
		assert.Equal(t, first.Series[i].Color, second.Series[i].Color)
		assert.Equal(t, SeriesColor(i), first.Series[i].Color)
	}
}

func TestSeriesColor_CyclesPalette(t *testing.T) {
	assert.Equal(t, SeriesColor(0), SeriesColor(24))
	assert.NotEqual(t, SeriesColor(0), SeriesColor(1))
}
