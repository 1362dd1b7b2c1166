package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mpetrovic/rankboard/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ranking_results_avg.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCSVSource_Load(t *testing.T) {
	path := writeDataset(t, `Noise Level,Num_Items,Num_Pairs,Algorithm,Top-n,Accuracy
0.10000000000000003,500,1000,BradleyTerry,5,0.8
0.1,500,1000,Elo,5,0.7
`)

	source := NewCSVSource(path, nil)
	rows, err := source.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Noise level is rounded to 2 decimals at load time.
	assert.Equal(t, 0.1, rows[0].NoiseLevel)
	assert.Equal(t, "BradleyTerry", rows[0].Algorithm)
	assert.Equal(t, 5, rows[0].TopN)
	assert.Equal(t, 0.7, rows[1].Accuracy)
}

func TestCSVSource_IgnoresExtraColumns(t *testing.T) {
	path := writeDataset(t, `Noise Level,Num_Items,Num_Pairs,Algorithm,Top-n,Accuracy,Run
0.1,500,1000,Elo,5,0.7,3
`)

	source := NewCSVSource(path, nil)
	rows, err := source.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestCSVSource_MissingFile(t *testing.T) {
	source := NewCSVSource(filepath.Join(t.TempDir(), "nope.csv"), nil)

	_, err := source.Load(context.Background())
	require.Error(t, err)

	var mre *apperr.MissingResourceError
	assert.True(t, errors.As(err, &mre))
}

func TestCSVSource_MissingColumn(t *testing.T) {
	path := writeDataset(t, `Noise Level,Num_Items,Num_Pairs,Algorithm,Top-n
0.1,500,1000,Elo,5
`)

	source := NewCSVSource(path, nil)
	_, err := source.Load(context.Background())
	require.Error(t, err)

	var se *apperr.SchemaError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "Accuracy", se.Column)
}

func TestCSVSource_MissingColumnOnHeaderOnlyFile(t *testing.T) {
	path := writeDataset(t, "Noise Level,Num_Items,Algorithm,Top-n,Accuracy\n")

	source := NewCSVSource(path, nil)
	_, err := source.Load(context.Background())
	require.Error(t, err)

	var se *apperr.SchemaError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "Num_Pairs", se.Column)
}

func TestCSVSource_TypeCoercionFailure(t *testing.T) {
	path := writeDataset(t, `Noise Level,Num_Items,Num_Pairs,Algorithm,Top-n,Accuracy
0.1,500,1000,Elo,5,0.7
0.1,500,1000,Elo,ten,0.9
`)

	source := NewCSVSource(path, nil)
	_, err := source.Load(context.Background())
	require.Error(t, err)

	var tce *apperr.TypeCoercionError
	require.True(t, errors.As(err, &tce))
	assert.Equal(t, "Top-n", tce.Column)
	assert.Equal(t, 2, tce.Row)
	assert.Equal(t, "ten", tce.Value)
}
