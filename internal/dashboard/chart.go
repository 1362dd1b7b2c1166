package dashboard

import (
	"fmt"
	"sort"

	"github.com/mpetrovic/rankboard/internal/apperr"
	"github.com/mpetrovic/rankboard/internal/dataset"
	"github.com/mpetrovic/rankboard/internal/domain"
)

// palette is a fixed qualitative palette (Plotly Dark24). Colors cycle by
// series index so re-renders of the same algorithm set stay visually stable.
var palette = []string{
	"#2E91E5", "#E15F99", "#1CA71C", "#FB0D0D", "#DA16FF", "#222A2A",
	"#B68100", "#750D86", "#EB663B", "#511CFB", "#00A08B", "#FB00D1",
	"#FC0080", "#B2828D", "#6C7C32", "#778AAE", "#862A16", "#A777F1",
	"#620042", "#1616A7", "#DA60CA", "#6C4516", "#0D2A63", "#AF0038",
}

// SeriesColor returns the palette color for the i-th series.
func SeriesColor(i int) string {
	return palette[i%len(palette)]
}

type Point struct {
	TopN     int     `json:"topN"`
	Accuracy float64 `json:"accuracy"`
}

type Series struct {
	Name   string  `json:"name"`
	Color  string  `json:"color"`
	Points []Point `json:"points"`
}

// Chart is the complete render result for one filter selection: the plotted
// series plus the raw filtered rows backing the data table.
type Chart struct {
	Title     string                 `json:"title"`
	XAxis     string                 `json:"xAxis"`
	YAxis     string                 `json:"yAxis"`
	Selection domain.FilterSelection `json:"selection"`
	Series    []Series               `json:"series"`
	Rows      []domain.Measurement   `json:"rows"`
}

// BuildChart is the pure recomputation step behind every slider change:
// validate the selection, pick the exactly matching rows, group them by
// algorithm and connect each group into a line sorted by top-n.
func BuildChart(store *dataset.Store, sel domain.FilterSelection) (*Chart, error) {
	sel = sel.Normalize()

	if err := ValidateSelection(sel); err != nil {
		return nil, err
	}

	var rows []domain.Measurement
	for _, m := range store.Rows() {
		// top_n > num_items should be unreachable if the dataset invariant
		// holds, but is dropped regardless.
		if m.Matches(sel) && m.TopN <= sel.NumItems {
			rows = append(rows, m)
		}
	}

	if len(rows) == 0 {
		return nil, apperr.NewEmptySelection(sel.NoiseLevel, sel.NumItems, sel.NumPairs)
	}

	chart := &Chart{
		Title: fmt.Sprintf("Top-n Accuracy at Noise Level %.2f, Num_Items %d, Num_Pairs %d",
			sel.NoiseLevel, sel.NumItems, sel.NumPairs),
		XAxis:     "Top-n Candidates",
		YAxis:     "Accuracy",
		Selection: sel,
		Series:    groupSeries(rows),
		Rows:      rows,
	}

	return chart, nil
}

// groupSeries groups rows by algorithm in first-encountered order and sorts
// each series ascending by top-n so the rendered line is monotonic in x.
func groupSeries(rows []domain.Measurement) []Series {
	var order []string
	grouped := make(map[string][]Point)

	for _, m := range rows {
		if _, ok := grouped[m.Algorithm]; !ok {
			order = append(order, m.Algorithm)
		}
		grouped[m.Algorithm] = append(grouped[m.Algorithm], Point{TopN: m.TopN, Accuracy: m.Accuracy})
	}

	series := make([]Series, 0, len(order))
	for i, name := range order {
		points := grouped[name]
		sort.Slice(points, func(a, b int) bool {
			return points[a].TopN < points[b].TopN
		})

		series = append(series, Series{
			Name:   name,
			Color:  SeriesColor(i),
			Points: points,
		})
	}

	return series
}
