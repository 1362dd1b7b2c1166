package dashboard

import (
	"github.com/mpetrovic/rankboard/internal/apperr"
	"github.com/mpetrovic/rankboard/internal/dataset"
	"github.com/mpetrovic/rankboard/internal/domain"
	"github.com/mpetrovic/rankboard/pkg/utils"
)

const (
	NoiseStep = 0.01
	ItemsStep = 100
	PairsStep = 100
)

type NoiseRange struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

type CountRange struct {
	Min  int `json:"min"`
	Max  int `json:"max"`
	Step int `json:"step"`
}

// Ranges holds the valid slider bounds for the current dataset. The pairs
// upper bound depends on the selected item count and must be recomputed
// whenever it changes: no selection may ask for more pairs than
// C(items, 2) distinct pairs exist.
type Ranges struct {
	Noise            NoiseRange `json:"noise"`
	Items            CountRange `json:"items"`
	Pairs            CountRange `json:"pairs"`
	MaxPossiblePairs int        `json:"maxPossiblePairs"`
}

// ComputeRanges derives slider bounds from the dataset columns and the
// currently selected item count.
func ComputeRanges(store *dataset.Store, selectedItems int) Ranges {
	noiseMin, noiseMax := store.NoiseRange()
	itemsMin, itemsMax := store.ItemsRange()
	pairsMin, pairsMax := store.PairsRange()

	maxPossible := utils.ChooseTwo(selectedItems)

	return Ranges{
		Noise:            NoiseRange{Min: noiseMin, Max: noiseMax, Step: NoiseStep},
		Items:            CountRange{Min: itemsMin, Max: itemsMax, Step: ItemsStep},
		Pairs:            CountRange{Min: min(pairsMin, maxPossible), Max: min(pairsMax, maxPossible), Step: PairsStep},
		MaxPossiblePairs: maxPossible,
	}
}

// ValidateSelection guards the combinatorial bound before any filtering
// happens. A violating selection never reaches row selection.
func ValidateSelection(sel domain.FilterSelection) error {
	maxPairs := utils.ChooseTwo(sel.NumItems)
	if sel.NumPairs > maxPairs {
		return apperr.NewInvalidSelection(sel.NumItems, sel.NumPairs, maxPairs)
	}
	return nil
}
