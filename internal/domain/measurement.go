package domain

import "github.com/mpetrovic/rankboard/pkg/utils"

// Measurement is a single pre-computed accuracy measurement: how accurately
// a ranking algorithm recovered the true top-n under the given experiment
// parameters.
type Measurement struct {
	NoiseLevel float64 `json:"noiseLevel"`
	NumItems   int     `json:"numItems"`
	NumPairs   int     `json:"numPairs"`
	Algorithm  string  `json:"algorithm"`
	TopN       int     `json:"topN"`
	Accuracy   float64 `json:"accuracy"`
}

// FilterSelection is the exact-match filter tuple chosen by the user.
// It is recreated on every interaction and never persisted.
type FilterSelection struct {
	NoiseLevel float64 `json:"noiseLevel"`
	NumItems   int     `json:"numItems"`
	NumPairs   int     `json:"numPairs"`
}

// Normalize rounds the noise level to the same 2-decimal precision applied
// at load time, so float comparison against stored rows is exact.
func (fs FilterSelection) Normalize() FilterSelection {
	fs.NoiseLevel = utils.RoundDecimal(fs.NoiseLevel, 2)
	return fs
}

// Matches reports whether the measurement belongs to the selection tuple.
func (m Measurement) Matches(fs FilterSelection) bool {
	return m.NoiseLevel == fs.NoiseLevel &&
		m.NumItems == fs.NumItems &&
		m.NumPairs == fs.NumPairs
}
