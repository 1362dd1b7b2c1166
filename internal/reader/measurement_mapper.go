package reader

import (
	"reflect"

	"github.com/mpetrovic/rankboard/internal/domain"
	"github.com/mpetrovic/rankboard/pkg/apis"
	"github.com/mpetrovic/rankboard/pkg/utils"
)

// MeasurementMapper maps a raw CSV record onto a domain.Measurement using
// a DataMapping document. The noise level is rounded to 2 decimals here so
// every later float comparison against the filter tuple is exact.
type MeasurementMapper struct {
	cfg *apis.DataMapping
}

func NewMeasurementMapper(cfg *apis.DataMapping) *MeasurementMapper {
	return &MeasurementMapper{
		cfg: cfg,
	}
}

func (m *MeasurementMapper) Map(record map[string]string, opt *MappingOptions) (domain.Measurement, error) {
	if err := m.cfg.Validate(); err != nil {
		return domain.Measurement{}, err
	}

	measurement := domain.Measurement{}
	val := reflect.ValueOf(&measurement).Elem()

	strict := opt != nil && opt.strict

	for _, fm := range m.cfg.FieldMappings {
		sourceVal := record[fm.Source]

		err := SetFlatField(val, fm.Target, sourceVal, fm.SourceType)
		if err != nil && (strict || fm.Required) {
			return domain.Measurement{}, &FieldError{Source: fm.Source, Value: sourceVal, Err: err}
		}
	}

	measurement.NoiseLevel = utils.RoundDecimal(measurement.NoiseLevel, 2)

	return measurement, nil
}

// DefaultMapping matches the canonical header of the averaged ranking
// results export: Noise Level, Num_Items, Num_Pairs, Algorithm, Top-n,
// Accuracy.
func DefaultMapping() *apis.DataMapping {
	return &apis.DataMapping{
		Kind:    "DataMapping",
		Version: "v1",
		Metadata: apis.Metadata{
			Name:        "Ranking Results",
			Description: "Mapping for averaged ranking accuracy results",
		},
		Dataset: "ranking-results",
		FieldMappings: []apis.FieldMapping{
			{Source: "Noise Level", SourceType: "float", Target: "NoiseLevel", Required: true},
			{Source: "Num_Items", SourceType: "int", Target: "NumItems", Required: true},
			{Source: "Num_Pairs", SourceType: "int", Target: "NumPairs", Required: true},
			{Source: "Algorithm", SourceType: "string", Target: "Algorithm", Required: true},
			{Source: "Top-n", SourceType: "int", Target: "TopN", Required: true},
			{Source: "Accuracy", SourceType: "float", Target: "Accuracy", Required: true},
		},
	}
}
