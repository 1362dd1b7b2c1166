package reader

import (
	"github.com/mpetrovic/rankboard/internal/domain"
	"github.com/mpetrovic/rankboard/pkg/apis"
)

type MappingOptions struct {
	strict bool
}

func StrictMapping() *MappingOptions {
	return &MappingOptions{strict: true}
}

type Mapper interface {
	Map(map[string]string, *MappingOptions) (domain.Measurement, error)
}

type MappingLoader interface {
	Load(validate bool) (*apis.DataMapping, error)
}

// FieldError reports the source column whose value could not be coerced,
// so the caller can attach row context.
type FieldError struct {
	Source string
	Value  string
	Err    error
}

func (e *FieldError) Error() string {
	return "failed to map column " + e.Source + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
