package dataset

import (
	"context"
	"fmt"

	"github.com/mpetrovic/rankboard/internal/domain"
)

type Type string

const (
	CSV Type = "csv"
	PG  Type = "postgres"
	ES  Type = "elasticsearch"
)

const ErrUnsupportedSource = "unsupported dataset source: %s"

// Source produces the full measurement collection exactly once, at startup.
// The dashboard never reloads mid-run; the dataset is immutable input.
type Source interface {
	Name() Type
	Load(ctx context.Context) ([]domain.Measurement, error)
}

func ValidTypes() []Type {
	return []Type{CSV, PG, ES}
}

func ParseType(s string) (Type, error) {
	t := Type(s)
	switch t {
	case CSV, PG, ES:
		return t, nil
	default:
		return "", fmt.Errorf(ErrUnsupportedSource, s)
	}
}
