package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mpetrovic/rankboard/internal/apperr"
)

func TestNewInvalidSelection(t *testing.T) {
	err := apperr.NewInvalidSelection(500, 124751, 124750)

	want := "number of pairs 124751 cannot exceed C(500, 2) = 124750"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestNewEmptySelection(t *testing.T) {
	err := apperr.NewEmptySelection(0.1, 500, 1000)

	want := "no data available for noise level 0.10, 500 items, 1000 pairs"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestInvalidSelection_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewInvalidSelection(10, 46, 45)

	wrapped := fmt.Errorf("failed to build chart: %w", original)
	doubleWrapped := fmt.Errorf("handler error: %w", wrapped)

	var ise *apperr.InvalidSelectionError
	if !errors.As(doubleWrapped, &ise) {
		t.Fatal("errors.As should find InvalidSelectionError through double wrapping")
	}
	if ise.MaxPairs != 45 {
		t.Errorf("expected bound 45, got %d", ise.MaxPairs)
	}
}

func TestTypeCoercion_UnwrapsParseError(t *testing.T) {
	inner := fmt.Errorf("parse failed")
	err := apperr.NewTypeCoercion("Accuracy", 3, "abc", inner)

	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
	want := `cannot coerce column "Accuracy" row 3 value "abc"`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestSelectionErrors_NotFoundForPlainErrors(t *testing.T) {
	plain := fmt.Errorf("dataset read failed")
	wrapped := fmt.Errorf("load error: %w", plain)

	var ise *apperr.InvalidSelectionError
	if errors.As(wrapped, &ise) {
		t.Fatal("errors.As should NOT find InvalidSelectionError in plain error chain")
	}
}
