package apperr

import "fmt"

// MissingResourceError signals that the dataset resource could not be
// located. Terminal: the process must not continue to a partial render.
type MissingResourceError struct {
	Path string
	Err  error
}

func (e *MissingResourceError) Error() string {
	return fmt.Sprintf("dataset file not found: %s", e.Path)
}

func (e *MissingResourceError) Unwrap() error {
	return e.Err
}

func NewMissingResource(path string, err error) *MissingResourceError {
	return &MissingResourceError{Path: path, Err: err}
}

// SchemaError signals a required column absent from the dataset. Terminal.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing expected column: %q", e.Column)
}

func NewSchema(column string) *SchemaError {
	return &SchemaError{Column: column}
}

// TypeCoercionError signals a cell that could not be coerced to the column
// type. Row is 1-based over data rows, excluding the header. Terminal.
type TypeCoercionError struct {
	Column string
	Row    int
	Value  string
	Err    error
}

func (e *TypeCoercionError) Error() string {
	return fmt.Sprintf("cannot coerce column %q row %d value %q", e.Column, e.Row, e.Value)
}

func (e *TypeCoercionError) Unwrap() error {
	return e.Err
}

func NewTypeCoercion(column string, row int, value string, err error) *TypeCoercionError {
	return &TypeCoercionError{Column: column, Row: row, Value: value, Err: err}
}

// InvalidSelectionError signals a pair count exceeding C(numItems, 2).
// Recoverable: shown inline, halts only the current render cycle.
type InvalidSelectionError struct {
	NumItems int
	NumPairs int
	MaxPairs int
}

func (e *InvalidSelectionError) Error() string {
	return fmt.Sprintf("number of pairs %d cannot exceed C(%d, 2) = %d", e.NumPairs, e.NumItems, e.MaxPairs)
}

func NewInvalidSelection(numItems, numPairs, maxPairs int) *InvalidSelectionError {
	return &InvalidSelectionError{NumItems: numItems, NumPairs: numPairs, MaxPairs: maxPairs}
}

// EmptySelectionError signals that no rows match the filter tuple.
// Recoverable: rendered as a warning, never as a chart with no series.
type EmptySelectionError struct {
	NoiseLevel float64
	NumItems   int
	NumPairs   int
}

func (e *EmptySelectionError) Error() string {
	return fmt.Sprintf("no data available for noise level %.2f, %d items, %d pairs",
		e.NoiseLevel, e.NumItems, e.NumPairs)
}

func NewEmptySelection(noiseLevel float64, numItems, numPairs int) *EmptySelectionError {
	return &EmptySelectionError{NoiseLevel: noiseLevel, NumItems: numItems, NumPairs: numPairs}
}
