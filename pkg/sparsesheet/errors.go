package sparsesheet

import (
	"errors"
	"fmt"

	"github.com/ukaji3/sparsesheet-go/pkg/sparsesheet/models"
)

// ErrInvalidCoordinate indicates a negative row or column was passed to a sheet.
var ErrInvalidCoordinate = errors.New("row or column cannot be negative")

// ErrInvalidRange indicates a macro range with negative or inverted bounds.
var ErrInvalidRange = errors.New("invalid range")

// ErrInvalidDestination indicates a macro destination outside its source range.
var ErrInvalidDestination = errors.New("invalid destination cell")

// CoordinateError represents a sheet access with a negative coordinate.
type CoordinateError struct {
	Op  string // "get", "set", "is_empty"
	Row int
	Col int
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("%s (%d, %d): %v", e.Op, e.Row, e.Col, ErrInvalidCoordinate)
}

func (e *CoordinateError) Unwrap() error {
	return ErrInvalidCoordinate
}

// RangeError represents a rejected macro construction.
type RangeError struct {
	Macro  string // "bulk-assign-value", "average", "range-assign"
	Range  models.Range
	Reason string
	Err    error
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s [%d,%d..%d,%d]: %s: %v",
		e.Macro, e.Range.FromRow, e.Range.FromCol, e.Range.ToRow, e.Range.ToCol, e.Reason, e.Err)
}

func (e *RangeError) Unwrap() error {
	return e.Err
}

// NewRangeError creates a new RangeError.
func NewRangeError(macro string, r models.Range, reason string, err error) *RangeError {
	return &RangeError{
		Macro:  macro,
		Range:  r,
		Reason: reason,
		Err:    err,
	}
}

// ValidateRange checks that r has no negative bound and is not inverted.
// The macro name only decorates the returned error.
func ValidateRange(macro string, r models.Range) error {
	if r.HasNegative() {
		return NewRangeError(macro, r, "row or column cannot be negative", ErrInvalidRange)
	}
	if r.IsInverted() {
		return NewRangeError(macro, r, "start exceeds end", ErrInvalidRange)
	}
	return nil
}

// ValidateDestination checks that dest lies inside the already validated range r.
func ValidateDestination(macro string, r models.Range, dest models.CellPosition) error {
	if dest.IsNegative() {
		return NewRangeError(macro, r, "destination cannot be negative", ErrInvalidRange)
	}
	if !r.Contains(dest.Row, dest.Col) {
		return NewRangeError(macro, r,
			fmt.Sprintf("destination (%d, %d) outside range", dest.Row, dest.Col), ErrInvalidDestination)
	}
	return nil
}
