// Package sparsesheet provides an in-memory spreadsheet with sparse cell
// storage and macros that edit rectangular ranges in bulk.
package sparsesheet

import (
	"math"

	"github.com/ukaji3/sparsesheet-go/pkg/sparsesheet/models"
)

// Sheet is the read/write contract of a cell store.
// Absent cells read as 0.0 but are reported by IsEmpty.
type Sheet interface {
	Get(row, col int) (float64, error)
	Set(row, col int, value float64) error
	IsEmpty(row, col int) (bool, error)
	Width() int
	Height() int
}

// SparseSheet stores only the cells that were written.
// It is not safe for concurrent use.
type SparseSheet struct {
	cells  map[models.CellPosition]float64
	width  int
	height int
}

// NewSparseSheet creates an empty sheet.
func NewSparseSheet() *SparseSheet {
	return &SparseSheet{
		cells: make(map[models.CellPosition]float64),
	}
}

// Get returns the value at row, col, or 0 if the cell was never set.
func (s *SparseSheet) Get(row, col int) (float64, error) {
	if row < 0 || col < 0 {
		return 0, &CoordinateError{Op: "get", Row: row, Col: col}
	}
	return s.cells[models.Pos(row, col)], nil
}

// Set stores value at row, col and grows the sheet bounds to include it.
func (s *SparseSheet) Set(row, col int, value float64) error {
	if row < 0 || col < 0 {
		return &CoordinateError{Op: "set", Row: row, Col: col}
	}
	s.cells[models.Pos(row, col)] = value
	s.height = max(s.height, extent(row))
	s.width = max(s.width, extent(col))
	return nil
}

// extent returns i+1, saturating at math.MaxInt.
func extent(i int) int {
	if i == math.MaxInt {
		return i
	}
	return i + 1
}

// IsEmpty reports whether row, col has never been set.
func (s *SparseSheet) IsEmpty(row, col int) (bool, error) {
	if row < 0 || col < 0 {
		return false, &CoordinateError{Op: "is_empty", Row: row, Col: col}
	}
	_, ok := s.cells[models.Pos(row, col)]
	return !ok, nil
}

// Width returns one more than the highest column ever set.
// A cell at column math.MaxInt yields math.MaxInt.
func (s *SparseSheet) Width() int {
	return s.width
}

// Height returns one more than the highest row ever set.
func (s *SparseSheet) Height() int {
	return s.height
}

// Len returns the number of stored cells.
func (s *SparseSheet) Len() int {
	return len(s.cells)
}
