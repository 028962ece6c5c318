package models

import (
	"iter"
	"math"
)

// Range represents an inclusive rectangle of cells.
type Range struct {
	// FromRow is the start row (0-based).
	FromRow int `json:"from_row"`
	// FromCol is the start column (0-based).
	FromCol int `json:"from_col"`
	// ToRow is the end row (0-based, inclusive).
	ToRow int `json:"to_row"`
	// ToCol is the end column (0-based, inclusive).
	ToCol int `json:"to_col"`
}

// NewRange returns the range spanning the two corners as given.
// No validation is done here; see sparsesheet.ValidateRange.
func NewRange(fromRow, fromCol, toRow, toCol int) Range {
	return Range{FromRow: fromRow, FromCol: fromCol, ToRow: toRow, ToCol: toCol}
}

// Start returns the top-left corner.
func (r Range) Start() CellPosition {
	return CellPosition{Row: r.FromRow, Col: r.FromCol}
}

// End returns the bottom-right corner.
func (r Range) End() CellPosition {
	return CellPosition{Row: r.ToRow, Col: r.ToCol}
}

// HasNegative reports whether any bound is below zero.
func (r Range) HasNegative() bool {
	return r.FromRow < 0 || r.FromCol < 0 || r.ToRow < 0 || r.ToCol < 0
}

// IsInverted reports whether a start bound exceeds its end bound.
func (r Range) IsInverted() bool {
	return r.FromRow > r.ToRow || r.FromCol > r.ToCol
}

// Rows returns the number of rows covered, saturating at math.MaxInt.
func (r Range) Rows() int {
	return span(r.FromRow, r.ToRow)
}

// Cols returns the number of columns covered, saturating at math.MaxInt.
func (r Range) Cols() int {
	return span(r.FromCol, r.ToCol)
}

// Size returns the number of cells covered, saturating at math.MaxInt.
func (r Range) Size() int {
	rows, cols := r.Rows(), r.Cols()
	if rows > 0 && cols > math.MaxInt/rows {
		return math.MaxInt
	}
	return rows * cols
}

// Count returns the number of cells covered as a float, without saturation.
func (r Range) Count() float64 {
	return (float64(r.ToRow-r.FromRow) + 1) * (float64(r.ToCol-r.FromCol) + 1)
}

func span(from, to int) int {
	d := to - from
	if d == math.MaxInt {
		return d
	}
	return d + 1
}

// Contains reports whether row, col lies inside the range.
func (r Range) Contains(row, col int) bool {
	return row >= r.FromRow && row <= r.ToRow && col >= r.FromCol && col <= r.ToCol
}

// Positions yields every cell of the range in row-major order.
func (r Range) Positions() iter.Seq[CellPosition] {
	return func(yield func(CellPosition) bool) {
		if r.IsInverted() {
			return
		}
		// stop on the last index before incrementing so ToRow or ToCol
		// at math.MaxInt cannot wrap
		for row := r.FromRow; ; row++ {
			for col := r.FromCol; ; col++ {
				if !yield(CellPosition{Row: row, Col: col}) {
					return
				}
				if col == r.ToCol {
					break
				}
			}
			if row == r.ToRow {
				break
			}
		}
	}
}
