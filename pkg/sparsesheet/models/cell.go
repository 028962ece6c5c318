// Package models defines the value types shared by the sheet, its macros
// and the command layer.
package models

// CellPosition identifies a single cell.
// It is comparable and used directly as a map key.
type CellPosition struct {
	// Row is the row index (0-based).
	Row int `json:"row"`
	// Col is the column index (0-based).
	Col int `json:"col"`
}

// Pos returns the position of the cell at row, col.
func Pos(row, col int) CellPosition {
	return CellPosition{Row: row, Col: col}
}

// IsNegative reports whether either index is below zero.
func (p CellPosition) IsNegative() bool {
	return p.Row < 0 || p.Col < 0
}
