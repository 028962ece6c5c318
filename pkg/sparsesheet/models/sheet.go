package models

// CellRow represents the populated cells of one row inside a view.
type CellRow struct {
	// R is the row index (0-based).
	R int `json:"r"`
	// C maps column index (0-based) to cell value. Empty cells are absent.
	C map[int]float64 `json:"c"`
}

// SheetView represents a slice of a sheet restricted to an area.
type SheetView struct {
	// Area is the rectangle the view covers.
	Area Range `json:"area"`
	// Rows contains the rows within the area that hold at least one value,
	// in ascending order.
	Rows []CellRow `json:"rows,omitempty"`
	// Width is the sheet width when the view was taken.
	Width int `json:"width"`
	// Height is the sheet height when the view was taken.
	Height int `json:"height"`
}

// Value returns the value at row, col and whether the view holds an entry for it.
func (v SheetView) Value(row, col int) (float64, bool) {
	for _, r := range v.Rows {
		if r.R == row {
			val, ok := r.C[col]
			return val, ok
		}
	}
	return 0, false
}
