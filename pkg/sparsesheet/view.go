package sparsesheet

import (
	"github.com/ukaji3/sparsesheet-go/pkg/sparsesheet/models"
)

// UsedRange returns the rectangle from A1 to the sheet bounds.
// ok is false when nothing was ever written.
func UsedRange(s Sheet) (r models.Range, ok bool) {
	if s.Width() == 0 || s.Height() == 0 {
		return models.Range{}, false
	}
	return models.NewRange(0, 0, s.Height()-1, s.Width()-1), true
}

// View collects the populated cells of s inside area.
func View(s Sheet, area models.Range) (models.SheetView, error) {
	if err := ValidateRange("view", area); err != nil {
		return models.SheetView{}, err
	}

	view := models.SheetView{
		Area:   area,
		Width:  s.Width(),
		Height: s.Height(),
	}

	var current *models.CellRow
	for pos := range area.Positions() {
		empty, err := s.IsEmpty(pos.Row, pos.Col)
		if err != nil {
			return models.SheetView{}, err
		}
		if empty {
			continue
		}
		value, err := s.Get(pos.Row, pos.Col)
		if err != nil {
			return models.SheetView{}, err
		}
		if current == nil || current.R != pos.Row {
			view.Rows = append(view.Rows, models.CellRow{R: pos.Row, C: make(map[int]float64)})
			current = &view.Rows[len(view.Rows)-1]
		}
		current.C[pos.Col] = value
	}

	return view, nil
}
