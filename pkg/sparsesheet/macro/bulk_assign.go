package macro

import (
	"github.com/ukaji3/sparsesheet-go/pkg/sparsesheet"
	"github.com/ukaji3/sparsesheet-go/pkg/sparsesheet/models"
)

// BulkAssign fills a range with one value.
type BulkAssign struct {
	area  models.Range
	value float64
}

// NewBulkAssign creates a macro that sets every cell from fromRow, fromCol to
// toRow, toCol inclusive to value.
func NewBulkAssign(fromRow, fromCol, toRow, toCol int, value float64) (*BulkAssign, error) {
	area := models.NewRange(fromRow, fromCol, toRow, toCol)
	if err := sparsesheet.ValidateRange(NameBulkAssign, area); err != nil {
		return nil, err
	}
	return &BulkAssign{area: area, value: value}, nil
}

// Range returns the cells the macro writes.
func (m *BulkAssign) Range() models.Range {
	return m.area
}

// Execute sets every cell of the range, row by row.
func (m *BulkAssign) Execute(sheet sparsesheet.Sheet) error {
	for pos := range m.area.Positions() {
		if err := sheet.Set(pos.Row, pos.Col, m.value); err != nil {
			return err
		}
	}
	return nil
}
