package macro

import (
	"github.com/ukaji3/sparsesheet-go/pkg/sparsesheet"
	"github.com/ukaji3/sparsesheet-go/pkg/sparsesheet/models"
)

// RangeAssign fills a range with an arithmetic sequence.
type RangeAssign struct {
	area      models.Range
	start     float64
	increment float64
}

// NewRangeAssign creates a macro that writes start, start+increment, ... into
// fromRow, fromCol to toRow, toCol in row-major order. increment may be zero
// or negative.
func NewRangeAssign(fromRow, fromCol, toRow, toCol int, start, increment float64) (*RangeAssign, error) {
	area := models.NewRange(fromRow, fromCol, toRow, toCol)
	if err := sparsesheet.ValidateRange(NameRangeAssign, area); err != nil {
		return nil, err
	}
	return &RangeAssign{area: area, start: start, increment: increment}, nil
}

// Range returns the cells the macro writes.
func (m *RangeAssign) Range() models.Range {
	return m.area
}

// Execute writes the sequence, advancing the running value after each cell.
func (m *RangeAssign) Execute(sheet sparsesheet.Sheet) error {
	value := m.start
	for pos := range m.area.Positions() {
		if err := sheet.Set(pos.Row, pos.Col, value); err != nil {
			return err
		}
		value += m.increment
	}
	return nil
}
