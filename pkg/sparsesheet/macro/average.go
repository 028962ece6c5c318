package macro

import (
	"github.com/ukaji3/sparsesheet-go/pkg/sparsesheet"
	"github.com/ukaji3/sparsesheet-go/pkg/sparsesheet/models"
)

// Average writes the mean of a range into a cell of that range.
type Average struct {
	area models.Range
	dest models.CellPosition
}

// NewAverage creates a macro that averages fromRow, fromCol to toRow, toCol
// and stores the result at destRow, destCol. The destination must lie inside
// the range.
func NewAverage(fromRow, fromCol, toRow, toCol, destRow, destCol int) (*Average, error) {
	area := models.NewRange(fromRow, fromCol, toRow, toCol)
	dest := models.Pos(destRow, destCol)
	if err := sparsesheet.ValidateRange(NameAverage, area); err != nil {
		return nil, err
	}
	if err := sparsesheet.ValidateDestination(NameAverage, area, dest); err != nil {
		return nil, err
	}
	return &Average{area: area, dest: dest}, nil
}

// Range returns the cells the macro reads.
func (m *Average) Range() models.Range {
	return m.area
}

// Destination returns the cell the macro writes.
func (m *Average) Destination() models.CellPosition {
	return m.dest
}

// Execute sums the range, empty cells counting as 0, and overwrites the
// destination with the mean. The destination's old value is part of the sum.
func (m *Average) Execute(sheet sparsesheet.Sheet) error {
	var sum float64
	for pos := range m.area.Positions() {
		v, err := sheet.Get(pos.Row, pos.Col)
		if err != nil {
			return err
		}
		sum += v
	}
	return sheet.Set(m.dest.Row, m.dest.Col, sum/m.area.Count())
}
