// Package render draws sheet views as text grids.
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ukaji3/sparsesheet-go/pkg/sparsesheet/models"
	"github.com/ukaji3/sparsesheet-go/pkg/sparsesheet/parser"
)

// Options configures grid rendering.
type Options struct {
	// Precision is the number of decimals printed, or -1 for the shortest
	// exact representation.
	Precision int
	// MaxRows and MaxCols clip the grid. Zero means unlimited.
	MaxRows int
	MaxCols int
}

// DefaultOptions returns default render options.
func DefaultOptions() Options {
	return Options{
		Precision: -1,
		MaxRows:   50,
		MaxCols:   20,
	}
}

// FormatValue formats a cell value with the given precision.
func FormatValue(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// Clip shrinks area to the row and column limits of opts.
// It reports whether anything was cut.
func (o Options) Clip(area models.Range) (models.Range, bool) {
	clipped := false
	if o.MaxRows > 0 && area.Rows() > o.MaxRows {
		area.ToRow = area.FromRow + o.MaxRows - 1
		clipped = true
	}
	if o.MaxCols > 0 && area.Cols() > o.MaxCols {
		area.ToCol = area.FromCol + o.MaxCols - 1
		clipped = true
	}
	return area, clipped
}

// Table writes view as a grid with row labels down the side and column
// numbers across the top. Empty cells are left blank.
func Table(w io.Writer, view models.SheetView, opts Options) error {
	area := view.Area

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	// Header
	header := make(table.Row, 0, area.Cols()+1)
	header = append(header, "")
	for col := area.FromCol; col <= area.ToCol; col++ {
		header = append(header, col+1)
	}
	t.AppendHeader(header)

	// Rows
	for row := area.FromRow; row <= area.ToRow; row++ {
		label, err := parser.RowLabel(row)
		if err != nil {
			return err
		}
		r := make(table.Row, 0, area.Cols()+1)
		r = append(r, label)
		for col := area.FromCol; col <= area.ToCol; col++ {
			if v, ok := view.Value(row, col); ok {
				r = append(r, FormatValue(v, opts.Precision))
			} else {
				r = append(r, "")
			}
		}
		t.AppendRow(r)
	}

	t.Render()

	name, err := parser.RangeName(area)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "(%s, sheet %dx%d)\n", name, view.Height, view.Width)
	return err
}
