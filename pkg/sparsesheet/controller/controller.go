// Package controller interprets text instructions against a macro sheet.
//
// Instructions are whitespace-separated tokens. Rows are given as letters and
// columns as 1-based numbers, e.g. "bulk-assign-value A 1 B 4 100" sets the
// eight cells A1:B4 to 100.
package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/ukaji3/sparsesheet-go/pkg/sparsesheet"
	"github.com/ukaji3/sparsesheet-go/pkg/sparsesheet/macro"
	"github.com/ukaji3/sparsesheet-go/pkg/sparsesheet/models"
	"github.com/ukaji3/sparsesheet-go/pkg/sparsesheet/parser"
	"github.com/ukaji3/sparsesheet-go/pkg/sparsesheet/render"
)

// Instruction keywords that are not macros.
const (
	CmdAssignValue = "assign-value"
	CmdPrintValue  = "print-value"
	CmdPrintSheet  = "print-sheet"
	CmdPrintRange  = "print-range"
	CmdSize        = "size"
	CmdMenu        = "menu"
	CmdQuit        = "quit"
	CmdQuitShort   = "q"
)

// ErrUnknownInstruction indicates an instruction keyword the controller does
// not support.
var ErrUnknownInstruction = errors.New("undefined instruction")

// MacroSheet is the sheet capability the controller drives.
type MacroSheet interface {
	sparsesheet.Sheet
	ExecuteMacro(m sparsesheet.Macro) error
}

// Controller reads instructions from a TokenSource and applies them to a sheet.
// It is meant to be driven by one goroutine.
type Controller struct {
	sheet   MacroSheet
	in      TokenSource
	out     io.Writer
	opts    Options
	logger  *slog.Logger
	session string
}

// New creates a controller. A nil logger discards log output.
func New(sheet MacroSheet, in TokenSource, out io.Writer, opts Options, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	session := uuid.NewString()
	return &Controller{
		sheet:   sheet,
		in:      in,
		out:     out,
		opts:    opts,
		logger:  logger.With("session", session),
		session: session,
	}
}

// Session returns the id attached to this controller's log records.
func (c *Controller) Session() string {
	return c.session
}

// Run processes instructions until quit, end of input or ctx is done.
// Instruction errors are reported to the output and do not stop the loop;
// only read and write failures are returned.
func (c *Controller) Run(ctx context.Context) error {
	c.logger.Info("session started")
	defer c.logger.Info("session ended")

	if c.opts.ShowMenu {
		if err := c.printMenu(); err != nil {
			return err
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if c.opts.Prompt != "" {
			if _, err := io.WriteString(c.out, c.opts.Prompt); err != nil {
				return err
			}
		}

		instruction, err := c.in.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read instruction: %w", err)
		}

		if isQuit(instruction) {
			return c.writef("Thank you for using this program!\n")
		}

		err = c.ProcessCommand(instruction)
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, ErrUnknownInstruction):
			c.logger.Warn("unknown instruction", "instruction", instruction)
			if werr := c.writef("Undefined instruction: %s\n", instruction); werr != nil {
				return werr
			}
			c.discardLine()
		default:
			c.logger.Warn("instruction failed", "instruction", instruction, "error", err)
			if werr := c.writef("Error: %v\n", err); werr != nil {
				return werr
			}
			c.discardLine()
		}
	}
}

// ProcessCommand runs one instruction, reading its arguments from the token
// source. Quit keywords are handled by Run and are unknown here.
func (c *Controller) ProcessCommand(instruction string) error {
	switch strings.ToLower(instruction) {
	case CmdAssignValue:
		return c.assignValue()
	case CmdPrintValue:
		return c.printValue()
	case macro.NameBulkAssign, macro.NameAverage, macro.NameRangeAssign:
		m, err := c.readMacro(strings.ToLower(instruction))
		if err != nil {
			return err
		}
		if err := c.sheet.ExecuteMacro(m); err != nil {
			return err
		}
		c.logger.Debug("macro executed", "macro", instruction)
		return nil
	case CmdPrintSheet:
		area, ok := sparsesheet.UsedRange(c.sheet)
		if !ok {
			return c.writef("(empty sheet)\n")
		}
		return c.printArea(area)
	case CmdPrintRange:
		tok, err := c.in.Next()
		if err != nil {
			return err
		}
		area, err := parser.ParseRange(tok)
		if err != nil {
			return err
		}
		return c.printArea(area)
	case CmdSize:
		return c.writef("Width: %d, Height: %d\n", c.sheet.Width(), c.sheet.Height())
	case CmdMenu:
		return c.printMenu()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownInstruction, instruction)
	}
}

func (c *Controller) assignValue() error {
	row, col, err := c.nextCell()
	if err != nil {
		return err
	}
	value, err := c.nextValue()
	if err != nil {
		return err
	}
	if err := c.sheet.Set(row, col, value); err != nil {
		return err
	}
	c.logger.Debug("cell assigned", "row", row, "col", col, "value", value)
	return nil
}

func (c *Controller) printValue() error {
	row, col, err := c.nextCell()
	if err != nil {
		return err
	}
	value, err := c.sheet.Get(row, col)
	if err != nil {
		return err
	}
	return c.writef("Value: %s\n", render.FormatValue(value, c.opts.Render.Precision))
}

// readMacro reads the range shared by all macros and the arguments specific
// to name, then constructs the macro.
func (c *Controller) readMacro(name string) (sparsesheet.Macro, error) {
	fromRow, fromCol, err := c.nextCell()
	if err != nil {
		return nil, err
	}
	toRow, toCol, err := c.nextCell()
	if err != nil {
		return nil, err
	}

	switch name {
	case macro.NameBulkAssign:
		value, err := c.nextValue()
		if err != nil {
			return nil, err
		}
		m, err := macro.NewBulkAssign(fromRow, fromCol, toRow, toCol, value)
		if err != nil {
			return nil, err
		}
		return m, nil

	case macro.NameAverage:
		destRow, destCol, err := c.nextCell()
		if err != nil {
			return nil, err
		}
		m, err := macro.NewAverage(fromRow, fromCol, toRow, toCol, destRow, destCol)
		if err != nil {
			return nil, err
		}
		return m, nil

	default:
		start, err := c.nextValue()
		if err != nil {
			return nil, err
		}
		increment, err := c.nextValue()
		if err != nil {
			return nil, err
		}
		m, err := macro.NewRangeAssign(fromRow, fromCol, toRow, toCol, start, increment)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}

func (c *Controller) printArea(area models.Range) error {
	shown, clipped := c.opts.Render.Clip(area)
	view, err := sparsesheet.View(c.sheet, shown)
	if err != nil {
		return err
	}
	if err := render.Table(c.out, view, c.opts.Render); err != nil {
		return err
	}
	if clipped {
		name, err := parser.RangeName(area)
		if err != nil {
			return err
		}
		return c.writef("(clipped from %s)\n", name)
	}
	return nil
}

// nextCell reads a row label followed by a 1-based column number.
func (c *Controller) nextCell() (row, col int, err error) {
	tok, err := c.in.Next()
	if err != nil {
		return 0, 0, err
	}
	if row, err = parser.RowIndex(tok); err != nil {
		return 0, 0, err
	}
	if tok, err = c.in.Next(); err != nil {
		return 0, 0, err
	}
	if col, err = parser.ColumnIndex(tok); err != nil {
		return 0, 0, err
	}
	return row, col, nil
}

func (c *Controller) nextValue() (float64, error) {
	tok, err := c.in.Next()
	if err != nil {
		return 0, err
	}
	return parser.ParseNumber(tok)
}

func (c *Controller) printMenu() error {
	return c.writef("%s", menu)
}

func (c *Controller) writef(format string, args ...any) error {
	_, err := fmt.Fprintf(c.out, format, args...)
	return err
}

// discardLine drops the rest of an interactive line after a failed instruction.
func (c *Controller) discardLine() {
	if d, ok := c.in.(interface{ Discard() }); ok {
		d.Discard()
	}
}

func isQuit(instruction string) bool {
	switch strings.ToLower(instruction) {
	case CmdQuit, CmdQuitShort:
		return true
	}
	return false
}

const menu = `Supported user instructions are:
assign-value row-num col-num value (set a cell to a value)
print-value row-num col-num (print the value at a given cell)
bulk-assign-value from-row-num from-col-num to-row-num to-col-num value (set a range of cells to a value)
average from-row-num from-col-num to-row-num to-col-num dest-row-num dest-col-num (store the average of a range in one of its cells)
range-assign from-row-num from-col-num to-row-num to-col-num start-value increment (fill a range with values advancing by increment)
print-sheet (print every cell up to the sheet bounds)
print-range range (print a range such as A1:C5)
size (print the width and height of the sheet)
menu (print supported instruction list)
q or quit (quit the program)
`
