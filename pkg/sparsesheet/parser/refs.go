// Package parser converts the human notation used by the command layer into
// sheet coordinates.
//
// Rows are labelled with letters (A, B, ..., Z, AA, ...) and columns with
// 1-based numbers, so "B3" names row 1, column 2 (0-based).
package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/sparsesheet-go/pkg/sparsesheet/models"
	"github.com/xuri/excelize/v2"
)

// ErrInvalidReference indicates a row label, column number or cell reference
// that could not be parsed.
var ErrInvalidReference = errors.New("invalid reference")

// ErrInvalidNumber indicates a value token that is not a finite number.
var ErrInvalidNumber = errors.New("invalid number")

// RowIndex converts a row label to a 0-based row index.
func RowIndex(label string) (int, error) {
	n, err := excelize.ColumnNameToNumber(strings.TrimSpace(label))
	if err != nil {
		return 0, fmt.Errorf("%w: row %q: %v", ErrInvalidReference, label, err)
	}
	return n - 1, nil
}

// RowLabel converts a 0-based row index to its letter label.
func RowLabel(row int) (string, error) {
	name, err := excelize.ColumnNumberToName(row + 1)
	if err != nil {
		return "", fmt.Errorf("%w: row %d: %v", ErrInvalidReference, row, err)
	}
	return name, nil
}

// ColumnIndex converts a 1-based column number token to a 0-based index.
// Zero and negative numbers are returned as negative indexes and left to the
// sheet or macro validation to reject; math.MinInt has no index and is an error.
func ColumnIndex(token string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil || n == math.MinInt {
		return 0, fmt.Errorf("%w: column %q", ErrInvalidReference, token)
	}
	return n - 1, nil
}

// ParseNumber parses a cell value token.
func ParseNumber(token string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, token)
	}
	return f, nil
}

// ParseCell parses a reference such as "B3" or "$B$3".
func ParseCell(ref string) (models.CellPosition, error) {
	label, col, err := excelize.SplitCellName(strings.TrimSpace(ref))
	if err != nil {
		return models.CellPosition{}, fmt.Errorf("%w: cell %q: %v", ErrInvalidReference, ref, err)
	}
	row, err := RowIndex(label)
	if err != nil {
		return models.CellPosition{}, err
	}
	return models.Pos(row, col-1), nil
}

// ParseRange parses a reference such as "A1:C5". A single cell reference
// yields a one-cell range. The corners are returned as written.
func ParseRange(ref string) (models.Range, error) {
	ref = strings.ReplaceAll(strings.TrimSpace(ref), "$", "")

	parts := strings.Split(ref, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return models.Range{}, fmt.Errorf("%w: range %q", ErrInvalidReference, ref)
	}

	start, err := ParseCell(parts[0])
	if err != nil {
		return models.Range{}, err
	}
	end, err := ParseCell(parts[1])
	if err != nil {
		return models.Range{}, err
	}

	return models.NewRange(start.Row, start.Col, end.Row, end.Col), nil
}

// CellName formats a 0-based position as a reference such as "B3".
func CellName(pos models.CellPosition) (string, error) {
	label, err := RowLabel(pos.Row)
	if err != nil {
		return "", err
	}
	if pos.Col < 0 {
		return "", fmt.Errorf("%w: column %d", ErrInvalidReference, pos.Col)
	}
	return label + strconv.Itoa(pos.Col+1), nil
}

// RangeName formats a range as a reference such as "A1:C5".
func RangeName(r models.Range) (string, error) {
	start, err := CellName(r.Start())
	if err != nil {
		return "", err
	}
	end, err := CellName(r.End())
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s", start, end), nil
}
