package table

import (
	"strconv"
)

// CellType tells which of the three cell shapes a Cell holds.
type CellType int

const (
	// CellNull marks a missing value.
	CellNull CellType = iota
	// CellNumber holds a float64.
	CellNumber
	// CellText holds a string.
	CellText
)

// Cell is one value of a column.
type Cell struct {
	Type   CellType
	Number float64
	Text   string
}

// Null returns a missing cell
func Null() Cell {
	return Cell{Type: CellNull}
}

// Number returns a numeric cell
func Number(v float64) Cell {
	return Cell{Type: CellNumber, Number: v}
}

// TextCell returns a text cell
func TextCell(s string) Cell {
	return Cell{Type: CellText, Text: s}
}

// IsNull reports whether the cell is missing
func (c Cell) IsNull() bool {
	return c.Type == CellNull
}

// IsNumber reports whether the cell holds a number
func (c Cell) IsNumber() bool {
	return c.Type == CellNumber
}

// IsText reports whether the cell holds text
func (c Cell) IsText() bool {
	return c.Type == CellText
}

// String formats the cell for display. Whole numbers print without a
// fractional part.
func (c Cell) String() string {
	switch c.Type {
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellText:
		return c.Text
	default:
		return "null"
	}
}

// Value returns the cell as a plain Go value: nil, float64 or string.
func (c Cell) Value() any {
	switch c.Type {
	case CellNumber:
		return c.Number
	case CellText:
		return c.Text
	default:
		return nil
	}
}
