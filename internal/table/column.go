package table

import (
	"fmt"
	"maps"
	"slices"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// Column is a named, typed sequence of cells backed by an Arrow array.
//
// Numeric columns keep their values in a Float64 array and text columns in a
// String array, with nulls tracked by the Arrow validity bitmap. A numeric
// column may additionally hold out-of-band text literals (for example the
// outlier marker written by the cleaner); those live in literals and the
// matching Arrow slot is null.
type Column struct {
	name     string
	kind     Kind
	position int
	mem      memory.Allocator
	array    arrow.Array
	literals map[int]string
}

// NewColumn creates a column of the given kind from cells
func NewColumn(name string, kind Kind, cells []Cell, mem memory.Allocator) *Column {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}
	c := &Column{
		name:     name,
		kind:     kind,
		position: -1,
		mem:      mem,
	}
	c.array, c.literals = c.build(len(cells), func(i int) Cell { return cells[i] })
	return c
}

// NewNumeric creates a numeric column. valid may be nil, in which case every
// value is present; otherwise valid[i] == false marks row i as null.
func NewNumeric(name string, values []float64, valid []bool, mem memory.Allocator) *Column {
	cells := make([]Cell, len(values))
	for i, v := range values {
		if valid != nil && !valid[i] {
			cells[i] = Null()
			continue
		}
		cells[i] = Number(v)
	}
	return NewColumn(name, Numeric, cells, mem)
}

// NewText creates a text column. valid follows the NewNumeric convention.
func NewText(name string, values []string, valid []bool, mem memory.Allocator) *Column {
	cells := make([]Cell, len(values))
	for i, v := range values {
		if valid != nil && !valid[i] {
			cells[i] = Null()
			continue
		}
		cells[i] = TextCell(v)
	}
	return NewColumn(name, Text, cells, mem)
}

// build materializes cells into an Arrow array of the column's kind
func (c *Column) build(n int, cellAt func(i int) Cell) (arrow.Array, map[int]string) {
	literals := make(map[int]string)

	if c.kind == Numeric {
		builder := array.NewFloat64Builder(c.mem)
		defer builder.Release()
		builder.Reserve(n)
		for i := 0; i < n; i++ {
			cell := cellAt(i)
			switch {
			case cell.IsNumber():
				builder.Append(cell.Number)
			case cell.IsText():
				literals[i] = cell.Text
				builder.AppendNull()
			default:
				builder.AppendNull()
			}
		}
		return builder.NewArray(), literals
	}

	builder := array.NewStringBuilder(c.mem)
	defer builder.Release()
	builder.Reserve(n)
	for i := 0; i < n; i++ {
		cell := cellAt(i)
		if cell.IsNull() {
			builder.AppendNull()
			continue
		}
		builder.Append(cell.String())
	}
	return builder.NewArray(), literals
}

// Name returns the column name
func (c *Column) Name() string {
	return c.name
}

// Kind returns the declared kind
func (c *Column) Kind() Kind {
	return c.kind
}

// Position returns the zero-based index of the column in its table, or -1
// when the column has not been added to a table.
func (c *Column) Position() int {
	return c.position
}

// Len returns the number of cells
func (c *Column) Len() int {
	if c.array == nil {
		return 0
	}
	return c.array.Len()
}

// DataType returns the Arrow data type of the backing array
func (c *Column) DataType() arrow.DataType {
	return c.kind.DataType()
}

// Cell returns the cell at row i
func (c *Column) Cell(i int) Cell {
	if text, ok := c.literals[i]; ok {
		return TextCell(text)
	}
	if c.array.IsNull(i) {
		return Null()
	}
	switch arr := c.array.(type) {
	case *array.Float64:
		return Number(arr.Value(i))
	case *array.String:
		return TextCell(arr.Value(i))
	default:
		panic(fmt.Sprintf("unsupported array type: %T", arr))
	}
}

// Cells returns a copy of all cells in row order
func (c *Column) Cells() []Cell {
	cells := make([]Cell, c.Len())
	for i := range cells {
		cells[i] = c.Cell(i)
	}
	return cells
}

// IsNull checks if the value at index is null
func (c *Column) IsNull(i int) bool {
	if _, ok := c.literals[i]; ok {
		return false
	}
	return c.array.IsNull(i)
}

// NullCount returns the number of null cells
func (c *Column) NullCount() int {
	return c.array.NullN() - len(c.literals)
}

// Numbers returns the numeric cells in row order, skipping nulls and text
func (c *Column) Numbers() []float64 {
	arr, ok := c.array.(*array.Float64)
	if !ok {
		return nil
	}
	values := make([]float64, 0, arr.Len()-arr.NullN())
	for i := 0; i < arr.Len(); i++ {
		if arr.IsValid(i) {
			values = append(values, arr.Value(i))
		}
	}
	return values
}

// HasLiteral reports whether a numeric column holds the given text literal
func (c *Column) HasLiteral(text string) bool {
	for _, lit := range c.literals {
		if lit == text {
			return true
		}
	}
	return false
}

// LiteralRows returns the sorted row indexes holding text literals
func (c *Column) LiteralRows() []int {
	return slices.Sorted(maps.Keys(c.literals))
}

// Replace rebuilds the column, calling fn for every cell. When fn returns
// true its cell replaces the original. The number of replaced cells is
// returned; the column is only rebuilt when at least one cell changes.
func (c *Column) Replace(fn func(i int, cell Cell) (Cell, bool)) int {
	n := c.Len()
	next := make([]Cell, n)
	replaced := 0
	for i := 0; i < n; i++ {
		cell := c.Cell(i)
		if repl, ok := fn(i, cell); ok {
			next[i] = repl
			replaced++
			continue
		}
		next[i] = cell
	}
	if replaced == 0 {
		return 0
	}

	arr, literals := c.build(n, func(i int) Cell { return next[i] })
	c.array.Release()
	c.array = arr
	c.literals = literals
	return replaced
}

// String returns a string representation of the column
func (c *Column) String() string {
	return fmt.Sprintf("Column[%s]: %s (len=%d, nulls=%d)", c.kind, c.name, c.Len(), c.NullCount())
}

// Array returns the underlying Arrow array (retains a reference)
func (c *Column) Array() arrow.Array {
	if c.array != nil {
		c.array.Retain()
		return c.array
	}
	return nil
}

// Release releases the underlying Arrow memory
func (c *Column) Release() {
	if c != nil && c.array != nil {
		c.array.Release()
		c.array = nil
	}
}
