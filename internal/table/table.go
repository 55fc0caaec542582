// Package table provides the in-memory table cleaned by tabclean: an ordered
// list of named, typed columns that share a row count.
package table

import (
	"fmt"
	"strings"

	"github.com/paveg/tabclean/internal/validation"
)

// Table represents an ordered set of columns with a shared row count
type Table struct {
	columns []*Column
	index   map[string]int
	rows    int
}

// New creates a table from columns. Column positions are assigned in argument
// order. Names must be unique and every column must have the same length.
func New(columns ...*Column) (*Table, error) {
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.Name()
	}

	validator := validation.NewCompoundValidator(validation.NewUniqueNamesValidator(names, "NewTable"))
	rows := 0
	if len(columns) > 0 {
		rows = columns[0].Len()
	}
	for _, c := range columns {
		validator.Add(validation.NewLengthValidator(rows, c.Len(), "NewTable", c.Name()))
	}
	if err := validator.Validate(); err != nil {
		return nil, err
	}

	index := make(map[string]int, len(columns))
	for i, c := range columns {
		c.position = i
		index[c.Name()] = i
	}

	return &Table{
		columns: columns,
		index:   index,
		rows:    rows,
	}, nil
}

// Columns returns the names of all columns in order
func (t *Table) Columns() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name()
	}
	return names
}

// Len returns the number of rows
func (t *Table) Len() int {
	return t.rows
}

// Width returns the number of columns
func (t *Table) Width() int {
	return len(t.columns)
}

// Column returns the column with the given name
func (t *Table) Column(name string) (*Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.columns[i], true
}

// ColumnAt returns the column at position i
func (t *Table) ColumnAt(i int) *Column {
	return t.columns[i]
}

// HasColumn checks if a column exists
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Row returns the cells of row i in column order
func (t *Table) Row(i int) []Cell {
	row := make([]Cell, len(t.columns))
	for j, c := range t.columns {
		row[j] = c.Cell(i)
	}
	return row
}

// String returns a string representation of the table
func (t *Table) String() string {
	if len(t.columns) == 0 {
		return "Table[empty]"
	}

	parts := []string{fmt.Sprintf("Table[%dx%d]", t.Len(), t.Width())}
	for _, c := range t.columns {
		parts = append(parts, fmt.Sprintf("  %s: %s", c.Name(), c.Kind()))
	}
	return strings.Join(parts, "\n")
}

// Release releases the Arrow memory of every column. It is a no-op on a nil
// table.
func (t *Table) Release() {
	if t == nil {
		return
	}
	for _, c := range t.columns {
		c.Release()
	}
}
