package clean

import (
	"github.com/paveg/tabclean/internal/table"
)

// FillValue returns the cell that replaces nulls in a column of the given
// kind at the given position.
func FillValue(kind table.Kind, position int) table.Cell {
	if kind == table.Text {
		return table.TextCell(NullText)
	}
	if IsPrime(position) {
		return table.Number(PrimeFill)
	}
	return table.Number(DefaultFill)
}

// FillNulls replaces every null cell in place and returns t. Numeric columns
// whose position in the table is prime receive PrimeFill, other numeric
// columns DefaultFill, and text columns NullText. The position counts every
// column, numeric or not.
func (c *Cleaner) FillNulls(t *table.Table) *table.Table {
	for i := 0; i < t.Width(); i++ {
		col := t.ColumnAt(i)
		if col.NullCount() == 0 {
			continue
		}
		fill := FillValue(col.Kind(), i)
		n := col.Replace(func(_ int, cell table.Cell) (table.Cell, bool) {
			return fill, cell.IsNull()
		})
		c.logger.Debug("filled nulls",
			"column", col.Name(),
			"position", i,
			"kind", col.Kind().String(),
			"value", fill.String(),
			"cells", n)
	}
	return t
}

// FillNulls replaces null cells using the default cleaner
func FillNulls(t *table.Table) *table.Table {
	return defaultCleaner.FillNulls(t)
}
