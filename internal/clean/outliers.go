package clean

import (
	"github.com/paveg/tabclean/internal/table"
	"github.com/paveg/tabclean/internal/validation"
)

// fenceFactor scales the IQR into the outlier fences.
const fenceFactor = 1.5

// Bounds are the quartiles and Tukey fences of a numeric column.
type Bounds struct {
	Q1    float64 `json:"q1" yaml:"q1"`
	Q3    float64 `json:"q3" yaml:"q3"`
	IQR   float64 `json:"iqr" yaml:"iqr"`
	Lower float64 `json:"lower" yaml:"lower"`
	Upper float64 `json:"upper" yaml:"upper"`
}

// Outside reports whether v lies strictly below the lower fence or strictly
// above the upper one. A NaN fence never excludes a value.
func (b Bounds) Outside(v float64) bool {
	return v < b.Lower || v > b.Upper
}

// ComputeBounds returns the fences of a numeric column computed over its
// numeric cells. Nulls and text cells are excluded. ok is false for text
// columns and for columns without any numeric cell.
func ComputeBounds(col *table.Column) (Bounds, bool) {
	if col.Kind() != table.Numeric {
		return Bounds{}, false
	}
	values := col.Numbers()
	if len(values) == 0 {
		return Bounds{}, false
	}

	q1 := Quantile(values, 0.25)
	q3 := Quantile(values, 0.75)
	iqr := q3 - q1
	return Bounds{
		Q1:    q1,
		Q3:    q3,
		IQR:   iqr,
		Lower: q1 - fenceFactor*iqr,
		Upper: q3 + fenceFactor*iqr,
	}, true
}

// ColumnBounds returns the fences of the named column
func (c *Cleaner) ColumnBounds(t *table.Table, name string) (Bounds, bool, error) {
	if err := validation.ValidateColumns(t, "ColumnBounds", name); err != nil {
		return Bounds{}, false, err
	}
	col, _ := t.Column(name)
	b, ok := ComputeBounds(col)
	return b, ok, nil
}

// FlagOutliers replaces, in place, every numeric value lying outside the
// fences of its column with OutlierText and returns t.
//
// A numeric column that already holds OutlierText was flagged by an earlier
// run and is left alone, so running the pass twice gives the same table.
func (c *Cleaner) FlagOutliers(t *table.Table) *table.Table {
	for i := 0; i < t.Width(); i++ {
		col := t.ColumnAt(i)
		if col.Kind() != table.Numeric {
			continue
		}
		if col.HasLiteral(OutlierText) {
			c.logger.Debug("skipping flagged column", "column", col.Name())
			continue
		}
		bounds, ok := ComputeBounds(col)
		if !ok {
			continue
		}
		n := col.Replace(func(_ int, cell table.Cell) (table.Cell, bool) {
			if !cell.IsNumber() || !bounds.Outside(cell.Number) {
				return cell, false
			}
			return table.TextCell(OutlierText), true
		})
		c.logger.Debug("flagged outliers",
			"column", col.Name(),
			"q1", bounds.Q1,
			"q3", bounds.Q3,
			"lower", bounds.Lower,
			"upper", bounds.Upper,
			"cells", n)
	}
	return t
}

// FlagOutliers flags outliers using the default cleaner
func FlagOutliers(t *table.Table) *table.Table {
	return defaultCleaner.FlagOutliers(t)
}
