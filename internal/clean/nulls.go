package clean

import (
	"github.com/paveg/tabclean/internal/table"
)

// ColumnNulls is the null count of one column.
type ColumnNulls struct {
	Name  string `json:"column" yaml:"column"`
	Count int    `json:"nulls" yaml:"nulls"`
}

// NullReport holds per-column null counts in table column order and their sum.
type NullReport struct {
	Columns []ColumnNulls `json:"columns" yaml:"columns"`
	Total   int           `json:"total" yaml:"total"`
}

// Count returns the null count of the named column
func (r NullReport) Count(name string) (int, bool) {
	for _, c := range r.Columns {
		if c.Name == name {
			return c.Count, true
		}
	}
	return 0, false
}

// IdentifyNulls counts null cells per column and across the whole table.
// The table is not modified.
func (c *Cleaner) IdentifyNulls(t *table.Table) NullReport {
	report := NullReport{Columns: make([]ColumnNulls, 0, t.Width())}
	for i := 0; i < t.Width(); i++ {
		col := t.ColumnAt(i)
		n := col.NullCount()
		report.Columns = append(report.Columns, ColumnNulls{Name: col.Name(), Count: n})
		report.Total += n
	}
	c.logger.Debug("identified nulls", "columns", t.Width(), "total", report.Total)
	return report
}

// IdentifyNulls counts null cells using the default cleaner
func IdentifyNulls(t *table.Table) NullReport {
	return defaultCleaner.IdentifyNulls(t)
}
