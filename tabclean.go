// Package tabclean loads tables from .csv and .html files and cleans them:
// it reports missing values, fills them by column position and flags
// numeric values outside the interquartile fences of their column.
//
// A typical run fills before flagging, since fill values take part in the
// quartiles of the outlier pass:
//
//	t, err := tabclean.Load("data.csv")
//	if err != nil {
//		return err
//	}
//	defer t.Release()
//
//	before := tabclean.IdentifyNulls(t)
//	tabclean.FlagOutliers(tabclean.FillNulls(t))
//
// Tables are backed by Apache Arrow memory and must be released.
package tabclean

import (
	"log/slog"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/paveg/tabclean/internal/clean"
	tberrors "github.com/paveg/tabclean/internal/errors"
	tbio "github.com/paveg/tabclean/internal/io"
	"github.com/paveg/tabclean/internal/table"
)

// Table is an ordered set of named, typed columns sharing a row count.
type Table = table.Table

// Column is one named column of a Table.
type Column = table.Column

// Cell is one value of a column: null, a number or text.
type Cell = table.Cell

// Kind is the declared type of a column.
type Kind = table.Kind

// Column kinds
const (
	Numeric = table.Numeric
	Text    = table.Text
)

// NullReport holds per-column null counts in column order and their total.
type NullReport = clean.NullReport

// ColumnNulls is the null count of one column.
type ColumnNulls = clean.ColumnNulls

// Bounds are the quartiles and outlier fences of a numeric column.
type Bounds = clean.Bounds

// UnsupportedFormatError is returned by Load for extensions other than csv
// and html.
type UnsupportedFormatError = tberrors.UnsupportedFormatError

// TableError describes a structural failure such as mismatched column
// lengths, duplicate names or an HTML document without a table.
type TableError = tberrors.TableError

// Replacement values written by FillNulls and FlagOutliers
const (
	PrimeFill   = clean.PrimeFill
	DefaultFill = clean.DefaultFill
	NullText    = clean.NullText
	OutlierText = clean.OutlierText
)

// LoadOption configures Load.
type LoadOption func(*tbio.Options)

// WithAllocator sets the Arrow allocator backing the loaded table
func WithAllocator(mem memory.Allocator) LoadOption {
	return func(o *tbio.Options) {
		o.Allocator = mem
	}
}

// WithDelimiter sets the CSV field delimiter
func WithDelimiter(r rune) LoadOption {
	return func(o *tbio.Options) {
		o.CSV.Delimiter = r
	}
}

// WithComment sets the CSV comment character
func WithComment(r rune) LoadOption {
	return func(o *tbio.Options) {
		o.CSV.Comment = r
	}
}

// WithNullValues adds cell values read as null by every reader
func WithNullValues(values ...string) LoadOption {
	return func(o *tbio.Options) {
		o.CSV.NullValues = append(o.CSV.NullValues, values...)
		o.HTML.NullValues = append(o.HTML.NullValues, values...)
	}
}

// Load reads a table from a .csv or .html file. The extension is the text
// after the last '.' of path; any other extension yields an
// *UnsupportedFormatError naming it.
func Load(path string, opts ...LoadOption) (*Table, error) {
	o := tbio.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return tbio.Load(path, o)
}

// NewTable builds a table from columns; positions follow argument order.
func NewTable(columns ...*Column) (*Table, error) {
	return table.New(columns...)
}

// NewNumericColumn builds a numeric column. valid marks non-null rows; a nil
// valid slice means no nulls.
func NewNumericColumn(name string, values []float64, valid []bool, mem memory.Allocator) *Column {
	return table.NewNumeric(name, values, valid, mem)
}

// NewTextColumn builds a text column. valid marks non-null rows; a nil valid
// slice means no nulls.
func NewTextColumn(name string, values []string, valid []bool, mem memory.Allocator) *Column {
	return table.NewText(name, values, valid, mem)
}

// IdentifyNulls counts null cells per column and in total
func IdentifyNulls(t *Table) NullReport {
	return clean.IdentifyNulls(t)
}

// FillNulls replaces nulls in place: numeric columns at a prime position get
// PrimeFill, other numeric columns DefaultFill and text columns NullText.
func FillNulls(t *Table) *Table {
	return clean.FillNulls(t)
}

// FlagOutliers replaces in place every numeric value outside
// [Q1 - 1.5*IQR, Q3 + 1.5*IQR] of its column with OutlierText.
func FlagOutliers(t *Table) *Table {
	return clean.FlagOutliers(t)
}

// ComputeBounds returns the fences used by FlagOutliers for col. ok is false
// for text columns and columns without numbers.
func ComputeBounds(col *Column) (b Bounds, ok bool) {
	return clean.ComputeBounds(col)
}

// Cleaner runs the cleaning passes with a logger.
type Cleaner = clean.Cleaner

// NewCleaner returns a Cleaner logging per-column decisions to logger at
// debug level.
func NewCleaner(logger *slog.Logger) *Cleaner {
	return clean.New(clean.WithLogger(logger))
}
