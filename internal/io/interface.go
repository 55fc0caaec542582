// Package io loads tables from files.
//
// This package includes readers for comma-delimited text and for the first
// table embedded in an HTML document, with per-column kind inference. Load
// picks the reader from the file extension.
//
// Key components:
//   - DataReader interface for pluggable readers
//   - CSVReader for delimited text
//   - HTMLReader for <table> markup
//   - Kind inference deciding Numeric or Text once per column
//
// Memory management: tables are backed by Apache Arrow arrays and must be
// released by the caller.
package io

import (
	"io"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/paveg/tabclean/internal/table"
)

// DataReader defines the interface for reading a table from a source
type DataReader interface {
	// Read reads data from the source and returns a Table
	Read() (*table.Table, error)
}

// DefaultNullValues are the cell strings read as missing values.
var DefaultNullValues = []string{
	"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None",
	"n/a", "nan", "null",
}

// CSVOptions contains configuration options for CSV reading
type CSVOptions struct {
	// Delimiter is the field delimiter (default: comma)
	Delimiter rune
	// Comment is the comment character (default: 0 = disabled)
	Comment rune
	// Header indicates whether the first row contains headers
	Header bool
	// SkipInitialSpace indicates whether to skip initial whitespace
	SkipInitialSpace bool
	// NullValues are extra strings read as nulls, on top of DefaultNullValues
	NullValues []string
}

// DefaultCSVOptions returns default CSV options
func DefaultCSVOptions() CSVOptions {
	return CSVOptions{
		Delimiter:        ',',
		Comment:          0,
		Header:           true,
		SkipInitialSpace: false,
	}
}

// HTMLOptions contains configuration options for HTML table reading
type HTMLOptions struct {
	// NullValues are extra strings read as nulls, on top of DefaultNullValues
	NullValues []string
	// Thousands is the digit grouping separator dropped from numbers
	// (default: comma, 0 = none)
	Thousands rune
}

// DefaultHTMLOptions returns default HTML options
func DefaultHTMLOptions() HTMLOptions {
	return HTMLOptions{Thousands: ','}
}

// Options configures Load.
type Options struct {
	CSV       CSVOptions
	HTML      HTMLOptions
	Allocator memory.Allocator
}

// DefaultOptions returns default load options
func DefaultOptions() Options {
	return Options{
		CSV:       DefaultCSVOptions(),
		HTML:      DefaultHTMLOptions(),
		Allocator: memory.NewGoAllocator(),
	}
}

// CSVReader reads CSV data and converts it to a Table
type CSVReader struct {
	reader  io.Reader
	options CSVOptions
	mem     memory.Allocator
}

// NewCSVReader creates a new CSV reader with the specified options
func NewCSVReader(reader io.Reader, options CSVOptions, mem memory.Allocator) *CSVReader {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}
	return &CSVReader{
		reader:  reader,
		options: options,
		mem:     mem,
	}
}

// HTMLReader reads the first <table> of an HTML document into a Table
type HTMLReader struct {
	reader  io.Reader
	options HTMLOptions
	mem     memory.Allocator
}

// NewHTMLReader creates a new HTML reader with the specified options
func NewHTMLReader(reader io.Reader, options HTMLOptions, mem memory.Allocator) *HTMLReader {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}
	return &HTMLReader{
		reader:  reader,
		options: options,
		mem:     mem,
	}
}
