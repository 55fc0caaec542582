package io

import (
	"os"
	"strings"

	"github.com/apache/arrow-go/v18/arrow/memory"
	tberrors "github.com/paveg/tabclean/internal/errors"
	"github.com/paveg/tabclean/internal/table"
)

// Supported file extensions
const (
	ExtCSV  = "csv"
	ExtHTML = "html"
)

// Extension returns the text after the last '.' of path, or the whole path
// when it contains no '.'.
func Extension(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return path[i+1:]
	}
	return path
}

// Load reads a table from path, choosing the reader from the file
// extension: "csv" for delimited text and "html" for the first table of an
// HTML document. Any other extension fails with
// *errors.UnsupportedFormatError before the file is opened.
func Load(path string, opts Options) (*table.Table, error) {
	mem := opts.Allocator
	if mem == nil {
		mem = memory.NewGoAllocator()
	}

	// A zero Options value reads CSV with the defaults
	if opts.CSV.Delimiter == 0 {
		comment, nulls := opts.CSV.Comment, opts.CSV.NullValues
		opts.CSV = DefaultCSVOptions()
		opts.CSV.Comment = comment
		opts.CSV.NullValues = nulls
	}

	ext := Extension(path)
	if ext != ExtCSV && ext != ExtHTML {
		return nil, &tberrors.UnsupportedFormatError{Extension: ext}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, tberrors.NewIOError("Load", path, err)
	}
	defer f.Close()

	var reader DataReader
	switch ext {
	case ExtCSV:
		reader = NewCSVReader(f, opts.CSV, mem)
	case ExtHTML:
		reader = NewHTMLReader(f, opts.HTML, mem)
	}

	t, err := reader.Read()
	if err != nil {
		return nil, tberrors.NewIOError("Load", path, err)
	}
	return t, nil
}
