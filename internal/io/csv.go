package io

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/paveg/tabclean/internal/table"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Read reads CSV data and returns a Table
func (r *CSVReader) Read() (*table.Table, error) {
	// A leading BOM selects UTF-8 or UTF-16 and is dropped
	decoded := transform.NewReader(r.reader, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	csvReader := csv.NewReader(decoded)
	csvReader.Comma = r.options.Delimiter
	csvReader.Comment = r.options.Comment
	csvReader.TrimLeadingSpace = r.options.SkipInitialSpace
	csvReader.FieldsPerRecord = -1

	// Read all records
	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	// Handle empty CSV
	if len(records) == 0 {
		return table.New()
	}

	var headers []string
	var dataRows [][]string

	if r.options.Header {
		headers = records[0]
		dataRows = records[1:]
	} else {
		// Generate default column names
		headers = make([]string, len(records[0]))
		for i := range headers {
			headers[i] = strconv.Itoa(i)
		}
		dataRows = records
	}

	for i, row := range dataRows {
		if len(row) > len(headers) {
			record := i + 1
			if r.options.Header {
				record++
			}
			return nil, fmt.Errorf("reading CSV: expected %d fields in record %d, saw %d", len(headers), record, len(row))
		}
	}

	return buildTable(headers, dataRows, newCellParser(r.options.NullValues, 0), r.mem)
}
