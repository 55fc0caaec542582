package io

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/paveg/tabclean/internal/table"
)

// nullSet is the set of strings read as missing values
type nullSet map[string]struct{}

func newNullSet(extra []string) nullSet {
	set := make(nullSet, len(DefaultNullValues)+len(extra))
	for _, v := range DefaultNullValues {
		set[v] = struct{}{}
	}
	for _, v := range extra {
		set[v] = struct{}{}
	}
	return set
}

func (s nullSet) contains(v string) bool {
	_, ok := s[v]
	return ok
}

// cellParser reads raw cell strings as nulls or numbers
type cellParser struct {
	nulls nullSet
	// thousands is removed from numbers before parsing; 0 keeps them as is
	thousands rune
}

func newCellParser(extraNulls []string, thousands rune) cellParser {
	return cellParser{nulls: newNullSet(extraNulls), thousands: thousands}
}

func (p cellParser) isNull(v string) bool {
	return p.nulls.contains(v)
}

// number parses a numeric cell. Values out of float64 range parse as ±Inf.
func (p cellParser) number(v string) (float64, bool) {
	if p.thousands != 0 {
		v = strings.ReplaceAll(v, string(p.thousands), "")
	}
	return parseNumber(v)
}

func parseNumber(v string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

// inferKind determines the kind for the given raw column data. A column is
// numeric when every non-null value parses as a number, including a column
// made only of nulls. A column with no rows is text.
func inferKind(data []string, p cellParser) table.Kind {
	if len(data) == 0 {
		return table.Text
	}
	for _, value := range data {
		if p.isNull(value) {
			continue // Skip nulls for type inference
		}
		if _, ok := p.number(value); !ok {
			return table.Text
		}
	}
	return table.Numeric
}

// buildColumn infers the kind of raw and converts it into a column
func buildColumn(name string, raw []string, p cellParser, mem memory.Allocator) *table.Column {
	kind := inferKind(raw, p)
	cells := make([]table.Cell, len(raw))
	for i, value := range raw {
		if p.isNull(value) {
			cells[i] = table.Null()
			continue
		}
		if kind == table.Text {
			cells[i] = table.TextCell(value)
			continue
		}
		f, _ := p.number(value)
		// NaN spellings missing from the null set are still nulls
		if math.IsNaN(f) {
			cells[i] = table.Null()
			continue
		}
		cells[i] = table.Number(f)
	}
	return table.NewColumn(name, kind, cells, mem)
}

// buildTable transposes rows into columns and assembles the table. Rows
// shorter than the header are padded with nulls.
func buildTable(headers []string, rows [][]string, p cellParser, mem memory.Allocator) (*table.Table, error) {
	names := uniqueNames(headers)
	columns := make([]*table.Column, len(names))
	for i, name := range names {
		raw := make([]string, len(rows))
		for j, row := range rows {
			if i < len(row) {
				raw[j] = row[i]
			}
		}
		columns[i] = buildColumn(name, raw, p, mem)
	}

	t, err := table.New(columns...)
	if err != nil {
		for _, c := range columns {
			c.Release()
		}
		return nil, err
	}
	return t, nil
}

// uniqueNames renames repeated headers by appending ".1", ".2", ... to later
// occurrences, skipping suffixes already taken by another header.
func uniqueNames(headers []string) []string {
	names := make([]string, len(headers))
	taken := make(map[string]struct{}, len(headers))
	for _, h := range headers {
		taken[h] = struct{}{}
	}

	seen := make(map[string]int, len(headers))
	for i, h := range headers {
		n, dup := seen[h]
		seen[h] = n + 1
		if !dup {
			names[i] = h
			continue
		}
		for {
			candidate := h + "." + strconv.Itoa(n)
			n++
			if _, ok := taken[candidate]; !ok {
				taken[candidate] = struct{}{}
				names[i] = candidate
				seen[h] = n
				break
			}
		}
	}
	return names
}
