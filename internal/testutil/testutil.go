// Package testutil provides common testing utilities shared by the tabclean
// test suites:
// - Memory allocator setup
// - Standard test table creation
// - Cell-level table assertions
// - A structured logger that writes to the test log
package testutil

import (
	"fmt"
	"testing"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/paveg/tabclean/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	// defaultRowCount is the default number of rows in test tables.
	defaultRowCount = 4
)

// TestMemoryContext provides a memory allocator for tests.
type TestMemoryContext struct {
	Allocator memory.Allocator
	checked   *memory.CheckedAllocator
	tb        testing.TB
}

// Release asserts that every Arrow buffer allocated in the test was freed.
func (tmc *TestMemoryContext) Release() {
	tmc.checked.AssertSize(tmc.tb, 0)
}

// SetupMemoryTest creates a checked allocator for tests.
// Returns a TestMemoryContext that should be released with defer after every
// table built from it has been released.
//
// Example usage:
//
//	mem := testutil.SetupMemoryTest(t)
//	defer mem.Release()
func SetupMemoryTest(tb testing.TB) *TestMemoryContext {
	tb.Helper()
	checked := memory.NewCheckedAllocator(memory.NewGoAllocator())
	return &TestMemoryContext{
		Allocator: checked,
		checked:   checked,
		tb:        tb,
	}
}

// TestTableOption configures test table creation.
type TestTableOption func(*testTableConfig)

type testTableConfig struct {
	includeNulls bool
	rowCount     int
}

// WithNulls makes every third row of each column null.
func WithNulls() TestTableOption {
	return func(cfg *testTableConfig) {
		cfg.includeNulls = true
	}
}

// WithRowCount sets the number of rows in test data.
func WithRowCount(count int) TestTableOption {
	return func(cfg *testTableConfig) {
		cfg.rowCount = count
	}
}

// CreateTestTable creates a standard employee table.
//
// Default table includes:
// - name (text): ["Alice", "Bob", "Charlie", "David"]
// - age (numeric): [25, 30, 35, 28]
// - department (text): ["Engineering", "Sales", "Engineering", "Marketing"]
// - salary (numeric): [100000, 80000, 120000, 75000]
func CreateTestTable(tb testing.TB, allocator memory.Allocator, opts ...TestTableOption) *table.Table {
	tb.Helper()

	cfg := &testTableConfig{rowCount: defaultRowCount}
	for _, opt := range opts {
		opt(cfg)
	}

	var valid []bool
	if cfg.includeNulls {
		valid = make([]bool, cfg.rowCount)
		for i := range valid {
			valid[i] = i%3 != 1
		}
	}

	t, err := table.New(
		table.NewText("name", generateNames(cfg.rowCount), valid, allocator),
		table.NewNumeric("age", generateAges(cfg.rowCount), valid, allocator),
		table.NewText("department", generateDepartments(cfg.rowCount), valid, allocator),
		table.NewNumeric("salary", generateSalaries(cfg.rowCount), valid, allocator),
	)
	require.NoError(tb, err)
	return t
}

// Column builds a column from loosely typed values: nil is a null cell,
// strings are text cells and Go numbers are numeric cells.
func Column(name string, kind table.Kind, allocator memory.Allocator, values ...any) *table.Column {
	return table.NewColumn(name, kind, Cells(values...), allocator)
}

// Cells converts loosely typed values into cells following Column's rules.
func Cells(values ...any) []table.Cell {
	cells := make([]table.Cell, len(values))
	for i, v := range values {
		switch x := v.(type) {
		case nil:
			cells[i] = table.Null()
		case string:
			cells[i] = table.TextCell(x)
		case int:
			cells[i] = table.Number(float64(x))
		case int64:
			cells[i] = table.Number(float64(x))
		case float64:
			cells[i] = table.Number(x)
		default:
			panic(fmt.Sprintf("unsupported test value %T", v))
		}
	}
	return cells
}

// NewTable assembles columns into a table, failing the test on error.
func NewTable(tb testing.TB, columns ...*table.Column) *table.Table {
	tb.Helper()
	t, err := table.New(columns...)
	require.NoError(tb, err)
	return t
}

// AssertColumnCells checks every cell of the named column.
func AssertColumnCells(tb testing.TB, t *table.Table, name string, expected ...any) {
	tb.Helper()

	col, ok := t.Column(name)
	require.True(tb, ok, "column %s should exist", name)
	assert.Equal(tb, Cells(expected...), col.Cells(), "cells of column %s", name)
}

// AssertTableEqual performs a cell-level comparison of two tables.
func AssertTableEqual(tb testing.TB, expected, actual *table.Table) {
	tb.Helper()

	require.NotNil(tb, expected, "expected table should not be nil")
	require.NotNil(tb, actual, "actual table should not be nil")

	assert.Equal(tb, expected.Len(), actual.Len(), "table lengths should match")
	assert.Equal(tb, expected.Columns(), actual.Columns(), "table columns should match")

	for _, name := range expected.Columns() {
		expectedCol, _ := expected.Column(name)
		actualCol, ok := actual.Column(name)
		require.True(tb, ok, "actual column %s should exist", name)
		assert.Equal(tb, expectedCol.Kind(), actualCol.Kind(), "kind of column %s", name)
		assert.Equal(tb, expectedCol.Cells(), actualCol.Cells(), "cells of column %s", name)
	}
}

func generateNames(count int) []string {
	baseNames := []string{"Alice", "Bob", "Charlie", "David", "Eve", "Frank", "Grace", "Henry"}
	names := make([]string, count)
	for i := range count {
		names[i] = baseNames[i%len(baseNames)]
	}
	return names
}

func generateAges(count int) []float64 {
	baseAges := []float64{25, 30, 35, 28, 32, 45, 29, 38}
	ages := make([]float64, count)
	for i := range count {
		ages[i] = baseAges[i%len(baseAges)]
	}
	return ages
}

func generateDepartments(count int) []string {
	baseDepts := []string{"Engineering", "Sales", "Engineering", "Marketing", "HR", "Finance", "Engineering", "Sales"}
	departments := make([]string, count)
	for i := range count {
		departments[i] = baseDepts[i%len(baseDepts)]
	}
	return departments
}

func generateSalaries(count int) []float64 {
	baseSalaries := []float64{100000, 80000, 120000, 75000, 90000, 110000, 95000, 85000}
	salaries := make([]float64, count)
	for i := range count {
		salaries[i] = baseSalaries[i%len(baseSalaries)]
	}
	return salaries
}
