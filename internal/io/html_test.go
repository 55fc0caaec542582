package io_test

import (
	"strings"
	"testing"

	tberrors "github.com/paveg/tabclean/internal/errors"
	"github.com/paveg/tabclean/internal/io"
	"github.com/paveg/tabclean/internal/table"
	"github.com/paveg/tabclean/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLReader(t *testing.T) {
	mem := testutil.SetupMemoryTest(t)
	defer mem.Release()

	read := func(t *testing.T, doc string) *table.Table {
		t.Helper()
		tbl, err := io.NewHTMLReader(strings.NewReader(doc), io.DefaultHTMLOptions(), mem.Allocator).Read()
		require.NoError(t, err)
		return tbl
	}

	t.Run("reads thead and tbody", func(t *testing.T) {
		tbl := read(t, `<html><body>
<table>
  <thead><tr><th>name</th><th>age</th></tr></thead>
  <tbody>
    <tr><td>Alice</td><td>25</td></tr>
    <tr><td> Bob </td><td></td></tr>
  </tbody>
</table>
</body></html>`)
		defer tbl.Release()

		assert.Equal(t, []string{"name", "age"}, tbl.Columns())
		testutil.AssertColumnCells(t, tbl, "name", "Alice", "Bob")
		testutil.AssertColumnCells(t, tbl, "age", 25, nil)
	})

	t.Run("uses leading th rows as header", func(t *testing.T) {
		tbl := read(t, `<table>
<tr><th>city</th><th>pop</th></tr>
<tr><td>Lima</td><td>10</td></tr>
</table>`)
		defer tbl.Release()

		assert.Equal(t, []string{"city", "pop"}, tbl.Columns())
		assert.Equal(t, 1, tbl.Len())
	})

	t.Run("numbers columns without a header", func(t *testing.T) {
		tbl := read(t, `<table><tr><td>a</td><td>1</td></tr><tr><td>b</td><td>2</td></tr></table>`)
		defer tbl.Release()

		assert.Equal(t, []string{"0", "1"}, tbl.Columns())
		testutil.AssertColumnCells(t, tbl, "1", 1, 2)
	})

	t.Run("only the first table is read", func(t *testing.T) {
		tbl := read(t, `<p>intro</p>
<table><tr><th>first</th></tr><tr><td>1</td></tr></table>
<table><tr><th>second</th></tr><tr><td>2</td></tr></table>`)
		defer tbl.Release()

		assert.Equal(t, []string{"first"}, tbl.Columns())
	})

	t.Run("expands colspan and rowspan", func(t *testing.T) {
		tbl := read(t, `<table>
<tr><th>a</th><th>b</th><th>c</th></tr>
<tr><td rowspan="2">x</td><td colspan="2">y</td></tr>
<tr><td>1</td><td>2</td></tr>
</table>`)
		defer tbl.Release()

		testutil.AssertColumnCells(t, tbl, "a", "x", "x")
		testutil.AssertColumnCells(t, tbl, "b", "y", "1")
		testutil.AssertColumnCells(t, tbl, "c", "y", "2")
	})

	t.Run("pads short rows and collapses whitespace", func(t *testing.T) {
		tbl := read(t, `<table>
<tr><th>k</th><th>v</th></tr>
<tr><td>two
  words</td><td>3</td></tr>
<tr><td>short</td></tr>
</table>`)
		defer tbl.Release()

		testutil.AssertColumnCells(t, tbl, "k", "two words", "short")
		testutil.AssertColumnCells(t, tbl, "v", 3, nil)
	})

	t.Run("drops thousands separators from numbers", func(t *testing.T) {
		tbl := read(t, `<table>
<tr><th>units</th><th>label</th></tr>
<tr><td>1,234</td><td>a,b</td></tr>
<tr><td>5</td><td>c</td></tr>
<tr><td></td><td>d</td></tr>
</table>`)
		defer tbl.Release()

		units, _ := tbl.Column("units")
		assert.Equal(t, table.Numeric, units.Kind())
		testutil.AssertColumnCells(t, tbl, "units", 1234, 5, nil)
		testutil.AssertColumnCells(t, tbl, "label", "a,b", "c", "d")
	})

	t.Run("thousands separator can be disabled", func(t *testing.T) {
		opts := io.DefaultHTMLOptions()
		opts.Thousands = 0
		tbl, err := io.NewHTMLReader(strings.NewReader(`<table><tr><th>n</th></tr><tr><td>1,234</td></tr></table>`), opts, mem.Allocator).Read()
		require.NoError(t, err)
		defer tbl.Release()

		testutil.AssertColumnCells(t, tbl, "n", "1,234")
	})

	t.Run("document without a table", func(t *testing.T) {
		_, err := io.NewHTMLReader(strings.NewReader(`<p>nothing</p>`), io.DefaultHTMLOptions(), mem.Allocator).Read()
		require.Error(t, err)
		assert.ErrorIs(t, err, tberrors.ErrNoTables)
	})
}
