package testutil

import (
	"testing"

	"github.com/paveg/tabclean/internal/table"
	"github.com/stretchr/testify/assert"
)

func TestCreateTestTable(t *testing.T) {
	mem := SetupMemoryTest(t)
	defer mem.Release()

	t.Run("default table", func(t *testing.T) {
		tbl := CreateTestTable(t, mem.Allocator)
		defer tbl.Release()

		assert.Equal(t, 4, tbl.Len())
		assert.Equal(t, []string{"name", "age", "department", "salary"}, tbl.Columns())
		AssertColumnCells(t, tbl, "age", 25, 30, 35, 28)
	})

	t.Run("with nulls and row count", func(t *testing.T) {
		tbl := CreateTestTable(t, mem.Allocator, WithNulls(), WithRowCount(6))
		defer tbl.Release()

		assert.Equal(t, 6, tbl.Len())
		AssertColumnCells(t, tbl, "name", "Alice", nil, "Charlie", "David", nil, "Frank")
	})
}

func TestCells(t *testing.T) {
	assert.Equal(t,
		[]table.Cell{table.Null(), table.TextCell("a"), table.Number(1), table.Number(2), table.Number(2.5)},
		Cells(nil, "a", 1, int64(2), 2.5))

	assert.Panics(t, func() { Cells(true) })
}
