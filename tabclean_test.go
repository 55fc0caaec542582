package tabclean_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/paveg/tabclean"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	path := writeFile(t, "people.csv", "name;age;city\nAnn;31;Lima\nBob;;Quito\n# skipped\nCy;27;\n")

	tbl, err := tabclean.Load(path,
		tabclean.WithAllocator(mem),
		tabclean.WithDelimiter(';'),
		tabclean.WithComment('#'))
	require.NoError(t, err)
	defer tbl.Release()

	assert.Equal(t, []string{"name", "age", "city"}, tbl.Columns())
	assert.Equal(t, 3, tbl.Len())

	age, ok := tbl.Column("age")
	require.True(t, ok)
	assert.Equal(t, tabclean.Numeric, age.Kind())
	assert.Equal(t, 1, age.NullCount())
}

func TestLoadNullValues(t *testing.T) {
	path := writeFile(t, "data.csv", "a,b\n1,x\n-,y\n")

	tbl, err := tabclean.Load(path, tabclean.WithNullValues("-"))
	require.NoError(t, err)
	defer tbl.Release()

	a, _ := tbl.Column("a")
	assert.Equal(t, tabclean.Numeric, a.Kind())
	assert.Equal(t, 1, tabclean.IdentifyNulls(tbl).Total)
}

func TestLoadUnsupportedFormat(t *testing.T) {
	_, err := tabclean.Load("notes.txt")
	require.Error(t, err)

	var unsupported *tabclean.UnsupportedFormatError
	require.True(t, errors.As(err, &unsupported))
	assert.Contains(t, err.Error(), "txt")
}

func TestCleaningPipeline(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 100}
	tbl, err := tabclean.NewTable(
		tabclean.NewTextColumn("label", []string{"a", "", "c", "d", "e", "f", "g", "h", "i", "j"},
			[]bool{true, false, true, true, true, true, true, true, true, true}, mem),
		tabclean.NewNumericColumn("x", values, nil, mem),
		tabclean.NewNumericColumn("y", values, []bool{true, true, true, true, true, true, true, true, true, false}, mem),
	)
	require.NoError(t, err)
	defer tbl.Release()

	before := tabclean.IdentifyNulls(tbl)
	assert.Equal(t, 2, before.Total)

	require.Same(t, tbl, tabclean.FillNulls(tbl))
	assert.Equal(t, 0, tabclean.IdentifyNulls(tbl).Total)

	label, _ := tbl.Column("label")
	assert.Equal(t, tabclean.NullText, label.Cell(1).Text)
	y, _ := tbl.Column("y")
	assert.Equal(t, float64(tabclean.PrimeFill), y.Cell(9).Number)

	require.Same(t, tbl, tabclean.FlagOutliers(tbl))
	x, _ := tbl.Column("x")
	assert.Equal(t, tabclean.OutlierText, x.Cell(9).Text)
	for i := 0; i < 9; i++ {
		assert.Equal(t, float64(i+1), x.Cell(i).Number)
	}
	assert.Equal(t, tabclean.OutlierText, y.Cell(9).Text)

	once := tbl.Fingerprint()
	tabclean.FlagOutliers(tbl)
	assert.Equal(t, once, tbl.Fingerprint())
}

func TestComputeBounds(t *testing.T) {
	mem := memory.NewGoAllocator()
	col := tabclean.NewNumericColumn("c", []float64{5, 5, 5, 5}, nil, mem)
	defer col.Release()

	b, ok := tabclean.ComputeBounds(col)
	require.True(t, ok)
	assert.Equal(t, tabclean.Bounds{Q1: 5, Q3: 5, IQR: 0, Lower: 5, Upper: 5}, b)
}

func TestWithTable(t *testing.T) {
	path := writeFile(t, "t.html", `<table><tr><th>a</th><th>b</th></tr><tr><td>1</td><td></td></tr></table>`)

	var total int
	err := tabclean.WithTable(path, func(tbl *tabclean.Table) error {
		total = tabclean.IdentifyNulls(tbl).Total
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	err = tabclean.WithTable("t.xls", func(*tabclean.Table) error { return nil })
	assert.Error(t, err)
}

func TestReleaseAll(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	a := tabclean.NewNumericColumn("a", []float64{1}, nil, mem)
	b := tabclean.NewTextColumn("b", []string{"x"}, nil, mem)
	tabclean.ReleaseAll(a, nil, b)
}

func TestReleaseAllTypedNil(t *testing.T) {
	var tbl *tabclean.Table
	var col *tabclean.Column

	assert.NotPanics(t, func() {
		tabclean.ReleaseAll(tbl, col)
	})
}

func TestLoadHTMLGroupedNumbers(t *testing.T) {
	path := writeFile(t, "units.html", `<table>
<tr><th>units</th></tr>
<tr><td>1,234</td></tr>
<tr><td>5</td></tr>
<tr><td></td></tr>
</table>`)

	tbl, err := tabclean.Load(path)
	require.NoError(t, err)
	defer tbl.Release()

	tabclean.FillNulls(tbl)
	units, _ := tbl.Column("units")
	assert.Equal(t, tabclean.Numeric, units.Kind())
	assert.Equal(t, float64(tabclean.DefaultFill), units.Cell(2).Number)
}
