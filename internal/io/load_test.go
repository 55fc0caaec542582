package io_test

import (
	"os"
	"path/filepath"
	"testing"

	tberrors "github.com/paveg/tabclean/internal/errors"
	"github.com/paveg/tabclean/internal/io"
	"github.com/paveg/tabclean/internal/table"
	"github.com/paveg/tabclean/internal/testutil"
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
	mem := testutil.SetupMemoryTest(t)
	defer mem.Release()

	opts := io.DefaultOptions()
	opts.Allocator = mem.Allocator

	t.Run("csv keeps header order and row count", func(t *testing.T) {
		path := writeFile(t, "people.csv", "zeta,alpha,mid\n1,a,2.5\n2,,3\n3,c,\n")

		tbl, err := io.Load(path, opts)
		require.NoError(t, err)
		defer tbl.Release()

		assert.Equal(t, []string{"zeta", "alpha", "mid"}, tbl.Columns())
		assert.Equal(t, 3, tbl.Len())

		alpha, _ := tbl.Column("alpha")
		assert.Equal(t, table.Text, alpha.Kind())
		mid, _ := tbl.Column("mid")
		assert.Equal(t, table.Numeric, mid.Kind())
	})

	t.Run("html", func(t *testing.T) {
		path := writeFile(t, "page.html", `<table><tr><th>v</th></tr><tr><td>1</td></tr></table>`)

		tbl, err := io.Load(path, opts)
		require.NoError(t, err)
		defer tbl.Release()

		assert.Equal(t, []string{"v"}, tbl.Columns())
	})

	t.Run("zero options fall back to defaults", func(t *testing.T) {
		path := writeFile(t, "data.csv", "a,b\n1,2\n")

		tbl, err := io.Load(path, io.Options{Allocator: mem.Allocator})
		require.NoError(t, err)
		defer tbl.Release()

		assert.Equal(t, []string{"a", "b"}, tbl.Columns())
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := io.Load("notes.txt", opts)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "txt")

		var formatErr *tberrors.UnsupportedFormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, "txt", formatErr.Extension)
	})

	t.Run("extension match is case sensitive", func(t *testing.T) {
		_, err := io.Load("DATA.CSV", opts)
		var formatErr *tberrors.UnsupportedFormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, "CSV", formatErr.Extension)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := io.Load(filepath.Join(t.TempDir(), "absent.csv"), opts)
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestExtension(t *testing.T) {
	assert.Equal(t, "csv", io.Extension("data.csv"))
	assert.Equal(t, "gz", io.Extension("archive.csv.gz"))
	assert.Equal(t, "", io.Extension("trailing."))
	assert.Equal(t, "noext", io.Extension("noext"))
}
