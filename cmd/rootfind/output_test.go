package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/rootfind/grid"
)

//
// -----------------------------------------------------------------------------
// writeTable()
// -----------------------------------------------------------------------------

// TestWriteTable verifies header, row order and shortest float formatting.
func TestWriteTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := writeTable(&buf, grid.Table{
		X: []float64{-1, 0.5, 2},
		Y: []float64{-3, 0.25, math.NaN()},
	})
	require.NoError(t, err)
	assert.Equal(t, "x,f_x\n-1,-3\n0.5,0.25\n2,NaN\n", buf.String())
}

// TestWriteTable_Empty verifies an empty table still has a header.
func TestWriteTable_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, writeTable(&buf, grid.Table{}))
	assert.Equal(t, "x,f_x\n", buf.String())
}

//
// -----------------------------------------------------------------------------
// writeFileAtomic()
// -----------------------------------------------------------------------------

// TestWriteFileAtomic_Errors verifies failures surface and leave no staged file behind.
func TestWriteFileAtomic_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		target func(t *testing.T, dir string) string
	}{
		{
			name:   "missing directory",
			target: func(_ *testing.T, dir string) string { return filepath.Join(dir, "missing", "out.yaml") },
		},
		{
			name: "target is a directory",
			target: func(t *testing.T, dir string) string {
				p := filepath.Join(dir, "out.yaml")
				require.NoError(t, os.MkdirAll(filepath.Join(p, "child"), 0o755))
				return p
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			p := tc.target(t, dir)
			require.Error(t, writeFileAtomic(p, []byte("x"), 0o644))

			matches, err := filepath.Glob(filepath.Join(dir, "*.tmp-*"))
			require.NoError(t, err)
			assert.Empty(t, matches)
		})
	}
}

// TestWriteFileAtomic_Replaces verifies an existing file is replaced whole with the requested mode.
func TestWriteFileAtomic_Replaces(t *testing.T) {
	t.Parallel()

	p := writeTempFile(t, t.TempDir(), "report.yaml", "old contents that are longer")
	require.NoError(t, writeFileAtomic(p, []byte("new"), 0o640))
	assert.Equal(t, "new", readFileString(t, p))

	info, err := os.Stat(p)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
}

// TestWriteFileAtomic_Success verifies the file lands with the requested content.
func TestWriteFileAtomic_Success(t *testing.T) {
	t.Parallel()

	p := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, writeFileAtomic(p, []byte("hello"), 0o644))
	assert.Equal(t, "hello", readFileString(t, p))

	matches, err := filepath.Glob(p + ".tmp-*")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

// TestSaveTable verifies the CSV export path.
func TestSaveTable(t *testing.T) {
	t.Parallel()

	p := filepath.Join(t.TempDir(), "t.csv")
	require.NoError(t, saveTable(p, grid.Table{X: []float64{1}, Y: []float64{2}}))
	assert.Equal(t, "x,f_x\n1,2\n", readFileString(t, p))
}
