package dataio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadWaveformFileWhitespace(t *testing.T) {
	path := writeTempFile(t, "trace.txt", "0.0 1.5\n0.1 2.5\n0.2 -0.5\n")

	w, err := ReadWaveformFile(path, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.0, 0.1, 0.2}, w.Time)
	assert.Equal(t, []float64{1.5, 2.5, -0.5}, w.Amplitude)
}

func TestReadWaveformFileTabsAndCommas(t *testing.T) {
	tabPath := writeTempFile(t, "trace.dat", "0.0\t1.0\n0.5\t2.0\n")
	commaPath := writeTempFile(t, "trace.csv", "0.0,1.0\n0.5,2.0\n")

	tabbed, err := ReadWaveformFile(tabPath, 1)
	require.NoError(t, err)
	comma, err := ReadWaveformFile(commaPath, 1)
	require.NoError(t, err)

	assert.Equal(t, tabbed, comma)
}

func TestReadWaveformFileSkipsHeaderRows(t *testing.T) {
	path := writeTempFile(t, "trace.txt", "delay amplitude\n0.0 1.0\n0.1 2.0\n")

	w, err := ReadWaveformFile(path, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, w.Len())
	assert.Equal(t, 0.0, w.Time[0])
}

func TestReadWaveformFileExtraColumnsIgnored(t *testing.T) {
	path := writeTempFile(t, "trace.txt", "0.0 1.0 99 98\n0.1 2.0 97 96\n")

	w, err := ReadWaveformFile(path, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.0, 2.0}, w.Amplitude)
}

func TestReadWaveformFileErrors(t *testing.T) {
	t.Run("unsupported extension", func(t *testing.T) {
		path := writeTempFile(t, "trace.bin", "0 1\n")
		_, err := ReadWaveformFile(path, 1)
		assert.ErrorContains(t, err, "unsupported file format")
	})

	t.Run("legacy xls rejected", func(t *testing.T) {
		path := writeTempFile(t, "trace.xls", "not a real workbook")
		_, err := ReadWaveformFile(path, 1)
		assert.ErrorContains(t, err, "unsupported file format")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadWaveformFile(filepath.Join(t.TempDir(), "gone.txt"), 1)
		assert.Error(t, err)
	})

	t.Run("single column", func(t *testing.T) {
		path := writeTempFile(t, "trace.txt", "0.0\n0.1\n")
		_, err := ReadWaveformFile(path, 1)
		assert.ErrorContains(t, err, "line 1")
	})

	t.Run("non-numeric value", func(t *testing.T) {
		path := writeTempFile(t, "trace.txt", "0.0 ok\n")
		_, err := ReadWaveformFile(path, 1)
		assert.ErrorContains(t, err, "bad amplitude value")
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeTempFile(t, "trace.txt", "")
		_, err := ReadWaveformFile(path, 1)
		assert.ErrorContains(t, err, "no data rows")
	})
}

func TestReadWaveformFileSpreadsheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "delay"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", "amplitude"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", 0.0))
	require.NoError(t, f.SetCellValue("Sheet1", "B2", 1.25))
	require.NoError(t, f.SetCellValue("Sheet1", "A3", 0.5))
	require.NoError(t, f.SetCellValue("Sheet1", "B3", -2.5))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	w, err := ReadWaveformFile(path, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.0, 0.5}, w.Time)
	assert.Equal(t, []float64{1.25, -2.5}, w.Amplitude)
}
