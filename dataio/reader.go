package dataio

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/RyanBlaney/thz-optics/logging"
	"github.com/RyanBlaney/thz-optics/optics"
)

// ReadWaveformFile loads a two-column (time, amplitude) trace from a
// spreadsheet (.xlsx/.xlsm) or delimited text file (.txt/.csv/.dat).
// Legacy binary .xls workbooks are not supported; excelize only reads the
// OOXML formats. startRow is 1-based; rows before it are skipped, which
// lets callers jump over headers. The first two numeric columns are time in
// picoseconds and amplitude in detector units.
func ReadWaveformFile(path string, startRow int) (optics.Waveform, error) {
	if startRow < 1 {
		startRow = 1
	}

	var (
		waveform optics.Waveform
		err      error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		waveform, err = readSpreadsheet(path, startRow)
	case ".txt", ".csv", ".dat":
		waveform, err = readDelimitedText(path, startRow)
	default:
		return optics.Waveform{}, fmt.Errorf("unsupported file format %q", filepath.Ext(path))
	}

	if err != nil {
		return optics.Waveform{}, fmt.Errorf("reading %s: %w", path, err)
	}

	logging.Debug("waveform loaded", logging.Fields{
		"path":   path,
		"points": waveform.Len(),
	})
	return waveform, nil
}

func readDelimitedText(path string, startRow int) (optics.Waveform, error) {
	file, err := os.Open(path)
	if err != nil {
		return optics.Waveform{}, err
	}
	defer file.Close()

	var w optics.Waveform
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo < startRow {
			continue
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		t, a, err := parseRow(splitColumns(line))
		if err != nil {
			return optics.Waveform{}, fmt.Errorf("line %d: %w", lineNo, err)
		}
		w.Time = append(w.Time, t)
		w.Amplitude = append(w.Amplitude, a)
	}
	if err := scanner.Err(); err != nil {
		return optics.Waveform{}, err
	}
	if w.Len() == 0 {
		return optics.Waveform{}, fmt.Errorf("no data rows found")
	}
	return w, nil
}

func readSpreadsheet(path string, startRow int) (optics.Waveform, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return optics.Waveform{}, err
	}
	defer file.Close()

	rows, err := file.GetRows(file.GetSheetName(0))
	if err != nil {
		return optics.Waveform{}, err
	}

	var w optics.Waveform
	for i, row := range rows {
		if i+1 < startRow || len(row) == 0 {
			continue
		}

		t, a, err := parseRow(row)
		if err != nil {
			return optics.Waveform{}, fmt.Errorf("row %d: %w", i+1, err)
		}
		w.Time = append(w.Time, t)
		w.Amplitude = append(w.Amplitude, a)
	}
	if w.Len() == 0 {
		return optics.Waveform{}, fmt.Errorf("no data rows found")
	}
	return w, nil
}

// splitColumns splits a text row on whitespace, commas or semicolons
func splitColumns(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ',' || r == ';'
	})
}

func parseRow(columns []string) (float64, float64, error) {
	if len(columns) < 2 {
		return 0, 0, fmt.Errorf("expected a time and an amplitude column, got %d column(s)", len(columns))
	}

	t, err := strconv.ParseFloat(strings.TrimSpace(columns[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad time value %q", columns[0])
	}
	a, err := strconv.ParseFloat(strings.TrimSpace(columns[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad amplitude value %q", columns[1])
	}
	return t, a, nil
}
