package dataio

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/RyanBlaney/thz-optics/logging"
	"github.com/RyanBlaney/thz-optics/optics"
)

const exportSheet = "Optical Parameters"

// quantity column headers, in export order
var quantityHeaders = []string{
	"refractive index",
	"extinction coefficient",
	"absorption (cm^-1)",
	"permittivity real",
	"permittivity imag",
	"loss tangent",
}

// ExportExcel flattens a calculation result into a single spreadsheet: one
// row per frequency bin, a frequency column, then six columns per sample in
// input order.
func ExportExcel(result *optics.CalculationResult, path string) error {
	if result == nil {
		return fmt.Errorf("nothing to export")
	}

	file := excelize.NewFile()
	defer file.Close()

	file.SetSheetName("Sheet1", exportSheet)

	if err := setCell(file, 1, 1, "Frequency (THz)"); err != nil {
		return err
	}
	for s, sample := range result.Samples {
		for q, header := range quantityHeaders {
			if err := setCell(file, 2+s*len(quantityHeaders)+q, 1, fmt.Sprintf("%s %s", sample.Name, header)); err != nil {
				return err
			}
		}
	}

	for i, freq := range result.Frequency {
		row := i + 2
		if err := setCell(file, 1, row, freq); err != nil {
			return err
		}
		for s, sample := range result.Samples {
			col := 2 + s*len(quantityHeaders)
			values := []float64{
				sample.N[i],
				sample.K[i],
				sample.Absorption[i],
				sample.EpsilonReal[i],
				sample.EpsilonImag[i],
				sample.TanDelta[i],
			}
			for q, v := range values {
				if err := setCell(file, col+q, row, v); err != nil {
					return err
				}
			}
		}
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}

	logging.Info("results exported", logging.Fields{
		"path":    path,
		"samples": len(result.Samples),
		"rows":    len(result.Frequency),
	})
	return nil
}

func setCell(file *excelize.File, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return file.SetCellValue(exportSheet, cell, value)
}
