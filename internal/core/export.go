package core

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// WriteCSV streams a registrations view as CSV, header row first.
func WriteCSV(w io.Writer, view RegistrationsView) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(view.Headers); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range view.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX streams a registrations view as a single-sheet XLSX workbook.
func WriteXLSX(w io.Writer, view RegistrationsView) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Registrations"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	writeRow := func(rowNum int, values []string) error {
		cells := make([]interface{}, len(values))
		for i, v := range values {
			cells[i] = v
		}
		addr, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		return f.SetSheetRow(sheet, addr, &cells)
	}

	if err := writeRow(1, view.Headers); err != nil {
		return fmt.Errorf("write xlsx header: %w", err)
	}
	for i, row := range view.Rows {
		if err := writeRow(i+2, row); err != nil {
			return fmt.Errorf("write xlsx row %d: %w", i, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}
