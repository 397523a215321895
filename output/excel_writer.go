package output

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"workday/workday"
)

const (
	summarySheet = "Summary"
	breaksSheet  = "Breaks"
)

// ExcelWriter writes a workbook with a one-row summary sheet and a sheet
// listing every break.
type ExcelWriter struct{}

func (w *ExcelWriter) Write(out io.Writer, summary workday.Summary) error {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName(file.GetSheetName(0), summarySheet); err != nil {
		return fmt.Errorf("rename excel sheet: %w", err)
	}
	if err := writeExcelRows(file, summarySheet, summaryHeaders, [][]string{summaryRow(summary)}); err != nil {
		return err
	}

	if _, err := file.NewSheet(breaksSheet); err != nil {
		return fmt.Errorf("create excel sheet %s: %w", breaksSheet, err)
	}
	report := NewReport(summary)
	rows := make([][]string, 0, len(report.Breaks))
	for _, b := range report.Breaks {
		rows = append(rows, []string{b.Start, b.End, fmt.Sprintf("%d", b.Minutes)})
	}
	if err := writeExcelRows(file, breaksSheet, []string{"StartTime", "EndTime", "Minutes"}, rows); err != nil {
		return err
	}

	if err := file.Write(out); err != nil {
		return fmt.Errorf("write excel output: %w", err)
	}
	return nil
}

func writeExcelRows(file *excelize.File, sheet string, headers []string, rows [][]string) error {
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("set excel header %s: %w", cell, err)
		}
	}

	for i, values := range rows {
		row := i + 2
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("set excel value %s: %w", cell, err)
			}
		}
	}
	return nil
}
