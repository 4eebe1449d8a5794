package internal

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// WriteXLSXReport writes the report as a spreadsheet with a summary sheet
// and a daily-totals sheet.
func WriteXLSXReport(dir string, rep *Report) (string, error) {
	if err := ensureReportsDir(dir); err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const summarySheet = "Summary"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return "", fmt.Errorf("renaming sheet: %w", err)
	}

	summaryRows := [][]any{
		{"Generated At", rep.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"Total Records", rep.Count},
		{"Total Sales", rep.Total},
		{"Average Sale", rep.Average},
		{"Highest Sale", rep.Max},
		{"Lowest Sale", rep.Min},
	}
	for i := range summaryRows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return "", fmt.Errorf("building cell name: %w", err)
		}
		if err := f.SetSheetRow(summarySheet, cell, &summaryRows[i]); err != nil {
			return "", fmt.Errorf("writing summary row: %w", err)
		}
	}

	const dailySheet = "Daily Totals"
	if _, err := f.NewSheet(dailySheet); err != nil {
		return "", fmt.Errorf("adding sheet: %w", err)
	}
	header := []any{"Date", "Total"}
	if err := f.SetSheetRow(dailySheet, "A1", &header); err != nil {
		return "", fmt.Errorf("writing header row: %w", err)
	}
	for i, day := range rep.Days() {
		row := []any{day, rep.DailyTotals[day]}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", fmt.Errorf("building cell name: %w", err)
		}
		if err := f.SetSheetRow(dailySheet, cell, &row); err != nil {
			return "", fmt.Errorf("writing daily total row: %w", err)
		}
	}

	path := filepath.Join(dir, reportFileName(rep, ".xlsx"))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("saving report file: %w", err)
	}
	return path, nil
}

func init() {
	RegisterWriter("xlsx", ReportWriterFunc(WriteXLSXReport))
}
