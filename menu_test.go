package main

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"salestrack/internal"
)

func newTestApp(t *testing.T, now time.Time) *App {
	t.Helper()
	dir := t.TempDir()
	cfg := &internal.Config{
		DataFile:   filepath.Join(dir, "sales_data.json"),
		ReportsDir: filepath.Join(dir, "reports"),
	}
	return &App{
		Store:  internal.NewStore(cfg.DataFile),
		Config: cfg,
		Now:    func() time.Time { return now },
	}
}

// runMenu drives the menu loop with scripted input and returns the output.
func runMenu(t *testing.T, app *App, input string) string {
	t.Helper()
	var out bytes.Buffer
	app.MenuLoop(bufio.NewScanner(strings.NewReader(input)), &out)
	return out.String()
}

func TestMenuAddAndDailyTotal(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local)
	app := newTestApp(t, now)

	out := runMenu(t, app, "1\n10\n1\n5\n3\n5\n")

	if !strings.Contains(out, "Sale of 10.00 added successfully.") {
		t.Errorf("missing add confirmation for 10.00:\n%s", out)
	}
	if !strings.Contains(out, "Sale of 5.00 added successfully.") {
		t.Errorf("missing add confirmation for 5.00:\n%s", out)
	}
	if !strings.Contains(out, "Today's total sales: 15.00") {
		t.Errorf("missing daily total:\n%s", out)
	}

	// Both sales persisted
	loaded := app.Store.Load()
	if len(loaded) != 2 {
		t.Errorf("persisted %d records, want 2", len(loaded))
	}
}

func TestMenuAddInvalidAmount(t *testing.T) {
	app := newTestApp(t, time.Now())

	tests := []struct {
		name  string
		input string
	}{
		{"negative amount", "1\n-5\n5\n"},
		{"non-numeric amount", "1\nten\n5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runMenu(t, app, tt.input)
			if !strings.Contains(out, "Invalid amount. Please enter a non-negative number.") {
				t.Errorf("missing rejection message:\n%s", out)
			}
			if len(app.Store.Load()) != 0 {
				t.Error("record count increased after rejected input")
			}
		})
	}
}

func TestMenuViewSalesEmpty(t *testing.T) {
	app := newTestApp(t, time.Now())

	out := runMenu(t, app, "2\n5\n")
	if !strings.Contains(out, "No sales records found.") {
		t.Errorf("missing empty-dataset message:\n%s", out)
	}
}

func TestMenuViewSales(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local)
	app := newTestApp(t, now)

	out := runMenu(t, app, "1\n42.5\n2\n5\n")

	if !strings.Contains(out, "=== Sales Records ===") {
		t.Errorf("missing records header:\n%s", out)
	}
	if !strings.Contains(out, "42.50") {
		t.Errorf("missing formatted amount:\n%s", out)
	}
	if !strings.Contains(out, "2024-01-01 12:00:00") {
		t.Errorf("missing sale time:\n%s", out)
	}
}

func TestMenuDailyTotalNoSales(t *testing.T) {
	app := newTestApp(t, time.Now())

	out := runMenu(t, app, "3\n5\n")
	if !strings.Contains(out, "Today's total sales: 0.00") {
		t.Errorf("daily total with no sales should be 0.00:\n%s", out)
	}
}

func TestMenuGenerateReportNoData(t *testing.T) {
	app := newTestApp(t, time.Now())

	out := runMenu(t, app, "4\n5\n")
	if !strings.Contains(out, "No valid sales records found. Report was not generated.") {
		t.Errorf("missing no-data message:\n%s", out)
	}

	// No reports directory, no file
	if _, err := os.Stat(app.Config.ReportsDir); !os.IsNotExist(err) {
		t.Errorf("reports dir should not exist, stat err = %v", err)
	}
}

func TestMenuGenerateReport(t *testing.T) {
	now := time.Date(2024, 2, 1, 13, 37, 42, 0, time.Local)
	app := newTestApp(t, now)

	out := runMenu(t, app, "1\n10\n4\n5\n")

	if !strings.Contains(out, "=== Sales Report ===") {
		t.Errorf("report not shown on screen:\n%s", out)
	}
	if !strings.Contains(out, "Report saved to: ") {
		t.Errorf("missing saved-to message:\n%s", out)
	}

	path := filepath.Join(app.Config.ReportsDir, "sales_report_20240201_133742.txt")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("report file not written: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "Total Sales: 10.00") {
		t.Errorf("report content wrong:\n%s", content)
	}
	if !strings.HasSuffix(content, "\n") {
		t.Error("report file missing trailing newline")
	}
}

func TestMenuGenerateReportExtraFormats(t *testing.T) {
	now := time.Date(2024, 2, 1, 13, 37, 42, 0, time.Local)
	app := newTestApp(t, now)
	app.Config.ReportFormats = []string{"json", "xlsx"}

	runMenu(t, app, "1\n10\n4\n5\n")

	for _, ext := range []string{".txt", ".json", ".xlsx"} {
		path := filepath.Join(app.Config.ReportsDir, "sales_report_20240201_133742"+ext)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("%s report not written: %v", ext, err)
		}
	}
}

func TestMenuSurvivesCorruptDataFile(t *testing.T) {
	app := newTestApp(t, time.Now())
	if err := os.WriteFile(app.Config.DataFile, []byte("{{{not json"), 0644); err != nil {
		t.Fatalf("writing corrupt data file: %v", err)
	}

	out := runMenu(t, app, "2\n5\n")
	if !strings.Contains(out, "No sales records found.") {
		t.Errorf("corrupt file should behave as empty dataset:\n%s", out)
	}
}

func TestMenuInvalidChoice(t *testing.T) {
	app := newTestApp(t, time.Now())

	out := runMenu(t, app, "9\n5\n")
	if !strings.Contains(out, "Invalid choice. Please select 1, 2, 3, 4, or 5.") {
		t.Errorf("missing invalid-choice message:\n%s", out)
	}
	if !strings.Contains(out, "Exiting Sales Management System. Goodbye!") {
		t.Errorf("missing exit message:\n%s", out)
	}
}

func TestMenuViewShowsInvalidRecordsAsSkipped(t *testing.T) {
	app := newTestApp(t, time.Now())
	records := []internal.SaleRecord{
		{"timestamp": "garbage", "amount": 99.0},
		internal.NewSaleRecord(time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local), 10),
	}
	if err := app.Store.Save(records); err != nil {
		t.Fatalf("seeding data file: %v", err)
	}

	out := runMenu(t, app, "2\n5\n")
	if !strings.Contains(out, "invalid record skipped") {
		t.Errorf("missing skipped-row marker:\n%s", out)
	}
	if !strings.Contains(out, "10.00") {
		t.Errorf("valid record not displayed:\n%s", out)
	}
}
