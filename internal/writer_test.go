package internal

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func testReport(t *testing.T) *Report {
	t.Helper()
	records := []SaleRecord{
		rec("2024-01-01T10:00:00", 10.0),
		rec("2024-01-01T15:30:00", 5.0),
		rec("2024-01-02T09:00:00", 3.0),
	}
	rep, err := BuildReport(records, time.Date(2024, 2, 1, 13, 37, 42, 0, time.Local))
	if err != nil {
		t.Fatalf("BuildReport() error = %v", err)
	}
	return rep
}

func TestWriterRegistry(t *testing.T) {
	for _, format := range []string{"text", "json", "xlsx"} {
		if _, err := GetWriter(format); err != nil {
			t.Errorf("GetWriter(%q) error = %v", format, err)
		}
	}

	if _, err := GetWriter("pdf"); err == nil {
		t.Error("GetWriter(pdf) expected error, got nil")
	}
}

func TestWriteTextReport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	rep := testReport(t)

	path, err := WriteTextReport(dir, rep)
	if err != nil {
		t.Fatalf("WriteTextReport() error = %v", err)
	}

	if filepath.Base(path) != "sales_report_20240201_133742.txt" {
		t.Errorf("report file name = %q, want sales_report_20240201_133742.txt", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report file: %v", err)
	}
	if string(data) != rep.Render()+"\n" {
		t.Errorf("file content differs from rendered report plus trailing newline")
	}
}

func TestWriteJSONReport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	rep := testReport(t)

	path, err := WriteJSONReport(dir, rep)
	if err != nil {
		t.Fatalf("WriteJSONReport() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report file: %v", err)
	}

	var out JSONReport
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("parsing report JSON: %v", err)
	}

	if out.Summary.Count != 3 || out.Summary.Total != 18.0 || out.Summary.Average != 6.0 {
		t.Errorf("summary = %+v, want count 3, total 18, average 6", out.Summary)
	}
	if len(out.DailyTotals) != 2 {
		t.Fatalf("daily totals = %v, want 2 entries", out.DailyTotals)
	}
	if out.DailyTotals[0].Date != "2024-01-01" || out.DailyTotals[0].Total != 15.0 {
		t.Errorf("first daily total = %+v, want 2024-01-01: 15", out.DailyTotals[0])
	}
	if out.DailyTotals[1].Date != "2024-01-02" || out.DailyTotals[1].Total != 3.0 {
		t.Errorf("second daily total = %+v, want 2024-01-02: 3", out.DailyTotals[1])
	}
}

func TestWriteXLSXReport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	rep := testReport(t)

	path, err := WriteXLSXReport(dir, rep)
	if err != nil {
		t.Fatalf("WriteXLSXReport() error = %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("opening xlsx report: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Summary", "B3")
	if err != nil {
		t.Fatalf("reading Total Sales cell: %v", err)
	}
	if got != "18" {
		t.Errorf("Summary!B3 = %q, want %q", got, "18")
	}

	gotDate, err := f.GetCellValue("Daily Totals", "A2")
	if err != nil {
		t.Fatalf("reading first daily total date: %v", err)
	}
	if gotDate != "2024-01-01" {
		t.Errorf("Daily Totals!A2 = %q, want 2024-01-01", gotDate)
	}
}

func TestReportFileNameUniquePerSecond(t *testing.T) {
	a := &Report{GeneratedAt: time.Date(2024, 2, 1, 13, 37, 41, 0, time.Local)}
	b := &Report{GeneratedAt: time.Date(2024, 2, 1, 13, 37, 42, 0, time.Local)}

	if reportFileName(a, ".txt") == reportFileName(b, ".txt") {
		t.Error("reports one second apart got the same file name")
	}
}
