package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// JSONReport is the root JSON output object
type JSONReport struct {
	GeneratedAt string           `json:"generated_at"`
	Summary     JSONSummary      `json:"summary"`
	DailyTotals []JSONDailyTotal `json:"daily_totals"`
}

// JSONSummary contains the aggregate statistics
type JSONSummary struct {
	Count   int     `json:"count"`
	Total   float64 `json:"total"`
	Average float64 `json:"average"`
	Max     float64 `json:"max"`
	Min     float64 `json:"min"`
}

// JSONDailyTotal is one date's summed amount
type JSONDailyTotal struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// WriteJSONReport writes the report as indented JSON, dates ascending.
func WriteJSONReport(dir string, rep *Report) (string, error) {
	if err := ensureReportsDir(dir); err != nil {
		return "", err
	}

	out := JSONReport{
		GeneratedAt: rep.GeneratedAt.Format("2006-01-02 15:04:05"),
		Summary: JSONSummary{
			Count:   rep.Count,
			Total:   rep.Total,
			Average: rep.Average,
			Max:     rep.Max,
			Min:     rep.Min,
		},
	}
	for _, day := range rep.Days() {
		out.DailyTotals = append(out.DailyTotals, JSONDailyTotal{
			Date:  day,
			Total: rep.DailyTotals[day],
		})
	}

	path := filepath.Join(dir, reportFileName(rep, ".json"))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return "", fmt.Errorf("encoding report: %w", err)
	}
	return path, nil
}

func init() {
	RegisterWriter("json", ReportWriterFunc(WriteJSONReport))
}
