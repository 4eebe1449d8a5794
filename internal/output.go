package internal

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const displayTimeLayout = "2006-01-02 15:04:05"

// RenderSalesTable prints all stored records as a table in insertion order.
// Malformed records are shown as dimmed skipped rows so the numbering keeps
// matching the stored order. Returns the number of valid records displayed.
func RenderSalesTable(w io.Writer, records []SaleRecord, cur Currency) int {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Amount", "Time"})

	displayed := 0
	var total float64
	for i, rec := range records {
		sale, ok := ParseSaleRecord(rec)
		if !ok {
			t.AppendRow(table.Row{
				i + 1,
				text.FgHiBlack.Sprint("-"),
				text.FgHiBlack.Sprint("invalid record skipped"),
			})
			continue
		}
		displayed++
		total += sale.Amount
		t.AppendRow(table.Row{
			i + 1,
			cur.Format(sale.Amount),
			sale.Time.Format(displayTimeLayout),
		})
	}

	t.AppendSeparator()
	t.AppendFooter(table.Row{
		"",
		text.Bold.Sprint(cur.Format(total)),
		text.Bold.Sprint(fmt.Sprintf("%d records", displayed)),
	})

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})
	t.Render()

	return displayed
}
