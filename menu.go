package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"salestrack/internal"
)

// App drives the interactive menu over an injected store, config and clock.
type App struct {
	Store  *internal.Store
	Config *internal.Config
	Now    func() time.Time

	records  []internal.SaleRecord
	currency internal.Currency
}

// MenuLoop loads the dataset and handles menu choices until exit or EOF.
func (a *App) MenuLoop(scanner *bufio.Scanner, out io.Writer) {
	a.records = a.Store.Load()
	a.currency = internal.GetCurrency(a.Config.Currency)

	for {
		fmt.Fprintln(out, "\n=== Admin Dashboard ===")
		fmt.Fprintln(out, "1. Add Sale")
		fmt.Fprintln(out, "2. View Sales")
		fmt.Fprintln(out, "3. Show Daily Total")
		fmt.Fprintln(out, "4. Generate Sales Report")
		fmt.Fprintln(out, "5. Exit")
		fmt.Fprint(out, "Choose an option (1-5): ")

		if !scanner.Scan() {
			return
		}

		switch strings.TrimSpace(scanner.Text()) {
		case "1":
			a.addSale(scanner, out)
		case "2":
			a.viewSales(out)
		case "3":
			a.showDailyTotal(out)
		case "4":
			a.generateReport(out)
		case "5":
			fmt.Fprintln(out, "Exiting Sales Management System. Goodbye!")
			return
		default:
			fmt.Fprintln(out, "Invalid choice. Please select 1, 2, 3, 4, or 5.")
		}
	}
}

// addSale prompts for an amount, appends a record and persists the whole
// list. Invalid or negative input aborts with no state change.
func (a *App) addSale(scanner *bufio.Scanner, out io.Writer) {
	fmt.Fprint(out, "Enter sale amount: ")
	if !scanner.Scan() {
		return
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(scanner.Text()), 64)
	if err != nil || amount < 0 {
		fmt.Fprintln(out, "Invalid amount. Please enter a non-negative number.")
		return
	}

	records := append(a.records, internal.NewSaleRecord(a.Now(), amount))
	if err := a.Store.Save(records); err != nil {
		fmt.Fprintf(out, "Could not save sales data: %v\n", err)
		return
	}
	a.records = records

	fmt.Fprintf(out, "Sale of %.2f added successfully.\n", amount)
}

func (a *App) viewSales(out io.Writer) {
	if len(a.records) == 0 {
		fmt.Fprintln(out, "No sales records found.")
		return
	}

	fmt.Fprintln(out, "\n=== Sales Records ===")
	if displayed := internal.RenderSalesTable(out, a.records, a.currency); displayed == 0 {
		fmt.Fprintln(out, "No valid sales records to display.")
	}
}

func (a *App) showDailyTotal(out io.Writer) {
	total := internal.DailyTotal(a.records, a.Now())
	fmt.Fprintf(out, "Today's total sales: %.2f\n", total)
}

// generateReport builds the report, shows it, and writes the text report
// plus any extra formats from the config. No valid records means no file.
func (a *App) generateReport(out io.Writer) {
	rep, err := internal.BuildReport(a.records, a.Now())
	if err != nil {
		fmt.Fprintln(out, "No valid sales records found. Report was not generated.")
		return
	}

	fmt.Fprintf(out, "\n%s\n", rep.Render())

	written := map[string]bool{}
	for _, format := range append([]string{"text"}, a.Config.ReportFormats...) {
		if written[format] {
			continue
		}
		written[format] = true

		w, err := internal.GetWriter(format)
		if err != nil {
			fmt.Fprintf(out, "Skipping report format: %v\n", err)
			continue
		}
		path, err := w.Write(a.Config.ReportsDir, rep)
		if err != nil {
			fmt.Fprintf(out, "Could not write %s report: %v\n", format, err)
			continue
		}
		log.Debug().Str("format", format).Str("path", path).Msg("report written")
		fmt.Fprintf(out, "Report saved to: %s\n", path)
	}
}
