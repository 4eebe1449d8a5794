package internal

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ErrNoData signals that no valid sales records were available, so no
// report was generated.
var ErrNoData = errors.New("no valid sales records")

// dateKey is the calendar-date format used for daily grouping. Lexicographic
// order on these keys equals chronological order.
const dateKey = "2006-01-02"

// ValidSales parses all records, silently dropping malformed ones.
func ValidSales(records []SaleRecord) []ValidatedSale {
	var sales []ValidatedSale
	for _, rec := range records {
		if s, ok := ParseSaleRecord(rec); ok {
			sales = append(sales, s)
		}
	}
	return sales
}

// DailyTotal sums the amounts of all valid records that fall on the same
// calendar date as day. Malformed records are skipped. Returns 0 when no
// record matches.
func DailyTotal(records []SaleRecord, day time.Time) float64 {
	want := day.Format(dateKey)

	var total float64
	for _, rec := range records {
		s, ok := ParseSaleRecord(rec)
		if !ok {
			continue
		}
		if s.Time.Format(dateKey) == want {
			total += s.Amount
		}
	}
	return total
}

// BuildReport aggregates all valid records into a Report stamped with now.
// Returns ErrNoData when no record survives validation.
func BuildReport(records []SaleRecord, now time.Time) (*Report, error) {
	sales := ValidSales(records)
	if len(sales) == 0 {
		return nil, ErrNoData
	}

	rep := &Report{
		GeneratedAt: now,
		Count:       len(sales),
		Max:         sales[0].Amount,
		Min:         sales[0].Amount,
		DailyTotals: make(map[string]float64),
	}
	for _, s := range sales {
		rep.Total += s.Amount
		if s.Amount > rep.Max {
			rep.Max = s.Amount
		}
		if s.Amount < rep.Min {
			rep.Min = s.Amount
		}
		rep.DailyTotals[s.Time.Format(dateKey)] += s.Amount
	}
	rep.Average = rep.Total / float64(len(sales))

	return rep, nil
}

// Days returns the report's dates sorted ascending.
func (r *Report) Days() []string {
	days := make([]string, 0, len(r.DailyTotals))
	for day := range r.DailyTotals {
		days = append(days, day)
	}
	sort.Strings(days)
	return days
}

// Render produces the report text shown on screen. The file copy is this
// text plus a trailing newline.
func (r *Report) Render() string {
	var b strings.Builder
	b.WriteString("=== Sales Report ===\n")
	fmt.Fprintf(&b, "Generated At: %s\n", r.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Total Records: %d\n", r.Count)
	fmt.Fprintf(&b, "Total Sales: %.2f\n", r.Total)
	fmt.Fprintf(&b, "Average Sale: %.2f\n", r.Average)
	fmt.Fprintf(&b, "Highest Sale: %.2f\n", r.Max)
	fmt.Fprintf(&b, "Lowest Sale: %.2f\n", r.Min)
	b.WriteString("\nDaily Totals:")
	for _, day := range r.Days() {
		fmt.Fprintf(&b, "\n- %s: %.2f", day, r.DailyTotals[day])
	}
	return b.String()
}
