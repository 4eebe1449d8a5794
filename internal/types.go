package internal

import "time"

// SaleRecord is the persisted, untyped form of one transaction as stored in
// the data file. It carries a "timestamp" (ISO-8601 string) and an "amount"
// (number, or numeric string). Fields are checked by ParseSaleRecord before
// any computation touches them.
type SaleRecord map[string]any

// ValidatedSale is a parsed, type-checked sale used in computations.
type ValidatedSale struct {
	Time   time.Time
	Amount float64
}

// Report holds the aggregate statistics over all valid sales at the time of
// generation.
type Report struct {
	GeneratedAt time.Time
	Count       int
	Total       float64
	Average     float64
	Max         float64
	Min         float64

	// DailyTotals maps YYYY-MM-DD dates to that day's summed amount
	DailyTotals map[string]float64
}
