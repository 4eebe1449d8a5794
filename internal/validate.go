package internal

import (
	"strconv"
	"strings"
	"time"
)

// isoSeconds is the layout used when writing new records.
const isoSeconds = "2006-01-02T15:04:05"

// isoLayouts are the ISO-8601 variants accepted from persisted records.
// Layouts without a zone are parsed in local time.
var isoLayouts = []string{
	time.RFC3339,
	isoSeconds,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// NewSaleRecord builds the persisted form of a sale made at t.
func NewSaleRecord(t time.Time, amount float64) SaleRecord {
	return SaleRecord{
		"amount":    amount,
		"timestamp": t.Format(isoSeconds),
	}
}

// ParseSaleRecord converts a raw stored record into a ValidatedSale, or
// reports rejection via the second return value. It never panics; the
// caller decides how to surface a rejected record.
//
// Bounds are not re-checked here: a negative amount already on disk is
// accepted. Negative amounts are only rejected at entry time.
func ParseSaleRecord(rec SaleRecord) (ValidatedSale, bool) {
	ts, ok := rec["timestamp"].(string)
	if !ok {
		return ValidatedSale{}, false
	}

	amount, ok := coerceFloat(rec["amount"])
	if !ok {
		return ValidatedSale{}, false
	}

	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, ts, time.Local); err == nil {
			return ValidatedSale{Time: t, Amount: amount}, true
		}
	}
	return ValidatedSale{}, false
}

// coerceFloat accepts the numeric shapes a stored record can carry: JSON
// numbers (float64 after unmarshaling) and numeric strings.
func coerceFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
