package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCategory is used for rows whose category cell is blank.
const DefaultCategory = "Uncategorized"

// Transaction is one dated spending record.
type Transaction struct {
	Date     time.Time       // calendar date, 00:00 UTC
	Category string
	Amount   decimal.Decimal
	Note     string
}

// Day truncates t to its calendar date in UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
