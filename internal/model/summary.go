package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary holds the scalar metrics over a set of transactions.
type Summary struct {
	Total   decimal.Decimal
	Average decimal.NullDecimal // invalid when Count == 0
	Count   int
}

// CategoryTotal is one slice of the by-category breakdown.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
	Count    int
	Share    decimal.Decimal // percent of overall total, 2 places
}

// DailyTotal is the spending on a single calendar date.
type DailyTotal struct {
	Date  time.Time
	Total decimal.Decimal
	Count int
}
