// Package aggregate filters and summarizes transaction snapshots.
//
// Every function is pure: inputs are never mutated and results never alias
// the caller's slice, so a single loaded dataset can be shared by concurrent
// readers.
package aggregate

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/spendview/internal/model"
)

var hundred = decimal.NewFromInt(100)

// Filter returns the transactions whose date lies within rng (inclusive),
// in input order. No match yields nil.
func Filter(txns []model.Transaction, rng model.DateRange) []model.Transaction {
	if rng.Empty() {
		return nil
	}
	var out []model.Transaction
	for _, txn := range txns {
		if rng.Contains(txn.Date) {
			out = append(out, txn)
		}
	}
	return out
}

// Summarize computes total, average and count.
func Summarize(txns []model.Transaction) model.Summary {
	total := decimal.Zero
	for _, txn := range txns {
		total = total.Add(txn.Amount)
	}

	s := model.Summary{Total: total, Count: len(txns)}
	if s.Count > 0 {
		s.Average = decimal.NewNullDecimal(total.Div(decimal.NewFromInt(int64(s.Count))))
	}
	return s
}

// ByCategory maps each category to its total amount.
func ByCategory(txns []model.Transaction) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, txn := range txns {
		totals[txn.Category] = totals[txn.Category].Add(txn.Amount)
	}
	return totals
}

// ByDay returns one entry per distinct date, in ascending date order.
func ByDay(txns []model.Transaction) []model.DailyTotal {
	idx := make(map[time.Time]int)
	var days []model.DailyTotal
	for _, txn := range txns {
		d := model.Day(txn.Date)
		i, ok := idx[d]
		if !ok {
			i = len(days)
			idx[d] = i
			days = append(days, model.DailyTotal{Date: d, Total: decimal.Zero})
		}
		days[i].Total = days[i].Total.Add(txn.Amount)
		days[i].Count++
	}
	sort.Slice(days, func(a, b int) bool { return days[a].Date.Before(days[b].Date) })
	return days
}

// Breakdown returns per-category totals sorted by total descending, then by
// name. Share is the category's percentage of the overall total; it is zero
// when the overall total is zero.
func Breakdown(txns []model.Transaction) []model.CategoryTotal {
	idx := make(map[string]int)
	var cats []model.CategoryTotal
	total := decimal.Zero
	for _, txn := range txns {
		i, ok := idx[txn.Category]
		if !ok {
			i = len(cats)
			idx[txn.Category] = i
			cats = append(cats, model.CategoryTotal{Category: txn.Category, Total: decimal.Zero})
		}
		cats[i].Total = cats[i].Total.Add(txn.Amount)
		cats[i].Count++
		total = total.Add(txn.Amount)
	}

	for i := range cats {
		if total.IsZero() {
			cats[i].Share = decimal.Zero
			continue
		}
		cats[i].Share = cats[i].Total.Mul(hundred).Div(total).Round(2)
	}

	sort.Slice(cats, func(a, b int) bool {
		if c := cats[a].Total.Cmp(cats[b].Total); c != 0 {
			return c > 0
		}
		return cats[a].Category < cats[b].Category
	})
	return cats
}

// Bounds returns the range spanning the earliest and latest dates present.
// An empty input yields the zero (unbounded) range.
func Bounds(txns []model.Transaction) model.DateRange {
	var rng model.DateRange
	for i, txn := range txns {
		d := model.Day(txn.Date)
		if i == 0 || d.Before(rng.Start) {
			rng.Start = d
		}
		if i == 0 || d.After(rng.End) {
			rng.End = d
		}
	}
	return rng
}
