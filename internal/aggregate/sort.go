package aggregate

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cleared-dev/spendview/internal/model"
)

// Order is a sort direction for the transaction table.
type Order int

const (
	Descending Order = iota
	Ascending
)

// ParseOrder accepts "asc"/"ascending" or "desc"/"descending" (case-insensitive).
// An empty string means Descending.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "desc", "descending":
		return Descending, nil
	case "asc", "ascending":
		return Ascending, nil
	default:
		return Descending, fmt.Errorf("invalid sort order %q: want asc or desc", s)
	}
}

func (o Order) String() string {
	if o == Ascending {
		return "asc"
	}
	return "desc"
}

// SortKey selects the column the transaction table is sorted on.
type SortKey string

const (
	SortByDateKey   SortKey = "date"
	SortByAmountKey SortKey = "amount"
)

// Sort returns a sorted copy of txns. Ties keep their input order.
func Sort(txns []model.Transaction, key SortKey, order Order) ([]model.Transaction, error) {
	switch key {
	case "", SortByDateKey:
		return SortByDate(txns, order), nil
	case SortByAmountKey:
		return SortByAmount(txns, order), nil
	default:
		return nil, fmt.Errorf("invalid sort key %q: want date or amount", key)
	}
}

// SortByDate returns a copy of txns sorted by date.
func SortByDate(txns []model.Transaction, order Order) []model.Transaction {
	return sortCopy(txns, order, func(a, b model.Transaction) int {
		return a.Date.Compare(b.Date)
	})
}

// SortByAmount returns a copy of txns sorted by amount.
func SortByAmount(txns []model.Transaction, order Order) []model.Transaction {
	return sortCopy(txns, order, func(a, b model.Transaction) int {
		return a.Amount.Cmp(b.Amount)
	})
}

func sortCopy(txns []model.Transaction, order Order, cmp func(a, b model.Transaction) int) []model.Transaction {
	out := slices.Clone(txns)
	slices.SortStableFunc(out, func(a, b model.Transaction) int {
		if order == Descending {
			return cmp(b, a)
		}
		return cmp(a, b)
	})
	return out
}
