package report

import (
	"github.com/cleared-dev/spendview/internal/aggregate"
	"github.com/cleared-dev/spendview/internal/model"
)

// Query selects the slice of the dataset a report covers.
type Query struct {
	Range model.DateRange // zero sides default to the dataset bounds
	Sort  aggregate.SortKey
	Order aggregate.Order
}

// Report is everything a dashboard needs for one date range.
type Report struct {
	Range        model.DateRange
	Summary      model.Summary
	Categories   []model.CategoryTotal
	Daily        []model.DailyTotal
	Transactions []model.Transaction // sorted per Query
}

// Build filters txns to the query range and aggregates the result.
func Build(txns []model.Transaction, q Query) (*Report, error) {
	rng := Effective(txns, q.Range)
	subset := aggregate.Filter(txns, rng)

	table, err := aggregate.Sort(subset, q.Sort, q.Order)
	if err != nil {
		return nil, err
	}

	return &Report{
		Range:        rng,
		Summary:      aggregate.Summarize(subset),
		Categories:   aggregate.Breakdown(subset),
		Daily:        aggregate.ByDay(subset),
		Transactions: table,
	}, nil
}

// Effective fills unset sides of rng from the dataset bounds.
func Effective(txns []model.Transaction, rng model.DateRange) model.DateRange {
	bounds := aggregate.Bounds(txns)
	if rng.Start.IsZero() {
		rng.Start = bounds.Start
	}
	if rng.End.IsZero() {
		rng.End = bounds.End
	}
	return rng
}
