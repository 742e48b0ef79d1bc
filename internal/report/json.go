package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/spendview/internal/model"
)

const jsonDate = "2006-01-02"

// JSONRange is the wire form of a date range. Unset sides are empty.
type JSONRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// JSONSummary is the wire form of model.Summary. Average is null when
// there are no transactions.
type JSONSummary struct {
	Total   decimal.Decimal     `json:"total"`
	Average decimal.NullDecimal `json:"average"`
	Count   int                 `json:"count"`
}

// JSONCategory is one pie slice.
type JSONCategory struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Share    decimal.Decimal `json:"share"`
	Count    int             `json:"count"`
}

// JSONDay is one point of the spending-over-time series.
type JSONDay struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// JSONTransaction is one table row.
type JSONTransaction struct {
	Date     string          `json:"date"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Note     string          `json:"note"`
}

// JSONReport is the wire form of Report.
type JSONReport struct {
	Range        JSONRange         `json:"range"`
	Summary      JSONSummary       `json:"summary"`
	Categories   []JSONCategory    `json:"categories"`
	Daily        []JSONDay         `json:"daily"`
	Transactions []JSONTransaction `json:"transactions"`
}

func formatJSONDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(jsonDate)
}

// ToJSONRange converts a range to its wire form.
func ToJSONRange(r model.DateRange) JSONRange {
	return JSONRange{Start: formatJSONDate(r.Start), End: formatJSONDate(r.End)}
}

// ToJSONSummary converts a summary to its wire form.
func ToJSONSummary(s model.Summary) JSONSummary {
	avg := s.Average
	if avg.Valid {
		avg.Decimal = avg.Decimal.Round(2)
	}
	return JSONSummary{Total: s.Total, Average: avg, Count: s.Count}
}

// ToJSONCategories converts the breakdown to its wire form.
func ToJSONCategories(cats []model.CategoryTotal) []JSONCategory {
	out := make([]JSONCategory, len(cats))
	for i, c := range cats {
		out[i] = JSONCategory{Category: c.Category, Total: c.Total, Share: c.Share, Count: c.Count}
	}
	return out
}

// ToJSONDaily converts the by-day series to its wire form.
func ToJSONDaily(days []model.DailyTotal) []JSONDay {
	out := make([]JSONDay, len(days))
	for i, d := range days {
		out[i] = JSONDay{Date: formatJSONDate(d.Date), Total: d.Total, Count: d.Count}
	}
	return out
}

// ToJSONTransactions converts table rows to their wire form.
func ToJSONTransactions(txns []model.Transaction) []JSONTransaction {
	out := make([]JSONTransaction, len(txns))
	for i, t := range txns {
		out[i] = JSONTransaction{Date: formatJSONDate(t.Date), Category: t.Category, Amount: t.Amount, Note: t.Note}
	}
	return out
}

// ToJSON converts a report to its wire form. Slices are never nil so that
// clients always see arrays.
func ToJSON(rep *Report) JSONReport {
	return JSONReport{
		Range:        ToJSONRange(rep.Range),
		Summary:      ToJSONSummary(rep.Summary),
		Categories:   ToJSONCategories(rep.Categories),
		Daily:        ToJSONDaily(rep.Daily),
		Transactions: ToJSONTransactions(rep.Transactions),
	}
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, rep *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToJSON(rep))
}
