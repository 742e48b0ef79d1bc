package report

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteText renders the report as aligned plain-text tables.
func WriteText(w io.Writer, rep *Report, opts Options) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	p := func(format string, args ...any) {
		fmt.Fprintf(tw, format, args...)
	}

	p("Spending %s to %s\n\n", opts.date(rep.Range.Start), opts.date(rep.Range.End))

	avg := "n/a"
	if rep.Summary.Average.Valid {
		avg = Money(opts.Currency, rep.Summary.Average.Decimal)
	}
	p("Total Spending\t%s\n", Money(opts.Currency, rep.Summary.Total))
	p("Avg. Transaction\t%s\n", avg)
	p("Transactions\t%d\n", rep.Summary.Count)

	if rep.Summary.Count == 0 {
		p("\nNo transactions in range.\n")
		return tw.Flush()
	}

	p("\nSpending by Category\n")
	p("CATEGORY\tTOTAL\tSHARE\tCOUNT\n")
	for _, c := range rep.Categories {
		p("%s\t%s\t%s\t%d\n", c.Category, Money(opts.Currency, c.Total), Percent(c.Share), c.Count)
	}

	p("\nSpending Over Time\n")
	p("DATE\tTOTAL\tCOUNT\n")
	for _, d := range rep.Daily {
		p("%s\t%s\t%d\n", opts.date(d.Date), Money(opts.Currency, d.Total), d.Count)
	}

	p("\nTransaction Breakdown\n")
	p("DATE\tCATEGORY\tAMOUNT\tNOTE\n")
	rows := rep.Transactions
	if opts.Limit > 0 && len(rows) > opts.Limit {
		rows = rows[:opts.Limit]
	}
	for _, txn := range rows {
		p("%s\t%s\t%s\t%s\n", opts.date(txn.Date), txn.Category, Money(opts.Currency, txn.Amount), txn.Note)
	}
	if hidden := len(rep.Transactions) - len(rows); hidden > 0 {
		p("... %d more\n", hidden)
	}

	return tw.Flush()
}
