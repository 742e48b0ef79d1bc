package commands

import (
	"github.com/spf13/cobra"

	"github.com/cleared-dev/spendview/internal/aggregate"
	"github.com/cleared-dev/spendview/internal/report"
)

func newReportCommand(a *app) *cobra.Command {
	var (
		in      inputFlags
		asJSON  bool
		sortKey string
		order   string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "report [file.csv]",
		Short: "Print spending totals, category and daily breakdowns",
		Long: `Print the summary, spending by category, spending over time and the
transaction table for a date range. Without --from/--to the range covers
the whole dataset.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := in.query(sortKey, order)
			if err != nil {
				return err
			}
			txns, err := in.load(a, args)
			if err != nil {
				return err
			}
			rep, err := report.Build(txns, q)
			if err != nil {
				return err
			}

			if asJSON {
				return report.WriteJSON(cmd.OutOrStdout(), rep)
			}
			return report.WriteText(cmd.OutOrStdout(), rep, report.Options{
				Currency:   a.cfg.Display.Currency,
				DateFormat: a.cfg.Display.DateFormat,
				Limit:      limit,
			})
		},
	}

	in.register(cmd, true)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	cmd.Flags().StringVar(&sortKey, "sort", string(aggregate.SortByDateKey), "transaction sort key: date or amount")
	cmd.Flags().StringVar(&order, "order", aggregate.Descending.String(), "sort order: asc or desc")
	cmd.Flags().IntVar(&limit, "limit", 0, "max transaction rows in text output (0 = all)")

	return cmd
}
