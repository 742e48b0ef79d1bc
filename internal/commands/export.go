package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/spendview/internal/report"
)

func newExportCommand(a *app) *cobra.Command {
	var (
		in     inputFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "export [file.csv]",
		Short: "Export the report as an XLSX workbook",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := in.query("", "")
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

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating %s: %w", output, err)
			}
			opts := report.Options{
				Currency:   a.cfg.Display.Currency,
				DateFormat: a.cfg.Display.DateFormat,
			}
			if err := report.WriteXLSX(f, rep, opts); err != nil {
				f.Close()
				return fmt.Errorf("writing %s: %w", output, err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing %s: %w", output, err)
			}

			a.logger.Info("exported report", "file", output, "transactions", rep.Summary.Count)
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d transactions to %s\n", rep.Summary.Count, output)
			return nil
		},
	}

	in.register(cmd, true)
	cmd.Flags().StringVarP(&output, "output", "o", "report.xlsx", "output workbook")

	return cmd
}
