package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/spendview/internal/ledger"
	"github.com/cleared-dev/spendview/internal/sample"
)

func newSampleCommand(a *app) *cobra.Command {
	var (
		output string
		size   int
		seed   uint64
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Generate sample transactions in the standard CSV format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			txns, err := sample.Generate(sampleOptions(a, size, seed))
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				return ledger.WriteTransactions(cmd.OutOrStdout(), txns)
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating %s: %w", output, err)
			}
			if err := ledger.WriteTransactions(f, txns); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing %s: %w", output, err)
			}
			a.logger.Info("wrote sample transactions", "file", output, "count", len(txns))
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d transactions to %s\n", len(txns), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().IntVar(&size, "size", 0, "number of transactions (default from config)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 = random)")

	return cmd
}
