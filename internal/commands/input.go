package commands

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/spendview/internal/aggregate"
	"github.com/cleared-dev/spendview/internal/ledger"
	"github.com/cleared-dev/spendview/internal/model"
	"github.com/cleared-dev/spendview/internal/report"
	"github.com/cleared-dev/spendview/internal/sample"
)

var (
	errNoInput   = errors.New("no input: pass a CSV file or --sample")
	errTwoInputs = errors.New("pass either a CSV file or --sample, not both")
)

// inputFlags select the dataset and date range shared by report, export and serve.
type inputFlags struct {
	sample bool
	seed   uint64
	format string
	from   string
	to     string
}

func (f *inputFlags) register(cmd *cobra.Command, withRange bool) {
	cmd.Flags().BoolVar(&f.sample, "sample", false, "use generated sample data instead of a file")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "sample data seed (0 = random)")
	cmd.Flags().StringVar(&f.format, "format", "", "CSV format: standard or chase (default from config)")
	if withRange {
		cmd.Flags().StringVar(&f.from, "from", "", "first date to include (inclusive)")
		cmd.Flags().StringVar(&f.to, "to", "", "last date to include (inclusive)")
	}
}

// load reads the CSV named in args, or generates sample data with --sample.
func (f *inputFlags) load(a *app, args []string) ([]model.Transaction, error) {
	switch {
	case len(args) > 0 && f.sample:
		return nil, errTwoInputs
	case len(args) > 0:
		format := f.format
		if format == "" {
			format = a.cfg.Input.Format
		}
		txns, err := a.registry.LoadFile(args[0], format)
		if err != nil {
			return nil, err
		}
		a.logger.Info("loaded transactions", "file", args[0], "format", format, "count", len(txns))
		return txns, nil
	case f.sample:
		txns, err := sample.Generate(sampleOptions(a, 0, f.seed))
		if err != nil {
			return nil, err
		}
		a.logger.Info("generated sample transactions", "count", len(txns))
		return txns, nil
	default:
		return nil, errNoInput
	}
}

func (f *inputFlags) dateRange() (model.DateRange, error) {
	var rng model.DateRange
	var err error
	if f.from != "" {
		if rng.Start, err = ledger.ParseDate(f.from); err != nil {
			return rng, fmt.Errorf("invalid --from %q: %w", f.from, err)
		}
	}
	if f.to != "" {
		if rng.End, err = ledger.ParseDate(f.to); err != nil {
			return rng, fmt.Errorf("invalid --to %q: %w", f.to, err)
		}
	}
	return rng, nil
}

func sampleOptions(a *app, size int, seed uint64) sample.Options {
	if size <= 0 {
		size = a.cfg.Sample.Size
	}
	return sample.Options{
		Size:       size,
		MinAmount:  decimal.NewFromFloat(a.cfg.Sample.MinAmount),
		MaxAmount:  decimal.NewFromFloat(a.cfg.Sample.MaxAmount),
		Categories: a.cfg.Sample.Categories,
		Seed:       seed,
	}
}

func (f *inputFlags) query(sortKey, order string) (report.Query, error) {
	rng, err := f.dateRange()
	if err != nil {
		return report.Query{}, err
	}
	o, err := aggregate.ParseOrder(order)
	if err != nil {
		return report.Query{}, err
	}
	return report.Query{Range: rng, Sort: aggregate.SortKey(sortKey), Order: o}, nil
}
