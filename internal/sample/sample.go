package sample

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/spendview/internal/model"
)

// Note is attached to every generated transaction.
const Note = "Sample transaction"

// DefaultCategories returns the categories sample data is drawn from.
func DefaultCategories() []string {
	return []string{"Rent", "Groceries", "Utilities", "Entertainment", "Dining Out", "Transport"}
}

// Options controls sample generation. Zero values fall back to defaults.
type Options struct {
	Size       int             // number of rows, default 100
	Now        time.Time       // date of the newest row, default today
	MinAmount  decimal.Decimal // inclusive, default 10
	MaxAmount  decimal.Decimal // exclusive, default 500
	Categories []string
	Seed       uint64 // 0 picks a random seed
}

func (o Options) withDefaults() Options {
	if o.Size <= 0 {
		o.Size = 100
	}
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
	if o.MinAmount.IsZero() && o.MaxAmount.IsZero() {
		o.MinAmount = decimal.NewFromInt(10)
		o.MaxAmount = decimal.NewFromInt(500)
	}
	if len(o.Categories) == 0 {
		o.Categories = DefaultCategories()
	}
	if o.Seed == 0 {
		o.Seed = rand.Uint64()
	}
	return o
}

// Generate returns Size transactions, one per day counting back from Now.
// Categories are picked uniformly and amounts are uniform in
// [MinAmount, MaxAmount), rounded to cents.
func Generate(opts Options) ([]model.Transaction, error) {
	opts = opts.withDefaults()
	if !opts.MaxAmount.GreaterThan(opts.MinAmount) {
		return nil, errors.New("max amount must be greater than min amount")
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	span := opts.MaxAmount.Sub(opts.MinAmount)
	today := model.Day(opts.Now)

	txns := make([]model.Transaction, opts.Size)
	for i := range txns {
		amount := opts.MinAmount.Add(span.Mul(decimal.NewFromFloat(rng.Float64()))).Round(2)
		if !amount.LessThan(opts.MaxAmount) {
			amount = opts.MaxAmount.Sub(decimal.New(1, -2))
		}
		txns[i] = model.Transaction{
			Date:     today.AddDate(0, 0, -i),
			Category: opts.Categories[rng.IntN(len(opts.Categories))],
			Amount:   amount,
			Note:     Note,
		}
	}
	return txns, nil
}
