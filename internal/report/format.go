package report

import (
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Options controls rendering.
type Options struct {
	Currency   string
	DateFormat string // Go layout; defaults to 2006-01-02
	Limit      int    // max transaction rows in text output, 0 = all
}

func (o Options) dateFormat() string {
	if o.DateFormat == "" {
		return "2006-01-02"
	}
	return o.DateFormat
}

func (o Options) date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(o.dateFormat())
}

// Money formats d with the currency symbol, thousands separators and two
// decimal places, e.g. "₹1,234.50" or "-$4.00".
func Money(currency string, d decimal.Decimal) string {
	d = d.Round(2)
	whole, frac, _ := strings.Cut(d.Abs().StringFixed(2), ".")
	if n, err := strconv.ParseInt(whole, 10, 64); err == nil {
		whole = humanize.Comma(n)
	}

	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return sign + currency + whole + "." + frac
}

// Percent formats a share as "12.34%".
func Percent(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}
