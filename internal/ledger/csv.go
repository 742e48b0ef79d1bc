package ledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/spendview/internal/model"
)

// Header is the CSV header written by WriteTransactions.
const Header = "Date,Category,Amount,Note"

// DateFormat is the layout used when writing dates.
const DateFormat = "2006-01-02"

const (
	colDate     = "date"
	colCategory = "category"
	colAmount   = "amount"
	colNote     = "note"
)

var requiredColumns = []string{colDate, colCategory, colAmount}

// plainAmount is an unsigned amount with optional 3-digit comma grouping.
// Exponents and decimal commas are rejected.
var plainAmount = regexp.MustCompile(`^(\d{1,3}(,\d{3})+|\d+)?(\.\d+)?$`)

// dateLayouts are tried in order when parsing a date cell.
var dateLayouts = []string{
	DateFormat,
	"2006/01/02",
	"01/02/2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// columns maps lower-cased header names to field positions.
type columns map[string]int

func (c columns) get(rec []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

// ReadTransactions reads a CSV with a Date, Category, Amount (and optional
// Note) header. The first malformed row aborts the read.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &ParseError{Row: 1, Err: ErrEmptyFile}
	}
	if err != nil {
		return nil, WrapCSVError(err)
	}

	cols, err := parseHeader(header)
	if err != nil {
		return nil, err
	}

	var txns []model.Transaction
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, WrapCSVError(err)
		}
		line, _ := cr.FieldPos(0)

		txn, err := unmarshalTransaction(cols, rec, line)
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func parseHeader(header []string) (columns, error) {
	cols := make(columns, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}
	for _, req := range requiredColumns {
		if _, ok := cols[req]; !ok {
			return nil, &ParseError{Row: 1, Column: displayName(req), Err: ErrMissingColumn}
		}
	}
	return cols, nil
}

func unmarshalTransaction(cols columns, rec []string, line int) (model.Transaction, error) {
	rawDate := cols.get(rec, colDate)
	date, err := ParseDate(rawDate)
	if err != nil {
		return model.Transaction{}, &ParseError{Row: line, Column: displayName(colDate), Value: rawDate, Err: err}
	}

	rawAmount := cols.get(rec, colAmount)
	amount, err := ParseAmount(rawAmount)
	if err != nil {
		return model.Transaction{}, &ParseError{Row: line, Column: displayName(colAmount), Value: rawAmount, Err: err}
	}

	category := cols.get(rec, colCategory)
	if category == "" {
		category = model.DefaultCategory
	}

	return model.Transaction{
		Date:     date,
		Category: category,
		Amount:   amount,
		Note:     cols.get(rec, colNote),
	}, nil
}

// WriteTransactions writes transactions in the standard format (including header).
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row ([]string).
func MarshalTransaction(txn model.Transaction) []string {
	return []string{
		txn.Date.Format(DateFormat),
		txn.Category,
		txn.Amount.StringFixed(2),
		txn.Note,
	}
}

// ParseDate parses a date cell using the accepted layouts and truncates it
// to a calendar date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return model.Day(t), nil
		}
	}
	return time.Time{}, errors.New("unrecognized date format")
}

// ParseAmount parses a money cell. It accepts thousands separators, a leading
// currency symbol and accounting-style parentheses for negatives. Exponent
// notation and decimal commas are rejected.
func ParseAmount(s string) (decimal.Decimal, error) {
	v := strings.TrimSpace(s)
	paren := false
	if strings.HasPrefix(v, "(") && strings.HasSuffix(v, ")") {
		paren = true
		v = strings.TrimSpace(v[1 : len(v)-1])
	}

	neg := paren
	switch {
	case strings.HasPrefix(v, "-"), strings.HasPrefix(v, "+"):
		if paren {
			return decimal.Decimal{}, errors.New("signed amount inside parentheses")
		}
		neg = v[0] == '-'
		v = v[1:]
	}
	v = strings.TrimLeftFunc(v, func(r rune) bool {
		return unicode.Is(unicode.Sc, r) || unicode.IsSpace(r)
	})
	if v == "" {
		return decimal.Decimal{}, errors.New("empty amount")
	}
	if !plainAmount.MatchString(v) {
		return decimal.Decimal{}, errors.New("not a plain decimal amount")
	}

	d, err := decimal.NewFromString(strings.ReplaceAll(v, ",", ""))
	if err != nil {
		return decimal.Decimal{}, err
	}
	if neg {
		d = d.Neg()
	}
	return d, nil
}

// WrapCSVError converts encoding/csv syntax errors into ParseErrors.
func WrapCSVError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &ParseError{Row: pe.Line, Err: pe.Err}
	}
	return fmt.Errorf("reading transactions CSV: %w", err)
}

func displayName(col string) string {
	return strings.ToUpper(col[:1]) + col[1:]
}
