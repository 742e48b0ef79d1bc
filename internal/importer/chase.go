package importer

import (
	"encoding/csv"
	"errors"
	"io"
	"time"

	"github.com/cleared-dev/spendview/internal/ledger"
	"github.com/cleared-dev/spendview/internal/model"
)

// ChaseParser parses Chase bank checking CSV exports.
//
// The bank type (ACH_DEBIT, DEBIT_CARD, ...) becomes the category and the
// description becomes the note. Amounts are negated so that money leaving
// the account counts as positive spending.
type ChaseParser struct{}

const (
	chaseDateFormat = "01/02/2006"
	chaseNumFields  = 7
	chaseColDate    = 1
	chaseColDesc    = 2
	chaseColAmount  = 3
	chaseColType    = 4
)

// Format returns the parser name.
func (p *ChaseParser) Format() string { return "chase" }

// Parse reads a Chase CSV and returns Transactions.
func (p *ChaseParser) Parse(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = chaseNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, ledger.WrapCSVError(err)
	}

	if len(records) == 0 {
		return nil, &ledger.ParseError{Row: 1, Err: ledger.ErrEmptyFile}
	}
	if len(records) == 1 {
		return nil, nil
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := parseChaseRow(rec, i+2)
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func parseChaseRow(rec []string, row int) (model.Transaction, error) {
	date, err := time.Parse(chaseDateFormat, rec[chaseColDate])
	if err != nil {
		return model.Transaction{}, &ledger.ParseError{Row: row, Column: "Posting Date", Value: rec[chaseColDate], Err: errors.New("expected MM/DD/YYYY")}
	}

	amount, err := ledger.ParseAmount(rec[chaseColAmount])
	if err != nil {
		return model.Transaction{}, &ledger.ParseError{Row: row, Column: "Amount", Value: rec[chaseColAmount], Err: err}
	}

	category := rec[chaseColType]
	if category == "" {
		category = model.DefaultCategory
	}

	return model.Transaction{
		Date:     model.Day(date),
		Category: category,
		Amount:   amount.Neg(),
		Note:     rec[chaseColDesc],
	}, nil
}
